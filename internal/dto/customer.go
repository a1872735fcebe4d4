package dto

import (
	"time"

	"github.com/RamaTay/DecorERP/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCustomerRequest defines the data needed to create a customer.
type CreateCustomerRequest struct {
	FullName           string `json:"fullName" binding:"required"`
	Email              string `json:"email" binding:"omitempty,email"`
	Phone              string `json:"phone"`
	Address            string `json:"address"`
	DefaultPriceListID string `json:"defaultPriceListID"`
}

// UpdateCustomerRequest mirrors the create shape.
type UpdateCustomerRequest = CreateCustomerRequest

// CustomerResponse is the API shape of a customer.
type CustomerResponse struct {
	CustomerID         string    `json:"customerID"`
	FullName           string    `json:"fullName"`
	Email              string    `json:"email,omitempty"`
	Phone              string    `json:"phone,omitempty"`
	Address            string    `json:"address,omitempty"`
	DefaultPriceListID string    `json:"defaultPriceListID,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

// CustomerAccountResponse is the derived account position of a customer.
type CustomerAccountResponse struct {
	CustomerID      string          `json:"customerID"`
	TotalSales      decimal.Decimal `json:"totalSales"`
	TotalPayments   decimal.Decimal `json:"totalPayments"`
	Balance         decimal.Decimal `json:"balance"`
	LastPaymentDate *time.Time      `json:"lastPaymentDate,omitempty"`
}

// ToCustomerResponse converts a domain.Customer to its API shape.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:         c.CustomerID,
		FullName:           c.FullName,
		Email:              c.Email,
		Phone:              c.Phone,
		Address:            c.Address,
		DefaultPriceListID: c.DefaultPriceListID,
		CreatedAt:          c.CreatedAt,
	}
}

// ToListCustomerResponse converts a slice of customers to API shapes.
func ToListCustomerResponse(customers []domain.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(customers))
	for i := range customers {
		res[i] = ToCustomerResponse(&customers[i])
	}
	return res
}

// ToCustomerAccountResponse converts an account summary to its API shape.
func ToCustomerAccountResponse(s *domain.CustomerAccountSummary) CustomerAccountResponse {
	return CustomerAccountResponse{
		CustomerID:      s.CustomerID,
		TotalSales:      s.TotalSales,
		TotalPayments:   s.TotalPayments,
		Balance:         s.Balance,
		LastPaymentDate: s.LastPaymentDate,
	}
}
