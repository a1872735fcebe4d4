package services

import (
	"context"
	"fmt"
	"time"

	"github.com/RamaTay/DecorERP/internal/core/domain"
	portsrepo "github.com/RamaTay/DecorERP/internal/core/ports/repositories"
	"github.com/RamaTay/DecorERP/internal/dto"
	"github.com/google/uuid"
)

type CustomerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
}

func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error) {
	customer := domain.Customer{
		CustomerID:         uuid.NewString(),
		FullName:           req.FullName,
		Email:              req.Email,
		Phone:              req.Phone,
		Address:            req.Address,
		DefaultPriceListID: req.DefaultPriceListID,
		AuditFields:        domain.NewAuditFields(creatorUserID, time.Now()),
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return &customer, nil
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest, updaterUserID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	customer.FullName = req.FullName
	customer.Email = req.Email
	customer.Phone = req.Phone
	customer.Address = req.Address
	customer.DefaultPriceListID = req.DefaultPriceListID
	customer.Touch(updaterUserID, time.Now())

	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	return customer, nil
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, customerID string) error {
	if err := s.customerRepo.DeleteCustomer(ctx, customerID); err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	return nil
}

func (s *CustomerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer by ID: %w", err)
	}
	return customer, nil
}

func (s *CustomerService) ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error) {
	customers, err := s.customerRepo.FindCustomers(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	if customers == nil {
		return []domain.Customer{}, nil
	}
	return customers, nil
}

func (s *CustomerService) GetCustomerAccount(ctx context.Context, customerID string) (*domain.CustomerAccountSummary, error) {
	summary, err := s.customerRepo.FindCustomerAccountSummary(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer account: %w", err)
	}
	return summary, nil
}
