package repositories

import (
	"context"

	"github.com/RamaTay/DecorERP/internal/core/domain"
)

// CustomerReader defines read operations for customer data
type CustomerReader interface {
	// FindCustomerByID retrieves a specific customer by their ID.
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// FindCustomers retrieves a paginated list of customers.
	FindCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error)

	// FindCustomerAccountSummary aggregates a customer's sales, payments and
	// outstanding balance in canonical USD.
	FindCustomerAccountSummary(ctx context.Context, customerID string) (*domain.CustomerAccountSummary, error)
}

// CustomerWriter defines write operations for customer data
type CustomerWriter interface {
	// SaveCustomer persists a new customer.
	SaveCustomer(ctx context.Context, customer domain.Customer) error

	// UpdateCustomer updates an existing customer.
	UpdateCustomer(ctx context.Context, customer domain.Customer) error

	// DeleteCustomer removes a customer.
	DeleteCustomer(ctx context.Context, customerID string) error
}

// CustomerRepositoryFacade combines all customer-related repository interfaces
// This is a facade for clients that need access to all operations
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}
