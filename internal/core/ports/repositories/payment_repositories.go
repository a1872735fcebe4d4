package repositories

import (
	"context"

	"github.com/RamaTay/DecorERP/internal/core/domain"
)

// PaymentReader defines read operations for customer payment data
type PaymentReader interface {
	// FindPaymentByID retrieves a specific payment by its ID.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.CustomerPayment, error)

	// FindPaymentsBySale retrieves a sale's payments, newest first.
	FindPaymentsBySale(ctx context.Context, saleID string) ([]domain.CustomerPayment, error)

	// FindPaymentsByCustomer retrieves a customer's payments, newest first.
	FindPaymentsByCustomer(ctx context.Context, customerID string, limit int, offset int) ([]domain.CustomerPayment, error)
}

// PaymentRepositoryFacade combines all payment-related repository interfaces.
// Writes happen through SaleWriter.AddPaymentToSale so the sale's payment
// amount moves in the same transaction as the payment row.
type PaymentRepositoryFacade interface {
	PaymentReader
}
