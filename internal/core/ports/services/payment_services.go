package services

import (
	"context"

	"github.com/RamaTay/DecorERP/internal/core/domain"
	"github.com/RamaTay/DecorERP/internal/dto"
)

// PaymentReaderSvc defines read operations for customer payment data
type PaymentReaderSvc interface {
	// GetPaymentByID retrieves a specific payment by its ID.
	GetPaymentByID(ctx context.Context, paymentID string) (*domain.CustomerPayment, error)

	// ListPaymentsBySale retrieves a sale's payments.
	ListPaymentsBySale(ctx context.Context, saleID string) ([]domain.CustomerPayment, error)

	// ListPaymentsByCustomer retrieves a customer's payments.
	ListPaymentsByCustomer(ctx context.Context, customerID string, limit int, offset int) ([]domain.CustomerPayment, error)
}

// PaymentWriterSvc defines write operations for customer payment data
type PaymentWriterSvc interface {
	// RecordPayment validates and records a payment against a sale, bumping
	// the sale's paid amount in the same transaction.
	RecordPayment(ctx context.Context, req dto.CreatePaymentRequest, creatorUserID string) (*domain.CustomerPayment, error)
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}
