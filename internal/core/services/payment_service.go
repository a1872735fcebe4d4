package services

import (
	"context"
	"fmt"
	"time"

	"github.com/RamaTay/DecorERP/internal/apperrors"
	"github.com/RamaTay/DecorERP/internal/core/domain"
	portsrepo "github.com/RamaTay/DecorERP/internal/core/ports/repositories"
	portssvc "github.com/RamaTay/DecorERP/internal/core/ports/services"
	"github.com/RamaTay/DecorERP/internal/dto"
	"github.com/google/uuid"
)

// PaymentService records customer payments against completed sales. Amounts
// are stored in USD; SYP payments keep the native amount and the rate they
// were converted at.
type PaymentService struct {
	BaseService
	paymentRepo portsrepo.PaymentRepositoryFacade
	saleRepo    portsrepo.SaleRepositoryFacade
	currencySvc portssvc.CurrencyReaderSvc
}

func NewPaymentService(
	paymentRepo portsrepo.PaymentRepositoryFacade,
	saleRepo portsrepo.SaleRepositoryFacade,
	currencySvc portssvc.CurrencyReaderSvc,
) *PaymentService {
	return &PaymentService{paymentRepo: paymentRepo, saleRepo: saleRepo, currencySvc: currencySvc}
}

func (s *PaymentService) RecordPayment(ctx context.Context, req dto.CreatePaymentRequest, creatorUserID string) (*domain.CustomerPayment, error) {
	currency := domain.Currency(req.Currency)
	if !currency.Valid() {
		return nil, fmt.Errorf("%w: unknown currency %s", apperrors.ErrValidation, req.Currency)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}

	sale, err := s.saleRepo.FindSaleByID(ctx, req.SaleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sale for payment: %w", err)
	}
	if sale.Status != domain.SaleCompleted {
		return nil, fmt.Errorf("%w: payments can only be recorded against completed sales", apperrors.ErrValidation)
	}

	now := time.Now()
	payment := domain.CustomerPayment{
		PaymentID:       uuid.NewString(),
		CustomerID:      sale.CustomerID,
		SaleID:          sale.SaleID,
		Currency:        currency,
		Amount:          req.Amount,
		PaymentDate:     now,
		PaymentMethod:   domain.PaymentMethod(req.PaymentMethod),
		ReferenceNumber: req.ReferenceNumber,
		Notes:           req.Notes,
		CreatedAt:       now,
		CreatedBy:       creatorUserID,
	}
	if req.PaymentDate != nil {
		if req.PaymentDate.Before(sale.SaleDate) {
			return nil, fmt.Errorf("%w: payment date cannot predate the sale", apperrors.ErrValidation)
		}
		if req.PaymentDate.After(now) {
			return nil, fmt.Errorf("%w: payment date cannot be in the future", apperrors.ErrValidation)
		}
		payment.PaymentDate = *req.PaymentDate
	}

	if currency == domain.CurrencySYP {
		rate, err := resolveTransactionRate(ctx, s.currencySvc, req.TransactionExchangeRate, req.PaymentDate)
		if err != nil {
			return nil, err
		}
		syp := req.Amount
		payment.SYPAmount = &syp
		payment.TransactionExchangeRate = &rate
		payment.Amount = domain.RoundDisplayAmount(syp.Div(rate), domain.CurrencyUSD)
	} else {
		payment.Amount = domain.RoundDisplayAmount(req.Amount, domain.CurrencyUSD)
	}

	outstanding := sale.OutstandingUSD()
	if payment.Amount.GreaterThan(outstanding) {
		return nil, fmt.Errorf("%w: payment of $%s exceeds outstanding balance of $%s",
			apperrors.ErrValidation, payment.Amount.StringFixed(2), outstanding.StringFixed(2))
	}

	if err := s.saleRepo.AddPaymentToSale(ctx, payment, *sale); err != nil {
		s.LogError(ctx, err, "failed to record payment", "sale_id", sale.SaleID)
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	s.LogInfo(ctx, "payment recorded",
		"payment_id", payment.PaymentID, "sale_id", sale.SaleID, "amount_usd", payment.Amount.String())
	return &payment, nil
}

func (s *PaymentService) GetPaymentByID(ctx context.Context, paymentID string) (*domain.CustomerPayment, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment by ID: %w", err)
	}
	return payment, nil
}

func (s *PaymentService) ListPaymentsBySale(ctx context.Context, saleID string) ([]domain.CustomerPayment, error) {
	payments, err := s.paymentRepo.FindPaymentsBySale(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments by sale: %w", err)
	}
	if payments == nil {
		return []domain.CustomerPayment{}, nil
	}
	return payments, nil
}

func (s *PaymentService) ListPaymentsByCustomer(ctx context.Context, customerID string, limit int, offset int) ([]domain.CustomerPayment, error) {
	payments, err := s.paymentRepo.FindPaymentsByCustomer(ctx, customerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments by customer: %w", err)
	}
	if payments == nil {
		return []domain.CustomerPayment{}, nil
	}
	return payments, nil
}
