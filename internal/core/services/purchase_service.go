package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RamaTay/DecorERP/internal/apperrors"
	"github.com/RamaTay/DecorERP/internal/core/domain"
	portsrepo "github.com/RamaTay/DecorERP/internal/core/ports/repositories"
	"github.com/RamaTay/DecorERP/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseService manages supplier invoices and their status history.
type PurchaseService struct {
	BaseService
	purchaseRepo portsrepo.PurchaseRepositoryFacade
	supplierRepo portsrepo.SupplierRepositoryFacade
	productRepo  portsrepo.ProductRepositoryFacade
}

func NewPurchaseService(
	purchaseRepo portsrepo.PurchaseRepositoryFacade,
	supplierRepo portsrepo.SupplierRepositoryFacade,
	productRepo portsrepo.ProductRepositoryFacade,
) *PurchaseService {
	return &PurchaseService{purchaseRepo: purchaseRepo, supplierRepo: supplierRepo, productRepo: productRepo}
}

func (s *PurchaseService) CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest, creatorUserID string) (*domain.PurchaseInvoice, error) {
	if _, err := s.supplierRepo.FindSupplierByID(ctx, req.SupplierID); err != nil {
		return nil, fmt.Errorf("failed to get supplier for purchase: %w", err)
	}

	existing, err := s.purchaseRepo.FindPurchaseByInvoiceNumber(ctx, req.InvoiceNumber)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check invoice number: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: invoice number %s already recorded", apperrors.ErrDuplicate, req.InvoiceNumber)
	}

	now := time.Now()
	invoiceID := uuid.NewString()
	items := make([]domain.PurchaseItem, 0, len(req.Items))
	total := decimal.Zero

	for _, in := range req.Items {
		if _, err := s.productRepo.FindProductUnitSize(ctx, in.ProductID, in.UnitSizeID); err != nil {
			return nil, fmt.Errorf("failed to get product variant for purchase: %w", err)
		}
		if !in.UnitPrice.IsPositive() {
			return nil, fmt.Errorf("%w: unit price must be positive", apperrors.ErrValidation)
		}
		subtotal := in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity)))
		total = total.Add(subtotal)
		items = append(items, domain.PurchaseItem{
			PurchaseItemID:    uuid.NewString(),
			PurchaseInvoiceID: invoiceID,
			ProductID:         in.ProductID,
			UnitSizeID:        in.UnitSizeID,
			Quantity:          in.Quantity,
			UnitPrice:         in.UnitPrice,
			Subtotal:          subtotal,
		})
	}

	purchase := domain.PurchaseInvoice{
		PurchaseInvoiceID: invoiceID,
		SupplierID:        req.SupplierID,
		InvoiceNumber:     req.InvoiceNumber,
		Date:              now,
		PaymentDueDate:    req.PaymentDueDate,
		TotalAmount:       total,
		Status:            domain.PurchasePending,
		PaymentStatus:     domain.PurchaseUnpaid,
		Notes:             req.Notes,
		Items:             items,
		AuditFields:       domain.NewAuditFields(creatorUserID, now),
	}
	if req.Date != nil {
		purchase.Date = *req.Date
	}

	if err := s.purchaseRepo.SavePurchase(ctx, purchase); err != nil {
		s.LogError(ctx, err, "failed to save purchase", "invoice_number", req.InvoiceNumber)
		return nil, fmt.Errorf("failed to create purchase: %w", err)
	}

	s.LogInfo(ctx, "purchase recorded", "purchase_invoice_id", invoiceID, "invoice_number", req.InvoiceNumber)
	return s.purchaseRepo.FindPurchaseByID(ctx, invoiceID)
}

// UpdatePurchaseStatus moves the receiving and/or payment status and appends
// an audit log entry covering exactly the dimensions that changed.
func (s *PurchaseService) UpdatePurchaseStatus(ctx context.Context, purchaseInvoiceID string, req dto.UpdatePurchaseStatusRequest, updaterUserID string) (*domain.PurchaseInvoice, error) {
	if req.Status == nil && req.PaymentStatus == nil {
		return nil, fmt.Errorf("%w: nothing to update", apperrors.ErrValidation)
	}

	purchase, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseInvoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get purchase for status update: %w", err)
	}

	now := time.Now()
	log := domain.PurchaseStatusLog{
		PurchaseStatusLogID: uuid.NewString(),
		PurchaseInvoiceID:   purchaseInvoiceID,
		Reason:              req.Reason,
		CreatedAt:           now,
		CreatedBy:           updaterUserID,
	}

	if req.Status != nil {
		newStatus := domain.PurchaseStatus(*req.Status)
		if purchase.Status == domain.PurchaseCancelled {
			return nil, fmt.Errorf("%w: cancelled purchases cannot change status", apperrors.ErrValidation)
		}
		if newStatus == domain.PurchaseCancelled && req.Reason == "" {
			return nil, fmt.Errorf("%w: cancelling a purchase requires a reason", apperrors.ErrValidation)
		}
		if newStatus != purchase.Status {
			old := purchase.Status
			log.OldStatus = &old
			log.NewStatus = &newStatus
			purchase.Status = newStatus
			if newStatus == domain.PurchaseCancelled {
				purchase.CancellationReason = req.Reason
			}
		}
	}

	if req.PaymentStatus != nil {
		newPayment := domain.PurchasePaymentStatus(*req.PaymentStatus)
		if newPayment != purchase.PaymentStatus {
			old := purchase.PaymentStatus
			log.OldPaymentStatus = &old
			log.NewPaymentStatus = &newPayment
			purchase.PaymentStatus = newPayment
			if newPayment == domain.PurchasePaid {
				paidAt := now
				purchase.PaymentDate = &paidAt
			}
		}
	}

	if log.NewStatus == nil && log.NewPaymentStatus == nil {
		// No-op transition; nothing to log or persist.
		return purchase, nil
	}

	purchase.Touch(updaterUserID, now)
	if err := s.purchaseRepo.UpdatePurchaseStatus(ctx, *purchase, log); err != nil {
		return nil, fmt.Errorf("failed to update purchase status: %w", err)
	}

	s.LogInfo(ctx, "purchase status updated", "purchase_invoice_id", purchaseInvoiceID)
	return s.purchaseRepo.FindPurchaseByID(ctx, purchaseInvoiceID)
}

func (s *PurchaseService) GetPurchaseByID(ctx context.Context, purchaseInvoiceID string) (*domain.PurchaseInvoice, error) {
	purchase, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseInvoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get purchase by ID: %w", err)
	}
	return purchase, nil
}

func (s *PurchaseService) ListPurchases(ctx context.Context, limit int, offset int) ([]domain.PurchaseInvoice, error) {
	purchases, err := s.purchaseRepo.FindPurchases(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	if purchases == nil {
		return []domain.PurchaseInvoice{}, nil
	}
	return purchases, nil
}

func (s *PurchaseService) ListPurchaseStatusLogs(ctx context.Context, purchaseInvoiceID string) ([]domain.PurchaseStatusLog, error) {
	logs, err := s.purchaseRepo.FindPurchaseStatusLogs(ctx, purchaseInvoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchase status logs: %w", err)
	}
	if logs == nil {
		return []domain.PurchaseStatusLog{}, nil
	}
	return logs, nil
}
