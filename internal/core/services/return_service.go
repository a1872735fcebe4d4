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
	"github.com/shopspring/decimal"
)

// ReturnService records returns against sales or purchase invoices. Stock
// only moves when a return transitions into the completed state: sale
// returns put goods back, purchase returns ship goods out.
type ReturnService struct {
	BaseService
	returnRepo   portsrepo.ReturnRepositoryFacade
	saleRepo     portsrepo.SaleRepositoryFacade
	purchaseRepo portsrepo.PurchaseRepositoryFacade
	productRepo  portsrepo.ProductRepositoryFacade
	currencySvc  portssvc.CurrencyReaderSvc
}

func NewReturnService(
	returnRepo portsrepo.ReturnRepositoryFacade,
	saleRepo portsrepo.SaleRepositoryFacade,
	purchaseRepo portsrepo.PurchaseRepositoryFacade,
	productRepo portsrepo.ProductRepositoryFacade,
	currencySvc portssvc.CurrencyReaderSvc,
) *ReturnService {
	return &ReturnService{
		returnRepo:   returnRepo,
		saleRepo:     saleRepo,
		purchaseRepo: purchaseRepo,
		productRepo:  productRepo,
		currencySvc:  currencySvc,
	}
}

func (s *ReturnService) CreateReturn(ctx context.Context, req dto.CreateReturnRequest, creatorUserID string) (*domain.Return, error) {
	kind := domain.ReturnKind(req.Kind)
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown return kind %s", apperrors.ErrValidation, req.Kind)
	}
	currency := domain.Currency(req.Currency)
	if !currency.Valid() {
		return nil, fmt.Errorf("%w: unknown currency %s", apperrors.ErrValidation, req.Currency)
	}

	switch kind {
	case domain.ReturnSale:
		sale, err := s.saleRepo.FindSaleByID(ctx, req.TransactionID)
		if err != nil {
			return nil, fmt.Errorf("failed to get sale for return: %w", err)
		}
		if sale.Status != domain.SaleCompleted {
			return nil, fmt.Errorf("%w: only completed sales can be returned against", apperrors.ErrValidation)
		}
	case domain.ReturnPurchase:
		purchase, err := s.purchaseRepo.FindPurchaseByID(ctx, req.TransactionID)
		if err != nil {
			return nil, fmt.Errorf("failed to get purchase for return: %w", err)
		}
		if purchase.Status == domain.PurchaseCancelled {
			return nil, fmt.Errorf("%w: cancelled purchases cannot be returned against", apperrors.ErrValidation)
		}
	}

	now := time.Now()
	returnID := uuid.NewString()
	items := make([]domain.ReturnItem, 0, len(req.Items))
	total := decimal.Zero

	for _, in := range req.Items {
		if _, err := s.productRepo.FindProductUnitSize(ctx, in.ProductID, in.UnitSizeID); err != nil {
			return nil, fmt.Errorf("failed to get product variant for return: %w", err)
		}
		if in.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: unit price cannot be negative", apperrors.ErrValidation)
		}
		subtotal := in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity)))
		total = total.Add(subtotal)
		items = append(items, domain.ReturnItem{
			ReturnItemID:  uuid.NewString(),
			ReturnID:      returnID,
			ProductID:     in.ProductID,
			UnitSizeID:    in.UnitSizeID,
			Quantity:      in.Quantity,
			UnitPrice:     in.UnitPrice,
			Subtotal:      subtotal,
			ReturnReason:  in.ReturnReason,
			ItemCondition: in.ItemCondition,
		})
	}

	ret := domain.Return{
		ReturnID:      returnID,
		Kind:          kind,
		TransactionID: req.TransactionID,
		ReturnDate:    now,
		ReturnReason:  req.ReturnReason,
		Currency:      currency,
		Status:        domain.ReturnPending,
		RefundStatus:  domain.RefundPending,
		Notes:         req.Notes,
		Items:         items,
		AuditFields:   domain.NewAuditFields(creatorUserID, now),
	}
	if req.ReturnDate != nil {
		ret.ReturnDate = *req.ReturnDate
	}

	if currency == domain.CurrencySYP {
		rate, err := resolveTransactionRate(ctx, s.currencySvc, req.TransactionExchangeRate, req.ReturnDate)
		if err != nil {
			return nil, err
		}
		syp := total
		ret.SYPAmount = &syp
		ret.TransactionExchangeRate = &rate
		ret.RefundAmount = domain.RoundDisplayAmount(total.Div(rate), domain.CurrencyUSD)
	} else {
		ret.RefundAmount = domain.RoundDisplayAmount(total, domain.CurrencyUSD)
	}

	if err := s.returnRepo.SaveReturn(ctx, ret); err != nil {
		s.LogError(ctx, err, "failed to save return", "return_id", returnID)
		return nil, fmt.Errorf("failed to create return: %w", err)
	}

	s.LogInfo(ctx, "return recorded", "return_id", returnID, "kind", string(kind))
	return s.returnRepo.FindReturnByID(ctx, returnID)
}

func (s *ReturnService) UpdateReturnStatus(ctx context.Context, returnID string, req dto.UpdateReturnStatusRequest, updaterUserID string) (*domain.Return, error) {
	if req.Status == nil && req.RefundStatus == nil {
		return nil, fmt.Errorf("%w: nothing to update", apperrors.ErrValidation)
	}

	ret, err := s.returnRepo.FindReturnByID(ctx, returnID)
	if err != nil {
		return nil, fmt.Errorf("failed to get return for status update: %w", err)
	}

	adjustStock := false
	if req.Status != nil {
		newStatus := domain.ReturnStatus(*req.Status)
		if ret.Status == domain.ReturnCompleted && newStatus != ret.Status {
			return nil, fmt.Errorf("%w: completed returns cannot change status", apperrors.ErrValidation)
		}
		adjustStock = newStatus == domain.ReturnCompleted && ret.Status != domain.ReturnCompleted
		ret.Status = newStatus
	}
	if req.RefundStatus != nil {
		if domain.RefundStatus(*req.RefundStatus) == domain.RefundRefunded && ret.Status != domain.ReturnCompleted {
			return nil, fmt.Errorf("%w: refunds require a completed return", apperrors.ErrValidation)
		}
		ret.RefundStatus = domain.RefundStatus(*req.RefundStatus)
	}
	ret.Touch(updaterUserID, time.Now())

	if err := s.returnRepo.UpdateReturnStatus(ctx, *ret, adjustStock); err != nil {
		return nil, fmt.Errorf("failed to update return status: %w", err)
	}

	s.LogInfo(ctx, "return status updated", "return_id", returnID, "stock_adjusted", adjustStock)
	return s.returnRepo.FindReturnByID(ctx, returnID)
}

func (s *ReturnService) GetReturnByID(ctx context.Context, returnID string) (*domain.Return, error) {
	ret, err := s.returnRepo.FindReturnByID(ctx, returnID)
	if err != nil {
		return nil, fmt.Errorf("failed to get return by ID: %w", err)
	}
	return ret, nil
}

func (s *ReturnService) ListReturns(ctx context.Context, kind domain.ReturnKind, limit int, offset int) ([]domain.Return, error) {
	if kind != "" && !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown return kind %s", apperrors.ErrValidation, string(kind))
	}
	returns, err := s.returnRepo.FindReturns(ctx, kind, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list returns: %w", err)
	}
	if returns == nil {
		return []domain.Return{}, nil
	}
	return returns, nil
}
