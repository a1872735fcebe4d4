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

// SaleService rings up sales. Prices resolve from the sale's price list in
// USD; SYP sales convert each unit price at the frozen transaction rate and
// round it up to the nearest hundred before multiplying by quantity.
type SaleService struct {
	BaseService
	saleRepo      portsrepo.SaleRepositoryFacade
	customerRepo  portsrepo.CustomerRepositoryFacade
	productRepo   portsrepo.ProductRepositoryFacade
	priceListRepo portsrepo.PriceListRepositoryFacade
	currencySvc   portssvc.CurrencyReaderSvc
}

func NewSaleService(
	saleRepo portsrepo.SaleRepositoryFacade,
	customerRepo portsrepo.CustomerRepositoryFacade,
	productRepo portsrepo.ProductRepositoryFacade,
	priceListRepo portsrepo.PriceListRepositoryFacade,
	currencySvc portssvc.CurrencyReaderSvc,
) *SaleService {
	return &SaleService{
		saleRepo:      saleRepo,
		customerRepo:  customerRepo,
		productRepo:   productRepo,
		priceListRepo: priceListRepo,
		currencySvc:   currencySvc,
	}
}

func (s *SaleService) CreateSale(ctx context.Context, req dto.CreateSaleRequest, creatorUserID string) (*domain.Sale, error) {
	currency := domain.Currency(req.Currency)
	if !currency.Valid() {
		return nil, fmt.Errorf("%w: unknown currency %s", apperrors.ErrValidation, req.Currency)
	}

	customer, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer for sale: %w", err)
	}

	priceListID := req.PriceListID
	if priceListID == "" {
		priceListID = customer.DefaultPriceListID
	}
	if priceListID == "" {
		return nil, fmt.Errorf("%w: no price list given and customer has no default", apperrors.ErrValidation)
	}
	priceList, err := s.priceListRepo.FindPriceListByID(ctx, priceListID)
	if err != nil {
		return nil, fmt.Errorf("failed to get price list for sale: %w", err)
	}
	if priceList.Status != domain.PriceListActive {
		return nil, fmt.Errorf("%w: price list %s is not active", apperrors.ErrValidation, priceList.Name)
	}

	var rate decimal.Decimal
	if currency == domain.CurrencySYP {
		rate, err = resolveTransactionRate(ctx, s.currencySvc, req.TransactionExchangeRate, req.SaleDate)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now()
	saleID := uuid.NewString()
	items := make([]domain.SaleItem, 0, len(req.Items))
	total := decimal.Zero

	for _, in := range req.Items {
		variant, err := s.productRepo.FindProductUnitSize(ctx, in.ProductID, in.UnitSizeID)
		if err != nil {
			return nil, fmt.Errorf("failed to get product variant for sale: %w", err)
		}
		if variant.StockLevel < in.Quantity {
			return nil, fmt.Errorf("%w: insufficient stock for SKU %s (%d on hand, %d requested)",
				apperrors.ErrValidation, variant.SKU, variant.StockLevel, in.Quantity)
		}

		priceItem, err := s.priceListRepo.FindPriceListItem(ctx, priceListID, in.ProductID, in.UnitSizeID)
		if err != nil {
			return nil, fmt.Errorf("failed to get price for sale item: %w", err)
		}
		if !priceItem.Price.IsPositive() {
			return nil, fmt.Errorf("%w: SKU %s has no price in list %s", apperrors.ErrValidation, variant.SKU, priceList.Name)
		}

		// Unit prices are shaped per currency before the subtotal is taken:
		// the line total is quantity times the rounded price, never a
		// re-rounding of the raw product.
		var unitPrice decimal.Decimal
		if currency == domain.CurrencySYP {
			unitPrice = domain.RoundUnitPriceSYP(priceItem.Price.Mul(rate))
		} else {
			unitPrice = domain.RoundDisplayAmount(priceItem.Price, domain.CurrencyUSD)
		}
		subtotal := unitPrice.Mul(decimal.NewFromInt(int64(in.Quantity)))
		total = total.Add(subtotal)

		items = append(items, domain.SaleItem{
			SaleItemID: uuid.NewString(),
			SaleID:     saleID,
			ProductID:  in.ProductID,
			UnitSizeID: in.UnitSizeID,
			Quantity:   in.Quantity,
			UnitPrice:  unitPrice,
			Subtotal:   subtotal,
		})
	}

	sale := domain.Sale{
		SaleID:        saleID,
		CustomerID:    req.CustomerID,
		CustomerName:  customer.FullName,
		PriceListID:   priceListID,
		Currency:      currency,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		SaleDate:      now,
		Status:        domain.SaleCompleted,
		Notes:         req.Notes,
		Items:         items,
		AuditFields:   domain.NewAuditFields(creatorUserID, now),
	}
	if req.SaleDate != nil {
		sale.SaleDate = *req.SaleDate
	}

	if currency == domain.CurrencySYP {
		sypTotal := total
		sale.SYPAmount = &sypTotal
		sale.TransactionExchangeRate = &rate
		sale.TotalAmount = domain.RoundDisplayAmount(total.Div(rate), domain.CurrencyUSD)
	} else {
		sale.TotalAmount = total
	}

	payment := decimal.Zero
	if req.PaymentAmount != nil {
		payment = *req.PaymentAmount
		if payment.IsNegative() {
			return nil, fmt.Errorf("%w: payment amount cannot be negative", apperrors.ErrValidation)
		}
		if currency == domain.CurrencySYP {
			payment = domain.RoundDisplayAmount(payment.Div(rate), domain.CurrencyUSD)
		}
		if payment.GreaterThan(sale.TotalAmount) {
			return nil, fmt.Errorf("%w: payment amount exceeds sale total", apperrors.ErrValidation)
		}
	}
	sale.PaymentAmount = payment

	if err := s.saleRepo.SaveSale(ctx, sale); err != nil {
		s.LogError(ctx, err, "failed to save sale", "sale_id", saleID)
		return nil, fmt.Errorf("failed to create sale: %w", err)
	}

	s.LogInfo(ctx, "sale created",
		"sale_id", saleID, "currency", string(currency), "total_usd", sale.TotalAmount.String())
	return s.saleRepo.FindSaleByID(ctx, saleID)
}

// CancelSale voids a completed sale and puts its stock back.
func (s *SaleService) CancelSale(ctx context.Context, saleID string, req dto.CancelSaleRequest, updaterUserID string) (*domain.Sale, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sale for cancellation: %w", err)
	}
	if sale.Status != domain.SaleCompleted {
		return nil, fmt.Errorf("%w: only completed sales can be cancelled", apperrors.ErrValidation)
	}

	sale.Status = domain.SaleCancelled
	if req.Reason != "" {
		if sale.Notes != "" {
			sale.Notes += "\n"
		}
		sale.Notes += "Cancelled: " + req.Reason
	}
	sale.Touch(updaterUserID, time.Now())

	if err := s.saleRepo.CancelSale(ctx, *sale); err != nil {
		return nil, fmt.Errorf("failed to cancel sale: %w", err)
	}

	s.LogInfo(ctx, "sale cancelled", "sale_id", saleID)
	return s.saleRepo.FindSaleByID(ctx, saleID)
}

func (s *SaleService) GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sale by ID: %w", err)
	}
	return sale, nil
}

func (s *SaleService) ListSales(ctx context.Context, limit int, offset int) ([]domain.Sale, error) {
	sales, err := s.saleRepo.FindSales(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	if sales == nil {
		return []domain.Sale{}, nil
	}
	return sales, nil
}

func (s *SaleService) ListSalesByCustomer(ctx context.Context, customerID string, limit int, offset int) ([]domain.Sale, error) {
	sales, err := s.saleRepo.FindSalesByCustomer(ctx, customerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales by customer: %w", err)
	}
	if sales == nil {
		return []domain.Sale{}, nil
	}
	return sales, nil
}
