package services

import (
	"context"
	"fmt"
	"time"

	"github.com/RamaTay/DecorERP/internal/apperrors"
	"github.com/RamaTay/DecorERP/internal/core/domain"
	portsrepo "github.com/RamaTay/DecorERP/internal/core/ports/repositories"
	"github.com/RamaTay/DecorERP/internal/dto"
	"github.com/google/uuid"
)

type PriceListService struct {
	BaseService
	priceListRepo portsrepo.PriceListRepositoryFacade
}

func NewPriceListService(priceListRepo portsrepo.PriceListRepositoryFacade) *PriceListService {
	return &PriceListService{priceListRepo: priceListRepo}
}

func (s *PriceListService) CreatePriceList(ctx context.Context, req dto.CreatePriceListRequest, creatorUserID string) (*domain.PriceList, error) {
	status := domain.PriceListStatus(req.Status)
	if status == "" {
		status = domain.PriceListActive
	}

	list := domain.PriceList{
		PriceListID: uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Status:      status,
		AuditFields: domain.NewAuditFields(creatorUserID, time.Now()),
	}

	if err := s.priceListRepo.SavePriceList(ctx, list); err != nil {
		return nil, fmt.Errorf("failed to create price list: %w", err)
	}
	return s.priceListRepo.FindPriceListByID(ctx, list.PriceListID)
}

func (s *PriceListService) UpdatePriceList(ctx context.Context, priceListID string, req dto.UpdatePriceListRequest, updaterUserID string) (*domain.PriceList, error) {
	list, err := s.priceListRepo.FindPriceListByID(ctx, priceListID)
	if err != nil {
		return nil, fmt.Errorf("failed to get price list: %w", err)
	}

	list.Name = req.Name
	list.Description = req.Description
	list.Status = domain.PriceListStatus(req.Status)
	list.Touch(updaterUserID, time.Now())

	if err := s.priceListRepo.UpdatePriceList(ctx, *list); err != nil {
		return nil, fmt.Errorf("failed to update price list: %w", err)
	}
	return list, nil
}

// SetPriceListItems applies price changes. Negative prices are rejected here
// so the repository only ever sees valid amounts.
func (s *PriceListService) SetPriceListItems(ctx context.Context, priceListID string, req dto.SetPriceListItemsRequest, updaterUserID string) (*domain.PriceList, error) {
	if _, err := s.priceListRepo.FindPriceListByID(ctx, priceListID); err != nil {
		return nil, fmt.Errorf("failed to get price list: %w", err)
	}

	items := make([]domain.PriceListItem, 0, len(req.Items))
	for _, in := range req.Items {
		if in.Price.IsNegative() {
			return nil, fmt.Errorf("%w: price cannot be negative", apperrors.ErrValidation)
		}
		items = append(items, domain.PriceListItem{
			PriceListItemID: uuid.NewString(),
			PriceListID:     priceListID,
			ProductID:       in.ProductID,
			UnitSizeID:      in.UnitSizeID,
			Price:           in.Price,
		})
	}

	if err := s.priceListRepo.UpsertPriceListItems(ctx, priceListID, items); err != nil {
		return nil, fmt.Errorf("failed to set price list items: %w", err)
	}

	s.LogInfo(ctx, "price list items updated", "price_list_id", priceListID, "items", len(items))
	return s.priceListRepo.FindPriceListByID(ctx, priceListID)
}

func (s *PriceListService) DeletePriceList(ctx context.Context, priceListID string) error {
	if err := s.priceListRepo.DeletePriceList(ctx, priceListID); err != nil {
		return fmt.Errorf("failed to delete price list: %w", err)
	}
	return nil
}

func (s *PriceListService) GetPriceListByID(ctx context.Context, priceListID string) (*domain.PriceList, error) {
	list, err := s.priceListRepo.FindPriceListByID(ctx, priceListID)
	if err != nil {
		return nil, fmt.Errorf("failed to get price list by ID: %w", err)
	}
	return list, nil
}

func (s *PriceListService) ListPriceLists(ctx context.Context) ([]domain.PriceList, error) {
	lists, err := s.priceListRepo.FindPriceLists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list price lists: %w", err)
	}
	if lists == nil {
		return []domain.PriceList{}, nil
	}
	return lists, nil
}
