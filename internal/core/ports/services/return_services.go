package services

import (
	"context"

	"github.com/RamaTay/DecorERP/internal/core/domain"
	"github.com/RamaTay/DecorERP/internal/dto"
)

// ReturnReaderSvc defines read operations for return data
type ReturnReaderSvc interface {
	// GetReturnByID retrieves a return with its items.
	GetReturnByID(ctx context.Context, returnID string) (*domain.Return, error)

	// ListReturns retrieves a paginated list of returns of one kind.
	ListReturns(ctx context.Context, kind domain.ReturnKind, limit int, offset int) ([]domain.Return, error)
}

// ReturnWriterSvc defines write operations for return data
type ReturnWriterSvc interface {
	// CreateReturn records a return against a sale or a purchase invoice.
	CreateReturn(ctx context.Context, req dto.CreateReturnRequest, creatorUserID string) (*domain.Return, error)

	// UpdateReturnStatus transitions the processing and/or refund status,
	// moving stock when the return completes.
	UpdateReturnStatus(ctx context.Context, returnID string, req dto.UpdateReturnStatusRequest, updaterUserID string) (*domain.Return, error)
}

// ReturnSvcFacade combines all return-related service interfaces
type ReturnSvcFacade interface {
	ReturnReaderSvc
	ReturnWriterSvc
}
