package repositories

import (
	"context"

	"github.com/RamaTay/DecorERP/internal/core/domain"
)

// ReturnReader defines read operations for return data
type ReturnReader interface {
	// FindReturnByID retrieves a return with its items.
	FindReturnByID(ctx context.Context, returnID string) (*domain.Return, error)

	// FindReturns retrieves a paginated list of returns of one kind.
	FindReturns(ctx context.Context, kind domain.ReturnKind, limit int, offset int) ([]domain.Return, error)
}

// ReturnWriter defines write operations for return data
type ReturnWriter interface {
	// SaveReturn persists a return with its items.
	SaveReturn(ctx context.Context, ret domain.Return) error

	// UpdateReturnStatus applies a processing and/or refund status change.
	// Completing a sale return restores stock for every line in the same
	// transaction; completing a purchase return decrements it.
	UpdateReturnStatus(ctx context.Context, ret domain.Return, adjustStock bool) error
}

// ReturnRepositoryFacade combines all return-related repository interfaces
// This is a facade for clients that need access to all operations
type ReturnRepositoryFacade interface {
	ReturnReader
	ReturnWriter
}
