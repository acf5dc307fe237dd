package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pmoura/purchases-api/internal/domain/entity"
	"github.com/pmoura/purchases-api/pkg/pagination"
)

// ListParams carries ordering and pagination for plain entity listings.
// SortBy must already be validated against the entity's sortable columns by
// the handler layer; the repositories interpolate it into ORDER BY.
type ListParams struct {
	SortBy     string
	SortOrder  string // "ASC" or "DESC"
	Pagination *pagination.PaginationParams
}

// CustomerRepository defines data access methods for customers
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error

	// GetByID returns the active customer or (nil, nil) when absent or
	// soft-deleted.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	Update(ctx context.Context, customer *entity.Customer) error

	// Delete soft-deletes by stamping deleted_at.
	Delete(ctx context.Context, id uuid.UUID) error

	List(ctx context.Context, params *ListParams) ([]entity.Customer, int64, error)
}
