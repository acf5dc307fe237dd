package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pmoura/purchases-api/internal/domain/entity"
)

// ProductRepository defines data access methods for products
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error

	// GetByID returns the active product or (nil, nil) when absent or
	// soft-deleted.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// GetByIDs retrieves multiple active products in a single query. Ids
	// with no matching row are simply missing from the result.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error)

	Update(ctx context.Context, product *entity.Product) error

	// Delete soft-deletes by stamping deleted_at.
	Delete(ctx context.Context, id uuid.UUID) error

	List(ctx context.Context, params *ListParams) ([]entity.Product, int64, error)
}
