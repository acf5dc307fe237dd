package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pmoura/purchases-api/internal/domain/entity"
	"github.com/pmoura/purchases-api/pkg/daterange"
)

// PurchaseFilterParams carries listing filters for purchases
type PurchaseFilterParams struct {
	ListParams
	CustomerID *uuid.UUID
	Date       daterange.Filter
}

// PurchaseRepository defines data access methods for the purchase aggregate
type PurchaseRepository interface {
	// CreateWithItems persists a purchase and its items as one unit.
	CreateWithItems(ctx context.Context, purchase *entity.Purchase) error

	// GetByID returns the active purchase with customer and items loaded,
	// or (nil, nil) when absent or soft-deleted. The customer preload is
	// unscoped: a customer soft-deleted after being linked still appears.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error)

	// ReplaceItems deletes every existing item of the purchase and saves
	// the purchase with its new item set in one transaction. Passing a
	// purchase with no items clears the collection.
	ReplaceItems(ctx context.Context, purchase *entity.Purchase) error

	// Update saves purchase column changes without touching items.
	Update(ctx context.Context, purchase *entity.Purchase) error

	// Delete soft-deletes by stamping deleted_at. Items stay in place;
	// the aggregate is gone with its root.
	Delete(ctx context.Context, id uuid.UUID) error

	List(ctx context.Context, params *PurchaseFilterParams) ([]entity.Purchase, int64, error)
}
