package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pmoura/purchases-api/pkg/daterange"
)

// BestBuyerRow is a raw analytics row: customer columns plus the summed
// metric. Not a domain entity.
type BestBuyerRow struct {
	CustomerID uuid.UUID `json:"customer_id"`
	Name       string    `json:"name"`
	Telephone  string    `json:"telephone"`
	Email      string    `json:"email"`
	TotalSpent float64   `json:"total_spent"`
}

// BestSellerRow is a raw analytics row: product columns plus the summed
// units sold.
type BestSellerRow struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Stock     int       `json:"stock"`
	UnitsSold int64     `json:"units_sold"`
}

// PurchaseVolumeRow aggregates purchase totals for one calendar day.
type PurchaseVolumeRow struct {
	Day        string  `json:"day"` // YYYY-MM-DD
	Purchases  int64   `json:"purchases"`
	TotalSpent float64 `json:"total_spent"`
}

// AnalyticsRepository defines grouped-join reporting queries. All range
// predicates are parameter-bound, never interpolated.
type AnalyticsRepository interface {
	// BestBuyers ranks customers by the sum of their purchases' totals
	// under an optional date filter.
	BestBuyers(ctx context.Context, filter daterange.Filter, direction string) ([]BestBuyerRow, error)

	// BestSellers ranks products by units sold across purchase items
	// under an optional date filter.
	BestSellers(ctx context.Context, filter daterange.Filter, direction string) ([]BestSellerRow, error)

	// PurchaseVolume returns per-day purchase counts and totals within
	// the filter range.
	PurchaseVolume(ctx context.Context, filter daterange.Filter) ([]PurchaseVolumeRow, error)
}
