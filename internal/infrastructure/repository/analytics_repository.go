package repository

import (
	"context"

	domainRepo "github.com/pmoura/purchases-api/internal/domain/repository"
	"github.com/pmoura/purchases-api/pkg/daterange"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// rangePredicate appends a bound half-open predicate on the column when the
// filter is set. ORDER BY direction cannot be bound, so sortDirection
// whitelists it instead.
func rangePredicate(column string, f daterange.Filter, args []interface{}) (string, []interface{}) {
	start, end, ok := f.Bounds()
	if !ok {
		return "", args
	}
	return " AND " + column + " >= ? AND " + column + " < ?", append(args, start, end)
}

func sortDirection(direction string) string {
	if direction == "DESC" || direction == "desc" {
		return "DESC"
	}
	return "ASC"
}

func (r *analyticsRepository) BestBuyers(ctx context.Context, filter daterange.Filter, direction string) ([]domainRepo.BestBuyerRow, error) {
	var results []domainRepo.BestBuyerRow

	query := `
		SELECT
			c.id AS customer_id,
			c.name AS name,
			c.telephone AS telephone,
			c.email AS email,
			COALESCE(SUM(pu.total_value), 0) / 100.0 AS total_spent
		FROM customers c
		JOIN purchases pu ON pu.customer_id = c.id
		WHERE pu.deleted_at IS NULL`

	var args []interface{}
	pred, args := rangePredicate("pu.purchase_date", filter, args)
	query += pred
	query += `
		GROUP BY c.id, c.name, c.telephone, c.email
		ORDER BY total_spent ` + sortDirection(direction)

	err := r.db.WithContext(ctx).Raw(query, args...).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *analyticsRepository) BestSellers(ctx context.Context, filter daterange.Filter, direction string) ([]domainRepo.BestSellerRow, error) {
	var results []domainRepo.BestSellerRow

	query := `
		SELECT
			p.id AS product_id,
			p.name AS name,
			p.price / 100.0 AS price,
			p.stock AS stock,
			COALESCE(SUM(pi.quantity), 0) AS units_sold
		FROM purchase_items pi
		JOIN purchases pu ON pu.id = pi.purchase_id
		JOIN products p ON p.id = pi.product_id
		WHERE pu.deleted_at IS NULL`

	var args []interface{}
	pred, args := rangePredicate("pu.purchase_date", filter, args)
	query += pred
	query += `
		GROUP BY p.id, p.name, p.price, p.stock
		ORDER BY units_sold ` + sortDirection(direction)

	err := r.db.WithContext(ctx).Raw(query, args...).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *analyticsRepository) PurchaseVolume(ctx context.Context, filter daterange.Filter) ([]domainRepo.PurchaseVolumeRow, error) {
	var results []domainRepo.PurchaseVolumeRow

	query := `
		SELECT
			DATE(pu.purchase_date) AS day,
			COUNT(pu.id) AS purchases,
			COALESCE(SUM(pu.total_value), 0) / 100.0 AS total_spent
		FROM purchases pu
		WHERE pu.deleted_at IS NULL`

	var args []interface{}
	pred, args := rangePredicate("pu.purchase_date", filter, args)
	query += pred
	query += `
		GROUP BY DATE(pu.purchase_date)
		ORDER BY day ASC`

	err := r.db.WithContext(ctx).Raw(query, args...).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
