package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pmoura/purchases-api/internal/domain/entity"
	domainRepo "github.com/pmoura/purchases-api/internal/domain/repository"
	"gorm.io/gorm"
)

type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository creates a new purchase repository
func NewPurchaseRepository(db *gorm.DB) domainRepo.PurchaseRepository {
	return &purchaseRepository{db: db}
}

// unscopedCustomer preloads the purchase's customer without the soft-delete
// filter: a customer removed after being linked stays visible on the rows
// that already reference it.
func unscopedCustomer(db *gorm.DB) *gorm.DB {
	return db.Unscoped()
}

func (r *purchaseRepository) CreateWithItems(ctx context.Context, purchase *entity.Purchase) error {
	// Create persists the items association in the same transaction. The
	// customer row already exists and is omitted from the write.
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Customer").Create(purchase).Error
	})
}

func (r *purchaseRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	var purchase entity.Purchase
	err := r.db.WithContext(ctx).
		Preload("Customer", unscopedCustomer).
		Preload("Items").
		First(&purchase, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (r *purchaseRepository) ReplaceItems(ctx context.Context, purchase *entity.Purchase) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Full replacement: the old item rows go away, item ids are not
		// stable across updates.
		if err := tx.Where("purchase_id = ?", purchase.ID).
			Delete(&entity.PurchaseItem{}).Error; err != nil {
			return err
		}
		for i := range purchase.Items {
			purchase.Items[i].ID = uuid.Nil
			purchase.Items[i].PurchaseID = purchase.ID
		}
		if len(purchase.Items) > 0 {
			if err := tx.Create(&purchase.Items).Error; err != nil {
				return err
			}
		}
		return tx.Omit("Items", "Customer").Save(purchase).Error
	})
}

func (r *purchaseRepository) Update(ctx context.Context, purchase *entity.Purchase) error {
	return r.db.WithContext(ctx).Omit("Items", "Customer").Save(purchase).Error
}

func (r *purchaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Purchase{}, "id = ?", id).Error
}

func (r *purchaseRepository) List(ctx context.Context, params *domainRepo.PurchaseFilterParams) ([]entity.Purchase, int64, error) {
	var purchases []entity.Purchase
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Purchase{}).
		Scopes(DateRangeScope("purchase_date", params.Date))

	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Customer", unscopedCustomer).
		Preload("Items").
		Order(orderClause(params.SortBy, params.SortOrder, "purchase_date")).
		Find(&purchases).Error

	return purchases, total, err
}
