package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pmoura/purchases-api/internal/domain/entity"
	"github.com/pmoura/purchases-api/internal/domain/repository"
	"github.com/pmoura/purchases-api/internal/logger"
	"github.com/pmoura/purchases-api/pkg/apperror"
	"github.com/pmoura/purchases-api/pkg/pagination"
)

// PurchaseService builds and reconciles the purchase aggregate: it resolves
// the optional customer, snapshots current product prices into line items and
// keeps the derived total consistent with the item set.
type PurchaseService struct {
	purchaseRepo repository.PurchaseRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(
	purchaseRepo repository.PurchaseRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
) *PurchaseService {
	return &PurchaseService{
		purchaseRepo: purchaseRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
	}
}

// PurchaseItemInput represents one requested (product, quantity) pair
type PurchaseItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreatePurchaseInput represents the create purchase input
type CreatePurchaseInput struct {
	PurchaseDate time.Time
	CustomerID   *uuid.UUID
	Items        []PurchaseItemInput
}

// UpdatePurchaseInput represents the update purchase input. Nil fields are
// left untouched; a non-nil Items slice (including an empty one) replaces
// the whole line-item collection.
type UpdatePurchaseInput struct {
	ID           uuid.UUID
	PurchaseDate *time.Time
	CustomerID   *uuid.UUID
	Items        *[]PurchaseItemInput
}

// CreatePurchase creates a purchase with its line items and recomputed total
func (s *PurchaseService) CreatePurchase(ctx context.Context, input *CreatePurchaseInput) (*entity.Purchase, error) {
	purchase := &entity.Purchase{PurchaseDate: input.PurchaseDate}

	if input.CustomerID != nil {
		customer, err := s.resolveCustomer(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		purchase.CustomerID = &customer.ID
		purchase.Customer = customer
	}

	items, err := s.buildItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}
	purchase.Items = items
	purchase.RecomputeTotal()

	if err := s.purchaseRepo.CreateWithItems(ctx, purchase); err != nil {
		logger.L().Error().Err(err).Msg("failed to persist purchase")
		return nil, err
	}

	return purchase, nil
}

// GetPurchase retrieves an active purchase with its customer and items
func (s *PurchaseService) GetPurchase(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	purchase, err := s.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, apperror.NewNotFoundError(fmt.Sprintf("Purchase ID %s", id))
	}
	return purchase, nil
}

// UpdatePurchase applies the supplied changes to an active purchase. When a
// new item list is given the existing collection is discarded wholesale and
// rebuilt against current product prices; item ids do not survive this.
func (s *PurchaseService) UpdatePurchase(ctx context.Context, input *UpdatePurchaseInput) (*entity.Purchase, error) {
	purchase, err := s.purchaseRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, apperror.NewNotFoundError(fmt.Sprintf("Purchase ID %s", input.ID))
	}

	if input.PurchaseDate != nil {
		purchase.PurchaseDate = *input.PurchaseDate
	}

	if input.CustomerID != nil {
		customer, err := s.resolveCustomer(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		purchase.CustomerID = &customer.ID
		purchase.Customer = customer
	}

	if input.Items == nil {
		if err := s.purchaseRepo.Update(ctx, purchase); err != nil {
			logger.L().Error().Err(err).Str("purchase_id", input.ID.String()).Msg("failed to update purchase")
			return nil, err
		}
		return purchase, nil
	}

	items, err := s.buildItems(ctx, *input.Items)
	if err != nil {
		return nil, err
	}
	purchase.Items = items
	purchase.RecomputeTotal()

	if err := s.purchaseRepo.ReplaceItems(ctx, purchase); err != nil {
		logger.L().Error().Err(err).Str("purchase_id", input.ID.String()).Msg("failed to replace purchase items")
		return nil, err
	}

	return purchase, nil
}

// RemovePurchase soft-deletes an active purchase. Calling it again for the
// same id fails with not found, the record is no longer active.
func (s *PurchaseService) RemovePurchase(ctx context.Context, id uuid.UUID) error {
	purchase, err := s.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if purchase == nil {
		return apperror.NewNotFoundError(fmt.Sprintf("Purchase ID %s", id))
	}
	return s.purchaseRepo.Delete(ctx, id)
}

// ListPurchases lists active purchases with filtering and pagination
func (s *PurchaseService) ListPurchases(ctx context.Context, params *repository.PurchaseFilterParams) (*pagination.PaginatedResult[entity.Purchase], error) {
	purchases, total, err := s.purchaseRepo.List(ctx, params)
	if err != nil {
		logger.L().Error().Err(err).Msg("failed to list purchases")
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(purchases, pag), nil
}

func (s *PurchaseService) resolveCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError(fmt.Sprintf("Customer ID %s", id))
	}
	return customer, nil
}

// buildItems turns requested (product, quantity) pairs into line items with
// price snapshots. Quantities are deduplicated by product id, the last entry
// wins. Products the bulk lookup does not return are dropped without error.
func (s *PurchaseService) buildItems(ctx context.Context, inputs []PurchaseItemInput) ([]entity.PurchaseItem, error) {
	quantities := make(map[uuid.UUID]int, len(inputs))
	ids := make([]uuid.UUID, 0, len(inputs))
	for _, in := range inputs {
		if _, seen := quantities[in.ProductID]; !seen {
			ids = append(ids, in.ProductID)
		}
		quantities[in.ProductID] = in.Quantity
	}

	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		logger.L().Error().Err(err).Msg("failed to resolve purchase products")
		return nil, err
	}

	items := make([]entity.PurchaseItem, 0, len(products))
	for i := range products {
		product := products[i]
		items = append(items, entity.PurchaseItem{
			ProductID: product.ID,
			Quantity:  quantities[product.ID],
			UnitValue: product.Price,
		})
	}
	return items, nil
}
