package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pmoura/purchases-api/internal/domain/entity"
	"github.com/pmoura/purchases-api/internal/domain/repository"
	"github.com/pmoura/purchases-api/internal/logger"
	"github.com/pmoura/purchases-api/pkg/apperror"
	"github.com/pmoura/purchases-api/pkg/pagination"
)

// ProductService handles product-related operations
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductInput represents the create product input. Price is the
// decimal unit price.
type CreateProductInput struct {
	Name  string
	Price float64
	Stock int
}

// CreateProduct creates a new product
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Name:  input.Name,
		Stock: input.Stock,
	}
	product.SetPriceFromDecimal(input.Price)

	logger.L().Info().Str("name", input.Name).Float64("price", input.Price).Int("stock", input.Stock).Msg("creating product")
	if err := s.productRepo.Create(ctx, product); err != nil {
		logger.L().Error().Err(err).Msg("failed to create product")
		return nil, err
	}

	return product, nil
}

// GetProduct retrieves an active product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError(fmt.Sprintf("Product ID %s", id))
	}
	return product, nil
}

// ListProducts lists active products
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ListParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		logger.L().Error().Err(err).Msg("failed to list products")
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	ID    uuid.UUID
	Name  *string
	Price *float64
	Stock *int
}

// UpdateProduct applies a partial update to an active product. A price
// change never touches the unit values frozen on existing purchase items.
func (s *ProductService) UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError(fmt.Sprintf("Product ID %s", input.ID))
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Price != nil {
		product.SetPriceFromDecimal(*input.Price)
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		logger.L().Error().Err(err).Str("product_id", input.ID.String()).Msg("failed to update product")
		return nil, err
	}

	return product, nil
}

// RemoveProduct soft-deletes an active product; a second call for the same
// id fails with not found
func (s *ProductService) RemoveProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError(fmt.Sprintf("Product ID %s", id))
	}
	return s.productRepo.Delete(ctx, id)
}
