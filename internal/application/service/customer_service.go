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

// CustomerService handles customer-related operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name      string
	Telephone string
	Email     string
}

// CreateCustomer creates a new customer
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	customer := &entity.Customer{
		Name:      input.Name,
		Telephone: input.Telephone,
		Email:     input.Email,
	}

	logger.L().Info().Str("name", input.Name).Msg("creating customer")
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		logger.L().Error().Err(err).Msg("failed to create customer")
		return nil, err
	}

	return customer, nil
}

// GetCustomer retrieves an active customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError(fmt.Sprintf("Customer ID %s", id))
	}
	return customer, nil
}

// ListCustomers lists active customers
func (s *CustomerService) ListCustomers(ctx context.Context, params *repository.ListParams) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, params)
	if err != nil {
		logger.L().Error().Err(err).Msg("failed to list customers")
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	ID        uuid.UUID
	Name      *string
	Telephone *string
	Email     *string
}

// UpdateCustomer applies a partial update to an active customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError(fmt.Sprintf("Customer ID %s", input.ID))
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Telephone != nil {
		customer.Telephone = *input.Telephone
	}
	if input.Email != nil {
		customer.Email = *input.Email
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		logger.L().Error().Err(err).Str("customer_id", input.ID.String()).Msg("failed to update customer")
		return nil, err
	}

	return customer, nil
}

// RemoveCustomer soft-deletes an active customer; a second call for the same
// id fails with not found
func (s *CustomerService) RemoveCustomer(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError(fmt.Sprintf("Customer ID %s", id))
	}
	return s.customerRepo.Delete(ctx, id)
}
