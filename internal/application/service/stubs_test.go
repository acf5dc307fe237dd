package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pmoura/purchases-api/internal/domain/entity"
	"github.com/pmoura/purchases-api/internal/domain/repository"
)

// In-memory repository stubs. They model the soft-delete convention the real
// store applies: deleted records vanish from GetByID and lists but the rows
// stay around.

type stubCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
	deleted   map[uuid.UUID]bool
	err       error
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{
		customers: make(map[uuid.UUID]*entity.Customer),
		deleted:   make(map[uuid.UUID]bool),
	}
}

func (s *stubCustomerRepo) add(c *entity.Customer) *entity.Customer {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	s.customers[c.ID] = c
	return c
}

func (s *stubCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	if s.err != nil {
		return s.err
	}
	s.add(c)
	return nil
}

func (s *stubCustomerRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.deleted[id] {
		return nil, nil
	}
	return s.customers[id], nil
}

func (s *stubCustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	if s.err != nil {
		return s.err
	}
	s.customers[c.ID] = c
	return nil
}

func (s *stubCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	if s.err != nil {
		return s.err
	}
	s.deleted[id] = true
	return nil
}

func (s *stubCustomerRepo) List(_ context.Context, _ *repository.ListParams) ([]entity.Customer, int64, error) {
	if s.err != nil {
		return nil, 0, s.err
	}
	var out []entity.Customer
	for id, c := range s.customers {
		if !s.deleted[id] {
			out = append(out, *c)
		}
	}
	return out, int64(len(out)), nil
}

type stubProductRepo struct {
	products map[uuid.UUID]*entity.Product
	deleted  map[uuid.UUID]bool
	err      error
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{
		products: make(map[uuid.UUID]*entity.Product),
		deleted:  make(map[uuid.UUID]bool),
	}
}

func (s *stubProductRepo) add(p *entity.Product) *entity.Product {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	s.products[p.ID] = p
	return p
}

func (s *stubProductRepo) Create(_ context.Context, p *entity.Product) error {
	if s.err != nil {
		return s.err
	}
	s.add(p)
	return nil
}

func (s *stubProductRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.deleted[id] {
		return nil, nil
	}
	return s.products[id], nil
}

func (s *stubProductRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []entity.Product
	for _, id := range ids {
		if p, ok := s.products[id]; ok && !s.deleted[id] {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *stubProductRepo) Update(_ context.Context, p *entity.Product) error {
	if s.err != nil {
		return s.err
	}
	s.products[p.ID] = p
	return nil
}

func (s *stubProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	if s.err != nil {
		return s.err
	}
	s.deleted[id] = true
	return nil
}

func (s *stubProductRepo) List(_ context.Context, _ *repository.ListParams) ([]entity.Product, int64, error) {
	if s.err != nil {
		return nil, 0, s.err
	}
	var out []entity.Product
	for id, p := range s.products {
		if !s.deleted[id] {
			out = append(out, *p)
		}
	}
	return out, int64(len(out)), nil
}

type stubPurchaseRepo struct {
	purchases map[uuid.UUID]*entity.Purchase
	deleted   map[uuid.UUID]bool
	err       error
}

func newStubPurchaseRepo() *stubPurchaseRepo {
	return &stubPurchaseRepo{
		purchases: make(map[uuid.UUID]*entity.Purchase),
		deleted:   make(map[uuid.UUID]bool),
	}
}

func (s *stubPurchaseRepo) CreateWithItems(_ context.Context, p *entity.Purchase) error {
	if s.err != nil {
		return s.err
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	for i := range p.Items {
		p.Items[i].ID = uuid.New()
		p.Items[i].PurchaseID = p.ID
	}
	s.purchases[p.ID] = p
	return nil
}

func (s *stubPurchaseRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Purchase, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.deleted[id] {
		return nil, nil
	}
	p, ok := s.purchases[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (s *stubPurchaseRepo) ReplaceItems(_ context.Context, p *entity.Purchase) error {
	if s.err != nil {
		return s.err
	}
	for i := range p.Items {
		p.Items[i].ID = uuid.New()
		p.Items[i].PurchaseID = p.ID
	}
	s.purchases[p.ID] = p
	return nil
}

func (s *stubPurchaseRepo) Update(_ context.Context, p *entity.Purchase) error {
	if s.err != nil {
		return s.err
	}
	existing := s.purchases[p.ID]
	if existing != nil {
		p.Items = existing.Items
	}
	s.purchases[p.ID] = p
	return nil
}

func (s *stubPurchaseRepo) Delete(_ context.Context, id uuid.UUID) error {
	if s.err != nil {
		return s.err
	}
	s.deleted[id] = true
	return nil
}

func (s *stubPurchaseRepo) List(_ context.Context, params *repository.PurchaseFilterParams) ([]entity.Purchase, int64, error) {
	if s.err != nil {
		return nil, 0, s.err
	}
	var out []entity.Purchase
	for id, p := range s.purchases {
		if s.deleted[id] {
			continue
		}
		if params.CustomerID != nil && (p.CustomerID == nil || *p.CustomerID != *params.CustomerID) {
			continue
		}
		if start, end, ok := params.Date.Bounds(); ok {
			if p.PurchaseDate.Before(start) || !p.PurchaseDate.Before(end) {
				continue
			}
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}
