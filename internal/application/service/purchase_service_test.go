package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmoura/purchases-api/internal/domain/entity"
	"github.com/pmoura/purchases-api/internal/domain/repository"
	"github.com/pmoura/purchases-api/pkg/apperror"
	"github.com/pmoura/purchases-api/pkg/daterange"
	"github.com/pmoura/purchases-api/pkg/pagination"
)

func newPurchaseFixture() (*PurchaseService, *stubPurchaseRepo, *stubProductRepo, *stubCustomerRepo) {
	purchases := newStubPurchaseRepo()
	products := newStubProductRepo()
	customers := newStubCustomerRepo()
	return NewPurchaseService(purchases, products, customers), purchases, products, customers
}

func TestCreatePurchase_RecomputesTotalFromPriceSnapshots(t *testing.T) {
	svc, _, products, _ := newPurchaseFixture()

	keyboard := products.add(&entity.Product{Name: "Keyboard", Price: 1050, Stock: 10})
	mouse := products.add(&entity.Product{Name: "Mouse", Price: 2599, Stock: 5})

	purchase, err := svc.CreatePurchase(context.Background(), &CreatePurchaseInput{
		PurchaseDate: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		Items: []PurchaseItemInput{
			{ProductID: keyboard.ID, Quantity: 2},
			{ProductID: mouse.ID, Quantity: 3},
		},
	})
	require.NoError(t, err)
	require.Len(t, purchase.Items, 2)

	// 2*10.50 + 3*25.99 = 98.97
	assert.Equal(t, int64(9897), purchase.TotalValue)
	for _, item := range purchase.Items {
		if item.ProductID == keyboard.ID {
			assert.Equal(t, int64(1050), item.UnitValue)
			assert.Equal(t, 2, item.Quantity)
		}
	}
}

func TestCreatePurchase_UnknownCustomerFails(t *testing.T) {
	svc, purchases, _, _ := newPurchaseFixture()

	missing := uuid.New()
	_, err := svc.CreatePurchase(context.Background(), &CreatePurchaseInput{
		PurchaseDate: time.Now(),
		CustomerID:   &missing,
	})

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Contains(t, err.Error(), "Customer ID "+missing.String())
	assert.Empty(t, purchases.purchases, "nothing should be persisted")
}

func TestCreatePurchase_SoftDeletedCustomerFails(t *testing.T) {
	svc, _, _, customers := newPurchaseFixture()

	customer := customers.add(&entity.Customer{Name: "Ana"})
	customers.deleted[customer.ID] = true

	_, err := svc.CreatePurchase(context.Background(), &CreatePurchaseInput{
		PurchaseDate: time.Now(),
		CustomerID:   &customer.ID,
	})
	assert.True(t, apperror.IsNotFound(err))
}

func TestCreatePurchase_DropsUnresolvedProducts(t *testing.T) {
	svc, _, products, _ := newPurchaseFixture()

	known := products.add(&entity.Product{Name: "Cable", Price: 500, Stock: 100})
	ghost := uuid.New()

	purchase, err := svc.CreatePurchase(context.Background(), &CreatePurchaseInput{
		PurchaseDate: time.Now(),
		Items: []PurchaseItemInput{
			{ProductID: known.ID, Quantity: 1},
			{ProductID: ghost, Quantity: 4},
		},
	})
	require.NoError(t, err)

	require.Len(t, purchase.Items, 1)
	assert.Equal(t, known.ID, purchase.Items[0].ProductID)
	assert.Equal(t, int64(500), purchase.TotalValue)
}

func TestCreatePurchase_DuplicateProductLastQuantityWins(t *testing.T) {
	svc, _, products, _ := newPurchaseFixture()

	cable := products.add(&entity.Product{Name: "Cable", Price: 500, Stock: 100})

	purchase, err := svc.CreatePurchase(context.Background(), &CreatePurchaseInput{
		PurchaseDate: time.Now(),
		Items: []PurchaseItemInput{
			{ProductID: cable.ID, Quantity: 2},
			{ProductID: cable.ID, Quantity: 7},
		},
	})
	require.NoError(t, err)

	require.Len(t, purchase.Items, 1)
	assert.Equal(t, 7, purchase.Items[0].Quantity)
	assert.Equal(t, int64(3500), purchase.TotalValue)
}

func TestCreatePurchase_NoItemsZeroTotal(t *testing.T) {
	svc, _, _, customers := newPurchaseFixture()

	customer := customers.add(&entity.Customer{Name: "Ana"})
	purchase, err := svc.CreatePurchase(context.Background(), &CreatePurchaseInput{
		PurchaseDate: time.Now(),
		CustomerID:   &customer.ID,
	})
	require.NoError(t, err)
	assert.Empty(t, purchase.Items)
	assert.Equal(t, int64(0), purchase.TotalValue)
}

func TestUpdatePurchase_NilItemsLeavesItemsUntouched(t *testing.T) {
	svc, purchases, products, _ := newPurchaseFixture()

	cable := products.add(&entity.Product{Name: "Cable", Price: 500, Stock: 100})
	created, err := svc.CreatePurchase(context.Background(), &CreatePurchaseInput{
		PurchaseDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Items:        []PurchaseItemInput{{ProductID: cable.ID, Quantity: 3}},
	})
	require.NoError(t, err)
	originalItemID := created.Items[0].ID

	newDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	updated, err := svc.UpdatePurchase(context.Background(), &UpdatePurchaseInput{
		ID:           created.ID,
		PurchaseDate: &newDate,
	})
	require.NoError(t, err)

	assert.Equal(t, newDate, updated.PurchaseDate)
	assert.Equal(t, int64(1500), updated.TotalValue)

	stored, _ := purchases.GetByID(context.Background(), created.ID)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, originalItemID, stored.Items[0].ID)
}

func TestUpdatePurchase_NewItemsReplaceCollection(t *testing.T) {
	svc, _, products, _ := newPurchaseFixture()

	cable := products.add(&entity.Product{Name: "Cable", Price: 500, Stock: 100})
	monitor := products.add(&entity.Product{Name: "Monitor", Price: 89900, Stock: 3})

	created, err := svc.CreatePurchase(context.Background(), &CreatePurchaseInput{
		PurchaseDate: time.Now(),
		Items:        []PurchaseItemInput{{ProductID: cable.ID, Quantity: 3}},
	})
	require.NoError(t, err)
	originalItemID := created.Items[0].ID

	// The product price changed between create and update; the rebuilt item
	// snapshots the current price.
	monitor.Price = 79900

	newItems := []PurchaseItemInput{{ProductID: monitor.ID, Quantity: 1}}
	updated, err := svc.UpdatePurchase(context.Background(), &UpdatePurchaseInput{
		ID:    created.ID,
		Items: &newItems,
	})
	require.NoError(t, err)

	require.Len(t, updated.Items, 1)
	assert.Equal(t, monitor.ID, updated.Items[0].ProductID)
	assert.Equal(t, int64(79900), updated.Items[0].UnitValue)
	assert.Equal(t, int64(79900), updated.TotalValue)
	assert.NotEqual(t, originalItemID, updated.Items[0].ID)
}

func TestUpdatePurchase_EmptyItemsClearsCollectionAndTotal(t *testing.T) {
	svc, _, products, _ := newPurchaseFixture()

	cable := products.add(&entity.Product{Name: "Cable", Price: 500, Stock: 100})
	created, err := svc.CreatePurchase(context.Background(), &CreatePurchaseInput{
		PurchaseDate: time.Now(),
		Items:        []PurchaseItemInput{{ProductID: cable.ID, Quantity: 3}},
	})
	require.NoError(t, err)
	require.Equal(t, int64(1500), created.TotalValue)

	empty := []PurchaseItemInput{}
	updated, err := svc.UpdatePurchase(context.Background(), &UpdatePurchaseInput{
		ID:    created.ID,
		Items: &empty,
	})
	require.NoError(t, err)

	assert.Empty(t, updated.Items)
	assert.Equal(t, int64(0), updated.TotalValue)
}

func TestUpdatePurchase_UnknownPurchaseFails(t *testing.T) {
	svc, _, _, _ := newPurchaseFixture()

	missing := uuid.New()
	_, err := svc.UpdatePurchase(context.Background(), &UpdatePurchaseInput{ID: missing})

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Contains(t, err.Error(), "Purchase ID "+missing.String())
}

func TestRemovePurchase_SecondCallFails(t *testing.T) {
	svc, _, _, _ := newPurchaseFixture()

	created, err := svc.CreatePurchase(context.Background(), &CreatePurchaseInput{PurchaseDate: time.Now()})
	require.NoError(t, err)

	require.NoError(t, svc.RemovePurchase(context.Background(), created.ID))

	err = svc.RemovePurchase(context.Background(), created.ID)
	assert.True(t, apperror.IsNotFound(err))
}

func TestListPurchases_AppliesCustomerAndDateFilters(t *testing.T) {
	svc, _, _, customers := newPurchaseFixture()

	ana := customers.add(&entity.Customer{Name: "Ana"})
	bob := customers.add(&entity.Customer{Name: "Bob"})

	mk := func(customerID uuid.UUID, date time.Time) {
		_, err := svc.CreatePurchase(context.Background(), &CreatePurchaseInput{
			PurchaseDate: date,
			CustomerID:   &customerID,
		})
		require.NoError(t, err)
	}
	mk(ana.ID, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC))
	mk(ana.ID, time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC))
	mk(bob.ID, time.Date(2024, 2, 11, 0, 0, 0, 0, time.UTC))

	filter, err := daterange.Parse("", "2024-02", 0)
	require.NoError(t, err)

	result, err := svc.ListPurchases(context.Background(), &repository.PurchaseFilterParams{
		ListParams: repository.ListParams{Pagination: &pagination.PaginationParams{Page: 1, PerPage: 10}},
		CustomerID: &ana.ID,
		Date:       filter,
	})
	require.NoError(t, err)

	require.Len(t, result.Items, 1)
	assert.Equal(t, ana.ID, *result.Items[0].CustomerID)
	assert.Equal(t, int64(1), result.Pagination.Total)
}
