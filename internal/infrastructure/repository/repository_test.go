package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/pmoura/purchases-api/internal/domain/entity"
	"github.com/pmoura/purchases-api/internal/infrastructure/database"
)

// newTestDB opens a named in-memory sqlite database and migrates the schema.
// The name is derived from the test so parallel tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB, name string) *entity.Customer {
	t.Helper()
	customer := &entity.Customer{Name: name, Telephone: "+5511999990000", Email: name + "@example.com"}
	require.NoError(t, db.Create(customer).Error)
	return customer
}

func seedProduct(t *testing.T, db *gorm.DB, name string, priceCents int64, stock int) *entity.Product {
	t.Helper()
	product := &entity.Product{Name: name, Price: priceCents, Stock: stock}
	require.NoError(t, db.Create(product).Error)
	return product
}

func seedPurchase(t *testing.T, db *gorm.DB, customer *entity.Customer, date time.Time, items []entity.PurchaseItem) *entity.Purchase {
	t.Helper()
	purchase := &entity.Purchase{PurchaseDate: date, Items: items}
	if customer != nil {
		purchase.CustomerID = &customer.ID
	}
	purchase.RecomputeTotal()
	require.NoError(t, NewPurchaseRepository(db).CreateWithItems(context.Background(), purchase))
	return purchase
}

func utcDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
