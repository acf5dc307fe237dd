package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Purchase is the aggregate root: a dated purchase, its owned line items and
// a derived total. TotalValue is always recomputed from the items, never
// accepted from a caller.
type Purchase struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	PurchaseDate time.Time      `gorm:"not null;index" json:"purchase_date"`
	TotalValue   int64          `gorm:"not null;default:0" json:"-"` // Stored in cents, excluded from JSON
	CustomerID   *uuid.UUID     `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Customer *Customer      `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []PurchaseItem `gorm:"foreignKey:PurchaseID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Purchase) MarshalJSON() ([]byte, error) {
	type Alias Purchase
	return json.Marshal(&struct {
		Alias
		TotalValue float64 `json:"total_value"`
	}{
		Alias:      Alias(p),
		TotalValue: p.GetTotalValueDecimal(),
	})
}

// BeforeCreate generates a UUID before creating a new purchase
func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Purchase model
func (Purchase) TableName() string {
	return "purchases"
}

// GetTotalValueDecimal returns the total as a decimal
func (p *Purchase) GetTotalValueDecimal() float64 {
	return float64(p.TotalValue) / 100
}

// RecomputeTotal derives TotalValue from the current item set
func (p *Purchase) RecomputeTotal() {
	var total int64
	for _, item := range p.Items {
		total += item.UnitValue * int64(item.Quantity)
	}
	p.TotalValue = total
}

// PurchaseItem is one line of a purchase. UnitValue is a frozen copy of the
// product price at the time the item was attached; later price changes on
// the product never alter it.
type PurchaseItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	PurchaseID uuid.UUID `gorm:"type:uuid;not null;index" json:"purchase_id"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	UnitValue  int64     `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relationships
	Purchase Purchase `gorm:"foreignKey:PurchaseID" json:"-"`
	Product  Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (pi PurchaseItem) MarshalJSON() ([]byte, error) {
	type Alias PurchaseItem
	return json.Marshal(&struct {
		Alias
		UnitValue float64 `json:"unit_value"`
	}{
		Alias:     Alias(pi),
		UnitValue: float64(pi.UnitValue) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new purchase item
func (pi *PurchaseItem) BeforeCreate(tx *gorm.DB) error {
	if pi.ID == uuid.Nil {
		pi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PurchaseItem model
func (PurchaseItem) TableName() string {
	return "purchase_items"
}
