package request

import "github.com/google/uuid"

// CreateCustomerRequest represents a customer creation request
type CreateCustomerRequest struct {
	Name      string `json:"name" binding:"required,min=2,max=255"`
	Telephone string `json:"telephone" binding:"omitempty,max=50"`
	Email     string `json:"email" binding:"omitempty,email,max=255"`
}

// UpdateCustomerRequest represents a customer update request
type UpdateCustomerRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=2,max=255"`
	Telephone *string `json:"telephone" binding:"omitempty,max=50"`
	Email     *string `json:"email" binding:"omitempty,email,max=255"`
}

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name  string  `json:"name" binding:"required,min=2,max=255"`
	Price float64 `json:"price" binding:"min=0"`
	Stock int     `json:"stock" binding:"min=0"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	Name  *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Price *float64 `json:"price" binding:"omitempty,min=0"`
	Stock *int     `json:"stock" binding:"omitempty,min=0"`
}

// PurchaseItemRequest represents one (product, quantity) pair of a purchase
type PurchaseItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

// CreatePurchaseRequest represents a purchase creation request. The total is
// never part of the payload, it is always derived server-side.
type CreatePurchaseRequest struct {
	PurchaseDate string                `json:"purchase_date" binding:"required"`
	CustomerID   *uuid.UUID            `json:"customer_id"`
	Items        []PurchaseItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdatePurchaseRequest represents a purchase update request. Omitting items
// keeps the current collection; sending any list, even an empty one,
// replaces it wholesale.
type UpdatePurchaseRequest struct {
	PurchaseDate *string                `json:"purchase_date"`
	CustomerID   *uuid.UUID             `json:"customer_id"`
	Items        *[]PurchaseItemRequest `json:"items" binding:"omitempty,dive"`
}

// ListRequest represents common listing parameters
type ListRequest struct {
	Order     string `form:"order"`
	Direction string `form:"direction"`
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
}

// PurchaseFilterRequest represents purchase listing parameters
type PurchaseFilterRequest struct {
	ListRequest
	CustomerID string `form:"customer_id"`
	Date       string `form:"date"`
	Month      string `form:"month"`
	Year       int    `form:"year"`
}

// ReportFilterRequest represents analytics report parameters
type ReportFilterRequest struct {
	Date      string `form:"date"`
	Month     string `form:"month"`
	Year      int    `form:"year"`
	Direction string `form:"direction"`
}
