package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pmoura/purchases-api/internal/application/service"
	domainRepo "github.com/pmoura/purchases-api/internal/domain/repository"
	"github.com/pmoura/purchases-api/internal/presentation/http/dto/request"
	"github.com/pmoura/purchases-api/internal/presentation/http/dto/response"
	"github.com/pmoura/purchases-api/pkg/daterange"
)

// Dates arrive either as a plain day or a full RFC 3339 timestamp.
var purchaseDateLayouts = []string{time.RFC3339, "2006-01-02"}

func parsePurchaseDate(s string) (time.Time, bool) {
	for _, layout := range purchaseDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// PurchaseHandler handles purchase-related HTTP requests
type PurchaseHandler struct {
	purchaseService *service.PurchaseService
}

// NewPurchaseHandler creates a new purchase handler
func NewPurchaseHandler(purchaseService *service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService}
}

// Create handles creating a purchase with its items
func (h *PurchaseHandler) Create(c *gin.Context) {
	var req request.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	date, ok := parsePurchaseDate(req.PurchaseDate)
	if !ok {
		response.BadRequest(c, "Invalid purchase date")
		return
	}

	items := make([]service.PurchaseItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.PurchaseItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	purchase, err := h.purchaseService.CreatePurchase(c.Request.Context(), &service.CreatePurchaseInput{
		PurchaseDate: date,
		CustomerID:   req.CustomerID,
		Items:        items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Purchase created successfully", purchase)
}

// List handles listing purchases with optional customer and date filters
func (h *PurchaseHandler) List(c *gin.Context) {
	var req request.PurchaseFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	listP, ok := listParams(req.ListRequest, purchaseSortColumns)
	if !ok {
		response.BadRequest(c, "Unknown sort column: "+req.Order)
		return
	}

	filter, err := daterange.Parse(req.Date, req.Month, req.Year)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	params := &domainRepo.PurchaseFilterParams{
		ListParams: *listP,
		Date:       filter,
	}
	if req.CustomerID != "" {
		customerID, err := uuid.Parse(req.CustomerID)
		if err != nil {
			response.BadRequest(c, "Invalid customer ID")
			return
		}
		params.CustomerID = &customerID
	}

	result, err := h.purchaseService.ListPurchases(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Purchases retrieved successfully", result)
}

// Get handles getting a single purchase with its customer and items
func (h *PurchaseHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase ID")
		return
	}

	purchase, err := h.purchaseService.GetPurchase(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase retrieved successfully", purchase)
}

// Update handles partially updating a purchase. A supplied item list
// replaces the existing one entirely.
func (h *PurchaseHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase ID")
		return
	}

	var req request.UpdatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdatePurchaseInput{
		ID:         id,
		CustomerID: req.CustomerID,
	}

	if req.PurchaseDate != nil {
		date, ok := parsePurchaseDate(*req.PurchaseDate)
		if !ok {
			response.BadRequest(c, "Invalid purchase date")
			return
		}
		input.PurchaseDate = &date
	}

	if req.Items != nil {
		items := make([]service.PurchaseItemInput, 0, len(*req.Items))
		for _, item := range *req.Items {
			items = append(items, service.PurchaseItemInput{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			})
		}
		input.Items = &items
	}

	purchase, err := h.purchaseService.UpdatePurchase(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase updated successfully", purchase)
}

// Delete handles soft-deleting a purchase
func (h *PurchaseHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase ID")
		return
	}

	if err := h.purchaseService.RemovePurchase(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
