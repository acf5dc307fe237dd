package handler

import (
	domainRepo "github.com/pmoura/purchases-api/internal/domain/repository"
	"github.com/pmoura/purchases-api/internal/presentation/http/dto/request"
	"github.com/pmoura/purchases-api/pkg/pagination"
)

// Sortable columns per entity. The repositories interpolate the sort column
// into ORDER BY, so anything not in these maps never reaches them.
var (
	customerSortColumns = map[string]string{
		"id":         "id",
		"name":       "name",
		"telephone":  "telephone",
		"email":      "email",
		"created_at": "created_at",
	}

	productSortColumns = map[string]string{
		"id":         "id",
		"name":       "name",
		"price":      "price",
		"stock":      "stock",
		"created_at": "created_at",
	}

	purchaseSortColumns = map[string]string{
		"id":            "id",
		"purchase_date": "purchase_date",
		"total_value":   "total_value",
		"created_at":    "created_at",
	}
)

// listParams resolves order/direction/page/limit query values against an
// allow-list of sortable columns. ok is false when the caller named an
// unknown column.
func listParams(req request.ListRequest, columns map[string]string) (*domainRepo.ListParams, bool) {
	sortBy := ""
	if req.Order != "" {
		col, known := columns[req.Order]
		if !known {
			return nil, false
		}
		sortBy = col
	}

	params := &domainRepo.ListParams{
		SortBy:    sortBy,
		SortOrder: req.Direction,
		Pagination: &pagination.PaginationParams{
			Page:    req.Page,
			PerPage: req.Limit,
		},
	}
	params.Pagination.Validate()
	return params, true
}
