package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/pmoura/purchases-api/internal/application/service"
	"github.com/pmoura/purchases-api/internal/presentation/http/dto/request"
	"github.com/pmoura/purchases-api/internal/presentation/http/dto/response"
	"github.com/pmoura/purchases-api/pkg/daterange"
)

// ReportHandler handles the analytics report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func bindReportFilter(c *gin.Context) (daterange.Filter, string, bool) {
	var req request.ReportFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return daterange.Filter{}, "", false
	}

	filter, err := daterange.Parse(req.Date, req.Month, req.Year)
	if err != nil {
		response.BadRequest(c, err.Error())
		return daterange.Filter{}, "", false
	}
	return filter, req.Direction, true
}

// BestBuyers ranks customers by their total spending
func (h *ReportHandler) BestBuyers(c *gin.Context) {
	filter, direction, ok := bindReportFilter(c)
	if !ok {
		return
	}

	rows, err := h.reportService.BestBuyers(c.Request.Context(), filter, direction)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Best buyers retrieved successfully", rows)
}

// BestSellers ranks products by units sold
func (h *ReportHandler) BestSellers(c *gin.Context) {
	filter, direction, ok := bindReportFilter(c)
	if !ok {
		return
	}

	rows, err := h.reportService.BestSellers(c.Request.Context(), filter, direction)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Best sellers retrieved successfully", rows)
}

// PurchaseVolume returns per-day purchase counts and totals
func (h *ReportHandler) PurchaseVolume(c *gin.Context) {
	filter, _, ok := bindReportFilter(c)
	if !ok {
		return
	}

	rows, err := h.reportService.PurchaseVolume(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase volume retrieved successfully", rows)
}
