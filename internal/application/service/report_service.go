package service

import (
	"context"

	"github.com/pmoura/purchases-api/internal/domain/repository"
	"github.com/pmoura/purchases-api/internal/logger"
	"github.com/pmoura/purchases-api/pkg/daterange"
)

// ReportService exposes the denormalized analytics reports. It returns raw
// rows straight from the grouped-join queries, not domain entities.
type ReportService struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewReportService creates a new report service
func NewReportService(analyticsRepo repository.AnalyticsRepository) *ReportService {
	return &ReportService{analyticsRepo: analyticsRepo}
}

// BestBuyers ranks customers by total spent under an optional date filter
func (s *ReportService) BestBuyers(ctx context.Context, filter daterange.Filter, direction string) ([]repository.BestBuyerRow, error) {
	rows, err := s.analyticsRepo.BestBuyers(ctx, filter, direction)
	if err != nil {
		logger.L().Error().Err(err).Msg("best buyers query failed")
		return nil, err
	}
	return rows, nil
}

// BestSellers ranks products by units sold under an optional date filter
func (s *ReportService) BestSellers(ctx context.Context, filter daterange.Filter, direction string) ([]repository.BestSellerRow, error) {
	rows, err := s.analyticsRepo.BestSellers(ctx, filter, direction)
	if err != nil {
		logger.L().Error().Err(err).Msg("best sellers query failed")
		return nil, err
	}
	return rows, nil
}

// PurchaseVolume returns per-day purchase counts and totals within the
// filter range
func (s *ReportService) PurchaseVolume(ctx context.Context, filter daterange.Filter) ([]repository.PurchaseVolumeRow, error) {
	rows, err := s.analyticsRepo.PurchaseVolume(ctx, filter)
	if err != nil {
		logger.L().Error().Err(err).Msg("purchase volume query failed")
		return nil, err
	}
	return rows, nil
}
