package ports

import (
	"context"

	"github.com/staffhub/hr-asset-system/internal/core/domain"
)

type DashboardService interface {
	Summary(ctx context.Context) (*domain.DashboardSummary, error)
}

// SummaryCache is an optional read-through cache for the dashboard summary.
// Get returns (nil, nil) on a miss.
type SummaryCache interface {
	Get(ctx context.Context) (*domain.DashboardSummary, error)
	Set(ctx context.Context, summary *domain.DashboardSummary) error
}
