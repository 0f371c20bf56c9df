package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/staffhub/hr-asset-system/internal/core/domain"
	"github.com/staffhub/hr-asset-system/internal/core/ports"
)

// DashboardService aggregates the dashboard counters. A cache may be
// supplied; when it is nil every call hits the repositories.
type DashboardService struct {
	assets ports.AssetRepository
	users  ports.UserRepository
	cache  ports.SummaryCache
	logger zerolog.Logger
}

func NewDashboardService(assets ports.AssetRepository, users ports.UserRepository, cache ports.SummaryCache, logger zerolog.Logger) *DashboardService {
	return &DashboardService{assets: assets, users: users, cache: cache, logger: logger}
}

func (s *DashboardService) Summary(ctx context.Context) (*domain.DashboardSummary, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("dashboard cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	totalAssets, err := s.assets.Count(ctx)
	if err != nil {
		return nil, err
	}
	availableAssets, err := s.assets.CountByStatus(ctx, domain.AssetAvailable)
	if err != nil {
		return nil, err
	}
	totalEmployees, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalAdmins, err := s.users.CountByRole(ctx, domain.RoleHRManager)
	if err != nil {
		return nil, err
	}

	summary := &domain.DashboardSummary{
		TotalAssets:     totalAssets,
		TotalEmployees:  totalEmployees,
		AvailableAssets: availableAssets,
		TotalAdmins:     totalAdmins,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, summary); err != nil {
			s.logger.Warn().Err(err).Msg("dashboard cache write failed")
		}
	}

	return summary, nil
}
