// api/service/stats_service.go
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/shopora/api/analytics"
	logger "github.com/shopora/api/logging"
	"github.com/shopora/api/model"
)

// IStatsService defines the interface for the dashboard aggregates
type IStatsService interface {
	DashboardStats(ctx context.Context) (*model.DashboardStats, error)
	PieCharts(ctx context.Context) (*model.PieCharts, error)
	BarCharts(ctx context.Context) (*model.BarCharts, error)
	LineCharts(ctx context.Context) (*model.LineCharts, error)
}

// StatsService fronts the aggregation engine for the dashboard
// controller.
type StatsService struct {
	engine *analytics.Engine
}

var _ IStatsService = &StatsService{}

func NewStatsService(engine *analytics.Engine) *StatsService {
	return &StatsService{engine: engine}
}

func (s *StatsService) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	stats, err := s.engine.DashboardStats(ctx)
	if err != nil {
		logger.Error("Error computing dashboard stats", zap.Error(err))
		return nil, err
	}
	return stats, nil
}

func (s *StatsService) PieCharts(ctx context.Context) (*model.PieCharts, error) {
	charts, err := s.engine.PieCharts(ctx)
	if err != nil {
		logger.Error("Error computing pie charts", zap.Error(err))
		return nil, err
	}
	return charts, nil
}

func (s *StatsService) BarCharts(ctx context.Context) (*model.BarCharts, error) {
	charts, err := s.engine.BarCharts(ctx)
	if err != nil {
		logger.Error("Error computing bar charts", zap.Error(err))
		return nil, err
	}
	return charts, nil
}

func (s *StatsService) LineCharts(ctx context.Context) (*model.LineCharts, error) {
	charts, err := s.engine.LineCharts(ctx)
	if err != nil {
		logger.Error("Error computing line charts", zap.Error(err))
		return nil, err
	}
	return charts, nil
}
