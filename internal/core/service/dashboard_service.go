package service

import (
	"github.com/jobzen/dashboard/internal/core/domain"
	"github.com/jobzen/dashboard/internal/core/ports"
)

// DashboardService serves static per-role dashboard configuration.
type DashboardService struct{}

var _ ports.DashboardService = DashboardService{}

func (DashboardService) Config(role domain.Role) domain.DashboardConfig {
	return domain.DashboardFor(role)
}
