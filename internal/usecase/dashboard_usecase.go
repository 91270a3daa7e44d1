package usecase

import (
	"context"

	"examhub/internal/domain/entity"
)

// DashboardUsecase aggregates counters for the admin dashboard.
type DashboardUsecase interface {
	Stats(ctx context.Context) (*entity.DashboardStats, error)
}
