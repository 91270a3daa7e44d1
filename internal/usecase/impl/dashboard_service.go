package impl

import (
	"context"
	"log/slog"

	"examhub/internal/domain/entity"
	"examhub/internal/domain/repository"
	"examhub/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

type dashboardService struct {
	accountRepo repository.AccountRepository
	examRepo    repository.ExamRepository
	logger      *slog.Logger
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	ExamRepo    repository.ExamRepository
	Logger      *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		accountRepo: params.AccountRepo,
		examRepo:    params.ExamRepo,
		logger:      params.Logger,
	}
}

// Stats runs the dashboard counters concurrently.
func (srv *dashboardService) Stats(ctx context.Context) (*entity.DashboardStats, error) {
	var (
		stats            entity.DashboardStats
		pendingWorkers   int64
		pendingCompanies int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.Workers, err = srv.accountRepo.CountByKind(gctx, entity.AccountKindWorker, false)
		return err
	})
	g.Go(func() (err error) {
		stats.Companies, err = srv.accountRepo.CountByKind(gctx, entity.AccountKindCompany, false)
		return err
	})
	g.Go(func() (err error) {
		pendingWorkers, err = srv.accountRepo.CountByKind(gctx, entity.AccountKindWorker, true)
		return err
	})
	g.Go(func() (err error) {
		pendingCompanies, err = srv.accountRepo.CountByKind(gctx, entity.AccountKindCompany, true)
		return err
	})
	g.Go(func() (err error) {
		stats.Exams, err = srv.examRepo.Count(gctx, false)
		return err
	})
	g.Go(func() (err error) {
		stats.ExamsWithImages, err = srv.examRepo.Count(gctx, true)
		return err
	})

	if err := g.Wait(); err != nil {
		srv.logger.ErrorContext(ctx, "Failed to collect dashboard stats", slog.Any("error", err))

		return nil, mapRepositoryError(err, "failed to collect dashboard stats")
	}

	stats.PendingAccounts = pendingWorkers + pendingCompanies

	return &stats, nil
}
