// Package scheduler runs periodic maintenance jobs inside the API process.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"examhub/config"
	"examhub/internal/delivery"
	"examhub/internal/domain/lifecycle"
	"examhub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const (
	defaultPurgeInterval    = time.Hour
	defaultPendingRetention = 30 * 24 * time.Hour
)

// PurgeSchedulerParams holds dependencies for the purge scheduler, injected by Fx.
type PurgeSchedulerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	LifecycleUC usecase.LifecycleUsecase
}

// purgeScheduler removes pending accounts whose activation window has expired.
type purgeScheduler struct {
	lifecycleUC usecase.LifecycleUsecase
	logger      *slog.Logger
	enabled     bool
	interval    time.Duration
	retention   time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewPurgeScheduler creates the pending account purge job.
func NewPurgeScheduler(params PurgeSchedulerParams) (delivery.Delivery, error) {
	s := newPurgeScheduler(params.LifecycleUC, params.Cfg.Maintenance, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

func newPurgeScheduler(lifecycleUC usecase.LifecycleUsecase, cfg *config.MaintenanceConfig, logger *slog.Logger) *purgeScheduler {
	s := &purgeScheduler{
		lifecycleUC: lifecycleUC,
		logger:      logger,
		interval:    defaultPurgeInterval,
		retention:   defaultPendingRetention,
		done:        make(chan struct{}),
	}

	if cfg != nil {
		s.enabled = cfg.PurgeEnabled
		if cfg.PurgeInterval > 0 {
			s.interval = cfg.PurgeInterval
		}
		if cfg.PendingRetention > 0 {
			s.retention = cfg.PendingRetention
		}
	}

	return s
}

// Serve purges once at startup and then on every tick until ctx is cancelled or the app stops.
// A tick that arrives while the previous purge is still running is skipped.
func (s *purgeScheduler) Serve(ctx context.Context) error {
	defer close(s.done)

	if !s.enabled {
		s.logger.Info("Pending account purge disabled")

		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()
	defer cancel()

	s.logger.Info("Starting pending account purge",
		slog.Duration("interval", s.interval),
		slog.Duration("retention", s.retention),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(1)

	run := func() error {
		s.purgeOnce(gctx)

		return nil
	}

	g.Go(run)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return errors.WithStack(g.Wait())
		case <-ticker.C:
			if !g.TryGo(run) {
				s.logger.Warn("Previous purge still running, tick skipped")
			}
		}
	}
}

func (s *purgeScheduler) purgeOnce(ctx context.Context) {
	start := time.Now()

	deleted, err := s.lifecycleUC.PurgeExpiredPending(ctx, s.retention)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Error("Pending account purge failed", slog.Any("error", err))

		return
	}

	s.logger.Info("Pending account purge finished",
		slog.Int64("deleted", deleted),
		slog.Duration("elapsed", time.Since(start)),
	)
}

// stop cancels the loop and waits for a running purge to return.
func (s *purgeScheduler) stop(ctx context.Context) error {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	waitCtx, cancelWait := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancelWait()

	select {
	case <-s.done:
		return nil
	case <-waitCtx.Done():
		return errors.Wrap(waitCtx.Err(), "pending account purge did not stop")
	}
}
