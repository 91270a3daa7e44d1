package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"
)

const (
	poolWatchInterval      = 5 * time.Second
	poolSlowWaitThreshold  = 50 * time.Millisecond
	poolSaturationWarnRate = 0.9
)

// poolWatcher logs when requests had to wait for a free connection since the last check.
type poolWatcher struct {
	logger *slog.Logger
	stats  func() sql.DBStats
	prev   sql.DBStats
}

func newPoolWatcher(logger *slog.Logger, db *sql.DB) *poolWatcher {
	return &poolWatcher{logger: logger, stats: db.Stats}
}

func (w *poolWatcher) run(ctx context.Context, interval time.Duration) {
	if w.logger == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	w.prev = w.stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.check(ctx)
		}
	}
}

func (w *poolWatcher) check(ctx context.Context) {
	cur := w.stats()
	defer func() { w.prev = cur }()

	waits := cur.WaitCount - w.prev.WaitCount
	if waits <= 0 {
		return
	}

	waited := cur.WaitDuration - w.prev.WaitDuration
	attrs := []slog.Attr{
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("open", cur.OpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
	}

	level := slog.LevelDebug
	if waited >= poolSlowWaitThreshold || saturated(cur) {
		level = slog.LevelWarn
	}

	w.logger.LogAttrs(ctx, level, "Postgres pool contention", attrs...)
}

func saturated(stats sql.DBStats) bool {
	if stats.MaxOpenConnections <= 0 {
		return false
	}

	return float64(stats.InUse) >= poolSaturationWarnRate*float64(stats.MaxOpenConnections)
}
