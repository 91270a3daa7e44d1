package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestWatcher(buf *bytes.Buffer, samples ...sql.DBStats) *poolWatcher {
	i := 0

	return &poolWatcher{
		logger: slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
		stats: func() sql.DBStats {
			s := samples[i]
			i++

			return s
		},
	}
}

func TestPoolWatcher_Check(t *testing.T) {
	t.Run("quiet without new waits", func(t *testing.T) {
		var buf bytes.Buffer
		w := newTestWatcher(&buf, sql.DBStats{WaitCount: 3})
		w.prev = sql.DBStats{WaitCount: 3}

		w.check(context.Background())

		assert.Empty(t, buf.String())
	})

	t.Run("short waits are debug", func(t *testing.T) {
		var buf bytes.Buffer
		w := newTestWatcher(&buf, sql.DBStats{WaitCount: 2, WaitDuration: 4 * time.Millisecond, MaxOpenConnections: 10, InUse: 2})

		w.check(context.Background())

		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.Contains(t, buf.String(), "waits=2")
		assert.Equal(t, int64(2), w.prev.WaitCount)
	})

	t.Run("long waits warn", func(t *testing.T) {
		var buf bytes.Buffer
		w := newTestWatcher(&buf, sql.DBStats{WaitCount: 1, WaitDuration: time.Second})

		w.check(context.Background())

		assert.Contains(t, buf.String(), "level=WARN")
	})

	t.Run("saturated pool warns", func(t *testing.T) {
		var buf bytes.Buffer
		w := newTestWatcher(&buf, sql.DBStats{WaitCount: 1, WaitDuration: time.Millisecond, MaxOpenConnections: 10, InUse: 10})

		w.check(context.Background())

		assert.Contains(t, buf.String(), "level=WARN")
	})
}
