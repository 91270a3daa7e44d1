package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"examhub/config"
	mockUC "examhub/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPurgeScheduler_Disabled(t *testing.T) {
	lifecycleUC := mockUC.NewMockLifecycleUsecase(t)
	s := newPurgeScheduler(lifecycleUC, &config.MaintenanceConfig{PurgeEnabled: false}, newDiscardLogger())

	require.NoError(t, s.Serve(context.Background()))
	require.NoError(t, s.stop(context.Background()))
	lifecycleUC.AssertNotCalled(t, "PurgeExpiredPending", mock.Anything, mock.Anything)
}

func TestPurgeScheduler_PurgesOnStartAndOnTick(t *testing.T) {
	lifecycleUC := mockUC.NewMockLifecycleUsecase(t)
	s := newPurgeScheduler(lifecycleUC, &config.MaintenanceConfig{
		PurgeEnabled:     true,
		PurgeInterval:    10 * time.Millisecond,
		PendingRetention: 48 * time.Hour,
	}, newDiscardLogger())

	calls := make(chan struct{}, 16)
	lifecycleUC.EXPECT().PurgeExpiredPending(mock.Anything, 48*time.Hour).
		RunAndReturn(func(context.Context, time.Duration) (int64, error) {
			select {
			case calls <- struct{}{}:
			default:
			}

			return 2, nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	served := make(chan error, 1)
	go func() { served <- s.Serve(ctx) }()

	for range 2 {
		select {
		case <-calls:
		case <-time.After(2 * time.Second):
			t.Fatal("purge was not run")
		}
	}

	cancel()
	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestPurgeScheduler_StopWaitsForLoop(t *testing.T) {
	lifecycleUC := mockUC.NewMockLifecycleUsecase(t)
	s := newPurgeScheduler(lifecycleUC, &config.MaintenanceConfig{PurgeEnabled: true, PurgeInterval: time.Hour}, newDiscardLogger())

	started := make(chan struct{})
	lifecycleUC.EXPECT().PurgeExpiredPending(mock.Anything, defaultPendingRetention).
		RunAndReturn(func(context.Context, time.Duration) (int64, error) {
			close(started)

			return 0, errors.New("database is down")
		}).Once()

	served := make(chan error, 1)
	go func() { served <- s.Serve(context.Background()) }()
	<-started

	require.NoError(t, s.stop(context.Background()))
	assert.NoError(t, <-served)
}
