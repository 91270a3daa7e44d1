// Package worker is the HTTP delivery of the mail worker. It receives Pub/Sub
// pushes of queued mail and sends them over SMTP.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"examhub/config"
	"examhub/internal/delivery"
	"examhub/internal/delivery/middleware"
	"examhub/internal/delivery/worker/handler"
	"examhub/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// Push envelopes carry one rendered email, base64 encoded.
	pushBodyLimit = "2M"
	pushRoute     = "/push/mail"
)

type mailWorker struct {
	addr   string
	logger *slog.Logger
	echo   *echo.Echo
}

type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.MailPushHandler
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	w := &mailWorker{
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(workerPort(params.Cfg))),
		logger: params.Logger,
		echo:   NewEcho(params.Cfg, params.Logger, params.PushHandler),
	}

	params.Lc.Append(fx.StopHook(w.stop))

	return w, nil
}

// workerPort prefers worker.port so the API and the worker can share one config file.
func workerPort(cfg *config.Config) int {
	if cfg.Worker != nil && cfg.Worker.Port != 0 {
		return cfg.Worker.Port
	}

	return cfg.HTTP.Port
}

// NewEcho exposes /health and the push endpoint. Pub/Sub only looks at the
// status code, so errors are plain echo responses rather than the API envelope.
func NewEcho(cfg *config.Config, logger *slog.Logger, pushHandler *handler.MailPushHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(logger).Process,
		middleware.NewLoggerMiddleware(logger, cfg).Handle,
	)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST(pushRoute, pushHandler.HandlePush, echomiddleware.BodyLimit(pushBodyLimit))

	return e
}

func (w *mailWorker) Serve(_ context.Context) error {
	w.logger.Info("Mail worker listening", slog.String("addr", w.addr), slog.String("push_route", pushRoute))

	if err := w.echo.Start(w.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "mail worker server")
	}

	return nil
}

func (w *mailWorker) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	w.logger.Info("Draining mail worker")

	return errors.WithStack(w.echo.Shutdown(ctx))
}
