package main

import (
	"context"
	"log/slog"
	"os"

	"examhub/config"
	"examhub/internal/delivery"
	"examhub/internal/delivery/api"
	apimiddleware "examhub/internal/delivery/api/middleware"
	"examhub/internal/delivery/api/router/handler"
	"examhub/internal/delivery/scheduler"
	"examhub/internal/domain/service"
	"examhub/internal/infra/auth"
	logs "examhub/internal/infra/log"
	"examhub/internal/infra/mail"
	"examhub/internal/infra/metrics"
	"examhub/internal/infra/persistence/postgres"
	"examhub/internal/infra/pubsub"
	"examhub/internal/infra/qrcode"
	"examhub/internal/infra/storage"
	"examhub/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		fx.Annotate(
			metrics.New,
			fx.As(new(service.LifecycleMetrics)),
			fx.As(fx.Self()),
		),
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAccountRepository,
			postgres.NewExamRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			pubsub.NewEventPublisher,
			mail.NewRenderer,
			mail.NewNotifier,
			storage.New,
			qrcode.NewExamPassService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewLifecycleService,
			impl.NewAccountService,
			impl.NewExamService,
			impl.NewDashboardService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewLifecycleHandler,
			handler.NewAccountHandler,
			handler.NewExamHandler,
			handler.NewDashboardHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.NewPurgeScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
