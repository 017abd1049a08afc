package main

import (
	"context"
	"log/slog"
	"os"

	"lodging/config"
	"lodging/internal/delivery"
	"lodging/internal/delivery/http"
	"lodging/internal/delivery/http/middleware"
	"lodging/internal/delivery/http/router/handler"
	"lodging/internal/delivery/worker"
	workerhandler "lodging/internal/delivery/worker/handler"
	"lodging/internal/infra/auth"
	"lodging/internal/infra/cache"
	logs "lodging/internal/infra/log"
	"lodging/internal/infra/persistence/postgres"
	"lodging/internal/infra/pubsub"
	"lodging/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func newServeApp() *fx.App {
	return fx.New(
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
	)
}

func newWorkerApp() *fx.App {
	return fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		fx.Provide(
			workerhandler.NewPushHandler,
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
		fx.Invoke(
			startServer,
		),
	)
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		cache.NewRedisClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewCustomerRepository,
			postgres.NewLodgingRepository,
			postgres.NewReservationRepository,
			postgres.NewTransactionManager,
		),
		fx.Decorate(cache.DecorateLodgingRepository),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCustomerService,
			impl.NewLodgingService,
			impl.NewReservationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewCustomerHandler,
			handler.NewLodgingHandler,
			handler.NewReservationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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

// withoutAutoMigrations keeps one-shot commands from migrating as a side effect.
func withoutAutoMigrations(cfg *config.Config) *config.Config {
	cfg.Migrations.AutoRun = false

	return cfg
}

// startOnce starts a short-lived app; callers pull dependencies out with
// fx.Populate and must call the returned stop func.
func startOnce(ctx context.Context, opts ...fx.Option) (func(), error) {
	app := fx.New(
		fx.NopLogger,
		fx.Options(opts...),
		fx.Decorate(withoutAutoMigrations),
	)
	if err := app.Err(); err != nil {
		return nil, err
	}

	if err := app.Start(ctx); err != nil {
		return nil, err
	}

	return func() {
		if err := app.Stop(ctx); err != nil {
			slog.Error("Failed to stop", slog.Any("error", err))
		}
	}, nil
}
