package main

import (
	"context"
	"log/slog"
	"os"

	"medrep/config"
	"medrep/internal/delivery"
	"medrep/internal/delivery/api"
	apimiddleware "medrep/internal/delivery/api/middleware"
	"medrep/internal/delivery/api/router/handler"
	"medrep/internal/delivery/scheduler"
	"medrep/internal/infra/auth"
	logs "medrep/internal/infra/log"
	"medrep/internal/infra/metrics"
	"medrep/internal/infra/notification"
	"medrep/internal/infra/persistence/postgres"
	"medrep/internal/infra/pubsub"
	"medrep/internal/usecase/impl"

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
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		metrics.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewIdentityRepository,
			postgres.NewSequenceRepository,
			postgres.NewDoctorRepository,
			postgres.NewProductRepository,
			postgres.NewVisitReportRepository,
			postgres.NewOrderRepository,
			postgres.NewMRTargetRepository,
			postgres.NewMRPerformanceRepository,
			postgres.NewProductActivityRepository,
			postgres.NewMRRequestRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewPasswordGenerator,
		),
		notification.Module,
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewIdentityService,
			impl.NewDoctorService,
			impl.NewProductService,
			impl.NewVisitService,
			impl.NewOrderService,
			impl.NewTargetService,
			impl.NewPerformanceService,
			impl.NewActivityService,
			impl.NewMRRequestService,
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
			handler.NewAuthHandler,
			handler.NewIdentityHandler,
			handler.NewDoctorHandler,
			handler.NewProductHandler,
			handler.NewVisitHandler,
			handler.NewOrderHandler,
			handler.NewTargetHandler,
			handler.NewPerformanceHandler,
			handler.NewActivityHandler,
			handler.NewMRRequestHandler,
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
				scheduler.NewScheduler,
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
