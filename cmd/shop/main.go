package main

import (
	"context"
	"log/slog"
	"os"

	"farmnaturals/config"
	"farmnaturals/internal/delivery"
	"farmnaturals/internal/delivery/api"
	"farmnaturals/internal/delivery/api/middleware"
	"farmnaturals/internal/delivery/api/render"
	"farmnaturals/internal/delivery/api/router/handler"
	"farmnaturals/internal/domain/service"
	"farmnaturals/internal/infra/auth"
	logs "farmnaturals/internal/infra/log"
	"farmnaturals/internal/infra/persistence/postgres"
	"farmnaturals/internal/infra/pubsub"
	"farmnaturals/internal/infra/qrcode"
	"farmnaturals/internal/infra/report"
	"farmnaturals/internal/infra/storage"
	"farmnaturals/internal/usecase"
	"farmnaturals/internal/usecase/impl"

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
			bootstrapAdmins,
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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewCategoryRepository,
			postgres.NewProductRepository,
			postgres.NewCartRepository,
			postgres.NewOrderRepository,
			postgres.NewStatsRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			storage.New,
			pubsub.NewEventPublisher,
			report.NewXLSXExporter,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIdentityService,
			impl.NewCatalogService,
			impl.NewCartService,
			impl.NewOrderService,
			impl.NewDashboardService,
			impl.NewMediaService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			render.New,
			handler.NewAuthHandler,
			handler.NewCatalogHandler,
			handler.NewStorefrontHandler,
			handler.NewCartHandler,
			handler.NewOrderHandler,
			handler.NewDashboardHandler,
			handler.NewMediaHandler,
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
		),
	)
}

// bootstrapAdmins promotes the configured emails once the schema is ready. A failure is logged
// and does not stop startup.
func bootstrapAdmins(lc fx.Lifecycle, readiness *postgres.Readiness, identity usecase.IdentityUsecase, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if !readiness.Ready() {
				logger.Info("Administrator bootstrap waits for the database schema")
			}

			readiness.OnReady(func(ctx context.Context) {
				if err := identity.BootstrapAdmins(ctx); err != nil {
					logger.Warn("Failed to bootstrap administrators", slog.Any("error", err))
				}
			})

			return nil
		},
	})
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
