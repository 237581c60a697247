package main

import (
	"context"

	"github.com/campusly/course-services/walletgateway/internal/api"
	apivalidator "github.com/campusly/course-services/walletgateway/internal/api/validator"
	"github.com/campusly/course-services/walletgateway/internal/api/v1"
	"github.com/campusly/course-services/walletgateway/internal/config"
	apierrors "github.com/campusly/course-services/walletgateway/internal/errors"
	"github.com/campusly/course-services/walletgateway/internal/metrics"
	"github.com/campusly/course-services/walletgateway/internal/repository"
	"github.com/campusly/course-services/walletgateway/internal/service"
	"github.com/campusly/course-services/walletgateway/pkg/mysql"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			NewConnectionDB,
			NewFiber,
			NewValidator,

			metrics.NewMetrics,
			apivalidator.NewXValidator,

			repository.NewWalletRepository,
			repository.NewLedgerEntryRepository,
			repository.NewTransactionManager,
			service.NewLedgerService,

			v1.NewHandler,
		),
		fx.Invoke(startServer, startCollectors),
	).Run()
}

func startServer(app *fiber.App, handler *v1.Handler, m *metrics.Metrics, cfg *config.Config,
	logger *zap.Logger, lc fx.Lifecycle,
) {
	app.Use(metrics.HealthCheckMiddleware())
	app.Use(metrics.HTTPMetricsMiddleware(m, logger))
	api.SetupRoutes(app, handler)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := app.Listen(cfg.API.Port); err != nil {
					logger.Error("server stopped", zap.Error(err))
				}
			}()
			logger.Info("server started", zap.String("port", cfg.API.Port))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}

func startCollectors(m *metrics.Metrics, db *gorm.DB, cfg *config.Config, logger *zap.Logger, lc fx.Lifecycle) {
	system := metrics.NewSystemCollector(m, logger)
	database := metrics.NewDatabaseMetricsCollector(m, logger, db)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			system.Start(cfg.Metrics.CollectInterval)
			database.Start(cfg.Metrics.CollectInterval)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			system.Stop()
			database.Stop()
			return nil
		},
	})
}

func NewConnectionDB(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	ctx := context.Background()
	return mysql.NewConnection(ctx, cfg.Database, logger)
}

func NewFiber() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: apierrors.ErrorHandler()})
}

func NewValidator() *validator.Validate {
	return validator.New()
}
