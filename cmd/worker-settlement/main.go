package main

import (
	"context"

	"github.com/campusly/course-services/walletgateway/internal/config"
	"github.com/campusly/course-services/walletgateway/internal/consumers"
	"github.com/campusly/course-services/walletgateway/internal/metrics"
	"github.com/campusly/course-services/walletgateway/internal/repository"
	"github.com/campusly/course-services/walletgateway/internal/service"
	"github.com/campusly/course-services/walletgateway/pkg/catalog"
	"github.com/campusly/course-services/walletgateway/pkg/httpclient"
	"github.com/campusly/course-services/walletgateway/pkg/mq"
	"github.com/campusly/course-services/walletgateway/pkg/mysql"
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
			NewMQConnection,

			metrics.NewMetrics,

			repository.NewWalletRepository,
			repository.NewLedgerEntryRepository,
			repository.NewTransactionManager,
			NewCatalog,
			service.NewLedgerService,
			service.NewSettlementService,
		),
		fx.Invoke(runSettlementConsumers),
	).Run()
}

func runSettlementConsumers(cfg *config.Config, settlement service.SettlementService, logger *zap.Logger,
	rabbit *mq.RabbitMQ, lc fx.Lifecycle,
) {
	appCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			queues := []string{consumers.QueuePaymentSettled, consumers.QueuePaymentFailed}
			if err := rabbit.DeclareTopology(queues); err != nil {
				logger.Error("declare topology failed", zap.Error(err))
				return err
			}
			logger.Info("queues declared", zap.Strings("queues", queues))

			settledMQ, err := rabbit.CreateConsumer()
			if err != nil {
				return err
			}
			failedMQ, err := rabbit.CreateConsumer()
			if err != nil {
				return err
			}

			settled := consumers.NewSettledConsumer(settlement, settledMQ, logger)
			failed := consumers.NewFailedConsumer(settlement, failedMQ, logger)

			go func() {
				if err := settled.Consume(appCtx); err != nil {
					logger.Error("settled consumer exited", zap.Error(err))
				}
			}()
			go func() {
				if err := failed.Consume(appCtx); err != nil {
					logger.Error("failed consumer exited", zap.Error(err))
				}
			}()

			logger.Info("settlement consumers started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping settlement consumers")
			cancel()
			return rabbit.Close()
		},
	})
}

func NewConnectionDB(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	ctx := context.Background()
	return mysql.NewConnection(ctx, cfg.Database, logger)
}

func NewCatalog(cfg *config.Config) catalog.Client {
	client := httpclient.NewHTTPClient(cfg.Catalog.Timeout)
	return catalog.NewClient(cfg.Catalog, client)
}

func NewMQConnection(cfg *config.Config, logger *zap.Logger) (*mq.RabbitMQ, error) {
	return mq.NewConnection(cfg.RabbitMQ, logger)
}
