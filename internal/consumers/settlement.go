package consumers

import (
	"context"
	"encoding/json"

	"github.com/campusly/course-services/walletgateway/internal/service"
	"github.com/campusly/course-services/walletgateway/pkg/mq"
	"go.uber.org/zap"
)

const (
	QueuePaymentSettled = "wallet.payment.settled"
	QueuePaymentFailed  = "wallet.payment.failed"
)

type SettledConsumer interface {
	Consume(ctx context.Context) error
}

type settledConsumer struct {
	service  service.SettlementService
	consumer mq.Consumer
	logger   *zap.Logger
}

func NewSettledConsumer(service service.SettlementService, consumer mq.Consumer, logger *zap.Logger) SettledConsumer {
	return &settledConsumer{service: service, consumer: consumer, logger: logger}
}

func (c *settledConsumer) Consume(ctx context.Context) error {
	return c.consumer.Consume(ctx, 1, QueuePaymentSettled, c.handleMessage)
}

func (c *settledConsumer) handleMessage(ctx context.Context, body []byte) error {
	c.logger.Info("received settled payment event", zap.ByteString("body", body))

	var cmd service.PaymentSettledCommand
	if err := json.Unmarshal(body, &cmd); err != nil {
		c.logger.Warn("invalid settled payment event", zap.Error(err))
		return err
	}

	return c.service.HandleSettled(ctx, cmd)
}

type FailedConsumer interface {
	Consume(ctx context.Context) error
}

type failedConsumer struct {
	service  service.SettlementService
	consumer mq.Consumer
	logger   *zap.Logger
}

func NewFailedConsumer(service service.SettlementService, consumer mq.Consumer, logger *zap.Logger) FailedConsumer {
	return &failedConsumer{service: service, consumer: consumer, logger: logger}
}

func (c *failedConsumer) Consume(ctx context.Context) error {
	return c.consumer.Consume(ctx, 1, QueuePaymentFailed, c.handleMessage)
}

func (c *failedConsumer) handleMessage(ctx context.Context, body []byte) error {
	c.logger.Info("received failed payment event", zap.ByteString("body", body))

	var cmd service.PaymentFailedCommand
	if err := json.Unmarshal(body, &cmd); err != nil {
		c.logger.Warn("invalid failed payment event", zap.Error(err))
		return err
	}

	return c.service.HandleFailed(ctx, cmd)
}
