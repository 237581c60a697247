// Command settlement-replayer republishes a settlement event onto one of the
// wallet queues. Used when a delivery was dropped, e.g. a payment settled
// before the buyer's wallet existed.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/campusly/course-services/walletgateway/internal/config"
	"github.com/campusly/course-services/walletgateway/internal/consumers"
	"github.com/campusly/course-services/walletgateway/pkg/mq"
	"go.uber.org/zap"
)

func main() {
	queue := flag.String("queue", consumers.QueuePaymentSettled, "target queue")
	payload := flag.String("payload", "", "path to the event JSON file")
	flag.Parse()

	if err := run(*queue, *payload); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(queue, payload string) error {
	if queue != consumers.QueuePaymentSettled && queue != consumers.QueuePaymentFailed {
		return fmt.Errorf("unknown queue %q", queue)
	}
	if payload == "" {
		return fmt.Errorf("payload file is required")
	}

	body, err := os.ReadFile(payload)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	rabbit, err := mq.NewConnection(cfg.RabbitMQ, logger)
	if err != nil {
		return err
	}
	defer rabbit.Close()

	if err := rabbit.DeclareTopology([]string{queue}); err != nil {
		return err
	}

	publisher, err := rabbit.CreatePublisher()
	if err != nil {
		return err
	}

	if err := publisher.Publish(context.Background(), "", queue, body); err != nil {
		return err
	}

	logger.Info("event republished", zap.String("queue", queue), zap.Int("bytes", len(body)))
	return nil
}
