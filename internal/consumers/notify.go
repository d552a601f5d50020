package consumers

import (
	"context"
	"encoding/json"

	"github.com/roversapp/event-services/bookinggateway/internal/publishers"
	"github.com/roversapp/event-services/bookinggateway/internal/service"
	"github.com/roversapp/event-services/bookinggateway/pkg/mq"
	"go.uber.org/zap"
)

type NotifyConsumer interface {
	Consume(ctx context.Context) error
}

type notifyConsumer struct {
	service  service.NotifyService
	consumer mq.Consumer
	logger   *zap.Logger
}

func NewNotifyConsumer(service service.NotifyService, consumer mq.Consumer, logger *zap.Logger) NotifyConsumer {
	return &notifyConsumer{
		service:  service,
		consumer: consumer,
		logger:   logger,
	}
}

func (n *notifyConsumer) Consume(ctx context.Context) error {
	return n.consumer.Consume(ctx, 1, publishers.NotifyQueue, n.handleJob)
}

func (n *notifyConsumer) handleJob(ctx context.Context, body []byte) error {
	n.logger.Info("received push job", zap.ByteString("body", body))

	var cmd service.PushJobCommand
	if err := json.Unmarshal(body, &cmd); err != nil {
		n.logger.Warn("invalid push job", zap.Error(err))
		return err
	}

	return n.service.DeliverPush(ctx, cmd)
}
