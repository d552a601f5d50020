package service

import (
	"context"

	"github.com/roversapp/event-services/bookinggateway/pkg/mq"
	"github.com/roversapp/event-services/bookinggateway/pkg/pushprovider"
	"go.uber.org/zap"
)

type NotifyService interface {
	DeliverPush(ctx context.Context, cmd PushJobCommand) error
}

type notify struct {
	delivery PushDeliveryService
	enabled  bool
	logger   *zap.Logger
}

func NewNotifyService(delivery PushDeliveryService, enabled bool, logger *zap.Logger) NotifyService {
	return &notify{delivery: delivery, enabled: enabled, logger: logger}
}

// DeliverPush is the consumer-side handler for one queued push job.
// Permanent provider failures are logged and acked; a delivery problem must
// never surface back to the booking that produced the job.
func (n *notify) DeliverPush(ctx context.Context, cmd PushJobCommand) error {
	if !n.enabled {
		n.logger.Debug("Push delivery disabled, dropping job",
			zap.String("jobID", cmd.JobID),
			zap.Int64("orderID", cmd.OrderID))
		return nil
	}

	if cmd.Topic == "" {
		n.logger.Warn("Push job without device topic, dropping",
			zap.String("jobID", cmd.JobID),
			zap.String("userID", cmd.UserID),
			zap.Int64("orderID", cmd.OrderID))
		return nil
	}

	notification := pushprovider.Notification{
		To:    cmd.Topic,
		Title: cmd.Title,
		Body:  cmd.Body,
		Data:  cmd.Data,
	}

	_, err := n.delivery.SendWithRetry(ctx, notification)
	if err == nil {
		return nil
	}

	switch err.Error() {
	case pushprovider.ErrorCodeInvalidTopic, pushprovider.ErrorCodeUnauthorized, pushprovider.ErrorCodeInvalidPayload:
		n.logger.Error("Dropping undeliverable push job",
			zap.String("jobID", cmd.JobID),
			zap.Int64("orderID", cmd.OrderID),
			zap.Error(err))
		return nil
	}

	n.logger.Warn("Push delivery failed, requeueing job",
		zap.String("jobID", cmd.JobID),
		zap.Int64("orderID", cmd.OrderID),
		zap.Error(err))

	return mq.Temporary(err)
}
