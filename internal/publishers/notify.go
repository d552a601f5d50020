package publishers

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/roversapp/event-services/bookinggateway/internal/service"
	"github.com/roversapp/event-services/bookinggateway/pkg/mq"
	"go.uber.org/zap"
)

const NotifyQueue = "booking.notify"

type NotifyPublisher struct {
	publisher mq.Publisher
	logger    *zap.Logger
}

func NewNotifyPublisher(publisher mq.Publisher, logger *zap.Logger) *NotifyPublisher {
	return &NotifyPublisher{publisher: publisher, logger: logger}
}

var _ service.PushQueue = (*NotifyPublisher)(nil)

func (p *NotifyPublisher) EnqueuePush(ctx context.Context, job service.PushJobCommand) error {
	if job.JobID == "" {
		job.JobID = uuid.NewString()
	}

	body, err := json.Marshal(job)
	if err != nil {
		return err
	}

	if err := p.publisher.Publish(ctx, "", NotifyQueue, body); err != nil {
		p.logger.Error("Failed to publish push job",
			zap.Error(err),
			zap.String("jobID", job.JobID),
			zap.Int64("orderID", job.OrderID))
		return err
	}

	p.logger.Debug("Push job published",
		zap.String("jobID", job.JobID),
		zap.Int64("orderID", job.OrderID))

	return nil
}
