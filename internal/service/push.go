package service

import (
	"context"
	"time"

	"github.com/roversapp/event-services/bookinggateway/internal/config"
	"github.com/roversapp/event-services/bookinggateway/pkg/pushprovider"
	"go.uber.org/zap"
)

type PushDeliveryService interface {
	SendWithRetry(ctx context.Context, notification pushprovider.Notification) (pushprovider.Response, error)
}

type pushDelivery struct {
	provider pushprovider.Provider
	logger   *zap.Logger
	config   pushprovider.Config
}

func NewPushDeliveryService(provider pushprovider.Provider, logger *zap.Logger, config *config.Config) PushDeliveryService {
	return &pushDelivery{provider: provider, logger: logger, config: config.Push}
}

// SendWithRetry attempts delivery up to MaxRetry times with a bounded
// per-attempt timeout. Invalid-topic and auth errors are not retried.
func (p *pushDelivery) SendWithRetry(ctx context.Context, notification pushprovider.Notification) (pushprovider.Response, error) {
	var lastErr error

	for attempt := 1; attempt <= p.config.MaxRetry; attempt++ {
		p.logger.Debug("Attempting push delivery",
			zap.Int("attempt", attempt),
			zap.String("topic", notification.To))

		providerCtx, cancel := context.WithTimeout(ctx, p.config.Timeout)

		response, err := p.provider.Send(providerCtx, notification)
		cancel()

		if err == nil {
			p.logger.Info("Push delivered successfully",
				zap.String("messageId", response.MessageID),
				zap.String("topic", notification.To),
				zap.Int("attempt", attempt))
			return response, nil
		}

		lastErr = err
		p.logger.Warn("Push delivery attempt failed",
			zap.Error(err),
			zap.Int("attempt", attempt),
			zap.String("topic", notification.To))

		if err.Error() == pushprovider.ErrorCodeInvalidTopic || err.Error() == pushprovider.ErrorCodeUnauthorized {
			p.logger.Error("Non-retryable push error encountered",
				zap.Error(err),
				zap.String("topic", notification.To))
			return pushprovider.Response{}, err
		}

		if attempt < p.config.MaxRetry {
			delay := time.Duration(attempt) * 100 * time.Millisecond
			p.logger.Debug("Waiting before retry", zap.Duration("delay", delay))

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return pushprovider.Response{}, ctx.Err()
			}
		}
	}

	p.logger.Error("All push delivery attempts exhausted",
		zap.Error(lastErr),
		zap.Int("maxRetries", p.config.MaxRetry),
		zap.String("topic", notification.To))

	return pushprovider.Response{}, lastErr
}
