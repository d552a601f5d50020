package main

import (
	"context"

	"github.com/roversapp/event-services/bookinggateway/internal/config"
	"github.com/roversapp/event-services/bookinggateway/internal/consumers"
	"github.com/roversapp/event-services/bookinggateway/internal/publishers"
	"github.com/roversapp/event-services/bookinggateway/internal/service"
	"github.com/roversapp/event-services/bookinggateway/pkg/httpclient"
	"github.com/roversapp/event-services/bookinggateway/pkg/mq"
	"github.com/roversapp/event-services/bookinggateway/pkg/pushprovider"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			NewMQConnection,
			NewMQConsumer,

			NewPushProvider,
			service.NewPushDeliveryService,
			NewNotifyService,

			consumers.NewNotifyConsumer,
		),
		fx.Invoke(runNotifyConsumer),
	).Run()
}

func runNotifyConsumer(cfg *config.Config, notifyConsumer consumers.NotifyConsumer, logger *zap.Logger,
	rabbit *mq.RabbitMQ, lc fx.Lifecycle,
) {
	appCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rabbit.DeclareTopology([]string{publishers.NotifyQueue}); err != nil {
				logger.Error("declare topology failed", zap.Error(err))
				return err
			}
			logger.Info("queue declared", zap.String("queue", publishers.NotifyQueue))

			go func() {
				if err := notifyConsumer.Consume(appCtx); err != nil {
					logger.Error("consumer exited", zap.Error(err))
				}
			}()

			logger.Info("notify consumer started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping notify consumer")
			cancel()
			return rabbit.Close()
		},
	})
}

func NewPushProvider(cfg *config.Config) pushprovider.Provider {
	client := httpclient.NewHTTPClient(cfg.Push.Timeout)
	return pushprovider.NewPushProvider(cfg.Push, client)
}

func NewMQConnection(cfg *config.Config, logger *zap.Logger) (*mq.RabbitMQ, error) {
	return mq.NewConnection(cfg.MQ, logger)
}

func NewMQConsumer(rabbitMQ *mq.RabbitMQ) (mq.Consumer, error) {
	return rabbitMQ.CreateConsumer()
}

func NewNotifyService(delivery service.PushDeliveryService, cfg *config.Config, logger *zap.Logger) service.NotifyService {
	return service.NewNotifyService(delivery, cfg.Push.Enable, logger)
}
