package main

import (
	"context"
	"time"

	playgroundValidator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/roversapp/event-services/bookinggateway/internal/api"
	v1 "github.com/roversapp/event-services/bookinggateway/internal/api/v1"
	"github.com/roversapp/event-services/bookinggateway/internal/api/validator"
	"github.com/roversapp/event-services/bookinggateway/internal/config"
	"github.com/roversapp/event-services/bookinggateway/internal/database"
	appErrors "github.com/roversapp/event-services/bookinggateway/internal/errors"
	"github.com/roversapp/event-services/bookinggateway/internal/metrics"
	"github.com/roversapp/event-services/bookinggateway/internal/publishers"
	"github.com/roversapp/event-services/bookinggateway/internal/repository"
	"github.com/roversapp/event-services/bookinggateway/internal/service"
	"github.com/roversapp/event-services/bookinggateway/pkg/mq"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			database.NewConnection,
			NewMQConnection,
			NewMQPublisher,
			metrics.NewMetrics,
			NewValidator,
			NewFiberApp,

			repository.NewTransactionManager,
			repository.NewUserRepository,
			repository.NewTicketRepository,
			repository.NewTicketTypePriceRepository,
			repository.NewWalletReportRepository,
			repository.NewNotificationRepository,

			NewNotifyPublisher,
			NewBookingService,
			service.NewWalletService,

			v1.NewHandler,
		),
		fx.Invoke(startServer),
	).Run()
}

func NewFiberApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: appErrors.ErrorHandler()})
}

func NewValidator(m *metrics.Metrics) validator.IXValidator {
	return validator.NewXValidator(playgroundValidator.New(), m)
}

func NewMQConnection(cfg *config.Config, logger *zap.Logger) (*mq.RabbitMQ, error) {
	return mq.NewConnection(cfg.MQ, logger)
}

func NewMQPublisher(rabbit *mq.RabbitMQ) (mq.Publisher, error) {
	return rabbit.CreatePublisher()
}

func NewNotifyPublisher(publisher mq.Publisher, logger *zap.Logger) service.PushQueue {
	return publishers.NewNotifyPublisher(publisher, logger)
}

func NewBookingService(txManager repository.TxManager, userRepo repository.UserRepository,
	ticketRepo repository.TicketRepository, tierRepo repository.TicketTypePriceRepository,
	walletReportRepo repository.WalletReportRepository, notificationRepo repository.NotificationRepository,
	pushQueue service.PushQueue, cfg *config.Config, logger *zap.Logger) service.BookingService {
	return service.NewBookingService(txManager, userRepo, ticketRepo, tierRepo,
		walletReportRepo, notificationRepo, pushQueue, cfg.Booking.RefundOnCancel, logger)
}

func startServer(app *fiber.App, handler *v1.Handler, cfg *config.Config, db *gorm.DB,
	m *metrics.Metrics, rabbit *mq.RabbitMQ, logger *zap.Logger, lc fx.Lifecycle) {
	app.Use(metrics.HTTPMetricsMiddleware(m, logger))
	app.Use(metrics.HealthCheckMiddleware())

	api.SetupRoutes(app, handler)

	systemCollector := metrics.NewSystemCollector(m, logger)
	dbCollector := metrics.NewDatabaseMetricsCollector(m, logger, db)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rabbit.DeclareTopology([]string{publishers.NotifyQueue}); err != nil {
				logger.Error("declare topology failed", zap.Error(err))
				return err
			}

			systemCollector.Start(30 * time.Second)
			dbCollector.Start(30 * time.Second)

			go app.Listen(cfg.API.Port)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			systemCollector.Stop()
			dbCollector.Stop()

			if err := app.ShutdownWithContext(ctx); err != nil {
				return err
			}

			return rabbit.Close()
		},
	})
}
