package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/roversapp/event-services/bookinggateway/internal/config"
	"github.com/roversapp/event-services/bookinggateway/internal/mocks"
	"github.com/roversapp/event-services/bookinggateway/internal/service"
	"github.com/roversapp/event-services/bookinggateway/pkg/pushprovider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func pushTestConfig(maxRetry int) *config.Config {
	return &config.Config{
		Push: pushprovider.Config{
			Enable:   true,
			Timeout:  time.Second,
			MaxRetry: maxRetry,
		},
	}
}

func TestPushDelivery_SendWithRetry(t *testing.T) {
	logger := zap.NewNop()

	notification := pushprovider.Notification{
		To:    "user-42-topic",
		Title: "Ticket Booked",
		Body:  "Your booking #9001 has been confirmed",
	}

	t.Run("delivers on first attempt", func(t *testing.T) {
		mockProvider := &mocks.PushProvider{}
		svc := service.NewPushDeliveryService(mockProvider, logger, pushTestConfig(3))

		mockProvider.On("Send", mock.Anything, notification).
			Return(pushprovider.Response{MessageID: "push-1", Status: "ok"}, nil).Once()

		response, err := svc.SendWithRetry(context.Background(), notification)

		assert.NoError(t, err)
		assert.Equal(t, "push-1", response.MessageID)
		mockProvider.AssertExpectations(t)
	})

	t.Run("retries after a server error and succeeds", func(t *testing.T) {
		mockProvider := &mocks.PushProvider{}
		svc := service.NewPushDeliveryService(mockProvider, logger, pushTestConfig(3))

		mockProvider.On("Send", mock.Anything, notification).
			Return(pushprovider.Response{}, errors.New(pushprovider.ErrorCodeServerError)).Once()
		mockProvider.On("Send", mock.Anything, notification).
			Return(pushprovider.Response{MessageID: "push-2", Status: "ok"}, nil).Once()

		response, err := svc.SendWithRetry(context.Background(), notification)

		assert.NoError(t, err)
		assert.Equal(t, "push-2", response.MessageID)
		mockProvider.AssertNumberOfCalls(t, "Send", 2)
	})

	t.Run("gives up after exhausting retries", func(t *testing.T) {
		mockProvider := &mocks.PushProvider{}
		svc := service.NewPushDeliveryService(mockProvider, logger, pushTestConfig(3))

		mockProvider.On("Send", mock.Anything, notification).
			Return(pushprovider.Response{}, errors.New(pushprovider.ErrorCodeTimeout)).Times(3)

		_, err := svc.SendWithRetry(context.Background(), notification)

		assert.Error(t, err)
		assert.Equal(t, pushprovider.ErrorCodeTimeout, err.Error())
		mockProvider.AssertNumberOfCalls(t, "Send", 3)
	})

	t.Run("does not retry invalid topic", func(t *testing.T) {
		mockProvider := &mocks.PushProvider{}
		svc := service.NewPushDeliveryService(mockProvider, logger, pushTestConfig(3))

		mockProvider.On("Send", mock.Anything, notification).
			Return(pushprovider.Response{}, errors.New(pushprovider.ErrorCodeInvalidTopic)).Once()

		_, err := svc.SendWithRetry(context.Background(), notification)

		assert.Error(t, err)
		assert.Equal(t, pushprovider.ErrorCodeInvalidTopic, err.Error())
		mockProvider.AssertNumberOfCalls(t, "Send", 1)
	})

	t.Run("does not retry unauthorized", func(t *testing.T) {
		mockProvider := &mocks.PushProvider{}
		svc := service.NewPushDeliveryService(mockProvider, logger, pushTestConfig(3))

		mockProvider.On("Send", mock.Anything, notification).
			Return(pushprovider.Response{}, errors.New(pushprovider.ErrorCodeUnauthorized)).Once()

		_, err := svc.SendWithRetry(context.Background(), notification)

		assert.Error(t, err)
		mockProvider.AssertNumberOfCalls(t, "Send", 1)
	})

	t.Run("stops when the context is cancelled between attempts", func(t *testing.T) {
		mockProvider := &mocks.PushProvider{}
		svc := service.NewPushDeliveryService(mockProvider, logger, pushTestConfig(3))

		ctx, cancel := context.WithCancel(context.Background())

		mockProvider.On("Send", mock.Anything, notification).
			Run(func(args mock.Arguments) { cancel() }).
			Return(pushprovider.Response{}, errors.New(pushprovider.ErrorCodeServerError)).Once()

		_, err := svc.SendWithRetry(ctx, notification)

		assert.ErrorIs(t, err, context.Canceled)
		mockProvider.AssertNumberOfCalls(t, "Send", 1)
	})
}
