package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/roversapp/event-services/bookinggateway/internal/mocks"
	"github.com/roversapp/event-services/bookinggateway/internal/service"
	"github.com/roversapp/event-services/bookinggateway/pkg/mq"
	"github.com/roversapp/event-services/bookinggateway/pkg/pushprovider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestNotify_DeliverPush(t *testing.T) {
	logger := zap.NewNop()

	cmd := service.PushJobCommand{
		JobID:   "job-1",
		UserID:  "user-42",
		Topic:   "user-42-topic",
		Title:   "Ticket Booked",
		Body:    "Your booking #9001 has been confirmed",
		OrderID: 9001,
	}

	t.Run("delivers push job", func(t *testing.T) {
		mockDelivery := &mocks.PushDeliveryService{}
		svc := service.NewNotifyService(mockDelivery, true, logger)

		mockDelivery.On("SendWithRetry", context.Background(),
			mock.MatchedBy(func(n pushprovider.Notification) bool {
				return n.To == cmd.Topic && n.Title == cmd.Title && n.Body == cmd.Body
			})).Return(pushprovider.Response{MessageID: "push-1"}, nil)

		err := svc.DeliverPush(context.Background(), cmd)

		assert.NoError(t, err)
		mockDelivery.AssertExpectations(t)
	})

	t.Run("drops job when push is disabled", func(t *testing.T) {
		mockDelivery := &mocks.PushDeliveryService{}
		svc := service.NewNotifyService(mockDelivery, false, logger)

		err := svc.DeliverPush(context.Background(), cmd)

		assert.NoError(t, err)
		mockDelivery.AssertNotCalled(t, "SendWithRetry", mock.Anything, mock.Anything)
	})

	t.Run("drops job without a device topic", func(t *testing.T) {
		mockDelivery := &mocks.PushDeliveryService{}
		svc := service.NewNotifyService(mockDelivery, true, logger)

		noTopic := cmd
		noTopic.Topic = ""

		err := svc.DeliverPush(context.Background(), noTopic)

		assert.NoError(t, err)
		mockDelivery.AssertNotCalled(t, "SendWithRetry", mock.Anything, mock.Anything)
	})

	t.Run("acks permanently undeliverable jobs", func(t *testing.T) {
		for _, code := range []string{
			pushprovider.ErrorCodeInvalidTopic,
			pushprovider.ErrorCodeUnauthorized,
			pushprovider.ErrorCodeInvalidPayload,
		} {
			mockDelivery := &mocks.PushDeliveryService{}
			svc := service.NewNotifyService(mockDelivery, true, logger)

			mockDelivery.On("SendWithRetry", context.Background(),
				mock.AnythingOfType("pushprovider.Notification")).
				Return(pushprovider.Response{}, errors.New(code))

			err := svc.DeliverPush(context.Background(), cmd)

			assert.NoError(t, err, code)
		}
	})

	t.Run("requeues transient delivery failures", func(t *testing.T) {
		mockDelivery := &mocks.PushDeliveryService{}
		svc := service.NewNotifyService(mockDelivery, true, logger)

		mockDelivery.On("SendWithRetry", context.Background(),
			mock.AnythingOfType("pushprovider.Notification")).
			Return(pushprovider.Response{}, errors.New(pushprovider.ErrorCodeTimeout))

		err := svc.DeliverPush(context.Background(), cmd)

		assert.Error(t, err)

		var tempErr mq.TempError
		assert.True(t, errors.As(err, &tempErr))
	})
}
