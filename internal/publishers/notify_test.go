package publishers_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/roversapp/event-services/bookinggateway/internal/mocks"
	"github.com/roversapp/event-services/bookinggateway/internal/publishers"
	"github.com/roversapp/event-services/bookinggateway/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestNotifyPublisher_EnqueuePush(t *testing.T) {
	logger := zap.NewNop()

	job := service.PushJobCommand{
		JobID:   "job-1",
		UserID:  "user-42",
		Topic:   "user-42-topic",
		Title:   "Ticket Booked",
		Body:    "Your booking #9001 has been confirmed",
		OrderID: 9001,
	}

	t.Run("publishes job to notify queue", func(t *testing.T) {
		mockPublisher := &mocks.Publisher{}
		publisher := publishers.NewNotifyPublisher(mockPublisher, logger)

		mockPublisher.On("Publish", context.Background(), "", publishers.NotifyQueue,
			mock.MatchedBy(func(body []byte) bool {
				var decoded service.PushJobCommand
				if err := json.Unmarshal(body, &decoded); err != nil {
					return false
				}
				return decoded.JobID == job.JobID &&
					decoded.Topic == job.Topic &&
					decoded.OrderID == job.OrderID
			})).Return(nil)

		err := publisher.EnqueuePush(context.Background(), job)

		assert.NoError(t, err)
		mockPublisher.AssertExpectations(t)
	})

	t.Run("assigns a job id when missing", func(t *testing.T) {
		mockPublisher := &mocks.Publisher{}
		publisher := publishers.NewNotifyPublisher(mockPublisher, logger)

		anonymous := job
		anonymous.JobID = ""

		mockPublisher.On("Publish", context.Background(), "", publishers.NotifyQueue,
			mock.MatchedBy(func(body []byte) bool {
				var decoded service.PushJobCommand
				if err := json.Unmarshal(body, &decoded); err != nil {
					return false
				}
				return decoded.JobID != ""
			})).Return(nil)

		err := publisher.EnqueuePush(context.Background(), anonymous)

		assert.NoError(t, err)
		mockPublisher.AssertExpectations(t)
	})

	t.Run("returns broker errors to the caller", func(t *testing.T) {
		mockPublisher := &mocks.Publisher{}
		publisher := publishers.NewNotifyPublisher(mockPublisher, logger)

		mockPublisher.On("Publish", context.Background(), "", publishers.NotifyQueue,
			mock.AnythingOfType("[]uint8")).Return(errors.New("channel closed"))

		err := publisher.EnqueuePush(context.Background(), job)

		assert.Error(t, err)
	})
}
