package mocks

import (
	"context"

	"github.com/roversapp/event-services/bookinggateway/internal/model"
	"github.com/stretchr/testify/mock"
)

type NotificationRepository struct {
	mock.Mock
}

func (m *NotificationRepository) Create(ctx context.Context, notification *model.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *NotificationRepository) GetByUserID(userID string, limit, offset int) ([]model.Notification, error) {
	args := m.Called(userID, limit, offset)
	return args.Get(0).([]model.Notification), args.Error(1)
}
