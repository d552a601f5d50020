package mocks

import (
	"context"

	"github.com/roversapp/event-services/bookinggateway/internal/service"
	"github.com/stretchr/testify/mock"
)

type PushQueue struct {
	mock.Mock
}

func (m *PushQueue) EnqueuePush(ctx context.Context, job service.PushJobCommand) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}
