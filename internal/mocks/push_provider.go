package mocks

import (
	"context"

	"github.com/roversapp/event-services/bookinggateway/pkg/pushprovider"
	"github.com/stretchr/testify/mock"
)

type PushProvider struct {
	mock.Mock
}

func (m *PushProvider) Send(ctx context.Context, notification pushprovider.Notification) (pushprovider.Response, error) {
	args := m.Called(ctx, notification)
	return args.Get(0).(pushprovider.Response), args.Error(1)
}
