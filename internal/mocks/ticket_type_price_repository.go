package mocks

import (
	"context"

	"github.com/roversapp/event-services/bookinggateway/internal/model"
	"github.com/stretchr/testify/mock"
)

type TicketTypePriceRepository struct {
	mock.Mock
}

func (m *TicketTypePriceRepository) FindByEventAndID(eventID, typeID int64) (model.TicketTypePrice, error) {
	args := m.Called(eventID, typeID)
	return args.Get(0).(model.TicketTypePrice), args.Error(1)
}

func (m *TicketTypePriceRepository) ReserveTickets(ctx context.Context, eventID, typeID int64, count int) error {
	args := m.Called(ctx, eventID, typeID, count)
	return args.Error(0)
}

func (m *TicketTypePriceRepository) ReleaseTickets(ctx context.Context, eventID, typeID int64, count int) error {
	args := m.Called(ctx, eventID, typeID, count)
	return args.Error(0)
}
