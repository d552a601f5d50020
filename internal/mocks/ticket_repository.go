package mocks

import (
	"context"

	"github.com/roversapp/event-services/bookinggateway/internal/model"
	"github.com/stretchr/testify/mock"
)

type TicketRepository struct {
	mock.Mock
}

func (m *TicketRepository) Create(ctx context.Context, ticket *model.Ticket) error {
	args := m.Called(ctx, ticket)
	return args.Error(0)
}

func (m *TicketRepository) GetByID(id int64) (*model.Ticket, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ticket), args.Error(1)
}

func (m *TicketRepository) GetByIdempotencyKey(idempotencyKey string) (*model.Ticket, error) {
	args := m.Called(idempotencyKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ticket), args.Error(1)
}

func (m *TicketRepository) UpdateState(ctx context.Context, id int64, from, to model.TicketState) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}

func (m *TicketRepository) GetByUserID(userID string, limit, offset int) ([]model.Ticket, error) {
	args := m.Called(userID, limit, offset)
	return args.Get(0).([]model.Ticket), args.Error(1)
}
