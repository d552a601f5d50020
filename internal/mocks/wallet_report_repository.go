package mocks

import (
	"context"

	"github.com/roversapp/event-services/bookinggateway/internal/model"
	"github.com/stretchr/testify/mock"
)

type WalletReportRepository struct {
	mock.Mock
}

func (m *WalletReportRepository) Create(ctx context.Context, report *model.WalletReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *WalletReportRepository) GetByUserID(userID string, limit, offset int) ([]model.WalletReport, error) {
	args := m.Called(userID, limit, offset)
	return args.Get(0).([]model.WalletReport), args.Error(1)
}

func (m *WalletReportRepository) CountByUserID(userID string) (int, error) {
	args := m.Called(userID)
	return args.Int(0), args.Error(1)
}
