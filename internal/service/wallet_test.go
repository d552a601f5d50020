package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/roversapp/event-services/bookinggateway/internal/constants"
	"github.com/roversapp/event-services/bookinggateway/internal/mocks"
	"github.com/roversapp/event-services/bookinggateway/internal/model"
	"github.com/roversapp/event-services/bookinggateway/internal/repository"
	"github.com/roversapp/event-services/bookinggateway/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestWallet_GetWalletReport(t *testing.T) {
	logger := zap.NewNop()

	query := service.WalletReportQuery{UserID: "user-42", Limit: 20, Offset: 0}

	t.Run("returns balance with ledger entries", func(t *testing.T) {
		mockUserRepo := &mocks.UserRepository{}
		mockReportRepo := &mocks.WalletReportRepository{}

		svc := service.NewWalletService(mockUserRepo, mockReportRepo, logger)

		createdAt := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
		reports := []model.WalletReport{
			{
				UserID:    "user-42",
				Message:   "Amount debited for booking order #9001",
				Status:    model.WalletReportStatusDebit,
				Amount:    500,
				CreatedAt: createdAt,
			},
			{
				UserID:    "user-42",
				Message:   "Amount refunded for cancelled order #8555",
				Status:    model.WalletReportStatusCredit,
				Amount:    250,
				CreatedAt: createdAt,
			},
		}

		mockUserRepo.On("FindByID", query.UserID).Return(model.User{ID: "user-42", Wallet: 750}, nil)
		mockReportRepo.On("GetByUserID", query.UserID, query.Limit, query.Offset).Return(reports, nil)
		mockReportRepo.On("CountByUserID", query.UserID).Return(12, nil)

		result, err := svc.GetWalletReport(query)

		assert.NoError(t, err)
		assert.Equal(t, int64(750), result.Wallet)
		assert.Equal(t, 12, result.Total)
		assert.Len(t, result.Entries, 2)
		assert.Equal(t, model.WalletReportStatusDebit, result.Entries[0].Status)
		assert.Equal(t, createdAt.Format(time.RFC3339), result.Entries[0].CreatedAt)

		mockUserRepo.AssertExpectations(t)
		mockReportRepo.AssertExpectations(t)
	})

	t.Run("returns error for unknown user", func(t *testing.T) {
		mockUserRepo := &mocks.UserRepository{}
		mockReportRepo := &mocks.WalletReportRepository{}

		svc := service.NewWalletService(mockUserRepo, mockReportRepo, logger)

		mockUserRepo.On("FindByID", query.UserID).Return(model.User{}, repository.ErrUserNotFound)

		_, err := svc.GetWalletReport(query)

		var svcErr service.Error
		assert.True(t, errors.As(err, &svcErr))
		assert.Equal(t, constants.ErrCodeUserNotFound, svcErr.Code)
	})

	t.Run("wraps ledger read failures", func(t *testing.T) {
		mockUserRepo := &mocks.UserRepository{}
		mockReportRepo := &mocks.WalletReportRepository{}

		svc := service.NewWalletService(mockUserRepo, mockReportRepo, logger)

		mockUserRepo.On("FindByID", query.UserID).Return(model.User{ID: "user-42", Wallet: 750}, nil)
		mockReportRepo.On("GetByUserID", query.UserID, query.Limit, query.Offset).
			Return([]model.WalletReport(nil), errors.New("connection reset"))

		_, err := svc.GetWalletReport(query)

		var svcErr service.Error
		assert.True(t, errors.As(err, &svcErr))
		assert.Equal(t, constants.ErrCodeOperationFailed, svcErr.Code)
	})
}
