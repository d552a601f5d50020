package service

import (
	"errors"
	"time"

	"github.com/roversapp/event-services/bookinggateway/internal/constants"
	"github.com/roversapp/event-services/bookinggateway/internal/repository"
	"go.uber.org/zap"
)

type WalletService interface {
	GetWalletReport(query WalletReportQuery) (WalletReportResult, error)
}

type wallet struct {
	userRepo         repository.UserRepository
	walletReportRepo repository.WalletReportRepository
	logger           *zap.Logger
}

func NewWalletService(userRepo repository.UserRepository, walletReportRepo repository.WalletReportRepository,
	logger *zap.Logger) WalletService {
	return &wallet{userRepo: userRepo, walletReportRepo: walletReportRepo, logger: logger}
}

func (w *wallet) GetWalletReport(query WalletReportQuery) (WalletReportResult, error) {
	user, err := w.userRepo.FindByID(query.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return WalletReportResult{}, NewServiceError(constants.ErrCodeUserNotFound, err)
		}
		return WalletReportResult{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	reports, err := w.walletReportRepo.GetByUserID(query.UserID, query.Limit, query.Offset)
	if err != nil {
		w.logger.Error("Failed to load wallet reports",
			zap.String("userID", query.UserID),
			zap.Error(err))
		return WalletReportResult{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	total, err := w.walletReportRepo.CountByUserID(query.UserID)
	if err != nil {
		return WalletReportResult{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	entries := make([]WalletReportEntry, 0, len(reports))
	for _, report := range reports {
		entries = append(entries, WalletReportEntry{
			Message:   report.Message,
			Status:    report.Status,
			Amount:    report.Amount,
			CreatedAt: report.CreatedAt.Format(time.RFC3339),
		})
	}

	return WalletReportResult{Wallet: user.Wallet, Entries: entries, Total: total}, nil
}
