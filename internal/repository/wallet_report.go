package repository

import (
	"context"

	"github.com/roversapp/event-services/bookinggateway/internal/model"
	"gorm.io/gorm"
)

type WalletReportRepository interface {
	Create(ctx context.Context, report *model.WalletReport) error
	GetByUserID(userID string, limit, offset int) ([]model.WalletReport, error)
	CountByUserID(userID string) (int, error)
}

type walletReport struct {
	db *gorm.DB
}

func NewWalletReportRepository(db *gorm.DB) WalletReportRepository {
	return &walletReport{db: db}
}

func (w *walletReport) Create(ctx context.Context, report *model.WalletReport) error {
	db := GetTx(ctx, w.db)
	return db.Create(report).Error
}

func (w *walletReport) GetByUserID(userID string, limit, offset int) ([]model.WalletReport, error) {
	var reports []model.WalletReport

	err := w.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reports).Error
	if err != nil {
		return nil, err
	}

	return reports, nil
}

func (w *walletReport) CountByUserID(userID string) (int, error) {
	var count int64

	err := w.db.Model(&model.WalletReport{}).
		Where("user_id = ?", userID).
		Count(&count).Error

	if err != nil {
		return 0, err
	}

	return int(count), nil
}
