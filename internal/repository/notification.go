package repository

import (
	"context"

	"github.com/roversapp/event-services/bookinggateway/internal/model"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *model.Notification) error
	GetByUserID(userID string, limit, offset int) ([]model.Notification, error)
}

type notification struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notification{db: db}
}

func (n *notification) Create(ctx context.Context, notification *model.Notification) error {
	db := GetTx(ctx, n.db)
	return db.Create(notification).Error
}

func (n *notification) GetByUserID(userID string, limit, offset int) ([]model.Notification, error) {
	var notifications []model.Notification

	err := n.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}

	return notifications, nil
}
