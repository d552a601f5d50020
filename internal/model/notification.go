package model

import "time"

// Notification is the in-app notification history, append-only.
type Notification struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;<-:create"`
	UserID      string    `gorm:"column:user_id;type:varchar(36);not null;index"`
	Title       string    `gorm:"column:title;type:varchar(255)"`
	Description string    `gorm:"column:description;type:text"`
	CreatedAt   time.Time `gorm:"column:created_at;default:CURRENT_TIMESTAMP"`

	User User `gorm:"foreignKey:UserID"`
}

func (Notification) TableName() string {
	return "notifications"
}
