package model

import "time"

type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "Upcoming"
	EventStatusCompleted EventStatus = "Completed"
	EventStatusCancelled EventStatus = "Cancelled"
)

type Event struct {
	ID        int64       `gorm:"primaryKey;autoIncrement;<-:create"`
	Name      string      `gorm:"column:name;not null"`
	Status    EventStatus `gorm:"column:status;type:varchar(20);default:'Upcoming'"`
	StartsAt  *time.Time  `gorm:"column:starts_at"`
	CreatedAt time.Time   `gorm:"column:created_at;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time   `gorm:"column:updated_at;default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP"`
}

func (Event) TableName() string {
	return "events"
}
