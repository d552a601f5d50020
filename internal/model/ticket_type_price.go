package model

import "time"

// TicketTypePrice is one sellable tier of an event. TicketBooked is only
// ever moved through the conditional updates in the repository, which keep
// ticket_booked <= ticket_limit under concurrent bookings.
type TicketTypePrice struct {
	ID           int64     `gorm:"primaryKey;autoIncrement;<-:create"`
	EventID      int64     `gorm:"column:event_id;not null;index:idx_event_type,unique"`
	Type         string    `gorm:"column:type;type:varchar(50);not null;index:idx_event_type,unique"`
	Price        int64     `gorm:"column:price;not null"`
	TicketLimit  int       `gorm:"column:ticket_limit;not null"`
	TicketBooked int       `gorm:"column:ticket_booked;not null;default:0"`
	CreatedAt    time.Time `gorm:"column:created_at;default:CURRENT_TIMESTAMP"`
	UpdatedAt    time.Time `gorm:"column:updated_at;default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP"`

	Event Event `gorm:"foreignKey:EventID"`
}

func (TicketTypePrice) TableName() string {
	return "ticket_type_prices"
}
