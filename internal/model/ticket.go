package model

import "time"

type TicketState string

const (
	TicketStateBooked    TicketState = "Booked"
	TicketStateCompleted TicketState = "Completed"
	TicketStateCancelled TicketState = "Cancelled"
)

// Ticket is one booking order. The autoincrement ID doubles as the order id
// returned to the client. Rows are never deleted, only moved from Booked to
// Completed or Cancelled.
type Ticket struct {
	ID               int64       `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	UserID           string      `gorm:"column:user_id;type:varchar(36);not null"`
	EventID          int64       `gorm:"column:event_id;not null"`
	TypeID           int64       `gorm:"column:type_id;not null"`
	Price            int64       `gorm:"column:price;not null"`
	Subtotal         int64       `gorm:"column:subtotal;not null"`
	CouponAmount     int64       `gorm:"column:coupon_amount;default:0"`
	TotalTicketCount int         `gorm:"column:total_ticket_count;not null"`
	TotalAmount      int64       `gorm:"column:total_amount;not null"`
	Tax              int64       `gorm:"column:tax;default:0"`
	WalletAmountUsed int64       `gorm:"column:wallet_amount_used;default:0"`
	PaymentMethodID  string      `gorm:"column:payment_method_id;type:varchar(50)"`
	TransactionID    string      `gorm:"column:transaction_id;type:varchar(100)"`
	IdempotencyKey   string      `gorm:"column:idempotency_key;type:varchar(100);uniqueIndex"`
	TicketType       TicketState `gorm:"column:ticket_type;type:varchar(20);default:'Booked'"`
	CreatedAt        time.Time   `gorm:"column:created_at;default:CURRENT_TIMESTAMP"`
	UpdatedAt        time.Time   `gorm:"column:updated_at;default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP"`

	User User `gorm:"foreignKey:UserID"`
}

func (Ticket) TableName() string {
	return "tickets"
}
