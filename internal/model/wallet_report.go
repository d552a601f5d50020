package model

import "time"

const (
	WalletReportStatusCredit = "Credit"
	WalletReportStatusDebit  = "Debit"
)

// WalletReport is the append-only wallet ledger. A row is written inside the
// same transaction as every balance change.
type WalletReport struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;<-:create"`
	UserID    string    `gorm:"column:user_id;type:varchar(36);not null;index"`
	Message   string    `gorm:"column:message;type:text"`
	Status    string    `gorm:"column:status;type:enum('Credit','Debit');not null"`
	Amount    int64     `gorm:"column:amount;not null"`
	CreatedAt time.Time `gorm:"column:created_at;default:CURRENT_TIMESTAMP"`

	User User `gorm:"foreignKey:UserID"`
}

func (WalletReport) TableName() string {
	return "wallet_reports"
}
