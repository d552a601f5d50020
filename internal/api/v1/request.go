package v1

// BookTicketRequest mirrors the legacy booking payload field for field.
// Coupon, tax and wallet amounts are allowed to be zero, so they only carry
// a floor instead of required.
type BookTicketRequest struct {
	UserID          string `json:"user_id" validate:"required"`
	EventID         int64  `json:"event_id" validate:"required"`
	TicketTypeID    int64  `json:"ticket_type_id" validate:"required"`
	UnitPrice       int64  `json:"unit_price" validate:"required,min=1"`
	Subtotal        int64  `json:"subtotal" validate:"required,min=1"`
	CouponAmount    int64  `json:"coupon_amount" validate:"min=0"`
	TicketCount     int    `json:"ticket_count" validate:"required,min=1"`
	TotalAmount     int64  `json:"total_amount" validate:"required,min=1"`
	Tax             int64  `json:"tax" validate:"min=0"`
	WalletAmount    int64  `json:"wallet_amount" validate:"min=0"`
	PaymentMethodID string `json:"payment_method_id" validate:"required"`
	TransactionID   string `json:"transaction_id" validate:"required,txid"`
	IdempotencyKey  string `json:"idempotency_key" validate:"required"`
}

type CancelTicketRequest struct {
	UserID  string `json:"user_id" validate:"required"`
	OrderID int64  `json:"order_id" validate:"required"`
}

type WalletBalanceRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Limit  int    `json:"limit" validate:"min=0,max=100"`
	Offset int    `json:"offset" validate:"min=0"`
}
