package service

type SubmitBookingCommand struct {
	UserID          string
	EventID         int64
	TicketTypeID    int64
	UnitPrice       int64
	Subtotal        int64
	CouponAmount    int64
	TicketCount     int
	TotalAmount     int64
	Tax             int64
	WalletAmount    int64
	PaymentMethodID string
	TransactionID   string
	IdempotencyKey  string
}

type CancelBookingCommand struct {
	UserID  string
	OrderID int64
}

type WalletReportQuery struct {
	UserID string
	Limit  int
	Offset int
}

// PushJobCommand is the queue payload for one push delivery. OrderID lets
// the worker log which booking a delivery belongs to; JobID is only for
// tracing.
type PushJobCommand struct {
	JobID   string            `json:"job_id"`
	UserID  string            `json:"user_id"`
	Topic   string            `json:"topic"`
	Title   string            `json:"title"`
	Body    string            `json:"body"`
	Data    map[string]string `json:"data,omitempty"`
	OrderID int64             `json:"order_id"`
}
