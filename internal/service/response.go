package service

type BookingResult struct {
	OrderID   int64 `json:"order_id"`
	Wallet    int64 `json:"wallet"`
	Duplicate bool  `json:"duplicate"`
}

type CancelResult struct {
	OrderID  int64 `json:"order_id"`
	Wallet   int64 `json:"wallet"`
	Refunded bool  `json:"refunded"`
}

type WalletReportResult struct {
	Wallet  int64               `json:"wallet"`
	Entries []WalletReportEntry `json:"entries"`
	Total   int                 `json:"total"`
}

type WalletReportEntry struct {
	Message   string `json:"message"`
	Status    string `json:"status"`
	Amount    int64  `json:"amount"`
	CreatedAt string `json:"created_at"`
}
