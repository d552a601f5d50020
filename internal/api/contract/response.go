package contract

// Response is the legacy client envelope: ResponseCode mirrors the HTTP
// status, Result distinguishes business success from soft failure, and
// wallet/order_id ride at the top level because that is where the mobile
// clients read them.
type Response struct {
	ResponseCode int    `json:"ResponseCode"`
	Result       bool   `json:"Result"`
	ResponseMsg  string `json:"ResponseMsg"`
	Wallet       *int64 `json:"wallet,omitempty"`
	OrderID      *int64 `json:"order_id,omitempty"`
	Data         any    `json:"data,omitempty"`
}

func Int64Ptr(v int64) *int64 {
	return &v
}
