package pushprovider

const (
	ErrorCodeServerError    = "SERVER_ERROR"    // For 5xx HTTP status
	ErrorCodeTimeout        = "TIMEOUT"         // For context timeout
	ErrorCodeInvalidTopic   = "INVALID_TOPIC"   // For 400/404 responses
	ErrorCodeUnauthorized   = "UNAUTHORIZED"    // For bad API key
	ErrorCodeNetworkError   = "NETWORK_ERROR"   // For connection failures
	ErrorCodeInvalidPayload = "INVALID_PAYLOAD" // For unencodable notifications
)
