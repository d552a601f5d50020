package constants

const MessageErrorFormat = "The '%s' format is invalid"

const (
	ErrCodeValidationFailed      = "VALIDATION_FAILED"
	ErrCodeUserNotFound          = "USER_NOT_FOUND"
	ErrCodeTicketTypeNotFound    = "TICKET_TYPE_NOT_FOUND"
	ErrCodeBookingNotFound       = "BOOKING_NOT_FOUND"
	ErrCodeInsufficientWallet    = "INSUFFICIENT_WALLET_BALANCE"
	ErrCodeTicketsSoldOut        = "TICKETS_SOLD_OUT"
	ErrCodeBookingNotCancellable = "BOOKING_NOT_CANCELLABLE"
	ErrCodeOperationFailed       = "OPERATION_FAILED"
)

const (
	ErrMsgValidationFailed      = "invalid request"
	ErrMsgUserNotFound          = "user not found"
	ErrMsgTicketTypeNotFound    = "ticket type not found"
	ErrMsgBookingNotFound       = "booking not found"
	ErrMsgInsufficientWallet    = "insufficient wallet balance"
	ErrMsgTicketsSoldOut        = "tickets sold out for this type"
	ErrMsgBookingNotCancellable = "booking cannot be cancelled"
	ErrMsgOperationFailed       = "operation failed"
)

var errorMessages = map[string]string{
	ErrCodeValidationFailed:      ErrMsgValidationFailed,
	ErrCodeUserNotFound:          ErrMsgUserNotFound,
	ErrCodeTicketTypeNotFound:    ErrMsgTicketTypeNotFound,
	ErrCodeBookingNotFound:       ErrMsgBookingNotFound,
	ErrCodeInsufficientWallet:    ErrMsgInsufficientWallet,
	ErrCodeTicketsSoldOut:        ErrMsgTicketsSoldOut,
	ErrCodeBookingNotCancellable: ErrMsgBookingNotCancellable,
	ErrCodeOperationFailed:       ErrMsgOperationFailed,
}

func GetErrorMessage(code string) string {
	msg, exists := errorMessages[code]
	if !exists {
		return ErrMsgOperationFailed
	}
	return msg
}
