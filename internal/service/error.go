package service

import "errors"

const (
	ErrCodePushTimeout      = "PUSH_TIMEOUT"
	ErrCodePushServiceError = "PUSH_SERVICE_ERROR"
	ErrCodeDatabase         = "DATABASE_ERROR"
)

var (
	ErrBookingNotFound       = errors.New("BOOKING_NOT_FOUND")
	ErrBookingNotCancellable = errors.New("BOOKING_NOT_CANCELLABLE")
	ErrDatabase              = errors.New("DATABASE_ERROR")
)

type Error struct {
	Code  string
	Cause error
}

func NewServiceError(code string, cause error) error {
	return Error{Code: code, Cause: cause}
}

func (e Error) Error() string {
	return e.Cause.Error()
}

func (e Error) Unwrap() error {
	return e.Cause
}
