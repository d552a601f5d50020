package errors

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/roversapp/event-services/bookinggateway/internal/api/contract"
	"github.com/roversapp/event-services/bookinggateway/internal/constants"
	"github.com/roversapp/event-services/bookinggateway/internal/service"
)

func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var serviceErr service.Error
		if errors.As(err, &serviceErr) {
			return handleServiceError(c, serviceErr)
		}

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal server error",
			"message": "Could not process the request",
		})
	}
}

func handleServiceError(c *fiber.Ctx, err service.Error) error {
	statusMap := map[string]int{
		constants.ErrCodeUserNotFound:          fiber.StatusNotFound,
		constants.ErrCodeTicketTypeNotFound:    fiber.StatusNotFound,
		constants.ErrCodeBookingNotFound:       fiber.StatusNotFound,
		constants.ErrCodeTicketsSoldOut:        fiber.StatusConflict,
		constants.ErrCodeInsufficientWallet:    fiber.StatusConflict,
		constants.ErrCodeBookingNotCancellable: fiber.StatusConflict,
		constants.ErrCodeValidationFailed:      fiber.StatusUnprocessableEntity,
		constants.ErrCodeOperationFailed:       fiber.StatusInternalServerError,
	}

	status, ok := statusMap[err.Code]
	if !ok {
		status = fiber.StatusInternalServerError
	}

	return c.Status(status).JSON(contract.Response{
		ResponseCode: status,
		Result:       false,
		ResponseMsg:  constants.GetErrorMessage(err.Code),
	})
}
