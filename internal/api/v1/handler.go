package v1

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/roversapp/event-services/bookinggateway/internal/api/contract"
	"github.com/roversapp/event-services/bookinggateway/internal/api/validator"
	"github.com/roversapp/event-services/bookinggateway/internal/constants"
	"github.com/roversapp/event-services/bookinggateway/internal/metrics"
	"github.com/roversapp/event-services/bookinggateway/internal/model"
	"github.com/roversapp/event-services/bookinggateway/internal/service"
	"go.uber.org/zap"
)

type Handler struct {
	logger         *zap.Logger
	bookingService service.BookingService
	walletService  service.WalletService
	XValidator     validator.IXValidator
	metrics        *metrics.Metrics
}

func NewHandler(logger *zap.Logger, bookingService service.BookingService, walletService service.WalletService,
	XValidator validator.IXValidator, metrics *metrics.Metrics) *Handler {
	return &Handler{
		logger:         logger,
		bookingService: bookingService,
		walletService:  walletService,
		XValidator:     XValidator,
		metrics:        metrics,
	}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) BookTicket(c *fiber.Ctx) error {
	start := time.Now()

	var handlerRequest BookTicketRequest
	validationStart := time.Now()

	responseError := h.XValidator.Validator(&handlerRequest, constants.MessageErrorFormat, c)
	h.metrics.RecordValidationDuration("book_ticket", time.Since(validationStart))

	if responseError.ResponseCode != 0 {
		h.logger.Error("Error Validator", zap.Any("request", handlerRequest))
		h.metrics.RecordBookingRejection("validation_failed")
		return c.JSON(responseError)
	}

	cmd := service.SubmitBookingCommand{
		UserID:          handlerRequest.UserID,
		EventID:         handlerRequest.EventID,
		TicketTypeID:    handlerRequest.TicketTypeID,
		UnitPrice:       handlerRequest.UnitPrice,
		Subtotal:        handlerRequest.Subtotal,
		CouponAmount:    handlerRequest.CouponAmount,
		TicketCount:     handlerRequest.TicketCount,
		TotalAmount:     handlerRequest.TotalAmount,
		Tax:             handlerRequest.Tax,
		WalletAmount:    handlerRequest.WalletAmount,
		PaymentMethodID: handlerRequest.PaymentMethodID,
		TransactionID:   handlerRequest.TransactionID,
		IdempotencyKey:  handlerRequest.IdempotencyKey,
	}

	result, err := h.bookingService.SubmitBooking(c.UserContext(), cmd)
	if err != nil {
		var serviceErr service.Error
		if errors.As(err, &serviceErr) {
			h.metrics.RecordBookingRejection(strings.ToLower(serviceErr.Code))

			// Insufficient balance is a soft failure: the client refreshes
			// the shown balance and retries, so it rides a 200 envelope.
			if serviceErr.Code == constants.ErrCodeInsufficientWallet {
				return c.JSON(contract.Response{
					ResponseCode: fiber.StatusOK,
					Result:       false,
					ResponseMsg:  constants.GetErrorMessage(serviceErr.Code),
					Wallet:       contract.Int64Ptr(result.Wallet),
				})
			}
		}

		return err
	}

	h.metrics.RecordBookingCreated()
	if cmd.WalletAmount > 0 && !result.Duplicate {
		h.metrics.RecordWalletLedgerEntry(model.WalletReportStatusDebit)
	}

	h.logger.Info("Booking request completed",
		zap.String("user_id", cmd.UserID),
		zap.Int64("order_id", result.OrderID),
		zap.Bool("duplicate", result.Duplicate),
		zap.Duration("duration", time.Since(start)),
	)

	return c.JSON(contract.Response{
		ResponseCode: fiber.StatusOK,
		Result:       true,
		ResponseMsg:  "Ticket booked successfully",
		Wallet:       contract.Int64Ptr(result.Wallet),
		OrderID:      contract.Int64Ptr(result.OrderID),
	})
}

func (h *Handler) CancelTicket(c *fiber.Ctx) error {
	var handlerRequest CancelTicketRequest

	responseError := h.XValidator.Validator(&handlerRequest, constants.MessageErrorFormat, c)

	if responseError.ResponseCode != 0 {
		h.logger.Error("Error Validator", zap.Any("request", handlerRequest))
		return c.JSON(responseError)
	}

	cmd := service.CancelBookingCommand{
		UserID:  handlerRequest.UserID,
		OrderID: handlerRequest.OrderID,
	}

	result, err := h.bookingService.CancelBooking(c.UserContext(), cmd)
	if err != nil {
		h.logger.Error("Error cancelling booking", zap.Error(err))
		return err
	}

	h.metrics.RecordBookingCancelled()
	if result.Refunded {
		h.metrics.RecordWalletLedgerEntry(model.WalletReportStatusCredit)
	}

	return c.JSON(contract.Response{
		ResponseCode: fiber.StatusOK,
		Result:       true,
		ResponseMsg:  "Ticket cancelled successfully",
		Wallet:       contract.Int64Ptr(result.Wallet),
		OrderID:      contract.Int64Ptr(result.OrderID),
	})
}

func (h *Handler) WalletBalance(c *fiber.Ctx) error {
	var handlerRequest WalletBalanceRequest

	responseError := h.XValidator.Validator(&handlerRequest, constants.MessageErrorFormat, c)

	if responseError.ResponseCode != 0 {
		h.logger.Error("Error Validator", zap.Any("request", handlerRequest))
		return c.JSON(responseError)
	}

	if handlerRequest.Limit == 0 {
		handlerRequest.Limit = 20
	}

	query := service.WalletReportQuery{
		UserID: handlerRequest.UserID,
		Limit:  handlerRequest.Limit,
		Offset: handlerRequest.Offset,
	}

	result, err := h.walletService.GetWalletReport(query)
	if err != nil {
		h.logger.Error("Error getting wallet report", zap.Error(err))
		return err
	}

	return c.JSON(contract.Response{
		ResponseCode: fiber.StatusOK,
		Result:       true,
		ResponseMsg:  "Wallet report retrieved successfully",
		Wallet:       contract.Int64Ptr(result.Wallet),
		Data:         result,
	})
}
