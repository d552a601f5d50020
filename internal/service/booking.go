package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/roversapp/event-services/bookinggateway/internal/constants"
	"github.com/roversapp/event-services/bookinggateway/internal/model"
	"github.com/roversapp/event-services/bookinggateway/internal/repository"
	"go.uber.org/zap"
)

// PushQueue hands a push job to the notify queue. Implemented by
// publishers.NotifyPublisher; a failed enqueue is never allowed to fail the
// booking that produced it.
type PushQueue interface {
	EnqueuePush(ctx context.Context, job PushJobCommand) error
}

type BookingService interface {
	SubmitBooking(ctx context.Context, cmd SubmitBookingCommand) (BookingResult, error)
	CancelBooking(ctx context.Context, cmd CancelBookingCommand) (CancelResult, error)
}

type booking struct {
	txManager        repository.TxManager
	userRepo         repository.UserRepository
	ticketRepo       repository.TicketRepository
	tierRepo         repository.TicketTypePriceRepository
	walletReportRepo repository.WalletReportRepository
	notificationRepo repository.NotificationRepository
	pushQueue        PushQueue
	refundOnCancel   bool
	logger           *zap.Logger
}

func NewBookingService(txManager repository.TxManager, userRepo repository.UserRepository,
	ticketRepo repository.TicketRepository, tierRepo repository.TicketTypePriceRepository,
	walletReportRepo repository.WalletReportRepository, notificationRepo repository.NotificationRepository,
	pushQueue PushQueue, refundOnCancel bool, logger *zap.Logger) BookingService {
	return &booking{
		txManager:        txManager,
		userRepo:         userRepo,
		ticketRepo:       ticketRepo,
		tierRepo:         tierRepo,
		walletReportRepo: walletReportRepo,
		notificationRepo: notificationRepo,
		pushQueue:        pushQueue,
		refundOnCancel:   refundOnCancel,
		logger:           logger,
	}
}

// SubmitBooking runs the purchase as one database transaction: ticket
// insert, tier reservation, wallet debit with ledger entry, notification
// record. Push dispatch happens after commit and is best-effort.
//
// On an insufficient-balance rejection the returned BookingResult still
// carries the current wallet balance so the caller can surface it.
func (b *booking) SubmitBooking(ctx context.Context, cmd SubmitBookingCommand) (BookingResult, error) {
	user, err := b.userRepo.FindByID(cmd.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return BookingResult{}, NewServiceError(constants.ErrCodeUserNotFound, err)
		}
		return BookingResult{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	if user.Wallet < cmd.WalletAmount {
		b.logger.Info("Booking rejected, wallet balance too low",
			zap.String("userID", cmd.UserID),
			zap.Int64("wallet", user.Wallet),
			zap.Int64("requested", cmd.WalletAmount))

		return BookingResult{Wallet: user.Wallet},
			NewServiceError(constants.ErrCodeInsufficientWallet, repository.ErrInsufficientWallet)
	}

	tier, err := b.tierRepo.FindByEventAndID(cmd.EventID, cmd.TicketTypeID)
	if err != nil {
		if errors.Is(err, repository.ErrTicketTypeNotFound) {
			return BookingResult{}, NewServiceError(constants.ErrCodeTicketTypeNotFound, err)
		}
		return BookingResult{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	ticket := model.Ticket{
		UserID:           cmd.UserID,
		EventID:          cmd.EventID,
		TypeID:           cmd.TicketTypeID,
		Price:            cmd.UnitPrice,
		Subtotal:         cmd.Subtotal,
		CouponAmount:     cmd.CouponAmount,
		TotalTicketCount: cmd.TicketCount,
		TotalAmount:      cmd.TotalAmount,
		Tax:              cmd.Tax,
		WalletAmountUsed: cmd.WalletAmount,
		PaymentMethodID:  cmd.PaymentMethodID,
		TransactionID:    cmd.TransactionID,
		IdempotencyKey:   cmd.IdempotencyKey,
		TicketType:       model.TicketStateBooked,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	err = b.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := b.ticketRepo.Create(ctx, &ticket); err != nil {
			if errors.Is(err, repository.ErrTicketDuplicate) {
				return err
			}

			b.logger.Error("Failed to create ticket", zap.Error(err))
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		if err := b.tierRepo.ReserveTickets(ctx, cmd.EventID, cmd.TicketTypeID, cmd.TicketCount); err != nil {
			if errors.Is(err, repository.ErrTicketsSoldOut) {
				b.logger.Info("Booking rejected, tier sold out",
					zap.Int64("eventID", cmd.EventID),
					zap.Int64("typeID", cmd.TicketTypeID),
					zap.Int("requested", cmd.TicketCount),
					zap.Int("booked", tier.TicketBooked),
					zap.Int("limit", tier.TicketLimit))
				return NewServiceError(constants.ErrCodeTicketsSoldOut, err)
			}

			b.logger.Error("Failed to reserve tickets", zap.Error(err))
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		if cmd.WalletAmount != 0 {
			if err := b.userRepo.DebitWallet(ctx, cmd.UserID, cmd.WalletAmount); err != nil {
				if errors.Is(err, repository.ErrInsufficientWallet) {
					// Balance moved between the pre-check and the debit.
					return NewServiceError(constants.ErrCodeInsufficientWallet, err)
				}

				b.logger.Error("Failed to debit wallet", zap.Error(err))
				return NewServiceError(constants.ErrCodeOperationFailed, err)
			}

			report := model.WalletReport{
				UserID:    cmd.UserID,
				Message:   fmt.Sprintf("Amount debited for booking order #%d", ticket.ID),
				Status:    model.WalletReportStatusDebit,
				Amount:    cmd.WalletAmount,
				CreatedAt: time.Now(),
			}

			if err := b.walletReportRepo.Create(ctx, &report); err != nil {
				b.logger.Error("Failed to create wallet report", zap.Error(err))
				return NewServiceError(constants.ErrCodeOperationFailed, err)
			}
		}

		notification := model.Notification{
			UserID:      cmd.UserID,
			Title:       "Ticket Booked",
			Description: fmt.Sprintf("Your booking #%d has been confirmed", ticket.ID),
			CreatedAt:   time.Now(),
		}

		if err := b.notificationRepo.Create(ctx, &notification); err != nil {
			b.logger.Error("Failed to create notification record", zap.Error(err))
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		return nil
	})

	if err == nil {
		wallet := user.Wallet - cmd.WalletAmount

		b.logger.Info("Booking created successfully",
			zap.Int64("orderID", ticket.ID),
			zap.String("userID", cmd.UserID),
			zap.Int64("eventID", cmd.EventID),
			zap.Int("tickets", cmd.TicketCount),
			zap.Int64("walletUsed", cmd.WalletAmount))

		b.enqueueBookingPush(ctx, user, ticket.ID, "Ticket Booked",
			fmt.Sprintf("Your booking #%d has been confirmed", ticket.ID))

		return BookingResult{OrderID: ticket.ID, Wallet: wallet}, nil
	}

	if errors.Is(err, repository.ErrTicketDuplicate) {
		return b.replayBooking(cmd)
	}

	if errors.Is(err, repository.ErrInsufficientWallet) {
		// The balance moved between the pre-check and the debit; the whole
		// transaction rolled back, so report the fresh balance.
		if fresh, ferr := b.userRepo.FindByID(cmd.UserID); ferr == nil {
			return BookingResult{Wallet: fresh.Wallet}, err
		}
	}

	return BookingResult{}, err
}

// replayBooking resolves a duplicate idempotency key to the original order.
// Nothing was committed for the duplicate request, so only a read is needed.
func (b *booking) replayBooking(cmd SubmitBookingCommand) (BookingResult, error) {
	existing, err := b.ticketRepo.GetByIdempotencyKey(cmd.IdempotencyKey)
	if err != nil {
		b.logger.Error("Failed to load ticket by idempotency key",
			zap.String("idempotencyKey", cmd.IdempotencyKey),
			zap.Error(err))
		return BookingResult{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	user, err := b.userRepo.FindByID(cmd.UserID)
	if err != nil {
		return BookingResult{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	b.logger.Info("Idempotent booking replay, returning original order",
		zap.String("idempotencyKey", cmd.IdempotencyKey),
		zap.Int64("orderID", existing.ID))

	return BookingResult{OrderID: existing.ID, Wallet: user.Wallet, Duplicate: true}, nil
}

// CancelBooking flips the ticket to Cancelled, releases the reserved
// inventory, and optionally refunds the wallet amount used. The refund is a
// config decision, not an accident of the code path.
func (b *booking) CancelBooking(ctx context.Context, cmd CancelBookingCommand) (CancelResult, error) {
	ticket, err := b.ticketRepo.GetByID(cmd.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return CancelResult{}, NewServiceError(constants.ErrCodeBookingNotFound, err)
		}
		return CancelResult{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	if ticket.UserID != cmd.UserID {
		return CancelResult{}, NewServiceError(constants.ErrCodeBookingNotFound, repository.ErrTicketNotFound)
	}

	if ticket.TicketType != model.TicketStateBooked {
		return CancelResult{}, NewServiceError(constants.ErrCodeBookingNotCancellable, ErrBookingNotCancellable)
	}

	refunded := false

	err = b.txManager.WithTx(ctx, func(ctx context.Context) error {
		err := b.ticketRepo.UpdateState(ctx, ticket.ID, model.TicketStateBooked, model.TicketStateCancelled)
		if err != nil {
			if errors.Is(err, repository.ErrNoRowsAffected) {
				// Lost the race against another cancel of the same order.
				return NewServiceError(constants.ErrCodeBookingNotCancellable, ErrBookingNotCancellable)
			}

			b.logger.Error("Failed to cancel ticket", zap.Error(err))
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		err = b.tierRepo.ReleaseTickets(ctx, ticket.EventID, ticket.TypeID, ticket.TotalTicketCount)
		if err != nil {
			b.logger.Error("Failed to release reserved tickets", zap.Error(err))
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		if b.refundOnCancel && ticket.WalletAmountUsed > 0 {
			if err := b.userRepo.CreditWallet(ctx, ticket.UserID, ticket.WalletAmountUsed); err != nil {
				b.logger.Error("Failed to refund wallet", zap.Error(err))
				return NewServiceError(constants.ErrCodeOperationFailed, err)
			}

			report := model.WalletReport{
				UserID:    ticket.UserID,
				Message:   fmt.Sprintf("Amount refunded for cancelled order #%d", ticket.ID),
				Status:    model.WalletReportStatusCredit,
				Amount:    ticket.WalletAmountUsed,
				CreatedAt: time.Now(),
			}

			if err := b.walletReportRepo.Create(ctx, &report); err != nil {
				b.logger.Error("Failed to create refund wallet report", zap.Error(err))
				return NewServiceError(constants.ErrCodeOperationFailed, err)
			}

			refunded = true
		}

		notification := model.Notification{
			UserID:      ticket.UserID,
			Title:       "Ticket Cancelled",
			Description: fmt.Sprintf("Your booking #%d has been cancelled", ticket.ID),
			CreatedAt:   time.Now(),
		}

		if err := b.notificationRepo.Create(ctx, &notification); err != nil {
			b.logger.Error("Failed to create cancel notification record", zap.Error(err))
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		return nil
	})

	if err != nil {
		return CancelResult{}, err
	}

	user, err := b.userRepo.FindByID(ticket.UserID)
	if err != nil {
		b.logger.Warn("Cancelled booking but failed to reload wallet balance",
			zap.Int64("orderID", ticket.ID),
			zap.Error(err))
	}

	b.logger.Info("Booking cancelled",
		zap.Int64("orderID", ticket.ID),
		zap.String("userID", ticket.UserID),
		zap.Bool("refunded", refunded))

	b.enqueueBookingPush(ctx, user, ticket.ID, "Ticket Cancelled",
		fmt.Sprintf("Your booking #%d has been cancelled", ticket.ID))

	return CancelResult{OrderID: ticket.ID, Wallet: user.Wallet, Refunded: refunded}, nil
}

func (b *booking) enqueueBookingPush(ctx context.Context, user model.User, orderID int64, title, body string) {
	job := PushJobCommand{
		UserID:  user.ID,
		Topic:   user.DeviceTopic,
		Title:   title,
		Body:    body,
		Data:    map[string]string{"order_id": fmt.Sprintf("%d", orderID)},
		OrderID: orderID,
	}

	if err := b.pushQueue.EnqueuePush(ctx, job); err != nil {
		b.logger.Warn("Failed to enqueue push notification",
			zap.Int64("orderID", orderID),
			zap.String("userID", user.ID),
			zap.Error(err))
	}
}
