package repository

import (
	"context"
	"errors"

	"github.com/roversapp/event-services/bookinggateway/internal/model"
	"gorm.io/gorm"
)

var ErrTicketTypeNotFound = errors.New("TICKET_TYPE_NOT_FOUND")
var ErrTicketsSoldOut = errors.New("TICKETS_SOLD_OUT")

type TicketTypePriceRepository interface {
	FindByEventAndID(eventID, typeID int64) (model.TicketTypePrice, error)
	ReserveTickets(ctx context.Context, eventID, typeID int64, count int) error
	ReleaseTickets(ctx context.Context, eventID, typeID int64, count int) error
}

type ticketTypePrice struct {
	db *gorm.DB
}

func NewTicketTypePriceRepository(db *gorm.DB) TicketTypePriceRepository {
	return &ticketTypePrice{db: db}
}

func (r *ticketTypePrice) FindByEventAndID(eventID, typeID int64) (model.TicketTypePrice, error) {
	var tier model.TicketTypePrice
	err := r.db.Where("id = ? AND event_id = ?", typeID, eventID).First(&tier).Error
	if err == nil {
		return tier, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.TicketTypePrice{}, ErrTicketTypeNotFound
	}

	return model.TicketTypePrice{}, err
}

// ReserveTickets bumps ticket_booked atomically. The guard in the WHERE
// clause is what upholds ticket_booked <= ticket_limit when two bookings
// race for the last seats; zero rows affected means the tier sold out (or
// the tier does not exist, which the service rules out by loading it first).
func (r *ticketTypePrice) ReserveTickets(ctx context.Context, eventID, typeID int64, count int) error {
	db := GetTx(ctx, r.db)

	result := db.Model(&model.TicketTypePrice{}).
		Where("id = ? AND event_id = ? AND ticket_booked + ? <= ticket_limit", typeID, eventID, count).
		Update("ticket_booked", gorm.Expr("ticket_booked + ?", count))

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrTicketsSoldOut
	}

	return nil
}

// ReleaseTickets reverses a reservation on cancellation. The guard stops the
// counter from going below zero if a release is replayed.
func (r *ticketTypePrice) ReleaseTickets(ctx context.Context, eventID, typeID int64, count int) error {
	db := GetTx(ctx, r.db)

	result := db.Model(&model.TicketTypePrice{}).
		Where("id = ? AND event_id = ? AND ticket_booked >= ?", typeID, eventID, count).
		Update("ticket_booked", gorm.Expr("ticket_booked - ?", count))

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrTicketTypeNotFound
	}

	return nil
}
