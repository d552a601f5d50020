package repository

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/roversapp/event-services/bookinggateway/internal/model"
	"gorm.io/gorm"
)

var ErrTicketNotFound = errors.New("TICKET_NOT_FOUND")
var ErrTicketDuplicate = errors.New("TICKET_DUPLICATE")
var ErrNoRowsAffected = errors.New("NO_ROWS_AFFECTED")

type TicketRepository interface {
	Create(ctx context.Context, ticket *model.Ticket) error
	GetByID(id int64) (*model.Ticket, error)
	GetByIdempotencyKey(idempotencyKey string) (*model.Ticket, error)
	UpdateState(ctx context.Context, id int64, from, to model.TicketState) error
	GetByUserID(userID string, limit, offset int) ([]model.Ticket, error)
}

type ticket struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) TicketRepository {
	return &ticket{db: db}
}

func (t *ticket) Create(ctx context.Context, ticket *model.Ticket) error {
	db := GetTx(ctx, t.db)
	err := db.Create(ticket).Error
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrTicketDuplicate
	}

	return err
}

func (t *ticket) GetByID(id int64) (*model.Ticket, error) {
	var tk model.Ticket

	err := t.db.Where("id = ?", id).First(&tk).Error
	if err == nil {
		return &tk, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTicketNotFound
	}

	return nil, err
}

func (t *ticket) GetByIdempotencyKey(idempotencyKey string) (*model.Ticket, error) {
	var tk model.Ticket

	err := t.db.Where("idempotency_key = ?", idempotencyKey).First(&tk).Error
	if err == nil {
		return &tk, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTicketNotFound
	}

	return nil, err
}

// UpdateState moves a ticket between lifecycle states. The from-state guard
// makes the transition a compare-and-swap, so a concurrent cancel of the
// same ticket affects zero rows instead of double-cancelling.
func (t *ticket) UpdateState(ctx context.Context, id int64, from, to model.TicketState) error {
	db := GetTx(ctx, t.db)

	result := db.Model(&model.Ticket{}).
		Where("id = ? AND ticket_type = ?", id, from).
		Update("ticket_type", to)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNoRowsAffected
	}

	return nil
}

func (t *ticket) GetByUserID(userID string, limit, offset int) ([]model.Ticket, error) {
	var tickets []model.Ticket

	err := t.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&tickets).Error
	if err != nil {
		return nil, err
	}

	return tickets, nil
}
