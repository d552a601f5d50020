package repository

import (
	"context"
	"errors"

	"github.com/roversapp/event-services/bookinggateway/internal/model"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("USER_NOT_FOUND")
var ErrInsufficientWallet = errors.New("INSUFFICIENT_WALLET")

type UserRepository interface {
	FindByID(userID string) (model.User, error)
	DebitWallet(ctx context.Context, userID string, amount int64) error
	CreditWallet(ctx context.Context, userID string, amount int64) error
}

type user struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &user{db: db}
}

func (r *user) FindByID(userID string) (model.User, error) {
	var u model.User
	err := r.db.Where("id = ?", userID).First(&u).Error
	if err == nil {
		return u, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.User{}, ErrUserNotFound
	}

	return model.User{}, err
}

// DebitWallet is a conditional decrement. The WHERE guard keeps the balance
// from ever going negative under concurrent debits; zero rows affected means
// the balance moved under us.
func (r *user) DebitWallet(ctx context.Context, userID string, amount int64) error {
	db := GetTx(ctx, r.db)

	result := db.Model(&model.User{}).
		Where("id = ? AND wallet >= ?", userID, amount).
		Update("wallet", gorm.Expr("wallet - ?", amount))

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrInsufficientWallet
	}

	return nil
}

func (r *user) CreditWallet(ctx context.Context, userID string, amount int64) error {
	db := GetTx(ctx, r.db)

	result := db.Model(&model.User{}).
		Where("id = ?", userID).
		Update("wallet", gorm.Expr("wallet + ?", amount))

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}
