package database

import (
	"github.com/roversapp/event-services/bookinggateway/internal/config"
	"github.com/roversapp/event-services/bookinggateway/pkg/mysql"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewConnection(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	return mysql.NewConnection(cfg.Database, logger)
}
