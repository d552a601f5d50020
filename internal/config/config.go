package config

import (
	"fmt"

	"github.com/roversapp/event-services/bookinggateway/pkg/mq"
	"github.com/roversapp/event-services/bookinggateway/pkg/mysql"
	"github.com/roversapp/event-services/bookinggateway/pkg/pushprovider"
	"github.com/spf13/viper"
)

type Config struct {
	API      API                 `mapstructure:"api"`
	Database mysql.Config        `mapstructure:"database"`
	MQ       mq.Config           `mapstructure:"mq"`
	Push     pushprovider.Config `mapstructure:"push"`
	Booking  Booking             `mapstructure:"booking"`
}

type API struct {
	Port string `mapstructure:"port"`
}

type Booking struct {
	// RefundOnCancel controls whether cancelling a booking credits the
	// wallet amount back. The legacy system reversed inventory but kept the
	// money; keep this switchable until product settles the question.
	RefundOnCancel bool `mapstructure:"refund_on_cancel"`
}

func Load() (cfg *Config, err error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	err = viper.ReadInConfig()
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
