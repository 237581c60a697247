package config

import (
	"fmt"
	"time"

	"github.com/campusly/course-services/walletgateway/pkg/catalog"
	"github.com/campusly/course-services/walletgateway/pkg/mq"
	"github.com/campusly/course-services/walletgateway/pkg/mysql"
	"github.com/spf13/viper"
)

type Config struct {
	API      API            `mapstructure:"api"`
	Database mysql.Config   `mapstructure:"database"`
	RabbitMQ mq.Config      `mapstructure:"rabbitmq"`
	Catalog  catalog.Config `mapstructure:"catalog"`
	Metrics  Metrics        `mapstructure:"metrics"`
}

type API struct {
	Port string `mapstructure:"port"`
}

type Metrics struct {
	CollectInterval time.Duration `mapstructure:"collect_interval"`
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
