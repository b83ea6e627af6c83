package app

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Addr            string        `envconfig:"RELAYLOG_ADDR" default:":8080"`
	ShutdownTimeout time.Duration `envconfig:"RELAYLOG_SHUTDOWN_TIMEOUT" default:"10s"`
	LogLevel        string        `envconfig:"RELAYLOG_LOG_LEVEL" default:"info"`
}

func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
