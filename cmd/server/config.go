package main

import (
	"log/slog"
	"time"
)

type serverConfig struct {
	Port            uint16        `env:"PORT"`
	LogLevel        slog.Level    `env:"LOG_LEVEL"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}
