package bootstrap

import (
	"log/slog"

	"booking-api/internal/handler/middleware"
	"booking-api/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		logConfig,
		middleware.NewLogger,
		NewSlogLogger,
	),
)

func NewSlogLogger(logger *middleware.Logger) *slog.Logger {
	return logger.GetSlogLogger()
}

func logConfig(cfg config.Config) config.LogConfig {
	return cfg.Log
}
