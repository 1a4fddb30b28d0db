package bootstrap

import (
	"log/slog"

	"booking-api/internal/infra/notify"
	"booking-api/internal/pkg/config"
	"booking-api/internal/usecase/commands"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		NewConfirmationSender,
	),
)

func NewConfirmationSender(cfg config.Config, logger *slog.Logger) (commands.ConfirmationSender, error) {
	return notify.NewSender(cfg.SMS, logger)
}
