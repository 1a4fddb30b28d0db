package components

import (
	"booking-api/internal/pkg/config"
	"booking-api/internal/usecase"
	"booking-api/internal/usecase/commands"
	"booking-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		adminConfig,
		commands.NewBookingCommands,
		commands.NewAuthCommands,
		queries.NewBookingQueries,
		usecase.NewTokenValidator,
	),
)

func adminConfig(cfg config.Config) config.AdminConfig {
	return cfg.Admin
}
