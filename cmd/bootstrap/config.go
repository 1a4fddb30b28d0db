package bootstrap

import (
	"errors"
	"io/fs"
	"log/slog"

	"booking-api/internal/pkg/clock"
	"booking-api/internal/pkg/config"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

const dotEnvFile = ".env"

var ConfigModule = fx.Module("config",
	fx.Provide(
		loadConfig,
		clock.NewRealClock,
	),
)

// loadConfig reads an optional .env file before processing the environment.
// Variables already set in the process win over the file.
func loadConfig() (config.Config, error) {
	if err := godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("ignoring unreadable .env file", "error", err.Error())
	}
	return config.LoadConfig()
}
