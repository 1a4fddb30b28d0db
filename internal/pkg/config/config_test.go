//go:build unit

package config_test

import (
	"testing"
	"time"

	"booking-api/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "bookings")
	t.Setenv("JWT_SECRET", "s3cret")
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setRequired(t)
		t.Setenv("ADMIN_PASSWORD", "letmein")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "5001", cfg.Server.Port)
		assert.Empty(t, cfg.Server.TrustedProxies)
		assert.Equal(t, "168h", cfg.JWT.Duration)
		assert.Equal(t, 10*time.Second, cfg.SMS.Timeout)
		assert.False(t, cfg.SMS.Enabled())
		assert.Equal(t, "postgres://app:pw@localhost:5432/bookings?sslmode=disable&timezone=UTC", cfg.DB.BuildDSN())
	})

	t.Run("admin credential required", func(t *testing.T) {
		setRequired(t)
		t.Setenv("ADMIN_PASSWORD", "")
		t.Setenv("ADMIN_PASSWORD_HASH", "")

		_, err := config.LoadConfig()
		assert.Error(t, err)
	})

	t.Run("trusted proxies list", func(t *testing.T) {
		setRequired(t)
		t.Setenv("ADMIN_PASSWORD", "letmein")
		t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8,192.168.1.2")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.2"}, cfg.Server.TrustedProxies)
	})

	t.Run("twilio enabled only with all three values", func(t *testing.T) {
		sms := config.SMSConfig{AccountSID: "AC1", AuthToken: "tok"}
		assert.False(t, sms.Enabled())
		sms.FromNumber = "+15550001111"
		assert.True(t, sms.Enabled())
	})
}
