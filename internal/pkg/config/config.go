package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Admin  AdminConfig
	Cookie CookieConfig
	SMS    SMSConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"5001"`
	// CIDRs or IPs whose X-Forwarded-For is believed. Empty trusts none.
	TrustedProxies []string `envconfig:"TRUSTED_PROXIES"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"168h"`
}

// AdminConfig holds the single operator credential. PasswordHash (bcrypt)
// takes precedence over Password when both are set.
type AdminConfig struct {
	Password           string `envconfig:"ADMIN_PASSWORD"`
	PasswordHash       string `envconfig:"ADMIN_PASSWORD_HASH"`
	LoginRatePerMinute int    `envconfig:"LOGIN_RATE_PER_MINUTE" default:"10"`
	LoginRateBurst     int    `envconfig:"LOGIN_RATE_BURST" default:"5"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// SMSConfig configures the booking confirmation sender. Leaving the Twilio
// credentials empty switches to the log-only sender.
type SMSConfig struct {
	AccountSID string        `envconfig:"TWILIO_ACCOUNT_SID"`
	AuthToken  string        `envconfig:"TWILIO_AUTH_TOKEN"`
	FromNumber string        `envconfig:"TWILIO_PHONE_NUMBER"`
	Brand      string        `envconfig:"SMS_BRAND" default:"ericfadezz"`
	TimeZone   string        `envconfig:"SMS_TIMEZONE" default:"America/Los_Angeles"`
	Timeout    time.Duration `envconfig:"SMS_TIMEOUT" default:"10s"`
}

func (c SMSConfig) Enabled() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.FromNumber != ""
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Admin.Password == "" && cfg.Admin.PasswordHash == "" {
		return Config{}, fmt.Errorf("one of ADMIN_PASSWORD or ADMIN_PASSWORD_HASH must be set")
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "168h",
		},
		Admin: AdminConfig{
			Password:           "letmein",
			LoginRatePerMinute: 600,
			LoginRateBurst:     100,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		SMS: SMSConfig{
			Brand:    "ericfadezz",
			TimeZone: "UTC",
			Timeout:  time.Second,
		},
	}
}
