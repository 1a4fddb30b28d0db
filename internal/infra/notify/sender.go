package notify

import (
	"log/slog"
	"time"

	"booking-api/internal/pkg/config"
	"booking-api/internal/pkg/errs"
	"booking-api/internal/usecase/commands"
)

// NewSender picks Twilio when credentials are configured and the log sender otherwise.
func NewSender(cfg config.SMSConfig, logger *slog.Logger) (commands.ConfirmationSender, error) {
	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, errs.Wrap(err, "invalid SMS_TIMEZONE")
	}
	tmpl := Template{Brand: cfg.Brand, Location: loc}

	if !cfg.Enabled() {
		logger.Warn("twilio credentials not configured, using log-only sms sender")
		return NewLogSender(tmpl, logger), nil
	}
	return NewTwilioSender(cfg.AccountSID, cfg.AuthToken, cfg.FromNumber, tmpl, cfg.Timeout), nil
}
