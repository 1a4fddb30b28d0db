package notify

import (
	"context"
	"log/slog"

	"booking-api/internal/usecase/commands"
)

// LogSender writes the rendered message to the log instead of delivering it.
type LogSender struct {
	template Template
	logger   *slog.Logger
}

func NewLogSender(tmpl Template, logger *slog.Logger) *LogSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSender{template: tmpl, logger: logger}
}

func (s *LogSender) SendConfirmation(ctx context.Context, c commands.Confirmation) error {
	s.logger.InfoContext(ctx, "sms delivery disabled, message not sent",
		"to", c.Phone,
		"body", s.template.Render(c))
	return nil
}
