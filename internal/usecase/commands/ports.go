package commands

import (
	"context"
	"time"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock

// Confirmation is the write side's view of a freshly created booking, kept
// independent of the notification transport.
type Confirmation struct {
	Phone   string
	Name    string
	Service string
	StartAt time.Time
}

type ConfirmationSender interface {
	SendConfirmation(ctx context.Context, c Confirmation) error
}

type NotificationOutcome string

const (
	NotificationSkipped NotificationOutcome = "skipped"
	NotificationSent    NotificationOutcome = "sent"
	NotificationFailed  NotificationOutcome = "failed"
)
