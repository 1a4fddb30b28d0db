//go:build unit

package notify

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"booking-api/internal/pkg/config"
	"booking-api/internal/pkg/errs"
	"booking-api/internal/pkg/ptr"
	"booking-api/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

type fakeMessageAPI struct {
	got   *openapi.CreateMessageParams
	err   error
	delay time.Duration
}

func (f *fakeMessageAPI) CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error) {
	f.got = params
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &openapi.ApiV2010Message{Sid: ptr.Of("SM123")}, nil
}

func testConfirmation() commands.Confirmation {
	return commands.Confirmation{
		Phone:   "+15305551234",
		Name:    "Juan",
		Service: "Regular Cut ($25)",
		StartAt: time.Date(2030, 5, 1, 22, 30, 0, 0, time.UTC),
	}
}

func TestTemplateRender(t *testing.T) {
	la, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	got := Template{Brand: "ericfadezz", Location: la}.Render(testConfirmation())

	assert.Equal(t,
		"ericfadezz: Hey Juan, your Regular Cut ($25) is booked for 5/1/2030, 3:30:00 PM. Reply STOP to opt out, HELP for help.",
		got)
}

func TestTwilioSender(t *testing.T) {
	tmpl := Template{Brand: "ericfadezz", Location: time.UTC}

	t.Run("success", func(t *testing.T) {
		api := &fakeMessageAPI{}
		sender := newTwilioSender(api, "+15550000000", tmpl, time.Second)

		err := sender.SendConfirmation(context.Background(), testConfirmation())

		require.NoError(t, err)
		require.NotNil(t, api.got)
		assert.Equal(t, "+15305551234", *api.got.To)
		assert.Equal(t, "+15550000000", *api.got.From)
		assert.Contains(t, *api.got.Body, "Hey Juan")
	})

	t.Run("provider error", func(t *testing.T) {
		api := &fakeMessageAPI{err: assert.AnError}
		sender := newTwilioSender(api, "+15550000000", tmpl, time.Second)

		err := sender.SendConfirmation(context.Background(), testConfirmation())

		assert.True(t, errs.Is(err, ErrSendFailed))
	})

	t.Run("timeout", func(t *testing.T) {
		api := &fakeMessageAPI{delay: 200 * time.Millisecond}
		sender := newTwilioSender(api, "+15550000000", tmpl, 10*time.Millisecond)

		err := sender.SendConfirmation(context.Background(), testConfirmation())

		assert.True(t, errs.Is(err, ErrSendTimeout))
	})
}

func TestLogSender(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	sender := NewLogSender(Template{Brand: "ericfadezz", Location: time.UTC}, logger)

	err := sender.SendConfirmation(context.Background(), testConfirmation())

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "+15305551234")
	assert.Contains(t, buf.String(), "Hey Juan")
}

func TestNewSender(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	t.Run("no credentials falls back to log sender", func(t *testing.T) {
		sender, err := NewSender(config.SMSConfig{Brand: "b", TimeZone: "UTC"}, logger)
		require.NoError(t, err)
		assert.IsType(t, &LogSender{}, sender)
	})

	t.Run("credentials select twilio", func(t *testing.T) {
		sender, err := NewSender(config.SMSConfig{
			AccountSID: "AC123",
			AuthToken:  "secret",
			FromNumber: "+15550000000",
			Brand:      "b",
			TimeZone:   "UTC",
			Timeout:    time.Second,
		}, logger)
		require.NoError(t, err)
		assert.IsType(t, &TwilioSender{}, sender)
	})

	t.Run("bad time zone", func(t *testing.T) {
		_, err := NewSender(config.SMSConfig{TimeZone: "Mars/Olympus"}, logger)
		assert.Error(t, err)
	})
}
