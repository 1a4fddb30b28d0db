package notify

import (
	"context"
	"log/slog"
	"time"

	"booking-api/internal/pkg/errs"
	"booking-api/internal/pkg/ptr"
	"booking-api/internal/usecase/commands"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

var (
	ErrSendFailed  = errs.New("sms send failed")
	ErrSendTimeout = errs.New("sms send timed out")
)

// messageAPI is the slice of the Twilio REST client the sender needs.
type messageAPI interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

type TwilioSender struct {
	api      messageAPI
	from     string
	template Template
	timeout  time.Duration
}

func NewTwilioSender(accountSID, authToken, from string, tmpl Template, timeout time.Duration) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return newTwilioSender(client.Api, from, tmpl, timeout)
}

func newTwilioSender(api messageAPI, from string, tmpl Template, timeout time.Duration) *TwilioSender {
	return &TwilioSender{
		api:      api,
		from:     from,
		template: tmpl,
		timeout:  timeout,
	}
}

type sendResult struct {
	sid string
	err error
}

// SendConfirmation gives up after the configured timeout. The Twilio client
// has no context support, so an abandoned request finishes in the background.
func (s *TwilioSender) SendConfirmation(ctx context.Context, c commands.Confirmation) error {
	params := &openapi.CreateMessageParams{}
	params.SetTo(c.Phone)
	params.SetFrom(s.from)
	params.SetBody(s.template.Render(c))

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	done := make(chan sendResult, 1)
	go func() {
		msg, err := s.api.CreateMessage(params)
		if err != nil {
			done <- sendResult{err: err}
			return
		}
		done <- sendResult{sid: ptr.Deref(msg.Sid, "")}
	}()

	select {
	case <-ctx.Done():
		return errs.Mark(errs.Wrap(ctx.Err(), "twilio create message"), ErrSendTimeout)
	case res := <-done:
		if res.err != nil {
			return errs.Mark(errs.Wrap(res.err, "twilio create message"), ErrSendFailed)
		}
		slog.InfoContext(ctx, "sms sent", "sid", res.sid)
		return nil
	}
}
