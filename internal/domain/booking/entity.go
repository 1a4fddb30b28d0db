package booking

import (
	"errors"
	"strings"
	"time"

	"booking-api/internal/pkg/errs"
)

var (
	ErrMissingName    = errs.Mark(errors.New("missing name"), errs.ErrValidation)
	ErrMissingService = errs.Mark(errors.New("missing service"), errs.ErrValidation)
	ErrMissingStartAt = errs.Mark(errors.New("missing startAt"), errs.ErrValidation)
	ErrInvalidStartAt = errs.Mark(errors.New("invalid startAt"), errs.ErrValidation)
)

// Accepted startAt layouts. Zone-less values are read as UTC.
var startAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// Draft carries the caller-supplied fields of a create or a full overwrite.
type Draft struct {
	Name    string
	Phone   *string
	Email   *string
	Service string
	Notes   *string
	StartAt string
	Status  *string
}

// Booking is the validated write model. Identifier and timestamps are
// assigned by the store and only appear on the read side.
type Booking struct {
	name    string
	phone   *string
	email   *string
	service string
	notes   string
	startAt time.Time
	status  *string
}

// NewBooking validates a draft and normalizes its phone number.
func NewBooking(d Draft) (*Booking, error) {
	if strings.TrimSpace(d.Name) == "" {
		return nil, ErrMissingName
	}
	if strings.TrimSpace(d.Service) == "" {
		return nil, ErrMissingService
	}
	startAt, err := ParseStartAt(d.StartAt)
	if err != nil {
		return nil, err
	}

	notes := ""
	if d.Notes != nil {
		notes = *d.Notes
	}

	return &Booking{
		name:    d.Name,
		phone:   NormalizePhone(d.Phone),
		email:   d.Email,
		service: d.Service,
		notes:   notes,
		startAt: startAt,
		status:  d.Status,
	}, nil
}

func ParseStartAt(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrMissingStartAt
	}
	for _, layout := range startAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidStartAt
}

func (b *Booking) Name() string       { return b.name }
func (b *Booking) Phone() *string     { return b.phone }
func (b *Booking) Email() *string     { return b.email }
func (b *Booking) Service() string    { return b.service }
func (b *Booking) Notes() string      { return b.notes }
func (b *Booking) StartAt() time.Time { return b.startAt }
func (b *Booking) Status() *string    { return b.status }

func (b *Booking) HasPhone() bool {
	return b.phone != nil
}
