package queries

import (
	"context"
	"time"

	"booking-api/internal/domain/booking"
	"booking-api/internal/pkg/clock"
	"booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking_mock.go -package=queriesmock

var (
	ErrBookingListFailed   = errs.New("failed to list bookings")
	ErrBookingLookupFailed = errs.New("failed to look up bookings")
)

// BookingView is the full record shown to the operator.
type BookingView struct {
	ID        uuid.UUID
	Name      string
	Phone     *string
	Email     *string
	Service   string
	Notes     string
	StartAt   time.Time
	Status    *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PublicBookingView omits contact details; it is what the self-service lookup returns.
type PublicBookingView struct {
	ID      uuid.UUID
	Name    string
	Service string
	StartAt time.Time
	Notes   string
}

type BookingReadStore interface {
	ListAll(ctx context.Context) ([]*BookingView, error)
	ListUpcomingByPhoneSuffix(ctx context.Context, suffix string, now time.Time) ([]*PublicBookingView, error)
}

type BookingQueries interface {
	List(ctx context.Context) ([]*BookingView, error)
	PublicLookup(ctx context.Context, lastName, last4 string) ([]*PublicBookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
	clock clock.Clock
}

func NewBookingQueries(store BookingReadStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{
		store: store,
		clock: clk,
	}
}

func (q *bookingQueriesImpl) List(ctx context.Context) ([]*BookingView, error) {
	views, err := q.store.ListAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingListFailed)
	}
	return views, nil
}

func (q *bookingQueriesImpl) PublicLookup(ctx context.Context, lastName, last4 string) ([]*PublicBookingView, error) {
	key, err := booking.NewLookupKey(lastName, last4)
	if err != nil {
		return nil, err
	}

	candidates, err := q.store.ListUpcomingByPhoneSuffix(ctx, key.Last4(), q.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrBookingLookupFailed)
	}

	matched := make([]*PublicBookingView, 0, len(candidates))
	for _, c := range candidates {
		if key.MatchesName(c.Name) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}
