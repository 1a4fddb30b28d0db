package readstore

import (
	"context"
	"time"

	"booking-api/internal/infra"
	sqlc "booking-api/internal/infra/sqlc/generated"
	"booking-api/internal/pkg/pgconv"
	"booking-api/internal/usecase/queries"
)

type BookingReadQueries interface {
	ListBookings(ctx context.Context, db sqlc.DBTX) ([]sqlc.Bookings, error)
	ListUpcomingBookingsByPhoneSuffix(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUpcomingBookingsByPhoneSuffixParams) ([]sqlc.ListUpcomingBookingsByPhoneSuffixRow, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) ListAll(ctx context.Context) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookings(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}

	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		result[i] = rowToBookingView(row)
	}
	return result, nil
}

// ListUpcomingByPhoneSuffix returns bookings whose phone ends with suffix and
// whose start is at or after now, earliest first.
func (r *BookingReadStore) ListUpcomingByPhoneSuffix(ctx context.Context, suffix string, now time.Time) ([]*queries.PublicBookingView, error) {
	params := sqlc.ListUpcomingBookingsByPhoneSuffixParams{
		Suffix: suffix,
		Now:    pgconv.TimeToPgtype(now),
	}

	rows, err := r.queries.ListUpcomingBookingsByPhoneSuffix(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list upcoming bookings by phone suffix", err)
	}

	result := make([]*queries.PublicBookingView, len(rows))
	for i, row := range rows {
		result[i] = &queries.PublicBookingView{
			ID:      row.ID,
			Name:    row.Name,
			Service: row.Service,
			StartAt: pgconv.TimeFromPgtype(row.StartAt),
			Notes:   row.Notes,
		}
	}
	return result, nil
}

func rowToBookingView(row sqlc.Bookings) *queries.BookingView {
	return &queries.BookingView{
		ID:        row.ID,
		Name:      row.Name,
		Phone:     pgconv.StringPtrFromPgtype(row.Phone),
		Email:     pgconv.StringPtrFromPgtype(row.Email),
		Service:   row.Service,
		Notes:     row.Notes,
		StartAt:   pgconv.TimeFromPgtype(row.StartAt),
		Status:    pgconv.StringPtrFromPgtype(row.Status),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
