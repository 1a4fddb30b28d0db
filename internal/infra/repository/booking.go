package repository

import (
	"context"

	"booking-api/internal/domain/booking"
	"booking-api/internal/infra"
	"booking-api/internal/infra/repository/converter"
	sqlc "booking-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (uuid.UUID, error)
	UpdateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{
		queries: queries,
	}
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error) {
	id, err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

// Update overwrites every field of an existing booking.
func (r *BookingRepository) Update(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, b *booking.Booking) error {
	affected, err := r.queries.UpdateBooking(ctx, tx, converter.BookingToUpdateParams(id, b))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
