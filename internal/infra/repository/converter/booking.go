package converter

import (
	"booking-api/internal/domain/booking"
	sqlc "booking-api/internal/infra/sqlc/generated"
	"booking-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		Name:    b.Name(),
		Phone:   pgconv.StringPtrToPgtype(b.Phone()),
		Email:   pgconv.StringPtrToPgtype(b.Email()),
		Service: b.Service(),
		Notes:   b.Notes(),
		StartAt: pgconv.TimeToPgtype(b.StartAt()),
	}
}

func BookingToUpdateParams(id uuid.UUID, b *booking.Booking) sqlc.UpdateBookingParams {
	return sqlc.UpdateBookingParams{
		ID:      id,
		Name:    b.Name(),
		Phone:   pgconv.StringPtrToPgtype(b.Phone()),
		Email:   pgconv.StringPtrToPgtype(b.Email()),
		Service: b.Service(),
		Notes:   b.Notes(),
		StartAt: pgconv.TimeToPgtype(b.StartAt()),
		Status:  pgconv.StringPtrToPgtype(b.Status()),
	}
}
