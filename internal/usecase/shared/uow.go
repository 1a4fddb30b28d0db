package shared

import (
	"context"

	"booking-api/internal/domain/booking"
	sqlc "booking-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

// UnitOfWork runs write operations in a transaction with retry on
// serialization failures. Reads go through the read store directly.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	DB() sqlc.DBTX
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error)
	Update(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, b *booking.Booking) error
}
