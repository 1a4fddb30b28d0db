//go:build unit || e2e

package builder

import (
	"time"

	"booking-api/internal/domain/booking"
	reqdto "booking-api/internal/handler/dto/request"
	sqlc "booking-api/internal/infra/sqlc/generated"
	"booking-api/internal/pkg/pgconv"
	"booking-api/internal/pkg/ptr"
	"booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingBuilder struct {
	ID        uuid.UUID
	Name      string
	Phone     *string
	Email     *string
	Service   string
	Notes     *string
	StartAt   time.Time
	Status    *string
	CreatedAt time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now().UTC().Truncate(time.Second)
	return &BookingBuilder{
		ID:        uuid.New(),
		Name:      "Juan Reyes",
		Phone:     ptr.Of("+15305551234"),
		Email:     ptr.Of("juan@example.com"),
		Service:   "Regular Cut ($25)",
		StartAt:   now.Add(72 * time.Hour),
		CreatedAt: now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDraft() booking.Draft {
	return booking.Draft{
		Name:    b.Name,
		Phone:   b.Phone,
		Email:   b.Email,
		Service: b.Service,
		Notes:   b.Notes,
		StartAt: b.StartAt.Format(time.RFC3339),
		Status:  b.Status,
	}
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.NewBooking(b.BuildDraft())
}

func (b *BookingBuilder) BuildRequestDTO() reqdto.BookingRequest {
	return reqdto.BookingRequest{
		Name:    b.Name,
		Phone:   b.Phone,
		Email:   b.Email,
		Service: b.Service,
		Notes:   b.Notes,
		StartAt: b.StartAt.Format(time.RFC3339),
		Status:  b.Status,
	}
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	return sqlc.Bookings{
		ID:        b.ID,
		Name:      b.Name,
		Phone:     pgconv.StringPtrToPgtype(b.Phone),
		Email:     pgconv.StringPtrToPgtype(b.Email),
		Service:   b.Service,
		Notes:     ptr.Deref(b.Notes, ""),
		StartAt:   pgtype.Timestamptz{Time: b.StartAt, Valid: true},
		Status:    pgconv.StringPtrToPgtype(b.Status),
		CreatedAt: pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt: pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:        b.ID,
		Name:      b.Name,
		Phone:     b.Phone,
		Email:     b.Email,
		Service:   b.Service,
		Notes:     ptr.Deref(b.Notes, ""),
		StartAt:   b.StartAt,
		Status:    b.Status,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildPublicView() *queries.PublicBookingView {
	return &queries.PublicBookingView{
		ID:      b.ID,
		Name:    b.Name,
		Service: b.Service,
		StartAt: b.StartAt,
		Notes:   ptr.Deref(b.Notes, ""),
	}
}

func (b *BookingBuilder) WithName(name string) *BookingBuilder {
	b.Name = name
	return b
}

func (b *BookingBuilder) WithPhone(phone string) *BookingBuilder {
	b.Phone = &phone
	return b
}

func (b *BookingBuilder) WithoutPhone() *BookingBuilder {
	b.Phone = nil
	return b
}

func (b *BookingBuilder) WithStartAt(t time.Time) *BookingBuilder {
	b.StartAt = t
	return b
}

func (b *BookingBuilder) WithNotes(notes string) *BookingBuilder {
	b.Notes = &notes
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.Status = &status
	return b
}
