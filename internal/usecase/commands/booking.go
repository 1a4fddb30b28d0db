package commands

import (
	"context"
	"log/slog"

	"booking-api/internal/domain/booking"
	"booking-api/internal/infra"
	"booking-api/internal/pkg/errs"
	"booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking_mock.go -package=commandsmock

var (
	ErrBookingNotFound   = errs.Mark(errs.New("booking not found"), errs.ErrNotFound)
	ErrBookingCreateFail = errs.New("failed to create booking")
	ErrBookingUpdateFail = errs.New("failed to update booking")
)

type CreateBookingResult struct {
	BookingID    uuid.UUID
	Notification NotificationOutcome
}

type BookingCommands interface {
	Create(ctx context.Context, draft booking.Draft) (*CreateBookingResult, error)
	Update(ctx context.Context, id uuid.UUID, draft booking.Draft) error
}

type bookingCommandsImpl struct {
	uow    shared.UnitOfWork
	sender ConfirmationSender
}

func NewBookingCommands(uow shared.UnitOfWork, sender ConfirmationSender) BookingCommands {
	return &bookingCommandsImpl{
		uow:    uow,
		sender: sender,
	}
}

func (b *bookingCommandsImpl) Create(ctx context.Context, draft booking.Draft) (*CreateBookingResult, error) {
	entity, err := booking.NewBooking(draft)
	if err != nil {
		return nil, err
	}

	var id uuid.UUID
	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, createErr := tx.Bookings().Create(ctx, tx.DB(), entity)
		if createErr != nil {
			return createErr
		}
		id = created
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrBookingCreateFail)
	}

	outcome := b.notify(ctx, id, entity)
	return &CreateBookingResult{BookingID: id, Notification: outcome}, nil
}

// notify never fails the request; the outcome is only logged.
func (b *bookingCommandsImpl) notify(ctx context.Context, id uuid.UUID, entity *booking.Booking) NotificationOutcome {
	if !entity.HasPhone() {
		slog.DebugContext(ctx, "booking has no phone, skipping confirmation", "booking_id", id)
		return NotificationSkipped
	}

	err := b.sender.SendConfirmation(ctx, Confirmation{
		Phone:   *entity.Phone(),
		Name:    entity.Name(),
		Service: entity.Service(),
		StartAt: entity.StartAt(),
	})
	if err != nil {
		slog.WarnContext(ctx, "booking confirmation failed", "booking_id", id, "error", err.Error())
		return NotificationFailed
	}

	slog.InfoContext(ctx, "booking confirmation sent", "booking_id", id)
	return NotificationSent
}

func (b *bookingCommandsImpl) Update(ctx context.Context, id uuid.UUID, draft booking.Draft) error {
	entity, err := booking.NewBooking(draft)
	if err != nil {
		return err
	}

	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().Update(ctx, tx.DB(), id, entity)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrBookingUpdateFail)
	}
	return nil
}
