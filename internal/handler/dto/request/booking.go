package request

import (
	"booking-api/internal/domain/booking"
)

// BookingRequest is the body of both create and update. Required fields are
// checked by the domain so the error order stays name, service, startAt.
type BookingRequest struct {
	Name    string  `json:"name"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Service string  `json:"service"`
	Notes   *string `json:"notes"`
	StartAt string  `json:"startAt"`
	Status  *string `json:"status"`
}

func (r *BookingRequest) ToDraft() booking.Draft {
	return booking.Draft{
		Name:    r.Name,
		Phone:   r.Phone,
		Email:   r.Email,
		Service: r.Service,
		Notes:   r.Notes,
		StartAt: r.StartAt,
		Status:  r.Status,
	}
}

// ToCreateDraft drops status, which only an update may set.
func (r *BookingRequest) ToCreateDraft() booking.Draft {
	d := r.ToDraft()
	d.Status = nil
	return d
}

type PublicLookupQuery struct {
	LastName string `form:"lastName"`
	Last4    string `form:"last4"`
}
