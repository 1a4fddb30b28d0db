package response

import (
	"time"

	"booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone"`
	Email     *string   `json:"email"`
	Service   string    `json:"service"`
	Notes     string    `json:"notes"`
	StartAt   time.Time `json:"startAt"`
	Status    *string   `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PublicBookingResponse carries no contact details.
type PublicBookingResponse struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Service string    `json:"service"`
	StartAt time.Time `json:"startAt"`
	Notes   string    `json:"notes"`
}

type BookingListResponse struct {
	OK       bool               `json:"ok"`
	Bookings []*BookingResponse `json:"bookings"`
}

type PublicBookingListResponse struct {
	OK       bool                     `json:"ok"`
	Bookings []*PublicBookingResponse `json:"bookings"`
}

type BookingIDResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}

var copyOpts = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
	},
}

func FromBookingViews(views []*queries.BookingView) (*BookingListResponse, error) {
	items := make([]*BookingResponse, 0, len(views))
	if err := copier.CopyWithOption(&items, views, copyOpts); err != nil {
		return nil, err
	}
	if items == nil {
		items = []*BookingResponse{}
	}
	return &BookingListResponse{OK: true, Bookings: items}, nil
}

func FromPublicBookingViews(views []*queries.PublicBookingView) (*PublicBookingListResponse, error) {
	items := make([]*PublicBookingResponse, 0, len(views))
	if err := copier.CopyWithOption(&items, views, copyOpts); err != nil {
		return nil, err
	}
	if items == nil {
		items = []*PublicBookingResponse{}
	}
	return &PublicBookingListResponse{OK: true, Bookings: items}, nil
}
