package catalog

import (
	"errors"
	"fmt"
	"time"
)

var ErrServiceNotFound = errors.New("service not found")

const (
	LocationHouseCall  = "House Call"
	LocationBarbershop = "Barbershop"
)

type Service struct {
	ID          string
	Name        string
	Description string
	PriceUSD    int
	Duration    time.Duration
	HouseCall   bool
}

// Label is the free-text service string stored on a booking, e.g. "Regular Cut ($25)".
func (s Service) Label() string {
	return fmt.Sprintf("%s ($%d)", s.Name, s.PriceUSD)
}

func (s Service) Location() string {
	if s.HouseCall {
		return LocationHouseCall
	}
	return LocationBarbershop
}

var services = []Service{
	{
		ID:          "house_call",
		Name:        "House Call",
		Description: "Haircut at your location, zero travel on your part.",
		PriceUSD:    50,
		Duration:    60 * time.Minute,
		HouseCall:   true,
	},
	{
		ID:          "regular_cut",
		Name:        "Regular Cut",
		Description: "Clean taper/fade, detailed lineup, styled finish.",
		PriceUSD:    25,
		Duration:    45 * time.Minute,
	},
	{
		ID:          "regular_cut+beard",
		Name:        "Regular Cut + Beard",
		Description: "Full fade with beard shape & hot towel.",
		PriceUSD:    30,
		Duration:    60 * time.Minute,
	},
	{
		ID:          "regular_cut+design",
		Name:        "Regular Cut + Design",
		Description: "Regular cut with a custom design.",
		PriceUSD:    35,
		Duration:    60 * time.Minute,
	},
}

// All returns a copy of the catalogue in display order.
func All() []Service {
	out := make([]Service, len(services))
	copy(out, services)
	return out
}

func Find(id string) (Service, error) {
	for _, s := range services {
		if s.ID == id {
			return s, nil
		}
	}
	return Service{}, ErrServiceNotFound
}

func Default() Service {
	return services[0]
}
