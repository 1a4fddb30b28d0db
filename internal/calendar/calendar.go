// Package calendar renders a booking as an ICS file and a Google Calendar
// link. Nothing here talks to the server.
package calendar

import (
	"net/url"
	"time"

	"booking-api/internal/domain/catalog"

	ics "github.com/arran4/golang-ical"
)

const (
	ProductID = "-//ericfadezz//Bookings//EN"
	UIDDomain = "ericfadezz.local"
	Barber    = "Eric"

	googleBase  = "https://calendar.google.com/calendar/render"
	stampLayout = "20060102T150405Z"
)

type Event struct {
	UID         string
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	Stamp       time.Time
}

// NewEvent lasts as long as the service does. Empty notes leave the description empty.
func NewEvent(bookingID string, svc catalog.Service, start time.Time, notes string) Event {
	description := ""
	if notes != "" {
		description = "Notes: " + notes
	}
	return Event{
		UID:         bookingID + "@" + UIDDomain,
		Summary:     svc.Name + " with " + Barber,
		Description: description,
		Location:    svc.Location(),
		Start:       start.UTC(),
		End:         start.Add(svc.Duration).UTC(),
		Stamp:       time.Now().UTC(),
	}
}

func (e Event) ICS() string {
	cal := ics.NewCalendar()
	cal.SetProductId(ProductID)
	cal.SetCalscale("GREGORIAN")
	cal.SetMethod(ics.MethodPublish)

	ev := cal.AddEvent(e.UID)
	ev.SetDtStampTime(e.Stamp)
	ev.SetStartAt(e.Start)
	ev.SetEndAt(e.End)
	ev.SetSummary(e.Summary)
	ev.SetDescription(e.Description)
	if e.Location != "" {
		ev.SetLocation(e.Location)
	}
	return cal.Serialize()
}

func (e Event) GoogleURL() string {
	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", e.Summary)
	params.Set("details", e.Description)
	params.Set("dates", e.Start.UTC().Format(stampLayout)+"/"+e.End.UTC().Format(stampLayout))
	params.Set("location", e.Location)
	return googleBase + "?" + params.Encode()
}
