package notify

import (
	"fmt"
	"time"

	"booking-api/internal/usecase/commands"
)

const startAtLayout = "1/2/2006, 3:04:05 PM"

type Template struct {
	Brand    string
	Location *time.Location
}

func (t Template) Render(c commands.Confirmation) string {
	loc := t.Location
	if loc == nil {
		loc = time.UTC
	}
	return fmt.Sprintf("%s: Hey %s, your %s is booked for %s. Reply STOP to opt out, HELP for help.",
		t.Brand, c.Name, c.Service, c.StartAt.In(loc).Format(startAtLayout))
}
