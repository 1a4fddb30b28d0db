package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"booking-api/internal/calendar"
	"booking-api/internal/client"
	"booking-api/internal/domain/catalog"
	reqdto "booking-api/internal/handler/dto/request"
	resdto "booking-api/internal/handler/dto/response"
	"booking-api/internal/pkg/errs"
	"booking-api/internal/pkg/ptr"
)

const (
	defaultAPIURL = "http://localhost:5001"
	inputLayout   = "2006-01-02T15:04"
	displayLayout = "Mon Jan 2 2006 3:04 PM"
)

type command func(ctx context.Context, args []string, out io.Writer) error

var commands = map[string]command{
	"services": runServices,
	"book":     runBook,
	"lookup":   runLookup,
	"login":    runLogin,
	"logout":   runLogout,
	"list":     runList,
	"update":   runUpdate,
}

func newFlagSet(name string) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	apiURL := os.Getenv("BOOKING_API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	api := fs.String("api", apiURL, "booking API base URL")
	return fs, api
}

// parseStart reads RFC3339 or a local wall-clock time such as 2030-05-01T14:30.
func parseStart(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(inputLayout, raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("start must look like %s or RFC3339: %w", inputLayout, err)
	}
	return t, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func runServices(ctx context.Context, args []string, out io.Writer) error {
	fs, api := newFlagSet("services")
	if err := fs.Parse(args); err != nil {
		return err
	}

	services, err := client.New(*api).Services(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSERVICE\tPRICE\tLENGTH\tWHERE")
	for _, s := range services {
		fmt.Fprintf(tw, "%s\t%s\t$%d\t%dm\t%s\n", s.ID, s.Name, s.PriceUSD, s.DurationMinutes, s.Location)
	}
	return tw.Flush()
}

func runBook(ctx context.Context, args []string, out io.Writer) error {
	fs, api := newFlagSet("book")
	name := fs.String("name", "", "your full name")
	phone := fs.String("phone", "", "phone number for the SMS confirmation")
	email := fs.String("email", "", "email address")
	serviceID := fs.String("service", catalog.Default().ID, "service id, see the services command")
	notes := fs.String("notes", "", "notes for the barber")
	start := fs.String("start", "", "start time, e.g. 2030-05-01T14:30")
	icsPath := fs.String("ics", "booking.ics", "where to write the calendar file, empty to skip")
	if err := fs.Parse(args); err != nil {
		return err
	}

	svc, err := catalog.Find(*serviceID)
	if err != nil {
		return fmt.Errorf("unknown service %q", *serviceID)
	}
	startAt, err := parseStart(*start)
	if err != nil {
		return err
	}

	id, err := client.New(*api).CreateBooking(ctx, reqdto.BookingRequest{
		Name:    *name,
		Phone:   optional(*phone),
		Email:   optional(*email),
		Service: svc.Label(),
		Notes:   optional(*notes),
		StartAt: startAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Booked #%s. See you soon!\n", id)

	event := calendar.NewEvent(id, svc, startAt, *notes)
	if *icsPath != "" {
		if err := os.WriteFile(*icsPath, []byte(event.ICS()), 0o600); err != nil {
			return errs.Wrap(err, "write calendar file")
		}
		fmt.Fprintf(out, "Calendar file: %s\n", *icsPath)
	}
	fmt.Fprintf(out, "Google Calendar: %s\n", event.GoogleURL())
	return nil
}

func runLookup(ctx context.Context, args []string, out io.Writer) error {
	fs, api := newFlagSet("lookup")
	lastName := fs.String("last-name", "", "last name on the booking")
	last4 := fs.String("last4", "", "last four digits of the phone number")
	if err := fs.Parse(args); err != nil {
		return err
	}

	bookings, err := client.New(*api).PublicLookup(ctx, *lastName, *last4)
	if err != nil {
		return err
	}
	if len(bookings) == 0 {
		fmt.Fprintln(out, "No upcoming bookings found.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "WHEN\tSERVICE\tNAME\tNOTES")
	for _, b := range bookings {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", b.StartAt.Local().Format(displayLayout), b.Service, b.Name, b.Notes)
	}
	return tw.Flush()
}

func runLogin(ctx context.Context, args []string, out io.Writer) error {
	fs, api := newFlagSet("login")
	password := fs.String("password", os.Getenv("BOOKING_ADMIN_PASSWORD"), "admin password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := defaultTokenStore()
	if err != nil {
		return err
	}
	session, err := client.New(*api).Login(ctx, *password)
	if err != nil {
		return err
	}
	if err := store.Save(session); err != nil {
		return errs.Wrap(err, "save token")
	}
	fmt.Fprintln(out, "Logged in.")
	return nil
}

func runLogout(ctx context.Context, args []string, out io.Writer) error {
	fs, api := newFlagSet("logout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := defaultTokenStore()
	if err != nil {
		return err
	}
	if err := store.Clear(); err != nil {
		return errs.Wrap(err, "remove token")
	}
	// best effort, the local token is already gone
	_ = client.New(*api).Logout(ctx)
	fmt.Fprintln(out, "Logged out.")
	return nil
}

func loadSession() (client.Session, error) {
	store, err := defaultTokenStore()
	if err != nil {
		return client.Session{}, err
	}
	session, err := store.Load()
	if err != nil {
		return client.Session{}, errs.Wrap(err, "read token")
	}
	if !session.Valid() {
		return client.Session{}, client.ErrNoSession
	}
	return session, nil
}

func runList(ctx context.Context, args []string, out io.Writer) error {
	fs, api := newFlagSet("list")
	if err := fs.Parse(args); err != nil {
		return err
	}

	session, err := loadSession()
	if err != nil {
		return err
	}
	bookings, err := client.New(*api).ListBookings(ctx, session)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tWHEN\tNAME\tPHONE\tEMAIL\tSERVICE\tSTATUS\tNOTES")
	for _, b := range bookings {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			b.ID, b.StartAt.Local().Format(displayLayout), b.Name,
			ptr.Deref(b.Phone, ""), ptr.Deref(b.Email, ""), b.Service, ptr.Deref(b.Status, ""), b.Notes)
	}
	return tw.Flush()
}

// runUpdate starts from the stored record and applies only the flags given,
// because the server replaces every field on update.
func runUpdate(ctx context.Context, args []string, out io.Writer) error {
	fs, api := newFlagSet("update")
	id := fs.String("id", "", "booking id")
	name := fs.String("name", "", "full name")
	phone := fs.String("phone", "", "phone number, empty to clear")
	email := fs.String("email", "", "email address, empty to clear")
	service := fs.String("service", "", "service id or free-text label")
	notes := fs.String("notes", "", "notes, empty to clear")
	start := fs.String("start", "", "start time, e.g. 2030-05-01T14:30")
	status := fs.String("status", "", "status")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errs.New("update requires -id")
	}

	session, err := loadSession()
	if err != nil {
		return err
	}
	bc := client.New(*api)
	bookings, err := bc.ListBookings(ctx, session)
	if err != nil {
		return err
	}
	var current *resdto.BookingResponse
	for _, b := range bookings {
		if b != nil && b.ID == *id {
			current = b
			break
		}
	}
	if current == nil {
		return fmt.Errorf("booking #%s not found", *id)
	}

	req := reqdto.BookingRequest{
		Name:    current.Name,
		Phone:   current.Phone,
		Email:   current.Email,
		Service: current.Service,
		Notes:   optional(current.Notes),
		StartAt: current.StartAt.UTC().Format(time.RFC3339),
		Status:  current.Status,
	}

	var visitErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			req.Name = *name
		case "phone":
			req.Phone = optional(*phone)
		case "email":
			req.Email = optional(*email)
		case "notes":
			req.Notes = optional(*notes)
		case "status":
			req.Status = optional(*status)
		case "service":
			req.Service = *service
			if svc, findErr := catalog.Find(*service); findErr == nil {
				req.Service = svc.Label()
			}
		case "start":
			startAt, parseErr := parseStart(*start)
			if parseErr != nil {
				visitErr = parseErr
				return
			}
			req.StartAt = startAt.UTC().Format(time.RFC3339)
		}
	})
	if visitErr != nil {
		return visitErr
	}
	if req.Status == nil {
		req.Status = ptr.Of("Pending")
	}

	if err := bc.UpdateBooking(ctx, session, *id, req); err != nil {
		return err
	}
	fmt.Fprintf(out, "Updated #%s.\n", *id)
	return nil
}
