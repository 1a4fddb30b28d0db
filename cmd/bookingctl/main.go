// Command bookingctl drives the booking API from a terminal: browse services,
// book, look up bookings and run the admin list/edit flow.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
)

const usage = `usage: bookingctl <command> [flags]

commands:
  services   list bookable services
  book       create a booking and write its calendar file
  lookup     find your upcoming bookings by last name and last 4 phone digits
  login      log in as admin and cache the token
  logout     forget the cached admin token
  list       list every booking (admin)
  update     overwrite a booking (admin)

Set BOOKING_API_URL or pass -api to point at a server.
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "bookingctl:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(out, usage)
		return nil
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprint(out, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
	return cmd(ctx, args[1:], out)
}
