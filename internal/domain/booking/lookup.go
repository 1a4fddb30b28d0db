package booking

import (
	"errors"
	"strings"

	"booking-api/internal/pkg/errs"
)

var (
	ErrMissingLookupFields = errs.Mark(errors.New("missing lastName or last4"), errs.ErrValidation)
	ErrInvalidLast4        = errs.Mark(errors.New("last4 must be 4 digits"), errs.ErrValidation)
)

// LookupKey is the weak public credential: a last name plus the final four
// digits of the phone number on the booking.
type LookupKey struct {
	lastName string
	last4    string
}

func NewLookupKey(lastName, last4 string) (LookupKey, error) {
	ln := strings.ToLower(strings.TrimSpace(lastName))
	if ln == "" || last4 == "" {
		return LookupKey{}, ErrMissingLookupFields
	}
	digits := StripNonDigits(last4)
	if len(digits) != 4 {
		return LookupKey{}, ErrInvalidLast4
	}
	return LookupKey{lastName: ln, last4: digits}, nil
}

func (k LookupKey) LastName() string { return k.lastName }
func (k LookupKey) Last4() string    { return k.last4 }

// MatchesName compares against the last whitespace-delimited token of name,
// case-insensitively and exactly.
func (k LookupKey) MatchesName(name string) bool {
	parts := strings.Fields(strings.ToLower(name))
	if len(parts) == 0 {
		return false
	}
	return parts[len(parts)-1] == k.lastName
}
