package booking

import (
	"regexp"
	"strings"
)

const domesticCountryCode = "1"

var nonDigits = regexp.MustCompile(`\D`)

// NormalizePhone converts a free-form phone number to E.164. Ten digits are
// assumed domestic; eleven digits starting with the trunk digit get a "+";
// a value already starting with "+" is kept verbatim. Anything else is nil.
func NormalizePhone(raw *string) *string {
	if raw == nil || *raw == "" {
		return nil
	}

	digits := nonDigits.ReplaceAllString(*raw, "")
	var normalized string
	switch {
	case len(digits) == 10:
		normalized = "+" + domesticCountryCode + digits
	case len(digits) == 11 && strings.HasPrefix(digits, domesticCountryCode):
		normalized = "+" + digits
	case strings.HasPrefix(*raw, "+"):
		normalized = *raw
	default:
		return nil
	}
	return &normalized
}

// StripNonDigits drops every character that is not 0-9.
func StripNonDigits(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}
