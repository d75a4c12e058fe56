// Package card implements structural card number validation and masking.
//
// Validation here is advisory: the card network performs the authoritative
// check during authorization. Nothing in this package touches a provider.
package card

import "strings"

const (
	minPANLength = 13
	maxPANLength = 19
)

// Validate reports whether pan is structurally plausible: digits only, length
// within the accepted PAN range and a valid Luhn checksum. Malformed input
// yields false, never an error.
func Validate(pan string) bool {
	if len(pan) < minPANLength || len(pan) > maxPANLength {
		return false
	}

	sum := 0
	double := false
	for i := len(pan) - 1; i >= 0; i-- {
		c := pan[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// Mask replaces every digit of pan except the last four with '*'. Inputs
// shorter than four characters are masked entirely. Any card number crossing
// out of the validator/adapter boundary must go through Mask first.
func Mask(pan string) string {
	if len(pan) < 4 {
		return strings.Repeat("*", len(pan))
	}
	return strings.Repeat("*", len(pan)-4) + pan[len(pan)-4:]
}
