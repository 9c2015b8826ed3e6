package domain

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/allisson/elbonian/internal/errors"
)

// Normalize strips surrounding whitespace and deletes every space character, including
// internal ones ("9 9" becomes "99").
func Normalize(raw string) string {
	return strings.ReplaceAll(strings.TrimSpace(raw), " ", "")
}

// Classify decides which notation a normalized string is written in. An empty string is
// the empty Elbonian numeral. A single leading minus sign followed by digits is classified
// as Arabic so that negative values are reported as out of bounds rather than malformed.
func Classify(s string) (Kind, error) {
	if s == "" {
		return KindElbonian, nil
	}

	var hasDigit, hasLetter bool
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case unicode.IsLetter(r):
			if !isElbonianSymbol(r) {
				return "", errors.Wrapf(ErrMalformedNumber, "character %q is outside the elbonian alphabet", r)
			}
			hasLetter = true
		case r == '-' && i == 0 && len(s) > 1:
		default:
			return "", errors.Wrapf(ErrMalformedNumber, "unexpected character %q", r)
		}
	}

	if hasDigit && hasLetter {
		return "", errors.Wrap(ErrMalformedNumber, "contains both digits and letters")
	}
	if hasLetter {
		if s[0] == '-' {
			return "", errors.Wrap(ErrMalformedNumber, "elbonian numerals cannot be signed")
		}
		return KindElbonian, nil
	}
	return KindArabic, nil
}

// parseArabic converts a digit string to its value and range-checks it.
func parseArabic(s string) (int, error) {
	value, err := strconv.Atoi(s)
	if err != nil {
		// Only overflow can fail here: Classify admits digits and a leading minus sign.
		return 0, errors.Wrapf(ErrValueOutOfBounds, "%s is outside [%d, %d]", s, MinValue, MaxValue)
	}
	if err := checkBounds(value); err != nil {
		return 0, err
	}
	return value, nil
}

// parseElbonian decomposes s into thousands, hundreds, tens and ones blocks and returns the
// matched digit for each place.
func parseElbonian(s string) ([placeCount]int, error) {
	var digits [placeCount]int
	if len(s) > MaxElbonianLength || !matchPlaces(s, Thousands, &digits) {
		return digits, errors.Wrapf(ErrMalformedNumber, "%q does not match the elbonian block grammar", s)
	}
	return digits, nil
}

func checkBounds(value int) error {
	if value < MinValue || value > MaxValue {
		return errors.Wrapf(ErrValueOutOfBounds, "%d is outside [%d, %d]", value, MinValue, MaxValue)
	}
	return nil
}
