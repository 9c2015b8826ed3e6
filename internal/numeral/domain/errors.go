package domain

import (
	"github.com/allisson/elbonian/internal/errors"
)

// Numeral error definitions.
//
// Both are raised only while parsing; a successfully parsed Numeral never fails afterwards.
var (
	// ErrMalformedNumber indicates the input is neither a valid Arabic digit string nor a
	// string matching the Elbonian block grammar.
	ErrMalformedNumber = errors.Wrap(errors.ErrInvalidInput, "malformed number")

	// ErrValueOutOfBounds indicates a syntactically valid Arabic number outside [1, 3999].
	ErrValueOutOfBounds = errors.Wrap(errors.ErrOutOfRange, "value out of bounds")

	// ErrInputTooLong indicates the raw input exceeds the configured length limit.
	ErrInputTooLong = errors.Wrap(errors.ErrInvalidInput, "input too long")
)
