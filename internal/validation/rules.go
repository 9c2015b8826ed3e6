// Package validation provides custom validation rules for request DTOs.
package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/elbonian/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// ValidUTF8 validates that a string is well-formed UTF-8
var ValidUTF8 = validation.NewStringRuleWithError(
	utf8.ValidString,
	validation.NewError("validation_utf8", "must be valid UTF-8"),
)

// NoControlCharacters rejects control characters such as tabs or NUL inside the value.
// Surrounding whitespace, including a trailing newline, is ignored.
var NoControlCharacters = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.IndexFunc(strings.TrimSpace(s), unicode.IsControl) < 0
	},
	validation.NewError("validation_control_characters", "must not contain control characters"),
)
