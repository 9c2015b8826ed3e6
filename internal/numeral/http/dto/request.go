// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/elbonian/internal/validation"
)

// ConvertRequest contains the numeral to convert, in either notation.
type ConvertRequest struct {
	Input string `json:"input"`
}

// Validate checks the request against maxLength. An empty input is allowed and is
// interpreted as the empty numeral.
func (r *ConvertRequest) Validate(maxLength int) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Input,
			validation.Length(0, maxLength),
			customValidation.ValidUTF8,
			customValidation.NoControlCharacters,
		),
	)
}
