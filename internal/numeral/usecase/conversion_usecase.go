// Package usecase implements the application layer for numeral conversion.
//
// Use cases accept raw caller input, enforce request-level limits such as the maximum input
// length, and delegate validation and conversion to the numeral domain. They never hold
// state between calls, so a single instance is shared by the HTTP handlers and the CLI.
package usecase

import (
	"context"

	apperrors "github.com/allisson/elbonian/internal/errors"
	numeralDomain "github.com/allisson/elbonian/internal/numeral/domain"
)

// conversionUseCase implements ConversionUseCase on top of numeralDomain.Parse.
type conversionUseCase struct {
	maxInputLength int
}

// NewConversionUseCase creates a ConversionUseCase. Inputs longer than maxInputLength bytes
// are rejected before parsing; a non-positive limit disables the check.
func NewConversionUseCase(maxInputLength int) ConversionUseCase {
	return &conversionUseCase{maxInputLength: maxInputLength}
}

// Convert parses input and returns both notations.
func (c *conversionUseCase) Convert(ctx context.Context, input string) (*numeralDomain.Conversion, error) {
	numeral, err := c.parse(ctx, input)
	if err != nil {
		return nil, err
	}
	return numeralDomain.NewConversion(input, numeral), nil
}

// Inspect parses input and returns both notations with the block matched for each place.
func (c *conversionUseCase) Inspect(ctx context.Context, input string) (*numeralDomain.Inspection, error) {
	numeral, err := c.parse(ctx, input)
	if err != nil {
		return nil, err
	}
	return numeralDomain.NewInspection(input, numeral), nil
}

func (c *conversionUseCase) parse(ctx context.Context, input string) (*numeralDomain.Numeral, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if c.maxInputLength > 0 && len(input) > c.maxInputLength {
		return nil, apperrors.Wrapf(
			numeralDomain.ErrInputTooLong,
			"input has %d bytes, limit is %d",
			len(input),
			c.maxInputLength,
		)
	}

	return numeralDomain.Parse(input)
}
