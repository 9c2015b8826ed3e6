package usecase

import (
	"context"

	numeralDomain "github.com/allisson/elbonian/internal/numeral/domain"
)

// ConversionUseCase defines the interface for numeral conversion operations.
type ConversionUseCase interface {
	// Convert parses input in either notation and returns both representations.
	Convert(ctx context.Context, input string) (*numeralDomain.Conversion, error)

	// Inspect parses input and returns its per-place block decomposition.
	Inspect(ctx context.Context, input string) (*numeralDomain.Inspection, error)
}
