// Package mocks provides mock implementations of the numeral use cases for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	numeralDomain "github.com/allisson/elbonian/internal/numeral/domain"
)

// MockConversionUseCase is a mock implementation of ConversionUseCase.
type MockConversionUseCase struct {
	mock.Mock
}

// Convert mocks the Convert method of ConversionUseCase.
func (m *MockConversionUseCase) Convert(ctx context.Context, input string) (*numeralDomain.Conversion, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*numeralDomain.Conversion), args.Error(1)
}

// Inspect mocks the Inspect method of ConversionUseCase.
func (m *MockConversionUseCase) Inspect(ctx context.Context, input string) (*numeralDomain.Inspection, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*numeralDomain.Inspection), args.Error(1)
}
