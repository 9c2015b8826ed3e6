package usecase

import (
	"context"
	"time"

	"github.com/allisson/elbonian/internal/metrics"
	numeralDomain "github.com/allisson/elbonian/internal/numeral/domain"
)

const metricsDomain = "numeral"

// conversionUseCaseWithMetrics decorates ConversionUseCase with metrics instrumentation.
type conversionUseCaseWithMetrics struct {
	next    ConversionUseCase
	metrics metrics.BusinessMetrics
}

// NewConversionUseCaseWithMetrics wraps a ConversionUseCase with metrics recording.
func NewConversionUseCaseWithMetrics(useCase ConversionUseCase, m metrics.BusinessMetrics) ConversionUseCase {
	return &conversionUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Convert records metrics for conversion operations.
func (c *conversionUseCaseWithMetrics) Convert(
	ctx context.Context,
	input string,
) (*numeralDomain.Conversion, error) {
	start := time.Now()
	conversion, err := c.next.Convert(ctx, input)
	c.record(ctx, "convert", start, err)
	return conversion, err
}

// Inspect records metrics for inspection operations.
func (c *conversionUseCaseWithMetrics) Inspect(
	ctx context.Context,
	input string,
) (*numeralDomain.Inspection, error) {
	start := time.Now()
	inspection, err := c.next.Inspect(ctx, input)
	c.record(ctx, "inspect", start, err)
	return inspection, err
}

func (c *conversionUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	c.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}
