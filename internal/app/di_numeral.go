package app

import (
	"fmt"

	numeralHTTP "github.com/allisson/elbonian/internal/numeral/http"
	numeralUseCase "github.com/allisson/elbonian/internal/numeral/usecase"
)

// ConversionUseCase returns the numeral conversion use case instance.
func (c *Container) ConversionUseCase() (numeralUseCase.ConversionUseCase, error) {
	var err error
	c.conversionUseCaseInit.Do(func() {
		c.conversionUseCase, err = c.initConversionUseCase()
		if err != nil {
			c.initErrors["conversionUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["conversionUseCase"]; exists {
		return nil, storedErr
	}
	return c.conversionUseCase, nil
}

// ConversionHandler returns the HTTP handler for conversion endpoints.
func (c *Container) ConversionHandler() (*numeralHTTP.ConversionHandler, error) {
	var err error
	c.conversionHandlerInit.Do(func() {
		c.conversionHandler, err = c.initConversionHandler()
		if err != nil {
			c.initErrors["conversionHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["conversionHandler"]; exists {
		return nil, storedErr
	}
	return c.conversionHandler, nil
}

// initConversionUseCase creates the conversion use case wrapped with business metrics.
// BusinessMetrics is a no-op when metrics are disabled.
func (c *Container) initConversionUseCase() (numeralUseCase.ConversionUseCase, error) {
	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for conversion use case: %w", err)
	}

	baseUseCase := numeralUseCase.NewConversionUseCase(c.config.MaxInputLength)
	return numeralUseCase.NewConversionUseCaseWithMetrics(baseUseCase, businessMetrics), nil
}

// initConversionHandler creates the conversion handler with all its dependencies.
func (c *Container) initConversionHandler() (*numeralHTTP.ConversionHandler, error) {
	useCase, err := c.ConversionUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get conversion use case for conversion handler: %w", err)
	}

	return numeralHTTP.NewConversionHandler(useCase, c.config.MaxInputLength, c.Logger()), nil
}
