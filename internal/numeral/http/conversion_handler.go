// Package http provides HTTP handlers for numeral conversion.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/elbonian/internal/httputil"
	"github.com/allisson/elbonian/internal/numeral/http/dto"
	numeralUseCase "github.com/allisson/elbonian/internal/numeral/usecase"
	customValidation "github.com/allisson/elbonian/internal/validation"
)

// ConversionHandler handles HTTP requests for numeral conversion.
type ConversionHandler struct {
	conversionUseCase numeralUseCase.ConversionUseCase
	maxInputLength    int
	logger            *slog.Logger
}

// NewConversionHandler creates a new conversion handler with required dependencies.
func NewConversionHandler(
	conversionUseCase numeralUseCase.ConversionUseCase,
	maxInputLength int,
	logger *slog.Logger,
) *ConversionHandler {
	return &ConversionHandler{
		conversionUseCase: conversionUseCase,
		maxInputLength:    maxInputLength,
		logger:            logger,
	}
}

// ConvertHandler converts the numeral in the JSON body.
// Control characters inside the input are rejected with 422 validation_error; surrounding
// whitespace such as a trailing newline is accepted and trimmed by the domain.
// POST /v1/conversions
func (h *ConversionHandler) ConvertHandler(c *gin.Context) {
	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	h.convert(c, req)
}

// GetConversionHandler converts the numeral given as path parameter.
// GET /v1/conversions/:input
func (h *ConversionHandler) GetConversionHandler(c *gin.Context) {
	h.convert(c, dto.ConvertRequest{Input: c.Param("input")})
}

// InspectHandler returns the per-place block decomposition of the path parameter.
// GET /v1/conversions/:input/blocks
func (h *ConversionHandler) InspectHandler(c *gin.Context) {
	req := dto.ConvertRequest{Input: c.Param("input")}
	if err := req.Validate(h.maxInputLength); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	inspection, err := h.conversionUseCase.Inspect(c.Request.Context(), req.Input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapInspectionToResponse(inspection))
}

func (h *ConversionHandler) convert(c *gin.Context, req dto.ConvertRequest) {
	if err := req.Validate(h.maxInputLength); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	conversion, err := h.conversionUseCase.Convert(c.Request.Context(), req.Input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapConversionToResponse(conversion))
}
