package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/elbonian/internal/errors"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func TestHandleErrorGin(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "not found",
			err:            apperrors.ErrNotFound,
			expectedStatus: http.StatusNotFound,
			expectedCode:   "not_found",
		},
		{
			name:           "wrapped invalid input",
			err:            apperrors.Wrap(apperrors.ErrInvalidInput, "malformed number"),
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "invalid_input",
		},
		{
			name:           "wrapped out of range",
			err:            apperrors.Wrap(apperrors.ErrOutOfRange, "value out of bounds"),
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "out_of_range",
		},
		{
			name:           "too many requests",
			err:            apperrors.ErrTooManyRequests,
			expectedStatus: http.StatusTooManyRequests,
			expectedCode:   "rate_limit_exceeded",
		},
		{
			name:           "unknown error",
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext()

			HandleErrorGin(c, tt.err, logger)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedCode, decodeError(t, w).Error)
		})
	}

	t.Run("nil error writes nothing", func(t *testing.T) {
		c, w := newTestContext()

		HandleErrorGin(c, nil, logger)

		assert.Empty(t, w.Body.String())
	})

	t.Run("internal details are hidden", func(t *testing.T) {
		c, w := newTestContext()

		HandleErrorGin(c, fmt.Errorf("database password is hunter2"), nil)

		assert.NotContains(t, w.Body.String(), "hunter2")
	})

	t.Run("input details are returned", func(t *testing.T) {
		c, w := newTestContext()

		HandleErrorGin(c, apperrors.Wrap(apperrors.ErrInvalidInput, `"VIV" does not match`), nil)

		assert.Contains(t, decodeError(t, w).Message, `"VIV" does not match`)
	})
}

func TestHandleBadRequestGin(t *testing.T) {
	c, w := newTestContext()

	HandleBadRequestGin(c, errors.New("unexpected EOF"), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeError(t, w)
	assert.Equal(t, "bad_request", response.Error)
	assert.Equal(t, "unexpected EOF", response.Message)
}

func TestHandleValidationErrorGin(t *testing.T) {
	c, w := newTestContext()

	HandleValidationErrorGin(c, errors.New("input: the length must be no more than 64."), nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "validation_error", decodeError(t, w).Error)
}
