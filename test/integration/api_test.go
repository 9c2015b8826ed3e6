// Package integration provides end-to-end tests that drive the assembled application over HTTP.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/elbonian/internal/app"
	"github.com/allisson/elbonian/internal/config"
	"github.com/allisson/elbonian/internal/httputil"
	"github.com/allisson/elbonian/internal/numeral/http/dto"
)

// integrationTestContext holds all dependencies and state for integration testing.
type integrationTestContext struct {
	container  *app.Container
	baseURL    string
	metricsURL string
	cancel     context.CancelFunc
	errChan    chan error
}

// makeRequest performs an HTTP request and returns the response and body.
func (ctx *integrationTestContext) makeRequest(
	t *testing.T,
	method, url string,
	body interface{},
) (*http.Response, []byte) {
	t.Helper()

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		require.NoError(t, err, "failed to marshal request body")
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequest(method, url, bodyReader)
	require.NoError(t, err, "failed to create request")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: 10 * time.Second}
	//nolint:gosec // controlled test environment with localhost URLs
	resp, err := client.Do(req)
	require.NoError(t, err, "failed to perform request")

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")
	if closeErr := resp.Body.Close(); closeErr != nil {
		t.Logf("Warning: failed to close response body: %v", closeErr)
	}

	return resp, respBody
}

// freePort asks the kernel for an unused TCP port.
func freePort(t *testing.T) int {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())
	return port
}

// setupIntegrationTest builds the container and starts the API and metrics servers.
func setupIntegrationTest(t *testing.T, rateLimitBurst int) *integrationTestContext {
	t.Helper()

	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		ServerHost:              "127.0.0.1",
		ServerPort:              freePort(t),
		ServerShutdownTimeout:   5 * time.Second,
		LogLevel:                "error",
		RateLimitEnabled:        rateLimitBurst > 0,
		RateLimitRequestsPerSec: 0.01,
		RateLimitBurst:          rateLimitBurst,
		MetricsEnabled:          true,
		MetricsNamespace:        "elbonian_it",
		MetricsPort:             freePort(t),
		MaxInputLength:          64,
	}

	container := app.NewContainer(cfg)
	container.SetLogOutput(io.Discard)

	httpSrv, err := container.HTTPServer()
	require.NoError(t, err, "failed to get HTTP server")
	metricsSrv, err := container.MetricsServer()
	require.NoError(t, err, "failed to get metrics server")
	require.NotNil(t, metricsSrv)

	runCtx, cancel := context.WithCancel(context.Background())
	errChan := make(chan error, 2)
	go func() { errChan <- httpSrv.Start(runCtx) }()
	go func() { errChan <- metricsSrv.Start(runCtx) }()

	ctx := &integrationTestContext{
		container:  container,
		baseURL:    fmt.Sprintf("http://%s:%d", cfg.ServerHost, cfg.ServerPort),
		metricsURL: fmt.Sprintf("http://%s:%d", cfg.ServerHost, cfg.MetricsPort),
		cancel:     cancel,
		errChan:    errChan,
	}

	require.Eventually(t, func() bool {
		resp, err := http.Get(ctx.baseURL + "/ready")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond, "server did not become ready")

	return ctx
}

// teardownIntegrationTest stops the servers and releases container resources.
func teardownIntegrationTest(t *testing.T, ctx *integrationTestContext) {
	t.Helper()

	ctx.cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := ctx.container.Shutdown(shutdownCtx); err != nil {
		t.Logf("Warning: container shutdown error: %v", err)
	}

	for i := 0; i < 2; i++ {
		assert.NoError(t, <-ctx.errChan)
	}
}

// TestIntegration_Health_BasicChecks validates health and readiness endpoints.
func TestIntegration_Health_BasicChecks(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := setupIntegrationTest(t, 0)
	defer teardownIntegrationTest(t, ctx)

	t.Run("01_HealthCheck", func(t *testing.T) {
		resp, body := ctx.makeRequest(t, http.MethodGet, ctx.baseURL+"/health", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"status":"healthy"}`, string(body))
	})

	t.Run("02_ReadinessCheck", func(t *testing.T) {
		resp, body := ctx.makeRequest(t, http.MethodGet, ctx.baseURL+"/ready", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"status":"ready"}`, string(body))
	})
}

// TestIntegration_Conversions_CompleteFlow converts numerals through every route and checks
// that the business and HTTP metrics reach the Prometheus endpoint.
func TestIntegration_Conversions_CompleteFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := setupIntegrationTest(t, 0)
	defer teardownIntegrationTest(t, ctx)

	t.Run("01_ConvertElbonian", func(t *testing.T) {
		resp, body := ctx.makeRequest(t, http.MethodPost, ctx.baseURL+"/v1/conversions", dto.ConvertRequest{
			Input: " MMM dD X ",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var response dto.ConversionResponse
		require.NoError(t, json.Unmarshal(body, &response))
		assert.Equal(t, "elbonian", response.Kind)
		assert.Equal(t, 3410, response.Arabic)
		assert.Equal(t, "MMMdDX", response.Elbonian)
	})

	t.Run("02_ConvertArabic", func(t *testing.T) {
		resp, body := ctx.makeRequest(t, http.MethodGet, ctx.baseURL+"/v1/conversions/3999", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var response dto.ConversionResponse
		require.NoError(t, json.Unmarshal(body, &response))
		assert.Equal(t, "MMMDdDLlLVvV", response.Elbonian)
	})

	t.Run("03_EmptyInput", func(t *testing.T) {
		resp, body := ctx.makeRequest(t, http.MethodPost, ctx.baseURL+"/v1/conversions", dto.ConvertRequest{Input: "  "})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var response dto.ConversionResponse
		require.NoError(t, json.Unmarshal(body, &response))
		assert.Equal(t, 0, response.Arabic)
		assert.Empty(t, response.Elbonian)
	})

	t.Run("04_InspectBlocks", func(t *testing.T) {
		resp, body := ctx.makeRequest(t, http.MethodGet, ctx.baseURL+"/v1/conversions/DdDLlLVvV/blocks", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var response dto.InspectionResponse
		require.NoError(t, json.Unmarshal(body, &response))
		assert.Equal(t, 999, response.Arabic)
		require.Len(t, response.Blocks, 4)
		assert.Equal(t, "DdD", response.Blocks[1].Block)
		assert.Equal(t, "LlL", response.Blocks[2].Block)
		assert.Equal(t, "VvV", response.Blocks[3].Block)
	})

	t.Run("05_Malformed", func(t *testing.T) {
		for _, input := range []string{"IIII", "VIV", "MMMM", "9M"} {
			resp, body := ctx.makeRequest(t, http.MethodGet, ctx.baseURL+"/v1/conversions/"+input, nil)
			assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, input)

			var response httputil.ErrorResponse
			require.NoError(t, json.Unmarshal(body, &response))
			assert.Equal(t, "invalid_input", response.Error, input)
		}
	})

	t.Run("06_OutOfBounds", func(t *testing.T) {
		for _, input := range []string{"4000", "0", "-1"} {
			resp, body := ctx.makeRequest(t, http.MethodGet, ctx.baseURL+"/v1/conversions/"+input, nil)
			assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, input)

			var response httputil.ErrorResponse
			require.NoError(t, json.Unmarshal(body, &response))
			assert.Equal(t, "out_of_range", response.Error, input)
		}
	})

	t.Run("07_InputTooLong", func(t *testing.T) {
		resp, _ := ctx.makeRequest(t, http.MethodPost, ctx.baseURL+"/v1/conversions", dto.ConvertRequest{
			Input: strings.Repeat("I", 65),
		})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("08_Metrics", func(t *testing.T) {
		resp, body := ctx.makeRequest(t, http.MethodGet, ctx.metricsURL+"/metrics", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		output := string(body)
		assert.Contains(t, output, "elbonian_it_operations_total")
		assert.Contains(t, output, `operation="inspect"`)
		assert.Contains(t, output, "elbonian_it_http_requests_total")
	})
}

// TestIntegration_RateLimit verifies per-IP limiting on conversion routes.
func TestIntegration_RateLimit(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := setupIntegrationTest(t, 2)
	defer teardownIntegrationTest(t, ctx)

	for i := 0; i < 2; i++ {
		resp, _ := ctx.makeRequest(t, http.MethodGet, ctx.baseURL+"/v1/conversions/XV", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, body := ctx.makeRequest(t, http.MethodGet, ctx.baseURL+"/v1/conversions/XV", nil)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("Retry-After"))

	var response httputil.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &response))
	assert.Equal(t, "rate_limit_exceeded", response.Error)
}
