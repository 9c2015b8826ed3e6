// Package commands contains CLI command implementations for the application.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/allisson/elbonian/internal/app"
)

// IOTuple holds the output writer for commands, allowing for testing.
type IOTuple struct {
	Writer io.Writer
}

// DefaultIO returns an IOTuple writing to os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{Writer: os.Stdout}
}

// WriterIO returns an IOTuple writing to w, falling back to os.Stdout when w is nil.
func WriterIO(w io.Writer) IOTuple {
	if w == nil {
		return DefaultIO()
	}
	return IOTuple{Writer: w}
}

// outputFormat selects how command results are printed.
type outputFormat string

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
)

// parseOutputFormat validates the --format flag value.
func parseOutputFormat(format string) (outputFormat, error) {
	switch outputFormat(format) {
	case formatText:
		return formatText, nil
	case formatJSON:
		return formatJSON, nil
	default:
		return "", fmt.Errorf("invalid format: %s (valid options: text, json)", format)
	}
}

// closeContainer closes all resources in the container and logs any errors.
func closeContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}
