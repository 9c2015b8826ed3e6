package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	numeralDomain "github.com/allisson/elbonian/internal/numeral/domain"
	"github.com/allisson/elbonian/internal/numeral/http/dto"
	numeralUseCase "github.com/allisson/elbonian/internal/numeral/usecase"
)

// RunConvert converts one numeral and prints both notations.
// Text output reads "<input> => <other notation>", e.g. "MCXI => 1111".
func RunConvert(
	ctx context.Context,
	useCase numeralUseCase.ConversionUseCase,
	logger *slog.Logger,
	io IOTuple,
	input string,
	format string,
) error {
	outFormat, err := parseOutputFormat(format)
	if err != nil {
		return err
	}

	logger.Debug("converting numeral", slog.String("input", input))

	conversion, err := useCase.Convert(ctx, input)
	if err != nil {
		logger.Error("conversion failed", slog.String("input", input), slog.Any("error", err))
		return fmt.Errorf("failed to convert %q: %w", input, err)
	}

	if outFormat == formatJSON {
		return writeJSON(io.Writer, dto.MapConversionToResponse(conversion))
	}

	_, err = fmt.Fprintf(io.Writer, "%s => %s\n", conversion.Input, otherNotation(conversion))
	return err
}

// RunInspect prints the block matched at every place value.
func RunInspect(
	ctx context.Context,
	useCase numeralUseCase.ConversionUseCase,
	logger *slog.Logger,
	io IOTuple,
	input string,
	format string,
) error {
	outFormat, err := parseOutputFormat(format)
	if err != nil {
		return err
	}

	logger.Debug("inspecting numeral", slog.String("input", input))

	inspection, err := useCase.Inspect(ctx, input)
	if err != nil {
		logger.Error("inspection failed", slog.String("input", input), slog.Any("error", err))
		return fmt.Errorf("failed to inspect %q: %w", input, err)
	}

	if outFormat == formatJSON {
		return writeJSON(io.Writer, dto.MapInspectionToResponse(inspection))
	}

	return writeInspectionText(io.Writer, inspection)
}

// otherNotation returns the notation the input was not written in.
func otherNotation(conversion *numeralDomain.Conversion) string {
	if conversion.Kind == numeralDomain.KindArabic {
		return conversion.Elbonian
	}
	return fmt.Sprintf("%d", conversion.Arabic)
}

func writeInspectionText(w io.Writer, inspection *numeralDomain.Inspection) error {
	if _, err := fmt.Fprintf(w, "%s => %d (%s)\n", inspection.Input, inspection.Arabic, inspection.Elbonian); err != nil {
		return err
	}
	for _, block := range inspection.Blocks {
		symbols := block.Symbols
		if symbols == "" {
			symbols = "-"
		}
		if _, err := fmt.Fprintf(w, "  %-9s %d  %-4s %4d\n", block.Place, block.Digit, symbols, block.Value()); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(jsonBytes))
	return err
}
