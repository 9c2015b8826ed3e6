package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/elbonian/cmd/app/commands"
	"github.com/allisson/elbonian/internal/app"
	"github.com/allisson/elbonian/internal/config"
)

// negativeInputHint documents the flag terminator: "-1" would otherwise be parsed as a flag.
const negativeInputHint = "Place -- before a negative number, e.g. 'app convert -- -1'."

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

func getNumeralCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:        "convert",
			Usage:       "Convert an Arabic or Elbonian numeral to the other notation",
			ArgsUsage:   "[--] <numeral>",
			Description: negativeInputHint,
			Flags:       []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withNumeralContainer(ctx, cmd, func(container *app.Container, input string) error {
					useCase, err := container.ConversionUseCase()
					if err != nil {
						return err
					}
					return commands.RunConvert(
						ctx,
						useCase,
						container.Logger(),
						commands.WriterIO(cmd.Root().Writer),
						input,
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:        "inspect",
			Usage:       "Show the per-place block decomposition of a numeral",
			ArgsUsage:   "[--] <numeral>",
			Description: negativeInputHint,
			Flags:       []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withNumeralContainer(ctx, cmd, func(container *app.Container, input string) error {
					useCase, err := container.ConversionUseCase()
					if err != nil {
						return err
					}
					return commands.RunInspect(
						ctx,
						useCase,
						container.Logger(),
						commands.WriterIO(cmd.Root().Writer),
						input,
						cmd.String("format"),
					)
				})
			},
		},
	}
}

// withNumeralContainer builds a container for a one-shot command and passes it the single
// positional argument. Logs go to stderr so stdout only carries the result.
func withNumeralContainer(
	ctx context.Context,
	cmd *cli.Command,
	run func(container *app.Container, input string) error,
) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one numeral argument, got %d", cmd.Args().Len())
	}

	cfg := config.Load()
	cfg.MetricsEnabled = false

	container := app.NewContainer(cfg)
	container.SetLogOutput(os.Stderr)
	defer func() { _ = container.Shutdown(ctx) }()

	return run(container, cmd.Args().First())
}
