package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jschwab/lcdshot/internal/domain"
	"github.com/jschwab/lcdshot/internal/logger"
	"github.com/jschwab/lcdshot/internal/watch"
)

func newRenderCmd(flags *rootFlags) *cobra.Command {
	var output string
	var watchMode bool

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render display text to SVG markup",
		Long: `Render reads display text from a file (or stdin) and prints the SVG
the render server produced. With --watch it keeps watching the file
and re-renders after each change settles.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, client, err := setup(flags)
			if err != nil {
				return err
			}
			defer logger.Close()

			if watchMode {
				if len(args) == 0 {
					return fmt.Errorf("--watch needs an input file")
				}
				if output == "" {
					return fmt.Errorf("--watch needs --output")
				}
				return runWatch(client, args[0], output, cfg.QuietPeriod())
			}

			var data []byte
			if len(args) == 1 {
				data, err = os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
			} else {
				data, err = io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
			}

			svg, err := client.RenderLCD(cmd.Context(), domain.SplitFileText(data))
			if err != nil {
				return err
			}

			if output == "" {
				fmt.Fprintln(cmd.OutOrStdout(), svg)
				return nil
			}

			if err := os.WriteFile(output, []byte(svg), 0644); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			color.Green("✓ wrote %s (%d bytes)", output, len(svg))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the SVG to this file instead of stdout")
	cmd.Flags().BoolVar(&watchMode, "watch", false, "re-render whenever the input file changes")

	return cmd
}

func runWatch(renderer domain.Renderer, input, output string, quiet time.Duration) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := watch.NewRunner(renderer, input, output, quiet)
	runner.OnRender = func(path string, size int, elapsed time.Duration) {
		color.Green("✓ %s (%d bytes, %v)", path, size, elapsed)
	}
	runner.OnError = func(err error) {
		color.Red("✗ %v", err)
	}

	color.Cyan("Watching %s, writing %s (ctrl+c to stop)", input, output)
	return runner.Run(ctx)
}
