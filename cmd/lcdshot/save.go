package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jschwab/lcdshot/internal/lcdapi"
	"github.com/jschwab/lcdshot/internal/logger"
)

func newSaveCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "save <file.svg>",
		Short: "Send an SVG through the server's save dialog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, err := setup(flags)
			if err != nil {
				return err
			}
			defer logger.Close()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			err = client.SaveScreenshot(cmd.Context(), string(data))
			if errors.Is(err, lcdapi.ErrSaveCanceled) {
				color.Yellow("Save dialog was dismissed")
				return nil
			}
			if err != nil {
				return err
			}

			color.Green("✓ screenshot saved")
			return nil
		},
	}
}
