package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jschwab/lcdshot/internal/config"
)

func newConfigCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the lcdshot config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			written, err := config.WriteDefault(flags.configPath, force)
			if err != nil {
				return err
			}
			color.Green("✓ wrote %s", written)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	cmd.AddCommand(initCmd)
	return cmd
}
