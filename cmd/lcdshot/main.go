package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jschwab/lcdshot/internal/config"
	"github.com/jschwab/lcdshot/internal/lcdapi"
	"github.com/jschwab/lcdshot/internal/logger"
)

type rootFlags struct {
	configPath string
	server     string
	token      string
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		color.Red("✗ %v", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	var projectPath string

	root := &cobra.Command{
		Use:           "lcdshot",
		Short:         "Live LCD screenshot tool for a render server",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(flags, projectPath)
		},
	}

	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default ~/.lcdshot/config.yaml)")
	root.PersistentFlags().StringVar(&flags.server, "server", "", "render server URL (overrides config)")
	root.PersistentFlags().StringVar(&flags.token, "token", "", "auth token (overrides config)")
	root.Flags().StringVarP(&projectPath, "project", "p", "", "project file to open")

	root.AddCommand(newRenderCmd(flags))
	root.AddCommand(newSaveCmd(flags))
	root.AddCommand(newConfigCmd(flags))
	root.AddCommand(newVersionCmd())

	return root
}

// setup loads the config, applies flag overrides, starts the session
// log, and builds the API client the subcommands share.
func setup(flags *rootFlags) (config.Config, *lcdapi.Client, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return cfg, nil, err
	}

	if flags.server != "" {
		cfg.Server.BaseURL = flags.server
	}
	if flags.token != "" {
		cfg.Server.Token = flags.token
	}

	if err := logger.Init(cfg.Logging.File); err != nil {
		color.Yellow("⚠ %v (file logging disabled)", err)
	}

	client := lcdapi.New(cfg.Server.BaseURL, lcdapi.StaticTokens(cfg.Server.Token),
		lcdapi.WithLogging(cfg.Logging.HTTP))

	return cfg, client, nil
}
