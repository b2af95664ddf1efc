package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jschwab/lcdshot/internal/logger"
	"github.com/jschwab/lcdshot/internal/project"
	"github.com/jschwab/lcdshot/internal/ui"
)

func runTUI(flags *rootFlags, projectPath string) error {
	cfg, client, err := setup(flags)
	if err != nil {
		return err
	}
	defer logger.Close()

	model := ui.NewModel(client, cfg)

	if projectPath != "" {
		proj, err := project.Load(projectPath)
		if err != nil {
			return fmt.Errorf("failed to open project: %w", err)
		}
		model = model.WithProject(proj, projectPath)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run UI: %w", err)
	}
	return nil
}
