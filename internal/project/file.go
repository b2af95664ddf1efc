package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jschwab/lcdshot/internal/domain"
	"github.com/jschwab/lcdshot/internal/logger"
)

const (
	Extension         = ".lcd_project"
	SettingsExtension = ".lcd_settings"
)

// Load reads a .lcd_project file. Loaded projects are normalized:
// missing inputs are replaced with a single empty one and the active
// index is clamped into range.
func Load(path string) (*domain.Project, error) {
	logger.LogFileOpen(path)
	data, err := os.ReadFile(path)
	if err != nil {
		logger.LogError("LOAD_PROJECT", path, err)
		return nil, fmt.Errorf("failed to read project: %w", err)
	}

	// Start from defaults so fields absent from the file keep sensible
	// values instead of zeroes.
	proj := domain.NewProject()
	if err := json.Unmarshal(data, proj); err != nil {
		logger.LogError("UNMARSHAL_PROJECT", path, err)
		return nil, fmt.Errorf("failed to parse project: %w", err)
	}
	proj.Normalize()

	logger.Log("Project loaded from %s (%d inputs)", path, len(proj.Inputs))
	return proj, nil
}

// Save writes the project to path, enforcing the .lcd_project suffix.
// Returns the path actually written.
func Save(path string, proj *domain.Project) (string, error) {
	path = withExtension(path, Extension)

	data, err := json.MarshalIndent(proj, "", "  ")
	if err != nil {
		logger.LogError("MARSHAL_PROJECT", path, err)
		return "", fmt.Errorf("failed to marshal project: %w", err)
	}

	logger.LogFileWrite(path)
	if err := os.WriteFile(path, data, 0644); err != nil {
		logger.LogError("SAVE_PROJECT", path, err)
		return "", fmt.Errorf("failed to write project: %w", err)
	}

	logger.Log("Project saved to %s", path)
	return path, nil
}

// withExtension swaps any existing suffix for the wanted one, so
// "demo.txt" becomes "demo.lcd_project" rather than gaining a second
// suffix.
func withExtension(path, ext string) string {
	if strings.HasSuffix(path, ext) {
		return path
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
