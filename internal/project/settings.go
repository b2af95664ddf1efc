package project

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jschwab/lcdshot/internal/domain"
	"github.com/jschwab/lcdshot/internal/logger"
)

// settingsFile wraps domain.Settings with the schema tag written to
// standalone .lcd_settings files.
type settingsFile struct {
	Schema string `json:"schema"`
	domain.Settings
}

// SaveSettings writes display settings to a .lcd_settings file,
// enforcing the suffix. Returns the path actually written.
func SaveSettings(path string, settings domain.Settings) (string, error) {
	path = withExtension(path, SettingsExtension)

	data, err := json.MarshalIndent(settingsFile{
		Schema:   domain.SettingsSchema,
		Settings: settings,
	}, "", "  ")
	if err != nil {
		logger.LogError("MARSHAL_SETTINGS", path, err)
		return "", fmt.Errorf("failed to marshal settings: %w", err)
	}

	logger.LogFileWrite(path)
	if err := os.WriteFile(path, data, 0644); err != nil {
		logger.LogError("SAVE_SETTINGS", path, err)
		return "", fmt.Errorf("failed to write settings: %w", err)
	}

	return path, nil
}

// LoadSettings reads a .lcd_settings file. Missing fields fall back to
// the defaults and the schema field is not validated.
func LoadSettings(path string) (domain.Settings, error) {
	logger.LogFileOpen(path)
	data, err := os.ReadFile(path)
	if err != nil {
		logger.LogError("LOAD_SETTINGS", path, err)
		return domain.Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}

	out := settingsFile{Settings: domain.DefaultSettings()}
	if err := json.Unmarshal(data, &out); err != nil {
		logger.LogError("UNMARSHAL_SETTINGS", path, err)
		return domain.Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}

	if out.Rows <= 0 {
		out.Rows = domain.DefaultRows
	}
	if out.Cols <= 0 {
		out.Cols = domain.DefaultCols
	}
	return out.Settings, nil
}
