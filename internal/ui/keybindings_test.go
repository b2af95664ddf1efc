package ui

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jschwab/lcdshot/internal/lcdapi"
	"github.com/jschwab/lcdshot/internal/ui/components"
)

func modelWithTwoInputs(t *testing.T) Model {
	t.Helper()

	stub := &stubRenderer{svg: "<svg/>"}
	m := NewModel(stub, testConfig())

	m.proj.Inputs[0].Text = "FIRST"
	m.proj.AddInput("Second")
	m.proj.Active().Text = "SECOND"
	m.proj.ActiveInput = 0
	m.applyActiveInput()
	return m
}

func TestRegistry_SwitchInputByIndex(t *testing.T) {
	m := modelWithTwoInputs(t)

	m, cmd := m.registry.ExecuteCommand(m, "input", []string{"2"})
	if cmd == nil {
		t.Fatal("Expected input switch to start a render")
	}
	if m.proj.ActiveInput != 1 {
		t.Errorf("Expected active input 1, got %d", m.proj.ActiveInput)
	}
	if m.editor.Value() != "SECOND" {
		t.Errorf("Expected editor to show the second input, got %q", m.editor.Value())
	}
}

func TestRegistry_SwitchInputByName(t *testing.T) {
	m := modelWithTwoInputs(t)

	m, cmd := m.registry.ExecuteCommand(m, "input", []string{"Second"})
	if cmd == nil {
		t.Fatal("Expected input switch to start a render")
	}
	if m.proj.ActiveInput != 1 {
		t.Errorf("Expected active input 1, got %d", m.proj.ActiveInput)
	}
}

func TestRegistry_SwitchInputKeepsEdits(t *testing.T) {
	m := modelWithTwoInputs(t)

	m.editor.SetValue("FIRST EDITED")
	m, _ = m.registry.ExecuteCommand(m, "input", []string{"2"})

	if m.proj.Inputs[0].Text != "FIRST EDITED" {
		t.Errorf("Expected edits synced before the switch, got %q", m.proj.Inputs[0].Text)
	}
}

func TestRegistry_SwitchInputOutOfRange(t *testing.T) {
	m := modelWithTwoInputs(t)

	m, cmd := m.registry.ExecuteCommand(m, "input", []string{"9"})
	if cmd != nil {
		t.Error("Expected no render for an out of range input")
	}
	if m.statusBar.Level() != components.StatusError {
		t.Error("Expected error level status")
	}
	if m.proj.ActiveInput != 0 {
		t.Errorf("Expected active input unchanged, got %d", m.proj.ActiveInput)
	}
}

func TestRegistry_AddInput(t *testing.T) {
	m := modelWithTwoInputs(t)

	m, cmd := m.registry.ExecuteCommand(m, "input", []string{"add", "Scrolling", "Demo"})
	if cmd == nil {
		t.Fatal("Expected add to start a render")
	}
	if len(m.proj.Inputs) != 3 {
		t.Fatalf("Expected 3 inputs, got %d", len(m.proj.Inputs))
	}
	if m.proj.Active().Name != "Scrolling Demo" {
		t.Errorf("Expected new input active, got %q", m.proj.Active().Name)
	}
	if !m.dirty {
		t.Error("Expected add to mark the project dirty")
	}
}

func TestRegistry_RenameInput(t *testing.T) {
	m := modelWithTwoInputs(t)

	m, _ = m.registry.ExecuteCommand(m, "input", []string{"rename", "Boot", "Screen"})
	if m.proj.Active().Name != "Boot Screen" {
		t.Errorf("Expected renamed input, got %q", m.proj.Active().Name)
	}
}

func TestRegistry_RemoveInput(t *testing.T) {
	m := modelWithTwoInputs(t)
	m.proj.ActiveInput = 1
	m.applyActiveInput()

	m, cmd := m.registry.ExecuteCommand(m, "input", []string{"remove"})
	if cmd == nil {
		t.Fatal("Expected remove to start a render")
	}
	if len(m.proj.Inputs) != 1 {
		t.Fatalf("Expected 1 input left, got %d", len(m.proj.Inputs))
	}
	if m.proj.ActiveInput != 0 {
		t.Errorf("Expected the previous input active, got %d", m.proj.ActiveInput)
	}
	if m.editor.Value() != "FIRST" {
		t.Errorf("Expected editor to show the remaining input, got %q", m.editor.Value())
	}
	if !m.dirty {
		t.Error("Expected remove to mark the project dirty")
	}
}

func TestRegistry_RemoveFirstInputActivatesNext(t *testing.T) {
	m := modelWithTwoInputs(t)

	m, _ = m.registry.ExecuteCommand(m, "input", []string{"remove"})
	if len(m.proj.Inputs) != 1 {
		t.Fatalf("Expected 1 input left, got %d", len(m.proj.Inputs))
	}
	if m.proj.ActiveInput != 0 {
		t.Errorf("Expected active index clamped to 0, got %d", m.proj.ActiveInput)
	}
	if m.editor.Value() != "SECOND" {
		t.Errorf("Expected the former second input to remain, got %q", m.editor.Value())
	}
}

func TestRegistry_RemoveLastInputRefused(t *testing.T) {
	stub := &stubRenderer{svg: "<svg/>"}
	m := NewModel(stub, testConfig())

	m, cmd := m.registry.ExecuteCommand(m, "input", []string{"remove"})
	if cmd != nil {
		t.Error("Expected no render when removal is refused")
	}
	if len(m.proj.Inputs) != 1 {
		t.Fatalf("Expected the last input kept, got %d", len(m.proj.Inputs))
	}
	if m.statusBar.Level() != components.StatusError {
		t.Error("Expected error level status")
	}
}

func TestRegistry_ServerCommandRebuildsClient(t *testing.T) {
	m := modelWithTwoInputs(t)

	m, cmd := m.registry.ExecuteCommand(m, "server", []string{"http://10.0.0.2:5000"})
	if cmd == nil {
		t.Fatal("Expected server switch to re-init the service")
	}
	if m.cfg.Server.BaseURL != "http://10.0.0.2:5000" {
		t.Errorf("Expected config updated, got %q", m.cfg.Server.BaseURL)
	}
	if _, ok := m.renderer.(*lcdapi.Client); !ok {
		t.Errorf("Expected an lcdapi client, got %T", m.renderer)
	}
}

func TestRegistry_SettingsRoundTrip(t *testing.T) {
	m := modelWithTwoInputs(t)
	path := filepath.Join(t.TempDir(), "panel.lcd_settings")

	m.proj.Settings.Rows = 2
	m.proj.Settings.Cols = 16
	m, _ = m.registry.ExecuteCommand(m, "settings", []string{"save", path})
	if m.statusBar.Level() != components.StatusSuccess {
		t.Fatalf("Expected save to succeed, got %q", m.statusBar.Message())
	}

	m.proj.Settings.Rows = 4
	m.proj.Settings.Cols = 20
	m, _ = m.registry.ExecuteCommand(m, "settings", []string{"load", path})
	if m.proj.Settings.Rows != 2 || m.proj.Settings.Cols != 16 {
		t.Errorf("Expected 2x16 after load, got %dx%d", m.proj.Settings.Rows, m.proj.Settings.Cols)
	}
	if !m.dirty {
		t.Error("Expected loaded settings to mark the project dirty")
	}
}

func TestRegistry_SettingsBadSubcommand(t *testing.T) {
	m := modelWithTwoInputs(t)

	m, cmd := m.registry.ExecuteCommand(m, "settings", []string{"frob", "x"})
	if cmd != nil {
		t.Error("Expected no command for a bad subcommand")
	}
	if m.statusBar.Level() != components.StatusError {
		t.Error("Expected error level status")
	}
}

func TestRegistry_UnknownCommand(t *testing.T) {
	m := modelWithTwoInputs(t)

	m, cmd := m.registry.ExecuteCommand(m, "frobnicate", nil)
	if cmd != nil {
		t.Error("Expected no command for an unknown name")
	}
	if m.statusBar.Level() != components.StatusError {
		t.Error("Expected error level status")
	}
	if !strings.Contains(m.statusBar.Message(), "frobnicate") {
		t.Errorf("Expected message to name the command, got %q", m.statusBar.Message())
	}
}

func TestRegistry_QuitAlias(t *testing.T) {
	m := modelWithTwoInputs(t)

	_, cmd := m.registry.ExecuteCommand(m, "q", nil)
	if cmd == nil {
		t.Fatal("Expected q to quit")
	}
}

func TestRegistry_ShortcutsParseable(t *testing.T) {
	m := modelWithTwoInputs(t)

	shortcuts := m.registry.Shortcuts()
	if len(shortcuts) == 0 {
		t.Fatal("Expected at least one shortcut")
	}

	for _, s := range shortcuts {
		if !strings.HasPrefix(s, "<") || !strings.Contains(s, "> ") {
			t.Errorf("Expected \"<key> description\" format, got %q", s)
		}
	}
}
