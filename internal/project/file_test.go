package project

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/jschwab/lcdshot/internal/domain"
)

func TestSaveAndLoadProject(t *testing.T) {
	tmpDir := t.TempDir()

	proj := domain.NewProject()
	proj.Inputs = []domain.Input{
		{Name: "Greeting", Text: "HELLO\nWORLD"},
		{Name: "Clock", Text: "12:34"},
	}
	proj.ActiveInput = 1
	proj.CustomChars = map[int][]string{
		0: {"00000", "01010", "01010", "00000", "10001", "01110", "00000", "00000"},
	}
	proj.Settings.Style.Background = "#112233"

	path, err := Save(filepath.Join(tmpDir, "demo"), proj)
	if err != nil {
		t.Fatalf("Failed to save project: %v", err)
	}
	if !strings.HasSuffix(path, Extension) {
		t.Errorf("Expected saved path to end in %s, got %s", Extension, path)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load project: %v", err)
	}

	if !reflect.DeepEqual(loaded, proj) {
		t.Errorf("Loaded project differs from saved one:\n got %+v\nwant %+v", loaded, proj)
	}
}

func TestSaveReplacesForeignExtension(t *testing.T) {
	tmpDir := t.TempDir()

	path, err := Save(filepath.Join(tmpDir, "demo.txt"), domain.NewProject())
	if err != nil {
		t.Fatalf("Failed to save project: %v", err)
	}

	if filepath.Base(path) != "demo"+Extension {
		t.Errorf("Expected demo%s, got %s", Extension, filepath.Base(path))
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected file at %s: %v", path, err)
	}
}

func TestLoadClampsActiveInput(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    int
	}{
		{
			name:    "index past the end",
			payload: `{"inputs":[{"name":"a","text":""},{"name":"b","text":""}],"active_input":99}`,
			want:    1,
		},
		{
			name:    "negative index",
			payload: `{"inputs":[{"name":"a","text":""}],"active_input":-3}`,
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "clamp"+Extension)
			if err := os.WriteFile(path, []byte(tt.payload), 0644); err != nil {
				t.Fatalf("Failed to write fixture: %v", err)
			}

			loaded, err := Load(path)
			if err != nil {
				t.Fatalf("Failed to load project: %v", err)
			}
			if loaded.ActiveInput != tt.want {
				t.Errorf("Expected active input %d, got %d", tt.want, loaded.ActiveInput)
			}
		})
	}
}

func TestLoadGuaranteesOneInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty"+Extension)
	if err := os.WriteFile(path, []byte(`{"inputs":[]}`), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load project: %v", err)
	}

	if len(loaded.Inputs) != 1 {
		t.Fatalf("Expected 1 input, got %d", len(loaded.Inputs))
	}
	if loaded.Inputs[0].Name != "Input 1" {
		t.Errorf("Expected default input name, got %s", loaded.Inputs[0].Name)
	}
	if loaded.ActiveInput != 0 {
		t.Errorf("Expected active input 0, got %d", loaded.ActiveInput)
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bare"+Extension)
	if err := os.WriteFile(path, []byte(`{}`), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load project: %v", err)
	}

	if loaded.Settings.Rows != domain.DefaultRows || loaded.Settings.Cols != domain.DefaultCols {
		t.Errorf("Expected %dx%d display, got %dx%d",
			domain.DefaultRows, domain.DefaultCols, loaded.Settings.Rows, loaded.Settings.Cols)
	}
	if loaded.Settings.Style.Background != domain.DefaultStyle().Background {
		t.Errorf("Expected default background, got %s", loaded.Settings.Style.Background)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"+Extension))
	if err == nil {
		t.Fatal("Expected an error for a missing project file")
	}
}
