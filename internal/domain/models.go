package domain

import "strings"

const (
	SettingsSchema = "lcd_settings_v1"

	DefaultRows = 4
	DefaultCols = 20
)

// Colors are CSS color strings passed through to the SVG verbatim.
type Style struct {
	Background   string `json:"background"`
	Frame        string `json:"frame"`
	PixelOn      string `json:"pixel_on"`
	PixelOff     string `json:"pixel_off"`
	BorderRadius int    `json:"border_radius"`
	Padding      int    `json:"padding"`
	PixelSize    int    `json:"pixel_size"`
	PixelGap     int    `json:"pixel_gap"`
	CharGap      int    `json:"char_gap"`
	RowGap       int    `json:"row_gap"`
	FrameWidth   int    `json:"frame_width"`
}

type Settings struct {
	Rows  int   `json:"rows"`
	Cols  int   `json:"cols"`
	Style Style `json:"style"`
}

type Input struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// CustomChars maps glyph codes to 8-row bitmap patterns referenced from
// input text via backslash escapes.
type Project struct {
	Settings    Settings         `json:"settings"`
	CustomChars map[int][]string `json:"custom_chars"`
	Inputs      []Input          `json:"inputs"`
	ActiveInput int              `json:"active_input"`
}

func DefaultStyle() Style {
	return Style{
		Background:   "#d8f245",
		Frame:        "#000000",
		PixelOn:      "#141f14",
		PixelOff:     "#cde543",
		BorderRadius: 12,
		Padding:      16,
		PixelSize:    3,
		PixelGap:     1,
		CharGap:      4,
		RowGap:       10,
		FrameWidth:   8,
	}
}

func DefaultSettings() Settings {
	return Settings{
		Rows:  DefaultRows,
		Cols:  DefaultCols,
		Style: DefaultStyle(),
	}
}

func NewProject() *Project {
	return &Project{
		Settings:    DefaultSettings(),
		CustomChars: map[int][]string{},
		Inputs:      []Input{{Name: "Input 1", Text: ""}},
		ActiveInput: 0,
	}
}

// Normalize repairs a project loaded from disk: at least one input must
// exist and the active index must point at one of them.
func (p *Project) Normalize() {
	if p.CustomChars == nil {
		p.CustomChars = map[int][]string{}
	}
	if len(p.Inputs) == 0 {
		p.Inputs = []Input{{Name: "Input 1", Text: ""}}
	}
	if p.ActiveInput < 0 {
		p.ActiveInput = 0
	}
	if p.ActiveInput > len(p.Inputs)-1 {
		p.ActiveInput = len(p.Inputs) - 1
	}
	if p.Settings.Rows <= 0 {
		p.Settings.Rows = DefaultRows
	}
	if p.Settings.Cols <= 0 {
		p.Settings.Cols = DefaultCols
	}
}

func (p *Project) Active() *Input {
	return &p.Inputs[p.ActiveInput]
}

func (p *Project) SelectByName(name string) bool {
	for i := range p.Inputs {
		if p.Inputs[i].Name == name {
			p.ActiveInput = i
			return true
		}
	}
	return false
}

func (p *Project) AddInput(name string) {
	p.Inputs = append(p.Inputs, Input{Name: name, Text: ""})
	p.ActiveInput = len(p.Inputs) - 1
}

// RemoveActive drops the active input and activates the one before it.
// The last remaining input cannot be removed.
func (p *Project) RemoveActive() bool {
	if len(p.Inputs) < 2 {
		return false
	}
	idx := p.ActiveInput
	p.Inputs = append(p.Inputs[:idx], p.Inputs[idx+1:]...)
	p.ActiveInput = idx - 1
	if p.ActiveInput < 0 {
		p.ActiveInput = 0
	}
	return true
}

// Clone returns a copy sharing no mutable state with the original.
func (p *Project) Clone() *Project {
	c := *p
	c.CustomChars = make(map[int][]string, len(p.CustomChars))
	for code, rows := range p.CustomChars {
		c.CustomChars[code] = append([]string(nil), rows...)
	}
	c.Inputs = append([]Input(nil), p.Inputs...)
	return &c
}

// Lines splits the active input into display rows. Empty text still
// yields one blank row so a render request always carries a payload.
func (p *Project) Lines() []string {
	return SplitLines(p.Active().Text)
}

func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}

// SplitFileText converts file bytes to display rows, dropping the
// conventional trailing newline so "HI\n" is one row, not two.
func SplitFileText(data []byte) []string {
	text := strings.TrimSuffix(string(data), "\n")
	text = strings.TrimSuffix(text, "\r")
	return SplitLines(text)
}
