package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type StatusLevel int

const (
	StatusInfo StatusLevel = iota
	StatusSuccess
	StatusError
)

// StatusBarModel is the one-line reporter at the bottom of the screen.
// Every outcome lands here as a message; nothing in the UI blocks on it.
type StatusBarModel struct {
	width   int
	message string
	level   StatusLevel
}

func NewStatusBar() *StatusBarModel {
	return &StatusBarModel{}
}

func (m *StatusBarModel) SetWidth(width int) {
	m.width = width
}

func (m *StatusBarModel) SetMessage(message string, level StatusLevel) {
	m.message = message
	m.level = level
}

func (m *StatusBarModel) Message() string {
	return m.message
}

func (m *StatusBarModel) Level() StatusLevel {
	return m.level
}

func (m *StatusBarModel) ClearMessage() {
	m.message = ""
	m.level = StatusInfo
}

func (m *StatusBarModel) View() string {
	content := " " + m.message

	if m.width >= 3 && lipgloss.Width(content) > m.width {
		runes := []rune(content)
		if len(runes) > m.width-3 {
			runes = runes[:m.width-3]
		}
		content = string(runes) + "..."
	} else if lipgloss.Width(content) < m.width {
		padding := m.width - lipgloss.Width(content)
		content += strings.Repeat(" ", padding)
	}

	bgColor := lipgloss.Color("#374151")
	switch m.level {
	case StatusSuccess:
		bgColor = lipgloss.Color("#3F6212")
	case StatusError:
		bgColor = lipgloss.Color("#991B1B")
	}

	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#F9FAFB")).
		Background(bgColor).
		Width(m.width)

	return style.Render(content)
}
