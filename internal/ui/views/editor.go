package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// EditorViewModel holds the display text being edited. It is always
// focused; keys not claimed by a shortcut or the command bar land here.
type EditorViewModel struct {
	textarea textarea.Model
	width    int
	height   int
}

func NewEditorView() *EditorViewModel {
	ta := textarea.New()
	ta.Placeholder = "Type display text..."
	ta.CharLimit = 4096
	ta.ShowLineNumbers = false
	ta.Focus()

	return &EditorViewModel{
		textarea: ta,
	}
}

func (m *EditorViewModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.textarea.SetWidth(width - 8)
	m.textarea.SetHeight(5)
}

func (m *EditorViewModel) Value() string {
	return m.textarea.Value()
}

func (m *EditorViewModel) SetValue(value string) {
	m.textarea.SetValue(value)
}

func (m *EditorViewModel) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return cmd
}

func (m *EditorViewModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#84CC16")).
		Bold(true)

	b.WriteString(titleStyle.Render("Display Text"))
	b.WriteString("\n")
	b.WriteString(m.textarea.View())
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6B7280")).
		Italic(true)

	b.WriteString(helpStyle.Render("Esc: Commands | Ctrl+R: Refresh | Ctrl+S: Screenshot"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#84CC16")).
		Padding(0, 2).
		Width(m.width - 4)

	return boxStyle.Render(b.String())
}
