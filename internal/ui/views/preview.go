package views

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PreviewViewModel shows the markup of the most recent render. Content
// set before the first resize is kept and applied once a size arrives.
type PreviewViewModel struct {
	viewport   viewport.Model
	content    string
	renderedAt time.Time
	width      int
	height     int
}

func NewPreviewView() *PreviewViewModel {
	vp := viewport.New(0, 0)

	return &PreviewViewModel{
		viewport: vp,
	}
}

func (m *PreviewViewModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width - 8

	vpHeight := height - 21
	if vpHeight < 3 {
		vpHeight = 3
	}
	m.viewport.Height = vpHeight

	if m.content != "" {
		m.viewport.SetContent(m.content)
	}
}

// SetContent replaces the preview wholesale with the given markup.
func (m *PreviewViewModel) SetContent(svg string) {
	m.content = svg
	m.renderedAt = time.Now()

	if m.width > 0 {
		m.viewport.SetContent(svg)
		m.viewport.GotoTop()
	}
}

func (m *PreviewViewModel) Content() string {
	return m.content
}

func (m *PreviewViewModel) HasContent() bool {
	return m.content != ""
}

func (m *PreviewViewModel) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

func (m *PreviewViewModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#84CC16")).
		Bold(true)

	title := titleStyle.Render("Preview")

	var body string
	if m.content == "" {
		body = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")).
			Italic(true).
			Render("Nothing rendered yet")
	} else {
		body = m.viewport.View()
	}

	footer := ""
	if m.content != "" {
		footer = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")).
			Render(fmt.Sprintf("%d bytes, rendered %s", len(m.content), m.renderedAt.Format("15:04:05")))
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#374151")).
		Padding(0, 2).
		Width(m.width - 4)

	content := title + "\n" + body
	if footer != "" {
		content += "\n" + footer
	}

	return boxStyle.Render(content)
}
