package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jschwab/lcdshot/internal/logger"
)

type LogsViewModel struct {
	width  int
	height int
	offset int
	active bool
	logs   []logger.LogEntry
}

func NewLogsView() *LogsViewModel {
	return &LogsViewModel{
		active: false,
		offset: 0,
	}
}

func (m *LogsViewModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Activate snapshots the session log and scrolls to the newest entry.
func (m *LogsViewModel) Activate() {
	m.active = true
	m.logs = logger.GetLogs()
	m.offset = m.maxOffset()
}

func (m *LogsViewModel) Deactivate() {
	m.active = false
	m.offset = 0
}

func (m *LogsViewModel) IsActive() bool {
	return m.active
}

func (m *LogsViewModel) visibleLines() int {
	return m.height - 8
}

func (m *LogsViewModel) maxOffset() int {
	max := len(m.logs) - m.visibleLines()
	if max < 0 {
		max = 0
	}
	return max
}

func (m *LogsViewModel) clampOffset() {
	if m.offset < 0 {
		m.offset = 0
	}
	if max := m.maxOffset(); m.offset > max {
		m.offset = max
	}
}

func (m *LogsViewModel) Update(msg tea.Msg) tea.Cmd {
	if !m.active {
		return nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			m.offset--
		case "down", "j":
			m.offset++
		case "pgup":
			m.offset -= m.visibleLines()
		case "pgdown":
			m.offset += m.visibleLines()
		case "g", "home":
			m.offset = 0
		case "G", "end":
			m.offset = m.maxOffset()
		}
		m.clampOffset()
	}

	return nil
}

func logColor(message string) string {
	switch {
	case strings.Contains(message, "[ERROR]"):
		return "#EF4444"
	case strings.Contains(message, "[HTTP]"):
		return "#3B82F6"
	case strings.Contains(message, "[RENDER]"):
		return "#84CC16"
	case strings.Contains(message, "[FILE_WRITE]"):
		return "#F59E0B"
	case strings.Contains(message, "[FILE_OPEN]"):
		return "#10B981"
	default:
		return "#E5E7EB"
	}
}

func (m *LogsViewModel) View() string {
	if !m.active {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#84CC16")).
		Bold(true).
		Padding(1, 0)

	b.WriteString(titleStyle.Render(fmt.Sprintf("Session Logs (%d entries)", len(m.logs))))
	b.WriteString("\n\n")

	if len(m.logs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")).
			Italic(true)
		b.WriteString(emptyStyle.Render("No logs yet"))
	} else {
		start := m.offset
		end := start + m.visibleLines()
		if end > len(m.logs) {
			end = len(m.logs)
		}

		for i := start; i < end; i++ {
			entry := m.logs[i]
			timestamp := entry.Timestamp.Format("15:04:05.000")

			lineStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(logColor(entry.Message)))
			b.WriteString(lineStyle.Render(fmt.Sprintf("[%s] %s", timestamp, entry.Message)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6B7280")).
		Italic(true)

	scrollInfo := ""
	if len(m.logs) > m.visibleLines() {
		scrollInfo = fmt.Sprintf(" | Showing %d-%d of %d", m.offset+1, m.offset+m.visibleLines(), len(m.logs))
	}

	help := fmt.Sprintf("j/k: Scroll | PgUp/PgDn: Page | g/G: Top/Bottom | Esc: Close%s", scrollInfo)
	b.WriteString(helpStyle.Render(help))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#84CC16")).
		Padding(1, 2).
		Width(m.width - 4)

	return boxStyle.Render(b.String())
}
