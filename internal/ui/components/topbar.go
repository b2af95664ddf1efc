package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type TopBarModel struct {
	width       int
	serverURL   string
	projectName string
	dirty       bool
	rows        int
	cols        int
	inputName   string
	inputIndex  int
	inputCount  int
	currentView string
	shortcuts   []string
}

var (
	titleStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleGreenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("190")).Bold(true)
	valueWhiteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	shortcutBlueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true)
	descGrayStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
)

func NewTopBar() *TopBarModel {
	return &TopBarModel{}
}

func (m *TopBarModel) SetWidth(width int) {
	m.width = width
}

func (m *TopBarModel) SetServer(url string) {
	m.serverURL = url
}

func (m *TopBarModel) SetProject(name string, dirty bool) {
	m.projectName = name
	m.dirty = dirty
}

func (m *TopBarModel) SetDisplay(rows, cols int) {
	m.rows = rows
	m.cols = cols
}

func (m *TopBarModel) SetInput(name string, index, count int) {
	m.inputName = name
	m.inputIndex = index
	m.inputCount = count
}

func (m *TopBarModel) SetView(view string) {
	m.currentView = view
}

func (m *TopBarModel) SetShortcuts(shortcuts []string) {
	m.shortcuts = shortcuts
}

func (m *TopBarModel) View() string {
	titleLine := titleGreenStyle.Render("lcdshot")

	contextLines := m.buildContextInfo()
	shortcutCol1, shortcutCol2, col1Width := m.buildShortcutsDisplay(len(contextLines))

	var topSection []string
	topSection = append(topSection, titleLine)
	topSection = append(topSection, "")

	const fixedRows = 5

	const contextColWidth = 45
	const colMargin = 4

	for i := 0; i < fixedRows; i++ {
		var contextCol, sc1, sc2 string

		if i < len(contextLines) {
			contextCol = contextLines[i]
		}

		if i < len(shortcutCol1) {
			sc1 = shortcutCol1[i]
		}

		if i < len(shortcutCol2) {
			sc2 = shortcutCol2[i]
		}

		contextVisible := lipgloss.Width(contextCol)
		padding1 := contextColWidth - contextVisible
		if padding1 < 0 {
			padding1 = 1
		}

		line := contextCol + strings.Repeat(" ", padding1) + sc1

		if sc2 != "" {
			sc1Visible := lipgloss.Width(sc1)
			padding2 := col1Width - sc1Visible + colMargin
			if padding2 < colMargin {
				padding2 = colMargin
			}
			line += strings.Repeat(" ", padding2) + sc2
		}

		topSection = append(topSection, line)
	}

	content := strings.Join(topSection, "\n")
	return titleStyle.Width(m.width).Render(content)
}

func (m *TopBarModel) buildContextInfo() []string {
	var lines []string

	server := m.serverURL
	if server == "" {
		server = "none"
	}
	if runes := []rune(server); len(runes) > 35 {
		server = string(runes[:32]) + "..."
	}
	lines = append(lines,
		"🖥️ "+
			titleGreenStyle.Render("Server: ")+
			valueWhiteStyle.Render(server))

	project := m.projectName
	if project == "" {
		project = "unsaved"
	}
	if m.dirty {
		project += " *"
	}
	lines = append(lines,
		"📁 "+
			titleGreenStyle.Render("Project: ")+
			valueWhiteStyle.Render(project))

	display := fmt.Sprintf("%dx%d", m.rows, m.cols)
	lines = append(lines,
		"📟 "+
			titleGreenStyle.Render("Display: ")+
			valueWhiteStyle.Render(display))

	input := m.inputName
	if input == "" {
		input = "none"
	}
	inputLine := "✏️ " +
		titleGreenStyle.Render("Input: ") +
		valueWhiteStyle.Render(input)
	if m.inputCount > 0 {
		inputLine += descGrayStyle.Render(fmt.Sprintf(" [%d/%d]", m.inputIndex, m.inputCount))
	}
	lines = append(lines, inputLine)

	viewName := m.currentView
	if viewName == "" {
		viewName = "Editor"
	}
	lines = append(lines,
		"🎯 "+
			titleGreenStyle.Render("View: ")+
			valueWhiteStyle.Render(viewName))

	return lines
}

func (m *TopBarModel) buildShortcutsDisplay(contextHeight int) ([]string, []string, int) {
	var formattedShortcuts []string
	maxWidth := 0

	for _, shortcut := range m.shortcuts {
		parts := strings.SplitN(shortcut, ">", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimPrefix(parts[0], "<")
		desc := strings.TrimSpace(parts[1])

		formatted := shortcutBlueStyle.Render("<"+key+">") + " " + descGrayStyle.Render(desc)
		formattedShortcuts = append(formattedShortcuts, formatted)

		width := lipgloss.Width(formatted)
		if width > maxWidth {
			maxWidth = width
		}
	}

	minRows := 5
	if contextHeight > minRows {
		minRows = contextHeight
	}

	var col1, col2 []string

	if len(formattedShortcuts) <= minRows {
		col1 = formattedShortcuts
	} else {
		col1 = formattedShortcuts[:minRows]
		col2 = formattedShortcuts[minRows:]
	}

	return col1, col2, maxWidth
}
