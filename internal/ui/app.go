package ui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jschwab/lcdshot/internal/config"
	"github.com/jschwab/lcdshot/internal/domain"
	"github.com/jschwab/lcdshot/internal/lcdapi"
	"github.com/jschwab/lcdshot/internal/logger"
	"github.com/jschwab/lcdshot/internal/ui/components"
	"github.com/jschwab/lcdshot/internal/ui/views"
)

// Model is the single place UI state changes. Renders run as commands
// off the event loop; their results come back as messages carrying the
// sequence number they were issued under, and anything stale is dropped.
type Model struct {
	width  int
	height int

	topBar     *components.TopBarModel
	statusBar  *components.StatusBarModel
	commandBar *components.CommandBarModel
	editor     *views.EditorViewModel
	preview    *views.PreviewViewModel
	logsView   *views.LogsViewModel

	renderer domain.Renderer
	cfg      config.Config
	quiet    time.Duration

	proj        *domain.Project
	projectPath string
	dirty       bool

	// editGen invalidates quiet-period ticks from superseded edits.
	// renderSeq orders in-flight renders; only the newest may land.
	editGen   uint64
	renderSeq uint64

	registry *CommandRegistry
}

func NewModel(renderer domain.Renderer, cfg config.Config) Model {
	m := Model{
		topBar:     components.NewTopBar(),
		statusBar:  components.NewStatusBar(),
		commandBar: components.NewCommandBar(),
		editor:     views.NewEditorView(),
		preview:    views.NewPreviewView(),
		logsView:   views.NewLogsView(),
		renderer:   renderer,
		cfg:        cfg,
		quiet:      cfg.QuietPeriod(),
		proj:       domain.NewProject(),
		registry:   NewCommandRegistry(),
	}

	m.topBar.SetServer(cfg.Server.BaseURL)
	m.topBar.SetView("Editor")
	m.topBar.SetShortcuts(m.registry.Shortcuts())
	m.applyActiveInput()
	m.refreshTopBar()
	m.statusBar.SetMessage("Ready", components.StatusInfo)

	return m
}

// WithProject replaces the unsaved default with a project loaded before
// the program started.
func (m Model) WithProject(proj *domain.Project, path string) Model {
	m.proj = proj
	m.projectPath = path
	m.dirty = false
	m.applyActiveInput()
	m.refreshTopBar()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.initService()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.topBar.SetWidth(msg.Width)
		m.statusBar.SetWidth(msg.Width)
		m.commandBar.SetWidth(msg.Width)
		m.editor.SetSize(msg.Width, msg.Height)
		m.preview.SetSize(msg.Width, msg.Height)
		m.logsView.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		key := msg.String()

		if m.commandBar.IsActive() {
			switch key {
			case "enter":
				return m.handleCommand()
			case "esc":
				m.commandBar.Deactivate()
				return m, nil
			default:
				cmd = m.commandBar.Update(msg)
				return m, cmd
			}
		}

		if m.logsView.IsActive() {
			switch key {
			case "esc", "q":
				m.logsView.Deactivate()
				m.topBar.SetView("Editor")
				return m, nil
			}
			cmd = m.logsView.Update(msg)
			return m, cmd
		}

		if nm, cmd, handled := m.registry.HandleKey(m, key); handled {
			return nm, cmd
		}

		// The editor never pages, so these scroll the preview.
		switch key {
		case "pgup", "pgdown":
			cmd = m.preview.Update(msg)
			return m, cmd
		}

	case refreshTickMsg:
		if msg.gen != m.editGen {
			return m, nil
		}
		cmd = m.startRender()
		return m, cmd

	case previewRenderedMsg:
		if msg.seq != m.renderSeq {
			logger.Log("Discarding stale render seq=%d (current %d)", msg.seq, m.renderSeq)
			return m, nil
		}
		m.preview.SetContent(msg.svg)
		m.statusBar.SetMessage(fmt.Sprintf("Preview updated: %d lines, %d bytes", msg.lines, len(msg.svg)), components.StatusInfo)
		return m, nil

	case initDoneMsg:
		logger.Log("Render service ready at %s", m.cfg.Server.BaseURL)
		m.statusBar.SetMessage(fmt.Sprintf("Connected to %s", m.cfg.Server.BaseURL), components.StatusSuccess)
		cmd = m.startRender()
		return m, cmd

	case screenshotSavedMsg:
		m.statusBar.SetMessage("Screenshot saved", components.StatusSuccess)
		return m, nil

	case saveCanceledMsg:
		m.statusBar.SetMessage("Screenshot save canceled", components.StatusInfo)
		return m, nil

	case projectLoadedMsg:
		m.proj = msg.proj
		m.projectPath = msg.path
		m.dirty = false
		m.applyActiveInput()
		m.refreshTopBar()
		m.statusBar.SetMessage(fmt.Sprintf("Opened %s", msg.path), components.StatusSuccess)
		cmd = m.startRender()
		return m, cmd

	case projectSavedMsg:
		m.projectPath = msg.path
		m.dirty = false
		m.refreshTopBar()
		m.statusBar.SetMessage(fmt.Sprintf("Project saved to %s", msg.path), components.StatusSuccess)
		return m, nil

	case errMsg:
		logger.LogError("UI", msg.op, msg.err)
		m.statusBar.SetMessage(fmt.Sprintf("%s failed: %v", msg.op, msg.err), components.StatusError)
		return m, nil
	}

	if m.logsView.IsActive() {
		cmd = m.logsView.Update(msg)
		return m, cmd
	}

	before := m.editor.Value()
	cmd = m.editor.Update(msg)
	cmds = append(cmds, cmd)

	if m.editor.Value() != before {
		m.dirty = true
		m.refreshTopBar()
		cmds = append(cmds, m.scheduleRefresh())
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	if m.logsView.IsActive() {
		content = m.logsView.View()
	} else {
		content = m.editor.View() + "\n" + m.preview.View()
	}

	bottomBar := m.statusBar.View()
	if commandView := m.commandBar.View(); commandView != "" {
		bottomBar = commandView
	}

	return m.topBar.View() + "\n" + content + "\n" + bottomBar
}

func (m Model) handleCommand() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(strings.TrimPrefix(m.commandBar.Value(), ":"))
	m.commandBar.Deactivate()

	if input == "" {
		return m, nil
	}

	logger.Log("UI: executing command %q", input)

	fields := strings.Fields(input)
	nm, cmd := m.registry.ExecuteCommand(m, fields[0], fields[1:])
	return nm, cmd
}

func (m Model) createRenderer(baseURL string) domain.Renderer {
	return lcdapi.New(baseURL, lcdapi.StaticTokens(m.cfg.Server.Token),
		lcdapi.WithLogging(m.cfg.Logging.HTTP))
}

// syncActiveInput copies the editor text back into the active input so
// project saves and input switches see what is on screen.
func (m *Model) syncActiveInput() {
	m.proj.Active().Text = m.editor.Value()
}

func (m *Model) applyActiveInput() {
	m.editor.SetValue(m.proj.Active().Text)
}

func (m *Model) refreshTopBar() {
	name := ""
	if m.projectPath != "" {
		name = filepath.Base(m.projectPath)
	}
	m.topBar.SetProject(name, m.dirty)
	m.topBar.SetDisplay(m.proj.Settings.Rows, m.proj.Settings.Cols)
	m.topBar.SetInput(m.proj.Active().Name, m.proj.ActiveInput+1, len(m.proj.Inputs))
}

type refreshTickMsg struct {
	gen uint64
}

type previewRenderedMsg struct {
	seq   uint64
	lines int
	svg   string
}

type initDoneMsg struct{}

type screenshotSavedMsg struct{}

type saveCanceledMsg struct{}

type projectLoadedMsg struct {
	path string
	proj *domain.Project
}

type projectSavedMsg struct {
	path string
}

type errMsg struct {
	op  string
	err error
}
