package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jschwab/lcdshot/internal/project"
	"github.com/jschwab/lcdshot/internal/ui/components"
)

type KeyBinding struct {
	Keys        []string
	Description string
	Handler     func(Model) (Model, tea.Cmd)
}

type Command struct {
	Name    string
	Aliases []string
	Usage   string
	Handler func(Model, []string) (Model, tea.Cmd)
}

// CommandRegistry maps global shortcuts and ":" commands to handlers.
// Keys the registry does not claim fall through to the text editor.
type CommandRegistry struct {
	bindings []KeyBinding
	commands []Command
}

func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		bindings: []KeyBinding{
			{Keys: []string{"esc"}, Description: "command bar", Handler: handleCommandBarKey},
			{Keys: []string{"ctrl+r"}, Description: "refresh preview", Handler: handleRefreshKey},
			{Keys: []string{"ctrl+s"}, Description: "save screenshot", Handler: handleScreenshotKey},
			{Keys: []string{"ctrl+t"}, Description: "next input", Handler: handleNextInputKey},
			{Keys: []string{"ctrl+l"}, Description: "session logs", Handler: handleLogsKey},
			{Keys: []string{"ctrl+c"}, Description: "quit", Handler: handleQuitKey},
		},
		commands: []Command{
			{Name: "quit", Aliases: []string{"q"}, Usage: "quit", Handler: cmdQuit},
			{Name: "open", Aliases: []string{"o"}, Usage: "open <path>", Handler: cmdOpen},
			{Name: "write", Aliases: []string{"w"}, Usage: "write [path]", Handler: cmdWrite},
			{Name: "input", Usage: "input <n|name> | input add [name] | input rename <name> | input remove", Handler: cmdInput},
			{Name: "settings", Usage: "settings save|load <path>", Handler: cmdSettings},
			{Name: "server", Usage: "server <url>", Handler: cmdServer},
			{Name: "logs", Usage: "logs", Handler: cmdLogs},
			{Name: "help", Aliases: []string{"h"}, Usage: "help", Handler: cmdHelp},
		},
	}
}

func (r *CommandRegistry) HandleKey(m Model, key string) (Model, tea.Cmd, bool) {
	for _, binding := range r.bindings {
		for _, k := range binding.Keys {
			if k == key {
				nm, cmd := binding.Handler(m)
				return nm, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *CommandRegistry) ExecuteCommand(m Model, name string, args []string) (Model, tea.Cmd) {
	for _, c := range r.commands {
		if c.Name == name || containsString(c.Aliases, name) {
			return c.Handler(m, args)
		}
	}

	m.statusBar.SetMessage(fmt.Sprintf("Unknown command: %s", name), components.StatusError)
	return m, nil
}

// Shortcuts returns the key bindings as "<key> description" strings for
// the top bar.
func (r *CommandRegistry) Shortcuts() []string {
	shortcuts := make([]string, 0, len(r.bindings))
	for _, binding := range r.bindings {
		shortcuts = append(shortcuts, fmt.Sprintf("<%s> %s", binding.Keys[0], binding.Description))
	}
	return shortcuts
}

func (r *CommandRegistry) commandSummary() string {
	names := make([]string, 0, len(r.commands))
	for _, c := range r.commands {
		names = append(names, c.Name)
	}
	return strings.Join(names, ", ")
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func handleCommandBarKey(m Model) (Model, tea.Cmd) {
	m.commandBar.Activate()
	return m, nil
}

func handleRefreshKey(m Model) (Model, tea.Cmd) {
	cmd := m.startRender()
	m.statusBar.SetMessage("Rendering...", components.StatusInfo)
	return m, cmd
}

func handleScreenshotKey(m Model) (Model, tea.Cmd) {
	if !m.preview.HasContent() {
		m.statusBar.SetMessage("Nothing rendered yet", components.StatusError)
		return m, nil
	}
	return m, m.saveScreenshot(m.preview.Content())
}

func handleNextInputKey(m Model) (Model, tea.Cmd) {
	if len(m.proj.Inputs) < 2 {
		m.statusBar.SetMessage("Only one input", components.StatusInfo)
		return m, nil
	}

	m.syncActiveInput()
	m.proj.ActiveInput = (m.proj.ActiveInput + 1) % len(m.proj.Inputs)
	m.applyActiveInput()
	m.refreshTopBar()

	cmd := m.startRender()
	return m, cmd
}

func handleLogsKey(m Model) (Model, tea.Cmd) {
	m.logsView.Activate()
	m.topBar.SetView("Logs")
	return m, nil
}

func handleQuitKey(m Model) (Model, tea.Cmd) {
	return m, tea.Quit
}

func cmdQuit(m Model, args []string) (Model, tea.Cmd) {
	return m, tea.Quit
}

func cmdOpen(m Model, args []string) (Model, tea.Cmd) {
	if len(args) == 0 {
		m.statusBar.SetMessage("Usage: open <path>", components.StatusError)
		return m, nil
	}
	return m, m.loadProjectCmd(strings.Join(args, " "))
}

func cmdWrite(m Model, args []string) (Model, tea.Cmd) {
	m.syncActiveInput()

	path := m.projectPath
	if len(args) > 0 {
		path = strings.Join(args, " ")
	}
	if path == "" {
		m.statusBar.SetMessage("No project path yet. Usage: write <path>", components.StatusError)
		return m, nil
	}
	return m, m.saveProjectCmd(path)
}

func cmdInput(m Model, args []string) (Model, tea.Cmd) {
	if len(args) == 0 {
		m.statusBar.SetMessage("Usage: input <n|name> | input add [name] | input rename <name> | input remove", components.StatusError)
		return m, nil
	}

	switch args[0] {
	case "add":
		name := strings.Join(args[1:], " ")
		if name == "" {
			name = fmt.Sprintf("Input %d", len(m.proj.Inputs)+1)
		}
		m.syncActiveInput()
		m.proj.AddInput(name)
		m.applyActiveInput()
		m.refreshTopBar()
		m.dirty = true
		m.statusBar.SetMessage(fmt.Sprintf("Added input %q", name), components.StatusSuccess)

		cmd := m.startRender()
		return m, cmd

	case "rename":
		name := strings.Join(args[1:], " ")
		if name == "" {
			m.statusBar.SetMessage("Usage: input rename <name>", components.StatusError)
			return m, nil
		}
		m.proj.Active().Name = name
		m.refreshTopBar()
		m.dirty = true
		m.statusBar.SetMessage(fmt.Sprintf("Renamed input to %q", name), components.StatusSuccess)
		return m, nil

	case "remove":
		removed := m.proj.Active().Name
		if !m.proj.RemoveActive() {
			m.statusBar.SetMessage("Cannot remove the last input", components.StatusError)
			return m, nil
		}
		m.applyActiveInput()
		m.refreshTopBar()
		m.dirty = true
		m.statusBar.SetMessage(fmt.Sprintf("Removed input %q", removed), components.StatusSuccess)

		cmd := m.startRender()
		return m, cmd
	}

	target := strings.Join(args, " ")
	if n, err := strconv.Atoi(target); err == nil {
		if n < 1 || n > len(m.proj.Inputs) {
			m.statusBar.SetMessage(fmt.Sprintf("No input %d (have %d)", n, len(m.proj.Inputs)), components.StatusError)
			return m, nil
		}
		m.syncActiveInput()
		m.proj.ActiveInput = n - 1
	} else {
		m.syncActiveInput()
		if !m.proj.SelectByName(target) {
			m.statusBar.SetMessage(fmt.Sprintf("No input named %q", target), components.StatusError)
			return m, nil
		}
	}

	m.applyActiveInput()
	m.refreshTopBar()

	cmd := m.startRender()
	return m, cmd
}

func cmdSettings(m Model, args []string) (Model, tea.Cmd) {
	if len(args) != 2 {
		m.statusBar.SetMessage("Usage: settings save|load <path>", components.StatusError)
		return m, nil
	}

	switch args[0] {
	case "save":
		written, err := project.SaveSettings(args[1], m.proj.Settings)
		if err != nil {
			m.statusBar.SetMessage(fmt.Sprintf("settings failed: %v", err), components.StatusError)
			return m, nil
		}
		m.statusBar.SetMessage(fmt.Sprintf("Settings saved to %s", written), components.StatusSuccess)
		return m, nil

	case "load":
		settings, err := project.LoadSettings(args[1])
		if err != nil {
			m.statusBar.SetMessage(fmt.Sprintf("settings failed: %v", err), components.StatusError)
			return m, nil
		}
		m.proj.Settings = settings
		m.dirty = true
		m.refreshTopBar()
		m.statusBar.SetMessage(fmt.Sprintf("Settings loaded from %s", args[1]), components.StatusSuccess)
		return m, nil
	}

	m.statusBar.SetMessage("Usage: settings save|load <path>", components.StatusError)
	return m, nil
}

func cmdServer(m Model, args []string) (Model, tea.Cmd) {
	if len(args) != 1 {
		m.statusBar.SetMessage("Usage: server <url>", components.StatusError)
		return m, nil
	}

	url := args[0]
	m.cfg.Server.BaseURL = url
	m.renderer = m.createRenderer(url)
	m.topBar.SetServer(url)
	m.statusBar.SetMessage(fmt.Sprintf("Server set to %s", url), components.StatusInfo)
	return m, m.initService()
}

func cmdLogs(m Model, args []string) (Model, tea.Cmd) {
	return handleLogsKey(m)
}

func cmdHelp(m Model, args []string) (Model, tea.Cmd) {
	m.statusBar.SetMessage("Commands: "+m.registry.commandSummary(), components.StatusInfo)
	return m, nil
}
