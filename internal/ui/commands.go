package ui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jschwab/lcdshot/internal/domain"
	"github.com/jschwab/lcdshot/internal/lcdapi"
	"github.com/jschwab/lcdshot/internal/logger"
	"github.com/jschwab/lcdshot/internal/project"
)

// scheduleRefresh arms the quiet-period timer for the current edit
// generation. Ticks from older generations are ignored in Update, so a
// burst of keystrokes produces exactly one render.
func (m *Model) scheduleRefresh() tea.Cmd {
	m.editGen++
	gen := m.editGen

	return tea.Tick(m.quiet, func(time.Time) tea.Msg {
		return refreshTickMsg{gen: gen}
	})
}

// startRender snapshots the editor and issues a render immediately,
// invalidating any pending quiet-period tick.
func (m *Model) startRender() tea.Cmd {
	m.editGen++
	m.renderSeq++
	seq := m.renderSeq
	lines := domain.SplitLines(m.editor.Value())

	return m.renderPreview(seq, lines)
}

func (m Model) renderPreview(seq uint64, lines []string) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		svg, err := m.renderer.RenderLCD(context.Background(), lines)
		if err != nil {
			return errMsg{op: "refresh", err: err}
		}
		logger.LogRender(seq, len(lines), len(svg), time.Since(start))
		return previewRenderedMsg{seq: seq, lines: len(lines), svg: svg}
	}
}

func (m Model) initService() tea.Cmd {
	return func() tea.Msg {
		if err := m.renderer.Init(context.Background()); err != nil {
			return errMsg{op: "init", err: err}
		}
		return initDoneMsg{}
	}
}

func (m Model) saveScreenshot(svg string) tea.Cmd {
	return func() tea.Msg {
		err := m.renderer.SaveScreenshot(context.Background(), svg)
		switch {
		case errors.Is(err, lcdapi.ErrSaveCanceled):
			return saveCanceledMsg{}
		case err != nil:
			return errMsg{op: "screenshot", err: err}
		}
		return screenshotSavedMsg{}
	}
}

func (m Model) loadProjectCmd(path string) tea.Cmd {
	return func() tea.Msg {
		proj, err := project.Load(path)
		if err != nil {
			return errMsg{op: "open", err: err}
		}
		return projectLoadedMsg{path: path, proj: proj}
	}
}

func (m Model) saveProjectCmd(path string) tea.Cmd {
	// The save runs off the event loop, so it gets its own copy; edits
	// made while the file is being written stay out of it.
	proj := m.proj.Clone()
	return func() tea.Msg {
		written, err := project.Save(path, proj)
		if err != nil {
			return errMsg{op: "write", err: err}
		}
		return projectSavedMsg{path: written}
	}
}
