// Package watch re-renders a text file through the render service
// whenever it changes on disk.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jschwab/lcdshot/internal/debounce"
	"github.com/jschwab/lcdshot/internal/domain"
	"github.com/jschwab/lcdshot/internal/logger"
)

// Runner watches one input file and writes the rendered SVG to one
// output path. Editors tend to save in bursts (write, truncate,
// rename), so events are debounced and the file is re-read only when
// the burst settles.
type Runner struct {
	renderer domain.Renderer
	input    string
	output   string
	quiet    time.Duration

	// OnRender and OnError observe outcomes when set. Render errors
	// never stop the loop.
	OnRender func(output string, size int, elapsed time.Duration)
	OnError  func(err error)
}

func NewRunner(renderer domain.Renderer, input, output string, quiet time.Duration) *Runner {
	return &Runner{
		renderer: renderer,
		input:    input,
		output:   output,
		quiet:    quiet,
	}
}

// Run renders once immediately, then on every settled change of the
// input file until ctx is canceled.
func (r *Runner) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the parent directory. A watch on the file itself is lost
	// when an editor replaces the file on save.
	dir := filepath.Dir(r.input)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	deb := debounce.New(r.quiet)
	defer deb.Stop()

	base := filepath.Base(r.input)
	logger.Log("Watching %s (quiet period %v)", r.input, r.quiet)

	r.renderOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			deb.Schedule(func() { r.renderOnce(ctx) })
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.reportError(fmt.Errorf("watcher error: %w", err))
		}
	}
}

func (r *Runner) renderOnce(ctx context.Context) {
	data, err := os.ReadFile(r.input)
	if err != nil {
		r.reportError(fmt.Errorf("failed to read %s: %w", r.input, err))
		return
	}

	start := time.Now()
	svg, err := r.renderer.RenderLCD(ctx, domain.SplitFileText(data))
	if err != nil {
		r.reportError(fmt.Errorf("render failed: %w", err))
		return
	}

	logger.LogFileWrite(r.output)
	if err := os.WriteFile(r.output, []byte(svg), 0644); err != nil {
		r.reportError(fmt.Errorf("failed to write %s: %w", r.output, err))
		return
	}

	if r.OnRender != nil {
		r.OnRender(r.output, len(svg), time.Since(start))
	}
}

func (r *Runner) reportError(err error) {
	logger.LogError("WATCH", r.input, err)
	if r.OnError != nil {
		r.OnError(err)
	}
}
