package domain

import "context"

// Renderer is the remote render service. The lcdapi package provides
// the HTTP implementation.
type Renderer interface {
	Init(ctx context.Context) error

	RenderLCD(ctx context.Context, lines []string) (string, error)

	SaveScreenshot(ctx context.Context, svg string) error
}
