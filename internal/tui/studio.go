package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/B1NYL/Promp-E-sub000/internal/aiclient"
	"github.com/B1NYL/Promp-E-sub000/internal/engine"
)

// RunStudio opens the interactive stage workflow. Mouse input draws on the
// canvas; the keyboard edits the stage's prompt text.
func RunStudio(ctx context.Context, svc *engine.Service, ai *aiclient.Client, out io.Writer) error {
	m := newStudioModel(ctx, svc, ai)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
