package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/Veraticus/swipe-grocery/internal/common"
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the swipe deck and blocks until the user quits or ctx is done.
func Run(ctx context.Context, opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == nil {
		return fmt.Errorf("catalog source is required")
	}

	// Best-effort terminal restore in case the program dies mid-frame.
	defer func() {
		_, _ = os.Stdout.Write([]byte("\033[?1003l")) // Disable mouse motion
		_, _ = os.Stdout.Write([]byte("\033[?25h"))   // Show cursor
		_, _ = os.Stdout.Write([]byte("\033[m"))      // Reset colors
	}()

	m := newModel(ctx, cfg)

	programOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}
	if cfg.MouseSupport {
		programOpts = append(programOpts, tea.WithMouseAllMotion())
	}

	p := tea.NewProgram(m, programOpts...)
	final, err := p.Run()

	if fm, ok := final.(Model); ok {
		m = fm
	}
	m.Close()

	if dir := m.recorder.Dir(); dir != "" {
		common.LoggerFrom(ctx).Info("Session recorded", "dir", dir)
	}

	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("TUI error: %w", err)
	}

	if m.deck == nil && m.lastError != nil {
		return fmt.Errorf("failed to load catalog: %w", m.lastError)
	}
	return nil
}
