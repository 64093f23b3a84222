package tui

import (
	"github.com/Veraticus/swipe-grocery/internal/catalog"
	"github.com/Veraticus/swipe-grocery/internal/clock"
	"github.com/Veraticus/swipe-grocery/internal/deck"
	"github.com/Veraticus/swipe-grocery/internal/gesture"
	"github.com/Veraticus/swipe-grocery/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme        themes.Theme
	Source       catalog.Source
	Scheduler    clock.Scheduler
	Notifier     deck.Notifier
	DeckOptions  []deck.Option
	Gesture      gesture.Config
	Width        int
	Height       int
	CellWidth    int
	CellHeight   int
	VisibleCards int
	MouseSupport bool
	Record       bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:        themes.Default,
		Source:       catalog.Default(),
		Gesture:      gesture.DefaultConfig(),
		Width:        100,
		Height:       30,
		CellWidth:    8,
		CellHeight:   16,
		VisibleCards: 3,
		MouseSupport: true,
	}
}

// WithSource sets the catalog the deck is dealt from.
func WithSource(source catalog.Source) Option {
	return func(c *Config) {
		c.Source = source
	}
}

// WithScheduler sets the clock used for deck and card timers.
func WithScheduler(sched clock.Scheduler) Option {
	return func(c *Config) {
		c.Scheduler = sched
	}
}

// WithNotifier adds a sink that receives deck notices alongside the TUI.
func WithNotifier(n deck.Notifier) Option {
	return func(c *Config) {
		c.Notifier = n
	}
}

// WithDeckOptions passes extra options to the deck controller.
func WithDeckOptions(opts ...deck.Option) Option {
	return func(c *Config) {
		c.DeckOptions = append(c.DeckOptions, opts...)
	}
}

// WithGesture sets the swipe thresholds.
func WithGesture(cfg gesture.Config) Option {
	return func(c *Config) {
		c.Gesture = cfg
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithCellSize sets how many pixels one terminal cell stands for.
func WithCellSize(width, height int) Option {
	return func(c *Config) {
		if width > 0 {
			c.CellWidth = width
		}
		if height > 0 {
			c.CellHeight = height
		}
	}
}

// WithVisibleCards sets how many cards of the stack are drawn.
func WithVisibleCards(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.VisibleCards = n
		}
	}
}

// WithMouse enables or disables mouse dragging.
func WithMouse(enabled bool) Option {
	return func(c *Config) {
		c.MouseSupport = enabled
	}
}

// WithRecording enables the frame recorder.
func WithRecording(enabled bool) Option {
	return func(c *Config) {
		c.Record = enabled
	}
}
