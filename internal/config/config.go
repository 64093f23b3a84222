package config

import (
	"fmt"
	"time"

	"github.com/Veraticus/swipe-grocery/internal/common"
	"github.com/Veraticus/swipe-grocery/internal/deck"
	"github.com/Veraticus/swipe-grocery/internal/gesture"
	"github.com/spf13/viper"
)

// Catalog sources.
const (
	SourceBuiltin = "builtin"
	SourceSQLite  = "sqlite"
)

// Config is the typed application configuration.
type Config struct {
	Logging LoggingConfig
	Catalog CatalogConfig
	TUI     TUIConfig
	Deck    DeckConfig
	Gesture gesture.Config
}

// LoggingConfig controls slog output.
type LoggingConfig struct {
	Level  string
	Format string
	File   string
}

// CatalogConfig selects where deck items come from.
type CatalogConfig struct {
	Source       string
	DatabasePath string
}

// DeckConfig tunes the deck controller.
type DeckConfig struct {
	ExhaustionDelay time.Duration
	ResetTimeout    time.Duration
	VisibleCards    int
}

// TUIConfig tunes the terminal interface.
type TUIConfig struct {
	Theme      string
	CellWidth  int
	CellHeight int
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file", "")

	v.SetDefault("catalog.source", SourceBuiltin)
	v.SetDefault("database.path", "~/.local/share/swipe/catalog.db")

	v.SetDefault("gesture.commit_threshold", gesture.DefaultCommitThreshold)
	v.SetDefault("gesture.hint_threshold", gesture.DefaultHintThreshold)
	v.SetDefault("gesture.rotation_factor", gesture.DefaultRotationFactor)
	v.SetDefault("gesture.animation", gesture.DefaultAnimationDuration)

	v.SetDefault("deck.exhaustion_delay", deck.DefaultExhaustionDelay)
	v.SetDefault("deck.reset_timeout", deck.DefaultResetTimeout)
	v.SetDefault("deck.visible_cards", 3)

	v.SetDefault("tui.theme", "default")
	v.SetDefault("tui.cell_width", 8)
	v.SetDefault("tui.cell_height", 16)
}

// Load builds a Config from v. Defaults are registered first so a bare viper works.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	cfg := &Config{
		Logging: LoggingConfig{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
			File:   ExpandPath(v.GetString("logging.file")),
		},
		Catalog: CatalogConfig{
			Source:       v.GetString("catalog.source"),
			DatabasePath: ExpandPath(v.GetString("database.path")),
		},
		Gesture: gesture.Config{
			CommitThreshold:   v.GetFloat64("gesture.commit_threshold"),
			HintThreshold:     v.GetFloat64("gesture.hint_threshold"),
			RotationFactor:    v.GetFloat64("gesture.rotation_factor"),
			AnimationDuration: v.GetDuration("gesture.animation"),
		},
		Deck: DeckConfig{
			ExhaustionDelay: v.GetDuration("deck.exhaustion_delay"),
			ResetTimeout:    v.GetDuration("deck.reset_timeout"),
			VisibleCards:    v.GetInt("deck.visible_cards"),
		},
		TUI: TUIConfig{
			Theme:      v.GetString("tui.theme"),
			CellWidth:  v.GetInt("tui.cell_width"),
			CellHeight: v.GetInt("tui.cell_height"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if _, err := common.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log format %q", common.ErrInvalidConfig, c.Logging.Format)
	}

	switch c.Catalog.Source {
	case SourceBuiltin:
	case SourceSQLite:
		if c.Catalog.DatabasePath == "" {
			return fmt.Errorf("%w: database.path is required for the sqlite catalog", common.ErrMissingConfig)
		}
	default:
		return fmt.Errorf("%w: catalog source %q", common.ErrInvalidConfig, c.Catalog.Source)
	}

	g := c.Gesture
	if g.CommitThreshold <= 0 {
		return fmt.Errorf("%w: gesture.commit_threshold must be positive", common.ErrInvalidConfig)
	}
	if g.HintThreshold < 0 || g.HintThreshold > g.CommitThreshold {
		return fmt.Errorf("%w: gesture.hint_threshold must be between 0 and the commit threshold", common.ErrInvalidConfig)
	}
	if g.AnimationDuration < 0 {
		return fmt.Errorf("%w: gesture.animation cannot be negative", common.ErrInvalidConfig)
	}

	if c.Deck.ExhaustionDelay < 0 {
		return fmt.Errorf("%w: deck.exhaustion_delay cannot be negative", common.ErrInvalidConfig)
	}
	if c.Deck.VisibleCards < 1 {
		return fmt.Errorf("%w: deck.visible_cards must be at least 1", common.ErrInvalidConfig)
	}

	if c.TUI.CellWidth <= 0 || c.TUI.CellHeight <= 0 {
		return fmt.Errorf("%w: tui cell size must be positive", common.ErrInvalidConfig)
	}
	return nil
}
