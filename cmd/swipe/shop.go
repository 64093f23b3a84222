package main

import (
	"log/slog"

	"github.com/Veraticus/swipe-grocery/internal/common"
	"github.com/Veraticus/swipe-grocery/internal/deck"
	"github.com/Veraticus/swipe-grocery/internal/tui"
	"github.com/Veraticus/swipe-grocery/internal/tui/themes"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func shopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Swipe through the grocery deck",
		Long: `Open the swipe deck in the terminal.

Drag the top card with the mouse, or use ←/h to pass and →/l to like.
Liked items go to the cart panel, where x removes them again and c checks out.
When every card has been decided the deck is shuffled back in.`,
		RunE: runShop,
	}

	cmd.Flags().String("catalog", "", "catalog source (builtin, sqlite)")
	cmd.Flags().String("theme", "", "color theme (default, catppuccin-mocha)")
	cmd.Flags().Bool("no-mouse", false, "disable mouse dragging")
	cmd.Flags().Bool("record", false, "record every frame to a temp directory for debugging")

	_ = viper.BindPFlag("catalog.source", cmd.Flags().Lookup("catalog"))
	_ = viper.BindPFlag("tui.theme", cmd.Flags().Lookup("theme"))

	return cmd
}

func runShop(cmd *cobra.Command, _ []string) error {
	noMouse, _ := cmd.Flags().GetBool("no-mouse")
	record, _ := cmd.Flags().GetBool("record")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := slog.Default()
	ctx := common.WithLogger(cmd.Context(), logger)

	source, cleanup, err := openSource(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	logger.Info("Starting swipe session",
		"catalog", cfg.Catalog.Source,
		"commit_threshold", cfg.Gesture.CommitThreshold,
		"animation", cfg.Gesture.AnimationDuration)

	err = tui.Run(ctx,
		tui.WithSource(source),
		tui.WithGesture(cfg.Gesture),
		tui.WithTheme(themes.GetTheme(cfg.TUI.Theme)),
		tui.WithCellSize(cfg.TUI.CellWidth, cfg.TUI.CellHeight),
		tui.WithVisibleCards(cfg.Deck.VisibleCards),
		tui.WithMouse(!noMouse),
		tui.WithRecording(record),
		tui.WithNotifier(deck.LogNotifier{Logger: logger}),
		tui.WithDeckOptions(
			deck.WithExhaustionDelay(cfg.Deck.ExhaustionDelay),
			deck.WithResetTimeout(cfg.Deck.ResetTimeout),
			deck.WithLogger(logger),
		),
	)
	if err != nil {
		common.LogError(err, "Swipe session failed", common.Fields{"catalog": cfg.Catalog.Source})
	}
	return err
}
