package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/Veraticus/swipe-grocery/internal/deck"
	tea "github.com/charmbracelet/bubbletea"
)

// frameInterval paces the exit animation at 30fps.
const frameInterval = time.Second / 30

// loadDeck deals the deck from the configured catalog.
func (m Model) loadDeck() tea.Cmd {
	cfg := m.config
	parent := m.ctx
	notifier := deck.MultiNotifier{m.notices, cfg.Notifier}

	return func() tea.Msg {
		if cfg.Source == nil {
			return deckLoadedMsg{err: fmt.Errorf("catalog not configured")}
		}

		ctx, cancel := context.WithTimeout(parent, 30*time.Second)
		defer cancel()

		opts := []deck.Option{deck.WithNotifier(notifier)}
		if cfg.Scheduler != nil {
			opts = append(opts, deck.WithScheduler(cfg.Scheduler))
		}
		opts = append(opts, cfg.DeckOptions...)

		controller, err := deck.New(ctx, cfg.Source, opts...)
		if err != nil {
			return deckLoadedMsg{err: err}
		}
		return deckLoadedMsg{controller: controller}
	}
}

// waitForNotice blocks until the deck emits the next notice.
func (m Model) waitForNotice() tea.Cmd {
	ch := m.notices.C()
	done := m.ctx.Done()
	return func() tea.Msg {
		select {
		case n := <-ch:
			return noticeMsg{notice: n}
		case <-done:
			return nil
		}
	}
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func expireStatus(seq int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}

func checkoutMessage(n deck.Notice) string {
	noun := "items"
	if n.Count == 1 {
		noun = "item"
	}
	return fmt.Sprintf("Proceeding to checkout with %d %s ($%.2f)", n.Count, noun, n.Total)
}
