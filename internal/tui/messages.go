package tui

import (
	"time"

	"github.com/Veraticus/swipe-grocery/internal/deck"
)

// Data loading messages.
type deckLoadedMsg struct {
	err        error
	controller *deck.Controller
}

// Deck notices forwarded from the notifier channel.
type noticeMsg struct {
	notice deck.Notice
}

// frameMsg drives the exit animation of a committed card.
type frameMsg time.Time

// statusExpiredMsg clears the status line if it is still showing notice seq.
type statusExpiredMsg struct {
	seq int
}

// Error handling.
type errorMsg struct {
	err     error
	context string
}
