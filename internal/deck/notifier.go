package deck

import (
	"log/slog"
)

// NoticeKind identifies a user-facing notice.
type NoticeKind int

const (
	// NoticeItemLiked fires on every right swipe.
	NoticeItemLiked NoticeKind = iota
	// NoticeDeckExhausted fires when the last card has been decided.
	NoticeDeckExhausted
	// NoticeCheckout carries the cart summary.
	NoticeCheckout
	// NoticeDeckReset fires when the deck has been dealt again.
	NoticeDeckReset
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeItemLiked:
		return "item_liked"
	case NoticeDeckExhausted:
		return "deck_exhausted"
	case NoticeCheckout:
		return "checkout"
	case NoticeDeckReset:
		return "deck_reset"
	default:
		return "unknown"
	}
}

// Notice is a discrete event for the notification sink.
type Notice struct {
	ItemName string
	Total    float64
	Count    int
	Kind     NoticeKind
}

// Notifier renders notices. Implementations must not call back into the Controller synchronously.
type Notifier interface {
	Notify(n Notice)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(n Notice)

// Notify implements Notifier.
func (f NotifierFunc) Notify(n Notice) {
	f(n)
}

type nopNotifier struct{}

func (nopNotifier) Notify(Notice) {}

// ChannelNotifier forwards notices into a buffered channel. When the buffer is
// full the notice is dropped rather than blocking the deck.
type ChannelNotifier struct {
	ch chan Notice
}

// NewChannelNotifier creates a notifier with the given buffer size.
func NewChannelNotifier(size int) *ChannelNotifier {
	if size <= 0 {
		size = 16
	}
	return &ChannelNotifier{ch: make(chan Notice, size)}
}

// Notify implements Notifier.
func (c *ChannelNotifier) Notify(n Notice) {
	select {
	case c.ch <- n:
	default:
		slog.Debug("Dropping notice, channel full", "kind", n.Kind.String())
	}
}

// C returns the receive side of the channel.
func (c *ChannelNotifier) C() <-chan Notice {
	return c.ch
}

// LogNotifier writes notices to a slog logger.
type LogNotifier struct {
	Logger *slog.Logger
}

// Notify implements Notifier.
func (l LogNotifier) Notify(n Notice) {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("Deck notice",
		"kind", n.Kind.String(),
		"item", n.ItemName,
		"count", n.Count,
		"total", n.Total)
}

// MultiNotifier fans a notice out to several sinks in order.
type MultiNotifier []Notifier

// Notify implements Notifier.
func (m MultiNotifier) Notify(n Notice) {
	for _, notifier := range m {
		if notifier != nil {
			notifier.Notify(n)
		}
	}
}
