// Package deck owns the ordered card deck, the cursor and the liked/disliked lists.
//
// All mutation is serialised by a mutex so that timer callbacks behave like
// events on a single UI thread. Notices are delivered after the lock is released.
package deck

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Veraticus/swipe-grocery/internal/catalog"
	"github.com/Veraticus/swipe-grocery/internal/clock"
	"github.com/Veraticus/swipe-grocery/internal/model"
	"github.com/Veraticus/swipe-grocery/internal/savings"
)

// DefaultExhaustionDelay is how long the end-of-deck state is shown before the deck is dealt again.
const DefaultExhaustionDelay = 1500 * time.Millisecond

// DefaultResetTimeout bounds a catalog reload triggered by the exhaustion timer.
const DefaultResetTimeout = 10 * time.Second

// Ticket identifies one card position in one deal of the deck. A decision
// made with a stale ticket is ignored.
type Ticket struct {
	Epoch    uint64
	Position int
}

// Snapshot is an immutable copy of the deck state.
type Snapshot struct {
	Items     []model.Item
	Liked     []model.Item
	Disliked  []model.Item
	Cursor    int
	Epoch     uint64
	Exhausted bool
}

// Len returns the number of items in the deck.
func (s Snapshot) Len() int {
	return len(s.Items)
}

// Current returns the item under the cursor.
func (s Snapshot) Current() (model.Item, bool) {
	if s.Cursor >= len(s.Items) {
		return model.Item{}, false
	}
	return s.Items[s.Cursor], true
}

// Remaining returns how many cards are left to decide.
func (s Snapshot) Remaining() int {
	return len(s.Items) - s.Cursor
}

// Savings returns the savings over the liked list.
func (s Snapshot) Savings() float64 {
	return savings.Total(s.Liked)
}

// Tier returns the loyalty tier for the liked list.
func (s Snapshot) Tier() savings.Status {
	return savings.TierFor(s.Savings())
}

// Controller is the deck state machine.
type Controller struct {
	source          catalog.Source
	sched           clock.Scheduler
	notifier        Notifier
	logger          *slog.Logger
	exhaustTimer    clock.Timer
	items           []model.Item
	liked           []model.Item
	disliked        []model.Item
	cursor          int
	epoch           uint64
	exhaustionDelay time.Duration
	resetTimeout    time.Duration
	mu              sync.Mutex
	closed          bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithScheduler sets the scheduler used for the exhaustion debounce.
func WithScheduler(s clock.Scheduler) Option {
	return func(c *Controller) {
		c.sched = s
	}
}

// WithNotifier sets the notification sink.
func WithNotifier(n Notifier) Option {
	return func(c *Controller) {
		c.notifier = n
	}
}

// WithExhaustionDelay overrides DefaultExhaustionDelay.
func WithExhaustionDelay(d time.Duration) Option {
	return func(c *Controller) {
		c.exhaustionDelay = d
	}
}

// WithResetTimeout overrides DefaultResetTimeout.
func WithResetTimeout(d time.Duration) Option {
	return func(c *Controller) {
		c.resetTimeout = d
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// New creates a controller and deals the first deck from source.
func New(ctx context.Context, source catalog.Source, opts ...Option) (*Controller, error) {
	if source == nil {
		return nil, fmt.Errorf("catalog source is required")
	}

	c := &Controller{
		source:          source,
		sched:           clock.Real{},
		notifier:        nopNotifier{},
		logger:          slog.Default(),
		exhaustionDelay: DefaultExhaustionDelay,
		resetTimeout:    DefaultResetTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.sched == nil {
		c.sched = clock.Real{}
	}
	if c.notifier == nil {
		c.notifier = nopNotifier{}
	}

	items, err := source.Items(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	c.items = items
	c.epoch = 1

	c.logger.Debug("Deck dealt", "items", len(items))
	return c, nil
}

// Ticket returns the ticket for the card under the cursor.
func (c *Controller) Ticket() Ticket {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Ticket{Epoch: c.epoch, Position: c.cursor}
}

// Decide consumes the item under the cursor. It is a no-op once the deck is exhausted.
func (c *Controller) Decide(direction model.Direction) bool {
	c.mu.Lock()
	ticket := Ticket{Epoch: c.epoch, Position: c.cursor}
	c.mu.Unlock()
	return c.DecideTicket(ticket, direction)
}

// DecideTicket consumes the item under the cursor if ticket still points at it.
// A second decision for the same ticket, a stale ticket from an earlier deal,
// or a decision past the end of the deck are ignored.
func (c *Controller) DecideTicket(ticket Ticket, direction model.Direction) bool {
	if !direction.IsDecision() {
		return false
	}

	c.mu.Lock()
	if c.closed || ticket.Epoch != c.epoch || ticket.Position != c.cursor || c.cursor >= len(c.items) {
		c.mu.Unlock()
		return false
	}

	item := c.items[c.cursor]
	var notices []Notice
	if direction == model.DirectionRight {
		c.liked = append(c.liked, item)
		notices = append(notices, Notice{Kind: NoticeItemLiked, ItemName: item.Name, Count: len(c.liked)})
	} else {
		c.disliked = append(c.disliked, item)
	}
	c.cursor++

	c.logger.Debug("Card decided",
		"item_id", item.ID,
		"direction", string(direction),
		"cursor", c.cursor)

	if c.cursor == len(c.items) {
		notices = append(notices, Notice{Kind: NoticeDeckExhausted, Count: len(c.items)})
		c.scheduleResetLocked()
	}
	notifier := c.notifier
	c.mu.Unlock()

	for _, n := range notices {
		notifier.Notify(n)
	}
	return true
}

// UndoLike removes the first liked item with id. The cursor and the disliked list are untouched.
func (c *Controller) UndoLike(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, item := range c.liked {
		if item.ID == id {
			c.liked = append(c.liked[:i:i], c.liked[i+1:]...)
			c.logger.Debug("Like removed", "item_id", id)
			return true
		}
	}
	return false
}

// Reset re-reads the catalog and rewinds the cursor. Decisions are kept.
// On error the current deck is left as it was.
func (c *Controller) Reset(ctx context.Context) error {
	items, err := c.source.Items(ctx)
	if err != nil {
		return fmt.Errorf("failed to reload catalog: %w", err)
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	if c.exhaustTimer != nil {
		c.exhaustTimer.Stop()
		c.exhaustTimer = nil
	}
	c.items = items
	c.cursor = 0
	c.epoch++
	notifier := c.notifier
	c.mu.Unlock()

	c.logger.Info("Deck reset", "items", len(items))
	notifier.Notify(Notice{Kind: NoticeDeckReset, Count: len(items)})
	return nil
}

// Checkout emits a cart summary notice. It is a no-op with an empty cart.
func (c *Controller) Checkout() bool {
	c.mu.Lock()
	if c.closed || len(c.liked) == 0 {
		c.mu.Unlock()
		return false
	}
	n := Notice{
		Kind:  NoticeCheckout,
		Count: len(c.liked),
		Total: savings.CartTotal(c.liked),
	}
	notifier := c.notifier
	c.mu.Unlock()

	notifier.Notify(n)
	return true
}

// Visible returns the card under the cursor followed by up to n-1 cards behind it.
func (c *Controller) Visible(n int) []model.Item {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n <= 0 || c.cursor >= len(c.items) {
		return nil
	}
	end := min(c.cursor+n, len(c.items))
	return append([]model.Item(nil), c.items[c.cursor:end]...)
}

// Exhausted reports whether every card has been decided.
func (c *Controller) Exhausted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.exhaustedLocked()
}

// Snapshot copies the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Snapshot{
		Items:     append([]model.Item(nil), c.items...),
		Liked:     append([]model.Item(nil), c.liked...),
		Disliked:  append([]model.Item(nil), c.disliked...),
		Cursor:    c.cursor,
		Epoch:     c.epoch,
		Exhausted: c.exhaustedLocked(),
	}
}

// Close stops pending timers. Later timer callbacks and decisions are ignored.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.exhaustTimer != nil {
		c.exhaustTimer.Stop()
		c.exhaustTimer = nil
	}
}

func (c *Controller) exhaustedLocked() bool {
	return len(c.items) > 0 && c.cursor >= len(c.items)
}

// scheduleResetLocked arms the exhaustion debounce. Caller holds mu.
func (c *Controller) scheduleResetLocked() {
	if c.exhaustTimer != nil {
		c.exhaustTimer.Stop()
	}
	epoch := c.epoch
	c.exhaustTimer = c.sched.AfterFunc(c.exhaustionDelay, func() {
		c.autoReset(epoch)
	})
}

func (c *Controller) autoReset(epoch uint64) {
	c.mu.Lock()
	if c.closed || c.epoch != epoch {
		c.mu.Unlock()
		return
	}
	c.exhaustTimer = nil
	timeout := c.resetTimeout
	c.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := c.Reset(ctx); err != nil {
		c.logger.Error("Automatic deck reset failed", "error", err)
	}
}
