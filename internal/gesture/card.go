package gesture

import (
	"sync"

	"github.com/Veraticus/swipe-grocery/internal/clock"
	"github.com/Veraticus/swipe-grocery/internal/model"
)

// DecideFunc receives the decision of a committed card.
type DecideFunc func(direction model.Direction)

// View is a render snapshot of a card.
type View struct {
	Offset    Point
	Hint      model.Direction
	Committed model.Direction
	Rotation  float64
	State     State
	Active    bool
}

// Card binds a Tracker to the item it shows, the deck callback and the
// settle timer. Card is safe for use from timer goroutines.
type Card struct {
	sched     clock.Scheduler
	timer     clock.Timer
	tracker   *Tracker
	onDecide  DecideFunc
	onSettled func()
	item      model.Item
	mu        sync.Mutex
	disposed  bool
}

// CardOption configures a Card.
type CardOption func(*Card)

// WithSettledHook registers fn to run after the exit animation completes.
func WithSettledHook(fn func()) CardOption {
	return func(c *Card) {
		c.onSettled = fn
	}
}

// NewCard creates the active card for item.
func NewCard(item model.Item, cfg Config, sched clock.Scheduler, onDecide DecideFunc, opts ...CardOption) *Card {
	if sched == nil {
		sched = clock.Real{}
	}
	c := &Card{
		item:     item,
		tracker:  NewTracker(cfg),
		sched:    sched,
		onDecide: onDecide,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Item returns the item on the card.
func (c *Card) Item() model.Item {
	return c.item
}

// Handle routes an input event to the tracker. A commit reports the decision
// immediately and schedules the settle after the animation duration.
func (c *Card) Handle(ev Event) Result {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return Result{}
	}
	res := c.tracker.Handle(ev)
	if res.Settle != 0 {
		token := res.Settle
		c.timer = c.sched.AfterFunc(c.tracker.Config().AnimationDuration, func() {
			c.settle(token)
		})
	}
	onDecide := c.onDecide
	c.mu.Unlock()

	if res.Committed() && onDecide != nil {
		onDecide(res.Decision)
	}
	return res
}

// Press is shorthand for an explicit pass/like button.
func (c *Card) Press(direction model.Direction) Result {
	return c.Handle(Event{Kind: ButtonPress, Direction: direction})
}

// SetActive forwards to the tracker.
func (c *Card) SetActive(active bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tracker.SetActive(active)
}

// View returns a render snapshot.
func (c *Card) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return View{
		State:     c.tracker.State(),
		Offset:    c.tracker.Offset(),
		Hint:      c.tracker.Hint(),
		Committed: c.tracker.Committed(),
		Rotation:  c.tracker.Rotation(),
		Active:    c.tracker.Active(),
	}
}

// Dispose stops the settle timer. Later events and timer callbacks are ignored.
func (c *Card) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disposed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Card) settle(token uint64) {
	c.mu.Lock()
	if c.disposed || !c.tracker.Settle(token) {
		c.mu.Unlock()
		return
	}
	// A committed card has left the deck and takes no further input.
	c.tracker.SetActive(false)
	c.timer = nil
	hook := c.onSettled
	c.mu.Unlock()

	if hook != nil {
		hook()
	}
}
