// Package gesture turns raw pointer and touch input on the active card into
// swipe decisions.
//
// Tracker is a pure state machine: Idle -> Dragging -> {Committing, Idle}.
// It never starts timers itself; a commit returns a settle token and the
// owner calls Settle once the exit animation has run. Card wires a Tracker
// to a clock.Scheduler for that.
package gesture

import (
	"math"
	"time"

	"github.com/Veraticus/swipe-grocery/internal/model"
)

// State is the tracker state.
type State int

const (
	// StateIdle has no pointer session.
	StateIdle State = iota
	// StateDragging follows a pointer that went down on the card.
	StateDragging
	// StateCommitting plays the exit animation; all input is ignored.
	StateCommitting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateCommitting:
		return "committing"
	default:
		return "unknown"
	}
}

// Defaults, in pixels and degrees.
const (
	DefaultCommitThreshold   = 100.0
	DefaultHintThreshold     = 50.0
	DefaultRotationFactor    = 0.1
	DefaultAnimationDuration = 500 * time.Millisecond
)

// Config holds the gesture thresholds.
type Config struct {
	// CommitThreshold is the minimum |dx| that turns a release into a decision.
	CommitThreshold float64
	// HintThreshold is the |dx| beyond which the live direction hint is shown.
	HintThreshold float64
	// RotationFactor converts dx into degrees of card tilt.
	RotationFactor    float64
	AnimationDuration time.Duration
}

// DefaultConfig returns the stock thresholds.
func DefaultConfig() Config {
	return Config{
		CommitThreshold:   DefaultCommitThreshold,
		HintThreshold:     DefaultHintThreshold,
		RotationFactor:    DefaultRotationFactor,
		AnimationDuration: DefaultAnimationDuration,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.CommitThreshold <= 0 {
		c.CommitThreshold = d.CommitThreshold
	}
	if c.HintThreshold <= 0 {
		c.HintThreshold = d.HintThreshold
	}
	if c.RotationFactor <= 0 {
		c.RotationFactor = d.RotationFactor
	}
	if c.AnimationDuration <= 0 {
		c.AnimationDuration = d.AnimationDuration
	}
	return c
}

// Point is a position in pixels.
type Point struct {
	X float64
	Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// EventKind identifies an input event.
type EventKind int

const (
	PointerDown EventKind = iota
	PointerMove
	PointerUp
	PointerLeave
	TouchStart
	TouchMove
	TouchEnd
	// ButtonPress is an explicit pass/like button; Event.Direction says which.
	ButtonPress
)

// Event is one input event delivered to the active card.
type Event struct {
	Direction model.Direction
	Point     Point
	TouchID   int
	Kind      EventKind
}

// Result reports what an event did.
type Result struct {
	// Decision is set when the event committed the card.
	Decision model.Direction
	// Settle is the token to pass to Settle after the animation, 0 if none.
	Settle uint64
	// Changed is true when the visible card state moved.
	Changed bool
}

// Committed reports whether the event produced a decision.
func (r Result) Committed() bool {
	return r.Decision.IsDecision()
}

type source int

const (
	sourceNone source = iota
	sourceMouse
	sourceTouch
)

// Tracker is the per-card gesture state machine. It is not safe for concurrent use.
type Tracker struct {
	cfg        Config
	origin     Point
	offset     Point
	hint       model.Direction
	committed  model.Direction
	generation uint64
	touchID    int
	state      State
	source     source
	active     bool
}

// NewTracker creates an idle tracker for an active card.
func NewTracker(cfg Config) *Tracker {
	return &Tracker{
		cfg:    cfg.withDefaults(),
		active: true,
	}
}

// Config returns the effective thresholds.
func (t *Tracker) Config() Config {
	return t.cfg
}

// SetActive marks whether this card is the top of the deck. Inactive cards
// ignore new sessions; an in-progress drag is cancelled.
func (t *Tracker) SetActive(active bool) {
	t.active = active
	if !active && t.state == StateDragging {
		t.clear()
	}
}

// Active reports whether the card accepts input.
func (t *Tracker) Active() bool {
	return t.active
}

// State returns the current state.
func (t *Tracker) State() State {
	return t.state
}

// Offset returns the current drag offset.
func (t *Tracker) Offset() Point {
	return t.offset
}

// Hint returns the live direction hint.
func (t *Tracker) Hint() model.Direction {
	return t.hint
}

// Committed returns the direction of an in-flight commit.
func (t *Tracker) Committed() model.Direction {
	return t.committed
}

// Rotation returns the card tilt in degrees, proportional to the horizontal offset.
func (t *Tracker) Rotation() float64 {
	return t.offset.X * t.cfg.RotationFactor
}

// Handle feeds one event through the state machine.
func (t *Tracker) Handle(ev Event) Result {
	if t.state == StateCommitting {
		return Result{}
	}

	switch ev.Kind {
	case PointerDown:
		return t.begin(ev.Point, sourceMouse, 0)
	case TouchStart:
		return t.begin(ev.Point, sourceTouch, ev.TouchID)
	case PointerMove:
		if !t.owns(sourceMouse, 0) {
			return Result{}
		}
		return t.move(ev.Point)
	case TouchMove:
		if !t.owns(sourceTouch, ev.TouchID) {
			return Result{}
		}
		return t.move(ev.Point)
	case PointerUp, PointerLeave:
		if !t.owns(sourceMouse, 0) {
			return Result{}
		}
		return t.release()
	case TouchEnd:
		if !t.owns(sourceTouch, ev.TouchID) {
			return Result{}
		}
		return t.release()
	case ButtonPress:
		return t.press(ev.Direction)
	}
	return Result{}
}

// Settle finishes the exit animation started by the commit that returned token.
// Stale tokens are ignored.
func (t *Tracker) Settle(token uint64) bool {
	if t.state != StateCommitting || token != t.generation {
		return false
	}
	t.clear()
	t.committed = model.DirectionNone
	return true
}

func (t *Tracker) begin(p Point, src source, touchID int) Result {
	if !t.active || t.state != StateIdle {
		return Result{}
	}
	t.state = StateDragging
	t.source = src
	t.touchID = touchID
	t.origin = p
	t.offset = Point{}
	t.hint = model.DirectionNone
	return Result{Changed: true}
}

func (t *Tracker) owns(src source, touchID int) bool {
	if t.state != StateDragging || t.source != src {
		return false
	}
	return src != sourceTouch || t.touchID == touchID
}

func (t *Tracker) move(p Point) Result {
	t.offset = p.Sub(t.origin)
	switch {
	case t.offset.X > t.cfg.HintThreshold:
		t.hint = model.DirectionRight
	case t.offset.X < -t.cfg.HintThreshold:
		t.hint = model.DirectionLeft
	default:
		t.hint = model.DirectionNone
	}
	return Result{Changed: true}
}

func (t *Tracker) release() Result {
	dx := t.offset.X
	if math.Abs(dx) < t.cfg.CommitThreshold {
		t.clear()
		return Result{Changed: true}
	}

	direction := model.DirectionLeft
	if dx > 0 {
		direction = model.DirectionRight
	}
	return t.commit(direction)
}

func (t *Tracker) press(direction model.Direction) Result {
	if !t.active || !direction.IsDecision() {
		return Result{}
	}
	t.offset = Point{X: t.cfg.CommitThreshold}
	if direction == model.DirectionLeft {
		t.offset.X = -t.cfg.CommitThreshold
	}
	return t.commit(direction)
}

func (t *Tracker) commit(direction model.Direction) Result {
	t.state = StateCommitting
	t.committed = direction
	t.hint = direction
	t.source = sourceNone
	t.generation++
	return Result{
		Decision: direction,
		Settle:   t.generation,
		Changed:  true,
	}
}

func (t *Tracker) clear() {
	t.state = StateIdle
	t.source = sourceNone
	t.touchID = 0
	t.origin = Point{}
	t.offset = Point{}
	t.hint = model.DirectionNone
}
