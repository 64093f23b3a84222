package tui

import (
	"math"
	"time"

	"github.com/Veraticus/swipe-grocery/internal/gesture"
	"github.com/Veraticus/swipe-grocery/internal/model"
	"github.com/Veraticus/swipe-grocery/internal/tui/components"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	likedPanelWidth = 34
	footerHeight    = 3
)

// rect is a screen region in cells.
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// layout is where the stage, card and cart panel sit on screen.
type layout struct {
	stage      rect
	card       rect
	likedWidth int
	compact    bool
}

func (m Model) layout() layout {
	l := layout{compact: m.width < 80}
	if !l.compact {
		l.likedWidth = likedPanelWidth
	}

	headerHeight := lipgloss.Height(m.header.View())
	l.stage = rect{
		x: 0,
		y: headerHeight,
		w: max(m.width-l.likedWidth, 0),
		h: max(m.height-headerHeight-footerHeight, 0),
	}

	cardWidth := min(components.CardWidth, max(l.stage.w-2, 20))
	l.card = rect{
		x: max((l.stage.w-cardWidth)/2, 0),
		y: l.stage.y,
		w: cardWidth,
		h: components.CardHeight,
	}
	return l
}

// cardShift returns the horizontal displacement of the top card in cells.
// A committed card keeps sliding off the stage while it animates.
func (m Model) cardShift(v gesture.View, l layout) int {
	cells := v.Offset.X / float64(m.config.CellWidth)

	if v.State == gesture.StateCommitting && v.Committed.IsDecision() {
		progress := 1.0
		if d := m.config.Gesture.AnimationDuration; d > 0 {
			progress = math.Min(float64(time.Since(m.commitAt))/float64(d), 1)
		}
		sign := 1.0
		if v.Committed == model.DirectionLeft {
			sign = -1
		}
		cells += sign * progress * float64(l.stage.w)
	}

	shift := int(math.Round(cells))
	minShift := -l.card.x
	maxShift := l.stage.w - l.card.w - l.card.x
	return min(max(shift, minShift), maxShift)
}

// cardRect is the on-screen rectangle of the top card, drag offset included.
func (m Model) cardRect() rect {
	l := m.layout()
	r := l.card
	if m.card != nil {
		r.x += m.cardShift(m.card.View(), l)
	}
	return r
}

// toPixels converts a terminal cell into the pixel space the gesture thresholds use.
func (m Model) toPixels(x, y int) gesture.Point {
	return gesture.Point{
		X: float64(x * m.config.CellWidth),
		Y: float64(y * m.config.CellHeight),
	}
}

// handleMouse maps terminal mouse events onto pointer events for the active card.
// Dragging out of the card counts as letting go.
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if !m.config.MouseSupport || m.state != StateSwiping || m.card == nil {
		return m, nil
	}

	ev := gesture.Event{Point: m.toPixels(msg.X, msg.Y)}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.layout().card.contains(msg.X, msg.Y) {
			return m, nil
		}
		ev.Kind = gesture.PointerDown

	case tea.MouseActionMotion:
		if !m.dragging {
			return m, nil
		}
		ev.Kind = gesture.PointerMove
		if !m.cardRect().contains(msg.X, msg.Y) {
			ev.Kind = gesture.PointerLeave
		}

	case tea.MouseActionRelease:
		if !m.dragging {
			return m, nil
		}
		ev.Kind = gesture.PointerUp

	default:
		return m, nil
	}

	res := m.card.Handle(ev)
	switch ev.Kind {
	case gesture.PointerDown:
		m.dragging = m.card.View().State == gesture.StateDragging
	case gesture.PointerUp, gesture.PointerLeave:
		m.dragging = false
	}
	return m, m.afterInput(res)
}
