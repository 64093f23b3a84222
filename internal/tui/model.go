package tui

import (
	"context"
	"time"

	"github.com/Veraticus/swipe-grocery/internal/deck"
	"github.com/Veraticus/swipe-grocery/internal/gesture"
	"github.com/Veraticus/swipe-grocery/internal/model"
	"github.com/Veraticus/swipe-grocery/internal/tui/components"
	"github.com/Veraticus/swipe-grocery/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// State represents the current state of the TUI.
type State int

const (
	StateLoading State = iota
	StateSwiping
	StateHelp
)

// statusTimeout is how long a notice stays in the status line.
const statusTimeout = 3 * time.Second

// Model holds the main TUI state.
type Model struct {
	ctx         context.Context
	theme       themes.Theme
	lastError   error
	deck        *deck.Controller
	card        *gesture.Card
	notices     *deck.ChannelNotifier
	recorder    *Recorder
	commitAt    time.Time
	statusStyle lipgloss.Style
	status      string
	help        help.Model
	header      components.HeaderModel
	liked       components.LikedListModel
	snapshot    deck.Snapshot
	config      Config
	keymap      KeyMap
	ticket      deck.Ticket
	statusSeq   int
	height      int
	width       int
	state       State
	dragging    bool
	animating   bool
	quitting    bool
	ready       bool
}

// newModel creates a new model with the given configuration.
func newModel(ctx context.Context, cfg Config) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	m := Model{
		ctx:      ctx,
		state:    StateLoading,
		config:   cfg,
		keymap:   DefaultKeyMap(),
		theme:    cfg.Theme,
		notices:  deck.NewChannelNotifier(32),
		recorder: NewRecorder(cfg.Record),
		help:     help.New(),
		header:   components.NewHeaderModel(cfg.Theme),
		liked:    components.NewLikedListModel(cfg.Theme),
		width:    cfg.Width,
		height:   cfg.Height,
	}
	m.handleResize()
	return m
}

// Init loads the deck.
func (m Model) Init() tea.Cmd {
	return m.loadDeck()
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.handleKey(msg)
		cmds = append(cmds, cmd)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m, cmd = m.handleMouse(msg)
		cmds = append(cmds, cmd)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()

	case deckLoadedMsg:
		m.ready = true
		if msg.err != nil {
			m.lastError = msg.err
			break
		}
		m.deck = msg.controller
		m.state = StateSwiping
		m.refresh()
		cmds = append(cmds, m.waitForNotice())

	case noticeMsg:
		cmds = append(cmds, m.handleNotice(msg.notice), m.waitForNotice())

	case frameMsg:
		cmds = append(cmds, m.advanceAnimation())

	case statusExpiredMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}

	case components.UndoLikeRequestMsg:
		if m.deck != nil && m.deck.UndoLike(msg.Item.ID) {
			m.refresh()
			cmds = append(cmds, m.setStatus("Removed "+msg.Item.Name+" from your cart", m.theme.StatusMuted))
		}

	case errorMsg:
		m.lastError = msg.err
		cmds = append(cmds, m.setStatus(msg.context+": "+msg.err.Error(), m.theme.StatusWarning))
	}

	m.recorder.RecordState(m, msg)
	return m, tea.Batch(cmds...)
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.ready {
		return m.renderLoading()
	}

	if m.deck == nil {
		return m.renderLoadError()
	}

	if m.state == StateHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// Close releases the deck and the active card.
func (m Model) Close() {
	if m.card != nil {
		m.card.Dispose()
	}
	if m.deck != nil {
		m.deck.Close()
	}
	m.recorder.Close()
}

// handleKey handles keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.ForceQuit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.ClearScreen):
		return m, tea.ClearScreen
	}

	switch m.state {
	case StateLoading:
		if key.Matches(msg, m.keymap.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case StateHelp:
		if key.Matches(msg, m.keymap.Help, m.keymap.Quit) {
			m.state = StateSwiping
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.state = StateHelp
		return m, nil

	case key.Matches(msg, m.keymap.Pass):
		return m.press(model.DirectionLeft)

	case key.Matches(msg, m.keymap.Like):
		return m.press(model.DirectionRight)

	case key.Matches(msg, m.keymap.Checkout):
		if !m.deck.Checkout() {
			return m, m.setStatus("Your cart is empty", m.theme.StatusMuted)
		}
		return m, nil

	case key.Matches(msg, m.keymap.Up, m.keymap.Down, m.keymap.Remove):
		var cmd tea.Cmd
		m.liked, cmd = m.liked.Update(msg)
		return m, cmd
	}

	return m, nil
}

// press is the pass/like button on the active card.
func (m Model) press(direction model.Direction) (Model, tea.Cmd) {
	if m.card == nil {
		return m, nil
	}
	res := m.card.Press(direction)
	return m, m.afterInput(res)
}

// afterInput starts the exit animation when an input committed the card.
func (m *Model) afterInput(res gesture.Result) tea.Cmd {
	if !res.Committed() {
		return nil
	}
	m.dragging = false
	m.commitAt = time.Now()
	m.refresh()
	if m.animating {
		return nil
	}
	m.animating = true
	return frameTick()
}

// advanceAnimation keeps ticking until the committed card has settled, then
// deals the next one.
func (m *Model) advanceAnimation() tea.Cmd {
	if !m.animating {
		return nil
	}
	if m.card != nil && m.card.View().State == gesture.StateCommitting {
		return frameTick()
	}
	m.animating = false
	m.refresh()
	return nil
}

// refresh re-reads the deck and deals a new card when the old one is done.
func (m *Model) refresh() {
	if m.deck == nil {
		return
	}
	m.snapshot = m.deck.Snapshot()
	m.header.SetDeck(m.snapshot)
	m.liked.SetItems(m.snapshot.Liked)
	m.syncCard()
}

func (m *Model) syncCard() {
	if m.card != nil {
		v := m.card.View()
		if v.State == gesture.StateCommitting {
			return
		}
		if v.Active && m.ticket == m.deck.Ticket() {
			return
		}
		m.card.Dispose()
		m.card = nil
		m.dragging = false
	}
	m.ticket = m.deck.Ticket()
	m.card = m.deck.DealCard(m.config.Gesture)
}

func (m *Model) handleNotice(n deck.Notice) tea.Cmd {
	m.refresh()

	switch n.Kind {
	case deck.NoticeItemLiked:
		return m.setStatus("♥ Added "+n.ItemName+" to your cart", m.theme.StatusSuccess)
	case deck.NoticeDeckExhausted:
		return m.setStatus("You've seen every product! Shuffling a fresh deck…", m.theme.StatusWarning)
	case deck.NoticeCheckout:
		return m.setStatus(checkoutMessage(n), m.theme.StatusInfo)
	case deck.NoticeDeckReset:
		return m.setStatus("Fresh deck dealt", m.theme.StatusMuted)
	}
	return nil
}

func (m *Model) setStatus(text string, style lipgloss.Style) tea.Cmd {
	m.statusSeq++
	m.status = text
	m.statusStyle = style
	return expireStatus(m.statusSeq, statusTimeout)
}

// handleResize adjusts component sizes when terminal resizes.
func (m *Model) handleResize() {
	m.header.Resize(m.width)
	m.help.Width = m.width

	l := m.layout()
	m.liked.Resize(l.likedWidth, l.stage.h)
}
