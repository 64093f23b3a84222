package deck

import (
	"github.com/Veraticus/swipe-grocery/internal/gesture"
	"github.com/Veraticus/swipe-grocery/internal/model"
)

// DealCard returns a gesture card for the item under the cursor, or nil when
// the deck is exhausted. The card's decision is bound to the current ticket,
// so a card can decide at most once and never for a later position.
func (c *Controller) DealCard(cfg gesture.Config, opts ...gesture.CardOption) *gesture.Card {
	c.mu.Lock()
	if c.closed || c.cursor >= len(c.items) {
		c.mu.Unlock()
		return nil
	}
	item := c.items[c.cursor]
	ticket := Ticket{Epoch: c.epoch, Position: c.cursor}
	sched := c.sched
	c.mu.Unlock()

	return gesture.NewCard(item, cfg, sched, func(direction model.Direction) {
		c.DecideTicket(ticket, direction)
	}, opts...)
}
