package deck

import (
	"testing"

	"github.com/Veraticus/swipe-grocery/internal/gesture"
	"github.com/Veraticus/swipe-grocery/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gestureConfig() gesture.Config {
	return gesture.DefaultConfig()
}

func swipe(card *gesture.Card, dx float64) gesture.Result {
	card.Handle(gesture.Event{Kind: gesture.PointerDown, Point: gesture.Point{X: 300, Y: 200}})
	card.Handle(gesture.Event{Kind: gesture.PointerMove, Point: gesture.Point{X: 300 + dx, Y: 210}})
	return card.Handle(gesture.Event{Kind: gesture.PointerUp, Point: gesture.Point{X: 300 + dx, Y: 210}})
}

func TestDealCard_GesturesDriveTheDeck(t *testing.T) {
	c, fake, rec := newTestController(t, threeItems())

	for _, dx := range []float64{150, -150, 150} {
		card := c.DealCard(gestureConfig())
		require.NotNil(t, card)
		res := swipe(card, dx)
		require.True(t, res.Committed())
		fake.Advance(gesture.DefaultAnimationDuration)
		assert.Equal(t, gesture.StateIdle, card.View().State)
	}

	snap := c.Snapshot()
	assert.Equal(t, []int{1, 3}, ids(snap.Liked))
	assert.Equal(t, []int{2}, ids(snap.Disliked))
	assert.Equal(t, 3, snap.Cursor)
	assert.Contains(t, rec.kinds(), NoticeDeckExhausted)
	assert.Nil(t, c.DealCard(gestureConfig()))

	fake.Advance(DefaultExhaustionDelay)
	assert.Equal(t, 0, c.Snapshot().Cursor)
	assert.Equal(t, 1, c.DealCard(gestureConfig()).Item().ID)
}

func TestDealCard_ShortDragDoesNotDecide(t *testing.T) {
	c, _, _ := newTestController(t, threeItems())
	card := c.DealCard(gestureConfig())

	res := swipe(card, 99)
	assert.False(t, res.Committed())
	assert.Equal(t, 0, c.Snapshot().Cursor)

	res = swipe(card, -100)
	assert.Equal(t, model.DirectionLeft, res.Decision)
	assert.Equal(t, []int{1}, ids(c.Snapshot().Disliked))
}

func TestDealCard_StaleCardCannotDecideLaterPosition(t *testing.T) {
	c, _, _ := newTestController(t, threeItems())

	first := c.DealCard(gestureConfig())
	second := c.DealCard(gestureConfig())

	first.Press(model.DirectionRight)
	// second was dealt for the same position and lost the race.
	second.Press(model.DirectionLeft)

	snap := c.Snapshot()
	assert.Equal(t, 1, snap.Cursor)
	assert.Equal(t, []int{1}, ids(snap.Liked))
	assert.Empty(t, snap.Disliked)
}
