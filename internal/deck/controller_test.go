package deck

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/Veraticus/swipe-grocery/internal/catalog"
	"github.com/Veraticus/swipe-grocery/internal/clock"
	"github.com/Veraticus/swipe-grocery/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noticeRecorder collects notices for assertions.
type noticeRecorder struct {
	notices []Notice
	mu      sync.Mutex
}

func (r *noticeRecorder) Notify(n Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

func (r *noticeRecorder) kinds() []NoticeKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	kinds := make([]NoticeKind, 0, len(r.notices))
	for _, n := range r.notices {
		kinds = append(kinds, n.Kind)
	}
	return kinds
}

func threeItems() []model.Item {
	return []model.Item{
		{ID: 1, Name: "Bread", Price: 2.49},
		{ID: 2, Name: "Milk", Price: 3.29},
		{ID: 3, Name: "Strawberries", Price: 4.99, Discount: 20},
	}
}

func newTestController(t *testing.T, items []model.Item) (*Controller, *clock.Fake, *noticeRecorder) {
	t.Helper()
	fake := clock.NewFake()
	rec := &noticeRecorder{}
	c, err := New(context.Background(), catalog.NewStatic(items),
		WithScheduler(fake),
		WithNotifier(rec),
	)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c, fake, rec
}

func TestNew_RequiresSource(t *testing.T) {
	_, err := New(context.Background(), nil)
	assert.Error(t, err)
}

func TestNew_PropagatesCatalogError(t *testing.T) {
	boom := errors.New("catalog offline")
	_, err := New(context.Background(), catalog.SourceFunc(func(context.Context) ([]model.Item, error) {
		return nil, boom
	}))
	assert.ErrorIs(t, err, boom)
}

func TestDecide(t *testing.T) {
	c, _, rec := newTestController(t, threeItems())

	assert.True(t, c.Decide(model.DirectionRight))
	assert.True(t, c.Decide(model.DirectionLeft))

	snap := c.Snapshot()
	assert.Equal(t, 2, snap.Cursor)
	assert.Equal(t, []int{1}, ids(snap.Liked))
	assert.Equal(t, []int{2}, ids(snap.Disliked))
	assert.Equal(t, 1, snap.Remaining())
	assert.False(t, snap.Exhausted)

	require.Len(t, rec.notices, 1)
	assert.Equal(t, Notice{Kind: NoticeItemLiked, ItemName: "Bread", Count: 1}, rec.notices[0])
}

func TestDecide_IgnoresNoneDirection(t *testing.T) {
	c, _, _ := newTestController(t, threeItems())
	assert.False(t, c.Decide(model.DirectionNone))
	assert.Equal(t, 0, c.Snapshot().Cursor)
}

func TestDecide_PastEndIsNoop(t *testing.T) {
	c, _, _ := newTestController(t, threeItems())
	for i := 0; i < 3; i++ {
		require.True(t, c.Decide(model.DirectionLeft))
	}

	before := c.Snapshot()
	assert.False(t, c.Decide(model.DirectionRight))
	assert.False(t, c.Decide(model.DirectionLeft))
	assert.Equal(t, before, c.Snapshot())
}

func TestDecideTicket_RejectsStaleAndDuplicate(t *testing.T) {
	c, fake, _ := newTestController(t, threeItems())

	ticket := c.Ticket()
	assert.True(t, c.DecideTicket(ticket, model.DirectionRight))
	assert.False(t, c.DecideTicket(ticket, model.DirectionRight), "same position twice")
	assert.Equal(t, 1, c.Snapshot().Cursor)

	// Finish the deck, let it reset, and replay a ticket from the first deal.
	c.Decide(model.DirectionLeft)
	c.Decide(model.DirectionLeft)
	fake.Advance(DefaultExhaustionDelay)
	require.Equal(t, 0, c.Snapshot().Cursor)

	assert.False(t, c.DecideTicket(ticket, model.DirectionRight), "ticket from an earlier deal")
	assert.Equal(t, 0, c.Snapshot().Cursor)
}

func TestDecide_CountInvariant(t *testing.T) {
	items := make([]model.Item, 25)
	for i := range items {
		items[i] = model.Item{ID: i + 1, Name: "item", Price: 1}
	}
	c, _, _ := newTestController(t, items)

	rng := rand.New(rand.NewSource(7))
	for step := 0; step < 40; step++ {
		dir := model.DirectionLeft
		if rng.Intn(2) == 0 {
			dir = model.DirectionRight
		}
		c.Decide(dir)

		snap := c.Snapshot()
		assert.Equal(t, min(step+1, len(items)), snap.Cursor)
		assert.Equal(t, snap.Cursor, len(snap.Liked)+len(snap.Disliked))
		assert.LessOrEqual(t, snap.Cursor, snap.Len())
	}
}

func TestUndoLike(t *testing.T) {
	c, _, _ := newTestController(t, threeItems())
	c.Decide(model.DirectionRight)
	c.Decide(model.DirectionLeft)
	c.Decide(model.DirectionRight)

	assert.True(t, c.UndoLike(1))
	assert.False(t, c.UndoLike(1), "second undo removes nothing")
	assert.False(t, c.UndoLike(2), "disliked items cannot be undone")
	assert.False(t, c.UndoLike(99))

	snap := c.Snapshot()
	assert.Equal(t, []int{3}, ids(snap.Liked))
	assert.Equal(t, []int{2}, ids(snap.Disliked))
	assert.Equal(t, 3, snap.Cursor)
}

func TestUndoLike_RemovesFirstMatchOnly(t *testing.T) {
	c, fake, _ := newTestController(t, threeItems()[:1])

	c.Decide(model.DirectionRight)
	fake.Advance(DefaultExhaustionDelay)
	c.Decide(model.DirectionRight)

	require.Equal(t, []int{1, 1}, ids(c.Snapshot().Liked))
	assert.True(t, c.UndoLike(1))
	assert.Equal(t, []int{1}, ids(c.Snapshot().Liked))
}

func TestUndoLike_SnapshotIsolation(t *testing.T) {
	c, _, _ := newTestController(t, threeItems())
	c.Decide(model.DirectionRight)
	c.Decide(model.DirectionRight)

	snap := c.Snapshot()
	c.UndoLike(1)
	assert.Equal(t, []int{1, 2}, ids(snap.Liked), "earlier snapshot is unaffected")
}

func TestEndToEnd_SwipeExhaustAndReset(t *testing.T) {
	c, fake, rec := newTestController(t, threeItems())

	c.Decide(model.DirectionRight)
	c.Decide(model.DirectionLeft)
	c.Decide(model.DirectionRight)

	snap := c.Snapshot()
	assert.Equal(t, []int{1, 3}, ids(snap.Liked))
	assert.Equal(t, []int{2}, ids(snap.Disliked))
	assert.Equal(t, 3, snap.Cursor)
	assert.True(t, snap.Exhausted)
	assert.Contains(t, rec.kinds(), NoticeDeckExhausted)
	assert.Empty(t, c.Visible(3))

	fake.Advance(DefaultExhaustionDelay / 2)
	assert.True(t, c.Exhausted(), "still showing the end state")

	fake.Advance(DefaultExhaustionDelay)
	snap = c.Snapshot()
	assert.Equal(t, 0, snap.Cursor)
	assert.False(t, snap.Exhausted)
	assert.Equal(t, 3, snap.Len())
	assert.Equal(t, []int{1, 3}, ids(snap.Liked))
	assert.Equal(t, []int{2}, ids(snap.Disliked))
	assert.Equal(t, []NoticeKind{NoticeItemLiked, NoticeItemLiked, NoticeDeckExhausted, NoticeDeckReset}, rec.kinds())
}

func TestReset_ReReadsCatalog(t *testing.T) {
	calls := 0
	src := catalog.SourceFunc(func(context.Context) ([]model.Item, error) {
		calls++
		return threeItems(), nil
	})
	c, err := New(context.Background(), src, WithScheduler(clock.NewFake()))
	require.NoError(t, err)
	defer c.Close()

	c.Decide(model.DirectionRight)
	require.NoError(t, c.Reset(context.Background()))

	assert.Equal(t, 2, calls)
	snap := c.Snapshot()
	assert.Equal(t, 0, snap.Cursor)
	assert.Len(t, snap.Liked, 1)
}

func TestReset_ErrorKeepsDeck(t *testing.T) {
	fail := false
	src := catalog.SourceFunc(func(context.Context) ([]model.Item, error) {
		if fail {
			return nil, errors.New("database locked")
		}
		return threeItems(), nil
	})
	fake := clock.NewFake()
	c, err := New(context.Background(), src, WithScheduler(fake))
	require.NoError(t, err)
	defer c.Close()

	c.Decide(model.DirectionLeft)
	fail = true
	assert.Error(t, c.Reset(context.Background()))
	assert.Equal(t, 1, c.Snapshot().Cursor)

	// A failing automatic reset is logged and leaves the exhausted deck in place.
	c.Decide(model.DirectionLeft)
	c.Decide(model.DirectionLeft)
	fake.Advance(DefaultExhaustionDelay)
	assert.True(t, c.Exhausted())
}

func TestReset_CancelsPendingExhaustionTimer(t *testing.T) {
	c, fake, rec := newTestController(t, threeItems())
	for i := 0; i < 3; i++ {
		c.Decide(model.DirectionLeft)
	}
	require.Equal(t, 1, fake.Pending())

	require.NoError(t, c.Reset(context.Background()))
	assert.Zero(t, fake.Pending())

	fake.Advance(DefaultExhaustionDelay)
	resets := 0
	for _, k := range rec.kinds() {
		if k == NoticeDeckReset {
			resets++
		}
	}
	assert.Equal(t, 1, resets)
}

func TestClose_IgnoresPendingTimer(t *testing.T) {
	c, fake, _ := newTestController(t, threeItems())
	for i := 0; i < 3; i++ {
		c.Decide(model.DirectionRight)
	}
	c.Close()

	fake.Advance(DefaultExhaustionDelay * 2)
	snap := c.Snapshot()
	assert.Equal(t, 3, snap.Cursor, "closed controller is not reset")
	assert.False(t, c.Decide(model.DirectionRight))
}

func TestEmptyCatalog_NeverExhausts(t *testing.T) {
	c, fake, rec := newTestController(t, nil)

	assert.False(t, c.Exhausted())
	assert.False(t, c.Decide(model.DirectionRight))
	assert.Zero(t, fake.Pending())
	assert.Empty(t, rec.kinds())
	assert.Nil(t, c.DealCard(gestureConfig()))
}

func TestCheckout(t *testing.T) {
	c, _, rec := newTestController(t, threeItems())

	assert.False(t, c.Checkout(), "empty cart")
	assert.Empty(t, rec.kinds())

	c.Decide(model.DirectionRight)
	c.Decide(model.DirectionRight)
	assert.True(t, c.Checkout())

	last := rec.notices[len(rec.notices)-1]
	assert.Equal(t, NoticeCheckout, last.Kind)
	assert.Equal(t, 2, last.Count)
	assert.InDelta(t, 5.78, last.Total, 1e-9)
	assert.Len(t, c.Snapshot().Liked, 2, "checkout keeps the cart")
}

func TestVisible(t *testing.T) {
	c, _, _ := newTestController(t, threeItems())

	assert.Equal(t, []int{1, 2}, ids(c.Visible(2)))
	assert.Equal(t, []int{1, 2, 3}, ids(c.Visible(5)))
	assert.Nil(t, c.Visible(0))

	c.Decide(model.DirectionLeft)
	assert.Equal(t, []int{2, 3}, ids(c.Visible(3)))
}

func TestSnapshot_DerivedMetrics(t *testing.T) {
	c, _, _ := newTestController(t, []model.Item{
		{ID: 1, Name: "Deal", Price: 100, Discount: 20},
		{ID: 2, Name: "Plain", Price: 5},
	})
	c.Decide(model.DirectionRight)
	c.Decide(model.DirectionRight)

	snap := c.Snapshot()
	assert.InDelta(t, 25.0, snap.Savings(), 1e-9)
	assert.Equal(t, "Gold", snap.Tier().Tier.Label)

	c.UndoLike(1)
	snap = c.Snapshot()
	assert.Zero(t, snap.Savings())
	assert.Equal(t, "Bronze", snap.Tier().Tier.Label)

	cur, ok := snap.Current()
	assert.False(t, ok)
	assert.Equal(t, model.Item{}, cur)
}

func TestController_RealSchedulerEventuallyResets(t *testing.T) {
	c, err := New(context.Background(), catalog.NewStatic(threeItems()),
		WithExhaustionDelay(10*time.Millisecond))
	require.NoError(t, err)
	defer c.Close()

	for i := 0; i < 3; i++ {
		c.Decide(model.DirectionRight)
	}
	require.True(t, c.Exhausted())

	assert.Eventually(t, func() bool {
		return c.Snapshot().Cursor == 0
	}, time.Second, 5*time.Millisecond)
}

func ids(items []model.Item) []int {
	out := make([]int, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}
