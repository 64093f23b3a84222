package clock

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFake_AdvanceFiresInDeadlineOrder(t *testing.T) {
	f := NewFake()
	var order []string

	f.AfterFunc(300*time.Millisecond, func() { order = append(order, "late") })
	f.AfterFunc(100*time.Millisecond, func() { order = append(order, "early") })
	f.AfterFunc(100*time.Millisecond, func() { order = append(order, "early-second") })

	f.Advance(50 * time.Millisecond)
	assert.Empty(t, order)
	assert.Equal(t, 3, f.Pending())

	f.Advance(250 * time.Millisecond)
	assert.Equal(t, []string{"early", "early-second", "late"}, order)
	assert.Equal(t, 0, f.Pending())
	assert.Equal(t, 300*time.Millisecond, f.Elapsed())
}

func TestFake_Stop(t *testing.T) {
	f := NewFake()
	fired := false

	timer := f.AfterFunc(time.Second, func() { fired = true })
	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop(), "second stop reports already stopped")

	f.Advance(2 * time.Second)
	assert.False(t, fired)
}

func TestFake_StopAfterFire(t *testing.T) {
	f := NewFake()
	timer := f.AfterFunc(time.Millisecond, func() {})
	f.Advance(time.Millisecond)
	assert.False(t, timer.Stop())
}

func TestFake_NestedScheduling(t *testing.T) {
	f := NewFake()
	var fired []time.Duration

	f.AfterFunc(100*time.Millisecond, func() {
		fired = append(fired, f.Elapsed())
		f.AfterFunc(100*time.Millisecond, func() {
			fired = append(fired, f.Elapsed())
		})
	})

	f.Advance(250 * time.Millisecond)
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}, fired)
}

func TestReal_AfterFunc(t *testing.T) {
	var fired atomic.Bool
	done := make(chan struct{})

	Real{}.AfterFunc(time.Millisecond, func() {
		fired.Store(true)
		close(done)
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		require.Fail(t, "real timer did not fire")
	}
	assert.True(t, fired.Load())
}
