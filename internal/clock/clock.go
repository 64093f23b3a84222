// Package clock provides cancellable scheduled callbacks.
//
// Every timer the deck and the cards start goes through a Scheduler so that
// owners can stop them on disposal and tests can drive time by hand.
package clock

import (
	"sort"
	"sync"
	"time"
)

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop prevents the callback from firing. It returns false if the
	// callback already ran or was already stopped.
	Stop() bool
}

// Scheduler runs callbacks after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Real schedules callbacks on the runtime timer.
type Real struct{}

// AfterFunc implements Scheduler.
func (Real) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// Fake is a manually advanced Scheduler for tests.
// Callbacks run synchronously inside Advance, in deadline order.
type Fake struct {
	now     time.Duration
	pending []*fakeTimer
	seq     int
	mu      sync.Mutex
}

type fakeTimer struct {
	fn       func()
	fake     *Fake
	deadline time.Duration
	seq      int
	done     bool
}

// NewFake creates a fake scheduler at time zero.
func NewFake() *Fake {
	return &Fake{}
}

// AfterFunc implements Scheduler.
func (f *Fake) AfterFunc(d time.Duration, fn func()) Timer {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	t := &fakeTimer{
		fn:       fn,
		fake:     f,
		deadline: f.now + d,
		seq:      f.seq,
	}
	f.pending = append(f.pending, t)
	return t
}

// Advance moves time forward and fires every callback whose deadline has passed.
// Callbacks scheduled by fired callbacks also run if they fall inside the window.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	target := f.now + d
	f.mu.Unlock()

	for {
		f.mu.Lock()
		next := f.popDue(target)
		if next == nil {
			f.now = target
			f.mu.Unlock()
			return
		}
		f.now = next.deadline
		f.mu.Unlock()

		next.fn()
	}
}

// Pending returns the number of callbacks that have not fired or been stopped.
func (f *Fake) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.pending)
}

// Elapsed returns how far the fake clock has been advanced.
func (f *Fake) Elapsed() time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// popDue removes and returns the earliest timer due at or before target. Caller holds mu.
func (f *Fake) popDue(target time.Duration) *fakeTimer {
	if len(f.pending) == 0 {
		return nil
	}
	sort.SliceStable(f.pending, func(i, j int) bool {
		if f.pending[i].deadline == f.pending[j].deadline {
			return f.pending[i].seq < f.pending[j].seq
		}
		return f.pending[i].deadline < f.pending[j].deadline
	})
	next := f.pending[0]
	if next.deadline > target {
		return nil
	}
	f.pending = f.pending[1:]
	next.done = true
	return next
}

// Stop implements Timer.
func (t *fakeTimer) Stop() bool {
	t.fake.mu.Lock()
	defer t.fake.mu.Unlock()

	if t.done {
		return false
	}
	t.done = true
	for i, p := range t.fake.pending {
		if p == t {
			t.fake.pending = append(t.fake.pending[:i], t.fake.pending[i+1:]...)
			break
		}
	}
	return true
}
