// Package clock provides the deadline based schedulers that pace the game.
// Both are polled from the frontend loop with a monotonic "now", so a
// single goroutine owns every callback and no locking is needed.
package clock

import "time"

// Ticker fires at a fixed, restartable period
type Ticker struct {
	period   time.Duration
	deadline time.Time
	running  bool
	ticks    uint64
}

func NewTicker() *Ticker {
	return &Ticker{}
}

// Start schedules the first tick one period after now
func (t *Ticker) Start(period time.Duration, now time.Time) {
	t.period = period
	t.deadline = now.Add(period)
	t.running = true
}

func (t *Ticker) Stop() {
	t.running = false
}

// Restart replaces the current schedule with a new period
func (t *Ticker) Restart(period time.Duration, now time.Time) {
	t.Stop()
	t.Start(period, now)
}

// Due reports whether a tick fires at now and advances the deadline.
// At most one tick is reported per call; a schedule more than two periods
// behind is re-anchored instead of bursting to catch up.
func (t *Ticker) Due(now time.Time) bool {
	if !t.running || now.Before(t.deadline) {
		return false
	}

	t.deadline = t.deadline.Add(t.period)
	if now.Sub(t.deadline) > t.period*2 {
		t.deadline = now.Add(t.period)
	}
	t.ticks++
	return true
}

func (t *Ticker) Running() bool {
	return t.running
}

func (t *Ticker) Period() time.Duration {
	return t.period
}

// Ticks is the number of ticks fired since creation
func (t *Ticker) Ticks() uint64 {
	return t.ticks
}

// Timer is a single cancellable deferred action
type Timer struct {
	deadline time.Time
	pending  bool
}

func NewTimer() *Timer {
	return &Timer{}
}

// Schedule arms the timer d after now, replacing any pending deadline
func (t *Timer) Schedule(d time.Duration, now time.Time) {
	t.deadline = now.Add(d)
	t.pending = true
}

func (t *Timer) Cancel() {
	t.pending = false
}

// Fired reports whether the pending deadline has passed. A fired timer is
// disarmed, so it reports true exactly once per Schedule.
func (t *Timer) Fired(now time.Time) bool {
	if !t.pending || now.Before(t.deadline) {
		return false
	}
	t.pending = false
	return true
}

func (t *Timer) Pending() bool {
	return t.pending
}
