package manager

import (
	"time"

	"gridsnake/game/types"
)

// SpeedState is the state of the boost machine
type SpeedState int

const (
	SpeedBase SpeedState = iota
	SpeedBoosted
)

func (s SpeedState) String() string {
	if s == SpeedBoosted {
		return "boosted"
	}
	return "base"
}

// SpeedConfig holds the boost tuning
type SpeedConfig struct {
	BaseInterval         time.Duration
	BoostMultiplier      float64
	QuickPressThreshold  time.Duration
	ResetDelay           time.Duration
	RequiredQuickPresses int
}

func DefaultSpeedConfig() SpeedConfig {
	return SpeedConfig{
		BaseInterval:         types.BaseInterval,
		BoostMultiplier:      types.SpeedBoostMultiplier,
		QuickPressThreshold:  types.QuickPressThreshold,
		ResetDelay:           types.SpeedResetDelay,
		RequiredQuickPresses: types.RequiredQuickPresses,
	}
}

// SpeedManager tracks directional press timing and switches between base
// and boosted tick periods.
//
// Transitions:
//
//	Base    --three quick presses--> Boosted
//	Boosted --inactivity timeout-->  Base
type SpeedManager struct {
	cfg     SpeedConfig
	state   SpeedState
	presses pressRing
}

func NewSpeedManager(cfg SpeedConfig) *SpeedManager {
	return &SpeedManager{
		cfg:     cfg,
		presses: newPressRing(cfg.RequiredQuickPresses),
	}
}

// Press records a directional key press at now. It returns the period the
// clock must be restarted at and true when this press activated the boost.
func (sm *SpeedManager) Press(now time.Time) (time.Duration, bool) {
	sm.presses.push(now)

	if sm.state != SpeedBase || !sm.presses.full() {
		return 0, false
	}
	if !sm.presses.gapsBelow(sm.cfg.QuickPressThreshold) {
		return 0, false
	}

	sm.state = SpeedBoosted
	return sm.Period(), true
}

// Expire handles the inactivity timeout. The press history is always
// cleared; it returns true when the machine left the boosted state.
func (sm *SpeedManager) Expire() bool {
	sm.presses.clear()
	if sm.state != SpeedBoosted {
		return false
	}
	sm.state = SpeedBase
	return true
}

func (sm *SpeedManager) Reset() {
	sm.presses.clear()
	sm.state = SpeedBase
}

func (sm *SpeedManager) State() SpeedState {
	return sm.state
}

// Period is the tick period for the current state
func (sm *SpeedManager) Period() time.Duration {
	if sm.state == SpeedBoosted {
		return time.Duration(float64(sm.cfg.BaseInterval) * sm.cfg.BoostMultiplier)
	}
	return sm.cfg.BaseInterval
}

func (sm *SpeedManager) BaseInterval() time.Duration {
	return sm.cfg.BaseInterval
}

func (sm *SpeedManager) ResetDelay() time.Duration {
	return sm.cfg.ResetDelay
}

// Presses returns the buffered press instants, oldest first
func (sm *SpeedManager) Presses() []time.Time {
	return sm.presses.ordered()
}

// pressRing keeps the most recent press instants, evicting the oldest
type pressRing struct {
	buf   []time.Time
	start int
	count int
}

func newPressRing(capacity int) pressRing {
	if capacity < 1 {
		capacity = 1
	}
	return pressRing{buf: make([]time.Time, capacity)}
}

func (r *pressRing) push(t time.Time) {
	if r.count < len(r.buf) {
		r.buf[(r.start+r.count)%len(r.buf)] = t
		r.count++
		return
	}
	r.buf[r.start] = t
	r.start = (r.start + 1) % len(r.buf)
}

func (r *pressRing) full() bool {
	return r.count == len(r.buf)
}

func (r *pressRing) clear() {
	r.start = 0
	r.count = 0
}

func (r *pressRing) at(i int) time.Time {
	return r.buf[(r.start+i)%len(r.buf)]
}

// gapsBelow reports whether every consecutive gap is strictly below limit
func (r *pressRing) gapsBelow(limit time.Duration) bool {
	for i := 1; i < r.count; i++ {
		if r.at(i).Sub(r.at(i-1)) >= limit {
			return false
		}
	}
	return true
}

func (r *pressRing) ordered() []time.Time {
	out := make([]time.Time, r.count)
	for i := range out {
		out[i] = r.at(i)
	}
	return out
}
