package exam

import (
	"context"
	"sync"
	"time"
)

type ClockState int

const (
	ClockRunning ClockState = iota
	ClockExpired
	ClockStopped // frozen by a manual submit before reaching zero
)

func (s ClockState) String() string {
	switch s {
	case ClockExpired:
		return "expired"
	case ClockStopped:
		return "stopped"
	default:
		return "running"
	}
}

// Ticker is the subset of *time.Ticker the clock needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type realTicker struct{ t *time.Ticker }

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

// NewSecondTicker ticks once per wall-clock second.
func NewSecondTicker() Ticker {
	return realTicker{t: time.NewTicker(time.Second)}
}

// Clock counts a session down one second per Tick. When the count reaches
// zero it moves to ClockExpired and calls onExpire exactly once. A stopped
// clock keeps its remaining seconds and ignores further ticks.
type Clock struct {
	mu        sync.Mutex
	remaining int
	state     ClockState
	stopped   bool
	onExpire  func()
}

func NewClock(timeLimitMinutes int, onExpire func()) *Clock {
	remaining := timeLimitMinutes * 60
	if remaining < 0 {
		remaining = 0
	}
	return &Clock{remaining: remaining, onExpire: onExpire}
}

// Tick advances the clock by one second and returns the resulting state.
func (c *Clock) Tick() ClockState {
	c.mu.Lock()
	if c.stopped || c.state == ClockExpired {
		state := c.stateLocked()
		c.mu.Unlock()
		return state
	}
	if c.remaining > 0 {
		c.remaining--
	}
	fire := false
	if c.remaining == 0 {
		c.state = ClockExpired
		fire = true
	}
	c.mu.Unlock()

	// Called without the lock held: the callback submits the session, which
	// stops this clock.
	if fire && c.onExpire != nil {
		c.onExpire()
	}
	if fire {
		return ClockExpired
	}
	return ClockRunning
}

// Stop freezes the remaining time.
func (c *Clock) Stop() {
	c.mu.Lock()
	c.stopped = true
	c.mu.Unlock()
}

func (c *Clock) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

func (c *Clock) State() ClockState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

func (c *Clock) stateLocked() ClockState {
	if c.stopped && c.state != ClockExpired {
		return ClockStopped
	}
	return c.state
}

// Run drives Tick from ticker until the clock expires, is stopped, or ctx ends.
func (c *Clock) Run(ctx context.Context, ticker Ticker) {
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			if c.Tick() != ClockRunning {
				return
			}
		}
	}
}
