// Package lifecycle tracks foreground/background transitions of the
// application process. The monitor is an explicit object the shell constructs
// and drives, not an import side effect, so tests can step transitions
// deterministically.
package lifecycle

import (
	"log"
	"sync"
	"time"

	"carepulse/internal/common"
)

// Monitor schedules a catch-up rescan when the app returns to foreground.
// The rescan fires after a settle delay so subscriptions have time to
// reattach; a transition back to background before the delay elapses cancels
// the pending rescan.
type Monitor struct {
	settleDelay time.Duration
	rescan      func()

	mu      sync.Mutex
	state   common.LifecycleState
	pending *time.Timer
	stopped bool
}

// NewMonitor builds a monitor in the foreground state, which matches a
// freshly launched app: the initial subscription delivery covers startup, so
// no rescan fires until a background/foreground round trip happens.
func NewMonitor(settleDelay time.Duration, rescan func()) *Monitor {
	return &Monitor{
		settleDelay: settleDelay,
		rescan:      rescan,
		state:       common.StateForeground,
	}
}

// OnChange must be called by the app shell on every lifecycle transition.
func (m *Monitor) OnChange(state common.LifecycleState) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.stopped || state == m.state {
		return
	}
	prev := m.state
	m.state = state
	log.Printf("lifecycle: %s -> %s", prev, state)

	switch state {
	case common.StateForeground:
		m.cancelPendingLocked()
		m.pending = time.AfterFunc(m.settleDelay, m.fire)
	case common.StateBackground:
		m.cancelPendingLocked()
	}
}

// State returns the last observed lifecycle state.
func (m *Monitor) State() common.LifecycleState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Stop cancels any pending rescan. The monitor ignores transitions afterward.
func (m *Monitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopped = true
	m.cancelPendingLocked()
}

func (m *Monitor) fire() {
	m.mu.Lock()
	if m.stopped || m.state != common.StateForeground {
		m.mu.Unlock()
		return
	}
	m.pending = nil
	m.mu.Unlock()

	m.rescan()
}

func (m *Monitor) cancelPendingLocked() {
	if m.pending != nil {
		m.pending.Stop()
		m.pending = nil
	}
}
