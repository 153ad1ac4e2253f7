package router

import (
	"log"
	"sync"

	"carepulse/internal/common"
)

// PresentFunc displays one urgent message to the user, typically as a modal
// on the currently active screen.
type PresentFunc func(msg *common.Message)

// Sink is a single-slot registry for the currently active screen's urgent
// prompt callback. At most one callback is active at any instant; registering
// a new one replaces the previous registration (last writer wins). Consumers
// must call Unregister on teardown, otherwise a stale callback can be invoked
// against a screen that no longer exists.
type Sink struct {
	mu sync.Mutex
	cb PresentFunc
}

func NewSink() *Sink {
	return &Sink{}
}

// Register installs cb as the active presentation callback. A registration
// over an existing one is allowed but logged, since it usually means a screen
// skipped Unregister on teardown.
func (s *Sink) Register(cb PresentFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cb != nil {
		log.Println("sink: replacing active presentation callback without unregister")
	}
	s.cb = cb
}

// Unregister clears the slot; subsequent presentation attempts fall back to
// device notification.
func (s *Sink) Unregister() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cb = nil
}

// Current returns the active callback, or nil when none is registered.
func (s *Sink) Current() PresentFunc {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cb
}
