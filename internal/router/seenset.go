package router

import (
	"time"
)

// SeenSet tracks message ids already routed to presentation in this process
// lifetime. Only ids of messages created within the TTL window are kept;
// older entries age out so memory stays bounded. Not safe for concurrent use
// on its own: the Router serializes all access under its own lock.
type SeenSet struct {
	ttl     time.Duration
	entries map[string]time.Time // message id -> creation timestamp
}

func NewSeenSet(ttl time.Duration) *SeenSet {
	return &SeenSet{
		ttl:     ttl,
		entries: make(map[string]time.Time),
	}
}

// Add records an id. It returns false when the id is already tracked, which
// is the dedup signal callers rely on.
func (s *SeenSet) Add(id string, createdAt time.Time) bool {
	if _, ok := s.entries[id]; ok {
		return false
	}
	s.entries[id] = createdAt
	return true
}

func (s *SeenSet) Contains(id string) bool {
	_, ok := s.entries[id]
	return ok
}

// Prune drops entries whose creation timestamp has aged out of the window.
func (s *SeenSet) Prune(now time.Time) {
	for id, createdAt := range s.entries {
		if now.Sub(createdAt) > s.ttl {
			delete(s.entries, id)
		}
	}
}

func (s *SeenSet) Len() int {
	return len(s.entries)
}
