package router

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeenSet_AddAndDuplicate(t *testing.T) {
	s := NewSeenSet(5 * time.Minute)
	now := time.Now()

	assert.True(t, s.Add("msg-1", now))
	assert.False(t, s.Add("msg-1", now))
	assert.True(t, s.Contains("msg-1"))
	assert.Equal(t, 1, s.Len())
}

func TestSeenSet_PruneAgesOutOldEntries(t *testing.T) {
	s := NewSeenSet(2 * time.Minute)
	now := time.Now()

	s.Add("msg-old", now.Add(-3*time.Minute))
	s.Add("msg-fresh", now.Add(-30*time.Second))

	s.Prune(now)

	assert.False(t, s.Contains("msg-old"))
	assert.True(t, s.Contains("msg-fresh"))
	assert.Equal(t, 1, s.Len())

	// an aged-out id may be tracked again
	assert.True(t, s.Add("msg-old", now))
}
