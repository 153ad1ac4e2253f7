package router

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"carepulse/internal/common"
)

func TestSink_RegisterReplacesExisting(t *testing.T) {
	s := NewSink()
	assert.Nil(t, s.Current())

	var got string
	s.Register(func(msg *common.Message) { got = "first:" + msg.ID })
	s.Register(func(msg *common.Message) { got = "second:" + msg.ID })

	// last writer wins
	s.Current()(&common.Message{ID: "m1"})
	assert.Equal(t, "second:m1", got)
}

func TestSink_Unregister(t *testing.T) {
	s := NewSink()
	s.Register(func(*common.Message) {})
	assert.NotNil(t, s.Current())

	s.Unregister()
	assert.Nil(t, s.Current())

	// unregister with nothing registered is harmless
	s.Unregister()
	assert.Nil(t, s.Current())
}
