package lifecycle

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"carepulse/internal/common"
)

func TestMonitor_RescanFiresAfterForegroundSettle(t *testing.T) {
	var rescans int32
	m := NewMonitor(20*time.Millisecond, func() { atomic.AddInt32(&rescans, 1) })
	defer m.Stop()

	m.OnChange(common.StateBackground)
	m.OnChange(common.StateForeground)

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&rescans))
	assert.Equal(t, common.StateForeground, m.State())
}

func TestMonitor_RepeatedForegroundIsIgnored(t *testing.T) {
	var rescans int32
	m := NewMonitor(20*time.Millisecond, func() { atomic.AddInt32(&rescans, 1) })
	defer m.Stop()

	m.OnChange(common.StateBackground)
	m.OnChange(common.StateForeground)
	m.OnChange(common.StateForeground)
	m.OnChange(common.StateForeground)

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&rescans))
}

func TestMonitor_BackgroundCancelsPendingRescan(t *testing.T) {
	var rescans int32
	m := NewMonitor(50*time.Millisecond, func() { atomic.AddInt32(&rescans, 1) })
	defer m.Stop()

	m.OnChange(common.StateBackground)
	m.OnChange(common.StateForeground)
	m.OnChange(common.StateBackground)

	time.Sleep(120 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&rescans))
}

func TestMonitor_InitialStateIsForeground(t *testing.T) {
	var rescans int32
	m := NewMonitor(10*time.Millisecond, func() { atomic.AddInt32(&rescans, 1) })
	defer m.Stop()

	// no background/foreground round trip happened, so the foreground call
	// is a no-op
	m.OnChange(common.StateForeground)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&rescans))
}

func TestMonitor_StopCancelsPending(t *testing.T) {
	var rescans int32
	m := NewMonitor(30*time.Millisecond, func() { atomic.AddInt32(&rescans, 1) })

	m.OnChange(common.StateBackground)
	m.OnChange(common.StateForeground)
	m.Stop()

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&rescans))
}
