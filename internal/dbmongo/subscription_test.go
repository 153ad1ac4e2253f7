package dbmongo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"carepulse/internal/common"
)

func newTestSubscription() *subscription {
	return &subscription{
		updates: make(chan []*common.Message, 1),
		errs:    make(chan error, 1),
		cancel:  func() {},
	}
}

func TestSubscription_PushSupersedesPendingSnapshot(t *testing.T) {
	sub := newTestSubscription()

	sub.push([]*common.Message{{ID: "a"}})
	sub.push([]*common.Message{{ID: "b"}})

	got := <-sub.updates
	assert.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)

	select {
	case extra := <-sub.updates:
		t.Fatalf("unexpected extra snapshot: %v", extra)
	default:
	}
}

func TestSubscription_PushErrDropsWhenFull(t *testing.T) {
	sub := newTestSubscription()

	sub.pushErr(errors.New("first"))
	sub.pushErr(errors.New("second"))

	err := <-sub.errs
	assert.EqualError(t, err, "first")
	select {
	case err := <-sub.errs:
		t.Fatalf("unexpected buffered error: %v", err)
	default:
	}
}

func TestSubscription_CloseIsIdempotent(t *testing.T) {
	calls := 0
	sub := newTestSubscription()
	sub.cancel = func() { calls++ }

	sub.Close()
	sub.Close()
	assert.Equal(t, 1, calls)
}
