// Package router is the dedup and urgency router: it subscribes to message
// channels for one user, classifies incoming messages, filters out stale and
// already-seen items, and hands exactly one "present this now" event per
// qualifying message to the presentation sink, degrading to a device
// notification when no sink is registered.
package router

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"carepulse/internal/common"
)

const maxNotifyBody = 120

// Config carries the per-user routing parameters. RecencyWindow bounds how
// old an unread message may be and still be surfaced; SeenTTL bounds the
// dedup memory.
type Config struct {
	UserID            string
	RecencyWindow     time.Duration
	SeenTTL           time.Duration
	AlwaysNotifyKinds []common.MessageKind
}

type channelFeed struct {
	sub  common.Subscription
	last []*common.Message
}

type Router struct {
	store  common.MessageStore
	signal common.DeviceSignal
	audit  common.DeliveryLog // optional, nil disables the delivery record
	sink   *Sink

	userID       string
	recency      time.Duration
	alwaysNotify map[common.MessageKind]bool
	now          func() time.Time

	mu       sync.Mutex
	seen     *SeenSet
	channels map[string]*channelFeed
	closed   bool
	wg       sync.WaitGroup
}

func New(
	store common.MessageStore,
	signal common.DeviceSignal,
	audit common.DeliveryLog,
	sink *Sink,
	cfg Config,
) *Router {
	always := make(map[common.MessageKind]bool, len(cfg.AlwaysNotifyKinds))
	for _, k := range cfg.AlwaysNotifyKinds {
		always[k] = true
	}

	return &Router{
		store:        store,
		signal:       signal,
		audit:        audit,
		sink:         sink,
		userID:       cfg.UserID,
		recency:      cfg.RecencyWindow,
		alwaysNotify: always,
		now:          time.Now,
		seen:         NewSeenSet(cfg.SeenTTL),
		channels:     make(map[string]*channelFeed),
	}
}

// Attach subscribes the router to a channel. Each channel may be attached
// once; repeated attaches are no-ops.
func (r *Router) Attach(ctx context.Context, channelID string) error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return fmt.Errorf("router is closed")
	}
	if _, ok := r.channels[channelID]; ok {
		r.mu.Unlock()
		return nil
	}
	// reserve the slot before the blocking subscribe call
	r.channels[channelID] = &channelFeed{}
	r.mu.Unlock()

	sub, err := r.store.Subscribe(ctx, channelID)
	if err != nil {
		r.mu.Lock()
		delete(r.channels, channelID)
		r.mu.Unlock()
		return fmt.Errorf("failed to subscribe channel %s: %w", channelID, err)
	}

	r.mu.Lock()
	r.channels[channelID].sub = sub
	r.mu.Unlock()

	r.wg.Add(1)
	go r.consume(channelID, sub)

	log.Printf("router: attached channel %s", channelID)
	return nil
}

// Detach stops delivery for one channel.
func (r *Router) Detach(channelID string) {
	r.mu.Lock()
	feed, ok := r.channels[channelID]
	if ok {
		delete(r.channels, channelID)
	}
	r.mu.Unlock()

	if ok && feed.sub != nil {
		feed.sub.Close()
	}
}

// Close detaches every channel and waits for in-flight batch processing to
// finish. In-flight presentation callbacks run to completion.
func (r *Router) Close() {
	r.mu.Lock()
	r.closed = true
	subs := make([]common.Subscription, 0, len(r.channels))
	for _, feed := range r.channels {
		if feed.sub != nil {
			subs = append(subs, feed.sub)
		}
	}
	r.channels = make(map[string]*channelFeed)
	r.mu.Unlock()

	for _, sub := range subs {
		sub.Close()
	}
	r.wg.Wait()
}

// Rescan forces a fresh qualification pass over the last delivered snapshot
// of every attached channel. The lifecycle monitor calls this on foreground
// transitions to cover messages missed while the process was suspended.
func (r *Router) Rescan() {
	type snapshot struct {
		channelID string
		batch     []*common.Message
	}

	r.mu.Lock()
	snaps := make([]snapshot, 0, len(r.channels))
	for id, feed := range r.channels {
		if len(feed.last) > 0 {
			snaps = append(snaps, snapshot{channelID: id, batch: feed.last})
		}
	}
	r.mu.Unlock()

	for _, s := range snaps {
		r.process(s.channelID, s.batch)
	}
}

func (r *Router) consume(channelID string, sub common.Subscription) {
	defer r.wg.Done()

	updates := sub.Updates()
	errs := sub.Err()
	for {
		select {
		case batch, ok := <-updates:
			if !ok {
				return
			}
			r.process(channelID, batch)
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			// subscription is presumed to recover on its own
			log.Printf("router: subscription error on channel %s: %v", channelID, err)
		}
	}
}

// process runs one synchronous qualification pass over a batch. All newly
// qualifying ids are marked seen before any presentation attempt, so rapid
// re-delivery of the same batch cannot re-present; only the newest qualifying
// message is presented, collapsing bursts into a single prompt.
func (r *Router) process(channelID string, batch []*common.Message) {
	r.mu.Lock()
	if feed, ok := r.channels[channelID]; ok {
		feed.last = batch
	}

	now := r.now()
	r.seen.Prune(now)

	var pick *common.Message
	for _, m := range batch {
		if !r.qualifies(m, now) {
			continue
		}
		if !r.seen.Add(m.ID, m.CreatedAt) {
			continue
		}
		if pick == nil || m.CreatedAt.After(pick.CreatedAt) {
			pick = m
		}
	}
	cb := r.sink.Current()
	r.mu.Unlock()

	if pick == nil {
		return
	}
	r.present(pick, cb)
}

func (r *Router) qualifies(m *common.Message, now time.Time) bool {
	if m.Read {
		return false
	}
	if !m.Urgent && !r.alwaysNotify[m.Kind] {
		return false
	}
	if m.SenderID == r.userID {
		return false
	}
	if now.Sub(m.CreatedAt) >= r.recency {
		return false
	}
	return true
}

func (r *Router) present(msg *common.Message, cb PresentFunc) {
	outcome := "sink"
	if cb != nil {
		cb(msg)
	} else {
		outcome = "notification"
		payload := map[string]string{
			"kind":       string(msg.Kind),
			"channel_id": msg.ChannelID,
			"message_id": msg.ID,
		}
		if msg.RelatedRecordID != "" {
			payload["related_record_id"] = msg.RelatedRecordID
		}
		// no further fallback exists, so a failure here is logged and swallowed
		if _, err := r.signal.Notify(titleFor(msg), truncate(msg.Body, maxNotifyBody), payload); err != nil {
			log.Printf("router: device notification failed for message %s: %v", msg.ID, err)
			outcome = "notify_failed"
		}
	}

	r.record(msg, outcome)
}

func (r *Router) record(msg *common.Message, outcome string) {
	if r.audit == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := r.audit.RecordNotification(ctx, msg.ID, msg.ChannelID, r.userID, outcome); err != nil {
		log.Printf("router: failed to record delivery of message %s: %v", msg.ID, err)
	}
}

func titleFor(msg *common.Message) string {
	name := msg.SenderName
	if name == "" {
		name = "Care team"
	}
	switch msg.Kind {
	case common.KindSeizureAlert:
		return fmt.Sprintf("Seizure alert from %s", name)
	case common.KindEmergency:
		return fmt.Sprintf("Emergency from %s", name)
	default:
		return fmt.Sprintf("Urgent message from %s", name)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
