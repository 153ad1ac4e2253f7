// Package sos delivers one composed emergency message to a list of phone
// numbers, trying a primary device channel per destination and falling back
// to a third-party relay independently for each. A failure for one
// destination never aborts the others.
package sos

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"carepulse/internal/common"
)

// Delivery channels reported in outcomes.
const (
	ChannelSMS   = "sms"
	ChannelRelay = "relay"
)

// Terminal failure states of the per-destination delivery state machine:
// primary -> relay fallback -> rediscovered-target retry. At most two relay
// attempts are ever made for one destination.
const (
	StatusPrimaryFailed   = "primary_failed"
	StatusFallbackFailed  = "fallback_failed"
	StatusDiscoveryFailed = "discovery_failed"
)

type Options struct {
	UserName    string
	ContactName string
	AddressHint string
}

type Failure struct {
	Number string `json:"number"`
	Status string `json:"status,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// Report aggregates the per-destination outcomes of one invocation. Every
// destination appears in exactly one of Sent or Failed.
type Report struct {
	Sent    []string            `json:"sent"`
	Failed  []Failure           `json:"failed"`
	Message string              `json:"message"`
	Coords  *common.Coordinates `json:"coords,omitempty"`
}

type Config struct {
	DefaultCountryCode string
	LocationTimeout    time.Duration
	RelayAPIKey        string
	RelayDeviceID      string
}

type Fanout struct {
	signal common.DeviceSignal
	audit  common.DeliveryLog // optional
	cfg    Config
}

func NewFanout(signal common.DeviceSignal, audit common.DeliveryLog, cfg Config) *Fanout {
	return &Fanout{
		signal: signal,
		audit:  audit,
		cfg:    cfg,
	}
}

// Send composes the alert once and delivers it to every destination,
// returning only after each has a terminal outcome. Location acquisition is
// best effort: on timeout or denial the message carries a location-unknown
// notice instead of coordinates.
func (f *Fanout) Send(ctx context.Context, numbers []string, opts Options) *Report {
	invocationID := uuid.NewString()

	coords := f.locate(ctx)
	body := ComposeBody(opts.UserName, coords, opts.AddressHint, opts.ContactName)

	report := &Report{
		Sent:    []string{},
		Failed:  []Failure{},
		Message: body,
		Coords:  coords,
	}

	for _, raw := range numbers {
		number := NormalizeNumber(raw, f.cfg.DefaultCountryCode)
		if number == "" {
			report.Failed = append(report.Failed, Failure{Number: raw, Status: StatusPrimaryFailed, Reason: "empty number"})
			continue
		}

		channel, status, reason, ok := f.deliver(ctx, number, body)
		if ok {
			report.Sent = append(report.Sent, number)
			f.record(invocationID, number, channel, "sent", "")
		} else {
			report.Failed = append(report.Failed, Failure{Number: number, Status: status, Reason: reason})
			f.record(invocationID, number, channel, status, reason)
		}
	}

	log.Printf("sos: invocation %s finished: %d sent, %d failed",
		invocationID, len(report.Sent), len(report.Failed))
	return report
}

func (f *Fanout) locate(ctx context.Context) *common.Coordinates {
	coords, err := f.signal.CurrentCoordinates(ctx, f.cfg.LocationTimeout)
	if err != nil {
		log.Printf("sos: location unavailable: %v", err)
		return nil
	}
	return coords
}

// deliver walks one destination through the delivery state machine.
func (f *Fanout) deliver(ctx context.Context, number, body string) (channel, status, reason string, ok bool) {
	if f.signal.SMSAvailable() {
		if err := f.signal.SendSMS(ctx, []string{number}, body); err == nil {
			return ChannelSMS, "", "", true
		} else {
			log.Printf("sos: primary send to %s failed: %v", number, err)
		}
	}

	// fatal misconfiguration yields a failure record, not an error return
	if f.cfg.RelayAPIKey == "" || f.cfg.RelayDeviceID == "" {
		return "", StatusFallbackFailed, "relay credentials not configured", false
	}

	err := f.signal.SendRelaySMS(ctx, f.cfg.RelayAPIKey, f.cfg.RelayDeviceID, number, body)
	if err == nil {
		return ChannelRelay, "", "", true
	}
	log.Printf("sos: relay send to %s failed: %v", number, err)

	alt, derr := f.signal.DiscoverRelayTarget(ctx, f.cfg.RelayAPIKey)
	if derr != nil || alt == "" {
		return "", StatusFallbackFailed, err.Error(), false
	}
	if err := f.signal.SendRelaySMS(ctx, f.cfg.RelayAPIKey, alt, number, body); err != nil {
		return "", StatusDiscoveryFailed, err.Error(), false
	}
	return ChannelRelay, "", "", true
}

func (f *Fanout) record(invocationID, number, channel, status, reason string) {
	if f.audit == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := f.audit.RecordSosOutcome(ctx, invocationID, number, channel, status, reason); err != nil {
		log.Printf("sos: failed to record outcome for %s: %v", number, err)
	}
}
