package common

import (
	"context"
	"time"
)

// Subscription is a live feed over one channel. Updates delivers the full
// current ordered message set whenever the underlying set changes. Close stops
// further delivery; it is safe to call more than once.
type Subscription interface {
	Updates() <-chan []*Message
	Err() <-chan error
	Close()
}

// MessageStore is the persistence collaborator: document CRUD plus the
// change-subscription primitive. Reconnect behavior is the store's own concern.
type MessageStore interface {
	CreateMessage(ctx context.Context, msg *Message) (string, error)
	MarkRead(ctx context.Context, messageID string) error
	CreateAlert(ctx context.Context, alert *EmergencyAlert) (string, error)
	UpdateAlertStatus(ctx context.Context, alertID string, status AlertStatus) error
	Subscribe(ctx context.Context, channelID string) (Subscription, error)
}

// DeviceSignal is the device-level sender: local/push notifications, the
// native SMS path and the third-party relay fallback, plus location.
type DeviceSignal interface {
	Notify(title, body string, payload map[string]string) (string, error)
	SMSAvailable() bool
	SendSMS(ctx context.Context, destinations []string, body string) error
	SendRelaySMS(ctx context.Context, apiKey, deviceTarget, destination, body string) error
	DiscoverRelayTarget(ctx context.Context, apiKey string) (string, error)
	CurrentCoordinates(ctx context.Context, timeout time.Duration) (*Coordinates, error)
}

// DeliveryLog records terminal delivery outcomes for operational audit.
// Implementations must tolerate being called on hot paths: failures are
// returned, never panicked, and callers log and move on.
type DeliveryLog interface {
	RecordNotification(ctx context.Context, messageID, channelID, recipientID, outcome string) error
	RecordSosOutcome(ctx context.Context, invocationID, number, channel, status, reason string) error
}
