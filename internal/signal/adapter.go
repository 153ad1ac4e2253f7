// Package signal is the device-level sender consumed by the router and the
// SOS fan-out. The adapter here is the one the demo shell runs with: local
// notifications go to the process log, the native SMS composer is absent, and
// SMS delivery happens through an HTTP SMS-gateway relay. Mobile builds
// supply their own common.DeviceSignal.
package signal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"carepulse/internal/common"
)

type Adapter struct {
	baseURL string
	client  *http.Client

	// fixed coordinates for installs without a location source; nil means
	// location is reported unavailable
	coords *common.Coordinates
}

func NewAdapter(baseURL string, coords *common.Coordinates) *Adapter {
	return &Adapter{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
		coords:  coords,
	}
}

func (a *Adapter) Notify(title, body string, payload map[string]string) (string, error) {
	id := uuid.NewString()
	log.Printf("signal: notification %s: %s - %s (payload %v)", id, title, body, payload)
	return id, nil
}

func (a *Adapter) SMSAvailable() bool {
	return false
}

func (a *Adapter) SendSMS(ctx context.Context, destinations []string, body string) error {
	return fmt.Errorf("no native sms composer available")
}

type relaySendRequest struct {
	Recipients []string `json:"recipients"`
	Message    string   `json:"message"`
}

// SendRelaySMS posts one message to one destination through the SMS gateway
// device identified by deviceTarget.
func (a *Adapter) SendRelaySMS(ctx context.Context, apiKey, deviceTarget, destination, body string) error {
	if apiKey == "" || deviceTarget == "" {
		return fmt.Errorf("relay credentials missing")
	}

	payload, err := json.Marshal(relaySendRequest{
		Recipients: []string{destination},
		Message:    body,
	})
	if err != nil {
		return fmt.Errorf("failed to encode relay request: %w", err)
	}

	url := fmt.Sprintf("%s/gateway/devices/%s/send-sms", a.baseURL, deviceTarget)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", apiKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("relay request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("relay returned %d: %s", resp.StatusCode, string(text))
	}
	return nil
}

type relayDevice struct {
	ID      string `json:"_id"`
	Enabled bool   `json:"enabled"`
}

type relayDeviceList struct {
	Data []relayDevice `json:"data"`
}

// DiscoverRelayTarget asks the gateway for registered devices and returns the
// first enabled one, or "" when none can serve.
func (a *Adapter) DiscoverRelayTarget(ctx context.Context, apiKey string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/gateway/devices", nil)
	if err != nil {
		return "", fmt.Errorf("failed to build discovery request: %w", err)
	}
	req.Header.Set("x-api-key", apiKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("discovery request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("discovery returned %d", resp.StatusCode)
	}

	var list relayDeviceList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return "", fmt.Errorf("failed to decode device list: %w", err)
	}
	for _, d := range list.Data {
		if d.Enabled && d.ID != "" {
			return d.ID, nil
		}
	}
	return "", nil
}

func (a *Adapter) CurrentCoordinates(ctx context.Context, timeout time.Duration) (*common.Coordinates, error) {
	if a.coords == nil {
		return nil, fmt.Errorf("no location source configured")
	}
	c := *a.coords
	return &c, nil
}
