package sos

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"carepulse/internal/common"
)

func TestComposeBody_Deterministic(t *testing.T) {
	coords := &common.Coordinates{Lat: 28.613939, Lon: 77.209023}

	first := ComposeBody("Aarav", coords, "Flat 4B, Green Park", "Dr. Mehta")
	second := ComposeBody("Aarav", coords, "Flat 4B, Green Park", "Dr. Mehta")

	assert.Equal(t, first, second)
}

func TestComposeBody_WithCoordinates(t *testing.T) {
	coords := &common.Coordinates{Lat: 28.613939, Lon: 77.209023}
	body := ComposeBody("Aarav", coords, "", "")

	assert.Contains(t, body, "EMERGENCY ALERT")
	assert.Contains(t, body, "Aarav")
	assert.Contains(t, body, "28.613939, 77.209023")
	assert.Contains(t, body, "https://maps.google.com/?q=28.613939,77.209023")
	assert.Contains(t, body, "geo:28.613939,77.209023")
	assert.NotContains(t, body, "Location unknown")
	assert.Contains(t, body, "Please respond immediately.")
}

func TestComposeBody_WithoutCoordinates(t *testing.T) {
	body := ComposeBody("Aarav", nil, "", "Dr. Mehta")

	assert.Contains(t, body, "Location unknown")
	assert.NotContains(t, body, "maps.google.com")
	assert.Contains(t, body, "Emergency contact: Dr. Mehta.")
	assert.NotContains(t, body, "Please respond immediately.")
}

func TestComposeBody_AddressHint(t *testing.T) {
	body := ComposeBody("Aarav", nil, "Flat 4B, Green Park", "")
	assert.Contains(t, body, "Last known address: Flat 4B, Green Park")
}
