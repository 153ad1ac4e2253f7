package sos

import (
	"fmt"
	"strings"

	"carepulse/internal/common"
)

const emergencyHeader = "EMERGENCY ALERT"

// ComposeBody builds the single message body shared by all SOS destinations.
// The composition is pure: the same inputs always yield the same body.
func ComposeBody(userName string, coords *common.Coordinates, addressHint, contactName string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s: %s needs immediate help.\n", emergencyHeader, userName)

	if coords != nil {
		fmt.Fprintf(&b, "Location: %.6f, %.6f\n", coords.Lat, coords.Lon)
		fmt.Fprintf(&b, "Map: https://maps.google.com/?q=%.6f,%.6f\n", coords.Lat, coords.Lon)
		fmt.Fprintf(&b, "Navigate: geo:%.6f,%.6f\n", coords.Lat, coords.Lon)
	} else {
		b.WriteString("Location unknown - please call them to find out where they are.\n")
	}

	if addressHint != "" {
		fmt.Fprintf(&b, "Last known address: %s\n", addressHint)
	}

	if contactName != "" {
		fmt.Fprintf(&b, "Emergency contact: %s.", contactName)
	} else {
		b.WriteString("Please respond immediately.")
	}

	return b.String()
}
