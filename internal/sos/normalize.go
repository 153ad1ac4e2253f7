package sos

import (
	"strings"
)

// NormalizeNumber canonicalizes a raw phone number to international form.
// Numbers already carrying a leading "+" are kept as-is (after formatting
// characters are stripped); anything else has leading zeros removed and the
// default country code prepended.
func NormalizeNumber(raw, defaultCountryCode string) string {
	s := stripFormatting(raw)
	if s == "" {
		return s
	}
	if strings.HasPrefix(s, "+") {
		return s
	}
	s = strings.TrimLeft(s, "0")
	return defaultCountryCode + s
}

func stripFormatting(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		switch r {
		case ' ', '-', '(', ')', '.':
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}
