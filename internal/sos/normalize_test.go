package sos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeNumber(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "bare local number gets default country code",
			raw:      "9876543210",
			expected: "+919876543210",
		},
		{
			name:     "international number is unchanged",
			raw:      "+19876543210",
			expected: "+19876543210",
		},
		{
			name:     "leading zero stripped before prefixing",
			raw:      "09876543210",
			expected: "+919876543210",
		},
		{
			name:     "multiple leading zeros stripped",
			raw:      "009876543210",
			expected: "+919876543210",
		},
		{
			name:     "formatting characters removed",
			raw:      "98765 432-10",
			expected: "+919876543210",
		},
		{
			name:     "formatted international number keeps prefix",
			raw:      "+91 98765 43210",
			expected: "+919876543210",
		},
		{
			name:     "empty input stays empty",
			raw:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeNumber(tt.raw, "+91"))
		})
	}
}

func TestNormalizeNumber_Idempotent(t *testing.T) {
	once := NormalizeNumber("09876543210", "+91")
	twice := NormalizeNumber(once, "+91")
	assert.Equal(t, once, twice)
}
