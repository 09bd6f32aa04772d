package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGate_Check(t *testing.T) {
	tests := []struct {
		name      string
		secret    string
		candidate string
		expected  bool
	}{
		{
			name:      "Matching secret",
			secret:    "admin123",
			candidate: "admin123",
			expected:  true,
		},
		{
			name:      "Wrong secret",
			secret:    "admin123",
			candidate: "letmein",
			expected:  false,
		},
		{
			name:      "Empty candidate",
			secret:    "admin123",
			candidate: "",
			expected:  false,
		},
		{
			name:      "Prefix is not enough",
			secret:    "admin123",
			candidate: "admin12",
			expected:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := NewGate(tt.secret)
			assert.Equal(t, tt.expected, gate.Check(tt.candidate))
		})
	}
}
