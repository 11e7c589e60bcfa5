package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"exact", 3.0, 3.0},
		{"round down", 3.333333, 3.33},
		{"round up", 2.666666, 2.67},
		{"half rounds up", 2.375, 2.38},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Round2(tt.input), 1e-9)
		})
	}
}

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		values   []int
		expected float64
	}{
		{"empty", nil, 0},
		{"single", []int{4}, 4},
		{"mixed", []int{4, 4, 4, 4, 4, 2, 2, 2, 2, 2}, 3},
		{"uneven", []int{1, 2}, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Mean(tt.values), 1e-9)
		})
	}
}
