package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScore(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *int
	}{
		{"always label", "Always", intp(4)},
		{"most times label", "Most times", intp(3)},
		{"sometimes label", "Sometimes", intp(2)},
		{"never label", "Never", intp(1)},
		{"na label", "N/A", intp(0)},
		{"digit four", "4", intp(4)},
		{"digit one", "1", intp(1)},
		{"whitespace around label", "  Always  ", intp(4)},
		{"empty cell", "", nil},
		{"whitespace only", "   ", nil},
		{"zero out of range", "0", nil},
		{"five out of range", "5", nil},
		{"negative", "-1", nil},
		{"garbage", "often", nil},
		{"case mismatch", "always", nil},
		{"float", "3.5", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseScore(tt.raw)
			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}

func TestParseTimestampSerial(t *testing.T) {
	// Serial 45000 is 2023-03-15 in the 1900 date system.
	got := ParseTimestamp("45000")
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC), *got)

	// The fraction is the time of day.
	got = ParseTimestamp("45000.5")
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2023, time.March, 15, 12, 0, 0, 0, time.UTC), *got)
}

func TestParseTimestampLayouts(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"rfc3339", "2024-06-01T09:30:00Z", time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)},
		{"date time", "2024-06-01 09:30:00", time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)},
		{"date only", "2024-06-01", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"us style", "6/1/2024 9:30", time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTimestamp(tt.raw)
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got), "want %v, got %v", tt.want, *got)
		})
	}
}

func TestParseTimestampInvalid(t *testing.T) {
	for _, raw := range []string{"", "   ", "not a date", "0", "-12"} {
		assert.Nil(t, ParseTimestamp(raw), "raw %q should not parse", raw)
	}
}

func intp(v int) *int { return &v }

// BenchmarkParseScore benchmarks rating normalization across cell shapes.
func BenchmarkParseScore(b *testing.B) {
	cells := []string{"Always", "Most times", "3", "N/A", "", "garbage"}

	for b.Loop() {
		for _, cell := range cells {
			ParseScore(cell)
		}
	}
}

// BenchmarkParseTimestamp benchmarks serial and layout timestamp parsing.
func BenchmarkParseTimestamp(b *testing.B) {
	cells := []string{"45000.5", "2024-06-01T09:30:00Z", "6/1/2024 9:30", "not a date"}

	for b.Loop() {
		for _, cell := range cells {
			ParseTimestamp(cell)
		}
	}
}
