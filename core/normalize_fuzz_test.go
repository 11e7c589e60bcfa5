package core

import (
	"testing"

	"github.com/threesixty-dev/threesixty/schema"
)

// FuzzParseScore asserts that arbitrary cell content never produces a rating
// outside [0, 4] and never panics. 0 is the N/A encoding.
func FuzzParseScore(f *testing.F) {
	for _, seed := range []string{"Always", "Most times", "N/A", "4", "0", "", "  3 ", "often", "3.5", "-1"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, raw string) {
		score := ParseScore(raw)
		if score != nil && (*score < 0 || *score > schema.MaxScore) {
			t.Errorf("ParseScore(%q) = %d, outside [0, %d]", raw, *score, schema.MaxScore)
		}
	})
}

// FuzzParseTimestamp asserts that arbitrary cell content never panics.
func FuzzParseTimestamp(f *testing.F) {
	for _, seed := range []string{"45000", "45000.5", "2024-06-01", "6/1/2024 9:30", "", "not a date", "-1", "1e308"} {
		f.Add(seed)
	}
	f.Fuzz(func(_ *testing.T, raw string) {
		_ = ParseTimestamp(raw)
	})
}
