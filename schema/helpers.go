package schema

import "math"

// Round2 rounds to 2 decimal places using standard rounding.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds to 1 decimal place using standard rounding.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Mean returns the arithmetic mean of the values, or 0 for an empty slice.
func Mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

// IntPtr returns a pointer to v. Convenience for building test fixtures and
// extractor output.
func IntPtr(v int) *int {
	return &v
}

// StrPtr returns a pointer to s.
func StrPtr(s string) *string {
	return &s
}
