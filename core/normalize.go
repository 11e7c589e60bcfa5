// Package core has core logic for ingesting, filtering and aggregating
// survey responses.
package core

import (
	"strconv"
	"strings"
	"time"

	"github.com/threesixty-dev/threesixty/schema"
)

// excelEpoch is day zero of the 1900 date system used by xlsx serial dates.
// It is 1899-12-30 rather than 1899-12-31 because of the fictitious
// 1900-02-29 that spreadsheet serials inherited from Lotus 1-2-3.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// timestampLayouts are tried in order for non-serial timestamp cells.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006",
}

// ParseScore converts a raw cell value into a canonical rating, or nil when
// the cell is empty or unparseable. Known labels and digit strings map
// through schema.RatingScale ("N/A" yields 0, outside the valid range);
// anything else is integer-parsed and accepted only inside [1,4]. The
// function is total: spreadsheet cells are untrusted and must never panic.
func ParseScore(raw string) *int {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil
	}
	if score, ok := schema.RatingScale[value]; ok {
		return &score
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 || n > schema.MaxScore {
		return nil
	}
	return &n
}

// ParseTimestamp converts a raw cell value into a timestamp, or nil when the
// cell is empty or unparseable. Numeric cells are Excel serial dates (days
// since the 1900-system epoch, with the time of day as the fraction); other
// cells are tried against common date layouts. Failures resolve to nil,
// never an error.
func ParseTimestamp(raw string) *time.Time {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil
	}

	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		// 2958465 is 9999-12-31, the largest serial a spreadsheet can hold.
		if serial <= 0 || serial > 2958465 {
			return nil
		}
		days := int(serial)
		frac := serial - float64(days)
		t := excelEpoch.AddDate(0, 0, days).Add(time.Duration(frac * 24 * float64(time.Hour)))
		return &t
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}
