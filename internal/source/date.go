package source

import (
	"strings"
	"time"
)

// dateLayouts are tried in order; the first that parses wins.
// Single-digit day and month fields are accepted.
var dateLayouts = []string{
	"2006-1-2", // YYYY-MM-DD
	"2.1.2006", // DD.MM.YYYY
	"2006/1/2", // YYYY/MM/DD
	"2/1/2006", // DD/MM/YYYY
}

// ParseDate parses a ledger date in any of the supported layouts.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MonthKey returns the YYYY-MM month of a ledger date.
func MonthKey(s string) (string, bool) {
	t, ok := ParseDate(s)
	if !ok {
		return "", false
	}
	return t.Format("2006-01"), true
}
