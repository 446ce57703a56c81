package store

import (
	"strings"
	"time"
)

// Timestamps embedded in jsonb documents arrive in whatever shape the
// mobile client wrote. This is the only place that accepts multiple
// shapes; everything past the store boundary sees *time.Time.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp returns nil for anything unparsable; callers drop the
// value rather than erroring.
func ParseTimestamp(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
