package timeutil

import (
	"strings"
	"time"
	_ "time/tzdata"
)

const (
	// DateLayout is the display date format (05 Sep 2024).
	DateLayout = "02 Jan 2006"
	// TimeLayout is the display clock format (09:30).
	TimeLayout = "15:04"
	// ISODateLayout is the plain calendar date accepted from the content store.
	ISODateLayout = "2006-01-02"
	// Unknown is shown for timestamps that were never set.
	Unknown = "TBA"
)

// DefaultZone is the display zone used when none is configured.
const DefaultZone = "Europe/Athens"

// LoadLocation resolves a display zone name, falling back to UTC for an
// empty name. Unknown names are an error.
func LoadLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(name)
}

// ParseTimestamp accepts RFC 3339 datetimes and plain dates; anything else is the zero time.
func ParseTimestamp(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	if t, err := time.Parse(ISODateLayout, raw); err == nil {
		return t
	}
	return time.Time{}
}

// FormatDate formats t as a display date in loc, or Unknown for the zero time.
func FormatDate(t time.Time, loc *time.Location) string {
	return format(t, loc, DateLayout)
}

// FormatTime formats t as a display clock time in loc, or Unknown for the zero time.
func FormatTime(t time.Time, loc *time.Location) string {
	return format(t, loc, TimeLayout)
}

func format(t time.Time, loc *time.Location, layout string) string {
	if t.IsZero() {
		return Unknown
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(layout)
}
