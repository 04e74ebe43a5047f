package timeutil

import (
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	if got := ParseTimestamp("2024-01-02"); !got.Equal(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected plain date to parse, got %s", got)
	}
	if got := ParseTimestamp("2024-09-05T09:00:00.000Z"); got.Hour() != 9 {
		t.Fatalf("expected fractional RFC3339 to parse, got %s", got)
	}
	if got := ParseTimestamp("next week"); !got.IsZero() {
		t.Fatalf("expected zero time for garbage, got %s", got)
	}
}

func TestFormatDateUsesLocation(t *testing.T) {
	loc, err := LoadLocation(DefaultZone)
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	value := time.Date(2024, 9, 5, 22, 30, 0, 0, time.UTC)

	if got := FormatDate(value, loc); got != "06 Sep 2024" {
		t.Fatalf("expected date in Athens, got %s", got)
	}
	if got := FormatTime(value, loc); got != "01:30" {
		t.Fatalf("expected time in Athens, got %s", got)
	}
}

func TestFormatZeroIsUnknown(t *testing.T) {
	if got := FormatDate(time.Time{}, time.UTC); got != Unknown {
		t.Fatalf("expected %s, got %s", Unknown, got)
	}
	if got := FormatTime(time.Time{}, nil); got != Unknown {
		t.Fatalf("expected %s, got %s", Unknown, got)
	}
}

func TestLoadLocation(t *testing.T) {
	if loc, err := LoadLocation(""); err != nil || loc != time.UTC {
		t.Fatalf("expected UTC for empty zone, got %v %v", loc, err)
	}
	if _, err := LoadLocation("Mars/Olympus"); err == nil {
		t.Fatalf("expected error for unknown zone")
	}
}
