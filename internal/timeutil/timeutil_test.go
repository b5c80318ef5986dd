package timeutil_test

import (
	"testing"
	"time"

	"github.com/saifk/ramadan-companion/internal/timeutil"
)

func TestDayKeyIn(t *testing.T) {
	hk, err := timeutil.Zone("Asia/Hong_Kong")
	if err != nil {
		t.Fatal(err)
	}
	// 18:30 UTC is already the next day in Hong Kong (UTC+8).
	utcEvening := time.Date(2026, 3, 1, 18, 30, 0, 0, time.UTC)
	if got := timeutil.DayKeyIn(utcEvening, hk); got != "2026-03-02" {
		t.Errorf("DayKeyIn = %q, want %q", got, "2026-03-02")
	}
	if got := timeutil.DayKeyIn(utcEvening, time.UTC); got != "2026-03-01" {
		t.Errorf("DayKeyIn UTC = %q, want %q", got, "2026-03-01")
	}
}

func TestZoneRejectsUnknownName(t *testing.T) {
	if _, err := timeutil.Zone("Mars/Olympus_Mons"); err == nil {
		t.Error("Zone: expected error for unknown timezone")
	}
}

func TestWeekKey(t *testing.T) {
	// 2026-02-27 is a Friday in ISO week 9.
	fri := time.Date(2026, 2, 27, 10, 0, 0, 0, time.UTC)
	if got := timeutil.WeekKey(fri); got != "2026-W09" {
		t.Errorf("WeekKey = %q, want %q", got, "2026-W09")
	}
}

func TestCountdown(t *testing.T) {
	now := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	tests := []struct {
		target time.Time
		want   string
	}{
		{now.Add(30 * time.Minute), "00:30:00"},
		{now.Add(90*time.Minute + 5*time.Second), "01:30:05"},
		{now, "00:00:00"},
		{now.Add(-time.Hour), "00:00:00"}, // never counts backwards
	}
	for _, tt := range tests {
		if got := timeutil.Countdown(tt.target, now); got != tt.want {
			t.Errorf("Countdown(%v) = %q, want %q", tt.target, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "0s"},
		{45, "45s"},
		{60, "1m"},
		{3600, "1h 0m"},
		{6000, "1h 40m"},
	}
	for _, tt := range tests {
		if got := timeutil.FormatDuration(tt.seconds); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		value   string
		minutes int
		ok      bool
	}{
		{"00:00", 0, true},
		{"09:00", 540, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"9:00", 0, false},
		{"09-00", 0, false},
		{"ab:cd", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		minutes, ok := timeutil.ParseClock(tt.value)
		if ok != tt.ok || minutes != tt.minutes {
			t.Errorf("ParseClock(%q) = (%d, %v), want (%d, %v)", tt.value, minutes, ok, tt.minutes, tt.ok)
		}
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	orig := time.Date(2026, 3, 1, 21, 30, 0, 0, time.UTC)
	iso := timeutil.Timestamp(orig)
	if iso != "2026-03-01T21:30:00Z" {
		t.Errorf("Timestamp = %q", iso)
	}
	parsed, ok := timeutil.ParseTimestamp(iso)
	if !ok || !parsed.Equal(orig) {
		t.Errorf("ParseTimestamp(%q) = (%v, %v)", iso, parsed, ok)
	}
	if _, ok := timeutil.ParseTimestamp("yesterday"); ok {
		t.Error("ParseTimestamp: expected failure for non-timestamp input")
	}
}

func TestMinutesSinceMidnightIn(t *testing.T) {
	hk, err := timeutil.Zone("Asia/Hong_Kong")
	if err != nil {
		t.Fatal(err)
	}
	// 01:00 UTC is 09:00 in Hong Kong.
	morning := time.Date(2026, 3, 1, 1, 0, 0, 0, time.UTC)
	if got := timeutil.MinutesSinceMidnightIn(morning, hk); got != 540 {
		t.Errorf("MinutesSinceMidnightIn = %d, want 540", got)
	}
}
