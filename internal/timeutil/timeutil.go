package timeutil

import (
	"fmt"
	"time"
)

// Zone resolves an IANA timezone name. Invalid names fail loudly here;
// settings validation rejects them before any caller reaches this point.
func Zone(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", name, err)
	}
	return loc, nil
}

// DayKeyIn returns the YYYY-MM-DD identity of t's calendar day in loc.
func DayKeyIn(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}

// LocalDayKey returns the day key in the host-local zone. Used for the
// checklist day stamp.
func LocalDayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// WeekKey returns an ISO-8601 week label like "2026-W09".
//
// Computed in the host-local zone while day keys and prayer events use the
// configured location zone. The asymmetry is deliberate: checklist resets
// follow the device clock, prayer math follows the configured place.
func WeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// MonthStampIn returns the calendar year and month of t as observed in loc.
func MonthStampIn(t time.Time, loc *time.Location) (int, time.Month) {
	lt := t.In(loc)
	return lt.Year(), lt.Month()
}

// WeekdayIndexIn returns 0 (Sunday) through 6 (Saturday) in loc.
func WeekdayIndexIn(t time.Time, loc *time.Location) int {
	return int(t.In(loc).Weekday())
}

// MinutesSinceMidnightIn returns 0..1439 for t as observed in loc.
func MinutesSinceMidnightIn(t time.Time, loc *time.Location) int {
	lt := t.In(loc)
	return lt.Hour()*60 + lt.Minute()
}

// Countdown formats the wall-clock distance from now to target as HH:MM:SS,
// clamped at zero so it never counts backwards past a target.
func Countdown(target, now time.Time) string {
	seconds := int64(target.Sub(now).Seconds())
	if seconds < 0 {
		seconds = 0
	}
	return FormatDurationHHMMSS(seconds)
}

// FormatDurationHHMMSS formats seconds as HH:MM:SS.
func FormatDurationHHMMSS(seconds int64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// FormatDuration formats seconds as a human-readable string like "1h 40m" or "45s".
func FormatDuration(seconds int64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%ds", s)
}

// ParseClock parses an "HH:MM" wall-clock value into minutes since midnight.
// Returns false for anything outside 00:00..23:59 or not matching the shape.
func ParseClock(value string) (int, bool) {
	if len(value) != 5 || value[2] != ':' {
		return 0, false
	}
	for i, c := range value {
		if i != 2 && (c < '0' || c > '9') {
			return 0, false
		}
	}
	hours := int(value[0]-'0')*10 + int(value[1]-'0')
	minutes := int(value[3]-'0')*10 + int(value[4]-'0')
	if hours > 23 || minutes > 59 {
		return 0, false
	}
	return hours*60 + minutes, true
}

// ParseTimestamp parses an RFC 3339 timestamp, reporting whether it was valid.
func ParseTimestamp(value string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Timestamp renders t as the canonical persisted RFC 3339 UTC form.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
