package prayer

import (
	"strconv"
	"time"

	"github.com/saifk/ramadan-companion/internal/model"
	"github.com/saifk/ramadan-companion/internal/timeutil"
)

// NewTeachingRange creates a quiet-hours range with the default 09:00-11:00
// window and a fresh id.
func NewTeachingRange() model.TeachingRange {
	return model.TeachingRange{
		ID:    model.NewID(),
		Start: "09:00",
		End:   "11:00",
	}
}

// IsWithinTeachingHours reports whether now falls inside a configured quiet
// hours range. Weekday and minutes are both evaluated in the configured
// location timezone; ranges are half-open [start, end). Reminders still fire
// and log during quiet hours, only the desktop notification goes silent.
func IsWithinTeachingHours(now time.Time, settings model.PrayerSettings) bool {
	if !settings.TeachingMode.Enabled {
		return false
	}
	loc, err := timeutil.Zone(settings.Location.TimeZone)
	if err != nil {
		return false
	}

	weekday := timeutil.WeekdayIndexIn(now, loc)
	ranges := settings.TeachingMode.Schedule[strconv.Itoa(weekday)]
	if len(ranges) == 0 {
		return false
	}

	current := timeutil.MinutesSinceMidnightIn(now, loc)
	for _, r := range ranges {
		start, okStart := timeutil.ParseClock(r.Start)
		end, okEnd := timeutil.ParseClock(r.End)
		if !okStart || !okEnd {
			continue
		}
		if current >= start && current < end {
			return true
		}
	}
	return false
}
