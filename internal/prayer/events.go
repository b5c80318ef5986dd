package prayer

import (
	"time"

	"github.com/saifk/ramadan-companion/internal/model"
	"github.com/saifk/ramadan-companion/internal/timeutil"
)

// TimelineEvent is one resolved prayer event within a day schedule.
type TimelineEvent struct {
	Key   string
	Label string
	Time  time.Time
}

// EventTimeline resolves a day's events into chronological label/time pairs,
// skipping events without a parseable instant.
func EventTimeline(day *model.DaySchedule) []TimelineEvent {
	if day == nil {
		return nil
	}
	out := make([]TimelineEvent, 0, len(model.EventKeys))
	for _, key := range model.EventKeys {
		iso, ok := day.Events[key]
		if !ok {
			continue
		}
		t, ok := timeutil.ParseTimestamp(iso)
		if !ok {
			continue
		}
		out = append(out, TimelineEvent{Key: key, Label: EventLabel(key), Time: t})
	}
	return out
}

// NextEvent returns the earliest event at or after now across today's and
// tomorrow's schedules, or nil when neither holds an upcoming event.
func NextEvent(today, tomorrow *model.DaySchedule, now time.Time) *TimelineEvent {
	var best *TimelineEvent
	for _, day := range []*model.DaySchedule{today, tomorrow} {
		for _, event := range EventTimeline(day) {
			if event.Time.Before(now) {
				continue
			}
			if best == nil || event.Time.Before(best.Time) {
				e := event
				best = &e
			}
		}
	}
	return best
}
