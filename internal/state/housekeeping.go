package state

import (
	"time"

	"github.com/saifk/ramadan-companion/internal/model"
	"github.com/saifk/ramadan-companion/internal/timeutil"
)

// Housekeep resets checklist completion when the calendar day or ISO week
// has changed since the stored stamps. The two checks are independent; both
// can fire in one call (first run of a new week that is also a new day).
// When neither boundary crossed the same pointer comes back, which makes
// the periodic tick idempotent and free.
//
// Day and week stamps are host-local on purpose; see timeutil.WeekKey.
func Housekeep(s *model.AppState, now time.Time) *model.AppState {
	dayStamp := timeutil.LocalDayKey(now)
	weekStamp := timeutil.WeekKey(now)

	changed := false
	next := s

	if s.ChecklistMeta.DayStamp != dayStamp {
		clone := *next
		clone.Checklists = resetCategories(next.Checklists, model.DayCategories)
		clone.ChecklistMeta.DayStamp = dayStamp
		next = &clone
		changed = true
	}

	if next.ChecklistMeta.WeekStamp != weekStamp {
		clone := *next
		clone.Checklists = resetCategories(next.Checklists, model.WeekCategories)
		clone.ChecklistMeta.WeekStamp = weekStamp
		next = &clone
		changed = true
	}

	if !changed {
		return s
	}
	return next
}

func resetCategories(checklists map[string][]model.ChecklistItem, categories []string) map[string][]model.ChecklistItem {
	out := copyChecklists(checklists)
	for _, category := range categories {
		items := out[category]
		reset := make([]model.ChecklistItem, len(items))
		for i, item := range items {
			item.Done = false
			reset[i] = item
		}
		out[category] = reset
	}
	return out
}
