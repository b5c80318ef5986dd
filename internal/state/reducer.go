package state

import (
	"strings"
	"time"

	"github.com/saifk/ramadan-companion/internal/model"
	"github.com/saifk/ramadan-companion/internal/prayer"
	"github.com/saifk/ramadan-companion/internal/timeutil"
)

// Caps bounding unbounded growth on a device that is never restarted.
// Oldest entries are evicted first.
const (
	activeReminderCap  = 40
	snoozedReminderCap = 50
)

// Reducer applies actions to state. The schedule calculator is injected so
// cache population stays deterministic under test.
type Reducer struct {
	Calc prayer.Calculator
}

// Reduce is pure and total: it never panics, and any unknown or
// ineffective action returns the same pointer so callers can detect
// unchanged state cheaply.
func (r Reducer) Reduce(s *model.AppState, a Action) *model.AppState {
	if s == nil {
		return s
	}

	switch act := a.(type) {
	case AddSession:
		if act.Session.DurationSeconds <= 0 {
			return s
		}
		next := *s
		next.Sessions = append([]model.ReadingSession{act.Session}, s.Sessions...)
		model.SortSessions(next.Sessions)
		return &next

	case AddJournalEntry:
		next := *s
		next.Journal = append([]model.JournalEntry{act.Entry}, s.Journal...)
		model.SortJournal(next.Journal)
		return &next

	case AddChecklistItem:
		title := strings.TrimSpace(act.Title)
		items, ok := s.Checklists[act.Category]
		if title == "" || !ok {
			return s
		}
		next := *s
		next.Checklists = copyChecklists(s.Checklists)
		next.Checklists[act.Category] = append(append([]model.ChecklistItem{}, items...), model.ChecklistItem{
			ID:    model.NewID(),
			Title: title,
			Done:  false,
		})
		return &next

	case ToggleChecklistItem:
		items, ok := s.Checklists[act.Category]
		if !ok {
			return s
		}
		matched := false
		updated := make([]model.ChecklistItem, len(items))
		for i, item := range items {
			if item.ID == act.ItemID {
				item.Done = !item.Done
				matched = true
			}
			updated[i] = item
		}
		if !matched {
			return s
		}
		next := *s
		next.Checklists = copyChecklists(s.Checklists)
		next.Checklists[act.Category] = updated
		return &next

	case DeleteChecklistItem:
		items, ok := s.Checklists[act.Category]
		if !ok {
			return s
		}
		next := *s
		next.Checklists = copyChecklists(s.Checklists)
		remaining := make([]model.ChecklistItem, 0, len(items))
		for _, item := range items {
			if item.ID != act.ItemID {
				remaining = append(remaining, item)
			}
		}
		next.Checklists[act.Category] = remaining
		return &next

	case RunHousekeeping:
		return Housekeep(s, act.Now)

	case SaveSettings:
		next := *s
		next.Settings = act.Settings
		return &next

	case SetSelectedMonth:
		next := *s
		next.Prayer.SelectedYear = act.Year
		next.Prayer.SelectedMonth = act.Month
		return &next

	case EnsureMonthCache:
		return prayer.EnsureMonthCache(s, act.Year, act.Month, act.Force, act.GeneratedAt, r.Calc)

	case SetReminderOffsets:
		next := *s
		next.Settings.Reminders = model.CopyReminderOffsets(s.Settings.Reminders)
		next.Settings.Reminders[act.EventKey] = append([]int(nil), act.Offsets...)
		return &next

	case SetQuoteNotificationEnabled:
		next := *s
		next.Settings.QuoteNotificationEnabled = act.Enabled
		return &next

	case SetQuoteNotificationTime:
		if _, ok := timeutil.ParseClock(act.Time); !ok {
			return s
		}
		next := *s
		next.Settings.QuoteNotificationTime = act.Time
		return &next

	case SetTeachingModeEnabled:
		next := *s
		next.Settings.TeachingMode.Enabled = act.Enabled
		return &next

	case AddTeachingRange:
		next := *s
		next.Settings.TeachingMode.Schedule = copyTeachingSchedule(s.Settings.TeachingMode.Schedule)
		current := next.Settings.TeachingMode.Schedule[act.DayKey]
		next.Settings.TeachingMode.Schedule[act.DayKey] = append(current, prayer.NewTeachingRange())
		return &next

	case UpdateTeachingRange:
		next := *s
		next.Settings.TeachingMode.Schedule = copyTeachingSchedule(s.Settings.TeachingMode.Schedule)
		current := next.Settings.TeachingMode.Schedule[act.DayKey]
		updated := make([]model.TeachingRange, len(current))
		for i, rng := range current {
			if rng.ID == act.RangeID {
				switch act.Field {
				case "start":
					rng.Start = act.Value
				case "end":
					rng.End = act.Value
				}
			}
			updated[i] = rng
		}
		next.Settings.TeachingMode.Schedule[act.DayKey] = updated
		return &next

	case RemoveTeachingRange:
		next := *s
		next.Settings.TeachingMode.Schedule = copyTeachingSchedule(s.Settings.TeachingMode.Schedule)
		current := next.Settings.TeachingMode.Schedule[act.DayKey]
		remaining := make([]model.TeachingRange, 0, len(current))
		for _, rng := range current {
			if rng.ID != act.RangeID {
				remaining = append(remaining, rng)
			}
		}
		next.Settings.TeachingMode.Schedule[act.DayKey] = remaining
		return &next

	case ActivateReminder:
		if act.LogKey != "" {
			if _, sent := s.Notifications.SentLog[act.LogKey]; sent {
				return s
			}
		}
		reminder := act.Reminder
		if reminder.ID == "" {
			reminder.ID = model.NewID()
		}
		if reminder.Title == "" {
			reminder.Title = "Reminder"
		}
		if reminder.CreatedAt == "" {
			reminder.CreatedAt = act.LoggedAt
		}

		next := *s
		next.Notifications.ActiveReminders = capReminders(
			append([]model.Reminder{reminder}, s.Notifications.ActiveReminders...), activeReminderCap)
		if act.LogKey != "" {
			log := copySentLog(s.Notifications.SentLog)
			log[act.LogKey] = act.LoggedAt
			next.Notifications.SentLog = log
		}
		return &next

	case DismissReminder:
		next := *s
		remaining := make([]model.Reminder, 0, len(s.Notifications.ActiveReminders))
		for _, reminder := range s.Notifications.ActiveReminders {
			if reminder.ID != act.ReminderID {
				remaining = append(remaining, reminder)
			}
		}
		next.Notifications.ActiveReminders = remaining
		return &next

	case SnoozeReminder:
		var found *model.Reminder
		for i := range s.Notifications.ActiveReminders {
			if s.Notifications.ActiveReminders[i].ID == act.ReminderID {
				found = &s.Notifications.ActiveReminders[i]
				break
			}
		}
		if found == nil {
			return s
		}

		next := *s
		remaining := make([]model.Reminder, 0, len(s.Notifications.ActiveReminders)-1)
		for _, reminder := range s.Notifications.ActiveReminders {
			if reminder.ID != act.ReminderID {
				remaining = append(remaining, reminder)
			}
		}
		next.Notifications.ActiveReminders = remaining

		snoozed := append(append([]model.SnoozedReminder{}, s.Notifications.SnoozedReminders...), model.SnoozedReminder{
			ID:      model.NewID(),
			Title:   found.Title,
			Message: found.Message,
			WakeAt:  timeutil.Timestamp(act.Now.Add(time.Duration(act.Minutes) * time.Minute)),
		})
		// Keep the newest entries when over cap.
		if len(snoozed) > snoozedReminderCap {
			snoozed = snoozed[len(snoozed)-snoozedReminderCap:]
		}
		next.Notifications.SnoozedReminders = snoozed
		return &next

	case WakeSnoozedReminders:
		due, remaining := splitDueSnoozed(s.Notifications.SnoozedReminders, act.Now)
		if len(due) == 0 {
			return s
		}
		woke := make([]model.Reminder, len(due))
		for i, item := range due {
			woke[i] = model.Reminder{
				ID:        model.NewID(),
				Title:     item.Title + " (Snoozed)",
				Message:   item.Message,
				CreatedAt: timeutil.Timestamp(act.Now),
			}
		}
		next := *s
		next.Notifications.ActiveReminders = capReminders(
			append(woke, s.Notifications.ActiveReminders...), activeReminderCap)
		next.Notifications.SnoozedReminders = remaining
		return &next

	case ToggleFavoriteQuote:
		if act.QuoteID == "" {
			return s
		}
		next := *s
		exists := false
		for _, id := range s.FavoriteQuoteIDs {
			if id == act.QuoteID {
				exists = true
				break
			}
		}
		if exists {
			remaining := make([]string, 0, len(s.FavoriteQuoteIDs)-1)
			for _, id := range s.FavoriteQuoteIDs {
				if id != act.QuoteID {
					remaining = append(remaining, id)
				}
			}
			next.FavoriteQuoteIDs = remaining
		} else {
			next.FavoriteQuoteIDs = append(append([]string{}, s.FavoriteQuoteIDs...), act.QuoteID)
		}
		return &next

	default:
		return s
	}
}

// SplitDueSnoozed separates snoozed reminders whose wake time has arrived.
// Exposed for the reminder engine, which needs the due set before dispatch
// to drive notifications.
func SplitDueSnoozed(snoozed []model.SnoozedReminder, now time.Time) (due, remaining []model.SnoozedReminder) {
	return splitDueSnoozed(snoozed, now)
}

func splitDueSnoozed(snoozed []model.SnoozedReminder, now time.Time) (due, remaining []model.SnoozedReminder) {
	remaining = make([]model.SnoozedReminder, 0, len(snoozed))
	for _, item := range snoozed {
		wakeAt, ok := timeutil.ParseTimestamp(item.WakeAt)
		if ok && !wakeAt.After(now) {
			due = append(due, item)
		} else {
			remaining = append(remaining, item)
		}
	}
	return due, remaining
}

func capReminders(reminders []model.Reminder, limit int) []model.Reminder {
	if len(reminders) > limit {
		return reminders[:limit]
	}
	return reminders
}

func copyChecklists(src map[string][]model.ChecklistItem) map[string][]model.ChecklistItem {
	out := make(map[string][]model.ChecklistItem, len(src))
	for category, items := range src {
		out[category] = items
	}
	return out
}

func copyTeachingSchedule(src map[string][]model.TeachingRange) map[string][]model.TeachingRange {
	out := make(map[string][]model.TeachingRange, len(src))
	for dayKey, ranges := range src {
		out[dayKey] = ranges
	}
	return out
}

func copySentLog(src map[string]string) map[string]string {
	out := make(map[string]string, len(src)+1)
	for key, value := range src {
		out[key] = value
	}
	return out
}
