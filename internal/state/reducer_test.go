package state_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saifk/ramadan-companion/internal/model"
	"github.com/saifk/ramadan-companion/internal/state"
)

var baseTime = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func newState() *model.AppState {
	return model.DefaultState(baseTime)
}

func TestReduceNilState(t *testing.T) {
	var r state.Reducer
	assert.Nil(t, r.Reduce(nil, state.AddSession{}))
}

func TestAddSession(t *testing.T) {
	var r state.Reducer
	s := newState()

	rejected := r.Reduce(s, state.AddSession{Session: model.ReadingSession{
		ID: "zero", EndedAt: "2026-03-01T10:00:00Z", DurationSeconds: 0,
	}})
	assert.Same(t, s, rejected, "zero-duration sessions are rejected")

	older := model.ReadingSession{ID: "old", EndedAt: "2026-03-01T09:00:00Z", DurationSeconds: 600, PagesRead: 2}
	newer := model.ReadingSession{ID: "new", EndedAt: "2026-03-01T11:00:00Z", DurationSeconds: 300, PagesRead: 1}
	next := r.Reduce(s, state.AddSession{Session: older})
	next = r.Reduce(next, state.AddSession{Session: newer})

	require.Len(t, next.Sessions, 2)
	assert.Equal(t, "new", next.Sessions[0].ID, "newest first")
	assert.Empty(t, s.Sessions, "input state untouched")
}

func TestAddJournalEntrySortsNewestFirst(t *testing.T) {
	var r state.Reducer
	s := newState()

	next := r.Reduce(s, state.AddJournalEntry{Entry: model.JournalEntry{
		ID: "j1", Intention: "first", CreatedAt: "2026-03-01T09:00:00Z",
	}})
	next = r.Reduce(next, state.AddJournalEntry{Entry: model.JournalEntry{
		ID: "j2", Intention: "second", CreatedAt: "2026-03-01T11:00:00Z",
	}})

	require.Len(t, next.Journal, 2)
	assert.Equal(t, "j2", next.Journal[0].ID)
}

func TestChecklistItemLifecycle(t *testing.T) {
	var r state.Reducer
	s := newState()

	assert.Same(t, s, r.Reduce(s, state.AddChecklistItem{Category: "daily", Title: "   "}),
		"blank titles are rejected")
	assert.Same(t, s, r.Reduce(s, state.AddChecklistItem{Category: "hourly", Title: "x"}),
		"unknown categories are rejected")

	next := r.Reduce(s, state.AddChecklistItem{Category: model.CategoryDaily, Title: "  Extra dhikr  "})
	require.NotSame(t, s, next)
	items := next.Checklists[model.CategoryDaily]
	added := items[len(items)-1]
	assert.Equal(t, "Extra dhikr", added.Title)
	assert.NotEmpty(t, added.ID)
	assert.False(t, added.Done)

	toggled := r.Reduce(next, state.ToggleChecklistItem{Category: model.CategoryDaily, ItemID: added.ID})
	require.NotSame(t, next, toggled)
	got := toggled.Checklists[model.CategoryDaily]
	assert.True(t, got[len(got)-1].Done)
	assert.False(t, next.Checklists[model.CategoryDaily][len(items)-1].Done, "prior state untouched")

	assert.Same(t, toggled, r.Reduce(toggled, state.ToggleChecklistItem{
		Category: model.CategoryDaily, ItemID: "no-such-item",
	}), "toggling a missing item is the identity")

	deleted := r.Reduce(toggled, state.DeleteChecklistItem{Category: model.CategoryDaily, ItemID: added.ID})
	assert.Len(t, deleted.Checklists[model.CategoryDaily], len(items)-1)
}

func TestSetQuoteNotificationTimeValidatesShape(t *testing.T) {
	var r state.Reducer
	s := newState()

	assert.Same(t, s, r.Reduce(s, state.SetQuoteNotificationTime{Time: "late morning"}))

	next := r.Reduce(s, state.SetQuoteNotificationTime{Time: "07:45"})
	assert.Equal(t, "07:45", next.Settings.QuoteNotificationTime)
}

func TestActivateReminderAtMostOnce(t *testing.T) {
	var r state.Reducer
	s := newState()

	act := state.ActivateReminder{
		LogKey:   "prayer:fajr:2026-03-01:15",
		LoggedAt: "2026-03-01T04:45:00Z",
		Reminder: model.Reminder{Title: "Fajr", Message: "Fajr at 05:00. 15 minute reminder."},
	}

	first := r.Reduce(s, act)
	require.NotSame(t, s, first)
	require.Len(t, first.Notifications.ActiveReminders, 1)
	fired := first.Notifications.ActiveReminders[0]
	assert.NotEmpty(t, fired.ID, "missing id is generated")
	assert.Equal(t, "2026-03-01T04:45:00Z", fired.CreatedAt, "createdAt defaults to loggedAt")
	assert.Equal(t, "2026-03-01T04:45:00Z", first.Notifications.SentLog[act.LogKey])

	assert.Same(t, first, r.Reduce(first, act), "same log key never fires twice")
}

func TestActivateReminderCapsActiveList(t *testing.T) {
	var r state.Reducer
	s := newState()

	for i := 0; i < 45; i++ {
		s = r.Reduce(s, state.ActivateReminder{
			LogKey:   fmt.Sprintf("k%d", i),
			LoggedAt: "2026-03-01T10:00:00Z",
			Reminder: model.Reminder{ID: fmt.Sprintf("r%d", i), Title: "T"},
		})
	}

	require.Len(t, s.Notifications.ActiveReminders, 40)
	assert.Equal(t, "r44", s.Notifications.ActiveReminders[0].ID, "newest kept, oldest evicted")
	assert.Len(t, s.Notifications.SentLog, 45, "sent log remembers evicted reminders too")
}

func TestSnoozeAndWake(t *testing.T) {
	var r state.Reducer
	s := newState()

	s = r.Reduce(s, state.ActivateReminder{
		LogKey:   "prayer:maghrib:2026-03-01:5",
		LoggedAt: "2026-03-01T18:25:00Z",
		Reminder: model.Reminder{ID: "r1", Title: "Maghrib (Iftar)", Message: "Maghrib at 18:30. 5 minute reminder."},
	})

	assert.Same(t, s, r.Reduce(s, state.SnoozeReminder{ReminderID: "missing", Minutes: 10, Now: baseTime}),
		"snoozing an unknown reminder is the identity")

	snoozeAt := time.Date(2026, 3, 1, 18, 26, 0, 0, time.UTC)
	snoozed := r.Reduce(s, state.SnoozeReminder{ReminderID: "r1", Minutes: 10, Now: snoozeAt})
	require.NotSame(t, s, snoozed)
	assert.Empty(t, snoozed.Notifications.ActiveReminders)
	require.Len(t, snoozed.Notifications.SnoozedReminders, 1)
	parked := snoozed.Notifications.SnoozedReminders[0]
	assert.Equal(t, "2026-03-01T18:36:00Z", parked.WakeAt)
	assert.Equal(t, "Maghrib (Iftar)", parked.Title)

	early := r.Reduce(snoozed, state.WakeSnoozedReminders{Now: snoozeAt.Add(5 * time.Minute)})
	assert.Same(t, snoozed, early, "nothing due yet")

	wakeAt := snoozeAt.Add(10 * time.Minute)
	woken := r.Reduce(snoozed, state.WakeSnoozedReminders{Now: wakeAt})
	require.NotSame(t, snoozed, woken)
	assert.Empty(t, woken.Notifications.SnoozedReminders)
	require.Len(t, woken.Notifications.ActiveReminders, 1)
	assert.Equal(t, "Maghrib (Iftar) (Snoozed)", woken.Notifications.ActiveReminders[0].Title)
	assert.NotEqual(t, "r1", woken.Notifications.ActiveReminders[0].ID, "woken reminder gets a fresh id")
}

func TestSnoozeKeepsNewestWhenOverCap(t *testing.T) {
	var r state.Reducer
	s := newState()

	for i := 0; i < 55; i++ {
		s = r.Reduce(s, state.ActivateReminder{
			LoggedAt: "2026-03-01T10:00:00Z",
			Reminder: model.Reminder{ID: fmt.Sprintf("r%d", i), Title: fmt.Sprintf("T%d", i)},
		})
		s = r.Reduce(s, state.SnoozeReminder{ReminderID: fmt.Sprintf("r%d", i), Minutes: 60, Now: baseTime})
	}

	require.Len(t, s.Notifications.SnoozedReminders, 50)
	assert.Equal(t, "T5", s.Notifications.SnoozedReminders[0].Title, "oldest snoozes evicted")
	assert.Equal(t, "T54", s.Notifications.SnoozedReminders[49].Title)
}

func TestDismissReminder(t *testing.T) {
	var r state.Reducer
	s := newState()
	s = r.Reduce(s, state.ActivateReminder{
		LoggedAt: "2026-03-01T10:00:00Z",
		Reminder: model.Reminder{ID: "r1", Title: "T"},
	})

	dismissed := r.Reduce(s, state.DismissReminder{ReminderID: "r1"})
	assert.Empty(t, dismissed.Notifications.ActiveReminders)
}

func TestToggleFavoriteQuote(t *testing.T) {
	var r state.Reducer
	s := newState()

	assert.Same(t, s, r.Reduce(s, state.ToggleFavoriteQuote{QuoteID: ""}))

	added := r.Reduce(s, state.ToggleFavoriteQuote{QuoteID: "sabr-1"})
	assert.Equal(t, []string{"sabr-1"}, added.FavoriteQuoteIDs)

	removed := r.Reduce(added, state.ToggleFavoriteQuote{QuoteID: "sabr-1"})
	assert.Empty(t, removed.FavoriteQuoteIDs)
}

func TestTeachingRangeActions(t *testing.T) {
	var r state.Reducer
	s := newState()

	withRange := r.Reduce(s, state.AddTeachingRange{DayKey: "2"})
	require.Len(t, withRange.Settings.TeachingMode.Schedule["2"], 1)
	added := withRange.Settings.TeachingMode.Schedule["2"][0]
	assert.Equal(t, "09:00", added.Start)
	assert.Equal(t, "11:00", added.End)
	assert.Empty(t, s.Settings.TeachingMode.Schedule["2"], "input state untouched")

	updated := r.Reduce(withRange, state.UpdateTeachingRange{
		DayKey: "2", RangeID: added.ID, Field: "end", Value: "12:30",
	})
	assert.Equal(t, "12:30", updated.Settings.TeachingMode.Schedule["2"][0].End)

	removed := r.Reduce(updated, state.RemoveTeachingRange{DayKey: "2", RangeID: added.ID})
	assert.Empty(t, removed.Settings.TeachingMode.Schedule["2"])
}

func TestSetReminderOffsetsDoesNotShareSlices(t *testing.T) {
	var r state.Reducer
	s := newState()

	offsets := []int{30, 10}
	next := r.Reduce(s, state.SetReminderOffsets{EventKey: model.EventFajr, Offsets: offsets})
	offsets[0] = 999

	assert.Equal(t, []int{30, 10}, next.Settings.Reminders[model.EventFajr])
	assert.Equal(t, model.DefaultReminderOffsets[model.EventFajr], s.Settings.Reminders[model.EventFajr])
}
