package engine_test

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saifk/ramadan-companion/internal/engine"
	"github.com/saifk/ramadan-companion/internal/model"
	"github.com/saifk/ramadan-companion/internal/prayer"
	"github.com/saifk/ramadan-companion/internal/quotes"
	"github.com/saifk/ramadan-companion/internal/state"
)

// testStore applies actions synchronously, standing in for the persistent
// store without any disk or goroutines.
type testStore struct {
	reducer state.Reducer
	state   *model.AppState
}

func (ts *testStore) State() *model.AppState {
	return ts.state
}

func (ts *testStore) Dispatch(a state.Action) *model.AppState {
	ts.state = ts.reducer.Reduce(ts.state, a)
	return ts.state
}

type notification struct {
	title   string
	message string
	silent  bool
}

type fakeNotifier struct {
	sent []notification
}

func (f *fakeNotifier) Notify(title, message string, silent bool) {
	f.sent = append(f.sent, notification{title: title, message: message, silent: silent})
}

// stubCalc keeps every day's fajr at 05:00 and maghrib at 18:30 UTC.
func stubCalc(date time.Time, lat, lon float64, method, madhab string) prayer.DayTimes {
	return prayer.DayTimes{
		Fajr:    date.Add(5 * time.Hour),
		Sunrise: date.Add(6*time.Hour + 30*time.Minute),
		Dhuhr:   date.Add(12*time.Hour + 15*time.Minute),
		Asr:     date.Add(15*time.Hour + 30*time.Minute),
		Maghrib: date.Add(18*time.Hour + 30*time.Minute),
		Isha:    date.Add(19*time.Hour + 45*time.Minute),
	}
}

func newEngine(t *testing.T) (*engine.Engine, *testStore, *fakeNotifier) {
	t.Helper()
	s := model.DefaultState(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	s.Settings.Location.TimeZone = "UTC"

	store := &testStore{reducer: state.Reducer{Calc: stubCalc}, state: s}
	notifier := &fakeNotifier{}
	eng := &engine.Engine{
		Store:    store,
		Notifier: notifier,
		Log:      zerolog.Nop(),
	}
	return eng, store, notifier
}

func TestTickFiresDueReminderOnce(t *testing.T) {
	eng, store, notifier := newEngine(t)

	// Default fajr offset is 15 minutes, so the 05:00 fajr triggers at 04:45.
	tick := time.Date(2026, 3, 1, 4, 45, 10, 0, time.UTC)
	eng.Tick(tick)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "Fajr", notifier.sent[0].title)
	assert.Equal(t, "Fajr at 05:00. 15 minute reminder.", notifier.sent[0].message)
	assert.False(t, notifier.sent[0].silent)

	require.Len(t, store.State().Notifications.ActiveReminders, 1)
	assert.Contains(t, store.State().Notifications.SentLog, "prayer:fajr:2026-03-01:15")

	// Subsequent ticks in the window stay quiet.
	eng.Tick(tick.Add(15 * time.Second))
	eng.Tick(tick.Add(30 * time.Second))
	assert.Len(t, notifier.sent, 1, "sent log keeps the reminder at-most-once")
}

func TestTickPopulatesScheduleCache(t *testing.T) {
	eng, store, _ := newEngine(t)
	require.Empty(t, store.State().Prayer.MonthCache)

	eng.Tick(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	key := prayer.BuildCacheKey(2026, 3, store.State().Settings)
	entry, ok := store.State().Prayer.MonthCache[key]
	require.True(t, ok, "tick fills the cache for the current month")
	assert.Len(t, entry.Days, 31)
}

func TestTickSkipsStaleTriggers(t *testing.T) {
	eng, _, notifier := newEngine(t)

	// 04:48 is past the two-minute catch-up window for the 04:45 trigger.
	eng.Tick(time.Date(2026, 3, 1, 4, 48, 0, 0, time.UTC))
	assert.Empty(t, notifier.sent, "missed trigger outside the window never fires")
}

func TestTickSkipsLongPassedEvents(t *testing.T) {
	eng, store, notifier := newEngine(t)
	store.Dispatch(state.SetReminderOffsets{EventKey: model.EventFajr, Offsets: []int{0}})

	// The zero-offset trigger at 05:00 is inside the catch-up window at
	// 05:01, but the event itself passed over 45 seconds ago.
	eng.Tick(time.Date(2026, 3, 1, 5, 1, 0, 0, time.UTC))
	assert.Empty(t, notifier.sent, "reminder for a passed event is dropped")
}

func TestTickQuoteNotification(t *testing.T) {
	eng, store, notifier := newEngine(t)
	store.Dispatch(state.SetQuoteNotificationEnabled{Enabled: true})

	early := time.Date(2026, 3, 1, 8, 59, 30, 0, time.UTC)
	eng.Tick(early)
	assert.Empty(t, notifier.sent)

	onTime := time.Date(2026, 3, 1, 9, 0, 20, 0, time.UTC)
	eng.Tick(onTime)
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "Daily Motivation", notifier.sent[0].title)
	quote := quotes.OfTheDay("2026-03-01")
	require.NotNil(t, quote)
	assert.Equal(t, quote.Theme+": "+quote.Text, notifier.sent[0].message,
		"the notified quote is keyed on the location zone's day")
	assert.Contains(t, store.State().Notifications.SentLog, "quote:2026-03-01")

	eng.Tick(onTime.Add(15 * time.Second))
	assert.Len(t, notifier.sent, 1, "one quote per day")
}

func TestTickSilentDuringTeachingHours(t *testing.T) {
	eng, store, notifier := newEngine(t)
	store.Dispatch(state.SetQuoteNotificationEnabled{Enabled: true})
	store.Dispatch(state.SetTeachingModeEnabled{Enabled: true})

	// 2026-03-01 is a Sunday; quiet hours cover the 09:00 quote slot.
	s := store.State()
	next := *s
	next.Settings.TeachingMode.Schedule = map[string][]model.TeachingRange{
		"0": {{ID: "r1", Start: "08:00", End: "10:00"}},
	}
	store.state = &next

	eng.Tick(time.Date(2026, 3, 1, 9, 0, 5, 0, time.UTC))

	require.Len(t, notifier.sent, 1, "reminders still fire during quiet hours")
	assert.True(t, notifier.sent[0].silent, "but the notification is silent")
	assert.Contains(t, store.State().Notifications.SentLog, "quote:2026-03-01")
}

func TestTickWakesDueSnoozes(t *testing.T) {
	eng, store, notifier := newEngine(t)

	store.Dispatch(state.ActivateReminder{
		LoggedAt: "2026-03-01T10:00:00Z",
		Reminder: model.Reminder{ID: "r1", Title: "Dhuhr", Message: "Dhuhr at 12:15. 10 minute reminder."},
	})
	snoozeAt := time.Date(2026, 3, 1, 12, 10, 0, 0, time.UTC)
	store.Dispatch(state.SnoozeReminder{ReminderID: "r1", Minutes: 10, Now: snoozeAt})
	require.Len(t, store.State().Notifications.SnoozedReminders, 1)

	eng.Tick(snoozeAt.Add(5 * time.Minute))
	assert.Len(t, notifier.sent, 0, "not due yet")

	eng.Tick(snoozeAt.Add(11 * time.Minute))
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "Dhuhr (Snoozed)", notifier.sent[0].title)
	assert.Empty(t, store.State().Notifications.SnoozedReminders)
	require.Len(t, store.State().Notifications.ActiveReminders, 1)
}

func TestTickBadTimezoneIsNoop(t *testing.T) {
	eng, store, notifier := newEngine(t)
	s := *store.State()
	s.Settings.Location.TimeZone = "Not/AZone"
	store.state = &s

	eng.Tick(time.Date(2026, 3, 1, 4, 45, 0, 0, time.UTC))
	assert.Empty(t, notifier.sent)
	assert.Empty(t, store.State().Prayer.MonthCache)
}
