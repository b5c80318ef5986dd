package model_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saifk/ramadan-companion/internal/model"
)

// requireValid asserts the structural invariants every sanitized state must
// hold, whatever the input looked like.
func requireValid(t *testing.T, s *model.AppState) {
	t.Helper()
	require.NotNil(t, s)
	require.NotNil(t, s.Sessions)
	require.NotNil(t, s.Journal)
	require.NotNil(t, s.Checklists)
	for _, category := range model.Categories {
		require.Contains(t, s.Checklists, category)
	}
	require.NotNil(t, s.Settings.Reminders)
	require.NotNil(t, s.Settings.TeachingMode.Schedule)
	for day := 0; day <= 6; day++ {
		require.Contains(t, s.Settings.TeachingMode.Schedule, fmt.Sprintf("%d", day))
	}
	require.NotNil(t, s.Prayer.MonthCache)
	require.NotNil(t, s.Notifications.ActiveReminders)
	require.NotNil(t, s.Notifications.SnoozedReminders)
	require.NotNil(t, s.Notifications.SentLog)
	require.NotNil(t, s.FavoriteQuoteIDs)
}

func TestSanitizeIsTotal(t *testing.T) {
	inputs := map[string][]byte{
		"nil":            nil,
		"empty":          []byte(""),
		"truncated":      []byte(`{"sessions": [{"id":`),
		"empty object":   []byte(`{}`),
		"array root":     []byte(`[1, 2, 3]`),
		"string root":    []byte(`"hello"`),
		"number root":    []byte(`42`),
		"null root":      []byte(`null`),
		"wrong shapes":   []byte(`{"sessions": 7, "journal": "x", "checklists": [], "settings": 3, "prayer": true, "notifications": "no"}`),
		"nested garbage": []byte(`{"settings": {"location": {"latitude": "north"}, "reminders": {"fajr": "soon"}}}`),
	}
	for name, raw := range inputs {
		t.Run(name, func(t *testing.T) {
			requireValid(t, model.Sanitize(raw))
		})
	}
}

func TestSanitizeRoundTripsGoodState(t *testing.T) {
	raw := []byte(`{
		"sessions": [
			{"id": "s1", "endedAt": "2026-03-01T21:30:00Z", "durationSeconds": 600, "pagesRead": 3},
			{"endedAt": "2026-03-02T21:30:00Z", "durationSeconds": 1200, "pagesRead": 5},
			{"id": "zero", "endedAt": "2026-03-03T21:30:00Z", "durationSeconds": 0, "pagesRead": 1}
		],
		"journal": [
			{"id": "j1", "intention": "  Read with focus  ", "notes": "", "createdAt": "2026-03-01T22:00:00Z"}
		],
		"settings": {
			"location": {"name": "Madinah", "latitude": 24.4667, "longitude": 39.6, "timeZone": "Asia/Riyadh"},
			"calculationMethod": "UmmAlQura",
			"madhab": "Hanafi",
			"quoteNotificationTime": "07:30"
		},
		"favoriteQuoteIds": ["sabr-1", "sabr-1", "bogus-quote", "shukr-2", ""]
	}`)

	s := model.Sanitize(raw)
	requireValid(t, s)

	// Zero-duration session dropped, rest sorted newest first.
	require.Len(t, s.Sessions, 2)
	assert.Equal(t, 1200, s.Sessions[0].DurationSeconds)
	assert.Equal(t, "s1", s.Sessions[1].ID)
	assert.NotEmpty(t, s.Sessions[0].ID, "missing id should be generated")

	require.Len(t, s.Journal, 1)
	assert.Equal(t, "Read with focus", s.Journal[0].Intention)

	assert.Equal(t, "Madinah", s.Settings.Location.Name)
	assert.Equal(t, "UmmAlQura", s.Settings.CalculationMethod)
	assert.Equal(t, "Hanafi", s.Settings.Madhab)
	assert.Equal(t, "07:30", s.Settings.QuoteNotificationTime)

	assert.Equal(t, []string{"sabr-1", "shukr-2"}, s.FavoriteQuoteIDs,
		"duplicates and ids outside the quote pool are dropped at load")
}

func TestSanitizeRejectsInvalidSettingValues(t *testing.T) {
	raw := []byte(`{
		"settings": {
			"calculationMethod": "GuessWork",
			"madhab": "Maybe",
			"quoteNotificationTime": "9am",
			"teachingMode": {
				"enabled": true,
				"schedule": {
					"1": [
						{"id": "ok", "start": "09:00", "end": "11:00"},
						{"id": "inverted", "start": "14:00", "end": "12:00"},
						{"id": "garbled", "start": "soon", "end": "later"}
					]
				}
			}
		}
	}`)

	s := model.Sanitize(raw)
	requireValid(t, s)

	assert.Equal(t, model.DefaultCalculationMethod, s.Settings.CalculationMethod)
	assert.Equal(t, model.DefaultMadhab, s.Settings.Madhab)
	assert.Equal(t, model.DefaultQuoteTime, s.Settings.QuoteNotificationTime)
	assert.True(t, s.Settings.TeachingMode.Enabled)

	monday := s.Settings.TeachingMode.Schedule["1"]
	require.Len(t, monday, 2, "inverted range dropped, garbled range falls back to defaults")
	assert.Equal(t, "ok", monday[0].ID)
	assert.Equal(t, "09:00", monday[1].Start)
	assert.Equal(t, "11:00", monday[1].End)
}

func TestSanitizeChecklistFallsBackToDefaults(t *testing.T) {
	raw := []byte(`{
		"checklists": {
			"daily": [{"id": "d1", "title": "Custom habit", "done": true}],
			"evening": [],
			"weekly": [{"title": "   "}]
		}
	}`)

	s := model.Sanitize(raw)
	requireValid(t, s)

	require.Len(t, s.Checklists[model.CategoryDaily], 1)
	assert.Equal(t, "Custom habit", s.Checklists[model.CategoryDaily][0].Title)
	assert.True(t, s.Checklists[model.CategoryDaily][0].Done)

	defaults := model.DefaultChecklists()
	assert.Len(t, s.Checklists[model.CategoryEvening], len(defaults[model.CategoryEvening]), "empty list reseeds defaults")
	assert.Len(t, s.Checklists[model.CategoryWeekly], len(defaults[model.CategoryWeekly]), "all-blank list reseeds defaults")
	assert.Len(t, s.Checklists[model.CategoryFriday], len(defaults[model.CategoryFriday]), "absent category reseeds defaults")
}

func TestSanitizeReminderOffsets(t *testing.T) {
	raw := []byte(`{
		"settings": {
			"reminders": {
				"fajr": [5, 20, 5, -3, "25", 9.6],
				"maghrib": "not a list"
			}
		}
	}`)

	s := model.Sanitize(raw)
	requireValid(t, s)

	assert.Equal(t, []int{25, 20, 10, 5}, s.Settings.Reminders["fajr"], "deduplicated, coerced, sorted descending")
	assert.Equal(t, model.DefaultReminderOffsets["maghrib"], s.Settings.Reminders["maghrib"])
}

func TestSanitizeCapsReminderLists(t *testing.T) {
	active := ""
	for i := 0; i < 60; i++ {
		if i > 0 {
			active += ","
		}
		active += fmt.Sprintf(`{"id": "a%d", "title": "T", "message": "m", "createdAt": "2026-03-01T10:00:00Z"}`, i)
	}
	snoozed := ""
	for i := 0; i < 60; i++ {
		if i > 0 {
			snoozed += ","
		}
		snoozed += fmt.Sprintf(`{"id": "s%d", "title": "T", "message": "m", "wakeAt": "2026-03-01T10:00:00Z"}`, i)
	}
	raw := []byte(`{"notifications": {"activeReminders": [` + active + `], "snoozedReminders": [` + snoozed + `]}}`)

	s := model.Sanitize(raw)
	requireValid(t, s)

	assert.Len(t, s.Notifications.ActiveReminders, 30)
	assert.Len(t, s.Notifications.SnoozedReminders, 40)
	assert.Equal(t, "a0", s.Notifications.ActiveReminders[0].ID, "newest-first prefix kept")
}

func TestSanitizeDropsUnknownFavoriteQuotes(t *testing.T) {
	s := model.Sanitize([]byte(`{"favoriteQuoteIds": ["sabr-1", "bogus-quote"]}`))
	requireValid(t, s)
	assert.Equal(t, []string{"sabr-1"}, s.FavoriteQuoteIDs,
		"a stale id from an old quote pool must not survive a reload")
}

func TestSanitizeMonthCacheDropsEmptyEntries(t *testing.T) {
	raw := []byte(`{
		"prayer": {
			"selectedYear": 2026,
			"selectedMonth": 3,
			"monthCache": {
				"good": {"year": 2026, "month": 3, "generatedAt": "2026-03-01T10:00:00Z", "days": [
					{"dayKey": "2026-03-01", "events": {"fajr": "2026-03-01T05:00:00Z", "bogusEvent": "x"}}
				]},
				"empty": {"year": 2026, "month": 4, "days": []},
				"junk": "nope"
			}
		}
	}`)

	s := model.Sanitize(raw)
	requireValid(t, s)

	assert.Equal(t, 2026, s.Prayer.SelectedYear)
	assert.Equal(t, 3, s.Prayer.SelectedMonth)
	require.Len(t, s.Prayer.MonthCache, 1)
	entry := s.Prayer.MonthCache["good"]
	require.Len(t, entry.Days, 1)
	assert.Contains(t, entry.Days[0].Events, "fajr")
	assert.NotContains(t, entry.Days[0].Events, "bogusEvent", "unknown event keys dropped")
}
