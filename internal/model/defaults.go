package model

import (
	"fmt"
	"time"

	"github.com/saifk/ramadan-companion/internal/timeutil"
)

var dailyAchievements = []string{
	"Prayed all prayers on time and all Sunnah rakas",
	"Read at least 1 page of Qur'an and act upon it",
	"Read the Tafsir of one verse",
	"Read one new Hadeeth and its meaning",
	"Prayed more than 1 fard prayer in a mosque (males)",
	"Pondered 10 minutes about struggling for this Deen",
	"Made Dua for my parents",
	"Did not do anything I was unsure about its permissibility",
	"Took care of my body",
	"Made the recommended Dhikr after every prayer",
	"Made my parents smile, hugged, and kissed them",
	"Attempted to increase in knowledge (Reading/Listening)",
	"Attempted to practice one rare Sunnah of Rasulullah (SAWS)",
	"Made Dua from a prepared list",
	"Made Dua for the Prophet (SAWS)",
	"Made tasbeeh and self-reflection",
	"Made repentance, Tawbah, and Istighfaar 100 times",
	"Was kind to family, friends & others",
	"Performed an act of charity",
	"Did not argue, swear, or backbite",
	"Did not harbor ill feelings in my heart against anyone",
	"Lowered gaze",
	"Made a Muslim smile",
	"Preserved or removed harm from the environment",
	"Taught someone a bit about Islam",
	"Made my afternoon Dhikr",
	"Did a special deed that is secret between myself and Allah",
	"Gave some of the extra food from Iftar to my neighbors",
	"Was a role model at work",
}

var eveningAchievements = []string{
	"Prayed Taraweeh",
	"Prayed the Witr prayer",
	"Made Qunut/Dua for the Muslim Ummah in a prayer",
	"Pondered about my Death and the Day of Judgement",
	"Read Surah Mulk before going to sleep",
	"Went to sleep in a state of Wudu",
	"Went to sleep without ill feelings towards any Muslim",
	"Wrote down/updated my will",
	"Prayed a minimum of 2 rakah Tahajjud prayer",
	"Asked Allah for Jannah and refuge from Jahannam (x3)",
}

var weeklyAchievements = []string{
	"Memorized a minimum of 1/4 page of the Quran",
	"Fed/clothed one needy person or gave a gift",
	"Took extra care to maintain myself",
	"Memorized 1 hadeeth of Rasulullah (SAWS)",
	"Made Istikharah about an important matter",
}

var fridayAchievements = []string{
	"Read Surah Kahf",
	"Fed/clothed one needy person or gave a gift",
	"Took extra care to maintain myself",
	"Memorized 1 hadeeth of Rasulullah (SAWS)",
	"Pondered 5-10 minutes about the khutbah & its message",
	"Attempted to join the hearts between 2 Muslims",
}

// DefaultLocation is used until the user configures their own place.
var DefaultLocation = Location{
	Name:      "Hong Kong",
	Latitude:  22.3193,
	Longitude: 114.1694,
	TimeZone:  "Asia/Hong_Kong",
}

// DefaultReminderOffsets holds per-event minute offsets, sorted descending.
var DefaultReminderOffsets = map[string][]int{
	"suhoorEnd": {20, 5},
	"fajr":      {15},
	"sunrise":   {},
	"dhuhr":     {10},
	"asr":       {10},
	"maghrib":   {20, 5},
	"isha":      {10},
}

const (
	// DefaultCalculationMethod is the Muslim World League convention.
	DefaultCalculationMethod = "MuslimWorldLeague"
	// DefaultMadhab is the Shafi asr convention.
	DefaultMadhab = "Shafi"
	// DefaultQuoteTime is when the daily motivation fires when enabled.
	DefaultQuoteTime = "09:00"
)

// CopyReminderOffsets deep-copies an offsets map so callers can mutate
// their copy without sharing slices.
func CopyReminderOffsets(src map[string][]int) map[string][]int {
	out := make(map[string][]int, len(src))
	for key, offsets := range src {
		out[key] = append([]int(nil), offsets...)
	}
	return out
}

// DefaultSettings returns a fresh PrayerSettings with built-in defaults.
func DefaultSettings() PrayerSettings {
	schedule := make(map[string][]TeachingRange, 7)
	for day := 0; day <= 6; day++ {
		schedule[fmt.Sprintf("%d", day)] = []TeachingRange{}
	}
	return PrayerSettings{
		Location:                 DefaultLocation,
		CalculationMethod:        DefaultCalculationMethod,
		Madhab:                   DefaultMadhab,
		Reminders:                CopyReminderOffsets(DefaultReminderOffsets),
		QuoteNotificationEnabled: false,
		QuoteNotificationTime:    DefaultQuoteTime,
		TeachingMode: TeachingMode{
			Enabled:  false,
			Schedule: schedule,
		},
	}
}

func seedChecklist(titles []string, prefix string) []ChecklistItem {
	items := make([]ChecklistItem, len(titles))
	for i, title := range titles {
		items[i] = ChecklistItem{
			ID:    fmt.Sprintf("%s-%d", prefix, i+1),
			Title: title,
			Done:  false,
		}
	}
	return items
}

// DefaultChecklists seeds every category from the built-in achievement lists.
func DefaultChecklists() map[string][]ChecklistItem {
	return map[string][]ChecklistItem{
		CategoryDaily:   seedChecklist(dailyAchievements, CategoryDaily),
		CategoryEvening: seedChecklist(eveningAchievements, CategoryEvening),
		CategoryWeekly:  seedChecklist(weeklyAchievements, CategoryWeekly),
		CategoryFriday:  seedChecklist(fridayAchievements, CategoryFriday),
	}
}

// DefaultState builds a fully initialized AppState for first run.
func DefaultState(now time.Time) *AppState {
	settings := DefaultSettings()
	year, month := defaultMonthStamp(now, settings.Location.TimeZone)

	return &AppState{
		Sessions:   []ReadingSession{},
		Journal:    []JournalEntry{},
		Checklists: DefaultChecklists(),
		ChecklistMeta: ChecklistMeta{
			DayStamp:  timeutil.LocalDayKey(now),
			WeekStamp: timeutil.WeekKey(now),
		},
		Settings: settings,
		Prayer: PrayerState{
			SelectedYear:  year,
			SelectedMonth: month,
			MonthCache:    map[string]MonthEntry{},
		},
		Notifications: NotificationState{
			ActiveReminders:  []Reminder{},
			SnoozedReminders: []SnoozedReminder{},
			SentLog:          map[string]string{},
		},
		FavoriteQuoteIDs: []string{},
	}
}

func defaultMonthStamp(now time.Time, tz string) (int, int) {
	loc, err := timeutil.Zone(tz)
	if err != nil {
		loc = time.Local
	}
	year, month := timeutil.MonthStampIn(now, loc)
	return year, int(month)
}
