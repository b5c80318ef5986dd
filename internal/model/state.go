// Package model defines the persisted application state and the sanitizer
// that turns arbitrary stored data back into a valid instance.
package model

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/saifk/ramadan-companion/internal/timeutil"
)

// Checklist category names. Daily and evening reset on day boundaries,
// weekly and friday on week boundaries.
const (
	CategoryDaily   = "daily"
	CategoryEvening = "evening"
	CategoryWeekly  = "weekly"
	CategoryFriday  = "friday"
)

// DayCategories reset when the local calendar day changes.
var DayCategories = []string{CategoryDaily, CategoryEvening}

// WeekCategories reset when the ISO week changes.
var WeekCategories = []string{CategoryWeekly, CategoryFriday}

// Categories lists every checklist category in display order.
var Categories = []string{CategoryDaily, CategoryEvening, CategoryWeekly, CategoryFriday}

// Prayer event keys. SuhoorEnd carries the same instant as Fajr under a
// distinct label.
const (
	EventSuhoorEnd = "suhoorEnd"
	EventFajr      = "fajr"
	EventSunrise   = "sunrise"
	EventDhuhr     = "dhuhr"
	EventAsr       = "asr"
	EventMaghrib   = "maghrib"
	EventIsha      = "isha"
)

// EventKeys lists every prayer event in chronological order.
var EventKeys = []string{
	EventSuhoorEnd, EventFajr, EventSunrise, EventDhuhr, EventAsr, EventMaghrib, EventIsha,
}

// ReadingSession is one completed Qur'an reading session. Zero-duration
// sessions are never persisted.
type ReadingSession struct {
	ID              string `json:"id"`
	EndedAt         string `json:"endedAt"`
	DurationSeconds int    `json:"durationSeconds"`
	PagesRead       int    `json:"pagesRead"`
}

// JournalEntry is one reflection journal entry.
type JournalEntry struct {
	ID        string `json:"id"`
	Intention string `json:"intention"`
	Notes     string `json:"notes"`
	CreatedAt string `json:"createdAt"`
}

// ChecklistItem is a single devotional checklist entry.
type ChecklistItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// ChecklistMeta records the last day/week stamps for which resets ran.
type ChecklistMeta struct {
	DayStamp  string `json:"dayStamp"`
	WeekStamp string `json:"weekStamp"`
}

// Location is the configured place prayer times are computed for.
type Location struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	TimeZone  string  `json:"timeZone"`
}

// TeachingRange is one quiet-hours window within a weekday, "HH:MM" bounds
// with Start < End.
type TeachingRange struct {
	ID    string `json:"id"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// TeachingMode holds per-weekday quiet hours. Schedule keys are weekday
// indexes "0" (Sunday) through "6" (Saturday).
type TeachingMode struct {
	Enabled  bool                       `json:"enabled"`
	Schedule map[string][]TeachingRange `json:"schedule"`
}

// PrayerSettings is the user-configurable prayer and notification setup.
type PrayerSettings struct {
	Location                 Location         `json:"location"`
	CalculationMethod        string           `json:"calculationMethod"`
	Madhab                   string           `json:"madhab"`
	Reminders                map[string][]int `json:"reminders"`
	QuoteNotificationEnabled bool             `json:"quoteNotificationEnabled"`
	QuoteNotificationTime    string           `json:"quoteNotificationTime"`
	TeachingMode             TeachingMode     `json:"teachingMode"`
}

// DaySchedule maps prayer event keys to RFC 3339 instants for one calendar day.
// Events that could not be computed are simply absent.
type DaySchedule struct {
	DayKey string            `json:"dayKey"`
	Events map[string]string `json:"events"`
}

// MonthEntry is one cached month of computed prayer schedules.
type MonthEntry struct {
	Year        int           `json:"year"`
	Month       int           `json:"month"`
	GeneratedAt string        `json:"generatedAt"`
	Days        []DaySchedule `json:"days"`
}

// PrayerState holds the month cursor and the schedule cache. Cache keys are
// derived from (year, month, location, method, madhab); stale entries for old
// settings stay cached but unused.
type PrayerState struct {
	SelectedYear  int                   `json:"selectedYear"`
	SelectedMonth int                   `json:"selectedMonth"`
	MonthCache    map[string]MonthEntry `json:"monthCache"`
}

// Reminder is an active reminder shown in the notification center.
type Reminder struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
}

// SnoozedReminder is a reminder parked until WakeAt.
type SnoozedReminder struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	WakeAt  string `json:"wakeAt"`
}

// NotificationState tracks reminder lifecycles. SentLog maps a logical
// reminder key to the timestamp it was first fired and is the sole
// de-duplication mechanism.
type NotificationState struct {
	ActiveReminders  []Reminder        `json:"activeReminders"`
	SnoozedReminders []SnoozedReminder `json:"snoozedReminders"`
	SentLog          map[string]string `json:"sentLog"`
}

// AppState is the root persisted blob. It is exclusively owned by the
// reducer; everything else reads snapshots and dispatches actions.
type AppState struct {
	Sessions         []ReadingSession           `json:"sessions"`
	Journal          []JournalEntry             `json:"journal"`
	Checklists       map[string][]ChecklistItem `json:"checklists"`
	ChecklistMeta    ChecklistMeta              `json:"checklistMeta"`
	Settings         PrayerSettings             `json:"settings"`
	Prayer           PrayerState                `json:"prayer"`
	Notifications    NotificationState          `json:"notifications"`
	FavoriteQuoteIDs []string                   `json:"favoriteQuoteIds"`
}

// NewID creates a fresh unique identifier.
func NewID() string {
	return uuid.NewString()
}

// SortSessions orders sessions newest endedAt first. Unparseable timestamps
// sort last.
func SortSessions(sessions []ReadingSession) {
	sort.SliceStable(sessions, func(i, j int) bool {
		return timestampMillis(sessions[i].EndedAt) > timestampMillis(sessions[j].EndedAt)
	})
}

// SortJournal orders entries newest createdAt first.
func SortJournal(entries []JournalEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return timestampMillis(entries[i].CreatedAt) > timestampMillis(entries[j].CreatedAt)
	})
}

func timestampMillis(value string) int64 {
	t, ok := timeutil.ParseTimestamp(value)
	if !ok {
		return -1 << 62
	}
	return t.UnixMilli()
}

// Now is a convenience for the canonical persisted timestamp form.
func Now() string {
	return timeutil.Timestamp(time.Now())
}
