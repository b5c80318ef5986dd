// Package state holds the authoritative state machine: every mutation in
// the application is an Action reduced by a single transition function.
package state

import (
	"time"

	"github.com/saifk/ramadan-companion/internal/model"
)

// Action is a tagged variant describing one intended state transition.
// Unknown variants reduce to the identity.
type Action interface {
	isAction()
}

// AddSession records a completed reading session. Zero-duration sessions
// are rejected by the reducer.
type AddSession struct {
	Session model.ReadingSession
}

// AddJournalEntry records a reflection entry.
type AddJournalEntry struct {
	Entry model.JournalEntry
}

// AddChecklistItem appends a new unchecked item to a category.
type AddChecklistItem struct {
	Category string
	Title    string
}

// ToggleChecklistItem flips done on the matching item.
type ToggleChecklistItem struct {
	Category string
	ItemID   string
}

// DeleteChecklistItem removes the matching item.
type DeleteChecklistItem struct {
	Category string
	ItemID   string
}

// RunHousekeeping applies day/week checklist resets for the given instant.
type RunHousekeeping struct {
	Now time.Time
}

// SaveSettings replaces settings wholesale. The dispatcher is responsible
// for validating them first (prayer.ValidateSettings).
type SaveSettings struct {
	Settings model.PrayerSettings
}

// SetSelectedMonth moves the prayer view cursor. It does not populate the
// cache by itself.
type SetSelectedMonth struct {
	Year  int
	Month int
}

// EnsureMonthCache requests cache-aside population of one month's schedule.
type EnsureMonthCache struct {
	Year        int
	Month       int
	Force       bool
	GeneratedAt string
}

// SetReminderOffsets replaces the offset list for one prayer event.
type SetReminderOffsets struct {
	EventKey string
	Offsets  []int
}

// SetQuoteNotificationEnabled toggles the daily quote notification.
type SetQuoteNotificationEnabled struct {
	Enabled bool
}

// SetQuoteNotificationTime updates the quote time; values not shaped like
// HH:MM are ignored.
type SetQuoteNotificationTime struct {
	Time string
}

// SetTeachingModeEnabled toggles teaching-mode quiet hours.
type SetTeachingModeEnabled struct {
	Enabled bool
}

// AddTeachingRange appends a default range to one weekday ("0".."6").
type AddTeachingRange struct {
	DayKey string
}

// UpdateTeachingRange sets the start or end of a range by id.
type UpdateTeachingRange struct {
	DayKey  string
	RangeID string
	Field   string // "start" or "end"
	Value   string
}

// RemoveTeachingRange deletes a range by id.
type RemoveTeachingRange struct {
	DayKey  string
	RangeID string
}

// ActivateReminder surfaces a reminder. When LogKey is already present in
// the sent log the action is a no-op; the log consult and log write happen
// in the same transition, which is the at-most-once firing guarantee.
type ActivateReminder struct {
	LogKey   string
	LoggedAt string
	Reminder model.Reminder
}

// DismissReminder removes an active reminder permanently.
type DismissReminder struct {
	ReminderID string
}

// SnoozeReminder parks an active reminder until Now + Minutes.
type SnoozeReminder struct {
	ReminderID string
	Minutes    int
	Now        time.Time
}

// WakeSnoozedReminders reactivates every snoozed reminder due by Now.
type WakeSnoozedReminders struct {
	Now time.Time
}

// ToggleFavoriteQuote adds or removes a quote id from favorites.
type ToggleFavoriteQuote struct {
	QuoteID string
}

func (AddSession) isAction()                  {}
func (AddJournalEntry) isAction()             {}
func (AddChecklistItem) isAction()            {}
func (ToggleChecklistItem) isAction()         {}
func (DeleteChecklistItem) isAction()         {}
func (RunHousekeeping) isAction()             {}
func (SaveSettings) isAction()                {}
func (SetSelectedMonth) isAction()            {}
func (EnsureMonthCache) isAction()            {}
func (SetReminderOffsets) isAction()          {}
func (SetQuoteNotificationEnabled) isAction() {}
func (SetQuoteNotificationTime) isAction()    {}
func (SetTeachingModeEnabled) isAction()      {}
func (AddTeachingRange) isAction()            {}
func (UpdateTeachingRange) isAction()         {}
func (RemoveTeachingRange) isAction()         {}
func (ActivateReminder) isAction()            {}
func (DismissReminder) isAction()             {}
func (SnoozeReminder) isAction()              {}
func (WakeSnoozedReminders) isAction()        {}
func (ToggleFavoriteQuote) isAction()         {}
