// Package engine evaluates, on short ticks, which prayer-event and quote
// reminders are newly due, deduplicates them against the sent log, and
// drives the snooze/wake lifecycle.
package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/saifk/ramadan-companion/internal/model"
	"github.com/saifk/ramadan-companion/internal/notify"
	"github.com/saifk/ramadan-companion/internal/prayer"
	"github.com/saifk/ramadan-companion/internal/quotes"
	"github.com/saifk/ramadan-companion/internal/state"
	"github.com/saifk/ramadan-companion/internal/timeutil"
)

// A reminder still fires up to two minutes after its nominal trigger, so a
// delayed tick (timer drift, app briefly backgrounded) catches up, but
// never more than 45 seconds after the event itself has passed, so an app
// resumed hours later does not spam stale reminders.
const (
	catchUpWindow = 2 * time.Minute
	lateCutoff    = 45 * time.Second
)

// Dispatcher is the slice of the state store the engine needs.
type Dispatcher interface {
	State() *model.AppState
	Dispatch(state.Action) *model.AppState
}

// Engine evaluates reminder conditions against the committed state. The
// schedule calculator lives in the store's reducer; the engine only asks
// for cache population and reads the result.
type Engine struct {
	Store    Dispatcher
	Notifier notify.Notifier
	Log      zerolog.Logger
}

type duePayload struct {
	logKey  string
	title   string
	message string
}

// Tick runs one evaluation pass: wake due snoozes, make sure today's and
// tomorrow's months are cached, then fire newly due prayer and quote
// reminders. Safe to call at any frequency; the sent log keeps every
// logical reminder at-most-once.
func (e *Engine) Tick(now time.Time) {
	s := e.Store.State()

	loc, err := timeutil.Zone(s.Settings.Location.TimeZone)
	if err != nil {
		// Settings validation should make this unreachable.
		e.Log.Error().Err(err).Msg("reminder tick skipped: bad timezone in settings")
		return
	}
	silent := prayer.IsWithinTeachingHours(now, s.Settings)

	// 1. Wake due snoozes.
	due, _ := state.SplitDueSnoozed(s.Notifications.SnoozedReminders, now)
	if len(due) > 0 {
		e.Store.Dispatch(state.WakeSnoozedReminders{Now: now})
		for _, item := range due {
			e.Notifier.Notify(item.Title+" (Snoozed)", item.Message, silent)
			e.Log.Info().Str("title", item.Title).Msg("snoozed reminder woke")
		}
	}

	// 2. Keep today's and tomorrow's months cached so due checks always
	// have schedules to look at.
	s = e.ensureMonths(now, loc)

	todayKey := timeutil.DayKeyIn(now, loc)
	tomorrowKey := timeutil.DayKeyIn(now.Add(24*time.Hour), loc)
	today := e.findDay(s, now, todayKey, loc)
	tomorrow := e.findDay(s, now.Add(24*time.Hour), tomorrowKey, loc)

	payloads := e.duePrayerReminders(s, today, tomorrow, now, loc)
	payloads = append(payloads, e.dueQuoteReminder(s, now, loc, todayKey)...)

	// 3. Dispatch and notify. The reducer re-checks the sent log inside
	// the same transition that records it, so two overlapping ticks cannot
	// both fire one logical reminder.
	nowISO := timeutil.Timestamp(now)
	for _, p := range payloads {
		before := e.Store.State()
		after := e.Store.Dispatch(state.ActivateReminder{
			LogKey:   p.logKey,
			LoggedAt: nowISO,
			Reminder: model.Reminder{Title: p.title, Message: p.message, CreatedAt: nowISO},
		})
		if after == before {
			continue // lost the race to an overlapping tick
		}
		e.Notifier.Notify(p.title, p.message, silent)
		e.Log.Info().Str("logKey", p.logKey).Str("title", p.title).Bool("silent", silent).Msg("reminder fired")
	}
}

func (e *Engine) ensureMonths(now time.Time, loc *time.Location) *model.AppState {
	generatedAt := timeutil.Timestamp(now)
	seen := map[string]bool{}
	s := e.Store.State()
	for _, t := range []time.Time{now, now.Add(24 * time.Hour)} {
		year, month := timeutil.MonthStampIn(t, loc)
		key := fmt.Sprintf("%d-%d", year, month)
		if seen[key] {
			continue
		}
		seen[key] = true
		s = e.Store.Dispatch(state.EnsureMonthCache{
			Year:        year,
			Month:       int(month),
			GeneratedAt: generatedAt,
		})
	}
	return s
}

func (e *Engine) findDay(s *model.AppState, t time.Time, dayKey string, loc *time.Location) *model.DaySchedule {
	year, month := timeutil.MonthStampIn(t, loc)
	cacheKey := prayer.BuildCacheKey(year, int(month), s.Settings)
	entry, ok := s.Prayer.MonthCache[cacheKey]
	if !ok {
		return nil
	}
	return prayer.FindDay(&entry, dayKey)
}

func (e *Engine) duePrayerReminders(s *model.AppState, today, tomorrow *model.DaySchedule, now time.Time, loc *time.Location) []duePayload {
	var payloads []duePayload
	for _, day := range []*model.DaySchedule{today, tomorrow} {
		if day == nil {
			continue
		}
		for _, eventKey := range model.EventKeys {
			iso, ok := day.Events[eventKey]
			if !ok {
				continue
			}
			eventTime, ok := timeutil.ParseTimestamp(iso)
			if !ok {
				continue
			}
			for _, offset := range s.Settings.Reminders[eventKey] {
				trigger := eventTime.Add(-time.Duration(offset) * time.Minute)
				missedBy := now.Sub(trigger)
				if missedBy < 0 || missedBy > catchUpWindow {
					continue
				}
				if now.After(eventTime.Add(lateCutoff)) {
					continue
				}

				logKey := fmt.Sprintf("prayer:%s:%s:%d", eventKey, day.DayKey, offset)
				if _, sent := s.Notifications.SentLog[logKey]; sent {
					continue
				}

				label := prayer.EventLabel(eventKey)
				clock := eventTime.In(loc).Format("15:04")
				message := fmt.Sprintf("%s at %s. %d minute reminder.", label, clock, offset)
				if offset == 0 {
					message = fmt.Sprintf("%s is now (%s).", label, clock)
				}
				payloads = append(payloads, duePayload{logKey: logKey, title: label, message: message})
			}
		}
	}
	return payloads
}

func (e *Engine) dueQuoteReminder(s *model.AppState, now time.Time, loc *time.Location, todayKey string) []duePayload {
	if !s.Settings.QuoteNotificationEnabled {
		return nil
	}
	target, ok := timeutil.ParseClock(s.Settings.QuoteNotificationTime)
	if !ok {
		return nil
	}
	nowMinutes := timeutil.MinutesSinceMidnightIn(now, loc)
	if nowMinutes != target {
		return nil
	}
	logKey := "quote:" + todayKey
	if _, sent := s.Notifications.SentLog[logKey]; sent {
		return nil
	}

	message := "Keep your worship sincere and consistent."
	if quote := quotes.OfTheDay(todayKey); quote != nil {
		message = quote.Theme + ": " + quote.Text
	}
	return []duePayload{{logKey: logKey, title: "Daily Motivation", message: message}}
}
