package prayer

import (
	"fmt"
	"math"
	"time"

	"github.com/saifk/ramadan-companion/internal/model"
	"github.com/saifk/ramadan-companion/internal/timeutil"
)

// BuildMonthSchedule computes one DaySchedule per calendar day of the given
// month. It returns nil when latitude, longitude, year or month are not
// usable; callers treat that as a recoverable no-op, never an error.
func BuildMonthSchedule(year, month int, settings model.PrayerSettings, calc Calculator) []model.DaySchedule {
	lat := settings.Location.Latitude
	lon := settings.Location.Longitude
	if !finite(lat) || !finite(lon) || year < 1 || month < 1 || month > 12 || calc == nil {
		return nil
	}
	loc, err := timeutil.Zone(settings.Location.TimeZone)
	if err != nil {
		return nil
	}

	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	out := make([]model.DaySchedule, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
		times := calc(date, lat, lon, settings.CalculationMethod, settings.Madhab)

		events := make(map[string]string, len(model.EventKeys))
		put := func(key string, t time.Time) {
			if !t.IsZero() {
				events[key] = timeutil.Timestamp(t)
			}
		}
		// suhoorEnd is the same instant as fajr under its own label.
		put(model.EventSuhoorEnd, times.Fajr)
		put(model.EventFajr, times.Fajr)
		put(model.EventSunrise, times.Sunrise)
		put(model.EventDhuhr, times.Dhuhr)
		put(model.EventAsr, times.Asr)
		put(model.EventMaghrib, times.Maghrib)
		put(model.EventIsha, times.Isha)

		out = append(out, model.DaySchedule{
			DayKey: fmt.Sprintf("%04d-%02d-%02d", year, month, day),
			Events: events,
		})
	}
	return out
}

// BuildCacheKey derives the deterministic cache identity of a month schedule.
// Any change to location, method or madhab yields a distinct key, so stale
// schedules stay cached but unused rather than being overwritten.
func BuildCacheKey(year, month int, settings model.PrayerSettings) string {
	latText := "0"
	if finite(settings.Location.Latitude) {
		latText = fmt.Sprintf("%.4f", settings.Location.Latitude)
	}
	lonText := "0"
	if finite(settings.Location.Longitude) {
		lonText = fmt.Sprintf("%.4f", settings.Location.Longitude)
	}
	return fmt.Sprintf("%d|%02d|%s|%s|%s|%s|%s",
		year, month,
		settings.Location.TimeZone,
		latText, lonText,
		settings.CalculationMethod,
		settings.Madhab,
	)
}

// EnsureMonthCache is the cache-aside step over the state's month cache.
// On a hit without force, the state is returned untouched (same pointer).
// On a miss it computes a fresh MonthEntry; an empty schedule (unusable
// inputs) also leaves the state untouched so invalid entries are never cached.
func EnsureMonthCache(state *model.AppState, year, month int, force bool, generatedAt string, calc Calculator) *model.AppState {
	cacheKey := BuildCacheKey(year, month, state.Settings)
	if _, ok := state.Prayer.MonthCache[cacheKey]; ok && !force {
		return state
	}

	days := BuildMonthSchedule(year, month, state.Settings, calc)
	if len(days) == 0 {
		return state
	}

	next := *state
	cache := make(map[string]model.MonthEntry, len(state.Prayer.MonthCache)+1)
	for k, v := range state.Prayer.MonthCache {
		cache[k] = v
	}
	cache[cacheKey] = model.MonthEntry{
		Year:        year,
		Month:       month,
		GeneratedAt: generatedAt,
		Days:        days,
	}
	next.Prayer.MonthCache = cache
	return &next
}

// ShiftMonth moves a (year, month) cursor by delta months.
func ShiftMonth(year, month, delta int) (int, int) {
	base := time.Date(year, time.Month(month+delta), 1, 0, 0, 0, 0, time.UTC)
	return base.Year(), int(base.Month())
}

// FindDay returns the schedule for dayKey within a cached month entry, or
// nil when the entry is missing or does not contain that day.
func FindDay(entry *model.MonthEntry, dayKey string) *model.DaySchedule {
	if entry == nil {
		return nil
	}
	for i := range entry.Days {
		if entry.Days[i].DayKey == dayKey {
			return &entry.Days[i]
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
