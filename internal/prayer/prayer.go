// Package prayer builds and caches prayer-time schedules and decides
// reminder and quiet-hour timing. The astronomical calculation itself is an
// injected Calculator; this package never depends on the formulas.
package prayer

import (
	"time"

	"github.com/saifk/ramadan-companion/internal/model"
)

// DayTimes holds the five computed prayer instants for one civil day.
// A zero time means the event could not be computed (e.g. polar latitudes).
type DayTimes struct {
	Fajr    time.Time
	Sunrise time.Time
	Dhuhr   time.Time
	Asr     time.Time
	Maghrib time.Time
	Isha    time.Time
}

// Calculator computes prayer instants for the civil day containing date.
// date must be midnight in the location's timezone.
type Calculator func(date time.Time, latitude, longitude float64, method, madhab string) DayTimes

var eventLabels = map[string]string{
	model.EventSuhoorEnd: "Suhoor/Sehar End (Fajr Start)",
	model.EventFajr:      "Fajr",
	model.EventSunrise:   "Sunrise",
	model.EventDhuhr:     "Dhuhr",
	model.EventAsr:       "Asr",
	model.EventMaghrib:   "Maghrib (Iftar)",
	model.EventIsha:      "Isha",
}

// EventLabel returns the display label for an event key, falling back to the
// key itself for unknown values.
func EventLabel(key string) string {
	if label, ok := eventLabels[key]; ok {
		return label
	}
	return key
}

// Methods lists the supported calculation method identifiers.
var Methods = []string{
	"MuslimWorldLeague",
	"Egyptian",
	"Karachi",
	"UmmAlQura",
	"Dubai",
	"MoonsightingCommittee",
	"NorthAmerica",
	"Kuwait",
	"Qatar",
	"Singapore",
	"Tehran",
	"Turkey",
}

// Madhabs lists the supported asr conventions.
var Madhabs = []string{"Shafi", "Hanafi"}

// IsMethod reports whether id names a supported calculation method.
func IsMethod(id string) bool {
	for _, m := range Methods {
		if m == id {
			return true
		}
	}
	return false
}

// IsMadhab reports whether id names a supported madhab.
func IsMadhab(id string) bool {
	return id == "Shafi" || id == "Hanafi"
}
