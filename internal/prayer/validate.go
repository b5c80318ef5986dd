package prayer

import (
	"fmt"
	"strings"

	"github.com/saifk/ramadan-companion/internal/model"
	"github.com/saifk/ramadan-companion/internal/timeutil"
)

// ValidateSettings checks user-supplied settings at the input boundary.
// The reducer trusts its caller to have run this; it never validates
// settings itself.
func ValidateSettings(settings model.PrayerSettings) error {
	if strings.TrimSpace(settings.Location.Name) == "" {
		return fmt.Errorf("location name must not be empty")
	}
	if !finite(settings.Location.Latitude) || settings.Location.Latitude < -90 || settings.Location.Latitude > 90 {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	if !finite(settings.Location.Longitude) || settings.Location.Longitude < -180 || settings.Location.Longitude > 180 {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	if _, err := timeutil.Zone(settings.Location.TimeZone); err != nil {
		return fmt.Errorf("timezone must be a valid IANA name: %w", err)
	}
	if !IsMethod(settings.CalculationMethod) {
		return fmt.Errorf("unknown calculation method %q", settings.CalculationMethod)
	}
	if !IsMadhab(settings.Madhab) {
		return fmt.Errorf("madhab must be Shafi or Hanafi")
	}
	if _, ok := timeutil.ParseClock(settings.QuoteNotificationTime); !ok {
		return fmt.Errorf("quote notification time must be HH:MM")
	}
	for dayKey, ranges := range settings.TeachingMode.Schedule {
		for _, r := range ranges {
			start, okStart := timeutil.ParseClock(r.Start)
			end, okEnd := timeutil.ParseClock(r.End)
			if !okStart || !okEnd {
				return fmt.Errorf("teaching range on weekday %s must use HH:MM times", dayKey)
			}
			if start >= end {
				return fmt.Errorf("teaching range on weekday %s must start before it ends", dayKey)
			}
		}
	}
	for eventKey, offsets := range settings.Reminders {
		for _, offset := range offsets {
			if offset < 0 || offset > 1440 {
				return fmt.Errorf("reminder offset for %s must be between 0 and 1440 minutes", eventKey)
			}
		}
	}
	return nil
}
