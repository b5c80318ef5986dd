package model

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/saifk/ramadan-companion/internal/quotes"
)

// Sanitize coerces a raw persisted blob into a valid AppState. It is total:
// any input, including nil, truncated JSON, or blobs written by other schema
// versions, yields a structurally valid state. This is the only place
// untyped storage data crosses into the typed model.
func Sanitize(raw []byte) *AppState {
	if len(raw) == 0 {
		return DefaultState(time.Now())
	}
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return DefaultState(time.Now())
	}
	return SanitizeValue(value)
}

// SanitizeValue sanitizes an already-decoded JSON value.
func SanitizeValue(value any) *AppState {
	now := time.Now()
	defaults := DefaultState(now)

	root, ok := value.(map[string]any)
	if !ok {
		return defaults
	}

	settings := sanitizeSettings(asMap(root["settings"]))
	year, month := defaultMonthStamp(now, settings.Location.TimeZone)

	state := &AppState{
		Sessions:   sanitizeSessions(root["sessions"]),
		Journal:    sanitizeJournal(root["journal"]),
		Checklists: sanitizeChecklists(asMap(root["checklists"])),
		ChecklistMeta: ChecklistMeta{
			DayStamp:  stringOr(asMap(root["checklistMeta"])["dayStamp"], defaults.ChecklistMeta.DayStamp),
			WeekStamp: stringOr(asMap(root["checklistMeta"])["weekStamp"], defaults.ChecklistMeta.WeekStamp),
		},
		Settings: settings,
		Prayer: PrayerState{
			SelectedYear:  intOr(asMap(root["prayer"])["selectedYear"], year),
			SelectedMonth: intOr(asMap(root["prayer"])["selectedMonth"], month),
			MonthCache:    sanitizeMonthCache(asMap(root["prayer"])["monthCache"]),
		},
		Notifications:    sanitizeNotifications(asMap(root["notifications"])),
		FavoriteQuoteIDs: quotes.NormalizeFavorites(sanitizeStringSet(root["favoriteQuoteIds"])),
	}
	return state
}

func sanitizeSessions(value any) []ReadingSession {
	items, ok := value.([]any)
	if !ok {
		return []ReadingSession{}
	}
	sessions := make([]ReadingSession, 0, len(items))
	for _, item := range items {
		entry := asMap(item)
		session := ReadingSession{
			ID:              stringOr(entry["id"], NewID()),
			EndedAt:         timestampOr(entry["endedAt"], Now()),
			DurationSeconds: clampNonNegative(intOr(entry["durationSeconds"], 0)),
			PagesRead:       clampNonNegative(intOr(entry["pagesRead"], 0)),
		}
		if session.DurationSeconds > 0 {
			sessions = append(sessions, session)
		}
	}
	SortSessions(sessions)
	return sessions
}

func sanitizeJournal(value any) []JournalEntry {
	items, ok := value.([]any)
	if !ok {
		return []JournalEntry{}
	}
	journal := make([]JournalEntry, 0, len(items))
	for _, item := range items {
		entry := asMap(item)
		journal = append(journal, JournalEntry{
			ID:        stringOr(entry["id"], NewID()),
			Intention: strings.TrimSpace(stringOr(entry["intention"], "")),
			Notes:     strings.TrimSpace(stringOr(entry["notes"], "")),
			CreatedAt: timestampOr(entry["createdAt"], Now()),
		})
	}
	SortJournal(journal)
	return journal
}

func sanitizeChecklists(raw map[string]any) map[string][]ChecklistItem {
	defaults := DefaultChecklists()
	out := make(map[string][]ChecklistItem, len(Categories))
	for _, category := range Categories {
		out[category] = sanitizeChecklistCategory(raw[category], defaults[category], category)
	}
	return out
}

func sanitizeChecklistCategory(value any, fallback []ChecklistItem, prefix string) []ChecklistItem {
	items, ok := value.([]any)
	if !ok || len(items) == 0 {
		return fallback
	}
	cleaned := make([]ChecklistItem, 0, len(items))
	for i, item := range items {
		entry := asMap(item)
		title := strings.TrimSpace(stringOr(entry["title"], ""))
		if title == "" {
			continue
		}
		cleaned = append(cleaned, ChecklistItem{
			ID:    stringOr(entry["id"], prefix+"-"+strconv.Itoa(i+1)+"-"+NewID()),
			Title: title,
			Done:  boolOr(entry["done"]),
		})
	}
	if len(cleaned) == 0 {
		return fallback
	}
	return cleaned
}

func sanitizeSettings(raw map[string]any) PrayerSettings {
	defaults := DefaultSettings()
	location := asMap(raw["location"])

	settings := PrayerSettings{
		Location: Location{
			Name:      stringOr(location["name"], defaults.Location.Name),
			Latitude:  floatOr(location["latitude"], defaults.Location.Latitude),
			Longitude: floatOr(location["longitude"], defaults.Location.Longitude),
			TimeZone:  stringOr(location["timeZone"], defaults.Location.TimeZone),
		},
		CalculationMethod:        defaults.CalculationMethod,
		Madhab:                   defaults.Madhab,
		Reminders:                sanitizeReminderMap(asMap(raw["reminders"])),
		QuoteNotificationEnabled: boolOr(raw["quoteNotificationEnabled"]),
		QuoteNotificationTime:    defaults.QuoteNotificationTime,
		TeachingMode: TeachingMode{
			Enabled:  boolOr(asMap(raw["teachingMode"])["enabled"]),
			Schedule: sanitizeTeachingSchedule(asMap(raw["teachingMode"])["schedule"]),
		},
	}

	if method, ok := raw["calculationMethod"].(string); ok && knownMethods[method] {
		settings.CalculationMethod = method
	}
	if madhab, ok := raw["madhab"].(string); ok && (madhab == "Shafi" || madhab == "Hanafi") {
		settings.Madhab = madhab
	}
	if quoteTime, ok := raw["quoteNotificationTime"].(string); ok && clockShape(quoteTime) {
		settings.QuoteNotificationTime = quoteTime
	}
	return settings
}

// knownMethods mirrors the calculation method enum; membership is checked
// here so the sanitizer has no dependency on the prayer package.
var knownMethods = map[string]bool{
	"MuslimWorldLeague":     true,
	"Egyptian":              true,
	"Karachi":               true,
	"UmmAlQura":             true,
	"Dubai":                 true,
	"MoonsightingCommittee": true,
	"NorthAmerica":          true,
	"Kuwait":                true,
	"Qatar":                 true,
	"Singapore":             true,
	"Tehran":                true,
	"Turkey":                true,
}

func sanitizeReminderMap(raw map[string]any) map[string][]int {
	out := make(map[string][]int, len(EventKeys))
	for _, key := range EventKeys {
		values, ok := raw[key].([]any)
		if !ok {
			out[key] = append([]int(nil), DefaultReminderOffsets[key]...)
			continue
		}
		seen := map[int]bool{}
		offsets := make([]int, 0, len(values))
		for _, v := range values {
			f, ok := asFloat(v)
			if !ok || f < 0 {
				continue
			}
			offset := int(math.Round(f))
			if !seen[offset] {
				seen[offset] = true
				offsets = append(offsets, offset)
			}
		}
		sortDesc(offsets)
		out[key] = offsets
	}
	return out
}

func sanitizeTeachingSchedule(value any) map[string][]TeachingRange {
	raw := asMap(value)
	schedule := make(map[string][]TeachingRange, 7)
	for day := 0; day <= 6; day++ {
		dayKey := strconv.Itoa(day)
		ranges, ok := raw[dayKey].([]any)
		if !ok {
			schedule[dayKey] = []TeachingRange{}
			continue
		}
		cleaned := make([]TeachingRange, 0, len(ranges))
		for _, r := range ranges {
			entry := asMap(r)
			tr := TeachingRange{
				ID:    stringOr(entry["id"], NewID()),
				Start: "09:00",
				End:   "11:00",
			}
			if start, ok := entry["start"].(string); ok && clockShape(start) {
				tr.Start = start
			}
			if end, ok := entry["end"].(string); ok && clockShape(end) {
				tr.End = end
			}
			if tr.Start < tr.End {
				cleaned = append(cleaned, tr)
			}
		}
		schedule[dayKey] = cleaned
	}
	return schedule
}

func sanitizeMonthCache(value any) map[string]MonthEntry {
	raw := asMap(value)
	out := make(map[string]MonthEntry, len(raw))
	for key, v := range raw {
		entry := asMap(v)
		if entry == nil {
			continue
		}
		days := sanitizeCacheDays(entry["days"])
		if len(days) == 0 {
			continue
		}
		out[key] = MonthEntry{
			Year:        intOr(entry["year"], 0),
			Month:       intOr(entry["month"], 0),
			GeneratedAt: stringOr(entry["generatedAt"], Now()),
			Days:        days,
		}
	}
	return out
}

func sanitizeCacheDays(value any) []DaySchedule {
	items, ok := value.([]any)
	if !ok {
		return nil
	}
	days := make([]DaySchedule, 0, len(items))
	for _, item := range items {
		entry := asMap(item)
		dayKey, ok := entry["dayKey"].(string)
		if !ok || dayKey == "" {
			continue
		}
		events := asMap(entry["events"])
		cleaned := make(map[string]string, len(EventKeys))
		for _, eventKey := range EventKeys {
			if iso, ok := events[eventKey].(string); ok {
				cleaned[eventKey] = iso
			}
		}
		days = append(days, DaySchedule{DayKey: dayKey, Events: cleaned})
	}
	return days
}

// Load-time caps are tighter than the runtime caps (30/40 vs 40/50) so that
// a blob bloated by an old build shrinks on the next start.
const (
	loadedActiveCap  = 30
	loadedSnoozedCap = 40
)

func sanitizeNotifications(raw map[string]any) NotificationState {
	active := []Reminder{}
	if items, ok := raw["activeReminders"].([]any); ok {
		for _, item := range items {
			if len(active) >= loadedActiveCap {
				break
			}
			entry := asMap(item)
			active = append(active, Reminder{
				ID:        stringOr(entry["id"], NewID()),
				Title:     stringOr(entry["title"], "Reminder"),
				Message:   stringOr(entry["message"], ""),
				CreatedAt: stringOr(entry["createdAt"], Now()),
			})
		}
	}

	snoozed := []SnoozedReminder{}
	if items, ok := raw["snoozedReminders"].([]any); ok {
		for _, item := range items {
			if len(snoozed) >= loadedSnoozedCap {
				break
			}
			entry := asMap(item)
			snoozed = append(snoozed, SnoozedReminder{
				ID:      stringOr(entry["id"], NewID()),
				Title:   stringOr(entry["title"], "Reminder"),
				Message: stringOr(entry["message"], ""),
				WakeAt:  stringOr(entry["wakeAt"], Now()),
			})
		}
	}

	sentLog := map[string]string{}
	for key, v := range asMap(raw["sentLog"]) {
		if ts, ok := v.(string); ok {
			sentLog[key] = ts
		}
	}

	return NotificationState{
		ActiveReminders:  active,
		SnoozedReminders: snoozed,
		SentLog:          sentLog,
	}
}

func sanitizeStringSet(value any) []string {
	items, ok := value.([]any)
	if !ok {
		return []string{}
	}
	seen := map[string]bool{}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok || s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

func asMap(value any) map[string]any {
	m, _ := value.(map[string]any)
	return m
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func stringOr(value any, fallback string) string {
	if s, ok := value.(string); ok && s != "" {
		return s
	}
	return fallback
}

func timestampOr(value any, fallback string) string {
	s, ok := value.(string)
	if !ok {
		return fallback
	}
	if _, err := time.Parse(time.RFC3339, s); err != nil {
		return fallback
	}
	return s
}

func intOr(value any, fallback int) int {
	if f, ok := asFloat(value); ok {
		return int(f)
	}
	return fallback
}

func floatOr(value any, fallback float64) float64 {
	if f, ok := asFloat(value); ok {
		return f
	}
	return fallback
}

func boolOr(value any) bool {
	b, _ := value.(bool)
	return b
}

func clampNonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func clockShape(value string) bool {
	if len(value) != 5 || value[2] != ':' {
		return false
	}
	for i, c := range value {
		if i != 2 && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

func sortDesc(values []int) {
	sort.Sort(sort.Reverse(sort.IntSlice(values)))
}
