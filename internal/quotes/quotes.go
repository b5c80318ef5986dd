// Package quotes holds the built-in motivation pool.
package quotes

// Quote is one motivational entry.
type Quote struct {
	ID    string
	Theme string
	Text  string
}

// All is the fixed quote pool, grouped by theme.
var All = []Quote{
	{ID: "sabr-1", Theme: "Patience (Sabr)", Text: "Allah is with those who are patient. Build your day with steady worship, even if small."},
	{ID: "sabr-2", Theme: "Patience (Sabr)", Text: "Discomfort in discipline today can become light and ease in your akhirah."},
	{ID: "shukr-1", Theme: "Gratitude (Shukr)", Text: "Thank Allah for the ability to pray, read, and repent. Gratitude multiplies barakah."},
	{ID: "shukr-2", Theme: "Gratitude (Shukr)", Text: "A grateful heart sees every prayer time as a gift, not an interruption."},
	{ID: "discipline-1", Theme: "Discipline", Text: "Consistency beats intensity. One sincere page daily can transform a year."},
	{ID: "discipline-2", Theme: "Discipline", Text: "Set your worship blocks before your day sets your priorities for you."},
	{ID: "teaching-1", Theme: "Teaching as service", Text: "Teaching with mercy is da'wah in action. Your calm conduct is part of the lesson."},
	{ID: "teaching-2", Theme: "Teaching as service", Text: "Every sincere reminder to others should begin with a reminder to yourself."},
	{ID: "ramadan-1", Theme: "Virtues of Ramadan", Text: "Ramadan is a school of taqwa: guard your eyes, tongue, and heart before your stomach."},
	{ID: "ramadan-2", Theme: "Virtues of Ramadan", Text: "Make your private deeds stronger than your public ones, especially in Ramadan."},
	{ID: "ramadan-3", Theme: "Virtues of Ramadan", Text: "A small deed done only for Allah can outweigh large deeds done for attention."},
}

// OfTheDay picks a quote deterministically from a day key, so the whole day
// shows the same quote.
func OfTheDay(dayKey string) *Quote {
	if dayKey == "" || len(All) == 0 {
		return nil
	}
	sum := 0
	for _, c := range []byte(dayKey) {
		sum += int(c)
	}
	return &All[sum%len(All)]
}

// ByID finds a quote by id.
func ByID(id string) *Quote {
	for i := range All {
		if All[i].ID == id {
			return &All[i]
		}
	}
	return nil
}

// NormalizeFavorites drops unknown and duplicate ids, preserving order.
func NormalizeFavorites(ids []string) []string {
	valid := make(map[string]bool, len(All))
	for _, q := range All {
		valid[q.ID] = true
	}
	seen := map[string]bool{}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !valid[id] || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
