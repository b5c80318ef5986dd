package prayer

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// ParseReminderOffsets parses a comma-separated minute-offset list, e.g.
// "20,5,20" -> [20 5]: out-of-range and unparseable values are dropped,
// duplicates removed, and the result sorted descending so the earliest
// reminder comes first.
func ParseReminderOffsets(text string) []int {
	input := strings.TrimSpace(text)
	if input == "" {
		return []int{}
	}
	seen := map[int]bool{}
	out := []int{}
	for _, part := range strings.Split(input, ",") {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			continue
		}
		if value < 0 || value > 1440 {
			continue
		}
		offset := int(math.Round(value))
		if !seen[offset] {
			seen[offset] = true
			out = append(out, offset)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}
