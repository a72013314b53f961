package schedule

import (
	"sort"
	"strings"
)

// unknownDayRank sorts unrecognized day labels after the seven weekdays.
// They are kept, not dropped, so unexpected data stays visible.
const unknownDayRank = 99

// dayOrder maps the first token of a day label to its calendar position,
// Monday=1 through Sunday=7. English and French spellings plus 3-letter
// abbreviations are accepted.
var dayOrder = map[string]int{
	"monday": 1, "mon": 1, "lundi": 1, "lun": 1,
	"tuesday": 2, "tue": 2, "mardi": 2, "mar": 2,
	"wednesday": 3, "wed": 3, "mercredi": 3, "mer": 3,
	"thursday": 4, "thu": 4, "jeudi": 4, "jeu": 4,
	"friday": 5, "fri": 5, "vendredi": 5, "ven": 5,
	"saturday": 6, "sat": 6, "samedi": 6, "sam": 6,
	"sunday": 7, "sun": 7, "dimanche": 7, "dim": 7,
}

// DayRank returns the calendar position of a day label, consulting only
// its first whitespace-delimited token so that date-suffixed values like
// "Monday 2024-01-01" still rank correctly. Unrecognized labels get
// unknownDayRank.
func DayRank(label string) int {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(label)))
	if len(fields) == 0 {
		return unknownDayRank
	}
	if rank, ok := dayOrder[fields[0]]; ok {
		return rank
	}
	return unknownDayRank
}

// CanonicalOrder sorts the given day labels into calendar order. Blank
// labels and the "nan" placeholder are dropped; everything else is kept,
// with unrecognized labels sorting last. The sort is stable, so labels of
// equal rank keep their original relative order. The input casing is
// preserved in the output.
func CanonicalOrder(labels []string) []string {
	filtered := make([]string, 0, len(labels))
	for _, l := range labels {
		if isBlank(l) {
			continue
		}
		filtered = append(filtered, l)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return DayRank(filtered[i]) < DayRank(filtered[j])
	})

	return filtered
}
