package schedule

import (
	"strconv"
	"strings"
)

// isBlank reports whether a cell value is empty or the "nan" placeholder
// that spreadsheet round-trips leave behind for missing cells.
func isBlank(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || strings.EqualFold(s, "nan")
}

// ParseClock converts an "HH:MM"-shaped string into minutes since
// midnight. Extra ":"-separated parts (seconds) are ignored. Any deviation
// returns ok=false; callers must treat that as "unparsable", never as an
// error.
func ParseClock(s string) (int, bool) {
	if isBlank(s) {
		return 0, false
	}
	s = strings.TrimSpace(s)
	if !strings.Contains(s, ":") {
		return 0, false
	}

	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return 0, false
	}

	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, false
	}

	return hours*60 + minutes, true
}

// OccupiesSlot reports whether e covers the slot starting at
// slotStartMinute. The interval is half-open: the end minute is excluded.
// An event with an unparsable boundary never occupies any slot; it is
// silently excluded from the grid but still exported elsewhere.
func OccupiesSlot(e Event, slotStartMinute int) bool {
	start, ok := ParseClock(e.Start)
	if !ok {
		return false
	}
	end, ok := ParseClock(e.End)
	if !ok {
		return false
	}
	return start <= slotStartMinute && slotStartMinute < end
}
