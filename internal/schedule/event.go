// Package schedule holds the canonical event model and the pure
// transformations from raw tabular input to per-variant schedules:
// column normalization, day ordering and clock parsing.
package schedule

import "strings"

// Variant names one of the two week flavors held by the application.
type Variant string

const (
	VariantBusy  Variant = "busy"
	VariantQuiet Variant = "quiet"
)

// Title returns the variant with its first letter upper-cased, for sheet
// names and page headings.
func (v Variant) Title() string {
	s := string(v)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// DetectVariant inspects an uploaded file name and picks the week variant
// it belongs to: "busy" wins over "quiet" when both appear. The second
// return value is false when neither substring matched and the busy
// default was applied; callers should surface that to the user.
func DetectVariant(fileName string) (Variant, bool) {
	lower := strings.ToLower(fileName)
	if strings.Contains(lower, "busy") {
		return VariantBusy, true
	}
	if strings.Contains(lower, "quiet") {
		return VariantQuiet, true
	}
	return VariantBusy, false
}

// Event is one canonical schedule entry. After normalization every field
// is present as a trimmed string, possibly empty; Start and End keep their
// raw "HH:MM"-shaped text and may be unparsable.
type Event struct {
	Day       string `json:"day"`
	Title     string `json:"title"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Archetype string `json:"archetype"`
	Notes     string `json:"notes"`
}

// Schedule is the complete event set for one week variant. Events keep
// their input row order; grid tie-breaking relies on it.
type Schedule struct {
	Variant Variant `json:"variant"`
	// Source is the file name the schedule was loaded from.
	Source string `json:"source"`
	// FileID identifies one load for diagnostics.
	FileID string `json:"file_id"`
	Events []Event `json:"events"`
}

// Days returns the distinct day labels present, in first-appearance order.
// Callers pass the result through CanonicalOrder for display.
func (s *Schedule) Days() []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, e := range s.Events {
		if seen[e.Day] {
			continue
		}
		seen[e.Day] = true
		out = append(out, e.Day)
	}
	return out
}

// EventsForDay returns the events whose day label matches day after
// trimming, case-insensitively, preserving stored order.
func (s *Schedule) EventsForDay(day string) []Event {
	want := strings.TrimSpace(day)
	out := make([]Event, 0)
	for _, e := range s.Events {
		if strings.EqualFold(strings.TrimSpace(e.Day), want) {
			out = append(out, e)
		}
	}
	return out
}
