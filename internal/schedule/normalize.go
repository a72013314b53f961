package schedule

import (
	"strings"

	"archecal/internal/archetype"
)

// Canonical field names, in reporting order.
const (
	fieldDay       = "day"
	fieldTitle     = "title"
	fieldStart     = "start"
	fieldEnd       = "end"
	fieldArchetype = "archetype"
	fieldNotes     = "notes"
)

var canonicalFields = []string{fieldDay, fieldTitle, fieldStart, fieldEnd, fieldArchetype, fieldNotes}

// Table is one raw tabular input: the header row plus data rows, as read
// from the first sheet of a workbook. No invariants; rows may be ragged
// and any canonical field may be missing.
type Table struct {
	Source string
	Header []string
	Rows   [][]string
}

// Report describes one completed normalization. It exists purely for
// diagnostics (UI sidebar, logs) and never feeds back into the result.
type Report struct {
	Source           string
	CanonicalColumns []string
	RowCount         int
}

// Observer receives normalization diagnostics. A nil Observer is valid.
type Observer func(Report)

// columnRule classifies an input column label onto a canonical field.
// Rules are evaluated top to bottom per column; the first match wins,
// which keeps the priority order explicit and testable.
type columnRule struct {
	field    string
	contains []string
	equals   []string
}

var columnRules = []columnRule{
	{field: fieldDay, contains: []string{"date"}, equals: []string{"day"}},
	{field: fieldTitle, contains: []string{"activity", "title"}},
	{field: fieldStart, contains: []string{"start"}},
	{field: fieldEnd, contains: []string{"end"}},
	{field: fieldArchetype, contains: []string{"archetype"}},
	{field: fieldNotes, contains: []string{"note", "detail", "exam"}},
}

// ClassifyColumn maps an input column label to its canonical field, or
// ok=false when the column matches no rule and its data is dropped.
// Matching is case-insensitive on the trimmed label.
func ClassifyColumn(label string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(label))
	for _, rule := range columnRules {
		for _, eq := range rule.equals {
			if lower == eq {
				return rule.field, true
			}
		}
		for _, sub := range rule.contains {
			if strings.Contains(lower, sub) {
				return rule.field, true
			}
		}
	}
	return "", false
}

// Normalize maps a raw table onto canonical events, in input row order.
// Every canonical field of every event is a trimmed string afterwards;
// fields whose column is absent are synthesized ("" for most, the Chronos
// key for archetype). When two input columns map to the same canonical
// field the later column wins; that mirrors the original tool's rename
// behavior and is a known edge case, not a merge.
func Normalize(t Table, obs Observer) []Event {
	// Last-write-wins: later columns overwrite earlier ones.
	fieldCol := make(map[string]int, len(canonicalFields))
	for idx, label := range t.Header {
		field, ok := ClassifyColumn(label)
		if !ok {
			continue
		}
		fieldCol[field] = idx
	}

	cell := func(row []string, field string) (string, bool) {
		idx, ok := fieldCol[field]
		if !ok {
			return "", false
		}
		if idx >= len(row) {
			return "", true
		}
		return strings.TrimSpace(row[idx]), true
	}

	events := make([]Event, 0, len(t.Rows))
	for _, row := range t.Rows {
		var e Event
		e.Day, _ = cell(row, fieldDay)
		e.Title, _ = cell(row, fieldTitle)
		e.Start, _ = cell(row, fieldStart)
		e.End, _ = cell(row, fieldEnd)
		e.Notes, _ = cell(row, fieldNotes)

		arch, present := cell(row, fieldArchetype)
		if !present {
			// Only a missing column triggers the default; an empty cell in
			// an existing column stays empty and renders unstyled.
			arch = archetype.DefaultKey
		}
		e.Archetype = arch

		events = append(events, e)
	}

	if obs != nil {
		cols := make([]string, len(canonicalFields))
		copy(cols, canonicalFields)
		obs(Report{
			Source:           t.Source,
			CanonicalColumns: cols,
			RowCount:         len(events),
		})
	}

	return events
}
