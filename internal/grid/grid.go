// Package grid resolves a schedule into the day-by-slot matrices the
// rendering layer draws. It is a pure transformation; nothing here talks
// to the UI or to files.
package grid

import (
	"fmt"
	"sort"
	"strings"

	"archecal/internal/archetype"
	"archecal/internal/schedule"
)

// Defaults for the daily window and slot width.
const (
	DefaultSlotMinutes = 30
	DefaultWindowStart = 6 * 60  // 06:00
	DefaultWindowEnd   = 23 * 60 // 23:00, excluded
)

// maxCellTextRunes bounds the short display label inside a cell.
const maxCellTextRunes = 30

// Options configures one grid build. Zero values fall back to defaults.
type Options struct {
	SlotMinutes int
	// WindowStart and WindowEnd are minutes since midnight; the slot
	// sequence is the half-open range [WindowStart, WindowEnd).
	WindowStart int
	WindowEnd   int
}

func (o *Options) normalize() {
	if o.SlotMinutes <= 0 {
		o.SlotMinutes = DefaultSlotMinutes
	}
	if o.WindowStart <= 0 {
		o.WindowStart = DefaultWindowStart
	}
	if o.WindowEnd <= o.WindowStart {
		o.WindowEnd = DefaultWindowEnd
	}
}

// Grid is the fully resolved rendering description: slot and day axes,
// the three parallel matrices indexed [slot][day], and a color scale
// aligned with Archetypes. A renderer needs nothing else to draw the
// grid and its tooltips.
type Grid struct {
	Days       []string `json:"days"`
	Slots      []int    `json:"slots"`
	SlotLabels []string `json:"slot_labels"`

	// Archetypes is the sorted list of distinct archetype keys present in
	// the schedule plus the empty sentinel. It is recomputed per schedule
	// because it depends on which archetypes actually occur.
	Archetypes []string `json:"archetypes"`

	// CategoryIndex holds, per cell, the position of the resolved
	// archetype within Archetypes.
	CategoryIndex [][]int    `json:"category_index"`
	CellText      [][]string `json:"cell_text"`
	CellTooltip   [][]string `json:"cell_tooltip"`

	// ColorScale has one hex color per Archetypes entry, in the same
	// order, taken from the archetype registry.
	ColorScale []string `json:"color_scale"`
}

// Build resolves sched against the given ordered days. For each (slot,
// day) cell the first event in stored order that occupies the slot wins;
// overlaps are not flagged. Events with unparsable times never occupy a
// cell but still contribute their archetype to the color scale.
func Build(sched *schedule.Schedule, days []string, opts Options) *Grid {
	opts.normalize()

	slots := make([]int, 0, (opts.WindowEnd-opts.WindowStart)/opts.SlotMinutes)
	labels := make([]string, 0, cap(slots))
	for m := opts.WindowStart; m < opts.WindowEnd; m += opts.SlotMinutes {
		slots = append(slots, m)
		labels = append(labels, SlotLabel(m))
	}

	archetypes := distinctArchetypes(sched)
	index := make(map[string]int, len(archetypes))
	for i, key := range archetypes {
		index[key] = i
	}

	colors := make([]string, len(archetypes))
	for i, key := range archetypes {
		colors[i] = archetype.Lookup(key).Color
	}

	// Pre-bucket events per day label; matching is case-insensitive on
	// trimmed labels.
	byDay := make([][]schedule.Event, len(days))
	for i, day := range days {
		byDay[i] = sched.EventsForDay(day)
	}

	g := &Grid{
		Days:          days,
		Slots:         slots,
		SlotLabels:    labels,
		Archetypes:    archetypes,
		CategoryIndex: make([][]int, len(slots)),
		CellText:      make([][]string, len(slots)),
		CellTooltip:   make([][]string, len(slots)),
		ColorScale:    colors,
	}

	emptyIdx := index[archetype.EmptyKey]

	for si, slot := range slots {
		rowIdx := make([]int, len(days))
		rowText := make([]string, len(days))
		rowTip := make([]string, len(days))

		for di, day := range days {
			ev, ok := firstOccupying(byDay[di], slot)
			if !ok {
				rowIdx[di] = emptyIdx
				rowText[di] = ""
				rowTip[di] = emptyTooltip(day)
				continue
			}

			rowIdx[di] = index[ev.Archetype]
			rowText[di] = cellText(ev)
			rowTip[di] = eventTooltip(day, ev)
		}

		g.CategoryIndex[si] = rowIdx
		g.CellText[si] = rowText
		g.CellTooltip[si] = rowTip
	}

	return g
}

// SlotLabel formats a minute offset as "HH:MM".
func SlotLabel(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// firstOccupying returns the first event in stored order covering the
// slot. First wins is the documented tie-break for overlapping events.
func firstOccupying(events []schedule.Event, slot int) (schedule.Event, bool) {
	for _, e := range events {
		if schedule.OccupiesSlot(e, slot) {
			return e, true
		}
	}
	return schedule.Event{}, false
}

// distinctArchetypes returns the sorted archetype keys occurring in the
// schedule plus the empty sentinel. Every event contributes, including
// ones the grid cannot place.
func distinctArchetypes(sched *schedule.Schedule) []string {
	set := map[string]bool{archetype.EmptyKey: true}
	for _, e := range sched.Events {
		set[e.Archetype] = true
	}

	out := make([]string, 0, len(set))
	for key := range set {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// cellText is the short in-cell label: glyph plus title, bounded to keep
// cells readable.
func cellText(e schedule.Event) string {
	text := e.Title
	if glyph := archetype.Lookup(e.Archetype).Glyph; glyph != "" {
		text = glyph + " " + e.Title
	}

	runes := []rune(text)
	if len(runes) > maxCellTextRunes {
		return string(runes[:maxCellTextRunes])
	}
	return text
}

// eventTooltip builds the rich cell description: day, time range, title,
// archetype and notes, one line each.
func eventTooltip(day string, e schedule.Event) string {
	a := archetype.Lookup(e.Archetype)

	var b strings.Builder
	b.WriteString(day)
	b.WriteString("\n")
	b.WriteString(e.Start)
	b.WriteString(" - ")
	b.WriteString(e.End)
	b.WriteString("\n")
	b.WriteString(e.Title)
	b.WriteString("\n")
	b.WriteString(a.Label)
	if a.Description != "" {
		b.WriteString("\n")
		b.WriteString(a.Description)
	}
	if e.Notes != "" {
		b.WriteString("\nNotes: ")
		b.WriteString(e.Notes)
	}
	return b.String()
}

func emptyTooltip(day string) string {
	return day + "\nFree time\nNo scheduled activities"
}
