// Package export flattens a schedule into the row-per-event tables and
// documents the export sinks consume: xlsx workbooks and iCalendar feeds.
package export

import "archecal/internal/schedule"

// FreeTimeLabel is the placeholder activity for a day without events.
const FreeTimeLabel = "Free time"

// Row is one flat export row. A placeholder row carries only Day and the
// FreeTimeLabel activity.
type Row struct {
	Day       string `json:"day"`
	Time      string `json:"time"`
	Activity  string `json:"activity"`
	Archetype string `json:"archetype"`
	Notes     string `json:"notes"`
}

// TableRows flattens the per-day event lists into export rows: outer loop
// over days in the given order, inner loop over that day's events in
// stored order. Unlike the grid, this table does not filter on time
// parseability; every event appears once per day it is scheduled on. A
// day with zero events yields exactly one placeholder row.
func TableRows(sched *schedule.Schedule, days []string) []Row {
	rows := make([]Row, 0, len(sched.Events))

	for _, day := range days {
		events := sched.EventsForDay(day)
		if len(events) == 0 {
			rows = append(rows, Row{Day: day, Activity: FreeTimeLabel})
			continue
		}

		for _, e := range events {
			rows = append(rows, Row{
				Day:       day,
				Time:      e.Start + "-" + e.End,
				Activity:  e.Title,
				Archetype: e.Archetype,
				Notes:     e.Notes,
			})
		}
	}

	return rows
}
