package export

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"archecal/internal/schedule"
)

// WriteICS serializes a schedule as an iCalendar document. Day labels are
// anchored onto the week containing ref (Monday first), so "Tuesday"
// becomes a concrete date. Events whose day label maps to no weekday or
// whose times do not parse are skipped; this export is for calendar apps
// and cannot represent them.
func WriteICS(sched *schedule.Schedule, ref time.Time) (string, error) {
	monday := weekMonday(ref)

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//archecal//" + string(sched.Variant) + " week//EN")
	cal.SetXWRCalName(fmt.Sprintf("%s Week Schedule", sched.Variant.Title()))

	count := 0
	for _, e := range sched.Events {
		rank := schedule.DayRank(e.Day)
		if rank < 1 || rank > 7 {
			continue
		}
		start, ok := schedule.ParseClock(e.Start)
		if !ok {
			continue
		}
		end, ok := schedule.ParseClock(e.End)
		if !ok {
			continue
		}

		date := monday.AddDate(0, 0, rank-1)
		startAt := date.Add(time.Duration(start) * time.Minute)
		endAt := date.Add(time.Duration(end) * time.Minute)

		ev := cal.AddEvent(uuid.New().String())
		ev.SetDtStampTime(time.Now())
		ev.SetStartAt(startAt)
		ev.SetEndAt(endAt)
		ev.SetSummary(e.Title)
		if e.Notes != "" {
			ev.SetDescription(e.Notes)
		}
		if e.Archetype != "" {
			ev.SetProperty(ics.ComponentPropertyCategories, e.Archetype)
		}
		count++
	}

	if count == 0 {
		return "", fmt.Errorf("no events with a recognized day and parseable times")
	}

	return cal.Serialize(), nil
}

// weekMonday returns midnight of the Monday of the week containing t, in
// t's location.
func weekMonday(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7 // Sunday closes the week
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, 1-wd)
}
