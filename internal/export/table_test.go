package export

import (
	"testing"

	"archecal/internal/schedule"
)

func testSchedule(variant schedule.Variant, events ...schedule.Event) *schedule.Schedule {
	return &schedule.Schedule{Variant: variant, Events: events}
}

func TestTableRows_RowPerEventPerDay(t *testing.T) {
	t.Parallel()

	sched := testSchedule(schedule.VariantBusy,
		schedule.Event{Day: "Monday", Title: "Commute", Start: "08:00", End: "08:45", Archetype: "Movement/Commute", Notes: "Bus ride"},
		schedule.Event{Day: "Tuesday", Title: "Lecture", Start: "09:00", End: "11:00", Archetype: "CHR – Chronos"},
	)

	rows := TableRows(sched, []string{"Monday", "Tuesday"})
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	first := rows[0]
	if first.Day != "Monday" || first.Time != "08:00-08:45" || first.Activity != "Commute" {
		t.Fatalf("unexpected row: %+v", first)
	}
	if first.Notes != "Bus ride" {
		t.Fatalf("notes missing: %+v", first)
	}
	if rows[1].Notes != "" {
		t.Fatalf("absent notes must stay blank: %+v", rows[1])
	}
}

func TestTableRows_FreeTimePlaceholder(t *testing.T) {
	t.Parallel()

	sched := testSchedule(schedule.VariantQuiet,
		schedule.Event{Day: "Monday", Title: "Rest", Start: "10:00", End: "11:00", Archetype: "HYP – Hypnos"},
	)

	rows := TableRows(sched, []string{"Monday", "Tuesday"})
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	placeholder := rows[1]
	if placeholder.Day != "Tuesday" || placeholder.Activity != FreeTimeLabel {
		t.Fatalf("unexpected placeholder: %+v", placeholder)
	}
	if placeholder.Time != "" || placeholder.Archetype != "" || placeholder.Notes != "" {
		t.Fatalf("placeholder must carry only day and activity: %+v", placeholder)
	}
}

func TestTableRows_IncludesUnparsableTimes(t *testing.T) {
	t.Parallel()

	// The grid drops this event; the export table must not.
	sched := testSchedule(schedule.VariantBusy,
		schedule.Event{Day: "Monday", Title: "Sometime", Start: "morning", End: "late", Archetype: "ONE – Oneiros"},
	)

	rows := TableRows(sched, []string{"Monday"})
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Activity != "Sometime" || rows[0].Time != "morning-late" {
		t.Fatalf("unexpected row: %+v", rows[0])
	}
}

func TestTableRows_DayOrderAndStoredOrder(t *testing.T) {
	t.Parallel()

	sched := testSchedule(schedule.VariantBusy,
		schedule.Event{Day: "Tuesday", Title: "t1"},
		schedule.Event{Day: "Monday", Title: "m1"},
		schedule.Event{Day: "Monday", Title: "m2"},
	)

	rows := TableRows(sched, []string{"Monday", "Tuesday"})
	got := []string{rows[0].Activity, rows[1].Activity, rows[2].Activity}
	want := []string{"m1", "m2", "t1"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order mismatch: got %v want %v", got, want)
		}
	}
}
