package schedule

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// buildWorkbook writes a one-sheet xlsx with the given header and rows.
func buildWorkbook(t *testing.T, header []string, rows [][]string) []byte {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetList()[0]

	for i, h := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			t.Fatalf("set header: %v", err)
		}
	}
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func TestDetectVariant(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		variant    Variant
		recognized bool
	}{
		{"busy_week.xlsx", VariantBusy, true},
		{"My BUSY schedule.xlsx", VariantBusy, true},
		{"quiet_week.xlsx", VariantQuiet, true},
		{"busy_and_quiet.xlsx", VariantBusy, true}, // first match wins
		{"schedule.xlsx", VariantBusy, false},      // silent default
	}

	for _, tc := range cases {
		v, ok := DetectVariant(tc.name)
		if v != tc.variant || ok != tc.recognized {
			t.Fatalf("DetectVariant(%q)=(%s,%v) want (%s,%v)", tc.name, v, ok, tc.variant, tc.recognized)
		}
	}
}

func TestLoad_WorkbookRoundTrip(t *testing.T) {
	t.Parallel()

	data := buildWorkbook(t,
		[]string{"Date", "Activity", "Start Time", "End Time", "Archetype", "Notes (Exam Duration)"},
		[][]string{
			{"Monday", "Commute to school", "08:00", "08:45", "Movement/Commute", "Bus ride"},
			{"Monday", "Maths exam", "09:00", "11:00", "ANA – Ananke", "2h"},
		},
	)

	sched, err := Load(bytes.NewReader(data), "busy_week.xlsx", nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if sched.Variant != VariantBusy {
		t.Fatalf("variant: %s", sched.Variant)
	}
	if sched.FileID == "" {
		t.Fatalf("expected a file id")
	}
	if len(sched.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(sched.Events))
	}
	if sched.Events[0].Title != "Commute to school" || sched.Events[1].Archetype != "ANA – Ananke" {
		t.Fatalf("unexpected events: %+v", sched.Events)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(bytes.NewReader([]byte("not an xlsx")), "busy.xlsx", nil); err == nil {
		t.Fatalf("expected an input shape error")
	}
}

func TestLoad_MalformedQuietLeavesBusyUntouched(t *testing.T) {
	t.Parallel()

	store := NewStore()

	data := buildWorkbook(t,
		[]string{"Day", "Activity", "Start", "End"},
		[][]string{{"Monday", "Deep work", "09:00", "12:00"}},
	)
	busy, err := Load(bytes.NewReader(data), "busy_week.xlsx", nil)
	if err != nil {
		t.Fatalf("load busy: %v", err)
	}
	store.Replace(busy)

	if _, err := Load(bytes.NewReader([]byte("garbage")), "quiet_week.xlsx", nil); err == nil {
		t.Fatalf("expected quiet load to fail")
	}

	got, ok := store.Get(VariantBusy)
	if !ok || len(got.Events) != 1 {
		t.Fatalf("busy schedule must be unaffected: ok=%v", ok)
	}
	if _, ok := store.Get(VariantQuiet); ok {
		t.Fatalf("quiet must remain unloaded")
	}
}

func TestLoadDataDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	data := buildWorkbook(t,
		[]string{"Day", "Activity", "Start", "End"},
		[][]string{{"Monday", "Morning meditation", "08:00", "09:00"}},
	)
	if err := os.WriteFile(filepath.Join(dir, QuietWeekFile), data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	store := NewStore()
	if errs := LoadDataDir(dir, store, nil); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	sched, ok := store.Get(VariantQuiet)
	if !ok || len(sched.Events) != 1 {
		t.Fatalf("quiet week should have been loaded")
	}
	if _, ok := store.Get(VariantBusy); ok {
		t.Fatalf("busy week file does not exist and must not be loaded")
	}
}

func TestStore_ReplaceIsWholesale(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Replace(&Schedule{Variant: VariantBusy, Events: []Event{{Day: "Monday"}, {Day: "Tuesday"}}})
	store.Replace(&Schedule{Variant: VariantBusy, Events: []Event{{Day: "Friday"}}})

	got, _ := store.Get(VariantBusy)
	if len(got.Events) != 1 || got.Events[0].Day != "Friday" {
		t.Fatalf("replace must be wholesale: %+v", got.Events)
	}
}

func TestStore_Empty(t *testing.T) {
	t.Parallel()

	store := NewStore()
	if !store.Empty() {
		t.Fatalf("fresh store must be empty")
	}

	store.Replace(&Schedule{Variant: VariantQuiet, Events: []Event{{Day: "Monday"}}})
	if store.Empty() {
		t.Fatalf("store with events must not be empty")
	}
}
