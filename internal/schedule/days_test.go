package schedule

import (
	"reflect"
	"testing"
)

func TestCanonicalOrder_MixedSpellings(t *testing.T) {
	t.Parallel()

	got := CanonicalOrder([]string{"Friday", "monday", "Tue 2024-01-02"})
	want := []string{"monday", "Tue 2024-01-02", "Friday"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestCanonicalOrder_FrenchAndAbbreviations(t *testing.T) {
	t.Parallel()

	got := CanonicalOrder([]string{"dimanche", "mer", "Lundi", "SAT"})
	want := []string{"Lundi", "mer", "SAT", "dimanche"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestCanonicalOrder_DropsBlanksKeepsUnknown(t *testing.T) {
	t.Parallel()

	got := CanonicalOrder([]string{"", "  ", "nan", "Someday", "Monday"})
	want := []string{"Monday", "Someday"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestCanonicalOrder_StableOnTies(t *testing.T) {
	t.Parallel()

	// Two unrecognized labels share rank 99 and must keep input order.
	got := CanonicalOrder([]string{"zeta day", "alpha day", "Sunday"})
	want := []string{"Sunday", "zeta day", "alpha day"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestDayRank(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want int
	}{
		{"Monday", 1},
		{"  mardi ", 2},
		{"Wed", 3},
		{"Thursday 2024-01-04", 4},
		{"VEN", 5},
		{"samedi", 6},
		{"sun", 7},
		{"holiday", 99},
		{"", 99},
	}
	for _, tc := range cases {
		if got := DayRank(tc.in); got != tc.want {
			t.Fatalf("DayRank(%q)=%d want=%d", tc.in, got, tc.want)
		}
	}
}
