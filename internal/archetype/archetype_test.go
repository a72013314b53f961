package archetype

import "testing"

func TestLookup_KnownKey(t *testing.T) {
	t.Parallel()

	a := Lookup("KAI – Kairos")
	if a.Color != "#ff7f0e" {
		t.Fatalf("unexpected color: %s", a.Color)
	}
	if a.Description != "Perfect timing, opportune moments" {
		t.Fatalf("unexpected description: %s", a.Description)
	}
	if a.Glyph == "" {
		t.Fatalf("expected a glyph")
	}
}

func TestLookup_UnknownKeySynthesized(t *testing.T) {
	t.Parallel()

	a := Lookup("Totally Made Up")
	if a.Key != "Totally Made Up" || a.Label != "Totally Made Up" {
		t.Fatalf("key must be kept as-is: %+v", a)
	}
	if a.Color != "#cccccc" {
		t.Fatalf("unknown keys get neutral gray, got %s", a.Color)
	}
	if a.Description != "" {
		t.Fatalf("unknown keys get empty description, got %q", a.Description)
	}
	if Known("Totally Made Up") {
		t.Fatalf("synthesized entries must not be reported as known")
	}
}

func TestAll_IncludesEmptySentinel(t *testing.T) {
	t.Parallel()

	all := All()
	found := false
	for _, a := range all {
		if a.Key == EmptyKey {
			found = true
		}
	}
	if !found {
		t.Fatalf("All() must include the empty sentinel")
	}
}

func TestColored_ExcludesEmptySentinel(t *testing.T) {
	t.Parallel()

	for _, a := range Colored() {
		if a.Key == EmptyKey {
			t.Fatalf("Colored() must not include the empty sentinel")
		}
	}
	if len(Colored()) != len(All())-1 {
		t.Fatalf("Colored() should be All() minus the sentinel")
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	t.Parallel()

	first := All()
	first[0].Color = "#000000"

	if All()[0].Color == "#000000" {
		t.Fatalf("mutating the returned slice must not affect the catalog")
	}
}

func TestDefaultKeyIsKnown(t *testing.T) {
	t.Parallel()

	if !Known(DefaultKey) {
		t.Fatalf("default archetype %q must be in the catalog", DefaultKey)
	}
}
