// Package archetype holds the fixed catalog of Greek time archetypes used
// to classify schedule entries. The catalog is immutable and loaded once;
// all access goes through the read-only package functions.
package archetype

// EmptyKey is the sentinel archetype for unscheduled time. It is always
// part of the catalog and always present in any rendered color scale.
const EmptyKey = "(empty)"

// DefaultKey is the archetype assigned to events that arrive without one.
const DefaultKey = "CHR – Chronos"

// defaultColor is used for archetype keys not present in the catalog.
const defaultColor = "#cccccc"

// Archetype is one named category of time use.
type Archetype struct {
	// Key is the stable catalog key, e.g. "KAI – Kairos". Unknown keys
	// coming from input data are kept as-is and rendered with a
	// synthesized entry.
	Key         string `json:"key"`
	Label       string `json:"label"`
	Description string `json:"description"`
	// Color is a CSS hex color, e.g. "#1f77b4".
	Color string `json:"color"`
	// Glyph is an optional emoji shown before event titles in the grid.
	Glyph string `json:"glyph"`
}

// catalog is the closed set of archetypes, in display order. The data is
// the original tool's catalog, kept verbatim so existing schedule files
// keep their meaning.
var catalog = []Archetype{
	{Key: "CHR – Chronos", Label: "CHR – Chronos", Description: "Sequential, measurable clock time", Color: "#1f77b4", Glyph: "⏱️"},
	{Key: "KAI – Kairos", Label: "KAI – Kairos", Description: "Perfect timing, opportune moments", Color: "#ff7f0e", Glyph: "🎯"},
	{Key: "AIO – Aion", Label: "AIO – Aion", Description: "Timeless, eternal perspective", Color: "#2ca02c", Glyph: "♾️"},
	{Key: "ANA – Ananke", Label: "ANA – Ananke", Description: "Necessity, urgent obligations", Color: "#d62728", Glyph: "⚡"},
	{Key: "HEL – Helios", Label: "HEL – Helios", Description: "Daylight, active productive hours", Color: "#ffd700", Glyph: "☀️"},
	{Key: "NYX – Nyx", Label: "NYX – Nyx", Description: "Night-time, rest and shadow work", Color: "#4b0082", Glyph: "🌙"},
	{Key: "EOS – Eos", Label: "EOS – Eos", Description: "Dawn, fresh starts and new beginnings", Color: "#ff69b4", Glyph: "🌅"},
	{Key: "HOR – Horae", Label: "HOR – Horae", Description: "Natural rhythms, seasons and cycles", Color: "#32cd32", Glyph: "🌱"},
	{Key: "MNE – Mnemosyne", Label: "MNE – Mnemosyne", Description: "Memory work, reflection and learning", Color: "#8a2be2", Glyph: "💭"},
	{Key: "HYP – Hypnos", Label: "HYP – Hypnos", Description: "Sleep, deep rest and recovery", Color: "#4682b4", Glyph: "😴"},
	{Key: "ONE – Oneiros", Label: "ONE – Oneiros", Description: "Dreams, imagination and creative play", Color: "#da70d6", Glyph: "✨"},
	{Key: "Movement/Commute", Label: "Movement/Commute", Description: "Travel and transportation", Color: "#7f7f7f", Glyph: "🚌"},
	{Key: EmptyKey, Label: EmptyKey, Description: "Free/unscheduled time", Color: "#f0f0f0", Glyph: "⭕"},
}

// byKey is built once at init; never mutated afterwards.
var byKey = func() map[string]Archetype {
	m := make(map[string]Archetype, len(catalog))
	for _, a := range catalog {
		m[a.Key] = a
	}
	return m
}()

// Lookup returns the catalog entry for key. Unknown keys get a synthesized
// entry: the key as label, a neutral gray color and no description, so an
// unrecognized archetype still renders instead of failing.
func Lookup(key string) Archetype {
	if a, ok := byKey[key]; ok {
		return a
	}
	return Archetype{Key: key, Label: key, Color: defaultColor}
}

// Known reports whether key is part of the fixed catalog.
func Known(key string) bool {
	_, ok := byKey[key]
	return ok
}

// All returns the full catalog in display order, including the empty
// sentinel. Callers get a copy; the catalog itself cannot be mutated.
func All() []Archetype {
	out := make([]Archetype, len(catalog))
	copy(out, catalog)
	return out
}

// Colored returns the catalog entries that represent real activity, i.e.
// everything except the empty sentinel. Used for the legend.
func Colored() []Archetype {
	out := make([]Archetype, 0, len(catalog)-1)
	for _, a := range catalog {
		if a.Key == EmptyKey {
			continue
		}
		out = append(out, a)
	}
	return out
}
