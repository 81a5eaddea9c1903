// Package sym defines the compiled-in base vocabulary for charsym.
// These symbols are stable across CLI output and documentation.
//
// The JSON-LD symbology document is the source of truth for
// document-derived symbols (elements, modalities, zodiac signs); this
// package carries the base symbols that every table contains regardless
// of document content: the geometric primitives and the archetype
// symbols used by role and name-meaning lookups.
package sym

// Symbol categories. Document-derived categories (element, modality,
// zodiac) share the same namespace as the compiled-in ones.
const (
	CategoryGeometry  = "geometry"
	CategoryArchetype = "archetype"
	CategoryElement   = "element"
	CategoryModality  = "modality"
	CategoryZodiac    = "zodiac"
)

// Geometric primitive symbol names.
const (
	Point    = "Point"
	Line     = "Line"
	Angle    = "Angle"
	Curve    = "Curve"
	Circle   = "Circle"
	Triangle = "Triangle"
	Square   = "Square"
	Spiral   = "Spiral"
	Wave     = "Wave"
)

// Archetype symbol names, resolved from roles and name meanings.
const (
	Sword = "SwordSymbol"
	Star  = "StarSymbol"
	Sun   = "SunSymbol"
)

// Fallback sentinels. Not symbols: they name the absence of a match and
// never appear in the symbol table.
const (
	UnknownRole       = "UnknownRole"
	DefaultNameSymbol = "DefaultNameSymbol"
)

// Entry binds a symbol name to its glyph, category, and description.
type Entry struct {
	Name        string
	Glyph       string
	Category    string
	Description string
}

// Registry is the canonical list of compiled-in base symbols.
var Registry = []Entry{
	{Point, "•", CategoryGeometry, "Existence, Origin, Singularity"},
	{Line, "─", CategoryGeometry, "Connection, Continuity, Direction"},
	{Angle, "∠", CategoryGeometry, "Intersection, Divergence, Relationship"},
	{Curve, "⌒", CategoryGeometry, "Change, Fluidity, Transformation"},
	{Circle, "◯", CategoryGeometry, "Unity, Wholeness, Cycles"},
	{Triangle, "△", CategoryGeometry, "Stability, Harmony, Balance"},
	{Square, "□", CategoryGeometry, "Structure, Order, Foundation"},
	{Spiral, "꩜", CategoryGeometry, "Growth, Evolution, Expansion"},
	{Wave, "∿", CategoryGeometry, "Vibration, Energy, Frequency"},
	{Sword, "⚔", CategoryArchetype, "Symbol for a Warrior"},
	{Star, "✦", CategoryArchetype, "Symbol for a Mage or Star"},
	{Sun, "☀", CategoryArchetype, "Symbol for Sun"},
}

// Lookup tables built from the registry at init time.
var (
	nameToEntry map[string]Entry
	glyphToName map[string]string
)

func init() {
	nameToEntry = make(map[string]Entry, len(Registry))
	glyphToName = make(map[string]string, len(Registry))
	for _, e := range Registry {
		nameToEntry[e.Name] = e
		glyphToName[e.Glyph] = e.Name
	}
}

// Lookup returns the registry entry for a base symbol name.
func Lookup(name string) (Entry, bool) {
	e, ok := nameToEntry[name]
	return e, ok
}

// Glyph returns the glyph string for a base symbol name, or "" if the
// name is not in the registry.
func Glyph(name string) string {
	return nameToEntry[name].Glyph
}

// FromGlyph returns the base symbol name for a glyph string, or "".
func FromGlyph(glyph string) string {
	return glyphToName[glyph]
}

// Names returns the registry symbol names in a category, in registry order.
func Names(category string) []string {
	var names []string
	for _, e := range Registry {
		if e.Category == category {
			names = append(names, e.Name)
		}
	}
	return names
}
