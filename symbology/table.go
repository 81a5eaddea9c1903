package symbology

import (
	"github.com/teranos/charsym/errors"
	"github.com/teranos/charsym/logger"
	"github.com/teranos/charsym/sym"
)

// Symbol is one entry in the symbol table.
type Symbol struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Glyph       string   `json:"glyph,omitempty"`
	Description string   `json:"description,omitempty"`
	Element     string   `json:"element,omitempty"`  // zodiac signs only
	Modality    string   `json:"modality,omitempty"` // zodiac signs only
	Traits      []string `json:"traits,omitempty"`
}

// Table maps category name to symbol name to symbol metadata. Built
// once per document and never mutated afterwards, so it is safe to
// share across concurrent readers.
type Table struct {
	categories map[string]map[string]Symbol
	order      map[string][]string // insertion order per category
	catOrder   []string
}

// Option configures table construction.
type Option func(*buildOptions)

type buildOptions struct {
	baseSymbols bool
}

// WithBaseSymbols folds the compiled-in sym.Registry vocabulary
// (geometry primitives, archetype symbols) into the table alongside
// the document-derived symbols. Without this option the table contains
// only names present verbatim in the source document.
func WithBaseSymbols() Option {
	return func(o *buildOptions) { o.baseSymbols = true }
}

// Load reads, parses, and builds a symbol table from the JSON-LD
// document at path. One blocking read; everything after construction is
// in-memory.
func Load(path string, opts ...Option) (*Table, error) {
	doc, err := ReadDocument(path)
	if err != nil {
		return nil, err
	}

	table, err := Build(doc, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build symbol table from %s", path)
	}

	logger.Named("symbology").Debugw("Built symbol table",
		logger.FieldDocument, path,
		logger.FieldSymbolLen, table.Len())
	return table, nil
}

// Build walks the framework section of a parsed document once and
// produces the symbol table. It fails with ErrDocumentFormat when the
// framework section is absent or its hasConcept list is missing
// entirely; no partial table is returned on error.
func Build(doc *Document, opts ...Option) (*Table, error) {
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}

	if doc == nil {
		return nil, errors.Wrap(errors.ErrDocumentFormat, "no document")
	}

	framework := doc.Section(FrameworkSection)
	if framework == nil {
		return nil, errors.Wrapf(errors.ErrDocumentFormat,
			"document has no %q section", FrameworkSection)
	}
	if framework.Concepts == nil {
		return nil, errors.Wrapf(errors.ErrDocumentFormat,
			"section %q has no hasConcept list", FrameworkSection)
	}

	t := &Table{
		categories: make(map[string]map[string]Symbol),
		order:      make(map[string][]string),
	}

	for _, group := range framework.Concepts {
		switch group.Type {
		case TypeElementGroup:
			for _, e := range group.Elements {
				if e.Name == "" {
					continue
				}
				t.add(Symbol{
					Name:        e.Name,
					Category:    sym.CategoryElement,
					Glyph:       e.Glyph,
					Description: e.Description,
					Traits:      e.Traits,
				})
			}
		case TypeModalityGroup:
			for _, m := range group.Modalities {
				// Modalities key on the modality type (Cardinal, Fixed, Mutable)
				if m.ModalityType == "" {
					continue
				}
				t.add(Symbol{
					Name:        m.ModalityType,
					Category:    sym.CategoryModality,
					Glyph:       m.Glyph,
					Description: m.Description,
					Traits:      m.Traits,
				})
			}
		case TypeAstrological:
			for _, z := range group.ZodiacSigns {
				if z.Name == "" {
					continue
				}
				t.add(Symbol{
					Name:        z.Name,
					Category:    sym.CategoryZodiac,
					Glyph:       z.Glyph,
					Description: z.Description,
					Element:     z.Element,
					Modality:    z.Modality,
				})
			}
		}
	}

	if o.baseSymbols {
		for _, e := range sym.Registry {
			t.add(Symbol{
				Name:        e.Name,
				Category:    e.Category,
				Glyph:       e.Glyph,
				Description: e.Description,
			})
		}
	}

	return t, nil
}

// add inserts a symbol, preserving first-seen order and ignoring
// duplicate names within a category.
func (t *Table) add(s Symbol) {
	bucket, ok := t.categories[s.Category]
	if !ok {
		bucket = make(map[string]Symbol)
		t.categories[s.Category] = bucket
		t.catOrder = append(t.catOrder, s.Category)
	}
	if _, exists := bucket[s.Name]; exists {
		return
	}
	bucket[s.Name] = s
	t.order[s.Category] = append(t.order[s.Category], s.Name)
}

// Lookup returns the symbol with the given name in a category.
func (t *Table) Lookup(category, name string) (Symbol, bool) {
	s, ok := t.categories[category][name]
	return s, ok
}

// Find searches all categories for a symbol name, in category
// insertion order.
func (t *Table) Find(name string) (Symbol, bool) {
	for _, category := range t.catOrder {
		if s, ok := t.categories[category][name]; ok {
			return s, true
		}
	}
	return Symbol{}, false
}

// Contains reports whether any category holds the symbol name.
func (t *Table) Contains(name string) bool {
	_, ok := t.Find(name)
	return ok
}

// Categories returns category names in first-seen order.
func (t *Table) Categories() []string {
	out := make([]string, len(t.catOrder))
	copy(out, t.catOrder)
	return out
}

// Symbols returns the symbols of a category in first-seen order.
func (t *Table) Symbols(category string) []Symbol {
	names := t.order[category]
	out := make([]Symbol, 0, len(names))
	for _, name := range names {
		out = append(out, t.categories[category][name])
	}
	return out
}

// Len returns the total number of symbols across all categories.
func (t *Table) Len() int {
	n := 0
	for _, names := range t.order {
		n += len(names)
	}
	return n
}
