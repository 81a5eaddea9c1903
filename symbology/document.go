// Package symbology loads the JSON-LD symbol reference document and
// builds the in-memory symbol table used for character profiling.
//
// The document is the sole source of truth for document-derived symbols
// (elements, modalities, zodiac signs). The compiled-in base vocabulary
// lives in the sym package and is folded into a table only when
// requested via WithBaseSymbols.
package symbology

import (
	"encoding/json"
	"os"

	"github.com/teranos/charsym/errors"
)

// FrameworkSection is the top-level section title the builder requires.
const FrameworkSection = "Universal Symbology Framework"

// Concept group types recognized in the framework section.
const (
	TypeElementGroup  = "ElementGroup"
	TypeModalityGroup = "ModalityGroup"
	TypeAstrological  = "AstrologicalIntegration"
)

// Document is the parsed JSON-LD symbology tree. Read-only input; the
// builder never mutates it.
type Document struct {
	Context  json.RawMessage `json:"@context,omitempty"`
	ID       string          `json:"@id,omitempty"`
	Name     string          `json:"name,omitempty"`
	Sections []Section       `json:"hasSection"`
}

// Section is one named top-level section of the document.
type Section struct {
	Type     string         `json:"@type,omitempty"`
	Name     string         `json:"name"`
	Concepts []ConceptGroup `json:"hasConcept"`
}

// ConceptGroup is a named cluster of symbol entries. The @type decides
// which entry list carries the symbols.
type ConceptGroup struct {
	Type        string        `json:"@type"`
	Name        string        `json:"name,omitempty"`
	Description string        `json:"description,omitempty"`
	Elements    []SymbolEntry `json:"hasElement,omitempty"`
	Modalities  []SymbolEntry `json:"hasModality,omitempty"`
	ZodiacSigns []SymbolEntry `json:"hasZodiacSign,omitempty"`
}

// SymbolEntry is one symbol definition inside a concept group.
// Modalities key on ModalityType instead of Name; zodiac signs carry
// their element and modality associations.
type SymbolEntry struct {
	Name         string   `json:"name,omitempty"`
	ModalityType string   `json:"modalityType,omitempty"`
	Glyph        string   `json:"glyph,omitempty"`
	Description  string   `json:"description,omitempty"`
	Element      string   `json:"element,omitempty"`
	Modality     string   `json:"modality,omitempty"`
	Traits       []string `json:"associatedTraits,omitempty"`
}

// Section returns the top-level section with the given name by exact
// string match, or nil.
func (d *Document) Section(name string) *Section {
	for i := range d.Sections {
		if d.Sections[i].Name == name {
			return &d.Sections[i]
		}
	}
	return nil
}

// Parse decodes a JSON-LD symbology document from raw bytes. The whole
// document is held in memory; there is no streaming path.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrDocumentFormat, err.Error())
	}
	return &doc, nil
}

// ReadDocument reads and parses the symbology document at path.
func ReadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read symbology document %s", path)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse symbology document %s", path)
	}
	return doc, nil
}
