package symbology_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/charsym/errors"
	"github.com/teranos/charsym/sym"
	"github.com/teranos/charsym/symbology"
)

const fixtureDoc = `{
  "@context": "https://schema.org",
  "name": "Universal Symbology Primer",
  "hasSection": [
    {
      "name": "Introduction",
      "hasConcept": []
    },
    {
      "name": "Universal Symbology Framework",
      "hasConcept": [
        {
          "@type": "ElementGroup",
          "name": "Classical Elements",
          "hasElement": [
            {"name": "Fire", "description": "Energy, Will, Passion"},
            {"name": "Water", "description": "Emotion, Intuition, Flow"},
            {"name": "Earth", "description": "Matter, Stability, Practicality"},
            {"name": "Air", "description": "Thought, Communication, Freedom"}
          ]
        },
        {
          "@type": "ModalityGroup",
          "name": "Modalities",
          "hasModality": [
            {"modalityType": "Cardinal", "description": "Initiation"},
            {"modalityType": "Fixed", "description": "Stabilization"},
            {"modalityType": "Mutable", "description": "Adaptation"}
          ]
        },
        {
          "@type": "AstrologicalIntegration",
          "name": "Zodiac",
          "hasZodiacSign": [
            {"name": "Aries", "element": "Fire", "modality": "Cardinal"},
            {"name": "Taurus", "element": "Earth", "modality": "Fixed"},
            {"name": "Gemini", "element": "Air", "modality": "Mutable"}
          ]
        }
      ]
    }
  ]
}`

func buildFixtureTable(t *testing.T, opts ...symbology.Option) *symbology.Table {
	t.Helper()
	doc, err := symbology.Parse([]byte(fixtureDoc))
	require.NoError(t, err)
	table, err := symbology.Build(doc, opts...)
	require.NoError(t, err)
	return table
}

func TestBuild_MissingFrameworkSection(t *testing.T) {
	doc, err := symbology.Parse([]byte(`{"hasSection": [{"name": "Other", "hasConcept": []}]}`))
	require.NoError(t, err)

	table, err := symbology.Build(doc)
	require.Error(t, err)
	assert.True(t, errors.IsDocumentFormatError(err), "want ErrDocumentFormat, got %v", err)
	assert.Nil(t, table, "no partial table on error")
}

func TestBuild_NoSectionsAtAll(t *testing.T) {
	doc, err := symbology.Parse([]byte(`{"name": "empty"}`))
	require.NoError(t, err)

	_, err = symbology.Build(doc)
	assert.True(t, errors.IsDocumentFormatError(err))
}

func TestBuild_MissingConceptList(t *testing.T) {
	doc, err := symbology.Parse([]byte(`{"hasSection": [{"name": "Universal Symbology Framework"}]}`))
	require.NoError(t, err)

	_, err = symbology.Build(doc)
	require.Error(t, err)
	assert.True(t, errors.IsDocumentFormatError(err))
}

func TestBuild_EmptyConceptListIsValid(t *testing.T) {
	// Present-but-empty hasConcept is a well-formed document with no symbols
	doc, err := symbology.Parse([]byte(`{"hasSection": [{"name": "Universal Symbology Framework", "hasConcept": []}]}`))
	require.NoError(t, err)

	table, err := symbology.Build(doc)
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
}

func TestBuild_NilDocument(t *testing.T) {
	_, err := symbology.Build(nil)
	assert.True(t, errors.IsDocumentFormatError(err))
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := symbology.Parse([]byte(`{not json`))
	require.Error(t, err)
	assert.True(t, errors.IsDocumentFormatError(err))
}

func TestBuild_SymbolsAreVerbatimFromDocument(t *testing.T) {
	table := buildFixtureTable(t)

	// Everything in the default-built table appeared verbatim in the source
	want := map[string][]string{
		sym.CategoryElement:  {"Fire", "Water", "Earth", "Air"},
		sym.CategoryModality: {"Cardinal", "Fixed", "Mutable"},
		sym.CategoryZodiac:   {"Aries", "Taurus", "Gemini"},
	}

	assert.Equal(t, []string{sym.CategoryElement, sym.CategoryModality, sym.CategoryZodiac}, table.Categories())
	for category, names := range want {
		symbols := table.Symbols(category)
		require.Len(t, symbols, len(names), "category %s", category)
		for i, name := range names {
			assert.Equal(t, name, symbols[i].Name, "category %s order", category)
		}
	}
	assert.Equal(t, 10, table.Len())
}

func TestBuild_WithBaseSymbols(t *testing.T) {
	table := buildFixtureTable(t, symbology.WithBaseSymbols())

	triangle, ok := table.Lookup(sym.CategoryGeometry, sym.Triangle)
	require.True(t, ok)
	assert.Equal(t, "Stability, Harmony, Balance", triangle.Description)

	_, ok = table.Lookup(sym.CategoryArchetype, sym.Star)
	assert.True(t, ok)

	// Document-derived symbols still present alongside the base registry
	assert.True(t, table.Contains("Aries"))
	assert.Equal(t, 10+len(sym.Registry), table.Len())
}

func TestBuild_ZodiacCarriesElementAndModality(t *testing.T) {
	table := buildFixtureTable(t)

	aries, ok := table.Lookup(sym.CategoryZodiac, "Aries")
	require.True(t, ok)
	assert.Equal(t, "Fire", aries.Element)
	assert.Equal(t, "Cardinal", aries.Modality)
}

func TestBuild_DuplicateEntriesKeptOnce(t *testing.T) {
	doc, err := symbology.Parse([]byte(`{"hasSection": [{
		"name": "Universal Symbology Framework",
		"hasConcept": [{
			"@type": "ElementGroup",
			"hasElement": [
				{"name": "Fire", "description": "first"},
				{"name": "Fire", "description": "second"}
			]
		}]
	}]}`))
	require.NoError(t, err)

	table, err := symbology.Build(doc)
	require.NoError(t, err)

	symbols := table.Symbols(sym.CategoryElement)
	require.Len(t, symbols, 1)
	assert.Equal(t, "first", symbols[0].Description, "first occurrence wins")
}

func TestBuild_UnknownGroupTypesAreSkipped(t *testing.T) {
	doc, err := symbology.Parse([]byte(`{"hasSection": [{
		"name": "Universal Symbology Framework",
		"hasConcept": [
			{"@type": "DualityGroup", "hasElement": [{"name": "Yin"}]},
			{"@type": "ElementGroup", "hasElement": [{"name": "Fire"}]}
		]
	}]}`))
	require.NoError(t, err)

	table, err := symbology.Build(doc)
	require.NoError(t, err)
	assert.False(t, table.Contains("Yin"))
	assert.True(t, table.Contains("Fire"))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "symbology.jsonld")
	require.NoError(t, os.WriteFile(path, []byte(fixtureDoc), 0644))

	table, err := symbology.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, table.Len())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := symbology.Load(filepath.Join(t.TempDir(), "nope.jsonld"))
	require.Error(t, err)
	assert.False(t, errors.IsDocumentFormatError(err), "I/O failure is not a format error")
}

func TestTable_LookupAndFind(t *testing.T) {
	table := buildFixtureTable(t)

	_, ok := table.Lookup(sym.CategoryElement, "Fire")
	assert.True(t, ok)

	_, ok = table.Lookup(sym.CategoryZodiac, "Fire")
	assert.False(t, ok, "lookup is category-scoped")

	s, ok := table.Find("Cardinal")
	require.True(t, ok)
	assert.Equal(t, sym.CategoryModality, s.Category)

	_, ok = table.Find("Nonexistent")
	assert.False(t, ok)
}
