package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/charsym/sym"
)

func TestDefaultRules(t *testing.T) {
	rules := DefaultRules()

	assert.Equal(t, sym.Triangle, rules.Traits["Brave"])
	assert.Equal(t, sym.Spiral, rules.Traits["Wise"])
	assert.Equal(t, sym.Sword, rules.Roles["Warrior"])
	assert.Equal(t, sym.Star, rules.NameMeanings["Star"])
	assert.Equal(t, sym.Circle, rules.Origins["Celestial"])
	assert.NotEmpty(t, rules.Abilities)
}

func TestLoadRules(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
traits:
  Cunning: Angle
  Brave: Square
roles:
  Rogue: SwordSymbol
`), 0644))

	rules, err := LoadRules(path)
	require.NoError(t, err)

	assert.Equal(t, "Angle", rules.Traits["Cunning"])
	assert.Equal(t, "Square", rules.Traits["Brave"])
	assert.Equal(t, "SwordSymbol", rules.Roles["Rogue"])
	assert.Empty(t, rules.NameMeanings)
}

func TestLoadRules_MissingFile(t *testing.T) {
	_, err := LoadRules(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadRules_BadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`traits: [not, a, map]`), 0644))

	_, err := LoadRules(path)
	assert.Error(t, err)
}

func TestRulesMerge(t *testing.T) {
	base := DefaultRules()
	overlay := Rules{
		Traits: map[string]string{
			"Brave":   sym.Square, // override
			"Cunning": sym.Angle,  // addition
		},
	}

	merged := base.Merge(overlay)

	assert.Equal(t, sym.Square, merged.Traits["Brave"])
	assert.Equal(t, sym.Angle, merged.Traits["Cunning"])
	assert.Equal(t, sym.Spiral, merged.Traits["Wise"], "untouched entries survive")
	assert.Equal(t, base.Roles, merged.Roles)

	// Merge does not mutate its inputs
	assert.Equal(t, sym.Triangle, base.Traits["Brave"])
	assert.Empty(t, overlay.Roles)
}
