package profile

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/teranos/charsym/errors"
	"github.com/teranos/charsym/sym"
)

// Rules are the fixed association tables mapping character attributes
// to symbol names. They are configuration data, not derived from the
// symbology document: pass them explicitly into NewProfiler so tests
// and callers can substitute alternate mappings without touching
// process-wide state.
type Rules struct {
	Traits       map[string]string `yaml:"traits"`
	Abilities    map[string]string `yaml:"abilities"`
	Origins      map[string]string `yaml:"origins"`
	Roles        map[string]string `yaml:"roles"`
	NameMeanings map[string]string `yaml:"name_meanings"`
}

// DefaultRules returns the compiled-in association tables.
func DefaultRules() Rules {
	return Rules{
		Traits: map[string]string{
			"Brave":         sym.Triangle,
			"Wise":          sym.Spiral,
			"Mysterious":    sym.Wave,
			"Compassionate": sym.Circle,
			"Leader":        sym.Angle,
		},
		Abilities: map[string]string{
			"Starlight Magic": sym.Star,
			"Prophecy":        sym.Star,
			"Swordsmanship":   sym.Sword,
			"Healing":         sym.Circle,
		},
		Origins: map[string]string{
			"Celestial": sym.Circle,
			"Mortal":    sym.Point,
		},
		Roles: map[string]string{
			"Warrior": sym.Sword,
			"Mage":    sym.Star,
		},
		NameMeanings: map[string]string{
			"Star": sym.Star,
			"Sun":  sym.Sun,
		},
	}
}

// LoadRules reads association tables from a YAML file. Only the maps
// present in the file are populated; combine with Merge to overlay the
// compiled-in defaults.
func LoadRules(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, errors.Wrapf(err, "failed to read rules file %s", path)
	}

	var r Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Rules{}, errors.Wrapf(err, "failed to parse rules file %s", path)
	}
	return r, nil
}

// Merge overlays non-empty maps from other on top of r and returns the
// combined rules. Neither receiver nor argument is mutated.
func (r Rules) Merge(other Rules) Rules {
	merged := Rules{
		Traits:       mergeMap(r.Traits, other.Traits),
		Abilities:    mergeMap(r.Abilities, other.Abilities),
		Origins:      mergeMap(r.Origins, other.Origins),
		Roles:        mergeMap(r.Roles, other.Roles),
		NameMeanings: mergeMap(r.NameMeanings, other.NameMeanings),
	}
	return merged
}

func mergeMap(base, overlay map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(overlay))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overlay {
		out[k] = v
	}
	return out
}
