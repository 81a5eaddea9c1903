// Package profile generates symbolic profiles for characters.
//
// A Profiler holds one immutable symbol table and one set of
// association rules; Profile performs only in-memory lookups, so a
// shared Profiler is safe for concurrent callers.
package profile

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/teranos/charsym/errors"
	"github.com/teranos/charsym/logger"
	"github.com/teranos/charsym/sym"
	"github.com/teranos/charsym/symbology"
)

// Profile category keys. Every key is always present in a produced
// profile; a category with no matches holds an empty, non-nil list so
// callers can tell "no matches" apart from "category missing".
const (
	CategoryPersonality = "personality"
	CategoryAbilities   = "abilities"
	CategoryOrigin      = "origin"
	CategoryRole        = "role"
	CategoryZodiac      = "zodiac"
	CategoryNameMeaning = "name_meaning"
)

// profileCategories lists the category keys in output order.
var profileCategories = []string{
	CategoryPersonality,
	CategoryAbilities,
	CategoryOrigin,
	CategoryRole,
	CategoryZodiac,
	CategoryNameMeaning,
}

// AstrologicalProfile resolves a zodiac sign through the symbol table.
type AstrologicalProfile struct {
	Sign     string `json:"sign"`
	Element  string `json:"element"`
	Modality string `json:"modality"`
}

// CharacterProfile is the per-character result: matched symbol names
// per category plus the derived scalar symbols recovered from the
// symbolic grammar.
type CharacterProfile struct {
	Name           string              `json:"name,omitempty"`
	Core           string              `json:"core"`
	RoleSymbol     string              `json:"role_symbol"`
	NameSymbol     string              `json:"name_symbol"`
	Astrology      AstrologicalProfile `json:"astrology"`
	Categories     map[string][]string `json:"categories"`
	Representation string              `json:"representation"`
}

// Profiler maps character records onto the symbol table using fixed
// association rules.
type Profiler struct {
	table *symbology.Table
	rules Rules
	log   *zap.SugaredLogger
}

// NewProfiler builds a profiler over an already-constructed symbol
// table. The table is read-only from here on; rules are fixed for the
// profiler's lifetime.
func NewProfiler(table *symbology.Table, rules Rules) *Profiler {
	return &Profiler{
		table: table,
		rules: rules,
		log:   logger.Named("profiler"),
	}
}

// Profile generates the symbolic profile for one character record.
// A nil record is ErrInvalidRecord; everything else profiles totally,
// with unmapped or unknown values silently skipped.
func (p *Profiler) Profile(record Record) (*CharacterProfile, error) {
	if record == nil {
		return nil, errors.Wrap(errors.ErrInvalidRecord, "nil character record")
	}
	if p.table == nil {
		return nil, errors.AssertionFailedf("profiler has no symbol table")
	}

	profile := &CharacterProfile{
		Name:       record.stringField("Name"),
		Categories: make(map[string][]string, len(profileCategories)),
	}
	for _, category := range profileCategories {
		profile.Categories[category] = []string{}
	}

	// Each category matches independently; no category's result depends
	// on another's.
	p.matchList(profile, CategoryPersonality, record.stringList("PersonalityTraits"), p.rules.Traits)
	p.matchList(profile, CategoryAbilities, record.stringList("Abilities"), p.rules.Abilities)
	p.matchOne(profile, CategoryOrigin, record.stringField("Origin"), p.rules.Origins)
	p.matchOne(profile, CategoryRole, record.stringField("Role"), p.rules.Roles)
	p.matchOne(profile, CategoryNameMeaning, record.nestedString("NameData", "NameMeaning"), p.rules.NameMeanings)

	sign := record.nestedString("AstrologicalData", "ZodiacSign")
	profile.Astrology = p.astrologicalProfile(sign)
	if profile.Astrology.Sign != "Unknown" {
		profile.Categories[CategoryZodiac] = append(profile.Categories[CategoryZodiac], sign)
	}

	profile.Core = p.coreSymbol(record)
	profile.RoleSymbol = p.roleSymbol(record)
	profile.NameSymbol = p.nameSymbol(record)
	profile.Representation = representation(profile)

	return profile, nil
}

// ProfileJSON profiles a character record supplied as raw JSON.
func (p *Profiler) ProfileJSON(data []byte) (*CharacterProfile, error) {
	record, err := ParseRecord(data)
	if err != nil {
		return nil, err
	}
	return p.Profile(record)
}

// matchList resolves each value through the association map and keeps
// the mapped symbols that exist in the table, first-match order, each
// symbol at most once.
func (p *Profiler) matchList(profile *CharacterProfile, category string, values []string, assoc map[string]string) {
	seen := make(map[string]bool, len(values))
	for _, value := range values {
		symbol, ok := assoc[value]
		if !ok || !p.table.Contains(symbol) {
			p.log.Debugw("Skipping unmapped value",
				logger.FieldCategory, category,
				"value", value)
			continue
		}
		if seen[symbol] {
			continue
		}
		seen[symbol] = true
		profile.Categories[category] = append(profile.Categories[category], symbol)
	}
}

// matchOne is matchList for single-valued fields.
func (p *Profiler) matchOne(profile *CharacterProfile, category, value string, assoc map[string]string) {
	if value == "" {
		return
	}
	p.matchList(profile, category, []string{value}, assoc)
}

// coreSymbol picks the character's core symbol: bravery first, then a
// celestial origin, then the Point of bare existence.
func (p *Profiler) coreSymbol(record Record) string {
	for _, trait := range record.stringList("PersonalityTraits") {
		if trait == "Brave" {
			if s, ok := p.table.Find(sym.Triangle); ok {
				return s.Name
			}
		}
	}
	if record.stringField("Origin") == "Celestial" {
		if s, ok := p.table.Find(sym.Circle); ok {
			return s.Name
		}
	}
	if s, ok := p.table.Find(sym.Point); ok {
		return s.Name
	}
	return ""
}

func (p *Profiler) roleSymbol(record Record) string {
	symbol, ok := p.rules.Roles[record.stringField("Role")]
	if !ok || !p.table.Contains(symbol) {
		return sym.UnknownRole
	}
	return symbol
}

func (p *Profiler) nameSymbol(record Record) string {
	symbol, ok := p.rules.NameMeanings[record.nestedString("NameData", "NameMeaning")]
	if !ok || !p.table.Contains(symbol) {
		return sym.DefaultNameSymbol
	}
	return symbol
}

// astrologicalProfile resolves a zodiac sign against the table's zodiac
// category. An unknown or absent sign yields the Unknown triple.
func (p *Profiler) astrologicalProfile(sign string) AstrologicalProfile {
	if sign != "" {
		if s, ok := p.table.Lookup(sym.CategoryZodiac, sign); ok {
			return AstrologicalProfile{
				Sign:     sign,
				Element:  s.Element,
				Modality: s.Modality,
			}
		}
	}
	return AstrologicalProfile{Sign: "Unknown", Element: "Unknown", Modality: "Unknown"}
}

// representation renders the combined symbolic grammar string.
func representation(profile *CharacterProfile) string {
	personality := "[" + strings.Join(profile.Categories[CategoryPersonality], ", ") + "]"
	return fmt.Sprintf("Encapsulate(Superimpose(%s, %s), %s) AdjacentTo(%s, %s) Enclose(%s)",
		profile.Core,
		personality,
		profile.RoleSymbol,
		profile.Astrology.Element,
		profile.Astrology.Modality,
		profile.NameSymbol,
	)
}
