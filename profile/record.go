package profile

import (
	"encoding/json"
	"os"

	"github.com/teranos/charsym/errors"
)

// Record is a caller-supplied character description. It is an arbitrary
// key/value structure; recognized fields are Name, Origin, Role,
// PersonalityTraits, Abilities, Goals, AstrologicalData.ZodiacSign, and
// NameData.NameMeaning. Absent or malformed fields are "no match",
// never an error.
type Record map[string]any

// ParseRecord decodes a character record from JSON. A JSON null or a
// non-object document is ErrInvalidRecord.
func ParseRecord(data []byte) (Record, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(errors.ErrInvalidRecord, err.Error())
	}

	obj, ok := raw.(map[string]any)
	if !ok || obj == nil {
		return nil, errors.Wrap(errors.ErrInvalidRecord, "character data is not a key/value object")
	}
	return Record(obj), nil
}

// ReadRecord reads and parses a character record file.
func ReadRecord(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read character file %s", path)
	}

	rec, err := ParseRecord(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse character file %s", path)
	}
	return rec, nil
}

// stringField returns a top-level string field, or "" when the field is
// absent or not a string.
func (r Record) stringField(key string) string {
	s, _ := r[key].(string)
	return s
}

// stringList returns a top-level list-of-strings field. Non-string
// elements are skipped; absent or malformed fields yield nil.
func (r Record) stringList(key string) []string {
	switch v := r[key].(type) {
	case []string:
		return v
	case []any:
		var out []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// nestedString returns field sub-key inside a nested object, or "".
func (r Record) nestedString(key, subkey string) string {
	obj, ok := r[key].(map[string]any)
	if !ok {
		return ""
	}
	s, _ := obj[subkey].(string)
	return s
}
