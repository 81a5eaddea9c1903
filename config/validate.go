package config

import "github.com/teranos/charsym/errors"

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Symbology.Path == "" {
		return errors.New("symbology.path cannot be empty")
	}

	switch c.Output.Format {
	case FormatTable, FormatJSON:
	default:
		return errors.Newf("output.format must be %q or %q, got %q",
			FormatTable, FormatJSON, c.Output.Format)
	}

	return nil
}
