package config

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Symbology document defaults
	v.SetDefault("symbology.path", "symbology.jsonld")
	v.SetDefault("symbology.base_symbols", true)

	// Rules overlay defaults: empty path means compiled-in rules only
	v.SetDefault("rules.path", "")

	// Output defaults
	v.SetDefault("output.format", FormatTable)
	v.SetDefault("output.json_logs", false)
}
