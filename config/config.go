// Package config loads the layered charsym configuration: defaults,
// system and user config files, a project-local file found by walking
// up the directory tree, and CHARSYM_* environment variables.
package config

// Config represents the core charsym configuration
type Config struct {
	Symbology SymbologyConfig `mapstructure:"symbology" toml:"symbology"`
	Rules     RulesConfig     `mapstructure:"rules" toml:"rules"`
	Output    OutputConfig    `mapstructure:"output" toml:"output"`
}

// SymbologyConfig configures the JSON-LD symbol reference document
type SymbologyConfig struct {
	Path        string `mapstructure:"path" toml:"path"`                 // Path to the JSON-LD document
	BaseSymbols bool   `mapstructure:"base_symbols" toml:"base_symbols"` // Fold the compiled-in base registry into the table (default: true)
}

// RulesConfig configures the association-table overlay
type RulesConfig struct {
	Path string `mapstructure:"path" toml:"path"` // Optional YAML rules file overlaid on the compiled-in defaults
}

// OutputConfig configures CLI output
type OutputConfig struct {
	Format   string `mapstructure:"format" toml:"format"`       // Output format: table, json
	JSONLogs bool   `mapstructure:"json_logs" toml:"json_logs"` // Structured JSON log output instead of console
}

// Output format constants
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)
