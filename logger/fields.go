package logger

// Standard field names for consistent structured logging across charsym.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Components
	FieldComponent = "component"

	// Documents and tables
	FieldDocument   = "document"
	FieldSection    = "section"
	FieldCategory   = "category"
	FieldSymbol     = "symbol"
	FieldSymbolLen  = "symbols"
	FieldCategories = "categories"

	// Characters
	FieldCharacter = "character"
	FieldTrait     = "trait"
	FieldRole      = "role"
	FieldOrigin    = "origin"

	// Files and paths
	FieldFile = "file"
	FieldPath = "path"

	// Errors
	FieldError = "error"

	// Counts and timing
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
)
