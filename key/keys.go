// Package key defines the canonical set of configuration identifiers.
package key

// Theme generation defaults.
const (
	GenerateFormat = "generate.format"
	GenerateCase   = "generate.case"
	GeneratePrefix = "generate.prefix"
	GenerateTheme  = "generate.theme"
)

// Color info and contrast output.
const (
	InfoFormat     = "info.format"
	ContrastFormat = "contrast.format"
)

// HTML preview.
const (
	PreviewUsage = "preview.usage"
)

// Logging.
const (
	LogsEnabled   = "logs.enabled"
	LogsLevel     = "logs.level"
	LogsTimestamp = "logs.timestamp"
	LogsJson      = "logs.json"
	LogsWrite     = "logs.write"
)

// Terminal presentation.
const (
	IconsVariant = "icons.variant"
	CliColored   = "cli.colored"
)
