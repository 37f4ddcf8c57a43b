package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSONFormat enables JSON output instead of text
	JSONFormat bool

	// Indent is the indentation used for JSON output; empty writes one
	// document per line.
	Indent string

	// ShowKey includes the position's Zobrist key in each result
	ShowKey bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Indent: "  ",
	}
}
