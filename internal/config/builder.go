package config

import "io"

// ConfigBuilder assembles a Config step by step, starting from the
// defaults of NewConfig. Build validates the result.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder starts from NewConfig.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{cfg: NewConfig()}
}

// Build validates and returns the Config.
func (b *ConfigBuilder) Build() (*Config, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.cfg, nil
}

// Analysis

// WithMoves sets the move list applied to every record.
func (b *ConfigBuilder) WithMoves(moves string) *ConfigBuilder {
	b.cfg.Analysis.Moves = moves
	return b
}

// WithBothSides lists moves for both colours.
func (b *ConfigBuilder) WithBothSides(enabled bool) *ConfigBuilder {
	b.cfg.Analysis.BothSides = enabled
	return b
}

// WithAnnotation marks moves that leave the mover's king attacked.
func (b *ConfigBuilder) WithAnnotation(enabled bool) *ConfigBuilder {
	b.cfg.Analysis.Annotate = enabled
	return b
}

// WithDuplicateSuppression drops records whose position was already output.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool) *ConfigBuilder {
	b.cfg.Analysis.SuppressDuplicates = enabled
	return b
}

// WithWorkers sets the worker pool size; 0 means one per CPU.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Analysis.Workers = n
	return b
}

// Output

// WithJSONOutput writes JSON instead of text.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithCompactJSON writes one unindented JSON document per record.
func (b *ConfigBuilder) WithCompactJSON(enabled bool) *ConfigBuilder {
	if enabled {
		b.cfg.Output.Indent = ""
	}
	return b
}

// WithKeys includes each position's Zobrist key in the output.
func (b *ConfigBuilder) WithKeys(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowKey = enabled
	return b
}

// Service

// WithAddr sets the listen address; empty keeps DefaultAddr.
func (b *ConfigBuilder) WithAddr(addr string) *ConfigBuilder {
	if addr != "" {
		b.cfg.Server.Addr = addr
	}
	return b
}

// WithStorePath persists sessions in a Badger directory; empty keeps them
// in memory.
func (b *ConfigBuilder) WithStorePath(path string) *ConfigBuilder {
	b.cfg.Server.StorePath = path
	b.cfg.Server.InMemory = path == ""
	return b
}

// WithOrigins enables CORS for the given origins.
func (b *ConfigBuilder) WithOrigins(origins ...string) *ConfigBuilder {
	b.cfg.Server.AllowedOrigins = origins
	return b
}

// Streams and verbosity

// WithOutput sets the writer results go to.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the writer diagnostics go to.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
