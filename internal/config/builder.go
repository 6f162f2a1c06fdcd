package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithStartFEN sets the start position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithSavedGame sets the saved game to continue from.
func (b *ConfigBuilder) WithSavedGame(path string) *ConfigBuilder {
	b.cfg.LoadFile = path
	return b
}

// WithMoves sets the coordinate moves to play.
func (b *ConfigBuilder) WithMoves(moves ...string) *ConfigBuilder {
	b.cfg.Moves = moves
	return b
}

// WithUndo sets how many plies are taken back after the moves.
func (b *ConfigBuilder) WithUndo(plies int) *ConfigBuilder {
	b.cfg.Undo = plies
	return b
}

// WithMaxLineLength sets the maximum PGN line length.
func (b *ConfigBuilder) WithMaxLineLength(length uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithTag sets a PGN header value.
func (b *ConfigBuilder) WithTag(name, value string) *ConfigBuilder {
	b.cfg.Output.Tags[name] = value
	return b
}

// WithPGNFile sets where the PGN record is written.
func (b *ConfigBuilder) WithPGNFile(path string) *ConfigBuilder {
	b.cfg.Output.PGNFile = path
	return b
}

// WithSaveFile sets where the saved-game JSON is written.
func (b *ConfigBuilder) WithSaveFile(path string) *ConfigBuilder {
	b.cfg.Output.SaveFile = path
	return b
}

// WithDiagram enables the SVG diagram.
func (b *ConfigBuilder) WithDiagram(path string, squareSize int, flip bool) *ConfigBuilder {
	b.cfg.Diagram.File = path
	b.cfg.Diagram.SquareSize = squareSize
	b.cfg.Diagram.Flip = flip
	return b
}

// WithBatch selects batch validation of the given files.
func (b *ConfigBuilder) WithBatch(workers int, files ...string) *ConfigBuilder {
	b.cfg.Batch.Workers = workers
	b.cfg.Batch.Files = files
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
