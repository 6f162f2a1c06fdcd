// Package config provides configuration for the chessrules command.
package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InputSource identifies where the game to report on comes from.
type InputSource int

const (
	FromStart     InputSource = iota // Standard initial position, plus any moves
	FromFEN                          // A FEN position, plus any moves
	FromSavedGame                    // A saved JSON game, plus any moves
	BatchValidate                    // Validate many saved games; no single game
)

// String returns the name of the input source.
func (s InputSource) String() string {
	switch s {
	case FromStart:
		return "start"
	case FromFEN:
		return "fen"
	case FromSavedGame:
		return "saved"
	case BatchValidate:
		return "validate"
	default:
		return "unknown"
	}
}

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=errors only, 1=game summary, 2=every ply

	// Game input
	StartFEN  string   // Start position; empty for the standard setup
	LoadFile  string   // Saved game to continue from
	Moves     []string // Coordinate moves played after the start
	Undo      int      // Plies taken back after the moves are played
	LegalFrom string   // Square whose legal moves are listed

	// Grouped settings
	Output  *OutputConfig
	Diagram *DiagramConfig
	Batch   *BatchConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer

	// Clock for the PGN Date tag
	Now func() time.Time
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Output:     NewOutputConfig(),
		Diagram:    NewDiagramConfig(),
		Batch:      NewBatchConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
		Now:        time.Now,
	}
}

// Source reports which input the configuration selects.
func (c *Config) Source() InputSource {
	switch {
	case len(c.Batch.Files) > 0:
		return BatchValidate
	case c.LoadFile != "":
		return FromSavedGame
	case c.StartFEN != "":
		return FromFEN
	default:
		return FromStart
	}
}

// Validate checks that the configuration is consistent.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d outside 0-2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.LoadFile != "" && c.StartFEN != "" {
		return fmt.Errorf("a saved game and a FEN cannot both be given: %w", errors.ErrInvalidConfig)
	}
	if c.Undo < 0 {
		return fmt.Errorf("undo %d plies: %w", c.Undo, errors.ErrInvalidConfig)
	}
	if len(c.Batch.Files) > 0 && (c.LoadFile != "" || c.StartFEN != "" || len(c.Moves) > 0 || c.Undo > 0) {
		return fmt.Errorf("batch validation takes no single-game input: %w", errors.ErrInvalidConfig)
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	if err := c.Diagram.Validate(); err != nil {
		return err
	}
	return c.Batch.Validate()
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}
