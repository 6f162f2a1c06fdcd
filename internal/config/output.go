package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MinLineLength is the shortest accepted PGN line length.
const MinLineLength = 20

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// MaxLineLength is the maximum line length for PGN movetext
	MaxLineLength uint

	// Tags are PGN header values given on the command line
	Tags chess.Metadata

	// ShowFEN prints the FEN of the final position
	ShowFEN bool

	// ShowMoves prints the game's moves in algebraic notation
	ShowMoves bool

	// PGNFile receives the game record ("-" for standard output)
	PGNFile string

	// SaveFile receives the saved-game JSON ("-" for standard output)
	SaveFile string

	// JSONIndent pretty-prints saved games
	JSONIndent bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		MaxLineLength: 80,
		Tags:          chess.Metadata{},
		ShowFEN:       true,
		ShowMoves:     true,
		JSONIndent:    true,
	}
}

// Validate checks the output settings.
func (o *OutputConfig) Validate() error {
	if o.MaxLineLength < MinLineLength {
		return fmt.Errorf("line length %d below %d: %w", o.MaxLineLength, MinLineLength, errors.ErrInvalidConfig)
	}
	return nil
}
