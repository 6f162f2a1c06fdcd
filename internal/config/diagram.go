package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Square size limits for SVG diagrams, in pixels.
const (
	MinSquareSize = 16
	MaxSquareSize = 256
)

// DiagramConfig holds settings for SVG board diagrams.
type DiagramConfig struct {
	File              string // Destination of the SVG ("-" for standard output); empty disables it
	SquareSize        int    // Edge of one square in pixels
	Flip              bool   // Draw the board from Black's side
	Coordinates       bool   // Label files and ranks
	HighlightLastMove bool
}

// NewDiagramConfig creates a DiagramConfig with default values.
func NewDiagramConfig() *DiagramConfig {
	return &DiagramConfig{
		SquareSize:        48,
		Coordinates:       true,
		HighlightLastMove: true,
	}
}

// Validate checks the diagram settings.
func (d *DiagramConfig) Validate() error {
	if d.SquareSize < MinSquareSize || d.SquareSize > MaxSquareSize {
		return fmt.Errorf("square size %d outside %d-%d: %w",
			d.SquareSize, MinSquareSize, MaxSquareSize, errors.ErrInvalidConfig)
	}
	return nil
}
