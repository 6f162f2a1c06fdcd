// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Game input
	movesList = flag.String("moves", "", "Coordinate moves to play, space or comma separated (e.g. \"e2e4 e7e5\")")
	startFEN  = flag.String("fen", "", "Start from this FEN position instead of the standard setup")
	loadFile  = flag.String("load", "", "Continue from a saved JSON game")
	legalFrom = flag.String("legal", "", "List the legal moves of the piece on this square")
	undoPlies = flag.Int("undo", 0, "Take back this many plies after the moves are played")

	// Output options
	outputFile = flag.String("o", "", "Report file (default: stdout)")
	pgnFile    = flag.String("pgn", "", "Write the game as PGN to this file (- for stdout)")
	saveFile   = flag.String("save", "", "Write the game as saved JSON to this file (- for stdout)")
	lineLength = flag.Int("w", 80, "Maximum PGN line length")
	compact    = flag.Bool("compact", false, "Write saved games without indentation")
	noFEN      = flag.Bool("nofen", false, "Don't print the final FEN")
	noMoves    = flag.Bool("nomoves", false, "Don't print the move list")

	// Diagram options
	svgFile  = flag.String("svg", "", "Write an SVG diagram of the final position to this file (- for stdout)")
	svgSize  = flag.Int("svgsize", 48, "Diagram square size in pixels")
	flip     = flag.Bool("flip", false, "Draw the diagram from Black's side")
	noCoords = flag.Bool("nocoords", false, "Don't label files and ranks on the diagram")

	// Batch validation
	validateMode = flag.Bool("validate", false, "Validate the saved games named on the command line")
	workers      = flag.Int("workers", 0, "Number of validation workers (0 = auto-detect based on CPU cores)")
	stopOnError  = flag.Bool("stoponerror", false, "Stop validating at the first invalid game")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	verbosity = flag.Int("v", 1, "Verbosity: 0=errors only, 1=summary, 2=every ply")
	quiet     = flag.Bool("s", false, "Silent mode (same as -v 0)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	tags = tagFlags{}
)

func init() {
	flag.Var(tags, "tag", "PGN header as Name=Value (repeatable)")
}

// tagFlags collects repeated -tag Name=Value flags.
type tagFlags chess.Metadata

func (t tagFlags) String() string {
	pairs := make([]string, 0, len(t))
	for name, value := range t {
		pairs = append(pairs, name+"="+value)
	}
	return strings.Join(pairs, ",")
}

func (t tagFlags) Set(s string) error {
	name, value, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return fmt.Errorf("tag %q is not Name=Value", s)
	}
	t[name] = value
	return nil
}

// splitMoves splits a move list on spaces and commas.
func splitMoves(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

// applyFlags applies command-line flags to the configuration.
// args are the positional arguments left after flag parsing.
func applyFlags(cfg *config.Config, args []string) {
	applyInputFlags(cfg)
	applyOutputFlags(cfg)
	applyDiagramFlags(cfg)
	applyBatchFlags(cfg, args)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
}

// applyInputFlags configures where the game comes from.
func applyInputFlags(cfg *config.Config) {
	cfg.StartFEN = strings.TrimSpace(*startFEN)
	cfg.LoadFile = *loadFile
	cfg.Moves = splitMoves(*movesList)
	cfg.LegalFrom = strings.TrimSpace(*legalFrom)
	cfg.Undo = *undoPlies
}

// applyOutputFlags configures report and record output.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.MaxLineLength = uint(*lineLength)
	cfg.Output.PGNFile = *pgnFile
	cfg.Output.SaveFile = *saveFile
	cfg.Output.JSONIndent = !*compact
	cfg.Output.ShowFEN = !*noFEN
	cfg.Output.ShowMoves = !*noMoves
	for name, value := range tags {
		cfg.Output.Tags[name] = value
	}
}

// applyDiagramFlags configures the SVG diagram.
func applyDiagramFlags(cfg *config.Config) {
	cfg.Diagram.File = *svgFile
	cfg.Diagram.SquareSize = *svgSize
	cfg.Diagram.Flip = *flip
	cfg.Diagram.Coordinates = !*noCoords
}

// applyBatchFlags configures batch validation.
func applyBatchFlags(cfg *config.Config, args []string) {
	if *validateMode {
		cfg.Batch.Files = args
	}
	cfg.Batch.Workers = *workers
	cfg.Batch.StopOnError = *stopOnError
}
