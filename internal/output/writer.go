package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Record formats accepted by NewGameWriter.
const (
	FormatPGN  = "pgn"
	FormatJSON = "json"
)

// GameWriter writes finished games in one record format.
type GameWriter interface {
	WriteGame(pos *chess.Position, tags chess.Metadata) error
	Flush() error
	Close() error
}

// NewGameWriter returns the writer for format, FormatPGN or FormatJSON.
func NewGameWriter(format string, w io.Writer, cfg *config.Config) (GameWriter, error) {
	switch format {
	case FormatPGN:
		return NewPGNWriter(w, cfg), nil
	case FormatJSON:
		return NewJSONWriter(w, cfg), nil
	default:
		return nil, fmt.Errorf("record format %q: %w", format, errors.ErrInvalidConfig)
	}
}

// PGNWriter writes games in PGN format.
type PGNWriter struct {
	w       io.Writer
	cfg     *config.Config
	written int
}

// NewPGNWriter creates a new PGN writer.
func NewPGNWriter(w io.Writer, cfg *config.Config) *PGNWriter {
	return &PGNWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteGame writes a game in PGN format. Games are separated by a blank line.
func (pw *PGNWriter) WriteGame(pos *chess.Position, tags chess.Metadata) error {
	if pw.written > 0 {
		fmt.Fprintln(pw.w)
	}
	opts := RecordOptions{
		MaxLineLength: int(pw.cfg.Output.MaxLineLength),
		Now:           pw.cfg.Now,
	}
	if err := WritePortableRecord(pw.w, pos, tags, opts); err != nil {
		return err
	}
	pw.written++
	return nil
}

// Flush is a no-op; games are written as they arrive.
func (pw *PGNWriter) Flush() error {
	return nil
}

// Close is a no-op.
func (pw *PGNWriter) Close() error {
	return nil
}

// JSONWriter writes each game as its own saved-game document.
type JSONWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewJSONWriter creates a saved-game writer.
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{w: w, cfg: cfg}
}

// WriteGame encodes the game immediately.
func (jw *JSONWriter) WriteGame(pos *chess.Position, tags chess.Metadata) error {
	return EncodeSavedGame(jw.w, pos, tags, jw.cfg.Output.JSONIndent)
}

// Flush is a no-op; nothing is buffered.
func (jw *JSONWriter) Flush() error {
	return nil
}

// Close is a no-op.
func (jw *JSONWriter) Close() error {
	return nil
}
