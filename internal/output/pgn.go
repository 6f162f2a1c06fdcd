// Package output renders positions as PGN game records and saved-game JSON.
package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// DefaultLineLength is the PGN movetext width used when none is configured.
const DefaultLineLength = 80

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a token, breaking the line first if it would overflow.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// RecordOptions controls PGN rendering.
type RecordOptions struct {
	MaxLineLength int
	Now           func() time.Time // Source of the default Date tag
}

// HistoryToPortableRecord renders the game leading to pos as PGN text.
// Missing seven-tag-roster entries get their defaults and Result defaults to "*".
func HistoryToPortableRecord(pos *chess.Position, metadata chess.Metadata) (string, error) {
	var sb strings.Builder
	if err := WritePortableRecord(&sb, pos, metadata, RecordOptions{}); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WritePortableRecord writes the PGN record of the game leading to pos.
func WritePortableRecord(w io.Writer, pos *chess.Position, metadata chess.Metadata, opts RecordOptions) error {
	sans, err := engine.HistoryToAlgebraic(pos)
	if err != nil {
		return err
	}
	start, err := engine.StartPosition(pos)
	if err != nil {
		return err
	}

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	tags := metadata.WithDefaults(now())
	if pos.StartFEN != "" {
		tags["SetUp"] = "1"
		tags["FEN"] = pos.StartFEN
	}

	writeTags(w, tags)
	fmt.Fprintln(w)

	ow := NewOutputWriter(w, opts.MaxLineLength)
	moveNum := start.FullmoveNumber
	isWhite := start.SideToMove == chess.White
	for i, san := range sans {
		if isWhite {
			ow.Write(fmt.Sprintf("%d.", moveNum))
		} else if i == 0 {
			ow.Write(fmt.Sprintf("%d...", moveNum))
		}
		ow.Write(san)
		if !isWhite {
			moveNum++
		}
		isWhite = !isWhite
	}
	// The result is the last movetext token, not a line of its own.
	ow.Write(tags["Result"])
	ow.NewLine()
	return nil
}

// writeTags writes the seven tag roster in order, then SetUp and FEN, then
// any remaining tags sorted by name.
func writeTags(w io.Writer, tags chess.Metadata) {
	for _, tag := range chess.SevenTagRoster {
		fmt.Fprintf(w, "[%s \"%s\"]\n", tag, escapeTagValue(tags[tag]))
	}
	for _, tag := range []string{"SetUp", "FEN"} {
		if value, ok := tags[tag]; ok {
			fmt.Fprintf(w, "[%s \"%s\"]\n", tag, escapeTagValue(value))
		}
	}

	extra := maps.Keys(tags)
	slices.Sort(extra)
	for _, tag := range extra {
		if chess.IsSevenTagRosterTag(tag) || tag == "SetUp" || tag == "FEN" {
			continue
		}
		fmt.Fprintf(w, "[%s \"%s\"]\n", tag, escapeTagValue(tags[tag]))
	}
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}
