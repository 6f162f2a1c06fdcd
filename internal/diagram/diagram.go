// Package diagram draws board diagrams as SVG.
package diagram

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Board colours.
const (
	lightFill     = "fill:#f0d9b5"
	darkFill      = "fill:#b58863"
	highlightFill = "fill:#cdd26a"
	labelStyle    = "fill:#555555;font-family:sans-serif;text-anchor:middle"
	pieceStyle    = "font-family:serif;text-anchor:middle"
)

// Options controls diagram layout.
type Options struct {
	SquareSize        int
	Flip              bool
	Coordinates       bool
	HighlightLastMove bool
}

// OptionsFromConfig converts diagram settings into Options.
func OptionsFromConfig(cfg *config.DiagramConfig) Options {
	return Options{
		SquareSize:        cfg.SquareSize,
		Flip:              cfg.Flip,
		Coordinates:       cfg.Coordinates,
		HighlightLastMove: cfg.HighlightLastMove,
	}
}

var glyphs = map[chess.Piece]string{
	chess.W(chess.King):   "♔",
	chess.W(chess.Queen):  "♕",
	chess.W(chess.Rook):   "♖",
	chess.W(chess.Bishop): "♗",
	chess.W(chess.Knight): "♘",
	chess.W(chess.Pawn):   "♙",
	chess.B(chess.King):   "♚",
	chess.B(chess.Queen):  "♛",
	chess.B(chess.Rook):   "♜",
	chess.B(chess.Bishop): "♝",
	chess.B(chess.Knight): "♞",
	chess.B(chess.Pawn):   "♟",
}

// Glyph returns the figurine used to draw piece, or "" for an empty square.
func Glyph(piece chess.Piece) string {
	return glyphs[piece]
}

// WriteSVG draws pos as an SVG document. The title element carries the FEN.
func WriteSVG(w io.Writer, pos *chess.Position, opts Options) error {
	size := opts.SquareSize
	if size <= 0 {
		size = config.NewDiagramConfig().SquareSize
	}
	margin := 0
	if opts.Coordinates {
		margin = size / 2
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(margin+chess.BoardSize*size, chess.BoardSize*size+margin)
	canvas.Title(engine.PositionToFEN(pos))

	highlighted := map[chess.Square]bool{}
	if last, ok := pos.LastMove(); ok && opts.HighlightLastMove {
		highlighted[last.From] = true
		highlighted[last.To] = true
	}

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		x, y := squareOrigin(sq, size, margin, opts.Flip)
		fill := darkFill
		if (sq.File()+sq.Rank())%2 == 1 {
			fill = lightFill
		}
		if highlighted[sq] {
			canvas.Rect(x, y, size, size, fmt.Sprintf(`id="%s"`, sq), `class="last-move"`, highlightFill)
		} else {
			canvas.Rect(x, y, size, size, fmt.Sprintf(`id="%s"`, sq), fill)
		}
	}

	canvas.Gstyle(fmt.Sprintf("%s;font-size:%dpx", pieceStyle, size*3/4))
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := pos.Board[sq]
		if piece == chess.NoPiece {
			continue
		}
		x, y := squareOrigin(sq, size, margin, opts.Flip)
		canvas.Text(x+size/2, y+size*4/5, Glyph(piece), fmt.Sprintf(`class="piece %s"`, piece))
	}
	canvas.Gend()

	if opts.Coordinates {
		drawCoordinates(canvas, size, margin, opts.Flip)
	}

	canvas.End()
	return ew.err
}

// squareOrigin returns the top-left corner of sq in the drawing.
func squareOrigin(sq chess.Square, size, margin int, flip bool) (int, int) {
	col, row := sq.File(), chess.BoardSize-1-sq.Rank()
	if flip {
		col, row = chess.BoardSize-1-sq.File(), sq.Rank()
	}
	return margin + col*size, row * size
}

// drawCoordinates labels ranks down the left margin and files along the bottom.
func drawCoordinates(canvas *svg.SVG, size, margin int, flip bool) {
	canvas.Gstyle(fmt.Sprintf("%s;font-size:%dpx", labelStyle, margin*2/3))
	for i := 0; i < chess.BoardSize; i++ {
		file, rank := i, chess.BoardSize-1-i
		if flip {
			file, rank = chess.BoardSize-1-i, i
		}
		canvas.Text(margin+i*size+size/2, chess.BoardSize*size+margin*3/4, string(rune('a'+file)))
		canvas.Text(margin/2, i*size+size/2+margin/4, string(rune('1'+rank)))
	}
	canvas.Gend()
}

// errWriter keeps the first write error; svgo itself ignores them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
