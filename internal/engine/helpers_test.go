package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// mustFEN parses fen or fails the test.
func mustFEN(t *testing.T, fen string) *chess.Position {
	t.Helper()
	pos, err := NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("NewPositionFromFEN(%q) error: %v", fen, err)
	}
	return pos
}

// mustPlay applies coordinate moves to pos or fails the test.
func mustPlay(t *testing.T, pos *chess.Position, moves ...string) *chess.Position {
	t.Helper()
	next, err := PlayUCIMoves(pos, moves)
	if err != nil {
		t.Fatalf("PlayUCIMoves(%v) error: %v", moves, err)
	}
	return next
}

// sq is shorthand for chess.MustParseSquare.
func sq(s string) chess.Square {
	return chess.MustParseSquare(s)
}

// destinations returns the destination names of moves, in order.
func destinations(moves []chess.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.To.String())
	}
	return out
}

// hasMoveTo reports whether any move lands on to.
func hasMoveTo(moves []chess.Move, to chess.Square) bool {
	for _, m := range moves {
		if m.To == to {
			return true
		}
	}
	return false
}
