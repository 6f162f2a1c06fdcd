package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// ScholarsMate is the move list of 1.e4 e5 2.Bc4 Nc6 3.Qh5 Nf6 4.Qxf7#.
var ScholarsMate = []string{"e2e4", "e7e5", "f1c4", "b8c6", "d1h5", "g8f6", "h5f7"}

// MustPosition parses a FEN string, calling t.Fatal on failure.
// An empty string gives the standard starting position.
func MustPosition(t testing.TB, fen string) *chess.Position {
	t.Helper()
	if fen == "" {
		return engine.NewInitialPosition()
	}
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("invalid test FEN %q: %v", fen, err)
	}
	return pos
}

// MustPlay applies coordinate moves ("e2e4", "e7e8n") to pos, calling
// t.Fatal if any of them is illegal.
func MustPlay(t testing.TB, pos *chess.Position, moves ...string) *chess.Position {
	t.Helper()
	next, err := engine.PlayUCIMoves(pos, moves)
	if err != nil {
		t.Fatalf("playing test moves %v: %v", moves, err)
	}
	return next
}

// MustGame plays moves from the standard starting position.
func MustGame(t testing.TB, moves ...string) *chess.Position {
	t.Helper()
	return MustPlay(t, engine.NewInitialPosition(), moves...)
}
