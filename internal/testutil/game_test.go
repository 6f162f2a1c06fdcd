package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

func TestMustPosition(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		wantSide chess.Colour
	}{
		{"empty gives initial", "", chess.White},
		{"black to move", "4k3/8/8/8/8/8/8/4K3 b - - 0 1", chess.Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := MustPosition(t, tt.fen)
			AssertEqual(t, pos.SideToMove, tt.wantSide)
		})
	}
}

func TestMustGame_ScholarsMate(t *testing.T) {
	pos := MustGame(t, ScholarsMate...)
	AssertEqual(t, pos.PlyCount(), len(ScholarsMate))
	AssertEqual(t, engine.GameStatus(pos), chess.Status{Kind: chess.Checkmate, Check: true, Winner: chess.White})
}

func TestMustPlay_FromPosition(t *testing.T) {
	pos := MustPlay(t, MustPosition(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1"), "a7a8n")
	AssertEqual(t, pos.Get(chess.MustParseSquare("a8")), chess.W(chess.Knight))
}
