package hashing

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

func initialPosition() *chess.Position {
	p := chess.NewPosition()
	p.SetupInitialPosition()
	return p
}

func TestPositionKeyConsistency(t *testing.T) {
	key1 := PositionKey(initialPosition())
	key2 := PositionKey(initialPosition())

	if key1 != key2 {
		t.Errorf("identical positions produced different keys: %q != %q", key1, key2)
	}
}

func TestPositionKeyIgnoresClocks(t *testing.T) {
	p1 := initialPosition()
	p2 := initialPosition()
	p2.HalfmoveClock = 37
	p2.FullmoveNumber = 60
	p2.History = []chess.Move{{From: chess.G1, To: chess.F1}}

	if PositionKey(p1) != PositionKey(p2) {
		t.Error("clocks or history changed the position key")
	}
}

func TestPositionKeyDistinguishes(t *testing.T) {
	base := initialPosition()

	tests := []struct {
		name   string
		modify func(*chess.Position)
	}{
		{"placement", func(p *chess.Position) {
			p.Set(chess.MustParseSquare("e2"), chess.NoPiece)
			p.Set(chess.MustParseSquare("e4"), chess.W(chess.Pawn))
		}},
		{"side to move", func(p *chess.Position) { p.SideToMove = chess.Black }},
		{"castling rights", func(p *chess.Position) { p.Castling.Revoke(chess.Black, chess.QueenSide) }},
		{"en passant", func(p *chess.Position) { p.EnPassant = chess.MustParseSquare("e3") }},
		{"piece colour", func(p *chess.Position) { p.Set(chess.A1, chess.B(chess.Rook)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base.Copy()
			tt.modify(p)
			if PositionKey(p) == PositionKey(base) {
				t.Errorf("changing %s did not change the key", tt.name)
			}
		})
	}
}

func TestRepetitionCounter(t *testing.T) {
	counter := NewRepetitionCounter()
	start := initialPosition()
	other := start.Copy()
	other.SideToMove = chess.Black

	if got := counter.Add(start); got != 1 {
		t.Errorf("first Add() = %d; want 1", got)
	}
	counter.Add(other)
	if got := counter.Add(start); got != 2 {
		t.Errorf("second Add() = %d; want 2", got)
	}
	if got := counter.Count(start); got != 2 {
		t.Errorf("Count() = %d; want 2", got)
	}
	if got := counter.MaxCount(); got != 2 {
		t.Errorf("MaxCount() = %d; want 2", got)
	}
	if got := counter.UniqueCount(); got != 2 {
		t.Errorf("UniqueCount() = %d; want 2", got)
	}
}
