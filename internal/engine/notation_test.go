package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

func TestMoveToAlgebraic(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves []string // played before the move under test
		move  string
		want  string
	}{
		{"pawn push", InitialFEN, nil, "e2e4", "e4"},
		{"knight move", InitialFEN, nil, "g1f3", "Nf3"},
		{"pawn capture", InitialFEN, []string{"e2e4", "d7d5"}, "e4d5", "exd5"},
		{"piece capture", InitialFEN, []string{"e2e4", "d7d5", "e4d5"}, "d8d5", "Qxd5"},
		{"check", InitialFEN, []string{"e2e4", "f7f6"}, "d1h5", "Qh5+"},
		{"mate", InitialFEN, []string{"e2e4", "e7e5", "f1c4", "b8c6", "d1h5", "g8f6"}, "h5f7", "Qxf7#"},
		{"king-side castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", nil, "e1g1", "O-O"},
		{"queen-side castle", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", nil, "e8c8", "O-O-O"},
		{"en passant", InitialFEN, []string{"e2e4", "a7a6", "e4e5", "d7d5"}, "e5d6", "exd6"},
		{"promotion with check", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", nil, "a7a8", "a8=Q+"},
		{"under-promotion", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", nil, "a7a8n", "a8=N"},
		{"capture promotion", "1r2k3/P7/8/8/8/8/8/4K3 w - - 0 1", nil, "a7b8r", "axb8=R+"},
		// Both rooks reach a3; the origin is not shown
		{"no disambiguation", "4k3/8/8/R7/8/8/8/R3K3 w - - 0 1", nil, "a1a3", "Ra3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPlay(t, mustFEN(t, tt.fen), tt.moves...)
			move, err := ParseUCIMove(pos, tt.move)
			if err != nil {
				t.Fatalf("ParseUCIMove(%q) error: %v", tt.move, err)
			}
			if got := MoveToAlgebraic(pos, move); got != tt.want {
				t.Errorf("MoveToAlgebraic(%s) = %q, want %q", tt.move, got, tt.want)
			}
		})
	}
}

func TestMoveToAlgebraic_EmptyOrigin(t *testing.T) {
	if got := MoveToAlgebraic(NewInitialPosition(), chess.Move{From: sq("e4"), To: sq("e5")}); got != "" {
		t.Errorf("MoveToAlgebraic(empty origin) = %q, want empty", got)
	}
}

func TestHistoryToAlgebraic(t *testing.T) {
	pos := mustPlay(t, NewInitialPosition(), "e2e4", "e7e5", "f1c4", "b8c6", "d1h5", "g8f6", "h5f7")
	got, err := HistoryToAlgebraic(pos)
	if err != nil {
		t.Fatalf("HistoryToAlgebraic() error: %v", err)
	}
	want := []string{"e4", "e5", "Bc4", "Nc6", "Qh5", "Nf6", "Qxf7#"}
	if len(got) != len(want) {
		t.Fatalf("HistoryToAlgebraic() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ply %d = %q, want %q", i+1, got[i], want[i])
		}
	}
}

func TestParseUCIMove(t *testing.T) {
	pos := NewInitialPosition()

	move, err := ParseUCIMove(pos, "e2e4")
	if err != nil {
		t.Fatalf("ParseUCIMove(e2e4) error: %v", err)
	}
	if !move.PawnDouble || move.From != sq("e2") || move.To != sq("e4") {
		t.Errorf("ParseUCIMove(e2e4) = %+v", move)
	}

	bad := []string{"", "e2", "e2e5", "e7e5", "i2i4", "e2e4x", "e2e3q"}
	for _, s := range bad {
		t.Run(s, func(t *testing.T) {
			if _, err := ParseUCIMove(pos, s); err == nil {
				t.Errorf("ParseUCIMove(%q) succeeded, want error", s)
			}
		})
	}
}

func TestPlayUCIMoves_ReportsPly(t *testing.T) {
	_, err := PlayUCIMoves(NewInitialPosition(), []string{"e2e4", "e7e5", "e1e3"})
	var replayErr *chesserrors.ReplayError
	if !errors.As(err, &replayErr) {
		t.Fatalf("PlayUCIMoves() error = %v, want ReplayError", err)
	}
	if replayErr.PlyNum != 3 || replayErr.MoveText != "e1e3" {
		t.Errorf("ReplayError = ply %d move %q, want ply 3 move e1e3", replayErr.PlyNum, replayErr.MoveText)
	}
	if !errors.Is(err, chesserrors.ErrIllegalMove) {
		t.Errorf("errors.Is(err, ErrIllegalMove) = false for %v", err)
	}
}
