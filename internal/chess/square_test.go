package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

func TestSquareFileRank(t *testing.T) {
	tests := []struct {
		file, rank int
		want       Square
		name       string
	}{
		{0, 0, 0, "a1"},
		{7, 0, 7, "h1"},
		{4, 3, 28, "e4"},
		{0, 7, 56, "a8"},
		{7, 7, 63, "h8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sq := SquareFromFileRank(tt.file, tt.rank)
			if sq != tt.want {
				t.Fatalf("SquareFromFileRank(%d, %d) = %d; want %d", tt.file, tt.rank, sq, tt.want)
			}
			if sq.File() != tt.file || sq.Rank() != tt.rank {
				t.Errorf("File/Rank = %d/%d; want %d/%d", sq.File(), sq.Rank(), tt.file, tt.rank)
			}
			if got := sq.String(); got != tt.name {
				t.Errorf("String() = %q; want %q", got, tt.name)
			}
			parsed, err := ParseSquare(tt.name)
			if err != nil || parsed != sq {
				t.Errorf("ParseSquare(%q) = %v, %v; want %v", tt.name, parsed, err, sq)
			}
		})
	}
}

func TestSquareOffBoard(t *testing.T) {
	if got := SquareFromFileRank(8, 0); got != NoSquare {
		t.Errorf("SquareFromFileRank(8, 0) = %v; want NoSquare", got)
	}
	if got := SquareFromFileRank(0, -1); got != NoSquare {
		t.Errorf("SquareFromFileRank(0, -1) = %v; want NoSquare", got)
	}
	if got := H1.Offset(1, 0); got != NoSquare {
		t.Errorf("h1 + 1 file = %v; want NoSquare", got)
	}
	if got := NoSquare.String(); got != "-" {
		t.Errorf("NoSquare.String() = %q; want -", got)
	}
}

func TestParseSquare_Invalid(t *testing.T) {
	for _, s := range []string{"", "e", "e9", "i1", "e44", "E4"} {
		_, err := ParseSquare(s)
		if !errors.Is(err, chesserrors.ErrInvalidSquare) {
			t.Errorf("ParseSquare(%q) error = %v; want ErrInvalidSquare", s, err)
		}
	}
}

func TestMoveUCI(t *testing.T) {
	tests := []struct {
		move Move
		want string
	}{
		{Move{From: MustParseSquare("e2"), To: MustParseSquare("e4")}, "e2e4"},
		{Move{From: MustParseSquare("e7"), To: MustParseSquare("e8"), Promotion: Queen}, "e7e8q"},
		{Move{From: MustParseSquare("b2"), To: MustParseSquare("a1"), Promotion: Knight}, "b2a1n"},
		{Move{From: E1, To: G1, Castle: KingSide}, "e1g1"},
	}
	for _, tt := range tests {
		if got := tt.move.UCI(); got != tt.want {
			t.Errorf("UCI() = %q; want %q", got, tt.want)
		}
	}
}
