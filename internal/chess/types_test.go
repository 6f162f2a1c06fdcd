package chess

import "testing"

func TestColourOpposite(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() does not swap colours")
	}
}

func TestPieceEncoding(t *testing.T) {
	for colour := Black; colour <= White; colour++ {
		for pt := Pawn; pt < NumPieceTypes; pt++ {
			p := MakeColouredPiece(colour, pt)
			if p == NoPiece {
				t.Fatalf("MakeColouredPiece(%v, %v) collides with NoPiece", colour, pt)
			}
			if p.Colour() != colour || p.Type() != pt {
				t.Errorf("MakeColouredPiece(%v, %v) decodes to (%v, %v)", colour, pt, p.Colour(), p.Type())
			}
			if !p.Is(colour, pt) {
				t.Errorf("%v.Is(%v, %v) = false", p, colour, pt)
			}
		}
	}
}

func TestPieceLetters(t *testing.T) {
	tests := []struct {
		piece Piece
		fen   byte
		text  string
	}{
		{W(King), 'K', "wK"},
		{B(Queen), 'q', "bQ"},
		{W(Pawn), 'P', "wP"},
		{B(Knight), 'n', "bN"},
		{NoPiece, '.', ""},
	}
	for _, tt := range tests {
		if got := tt.piece.FENLetter(); got != tt.fen {
			t.Errorf("FENLetter(%q) = %c; want %c", tt.text, got, tt.fen)
		}
		if got := tt.piece.String(); got != tt.text {
			t.Errorf("String() = %q; want %q", got, tt.text)
		}
	}
}

func TestPieceTypeFromLetter(t *testing.T) {
	for pt := Pawn; pt < NumPieceTypes; pt++ {
		if got := PieceTypeFromLetter(pt.Letter()); got != pt {
			t.Errorf("PieceTypeFromLetter(%c) = %v; want %v", pt.Letter(), got, pt)
		}
	}
	if got := PieceTypeFromLetter('x'); got != NoPieceType {
		t.Errorf("PieceTypeFromLetter('x') = %v; want NoPieceType", got)
	}
}

func TestIsPromotionTarget(t *testing.T) {
	want := map[PieceType]bool{Pawn: false, Knight: true, Bishop: true, Rook: true, Queen: true, King: false}
	for pt, ok := range want {
		if got := pt.IsPromotionTarget(); got != ok {
			t.Errorf("%v.IsPromotionTarget() = %v; want %v", pt, got, ok)
		}
	}
}

func TestRanks(t *testing.T) {
	if BackRank(White) != 0 || BackRank(Black) != 7 {
		t.Error("BackRank wrong")
	}
	if PawnStartRank(White) != 1 || PawnStartRank(Black) != 6 {
		t.Error("PawnStartRank wrong")
	}
	if PromotionRank(White) != 7 || PromotionRank(Black) != 0 {
		t.Error("PromotionRank wrong")
	}
}

func TestStatusResult(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{Status{Kind: Ongoing}, "*"},
		{Status{Kind: Ongoing, Check: true}, "*"},
		{Status{Kind: Checkmate, Winner: White, Check: true}, "1-0"},
		{Status{Kind: Checkmate, Winner: Black, Check: true}, "0-1"},
		{Status{Kind: Stalemate}, "1/2-1/2"},
		{Status{Kind: DrawFifty}, "1/2-1/2"},
		{Status{Kind: DrawThreefold}, "1/2-1/2"},
	}
	for _, tt := range tests {
		t.Run(tt.status.Kind.String(), func(t *testing.T) {
			if got := tt.status.Result(); got != tt.want {
				t.Errorf("Result() = %q; want %q", got, tt.want)
			}
		})
	}
}
