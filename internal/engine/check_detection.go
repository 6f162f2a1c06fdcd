package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Direction tables shared by attack detection and move generation.
var (
	knightOffsets   = [8][2]int{{1, 2}, {2, 1}, {-1, 2}, {-2, 1}, {1, -2}, {2, -1}, {-1, -2}, {-2, -1}}
	kingOffsets     = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs    = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	straightDirs    = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	pawnCaptureCols = [2]int{-1, 1}
)

// IsInCheck returns true if the given colour's king is attacked.
// A side without a king is never in check.
func IsInCheck(pos *chess.Position, colour chess.Colour) bool {
	kingSq := pos.KingSquare(colour)
	if kingSq == chess.NoSquare {
		return false
	}
	return IsSquareAttacked(pos, kingSq, colour.Opposite())
}

// FindKing returns the square of the given colour's king, or NoSquare.
func FindKing(pos *chess.Position, colour chess.Colour) chess.Square {
	return pos.KingSquare(colour)
}

// IsSquareAttacked returns true if any piece of byColour could move to sq
// in one pseudo-legal move. An off-board square is never attacked.
func IsSquareAttacked(pos *chess.Position, sq chess.Square, byColour chess.Colour) bool {
	if !sq.Valid() {
		return false
	}
	file, rank := sq.File(), sq.Rank()

	// Knights
	knight := chess.MakeColouredPiece(byColour, chess.Knight)
	for _, d := range knightOffsets {
		if pieceAt(pos, file+d[0], rank+d[1]) == knight {
			return true
		}
	}

	// Pawns attack from the rank behind the square, seen from byColour
	pawn := chess.MakeColouredPiece(byColour, chess.Pawn)
	pawnRank := rank - chess.ColourOffset(byColour)
	for _, dc := range pawnCaptureCols {
		if pieceAt(pos, file+dc, pawnRank) == pawn {
			return true
		}
	}

	// King
	king := chess.MakeColouredPiece(byColour, chess.King)
	for _, d := range kingOffsets {
		if pieceAt(pos, file+d[0], rank+d[1]) == king {
			return true
		}
	}

	queen := chess.MakeColouredPiece(byColour, chess.Queen)

	// Rook or queen along straight lines
	rook := chess.MakeColouredPiece(byColour, chess.Rook)
	for _, dir := range straightDirs {
		if blocker := firstPieceAlong(pos, file, rank, dir); blocker == rook || blocker == queen {
			return true
		}
	}

	// Bishop or queen along diagonals
	bishop := chess.MakeColouredPiece(byColour, chess.Bishop)
	for _, dir := range diagonalDirs {
		if blocker := firstPieceAlong(pos, file, rank, dir); blocker == bishop || blocker == queen {
			return true
		}
	}

	return false
}

// pieceAt returns the piece at (file, rank), or NoPiece when off the board.
func pieceAt(pos *chess.Position, file, rank int) chess.Piece {
	if !chess.OnBoard(file, rank) {
		return chess.NoPiece
	}
	return pos.Board[chess.SquareFromFileRank(file, rank)]
}

// firstPieceAlong walks from (file, rank) in direction dir and returns the
// first occupant met, or NoPiece if the ray leaves the board.
func firstPieceAlong(pos *chess.Position, file, rank int, dir [2]int) chess.Piece {
	f, r := file+dir[0], rank+dir[1]
	for chess.OnBoard(f, r) {
		if piece := pos.Board[chess.SquareFromFileRank(f, r)]; piece != chess.NoPiece {
			return piece
		}
		f += dir[0]
		r += dir[1]
	}
	return chess.NoPiece
}
