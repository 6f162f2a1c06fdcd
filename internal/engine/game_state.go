package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// GameStatus classifies pos for the side to move.
//
// Checkmate is reported before the automatic draws, so a mating move that
// also completes the fifty-move count or a third repetition still wins.
// The remaining order is fifty-move rule, threefold repetition, stalemate.
func GameStatus(pos *chess.Position) chess.Status {
	colour := pos.SideToMove
	check := IsInCheck(pos, colour)
	hasMoves := HasLegalMoves(pos, colour)

	switch {
	case !hasMoves && check:
		return chess.Status{Kind: chess.Checkmate, Check: true, Winner: colour.Opposite()}
	case IsFiftyMoveDraw(pos):
		return chess.Status{Kind: chess.DrawFifty, Check: check}
	case IsThreefoldRepetition(pos):
		return chess.Status{Kind: chess.DrawThreefold, Check: check}
	case !hasMoves:
		return chess.Status{Kind: chess.Stalemate}
	}
	return chess.Status{Kind: chess.Ongoing, Check: check}
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(pos *chess.Position) bool {
	colour := pos.SideToMove
	return IsInCheck(pos, colour) && !HasLegalMoves(pos, colour)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(pos *chess.Position) bool {
	colour := pos.SideToMove
	return !IsInCheck(pos, colour) && !HasLegalMoves(pos, colour)
}
