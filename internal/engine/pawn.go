package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pawnMoves generates pawn pushes, captures and en-passant captures.
// Moves onto the far rank promote to a queen unless the caller overrides it.
func pawnMoves(pos *chess.Position, from chess.Square, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	dir := chess.ColourOffset(colour)
	promoRank := chess.PromotionRank(colour)

	// Single step, then double step from the starting rank
	one := from.Offset(0, dir)
	if one != chess.NoSquare && pos.Board[one] == chess.NoPiece {
		if one.Rank() == promoRank {
			moves = append(moves, chess.Move{From: from, To: one, Promotion: chess.Queen})
		} else {
			moves = append(moves, chess.Move{From: from, To: one})
			if from.Rank() == chess.PawnStartRank(colour) {
				two := from.Offset(0, 2*dir)
				if two != chess.NoSquare && pos.Board[two] == chess.NoPiece {
					moves = append(moves, chess.Move{From: from, To: two, PawnDouble: true})
				}
			}
		}
	}

	// Captures
	for _, dc := range pawnCaptureCols {
		to := from.Offset(dc, dir)
		if to == chess.NoSquare {
			continue
		}
		target := pos.Board[to]
		if target != chess.NoPiece && target.Colour() != colour {
			move := chess.Move{From: from, To: to, Capture: true}
			if to.Rank() == promoRank {
				move.Promotion = chess.Queen
			}
			moves = append(moves, move)
		}
	}

	// En passant: the target lies behind an enemy pawn that just double-advanced
	if ep := pos.EnPassant; ep != chess.NoSquare {
		if ep.Rank() == from.Rank()+dir && abs(ep.File()-from.File()) == 1 &&
			pos.Get(enPassantCapturedSquare(ep, colour)) == chess.MakeColouredPiece(colour.Opposite(), chess.Pawn) {
			moves = append(moves, chess.Move{From: from, To: ep, Capture: true, EnPassant: true})
		}
	}

	return moves
}

// enPassantCapturedSquare returns the square of the pawn removed by an
// en-passant capture landing on to.
func enPassantCapturedSquare(to chess.Square, colour chess.Colour) chess.Square {
	return to.Offset(0, -chess.ColourOffset(colour))
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
