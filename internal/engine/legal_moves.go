package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// GenerateLegalMoves returns the legal moves of the piece on from.
// It returns nil for an empty square or a piece of the side not to move.
func GenerateLegalMoves(pos *chess.Position, from chess.Square) []chess.Move {
	piece := pos.Get(from)
	if piece == chess.NoPiece || piece.Colour() != pos.SideToMove {
		return nil
	}

	var legal []chess.Move
	for _, move := range GeneratePseudoLegal(pos, from) {
		if leavesKingSafe(pos, move) {
			legal = append(legal, move)
		}
	}
	return legal
}

// LegalMovesFrom is GenerateLegalMoves for callers holding untrusted input.
// It reports off-board and empty squares as errors.
func LegalMovesFrom(pos *chess.Position, from chess.Square) ([]chess.Move, error) {
	if !from.Valid() {
		return nil, fmt.Errorf("square %d: %w", from, errors.ErrInvalidSquare)
	}
	if pos.Get(from) == chess.NoPiece {
		return nil, fmt.Errorf("square %s: %w", from, errors.ErrNoPiece)
	}
	return GenerateLegalMoves(pos, from), nil
}

// AllLegalMoves returns every legal move of the side to move, ordered by
// origin square.
func AllLegalMoves(pos *chess.Position) []chess.Move {
	var moves []chess.Move
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		moves = append(moves, GenerateLegalMoves(pos, sq)...)
	}
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move,
// as if it were that colour's turn. It stops at the first legal move found.
func HasLegalMoves(pos *chess.Position, colour chess.Colour) bool {
	if pos.SideToMove != colour {
		flipped := pos.Copy()
		flipped.SideToMove = colour
		flipped.EnPassant = chess.NoSquare
		pos = flipped
	}
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := pos.Board[sq]
		if piece == chess.NoPiece || piece.Colour() != colour {
			continue
		}
		for _, move := range GeneratePseudoLegal(pos, sq) {
			if leavesKingSafe(pos, move) {
				return true
			}
		}
	}
	return false
}

// IsLegal reports whether move can be played in pos.
// The move must match a generated move on destination, castle and en-passant
// flags. A promotion piece, if given, must be a knight, bishop, rook or
// queen, and is only accepted on a move that promotes.
func IsLegal(pos *chess.Position, move chess.Move) bool {
	_, ok := matchLegal(pos, move)
	return ok
}

// matchLegal returns the generated move corresponding to move, carrying the
// caller's promotion choice.
func matchLegal(pos *chess.Position, move chess.Move) (chess.Move, bool) {
	piece := pos.Get(move.From)
	if piece == chess.NoPiece || piece.Colour() != pos.SideToMove {
		return chess.Move{}, false
	}
	if move.IsPromotion() && !move.Promotion.IsPromotionTarget() {
		return chess.Move{}, false
	}

	for _, candidate := range GeneratePseudoLegal(pos, move.From) {
		if candidate.To != move.To || candidate.Castle != move.Castle || candidate.EnPassant != move.EnPassant {
			continue
		}
		if move.IsPromotion() {
			if !candidate.IsPromotion() {
				return chess.Move{}, false
			}
			candidate = candidate.WithPromotion(move.Promotion)
		}
		if !leavesKingSafe(pos, candidate) {
			return chess.Move{}, false
		}
		return candidate, true
	}
	return chess.Move{}, false
}

// leavesKingSafe plays a pseudo-legal move and checks the mover's king.
func leavesKingSafe(pos *chess.Position, move chess.Move) bool {
	next := applyMove(pos, move)
	return !IsInCheck(next, pos.SideToMove)
}
