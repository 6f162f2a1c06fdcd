package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ApplyMove returns the position reached by playing move in pos.
// The move must be legal in pos; a move taken from GenerateLegalMoves may
// carry a different promotion piece than the default queen.
// pos is never modified.
func ApplyMove(pos *chess.Position, move chess.Move) (*chess.Position, error) {
	legal, ok := matchLegal(pos, move)
	if !ok {
		return nil, fmt.Errorf("%s in position %s: %w", move.UCI(), PositionToFEN(pos), errors.ErrIllegalMove)
	}
	return applyMove(pos, legal), nil
}

// MustApplyMove is like ApplyMove but panics if the move is illegal.
func MustApplyMove(pos *chess.Position, move chess.Move) *chess.Position {
	next, err := ApplyMove(pos, move)
	if err != nil {
		panic(err)
	}
	return next
}

// applyMove plays a pseudo-legal move on a copy of pos without checking
// legality.
func applyMove(pos *chess.Position, move chess.Move) *chess.Position {
	next := pos.Copy()
	piece := pos.Get(move.From)
	colour := piece.Colour()
	captured := pos.Get(move.To)

	// Half-move clock
	if piece.Type() == chess.Pawn || captured != chess.NoPiece || move.EnPassant {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock++
	}

	if move.EnPassant {
		next.Set(enPassantCapturedSquare(move.To, colour), chess.NoPiece)
	}

	// Relocate, promoting a pawn that reaches the far rank
	placed := piece
	if piece.Type() == chess.Pawn && move.To.Rank() == chess.PromotionRank(colour) {
		if !move.Promotion.IsPromotionTarget() {
			move.Promotion = chess.Queen
		}
		placed = chess.MakeColouredPiece(colour, move.Promotion)
	}
	next.Set(move.From, chess.NoPiece)
	next.Set(move.To, placed)

	if move.Castle != chess.NoCastle {
		applyCastleRook(next, colour, move.Castle)
	}

	updateCastlingRights(next, piece, move.From, move.To, captured)

	next.EnPassant = chess.NoSquare
	if move.PawnDouble {
		next.EnPassant = move.From.Offset(0, chess.ColourOffset(colour))
	}

	next.SideToMove = colour.Opposite()
	if next.SideToMove == chess.White {
		next.FullmoveNumber++
	}

	move.Capture = captured != chess.NoPiece || move.EnPassant
	next.History = append(next.History, move)
	return next
}
