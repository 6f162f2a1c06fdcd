package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// castleSquares describes one castling option.
type castleSquares struct {
	kingFrom, kingTo chess.Square
	rookFrom, rookTo chess.Square
	// squares that must be empty between king and rook
	between []chess.Square
	// squares the king crosses or lands on, which must not be attacked
	transit []chess.Square
}

var castleTable = map[chess.Colour]map[chess.CastleSide]castleSquares{
	chess.White: {
		chess.KingSide: {
			kingFrom: chess.E1, kingTo: chess.G1, rookFrom: chess.H1, rookTo: chess.F1,
			between: []chess.Square{chess.F1, chess.G1},
			transit: []chess.Square{chess.F1, chess.G1},
		},
		chess.QueenSide: {
			kingFrom: chess.E1, kingTo: chess.C1, rookFrom: chess.A1, rookTo: chess.D1,
			between: []chess.Square{chess.B1, chess.C1, chess.D1},
			transit: []chess.Square{chess.D1, chess.C1},
		},
	},
	chess.Black: {
		chess.KingSide: {
			kingFrom: chess.E8, kingTo: chess.G8, rookFrom: chess.H8, rookTo: chess.F8,
			between: []chess.Square{chess.F8, chess.G8},
			transit: []chess.Square{chess.F8, chess.G8},
		},
		chess.QueenSide: {
			kingFrom: chess.E8, kingTo: chess.C8, rookFrom: chess.A8, rookTo: chess.D8,
			between: []chess.Square{chess.B8, chess.C8, chess.D8},
			transit: []chess.Square{chess.D8, chess.C8},
		},
	},
}

// castlingMoves generates the castling moves available to the king on from.
func castlingMoves(pos *chess.Position, from chess.Square, colour chess.Colour) []chess.Move {
	sides := castleTable[colour]
	if from != sides[chess.KingSide].kingFrom {
		return nil
	}
	enemy := colour.Opposite()
	if IsSquareAttacked(pos, from, enemy) {
		return nil
	}

	var moves []chess.Move
	for _, side := range []chess.CastleSide{chess.KingSide, chess.QueenSide} {
		if canCastle(pos, colour, side) {
			moves = append(moves, chess.Move{From: from, To: sides[side].kingTo, Castle: side})
		}
	}
	return moves
}

// canCastle checks rights, the rook, empty squares and unattacked transit for one side.
// The king's own square is checked by the caller.
func canCastle(pos *chess.Position, colour chess.Colour, side chess.CastleSide) bool {
	if !pos.Castling.Has(colour, side) {
		return false
	}
	sq := castleTable[colour][side]
	if pos.Get(sq.rookFrom) != chess.MakeColouredPiece(colour, chess.Rook) {
		return false
	}
	for _, s := range sq.between {
		if pos.Get(s) != chess.NoPiece {
			return false
		}
	}
	enemy := colour.Opposite()
	for _, s := range sq.transit {
		if IsSquareAttacked(pos, s, enemy) {
			return false
		}
	}
	return true
}

// applyCastleRook relocates the rook of a castling move.
func applyCastleRook(pos *chess.Position, colour chess.Colour, side chess.CastleSide) {
	sq := castleTable[colour][side]
	rook := pos.Get(sq.rookFrom)
	pos.Set(sq.rookFrom, chess.NoPiece)
	pos.Set(sq.rookTo, rook)
}

// updateCastlingRights revokes rights after moving piece from from to to.
// captured is the pre-move occupant of to.
func updateCastlingRights(pos *chess.Position, piece chess.Piece, from, to chess.Square, captured chess.Piece) {
	colour := piece.Colour()
	if piece.Type() == chess.King {
		pos.Castling.RevokeAll(colour)
	}
	if piece.Type() == chess.Rook {
		updateCastlingRightsForRook(pos, colour, from)
	}
	if captured != chess.NoPiece && captured.Type() == chess.Rook {
		updateCastlingRightsForRook(pos, captured.Colour(), to)
	}
}

// updateCastlingRightsForRook removes the right tied to a rook origin square
// when a rook of colour leaves it or is captured on it.
func updateCastlingRightsForRook(pos *chess.Position, colour chess.Colour, sq chess.Square) {
	for side, cs := range castleTable[colour] {
		if cs.rookFrom == sq {
			pos.Castling.Revoke(colour, side)
		}
	}
}
