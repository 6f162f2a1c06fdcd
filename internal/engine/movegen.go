package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// GeneratePseudoLegal returns the moves of the piece on from that obey the
// movement rules and occupancy but may leave the mover's own king in check.
// An empty square yields no moves.
func GeneratePseudoLegal(pos *chess.Position, from chess.Square) []chess.Move {
	piece := pos.Get(from)
	if piece == chess.NoPiece {
		return nil
	}
	colour := piece.Colour()

	var moves []chess.Move
	switch piece.Type() {
	case chess.Pawn:
		moves = pawnMoves(pos, from, colour)
	case chess.Knight:
		moves = stepMoves(pos, from, colour, knightOffsets[:])
	case chess.Bishop:
		moves = slidingMoves(pos, from, colour, diagonalDirs[:])
	case chess.Rook:
		moves = slidingMoves(pos, from, colour, straightDirs[:])
	case chess.Queen:
		moves = slidingMoves(pos, from, colour, diagonalDirs[:])
		moves = append(moves, slidingMoves(pos, from, colour, straightDirs[:])...)
	case chess.King:
		moves = stepMoves(pos, from, colour, kingOffsets[:])
		moves = append(moves, castlingMoves(pos, from, colour)...)
	}
	return moves
}
