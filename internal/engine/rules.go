// Package engine implements the chess rules: move generation, legality,
// move application, game status and notation.
package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// FiftyMovePlies is the half-move clock value at which the game is drawn.
const FiftyMovePlies = 100

// RepetitionLimit is the number of occurrences of a position that draws the game.
const RepetitionLimit = 3

// NewInitialPosition returns the standard starting position.
func NewInitialPosition() *chess.Position {
	pos := chess.NewPosition()
	pos.SetupInitialPosition()
	return pos
}

// StartPosition returns the position pos's history was played from: the
// position described by StartFEN, or the standard start.
func StartPosition(pos *chess.Position) (*chess.Position, error) {
	if pos.StartFEN == "" {
		return NewInitialPosition(), nil
	}
	return NewPositionFromFEN(pos.StartFEN)
}

// ReplayHistory replays pos's history from its start position and returns
// every position reached, the start included. The last element has the same
// board, rights, en-passant target and clocks as pos.
func ReplayHistory(pos *chess.Position) ([]*chess.Position, error) {
	current, err := StartPosition(pos)
	if err != nil {
		return nil, &errors.ReplayError{Err: err}
	}

	positions := make([]*chess.Position, 0, len(pos.History)+1)
	positions = append(positions, current)
	for i, move := range pos.History {
		next, err := ApplyMove(current, move)
		if err != nil {
			return positions, &errors.ReplayError{Err: err, PlyNum: i + 1, MoveText: move.UCI()}
		}
		positions = append(positions, next)
		current = next
	}
	return positions, nil
}

// Undo takes back the last plies moves of pos by replaying the shortened
// history from the start position. Asking for more plies than were played
// returns the start position.
func Undo(pos *chess.Position, plies int) (*chess.Position, error) {
	if plies < 0 {
		return nil, errors.Wrapf(errors.ErrInvalidHistory, "undo %d plies", plies)
	}
	if plies == 0 {
		return pos, nil
	}
	keep := len(pos.History) - plies
	if keep < 0 {
		keep = 0
	}

	shortened := pos.Copy()
	shortened.History = shortened.History[:keep]
	positions, err := ReplayHistory(shortened)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidHistory, err)
	}
	return positions[len(positions)-1], nil
}

// IsFiftyMoveDraw returns true once 100 plies have passed without a pawn
// move or capture.
func IsFiftyMoveDraw(pos *chess.Position) bool {
	return pos.HalfmoveClock >= FiftyMovePlies
}

// RepetitionCount returns how often pos's key occurs in the replayed history,
// the start position and pos itself included. A history that cannot be
// replayed counts only the positions reached before the failure.
func RepetitionCount(pos *chess.Position) int {
	positions, _ := ReplayHistory(pos)
	counter := hashing.NewRepetitionCounter()
	for _, p := range positions {
		counter.Add(p)
	}
	count := counter.Count(pos)
	if count == 0 {
		count = 1
	}
	return count
}

// IsThreefoldRepetition returns true if pos has occurred at least three times.
func IsThreefoldRepetition(pos *chess.Position) bool {
	return RepetitionCount(pos) >= RepetitionLimit
}

// HasInsufficientMaterial returns true if neither side has mating material:
// K vs K, K+B vs K, K+N vs K, or K+B vs K+B with bishops on same-coloured squares.
// It is informational; GameStatus does not declare these positions drawn.
func HasInsufficientMaterial(pos *chess.Position) bool {
	var whitePieces, blackPieces []chess.PieceType
	var whiteBishopOnLight, blackBishopOnLight bool

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := pos.Board[sq]
		if piece == chess.NoPiece {
			continue
		}
		pieceType := piece.Type()
		switch pieceType {
		case chess.King:
			continue
		case chess.Pawn, chess.Rook, chess.Queen:
			return false
		}

		if piece.Colour() == chess.White {
			whitePieces = append(whitePieces, pieceType)
			if pieceType == chess.Bishop {
				whiteBishopOnLight = isLightSquare(sq)
			}
		} else {
			blackPieces = append(blackPieces, pieceType)
			if pieceType == chess.Bishop {
				blackBishopOnLight = isLightSquare(sq)
			}
		}
	}

	switch {
	case len(whitePieces) == 0 && len(blackPieces) == 0:
		return true
	case len(whitePieces) == 0 && len(blackPieces) == 1:
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	case len(blackPieces) == 0 && len(whitePieces) == 1:
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	case len(whitePieces) == 1 && len(blackPieces) == 1:
		return whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop &&
			whiteBishopOnLight == blackBishopOnLight
	}
	return false
}

// isLightSquare returns true if the given square is a light square.
func isLightSquare(sq chess.Square) bool {
	return (sq.File()+sq.Rank())%2 == 1
}
