package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MoveToAlgebraic renders move, played from pos, in short algebraic notation.
// Castling is "O-O" or "O-O-O". Other moves are the piece letter (none for
// pawns; pawn captures give the origin file instead), "x" when capturing,
// the destination, "=X" when promoting and "+" or "#" when the move gives
// check or mate.
//
// Moves of two identical pieces to the same square are not disambiguated.
func MoveToAlgebraic(pos *chess.Position, move chess.Move) string {
	piece := pos.Get(move.From)
	if piece == chess.NoPiece {
		return ""
	}

	var sb strings.Builder
	switch move.Castle {
	case chess.KingSide, chess.QueenSide:
		sb.WriteString(move.Castle.String())
	default:
		capture := pos.Get(move.To) != chess.NoPiece || move.EnPassant
		if piece.Type() == chess.Pawn {
			if capture {
				sb.WriteByte(move.From.FileLetter())
			}
		} else {
			sb.WriteByte(piece.Type().Letter())
		}
		if capture {
			sb.WriteByte('x')
		}
		sb.WriteString(move.To.String())
		if piece.Type() == chess.Pawn && move.To.Rank() == chess.PromotionRank(piece.Colour()) {
			promotion := move.Promotion
			if !promotion.IsPromotionTarget() {
				promotion = chess.Queen
			}
			sb.WriteByte('=')
			sb.WriteByte(promotion.Letter())
		}
	}

	after := applyMove(pos, move)
	if IsInCheck(after, after.SideToMove) {
		if HasLegalMoves(after, after.SideToMove) {
			sb.WriteByte('+')
		} else {
			sb.WriteByte('#')
		}
	}
	return sb.String()
}

// HistoryToAlgebraic replays pos's history and returns each ply in short
// algebraic notation.
func HistoryToAlgebraic(pos *chess.Position) ([]string, error) {
	positions, err := ReplayHistory(pos)
	if err != nil {
		return nil, err
	}
	sans := make([]string, len(pos.History))
	for i := range pos.History {
		sans[i] = MoveToAlgebraic(positions[i], positions[i+1].History[i])
	}
	return sans, nil
}

// ParseUCIMove maps coordinate notation such as "e2e4" or "e7e8n" onto the
// matching legal move of pos. A promotion letter may be omitted, giving a
// queen.
func ParseUCIMove(pos *chess.Position, s string) (chess.Move, error) {
	s = strings.TrimSpace(s)
	if len(s) != 4 && len(s) != 5 {
		return chess.Move{}, fmt.Errorf("move %q: %w", s, errors.ErrIllegalMove)
	}
	from, err := chess.ParseSquare(s[0:2])
	if err != nil {
		return chess.Move{}, fmt.Errorf("move %q: %w", s, err)
	}
	to, err := chess.ParseSquare(s[2:4])
	if err != nil {
		return chess.Move{}, fmt.Errorf("move %q: %w", s, err)
	}
	promotion := chess.NoPieceType
	if len(s) == 5 {
		promotion = chess.PieceTypeFromLetter(s[4])
		if !promotion.IsPromotionTarget() {
			return chess.Move{}, fmt.Errorf("move %q: bad promotion piece: %w", s, errors.ErrIllegalMove)
		}
	}

	for _, move := range GenerateLegalMoves(pos, from) {
		if move.To != to {
			continue
		}
		if promotion != chess.NoPieceType {
			if !move.IsPromotion() {
				break
			}
			move = move.WithPromotion(promotion)
		}
		return move, nil
	}
	return chess.Move{}, fmt.Errorf("move %q in position %s: %w", s, PositionToFEN(pos), errors.ErrIllegalMove)
}

// PlayUCIMoves applies a sequence of coordinate moves starting from pos.
// A failure is reported as a ReplayError naming the ply.
func PlayUCIMoves(pos *chess.Position, moves []string) (*chess.Position, error) {
	for _, text := range moves {
		move, err := ParseUCIMove(pos, text)
		if err != nil {
			return pos, &errors.ReplayError{Err: err, PlyNum: pos.PlyCount() + 1, MoveText: text}
		}
		pos = applyMove(pos, move)
	}
	return pos, nil
}
