package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewPositionFromFEN creates a position from a FEN string.
// The clock fields may be omitted and default to "0 1". The result is
// validated: one king per side, no pawns on the back ranks, the side not to
// move not in check, castling rights backed by king and rook on their home
// squares, and an en-passant target behind a pawn that could have just
// double-advanced. Unless fen describes the standard start, the position
// records it as StartFEN.
func NewPositionFromFEN(fen string) (*chess.Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 || len(parts) > 6 {
		return nil, fmt.Errorf("%q: expected 4 to 6 fields, got %d: %w", fen, len(parts), errors.ErrInvalidFEN)
	}

	pos := chess.NewPosition()

	if err := parsePiecePositions(pos, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(pos, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(pos, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(pos, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(pos, parts[4:]); err != nil {
		return nil, err
	}
	if err := validatePosition(pos); err != nil {
		return nil, err
	}

	if normalized := PositionToFEN(pos); normalized != InitialFEN {
		pos.StartFEN = normalized
	}
	return pos, nil
}

// MustPositionFromFEN is like NewPositionFromFEN but panics on error.
func MustPositionFromFEN(fen string) *chess.Position {
	pos, err := NewPositionFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return pos
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(pos *chess.Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("piece placement has %d ranks: %w", len(ranks), errors.ErrInvalidFEN)
	}

	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			pieceType := chess.PieceTypeFromLetter(c)
			if pieceType == chess.NoPieceType {
				return fmt.Errorf("invalid piece character %q: %w", c, errors.ErrInvalidFEN)
			}
			if file >= chess.BoardSize {
				return fmt.Errorf("rank %d overflows: %w", rank+1, errors.ErrInvalidFEN)
			}
			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			pos.Set(chess.SquareFromFileRank(file, rank), chess.MakeColouredPiece(colour, pieceType))
			file++
		}
		if file != chess.BoardSize {
			return fmt.Errorf("rank %d describes %d files: %w", rank+1, file, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *chess.Position, field string) error {
	switch field {
	case "w":
		pos.SideToMove = chess.White
	case "b":
		pos.SideToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move %q: %w", field, errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(pos *chess.Position, field string) error {
	pos.Castling = chess.CastlingRights{}
	if field == "-" {
		return nil
	}
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			pos.Castling.WhiteKingSide = true
		case 'Q':
			pos.Castling.WhiteQueenSide = true
		case 'k':
			pos.Castling.BlackKingSide = true
		case 'q':
			pos.Castling.BlackQueenSide = true
		default:
			return fmt.Errorf("invalid castling field %q: %w", field, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(pos *chess.Position, field string) error {
	pos.EnPassant = chess.NoSquare
	if field == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(field)
	if err != nil {
		return fmt.Errorf("en-passant square %q: %w", field, errors.ErrInvalidFEN)
	}
	pos.EnPassant = sq
	return nil
}

// parseClocks parses the optional halfmove clock and fullmove number fields.
func parseClocks(pos *chess.Position, fields []string) error {
	pos.HalfmoveClock = 0
	pos.FullmoveNumber = 1
	if len(fields) >= 1 {
		n, err := strconv.Atoi(fields[0])
		if err != nil || n < 0 {
			return fmt.Errorf("invalid halfmove clock %q: %w", fields[0], errors.ErrInvalidFEN)
		}
		pos.HalfmoveClock = n
	}
	if len(fields) >= 2 {
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid fullmove number %q: %w", fields[1], errors.ErrInvalidFEN)
		}
		pos.FullmoveNumber = n
	}
	return nil
}

// validatePosition rejects placements no legal game can reach from the
// fields already parsed.
func validatePosition(pos *chess.Position) error {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		kings := 0
		king := chess.MakeColouredPiece(colour, chess.King)
		for _, piece := range pos.Board {
			if piece == king {
				kings++
			}
		}
		if kings != 1 {
			return fmt.Errorf("%s has %d kings: %w", colour, kings, errors.ErrInvalidFEN)
		}
	}

	for file := 0; file < chess.BoardSize; file++ {
		for _, rank := range []int{0, chess.BoardSize - 1} {
			if pos.Get(chess.SquareFromFileRank(file, rank)).Type() == chess.Pawn {
				return fmt.Errorf("pawn on back rank: %w", errors.ErrInvalidFEN)
			}
		}
	}

	if IsInCheck(pos, pos.SideToMove.Opposite()) {
		return fmt.Errorf("%s is in check but not to move: %w", pos.SideToMove.Opposite(), errors.ErrInvalidFEN)
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for side, cs := range castleTable[colour] {
			if !pos.Castling.Has(colour, side) {
				continue
			}
			if pos.Get(cs.kingFrom) != chess.MakeColouredPiece(colour, chess.King) ||
				pos.Get(cs.rookFrom) != chess.MakeColouredPiece(colour, chess.Rook) {
				return fmt.Errorf("%s %s right without king and rook at home: %w", colour, side, errors.ErrInvalidFEN)
			}
		}
	}

	if ep := pos.EnPassant; ep != chess.NoSquare {
		mover := pos.SideToMove
		// The pawn that double-advanced stands in front of the target, seen from the mover
		pawnSq := enPassantCapturedSquare(ep, mover)
		startSq := ep.Offset(0, chess.ColourOffset(mover))
		if ep.Rank() != chess.PromotionRank(mover)-2*chess.ColourOffset(mover) ||
			pos.Get(pawnSq) != chess.MakeColouredPiece(mover.Opposite(), chess.Pawn) ||
			pos.Get(ep) != chess.NoPiece || pos.Get(startSq) != chess.NoPiece {
			return fmt.Errorf("en-passant square %s: %w", ep, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// PositionToFEN converts a position to a FEN string.
func PositionToFEN(pos *chess.Position) string {
	var sb strings.Builder

	writePiecePositions(&sb, pos)
	sb.WriteByte(' ')
	sb.WriteByte(pos.SideToMove.Letter())
	sb.WriteByte(' ')
	sb.WriteString(pos.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(pos.EnPassant.String())
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", pos.HalfmoveClock, pos.FullmoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, pos *chess.Position) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := pos.Get(chess.SquareFromFileRank(file, rank))
			if piece == chess.NoPiece {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.FENLetter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}
