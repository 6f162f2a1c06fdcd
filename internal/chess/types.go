// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Letter returns the FEN side-to-move letter ('w' or 'b').
func (c Colour) Letter() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// PieceType represents a chess piece type without colour.
type PieceType int

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceTypes
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// IsPromotionTarget reports whether a pawn may promote to this piece type.
func (p PieceType) IsPromotionTarget() bool {
	switch p {
	case Knight, Bishop, Rook, Queen:
		return true
	default:
		return false
	}
}

// PieceTypeFromLetter converts a piece letter (either case) to a piece type.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoPieceType
	}
}

// Piece is a coloured piece occupying a square. NoPiece marks an empty square.
type Piece uint8

// NoPiece is the content of an empty square.
const NoPiece Piece = 0

// PieceShift is used for encoding coloured pieces.
const PieceShift = 1

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece PieceType) Piece {
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece PieceType) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece PieceType) Piece {
	return MakeColouredPiece(Black, piece)
}

// Colour extracts the colour from a coloured piece.
func (p Piece) Colour() Colour {
	return Colour(p & 0x01)
}

// Type extracts the piece type from a coloured piece.
func (p Piece) Type() PieceType {
	return PieceType(p >> PieceShift)
}

// IsEmpty reports whether p marks an empty square.
func (p Piece) IsEmpty() bool {
	return p == NoPiece
}

// Is reports whether p is a piece of the given colour and type.
func (p Piece) Is(colour Colour, piece PieceType) bool {
	return p == MakeColouredPiece(colour, piece)
}

// FENLetter returns the FEN letter for the piece: uppercase for White,
// lowercase for Black, '.' for an empty square.
func (p Piece) FENLetter() byte {
	if p == NoPiece {
		return '.'
	}
	letter := p.Type().Letter()
	if p.Colour() == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a short form such as "wP" or "bK", or "" for an empty square.
func (p Piece) String() string {
	if p == NoPiece {
		return ""
	}
	return string([]byte{p.Colour().Letter(), p.Type().Letter()})
}

// CastleSide tags a castling move with the rook it uses.
type CastleSide int

const (
	NoCastle CastleSide = iota
	KingSide
	QueenSide
)

// String returns the SAN form of a castling move.
func (s CastleSide) String() string {
	switch s {
	case KingSide:
		return "O-O"
	case QueenSide:
		return "O-O-O"
	default:
		return ""
	}
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// BackRank returns the home rank index of the given colour.
func BackRank(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}

// PawnStartRank returns the rank index pawns of the given colour start on.
func PawnStartRank(colour Colour) int {
	if colour == White {
		return 1
	}
	return BoardSize - 2
}

// PromotionRank returns the rank index on which pawns of the given colour promote.
func PromotionRank(colour Colour) int {
	return BackRank(colour.Opposite())
}
