package chess

import "strings"

// CastlingRights records which castling options remain available.
// Rights only ever go from true to false during a game.
type CastlingRights struct {
	WhiteKingSide  bool `json:"whiteKingSide"`
	WhiteQueenSide bool `json:"whiteQueenSide"`
	BlackKingSide  bool `json:"blackKingSide"`
	BlackQueenSide bool `json:"blackQueenSide"`
}

// AllCastlingRights is the set of rights at the start of a standard game.
var AllCastlingRights = CastlingRights{true, true, true, true}

// Has reports whether colour may still castle on the given side.
func (c CastlingRights) Has(colour Colour, side CastleSide) bool {
	switch {
	case colour == White && side == KingSide:
		return c.WhiteKingSide
	case colour == White && side == QueenSide:
		return c.WhiteQueenSide
	case colour == Black && side == KingSide:
		return c.BlackKingSide
	case colour == Black && side == QueenSide:
		return c.BlackQueenSide
	}
	return false
}

// Revoke clears the right for colour on the given side.
func (c *CastlingRights) Revoke(colour Colour, side CastleSide) {
	switch {
	case colour == White && side == KingSide:
		c.WhiteKingSide = false
	case colour == White && side == QueenSide:
		c.WhiteQueenSide = false
	case colour == Black && side == KingSide:
		c.BlackKingSide = false
	case colour == Black && side == QueenSide:
		c.BlackQueenSide = false
	}
}

// RevokeAll clears both rights for colour.
func (c *CastlingRights) RevokeAll(colour Colour) {
	c.Revoke(colour, KingSide)
	c.Revoke(colour, QueenSide)
}

// String returns the FEN castling field, e.g. "KQkq" or "-".
func (c CastlingRights) String() string {
	var sb strings.Builder
	if c.WhiteKingSide {
		sb.WriteByte('K')
	}
	if c.WhiteQueenSide {
		sb.WriteByte('Q')
	}
	if c.BlackKingSide {
		sb.WriteByte('k')
	}
	if c.BlackQueenSide {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// Position is a complete snapshot of a game at one point.
// A Position returned by the engine is never modified afterwards; every
// transition produces a new one.
type Position struct {
	// The board squares, indexed by Square.
	Board [NumSquares]Piece `json:"board"`

	// Who has the next move.
	SideToMove Colour `json:"sideToMove"`

	Castling CastlingRights `json:"castling"`

	// Square a pawn may capture onto en passant, or NoSquare.
	EnPassant Square `json:"enPassant"`

	// Plies since the last pawn move or capture.
	HalfmoveClock int `json:"halfmoveClock"`

	// The current move number, starting at 1 and incremented after Black moves.
	FullmoveNumber int `json:"fullmoveNumber"`

	// Moves applied since the start position, oldest first.
	History []Move `json:"history"`

	// FEN of the start position when the game did not begin from the
	// standard setup. Empty means the standard initial position.
	StartFEN string `json:"startFEN,omitempty"`
}

// NewPosition creates an empty board with White to move and no castling rights.
func NewPosition() *Position {
	return &Position{
		SideToMove:     White,
		EnPassant:      NoSquare,
		FullmoveNumber: 1,
	}
}

// SetupInitialPosition sets up the standard chess starting position.
func (p *Position) SetupInitialPosition() {
	p.Board = [NumSquares]Piece{}

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		p.Set(SquareFromFileRank(file, 0), W(backRank[file]))
		p.Set(SquareFromFileRank(file, 1), W(Pawn))
		p.Set(SquareFromFileRank(file, 6), B(Pawn))
		p.Set(SquareFromFileRank(file, 7), B(backRank[file]))
	}

	p.SideToMove = White
	p.Castling = AllCastlingRights
	p.EnPassant = NoSquare
	p.HalfmoveClock = 0
	p.FullmoveNumber = 1
	p.History = nil
	p.StartFEN = ""
}

// Get returns the piece on sq, or NoPiece for an empty or off-board square.
func (p *Position) Get(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return p.Board[sq]
}

// Set places a piece on sq. Off-board squares are ignored.
func (p *Position) Set(sq Square, piece Piece) {
	if sq.Valid() {
		p.Board[sq] = piece
	}
}

// Copy creates a deep copy of the position. The history of the copy does not
// share storage with the original.
func (p *Position) Copy() *Position {
	np := &Position{}
	*np = *p
	if p.History != nil {
		np.History = make([]Move, len(p.History), len(p.History)+1)
		copy(np.History, p.History)
	}
	return np
}

// KingSquare returns the square of colour's king, or NoSquare if absent.
func (p *Position) KingSquare(colour Colour) Square {
	king := MakeColouredPiece(colour, King)
	for sq := Square(0); sq < NumSquares; sq++ {
		if p.Board[sq] == king {
			return sq
		}
	}
	return NoSquare
}

// PlyCount returns the number of half-moves played since the start position.
func (p *Position) PlyCount() int {
	return len(p.History)
}

// LastMove returns the most recent move and true, or false if none was played.
func (p *Position) LastMove() (Move, bool) {
	if len(p.History) == 0 {
		return Move{}, false
	}
	return p.History[len(p.History)-1], true
}
