package chess

// Move represents a single chess move. A Move is only meaningful relative to
// the Position it was generated from.
type Move struct {
	// Source and destination squares.
	From Square `json:"from"`
	To   Square `json:"to"`

	// Capture is informational; the board is authoritative.
	Capture bool `json:"capture,omitempty"`

	// The piece promoted to (NoPieceType if not a promotion).
	Promotion PieceType `json:"promotion,omitempty"`

	// Which side the king castles to, if this is a castling move.
	Castle CastleSide `json:"castle,omitempty"`

	// Whether this is an en-passant capture.
	EnPassant bool `json:"enPassant,omitempty"`

	// Whether this is a two-square pawn advance.
	PawnDouble bool `json:"pawnDouble,omitempty"`
}

// IsCapture returns true if this move is flagged as a capture.
func (m Move) IsCapture() bool {
	return m.Capture || m.EnPassant
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoPieceType
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Castle != NoCastle
}

// WithPromotion returns a copy of m promoting to piece instead of the default.
func (m Move) WithPromotion(piece PieceType) Move {
	m.Promotion = piece
	return m
}

// UCI returns the move in long algebraic coordinate form, e.g. "e2e4" or "e7e8q".
func (m Move) UCI() string {
	buf := make([]byte, 0, 5)
	buf = append(buf, m.From.String()...)
	buf = append(buf, m.To.String()...)
	if m.IsPromotion() {
		buf = append(buf, m.Promotion.Letter()+('a'-'A'))
	}
	return string(buf)
}

// String returns the UCI form of the move.
func (m Move) String() string {
	return m.UCI()
}
