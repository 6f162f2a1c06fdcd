package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Text encodings used when a Position is persisted as JSON.

// MarshalText encodes the colour as "w" or "b".
func (c Colour) MarshalText() ([]byte, error) {
	return []byte{c.Letter()}, nil
}

// UnmarshalText decodes "w" or "b".
func (c *Colour) UnmarshalText(text []byte) error {
	switch string(text) {
	case "w":
		*c = White
	case "b":
		*c = Black
	default:
		return fmt.Errorf("colour %q: %w", text, errors.ErrInvalidPosition)
	}
	return nil
}

// MarshalText encodes the piece type as its letter, or "" for NoPieceType.
func (p PieceType) MarshalText() ([]byte, error) {
	if p == NoPieceType {
		return []byte{}, nil
	}
	return []byte{p.Letter()}, nil
}

// UnmarshalText decodes a piece letter.
func (p *PieceType) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*p = NoPieceType
		return nil
	}
	pt := PieceTypeFromLetter(text[0])
	if len(text) != 1 || pt == NoPieceType {
		return fmt.Errorf("piece type %q: %w", text, errors.ErrInvalidPosition)
	}
	*p = pt
	return nil
}

// MarshalText encodes the piece as "wP", "bK", ... or "" for an empty square.
func (p Piece) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes the form produced by MarshalText.
func (p *Piece) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*p = NoPiece
		return nil
	}
	if len(text) != 2 {
		return fmt.Errorf("piece %q: %w", text, errors.ErrInvalidPosition)
	}
	var colour Colour
	if err := colour.UnmarshalText(text[:1]); err != nil {
		return err
	}
	pt := PieceTypeFromLetter(text[1])
	if pt == NoPieceType || text[1] < 'A' || text[1] > 'Z' {
		return fmt.Errorf("piece %q: %w", text, errors.ErrInvalidPosition)
	}
	*p = MakeColouredPiece(colour, pt)
	return nil
}

// MarshalText encodes the castle side as "K", "Q" or "".
func (s CastleSide) MarshalText() ([]byte, error) {
	switch s {
	case KingSide:
		return []byte("K"), nil
	case QueenSide:
		return []byte("Q"), nil
	default:
		return []byte{}, nil
	}
}

// UnmarshalText decodes "K", "Q" or "".
func (s *CastleSide) UnmarshalText(text []byte) error {
	switch string(text) {
	case "":
		*s = NoCastle
	case "K":
		*s = KingSide
	case "Q":
		*s = QueenSide
	default:
		return fmt.Errorf("castle side %q: %w", text, errors.ErrInvalidPosition)
	}
	return nil
}
