package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Square is a board index in [0,64): file = sq % 8, rank = sq / 8.
// File 0 is the a-file and rank 0 is White's first rank.
type Square int8

// NoSquare marks an absent square, e.g. no en-passant target.
const NoSquare Square = -1

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	RankBase = '1'
	ColBase  = 'a'
)

// Squares referenced by the castling rules.
const (
	A1 Square = 0
	B1 Square = 1
	C1 Square = 2
	D1 Square = 3
	E1 Square = 4
	F1 Square = 5
	G1 Square = 6
	H1 Square = 7
	A8 Square = 56
	B8 Square = 57
	C8 Square = 58
	D8 Square = 59
	E8 Square = 60
	F8 Square = 61
	G8 Square = 62
	H8 Square = 63
)

// SquareFromFileRank converts file and rank indices to a square.
// It returns NoSquare when either coordinate is off the board.
func SquareFromFileRank(file, rank int) Square {
	if !OnBoard(file, rank) {
		return NoSquare
	}
	return Square(rank*BoardSize + file)
}

// OnBoard reports whether file and rank are both in [0,8).
func OnBoard(file, rank int) bool {
	return file >= 0 && file < BoardSize && rank >= 0 && rank < BoardSize
}

// File returns the file index of the square.
func (sq Square) File() int {
	return int(sq) % BoardSize
}

// Rank returns the rank index of the square.
func (sq Square) Rank() int {
	return int(sq) / BoardSize
}

// Valid reports whether sq is on the board.
func (sq Square) Valid() bool {
	return sq >= 0 && sq < NumSquares
}

// Offset returns the square df files and dr ranks away, or NoSquare when
// that leaves the board.
func (sq Square) Offset(df, dr int) Square {
	return SquareFromFileRank(sq.File()+df, sq.Rank()+dr)
}

// FileLetter returns the file letter 'a'-'h'.
func (sq Square) FileLetter() byte {
	return byte(ColBase + sq.File())
}

// String returns the algebraic name of the square, e.g. "e4", or "-" for NoSquare.
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{sq.FileLetter(), byte(RankBase + sq.Rank())})
}

// MarshalText encodes the square in algebraic form.
func (sq Square) MarshalText() ([]byte, error) {
	return []byte(sq.String()), nil
}

// UnmarshalText decodes an algebraic square or "-".
func (sq *Square) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "-" || s == "" {
		*sq = NoSquare
		return nil
	}
	parsed, err := ParseSquare(s)
	if err != nil {
		return err
	}
	*sq = parsed
	return nil
}

// ParseSquare converts an algebraic square name such as "e4" to a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	file := int(s[0]) - ColBase
	rank := int(s[1]) - RankBase
	if !OnBoard(file, rank) {
		return NoSquare, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	return SquareFromFileRank(file, rank), nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// It is intended for literals in tests and tables.
func MustParseSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}
