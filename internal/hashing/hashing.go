// Package hashing provides position keys and repetition counting.
package hashing

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// PositionKey returns the canonical key of a position for repetition
// detection: piece placement, side to move, castling rights and en-passant
// square. The half-move clock and full-move number are not part of the key.
func PositionKey(pos *chess.Position) string {
	var sb strings.Builder
	sb.Grow(chess.NumSquares + 12)

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		sb.WriteByte(pos.Board[sq].FENLetter())
	}
	sb.WriteByte(' ')
	sb.WriteByte(pos.SideToMove.Letter())
	sb.WriteByte(' ')
	sb.WriteString(pos.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(pos.EnPassant.String())

	return sb.String()
}

// RepetitionCounter tracks how many times each position key has been seen.
type RepetitionCounter struct {
	counts map[string]int
	// maxCount is the highest count reached by any key
	maxCount int
}

// NewRepetitionCounter creates an empty counter.
func NewRepetitionCounter() *RepetitionCounter {
	return &RepetitionCounter{
		counts: make(map[string]int),
	}
}

// Add records one occurrence of pos and returns how often its key has now been seen.
func (r *RepetitionCounter) Add(pos *chess.Position) int {
	key := PositionKey(pos)
	r.counts[key]++
	n := r.counts[key]
	if n > r.maxCount {
		r.maxCount = n
	}
	return n
}

// Count returns how often the key of pos has been recorded.
func (r *RepetitionCounter) Count(pos *chess.Position) int {
	return r.counts[PositionKey(pos)]
}

// MaxCount returns the highest occurrence count of any recorded position.
func (r *RepetitionCounter) MaxCount() int {
	return r.maxCount
}

// UniqueCount returns the number of distinct positions recorded.
func (r *RepetitionCounter) UniqueCount() int {
	return len(r.counts)
}
