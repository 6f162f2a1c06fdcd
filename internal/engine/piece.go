package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// stepMoves generates knight or king moves from a fixed offset table.
func stepMoves(pos *chess.Position, from chess.Square, colour chess.Colour, offsets [][2]int) []chess.Move {
	moves := make([]chess.Move, 0, len(offsets))
	for _, d := range offsets {
		to := from.Offset(d[0], d[1])
		if to == chess.NoSquare {
			continue
		}
		target := pos.Board[to]
		if target != chess.NoPiece && target.Colour() == colour {
			continue
		}
		moves = append(moves, chess.Move{From: from, To: to, Capture: target != chess.NoPiece})
	}
	return moves
}

// slidingMoves generates bishop, rook or queen moves along the given rays.
// A ray stops at the first occupied square, which is included only when it
// holds an enemy piece.
func slidingMoves(pos *chess.Position, from chess.Square, colour chess.Colour, dirs [][2]int) []chess.Move {
	var moves []chess.Move
	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for to != chess.NoSquare {
			target := pos.Board[to]
			if target != chess.NoPiece {
				if target.Colour() != colour {
					moves = append(moves, chess.Move{From: from, To: to, Capture: true})
				}
				break // Blocked
			}
			moves = append(moves, chess.Move{From: from, To: to})
			to = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}
