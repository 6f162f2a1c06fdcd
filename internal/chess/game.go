package chess

// StatusKind classifies the state of a game.
type StatusKind int

const (
	Ongoing StatusKind = iota
	Checkmate
	Stalemate
	DrawFifty
	DrawThreefold
)

// String returns the status identifier used in saved games and logs.
func (k StatusKind) String() string {
	switch k {
	case Ongoing:
		return "ongoing"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case DrawFifty:
		return "draw_fifty"
	case DrawThreefold:
		return "draw_threefold"
	default:
		return "unknown"
	}
}

// Status is the verdict of the game status classifier.
type Status struct {
	Kind StatusKind

	// Check is set when the side to move is in check (Ongoing or Checkmate).
	Check bool

	// Winner is meaningful only for Checkmate.
	Winner Colour
}

// IsTerminal reports whether the game is over.
func (s Status) IsTerminal() bool {
	return s.Kind != Ongoing
}

// IsDraw reports whether the game ended drawn.
func (s Status) IsDraw() bool {
	switch s.Kind {
	case Stalemate, DrawFifty, DrawThreefold:
		return true
	default:
		return false
	}
}

// Result returns the PGN result token for the status.
func (s Status) Result() string {
	switch {
	case s.Kind == Checkmate && s.Winner == White:
		return "1-0"
	case s.Kind == Checkmate:
		return "0-1"
	case s.IsDraw():
		return "1/2-1/2"
	default:
		return "*"
	}
}

// String returns a human-readable description of the status.
func (s Status) String() string {
	switch s.Kind {
	case Checkmate:
		return "checkmate, " + s.Winner.String() + " wins"
	case Ongoing:
		if s.Check {
			return "ongoing (check)"
		}
		return "ongoing"
	default:
		return s.Kind.String()
	}
}
