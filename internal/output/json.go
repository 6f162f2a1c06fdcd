package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// SavedGameFormat identifies the saved-game document layout.
const SavedGameFormat = "chessrules/1"

// SavedGame is the JSON form of a position. The position fields are stored
// inline; Status and FEN are written for readers and ignored on load.
type SavedGame struct {
	Format string `json:"format"`
	chess.Position
	Tags   chess.Metadata `json:"tags,omitempty"`
	Status string         `json:"status,omitempty"`
	FEN    string         `json:"fen,omitempty"`
}

// NewSavedGame builds the saved form of pos.
func NewSavedGame(pos *chess.Position, tags chess.Metadata) *SavedGame {
	saved := &SavedGame{
		Format:   SavedGameFormat,
		Position: *pos.Copy(),
		Tags:     tags,
		Status:   engine.GameStatus(pos).Kind.String(),
		FEN:      engine.PositionToFEN(pos),
	}
	if saved.History == nil {
		saved.History = []chess.Move{}
	}
	return saved
}

// EncodeSavedGame writes pos as a saved-game JSON document.
func EncodeSavedGame(w io.Writer, pos *chess.Position, tags chess.Metadata, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(NewSavedGame(pos, tags))
}

// MarshalSavedGame returns the compact saved-game JSON for pos.
func MarshalSavedGame(pos *chess.Position, tags chess.Metadata) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeSavedGame(&buf, pos, tags, false); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeSavedGame reads a saved game and returns the position it describes.
// The history is replayed from the start position; a game whose history is
// illegal, or whose stored fields differ from the replayed result, is rejected
// with ErrInvalidHistory. The returned position is the replayed one.
func DecodeSavedGame(r io.Reader) (*chess.Position, chess.Metadata, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, errors.Wrap(err, "reading saved game")
	}
	if err := checkBoardLength(data); err != nil {
		return nil, nil, err
	}

	saved := SavedGame{Position: *chess.NewPosition()}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&saved); err != nil {
		if errors.Is(err, errors.ErrInvalidPosition) || errors.Is(err, errors.ErrInvalidSquare) {
			return nil, nil, fmt.Errorf("decoding saved game: %w", err)
		}
		return nil, nil, fmt.Errorf("decoding saved game: %v: %w", err, errors.ErrInvalidPosition)
	}
	if saved.Format != SavedGameFormat {
		return nil, nil, fmt.Errorf("saved game format %q: %w", saved.Format, errors.ErrInvalidPosition)
	}

	pos, err := verifySavedPosition(&saved.Position)
	if err != nil {
		return nil, nil, err
	}
	return pos, saved.Tags, nil
}

// checkBoardLength rejects a board array that is not exactly one entry per
// square. encoding/json drops surplus elements of a fixed-size array.
func checkBoardLength(data []byte) error {
	var shape struct {
		Board []json.RawMessage `json:"board"`
	}
	if err := json.Unmarshal(data, &shape); err != nil {
		// Reported by the full decode.
		return nil
	}
	if shape.Board != nil && len(shape.Board) != chess.NumSquares {
		return fmt.Errorf("board has %d squares: %w", len(shape.Board), errors.ErrInvalidPosition)
	}
	return nil
}

// UnmarshalSavedGame is DecodeSavedGame over a byte slice.
func UnmarshalSavedGame(data []byte) (*chess.Position, chess.Metadata, error) {
	return DecodeSavedGame(bytes.NewReader(data))
}

// verifySavedPosition replays stored's history and checks that the replay
// reproduces every stored field.
func verifySavedPosition(stored *chess.Position) (*chess.Position, error) {
	if stored.HalfmoveClock < 0 || stored.FullmoveNumber < 1 {
		return nil, fmt.Errorf("clocks %d/%d: %w", stored.HalfmoveClock, stored.FullmoveNumber, errors.ErrInvalidPosition)
	}

	positions, err := engine.ReplayHistory(stored)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidHistory, err)
	}
	replayed := positions[len(positions)-1]

	switch {
	case replayed.Board != stored.Board:
		return nil, fmt.Errorf("board does not match history: %w", errors.ErrInvalidHistory)
	case replayed.SideToMove != stored.SideToMove:
		return nil, fmt.Errorf("side to move does not match history: %w", errors.ErrInvalidHistory)
	case replayed.Castling != stored.Castling:
		return nil, fmt.Errorf("castling rights %s, history gives %s: %w",
			stored.Castling, replayed.Castling, errors.ErrInvalidHistory)
	case replayed.EnPassant != stored.EnPassant:
		return nil, fmt.Errorf("en-passant target %s, history gives %s: %w",
			stored.EnPassant, replayed.EnPassant, errors.ErrInvalidHistory)
	case replayed.HalfmoveClock != stored.HalfmoveClock:
		return nil, fmt.Errorf("half-move clock %d, history gives %d: %w",
			stored.HalfmoveClock, replayed.HalfmoveClock, errors.ErrInvalidHistory)
	case replayed.FullmoveNumber != stored.FullmoveNumber:
		return nil, fmt.Errorf("move number %d, history gives %d: %w",
			stored.FullmoveNumber, replayed.FullmoveNumber, errors.ErrInvalidHistory)
	}
	return replayed, nil
}
