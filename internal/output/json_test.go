package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestSavedGame_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		pos  func(t *testing.T) *chess.Position
	}{
		{"initial", func(t *testing.T) *chess.Position { return testutil.MustPosition(t, "") }},
		{"scholars mate", func(t *testing.T) *chess.Position { return testutil.MustGame(t, testutil.ScholarsMate...) }},
		{"en passant pending", func(t *testing.T) *chess.Position { return testutil.MustGame(t, "e2e4", "a7a6", "e4e5", "d7d5") }},
		{"castled and promoted", func(t *testing.T) *chess.Position {
			start := testutil.MustPosition(t, "r3k3/6P1/8/8/8/8/8/4K2R w Kq - 0 1")
			return testutil.MustPlay(t, start, "e1g1", "e8c8", "g7g8n")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := tt.pos(t)
			tags := chess.Metadata{"White": "Alice"}

			data, err := MarshalSavedGame(pos, tags)
			testutil.AssertNoError(t, err)

			got, gotTags, err := UnmarshalSavedGame(data)
			testutil.AssertNoError(t, err)
			testutil.AssertSamePosition(t, got, pos)
			if diff := cmp.Diff(pos.History, got.History); diff != "" {
				t.Errorf("history mismatch (-want +got):\n%s", diff)
			}
			testutil.AssertEqual(t, got.StartFEN, pos.StartFEN)
			testutil.AssertEqual(t, gotTags, tags)
		})
	}
}

func TestEncodeSavedGame_Fields(t *testing.T) {
	pos := testutil.MustGame(t, testutil.ScholarsMate...)

	var buf bytes.Buffer
	testutil.AssertNoError(t, EncodeSavedGame(&buf, pos, nil, false))
	got := buf.String()

	for _, field := range []string{
		`"format":"chessrules/1"`,
		`"sideToMove":"b"`,
		`"enPassant":"-"`,
		`"halfmoveClock":0`,
		`"fullmoveNumber":4`,
		`{"from":"h5","to":"f7","capture":true}`,
		`"status":"checkmate"`,
		`"board":["wR","wN","wB","",`,
	} {
		testutil.AssertContains(t, got, field)
	}
	if strings.Contains(got, "startFEN") {
		t.Error("startFEN written for a game from the standard position")
	}
}

func TestDecodeSavedGame_RejectsTampering(t *testing.T) {
	base := func(t *testing.T) *chess.Position {
		return testutil.MustGame(t, testutil.ScholarsMate...)
	}

	tests := []struct {
		name   string
		tamper func(*SavedGame)
		edit   func([]byte) []byte
		want   error
	}{
		{"half-move clock", func(s *SavedGame) { s.HalfmoveClock = 7 }, nil, errors.ErrInvalidHistory},
		{"move number", func(s *SavedGame) { s.FullmoveNumber = 9 }, nil, errors.ErrInvalidHistory},
		{"board", func(s *SavedGame) { s.Board[chess.A1] = chess.NoPiece }, nil, errors.ErrInvalidHistory},
		{"side to move", func(s *SavedGame) { s.SideToMove = chess.White }, nil, errors.ErrInvalidHistory},
		{"castling rights", func(s *SavedGame) { s.Castling.WhiteKingSide = false }, nil, errors.ErrInvalidHistory},
		{"en passant", func(s *SavedGame) { s.EnPassant = chess.MustParseSquare("e3") }, nil, errors.ErrInvalidHistory},
		{"illegal history", func(s *SavedGame) {
			s.History[0] = chess.Move{From: chess.MustParseSquare("e2"), To: chess.MustParseSquare("e5")}
		}, nil, errors.ErrIllegalMove},
		{"dropped move", func(s *SavedGame) { s.History = s.History[:len(s.History)-1] }, nil, errors.ErrInvalidHistory},
		{"bad start FEN", func(s *SavedGame) { s.StartFEN = "not a fen" }, nil, errors.ErrInvalidFEN},
		{"negative clock", func(s *SavedGame) { s.HalfmoveClock = -1 }, nil, errors.ErrInvalidPosition},
		{"format", func(s *SavedGame) { s.Format = "other/2" }, nil, errors.ErrInvalidPosition},
		{"extra board squares", nil, func(data []byte) []byte {
			return bytes.Replace(data, []byte(`"bR"],`), []byte(`"bR","wQ","wQ"],`), 1)
		}, errors.ErrInvalidPosition},
		{"missing board square", nil, func(data []byte) []byte {
			return bytes.Replace(data, []byte(`,"bR"],`), []byte(`],`), 1)
		}, errors.ErrInvalidPosition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saved := NewSavedGame(base(t), nil)
			if tt.tamper != nil {
				tt.tamper(saved)
			}
			data, err := json.Marshal(saved)
			testutil.AssertNoError(t, err)
			if tt.edit != nil {
				edited := tt.edit(data)
				if bytes.Equal(edited, data) {
					t.Fatal("edit did not change the document")
				}
				data = edited
			}

			pos, _, err := UnmarshalSavedGame(data)
			testutil.AssertErrorIs(t, err, tt.want)
			if pos != nil {
				t.Error("a position was returned for a rejected game")
			}
		})
	}
}

func TestDecodeSavedGame_IllegalHistoryReportsPly(t *testing.T) {
	saved := NewSavedGame(testutil.MustGame(t, "e2e4", "e7e5", "g1f3"), nil)
	saved.History[2] = chess.Move{From: chess.MustParseSquare("g1"), To: chess.MustParseSquare("g3")}
	data, err := json.Marshal(saved)
	testutil.AssertNoError(t, err)

	_, _, err = UnmarshalSavedGame(data)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidHistory)

	var replayErr *errors.ReplayError
	if !errors.As(err, &replayErr) {
		t.Fatalf("error %v does not carry a ReplayError", err)
	}
	testutil.AssertEqual(t, replayErr.PlyNum, 3)
	testutil.AssertEqual(t, replayErr.MoveText, "g1g3")
}

func TestDecodeSavedGame_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"truncated", `{"format": `},
		{"not an object", `[1, 2, 3]`},
		{"unknown field", `{"format":"chessrules/1","moves":[]}`},
		{"bad piece", `{"format":"chessrules/1","board":["xQ"]}`},
		{"bad colour", `{"format":"chessrules/1","sideToMove":"white"}`},
		{"bad square", `{"format":"chessrules/1","enPassant":"z9"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, _, err := DecodeSavedGame(strings.NewReader(tt.input))
			if err == nil {
				t.Fatalf("DecodeSavedGame(%s) succeeded, want error", tt.input)
			}
			if !errors.Is(err, errors.ErrInvalidPosition) && !errors.Is(err, errors.ErrInvalidSquare) {
				t.Errorf("error %v is neither ErrInvalidPosition nor ErrInvalidSquare", err)
			}
			if pos != nil {
				t.Error("a position was returned for malformed input")
			}
		})
	}
}
