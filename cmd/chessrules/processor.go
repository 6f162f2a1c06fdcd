// processor.go - Building the game and writing reports
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/diagram"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// Exit codes.
const (
	exitOK      = 0
	exitInvalid = 1 // Bad input: illegal move, malformed FEN or saved game
	exitUsage   = 2
)

// run executes the configured action and returns the process exit code.
func run(cfg *config.Config, log zerolog.Logger) int {
	if cfg.Source() == config.BatchValidate {
		return runValidate(cfg, log)
	}

	pos, tags, err := buildPosition(cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("cannot build position")
		return exitInvalid
	}

	if err := writeReport(cfg.OutputFile, pos, cfg); err != nil {
		log.Error().Err(err).Msg("report")
		return exitInvalid
	}
	if err := writeRecords(pos, tags, cfg, log); err != nil {
		log.Error().Err(err).Msg("write output")
		return exitInvalid
	}
	return exitOK
}

// buildPosition loads the start position selected by cfg and plays cfg.Moves on it.
func buildPosition(cfg *config.Config, log zerolog.Logger) (*chess.Position, chess.Metadata, error) {
	tags := chess.Metadata{}
	var pos *chess.Position

	switch cfg.Source() {
	case config.FromFEN:
		p, err := engine.NewPositionFromFEN(cfg.StartFEN)
		if err != nil {
			return nil, nil, err
		}
		pos = p
	case config.FromSavedGame:
		p, saved, err := loadSavedGame(cfg.LoadFile)
		if err != nil {
			return nil, nil, err
		}
		pos = p
		for name, value := range saved {
			tags[name] = value
		}
		log.Info().Str("file", cfg.LoadFile).Int("plies", p.PlyCount()).Msg("loaded saved game")
	default:
		pos = engine.NewInitialPosition()
	}

	repetitions := hashing.NewRepetitionCounter()
	repetitions.Add(pos)
	for i, text := range cfg.Moves {
		move, err := engine.ParseUCIMove(pos, text)
		if err != nil {
			return nil, nil, &errors.ReplayError{Err: err, PlyNum: pos.PlyCount() + 1, MoveText: text}
		}
		san := engine.MoveToAlgebraic(pos, move)
		pos = engine.MustApplyMove(pos, move)
		log.Debug().Int("ply", pos.PlyCount()).Str("move", text).Str("san", san).
			Int("seen", repetitions.Add(pos)).Str("fen", engine.PositionToFEN(pos)).Msgf("move %d", i+1)
	}
	log.Debug().Int("plies", len(cfg.Moves)).Int("positions", repetitions.UniqueCount()).
		Int("max_repeats", repetitions.MaxCount()).Msg("moves played")

	if cfg.Undo > 0 {
		undone, err := engine.Undo(pos, cfg.Undo)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Int("plies", pos.PlyCount()-undone.PlyCount()).Msg("took back moves")
		pos = undone
	}

	for name, value := range cfg.Output.Tags {
		tags[name] = value
	}
	return pos, tags, nil
}

// loadSavedGame reads and validates a saved game file.
func loadSavedGame(path string) (*chess.Position, chess.Metadata, error) {
	file, err := os.Open(path) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, nil, errors.Wrap(err, "opening saved game")
	}
	defer file.Close()

	pos, tags, err := output.DecodeSavedGame(file)
	if err != nil {
		var replayErr *errors.ReplayError
		if errors.As(err, &replayErr) {
			replayErr.Source = path
		}
		return nil, nil, errors.Wrap(err, "loading saved game")
	}
	return pos, tags, nil
}

// writeReport prints the status, FEN, move list and requested legal moves.
func writeReport(w io.Writer, pos *chess.Position, cfg *config.Config) error {
	status := engine.GameStatus(pos)
	fmt.Fprintf(w, "Status: %s\n", status)
	if !status.IsTerminal() && engine.HasInsufficientMaterial(pos) {
		fmt.Fprintln(w, "Note: insufficient mating material")
	}
	if cfg.Output.ShowFEN {
		fmt.Fprintf(w, "FEN: %s\n", engine.PositionToFEN(pos))
	}
	if cfg.Output.ShowMoves && len(pos.History) > 0 {
		sans, err := engine.HistoryToAlgebraic(pos)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Moves: %s\n", strings.Join(sans, " "))
	}
	if cfg.LegalFrom != "" {
		return writeLegalMoves(w, pos, cfg.LegalFrom)
	}
	return nil
}

// writeLegalMoves lists the legal moves from the named square in sorted order.
func writeLegalMoves(w io.Writer, pos *chess.Position, square string) error {
	from, err := chess.ParseSquare(square)
	if err != nil {
		return err
	}
	moves, err := engine.LegalMovesFrom(pos, from)
	if err != nil {
		return err
	}

	texts := make([]string, len(moves))
	for i, move := range moves {
		texts[i] = move.UCI()
	}
	slices.Sort(texts)
	fmt.Fprintf(w, "Legal from %s: %s\n", from, strings.Join(texts, " "))
	return nil
}

// writeRecords writes the PGN, saved-game and diagram files that cfg asks for.
func writeRecords(pos *chess.Position, tags chess.Metadata, cfg *config.Config, log zerolog.Logger) error {
	if result := tags["Result"]; result == "" || result == "*" {
		tags["Result"] = engine.GameStatus(pos).Result()
	}

	records := []struct {
		format, path, done string
	}{
		{output.FormatPGN, cfg.Output.PGNFile, "wrote PGN"},
		{output.FormatJSON, cfg.Output.SaveFile, "saved game"},
	}
	for _, rec := range records {
		if rec.path == "" {
			continue
		}
		err := withOutput(rec.path, cfg.OutputFile, func(w io.Writer) error {
			writer, err := output.NewGameWriter(rec.format, w, cfg)
			if err != nil {
				return err
			}
			if err := writer.WriteGame(pos, tags); err != nil {
				return err
			}
			return writer.Close()
		})
		if err != nil {
			return err
		}
		log.Info().Str("file", rec.path).Msg(rec.done)
	}

	if path := cfg.Diagram.File; path != "" {
		opts := diagram.OptionsFromConfig(cfg.Diagram)
		err := withOutput(path, cfg.OutputFile, func(w io.Writer) error {
			return diagram.WriteSVG(w, pos, opts)
		})
		if err != nil {
			return err
		}
		log.Info().Str("file", path).Msg("wrote diagram")
	}
	return nil
}

// withOutput runs fn on the file at path, or on stdout when path is "-".
func withOutput(path string, stdout io.Writer, fn func(io.Writer) error) error {
	if path == "-" {
		return fn(stdout)
	}
	file, err := os.Create(path) //nolint:gosec // G304: CLI tool writes user-specified files
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	if err := fn(file); err != nil {
		_ = file.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	return errors.Wrapf(file.Close(), "closing %s", path)
}

// runValidate checks every saved game in cfg.Batch.Files on a worker pool.
func runValidate(cfg *config.Config, log zerolog.Logger) int {
	numWorkers := cfg.Batch.Workers
	if numWorkers == 0 {
		numWorkers = runtime.NumCPU()
	}
	log.Info().Int("files", len(cfg.Batch.Files)).Int("workers", numWorkers).Msg("validating saved games")

	results := worker.ValidateAll(worker.FileItems(cfg.Batch.Files), numWorkers, cfg.Batch.StopOnError)

	invalid := 0
	for _, result := range results {
		if !result.OK() {
			invalid++
			fmt.Fprintf(cfg.OutputFile, "%s: invalid: %v\n", result.Item.Name(), result.Error)
			log.Debug().Str("file", result.Item.Name()).Err(result.Error).Msg("rejected")
			continue
		}
		fmt.Fprintf(cfg.OutputFile, "%s: ok, %d plies, %s\n",
			result.Item.Name(), result.Position.PlyCount(), result.Status)
	}

	log.Info().Int("valid", len(results)-invalid).Int("invalid", invalid).
		Int("skipped", len(cfg.Batch.Files)-len(results)).Msg("validation finished")
	if invalid > 0 || len(results) < len(cfg.Batch.Files) {
		return exitInvalid
	}
	return exitOK
}
