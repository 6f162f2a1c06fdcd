// chessrules plays, checks and records chess games under the standard rules.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessrules-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(exitOK)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(exitOK)
	}

	cfg := config.NewConfig()
	applyFlags(cfg, flag.Args())

	if *validateMode && len(flag.Args()) == 0 {
		fmt.Fprintln(os.Stderr, "-validate needs at least one saved game file")
		os.Exit(exitUsage)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitUsage)
	}

	setupLogFile(cfg)
	setupOutputFile(cfg)

	os.Exit(run(cfg, newLogger(cfg.LogFile, cfg.Verbosity)))
}

// newLogger returns a console logger whose level follows the verbosity:
// 0 logs errors only, 1 adds the summary, 2 adds every ply.
func newLogger(w io.Writer, verbosity int) zerolog.Logger {
	level := zerolog.InfoLevel
	switch {
	case verbosity <= 0:
		level = zerolog.ErrorLevel
	case verbosity >= 2:
		level = zerolog.DebugLevel
	}
	console := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}
	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(exitUsage)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the report file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(exitUsage)
	}
	cfg.SetOutput(file)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options] [saved-games...]\n\n")
	fmt.Fprintf(os.Stderr, "Plays coordinate moves under the rules of chess and reports the result.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  chessrules -moves \"e2e4 e7e5 g1f3\" -pgn game.pgn\n")
	fmt.Fprintf(os.Stderr, "  chessrules -load game.json -moves b8c6 -save game.json -svg board.svg\n")
	fmt.Fprintf(os.Stderr, "  chessrules -validate games/*.json\n")
}
