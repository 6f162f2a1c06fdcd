// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that is not legal in the given position.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNoPiece indicates a request about a square that holds no piece.
	ErrNoPiece = errors.New("no piece on square")

	// ErrInvalidSquare indicates a square name or index outside the board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidPosition indicates persisted position fields that cannot be decoded.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrInvalidHistory indicates a saved game whose history cannot be replayed
	// or does not reproduce the stored position.
	ErrInvalidHistory = errors.New("invalid game history")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ReplayError wraps errors raised while replaying a move history, with the
// ply and move that failed. It supports unwrapping via errors.Is() and errors.As().
type ReplayError struct {
	Err      error  // The underlying error
	PlyNum   int    // 1-based ply where the error occurred (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
	Source   string // Where the history came from, e.g. a file name (if known)
}

// Error returns a formatted error message including all available context.
func (e *ReplayError) Error() string {
	var parts []string

	if e.Source != "" {
		parts = append(parts, e.Source)
	}
	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")
	switch {
	case context == "" && e.Err != nil:
		return e.Err.Error()
	case context == "":
		return "replay error"
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the ReplayError wrapper.
func (e *ReplayError) Unwrap() error {
	return e.Err
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
