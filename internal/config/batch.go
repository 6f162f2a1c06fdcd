package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// BatchConfig holds settings for validating many saved games at once.
type BatchConfig struct {
	// Files are the saved games to validate
	Files []string

	// Workers is the number of concurrent validators (0 = one per CPU)
	Workers int

	// StopOnError ends the run at the first invalid game
	StopOnError bool
}

// NewBatchConfig creates a BatchConfig with default values.
// All fields use Go zero values: no files, one worker per CPU.
func NewBatchConfig() *BatchConfig {
	return &BatchConfig{}
}

// Validate checks the batch settings.
func (b *BatchConfig) Validate() error {
	if b.Workers < 0 {
		return fmt.Errorf("worker count %d is negative: %w", b.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
