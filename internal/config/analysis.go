package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/boardstate-go/internal/chess"
	"github.com/lgbarn/boardstate-go/internal/errors"
)

// AnalysisConfig holds settings for batch record analysis.
type AnalysisConfig struct {
	// Moves is a whitespace-separated move list applied to every record
	// before it is analysed.
	Moves string

	// BothSides lists the moves of both colours rather than only the side
	// to move.
	BothSides bool

	// Annotate marks each move with whether it leaves the mover's king
	// attacked.
	Annotate bool

	// SuppressDuplicates drops records whose resulting position was
	// already reported.
	SuppressDuplicates bool

	// Workers is the size of the worker pool. 0 means one per CPU.
	Workers int
}

// NewAnalysisConfig creates an AnalysisConfig with default values.
// All fields use Go zero values; Workers is resolved by WorkerCount.
func NewAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{}
}

// WorkerCount returns the number of workers to start.
func (a *AnalysisConfig) WorkerCount() int {
	if a.Workers <= 0 {
		return runtime.NumCPU()
	}
	return a.Workers
}

// Validate checks that the analysis configuration is valid.
func (a *AnalysisConfig) Validate() error {
	if a.Workers < 0 {
		return fmt.Errorf("workers (%d) must not be negative: %w", a.Workers, errors.ErrInvalidConfig)
	}
	if _, err := chess.ParseMoveList(a.Moves); err != nil {
		return fmt.Errorf("moves %q: %v: %w", a.Moves, err, errors.ErrInvalidConfig)
	}
	return nil
}
