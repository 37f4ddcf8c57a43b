// Package output writes analysis results as text or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/boardstate-go/internal/config"
	"github.com/lgbarn/boardstate-go/internal/processing"
)

// ResultWriter is the interface for writing analysis results.
// Implementations handle different output formats (text, JSON).
type ResultWriter interface {
	// WriteResult writes the analysis of one record.
	WriteResult(rec processing.Record, analysis *processing.Analysis) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer. Batch writers write pending output here.
	Close() error
}

// NewResultWriter returns the writer selected by cfg.
func NewResultWriter(w io.Writer, cfg *config.OutputConfig) ResultWriter {
	if cfg.JSONFormat {
		return NewJSONWriter(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes one block per record.
type TextWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.OutputConfig) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WriteResult writes the header lines of a record followed by one line per
// piece. A move that leaves the mover's king attacked is marked with '!'.
func (tw *TextWriter) WriteResult(rec processing.Record, a *processing.Analysis) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n", location(rec))
	fmt.Fprintf(&sb, "fen: %s\n", a.FEN)
	fmt.Fprintf(&sb, "to move: %s%s\n", a.SideToMove, checkSuffix(a))
	if tw.cfg.ShowKey {
		fmt.Fprintf(&sb, "key: %016x\n", a.Key)
	}
	if a.HasRepetition {
		sb.WriteString("note: a position occurred three times\n")
	}
	if a.ClockExhausted {
		sb.WriteString("note: half-move clock is past the record limit\n")
	}

	for _, p := range a.Pieces {
		fmt.Fprintf(&sb, "  %s %s:", p.Piece, p.Square)
		if len(p.Moves) == 0 {
			sb.WriteString(" -")
		}
		for _, m := range p.Moves {
			sb.WriteByte(' ')
			sb.WriteString(m.Move)
			if m.ExposesKing != nil && *m.ExposesKing {
				sb.WriteByte('!')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(tw.w, sb.String())
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// location formats where a record was read from.
func location(rec processing.Record) string {
	if rec.File == "" {
		return fmt.Sprintf("record %d", rec.Index+1)
	}
	return fmt.Sprintf("%s:%d", rec.File, rec.Line)
}

// checkSuffix describes the check state of the side to move.
func checkSuffix(a *processing.Analysis) string {
	switch {
	case a.InCheck == nil:
		return " (no king)"
	case *a.InCheck:
		return " (in check)"
	default:
		return ""
	}
}
