// processor.go - Record analysis and output functions
package main

import (
	"context"
	"fmt"
	"io"

	"github.com/lgbarn/boardstate-go/internal/config"
	"github.com/lgbarn/boardstate-go/internal/hashing"
	"github.com/lgbarn/boardstate-go/internal/output"
	"github.com/lgbarn/boardstate-go/internal/processing"
	"github.com/lgbarn/boardstate-go/internal/worker"
)

// ProcessingContext holds everything needed to analyse and output records.
type ProcessingContext struct {
	cfg      *config.Config
	opts     processing.Options
	detector *hashing.DuplicateDetector // nil unless duplicates are suppressed
	writer   output.ResultWriter
}

// RunStats counts what happened to the records of a run.
type RunStats struct {
	Records    int
	Output     int
	Duplicates int
	Failed     int
}

func (s *RunStats) add(o RunStats) {
	s.Records += o.Records
	s.Output += o.Output
	s.Duplicates += o.Duplicates
	s.Failed += o.Failed
}

// newProcessingContext builds the context for cfg, writing to cfg.OutputFile.
func newProcessingContext(cfg *config.Config, capacity int) (*ProcessingContext, error) {
	opts, err := processing.OptionsFromConfig(cfg.Analysis)
	if err != nil {
		return nil, err
	}
	pc := &ProcessingContext{
		cfg:    cfg,
		opts:   opts,
		writer: output.NewResultWriter(cfg.OutputFile, cfg.Output),
	}
	if cfg.Analysis.SuppressDuplicates {
		pc.detector = hashing.NewDuplicateDetector(capacity)
	}
	return pc, nil
}

// readInput reads the records of one input.
func readInput(r io.Reader, name string, base int, cfg *config.Config) []processing.Record {
	records, err := processing.ReadRecords(r, name, base)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error reading %s: %v\n", name, err)
	}
	return records
}

// analyzeRecords analyses records and writes the results in input order.
// Records not yet analysed when ctx is cancelled are skipped.
func analyzeRecords(ctx context.Context, records []processing.Record, pc *ProcessingContext) RunStats {
	numWorkers := pc.cfg.Analysis.WorkerCount()

	// Use parallel processing for multiple workers and enough records
	if numWorkers > 1 && len(records) > 2 {
		return analyzeRecordsParallel(ctx, records, pc, numWorkers)
	}
	return analyzeRecordsSequential(ctx, records, pc)
}

// analyzeRecordsSequential analyses records on the calling goroutine.
func analyzeRecordsSequential(ctx context.Context, records []processing.Record, pc *ProcessingContext) RunStats {
	var stats RunStats
	analyze := worker.AnalyzeFunc(pc.opts)
	for i, rec := range records {
		if ctx.Err() != nil {
			break
		}
		handleResult(analyze(worker.WorkItem{Record: rec, Index: i}), pc, &stats)
	}
	return stats
}

// analyzeRecordsParallel analyses records using a worker pool.
//
// Workers only analyse; results are consumed by this goroutine, put back in
// input order and only then checked for duplicates and written. The
// detector and writer are therefore used from one goroutine and the output
// is the same for any worker count.
func analyzeRecordsParallel(ctx context.Context, records []processing.Record, pc *ProcessingContext, numWorkers int) RunStats {
	var stats RunStats

	bufferSize := len(records)
	if bufferSize > 100 {
		bufferSize = 100
	}
	pool := worker.NewPool(numWorkers, bufferSize, worker.AnalyzeFunc(pc.opts))

	items := make([]worker.WorkItem, len(records))
	for i, rec := range records {
		items[i] = worker.WorkItem{Record: rec, Index: i}
	}

	order := worker.NewReorderer(0, func(result worker.ProcessResult) {
		handleResult(result, pc, &stats)
	})
	for result := range pool.Run(ctx, items) {
		order.Add(result)
	}
	if ctx.Err() == nil {
		if n := order.Pending(); n > 0 {
			fmt.Fprintf(pc.cfg.LogFile, "Internal error: %d result(s) never released\n", n)
		}
		if n := pool.Processed(); n != int64(len(records)) {
			fmt.Fprintf(pc.cfg.LogFile, "Internal error: %d of %d record(s) analysed\n", n, len(records))
		}
	}
	if pc.cfg.Verbosity > 1 {
		fmt.Fprintf(pc.cfg.LogFile, "%d record(s) analysed by %d worker(s)\n", pool.Processed(), pool.NumWorkers())
	}
	return stats
}

// handleResult reports an error, drops a duplicate, or writes the analysis.
func handleResult(result worker.ProcessResult, pc *ProcessingContext, stats *RunStats) {
	cfg := pc.cfg
	stats.Records++

	if result.Error != nil {
		stats.Failed++
		fmt.Fprintf(cfg.LogFile, "%v\n", result.Error)
		return
	}

	if pc.detector != nil && pc.detector.CheckAndAdd(result.Analysis.Board) {
		result.Duplicate = true
		stats.Duplicates++
		if cfg.Verbosity > 1 {
			fmt.Fprintf(cfg.LogFile, "%s:%d: duplicate position %s\n", result.Record.File, result.Record.Line, result.Analysis.FEN)
		}
		return
	}

	if err := pc.writer.WriteResult(result.Record, result.Analysis); err != nil {
		stats.Failed++
		fmt.Fprintf(cfg.LogFile, "Error writing result: %v\n", err)
		return
	}
	stats.Output++
	if cfg.Verbosity > 1 {
		fmt.Fprintf(cfg.LogFile, "%s:%d: %d move(s)\n", result.Record.File, result.Record.Line, result.Analysis.MoveCount())
	}
}

// validateRecords writes one line per record that fails to parse and
// returns the number of failures.
func validateRecords(records []processing.Record, w io.Writer) int {
	failures := 0
	for _, rec := range records {
		result := processing.ValidateRecord(rec.Text)
		if result.Valid {
			continue
		}
		failures++
		fmt.Fprintf(w, "%s:%d: %s\n", rec.File, rec.Line, result.ErrorMsg)
	}
	return failures
}
