// boardstate analyses chess positions given as FEN records and serves
// board sessions over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/lgbarn/boardstate-go/internal/api"
	"github.com/lgbarn/boardstate-go/internal/config"
	"github.com/lgbarn/boardstate-go/internal/store"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("boardstate version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := buildConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)

	if *serveAddr != "" {
		if err := runServer(cfg); err != nil {
			fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	setupOutputFile(cfg)

	if *validateOnly {
		if failures := validateAllInputs(cfg); failures > 0 {
			os.Exit(1)
		}
		return
	}

	pc, err := newProcessingContext(cfg, *duplicateCapacity)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	stats := processAllInputs(ctx, pc, flag.Args())
	stop()
	if err := pc.writer.Close(); err != nil {
		fmt.Fprintf(cfg.LogFile, "Error writing output: %v\n", err)
		os.Exit(1)
	}

	// Report statistics
	if cfg.Verbosity > 0 {
		reportStatistics(cfg.LogFile, pc, stats)
	}
	if stats.Failed > 0 {
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// eachInput calls fn with every named input in turn, or with stdin when no
// names are given.
func eachInput(names []string, logw io.Writer, fn func(r io.Reader, name string)) {
	if len(names) == 0 {
		fn(os.Stdin, "stdin")
		return
	}
	for _, filename := range names {
		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			fmt.Fprintf(logw, "Error opening file %s: %v\n", filename, err)
			continue
		}
		fn(file, filename)
		file.Close() //nolint:errcheck,gosec // G104: read-only file
	}
}

// processAllInputs analyses all input files or stdin.
func processAllInputs(ctx context.Context, pc *ProcessingContext, names []string) RunStats {
	var total RunStats
	base := 0
	eachInput(names, pc.cfg.LogFile, func(r io.Reader, name string) {
		if ctx.Err() != nil {
			return
		}
		records := readInput(r, name, base, pc.cfg)
		base += len(records)
		total.add(analyzeRecords(ctx, records, pc))
	})
	return total
}

// validateAllInputs reports unparsable records of all inputs to the output.
func validateAllInputs(cfg *config.Config) int {
	failures, total := 0, 0
	eachInput(flag.Args(), cfg.LogFile, func(r io.Reader, name string) {
		records := readInput(r, name, total, cfg)
		total += len(records)
		failures += validateRecords(records, cfg.OutputFile)
	})
	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "%d invalid record(s) out of %d.\n", failures, total)
	}
	return failures
}

// openStore opens the session store selected by the server configuration.
func openStore(cfg *config.ServerConfig) (store.Store, error) {
	if cfg.InMemory {
		return store.NewMemoryStore(), nil
	}
	return store.NewBadgerStore(cfg.StorePath)
}

// runServer serves board sessions until interrupted.
func runServer(cfg *config.Config) error {
	logger := slog.New(slog.NewTextHandler(cfg.LogFile, &slog.HandlerOptions{
		Level: serverLogLevel(cfg.Verbosity),
	}))
	api.SetLogger(logger)

	sessions, err := openStore(cfg.Server)
	if err != nil {
		return err
	}
	defer sessions.Close() //nolint:errcheck // best effort on shutdown

	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: api.NewServer(api.NewBoardService(sessions), cfg.Server, cfg.LogFile),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		server.Close() //nolint:errcheck,gosec // shutting down
	}()

	logger.Info("listening", "addr", cfg.Server.Addr, "in_memory", cfg.Server.InMemory)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// serverLogLevel maps verbosity onto a slog level.
func serverLogLevel(verbosity int) slog.Level {
	switch {
	case verbosity <= 0:
		return slog.LevelWarn
	case verbosity == 1:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// reportStatistics prints the final statistics to the log.
func reportStatistics(w io.Writer, pc *ProcessingContext, stats RunStats) {
	if pc.detector != nil {
		fmt.Fprintf(w, "%d record(s) output, %d duplicate(s), %d failed out of %d.\n",
			stats.Output, stats.Duplicates, stats.Failed, stats.Records)
	} else {
		fmt.Fprintf(w, "%d record(s) output, %d failed out of %d.\n", stats.Output, stats.Failed, stats.Records)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: boardstate [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Analyses chess positions given as FEN records, one per line.\n")
	fmt.Fprintf(os.Stderr, "With -serve, keeps board sessions and serves them over HTTP.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nService routes (-serve):\n")
	fmt.Fprintf(os.Stderr, "  POST   /boards                      create a session {\"fen\": ...}\n")
	fmt.Fprintf(os.Stderr, "  GET    /boards/{id}                 board view\n")
	fmt.Fprintf(os.Stderr, "  DELETE /boards/{id}                 end a session\n")
	fmt.Fprintf(os.Stderr, "  GET    /boards/{id}/moves/{square}  moves of one piece\n")
	fmt.Fprintf(os.Stderr, "  POST   /boards/{id}/moves           play {\"move\": \"e2e4\"}\n")
	fmt.Fprintf(os.Stderr, "  GET    /boards/{id}/check           ?move=e2e4&colour=white\n")
	fmt.Fprintf(os.Stderr, "  GET    /stats, /healthz\n")
}
