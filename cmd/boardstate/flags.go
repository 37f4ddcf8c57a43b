// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/boardstate-go/internal/config"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	jsonCompact  = flag.Bool("compact", false, "Write one JSON document per record instead of an indented batch")
	showKey      = flag.Bool("key", false, "Include each position's Zobrist key")

	// Analysis options
	moveList     = flag.String("m", "", "Moves to apply to every record, e.g. \"e2e4 e7e5\"")
	bothSides    = flag.Bool("both", false, "List moves for both colours, not only the side to move")
	annotate     = flag.Bool("annotate", false, "Mark moves that leave the mover's king attacked")
	validateOnly = flag.Bool("validate", false, "Only report records that fail to parse")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress records whose resulting position was already output")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum duplicate hash table entries (0 = unlimited)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbosity = flag.Int("v", 1, "Verbosity: 0 silent, 1 summary, 2 per-record commentary")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no record count)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")

	// Service options
	serveAddr = flag.String("serve", "", "Serve board sessions over HTTP on this address instead of analysing input")
	storePath = flag.String("store", "", "Badger directory for persistent sessions (default: in memory)")
	origins   = flag.String("origins", "", "Comma-separated CORS origins for the service")
)

// buildConfig builds a validated configuration from the command-line flags.
func buildConfig() (*config.Config, error) {
	level := *verbosity
	if *quiet {
		level = 0
	}

	return config.NewConfigBuilder().
		// Output options
		WithJSONOutput(*jsonOutput).
		WithCompactJSON(*jsonCompact).
		WithKeys(*showKey).
		// Analysis options
		WithMoves(*moveList).
		WithBothSides(*bothSides).
		WithAnnotation(*annotate).
		WithDuplicateSuppression(*suppressDuplicates).
		WithWorkers(*workers).
		// Service options
		WithAddr(*serveAddr).
		WithStorePath(*storePath).
		WithOrigins(splitOrigins(*origins)...).
		WithVerbosity(level).
		Build()
}

// splitOrigins splits a comma-separated origin list, dropping blanks.
func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
