// Command pathbench builds a grid graph and times every search strategy
// over the same random start/end pairs.
//
//	pathbench -kind random -size 2000 -runs 200
//	pathbench -kind full -rows 60 -cols 80 -walls 0.25 -algos bfs,astar
//	pathbench -runs 10000 -metrics-addr :9090
//
// SIGINT cancels the run in progress and prints what was measured so far.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// config mirrors the command line.
type config struct {
	Kind    string
	Rows    int
	Cols    int
	Size    int
	Runs    int
	Seed    int64
	Algos   string
	Walls   float64
	Render  bool
	Verbose bool
	Metrics string
}

func parseFlags(args []string) (config, error) {
	var c config
	fs := flag.NewFlagSet("pathbench", flag.ContinueOnError)
	fs.StringVar(&c.Kind, "kind", "random", "grid kind (full, random)")
	fs.IntVar(&c.Rows, "rows", 50, "rows of a full grid")
	fs.IntVar(&c.Cols, "cols", 50, "columns of a full grid")
	fs.IntVar(&c.Size, "size", 1000, "vertex count and side of a random grid")
	fs.IntVar(&c.Runs, "runs", 100, "number of start/end pairs")
	fs.Int64Var(&c.Seed, "seed", 1, "random seed")
	fs.StringVar(&c.Algos, "algos", strings.Join(algorithmNames, ","), "comma-separated strategies")
	fs.Float64Var(&c.Walls, "walls", 0, "fraction of full-grid cells turned into walls")
	fs.BoolVar(&c.Render, "render", false, "print the grid after the last search of each strategy")
	fs.BoolVar(&c.Verbose, "v", false, "log every search at debug level")
	fs.StringVar(&c.Metrics, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090)")
	if err := fs.Parse(args); err != nil {
		return c, err
	}
	if c.Runs < 1 {
		return c, fmt.Errorf("runs must be positive (%d)", c.Runs)
	}
	if c.Walls < 0 || c.Walls >= 1 {
		return c, fmt.Errorf("walls must be in [0, 1) (%v)", c.Walls)
	}
	return c, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func main() {
	os.Exit(realMain())
}

// realMain runs the command and returns the exit code, so deferred
// cleanup (signal handler, metrics server) runs before os.Exit.
func realMain() int {
	cfg, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "pathbench:", err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := newLogger(os.Stderr, cfg.Verbose)
	reg := prometheus.NewRegistry()
	if cfg.Metrics != "" {
		shutdown := serveMetrics(cfg.Metrics, reg, logger)
		defer shutdown()
	}
	if err = run(ctx, cfg, os.Stdout, logger, reg); err != nil {
		logger.Error("benchmark failed", slog.String("error", err.Error()))
		return 1
	}
	return 0
}
