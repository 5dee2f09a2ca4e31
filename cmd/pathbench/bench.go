package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/pathscope/astar"
	"github.com/katalvlaran/pathscope/bfs"
	"github.com/katalvlaran/pathscope/dfs"
	"github.com/katalvlaran/pathscope/dijkstra"
	"github.com/katalvlaran/pathscope/greedy"
	"github.com/katalvlaran/pathscope/gridgraph"
	"github.com/katalvlaran/pathscope/search"
)

type loc = gridgraph.Location

var algorithmNames = []string{bfs.Name, dfs.Name, dijkstra.Name, astar.Name, greedy.Name}

// newAlgorithm constructs the strategy registered under name.
func newAlgorithm(name string, gg *gridgraph.GridGraph, opts ...search.Option) (search.Algorithm[loc], error) {
	switch name {
	case bfs.Name:
		a, err := bfs.New[loc](gg, opts...)
		if err != nil {
			return nil, err
		}
		return a, nil
	case dfs.Name:
		a, err := dfs.New[loc](gg, opts...)
		if err != nil {
			return nil, err
		}
		return a, nil
	case dijkstra.Name:
		a, err := dijkstra.New[loc](gg, opts...)
		if err != nil {
			return nil, err
		}
		return a, nil
	case astar.Name:
		a, err := astar.New[loc](gg, opts...)
		if err != nil {
			return nil, err
		}
		return a, nil
	case greedy.Name:
		a, err := greedy.New[loc](gg, opts...)
		if err != nil {
			return nil, err
		}
		return a, nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q (want one of %s)", name, strings.Join(algorithmNames, ", "))
	}
}

// buildGrid constructs the graph described by cfg, walls included.
func buildGrid(cfg config, rng *rand.Rand) (*gridgraph.GridGraph, error) {
	switch cfg.Kind {
	case "random":
		return gridgraph.NewRandom(cfg.Size, gridgraph.WithRand(rng))
	case "full":
		gg, err := gridgraph.NewFull(cfg.Rows, cfg.Cols)
		if err != nil {
			return nil, err
		}
		want := int(cfg.Walls * float64(gg.Len()))
		vs := gg.Vertices()
		for placed := 0; placed < want; {
			v := vs[rng.Intn(len(vs))]
			if gg.IsWall(v) {
				continue
			}
			if err = gg.SetWall(v); err != nil {
				return nil, err
			}
			placed++
		}
		return gg, nil
	default:
		return nil, fmt.Errorf("unknown grid kind %q (want full or random)", cfg.Kind)
	}
}

// pair is one start/end query.
type pair struct{ start, end loc }

// drawPairs picks n random pairs among non-wall vertices.
func drawPairs(gg *gridgraph.GridGraph, n int, rng *rand.Rand) []pair {
	open := make([]loc, 0, gg.Len())
	for _, v := range gg.Vertices() {
		if !gg.IsWall(v) {
			open = append(open, v)
		}
	}
	out := make([]pair, n)
	for i := range out {
		out[i] = pair{open[rng.Intn(len(open))], open[rng.Intn(len(open))]}
	}
	return out
}

// stats aggregates the outcomes of one strategy.
type stats struct {
	name      string
	found     int
	notFound  int
	total     time.Duration
	min, max  time.Duration
	hops      int
	distance  float64
	cancelled bool
}

func (s *stats) add(d time.Duration) {
	if s.found+s.notFound == 0 || d < s.min {
		s.min = d
	}
	if d > s.max {
		s.max = d
	}
	s.total += d
}

func (s *stats) runs() int { return s.found + s.notFound }

// measure times alg over every pair. It stops early, without error, when
// ctx is cancelled.
func measure(ctx context.Context, name string, alg search.Algorithm[loc], gg *gridgraph.GridGraph, pairs []pair, m *metrics) (*stats, error) {
	st := &stats{name: name}
	for _, p := range pairs {
		gg.ResetStatuses()
		began := time.Now()
		path, err := alg.FindPath(ctx, p.start, p.end)
		elapsed := time.Since(began)

		switch {
		case err == nil:
			m.observe(name, outcomeFound, elapsed, path.Hops())
			st.add(elapsed)
			st.found++
			st.hops += path.Hops()
			st.distance += path.Distance
		case errors.Is(err, search.ErrNoPath):
			m.observe(name, outcomeNoPath, elapsed, 0)
			st.add(elapsed)
			st.notFound++
		case errors.Is(err, search.ErrCancelled):
			m.observe(name, outcomeCancelled, elapsed, 0)
			st.cancelled = true
			return st, nil
		default:
			m.observe(name, outcomeError, elapsed, 0)
			return st, fmt.Errorf("%s %v→%v: %w", name, p.start, p.end, err)
		}
	}
	return st, nil
}

// run builds the grid, times each requested strategy and prints a table to
// out. Every search is also recorded on reg.
func run(ctx context.Context, cfg config, out io.Writer, logger *slog.Logger, reg prometheus.Registerer) error {
	m := newMetrics(reg)
	rng := rand.New(rand.NewSource(cfg.Seed))

	began := time.Now()
	gg, err := buildGrid(cfg, rng)
	if err != nil {
		return err
	}
	logger.Info("grid built",
		slog.String("kind", gg.Kind.String()),
		slog.Int("vertices", gg.Len()),
		slog.Int("walls", len(gg.Walls())),
		slog.Duration("elapsed", time.Since(began)))

	pairs := drawPairs(gg, cfg.Runs, rng)
	opts := []search.Option{search.WithBacktrackDelay(0), search.WithLogger(logger)}

	var results []*stats
	for _, name := range strings.Split(cfg.Algos, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		alg, err := newAlgorithm(name, gg, opts...)
		if err != nil {
			return err
		}
		logger.Info("measuring", slog.String("algorithm", name), slog.Int("runs", len(pairs)))
		st, err := measure(ctx, name, alg, gg, pairs, m)
		if err != nil {
			return err
		}
		results = append(results, st)
		if cfg.Render {
			fmt.Fprintf(out, "%s, last search:\n%s\n\n", name, gg.Render())
		}
		if st.cancelled {
			logger.Warn("interrupted", slog.String("algorithm", name))
			break
		}
	}
	return report(out, results)
}

// report prints one row per strategy.
func report(out io.Writer, results []*stats) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "algorithm\truns\tfound\tnot found\tavg\tmin\tmax\tavg hops\tavg distance")
	for _, st := range results {
		n := st.runs()
		if n == 0 {
			fmt.Fprintf(tw, "%s\t0\t-\t-\t-\t-\t-\t-\t-\n", st.name)
			continue
		}
		avgHops, avgDist := 0.0, 0.0
		if st.found > 0 {
			avgHops = float64(st.hops) / float64(st.found)
			avgDist = st.distance / float64(st.found)
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%v\t%v\t%v\t%.1f\t%.2f\n",
			st.name, n, st.found, st.notFound,
			(st.total / time.Duration(n)).Round(time.Microsecond),
			st.min.Round(time.Microsecond), st.max.Round(time.Microsecond),
			avgHops, avgDist)
	}
	return tw.Flush()
}
