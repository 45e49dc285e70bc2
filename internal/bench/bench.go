// Package bench runs every algorithm over many random inputs and
// summarises step, comparison and exchange counts.
package bench

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ansonlam23/algorithm-visualizer/pkg/sequence"
	"github.com/ansonlam23/algorithm-visualizer/pkg/sorting"
)

// DefaultRuns is the number of random inputs per benchmark.
const DefaultRuns = 100

// ErrInvalidRuns indicates a non-positive run count.
var ErrInvalidRuns = errors.New("runs must be positive")

// Options configures a benchmark.
type Options struct {
	Runs    int
	Spec    sequence.Spec
	Seed    uint64
	Workers int
}

// AlgorithmStats summarises one algorithm across all runs.
type AlgorithmStats struct {
	Algorithm   sorting.Algorithm `json:"algorithm"   yaml:"algorithm"`
	Steps       Summary           `json:"steps"       yaml:"steps"`
	Comparisons Summary           `json:"comparisons" yaml:"comparisons"`
	Exchanges   Summary           `json:"exchanges"   yaml:"exchanges"`
}

// Report is the outcome of a benchmark.
type Report struct {
	Runs       int              `json:"runs"       yaml:"runs"`
	Size       int              `json:"size"       yaml:"size"`
	Seed       uint64           `json:"seed"       yaml:"seed"`
	Elapsed    time.Duration    `json:"elapsed"    yaml:"elapsed"`
	Algorithms []AlgorithmStats `json:"algorithms" yaml:"algorithms"`
}

// sample keeps the counts of one run; traces are dropped as soon as counted.
type sample struct {
	steps       int
	comparisons int
	exchanges   int
}

// Run draws opts.Runs inputs from one seeded generator, then traces every
// algorithm over each input on a bounded worker pool. The same seed always
// yields the same report apart from Elapsed.
func Run(ctx context.Context, opts Options) (Report, error) {
	if opts.Runs <= 0 {
		return Report{}, fmt.Errorf("%w: %d", ErrInvalidRuns, opts.Runs)
	}

	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}

	if opts.Seed == 0 {
		opts.Seed = sequence.NewRand(0).Uint64()
	}

	rng := sequence.NewRand(opts.Seed)

	inputs := make([][]int, opts.Runs)
	for i := range inputs {
		input, err := sequence.Random(rng, opts.Spec)
		if err != nil {
			return Report{}, fmt.Errorf("bench input: %w", err)
		}

		inputs[i] = input
	}

	algs := sorting.Algorithms()

	// results[run][alg]; each goroutine owns one row.
	results := make([][]sample, opts.Runs)

	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for i, input := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			row := make([]sample, len(algs))

			for j, alg := range algs {
				res, err := sorting.Run(alg, input)
				if err != nil {
					return err
				}

				row[j] = sample{
					steps:       res.Trace.TotalSteps(),
					comparisons: res.Counters.Comparisons,
					exchanges:   res.Counters.Exchanges,
				}
			}

			results[i] = row

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Report{}, fmt.Errorf("bench: %w", err)
	}

	report := Report{
		Runs:       opts.Runs,
		Size:       opts.Spec.Size,
		Seed:       opts.Seed,
		Elapsed:    time.Since(start),
		Algorithms: make([]AlgorithmStats, len(algs)),
	}

	for j, alg := range algs {
		steps := make([]int, opts.Runs)
		comparisons := make([]int, opts.Runs)
		exchanges := make([]int, opts.Runs)

		for i := range results {
			steps[i] = results[i][j].steps
			comparisons[i] = results[i][j].comparisons
			exchanges[i] = results[i][j].exchanges
		}

		report.Algorithms[j] = AlgorithmStats{
			Algorithm:   alg,
			Steps:       Summarize(steps),
			Comparisons: Summarize(comparisons),
			Exchanges:   Summarize(exchanges),
		}
	}

	return report, nil
}
