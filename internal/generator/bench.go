package generator

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Summary describes a sample.
type Summary struct {
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summarize computes the summary of data. data must not be empty.
func Summarize(data []float64) (Summary, error) {
	var s Summary
	var err error

	if s.Mean, err = stats.Mean(data); err != nil {
		return s, fmt.Errorf("generator: mean: %w", err)
	}
	if s.Median, err = stats.Median(data); err != nil {
		return s, fmt.Errorf("generator: median: %w", err)
	}
	if s.StdDev, err = stats.StandardDeviation(data); err != nil {
		return s, fmt.Errorf("generator: stddev: %w", err)
	}
	if s.Min, err = stats.Min(data); err != nil {
		return s, fmt.Errorf("generator: min: %w", err)
	}
	if s.Max, err = stats.Max(data); err != nil {
		return s, fmt.Errorf("generator: max: %w", err)
	}
	return s, nil
}

// BenchResult aggregates the runs of one algorithm.
type BenchResult struct {
	Algorithm      string
	Runs           int
	Cells          int
	DeadEndRatio   Summary
	SolutionLength Summary
	Duration       Summary // milliseconds
}

// Bench generates runs mazes shaped like base for every algorithm, using
// seeds base.Seed, base.Seed+1 and so on. Results keep the order of algos.
func (g *Generator) Bench(base Request, algos []string, runs int) ([]BenchResult, error) {
	if runs < 1 {
		return nil, fmt.Errorf("generator: bench needs at least one run, got %d", runs)
	}

	results := make([]BenchResult, 0, len(algos))
	for _, algo := range algos {
		req := base
		req.Algorithm = algo

		ratios := make([]float64, 0, runs)
		lengths := make([]float64, 0, runs)
		durations := make([]float64, 0, runs)
		cells := 0

		for i := range runs {
			req.Seed = base.Seed + int64(i)
			res, err := g.Generate(req)
			if err != nil {
				return nil, err
			}
			cells = res.Maze.Cells()
			ratios = append(ratios, float64(len(res.DeadEnds))/float64(cells))
			lengths = append(lengths, float64(len(res.Path)))
			durations = append(durations, float64(res.Duration.Microseconds())/1000)
		}

		r := BenchResult{Algorithm: algo, Runs: runs, Cells: cells}
		var err error
		if r.DeadEndRatio, err = Summarize(ratios); err != nil {
			return nil, err
		}
		if r.SolutionLength, err = Summarize(lengths); err != nil {
			return nil, err
		}
		if r.Duration, err = Summarize(durations); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}
