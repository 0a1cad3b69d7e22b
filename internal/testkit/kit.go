// Package testkit provides deterministic fixture generators for tests.
// Everything is seeded; the same config always produces the same fixtures.
package testkit

import (
	"math/rand"

	"github.com/montanaflynn/stats"

	"hexcast/domain/cast"
	"hexcast/internal/signal"
)

// SeriesConfig drives synthetic series generation.
type SeriesConfig struct {
	ID     string
	Length int
	Start  float64
	Slope  float64 // per-step drift
	Noise  float64 // uniform noise amplitude
	Seed   int64
}

// GenerateSeries builds a noisy linear series.
func GenerateSeries(cfg SeriesConfig) signal.Series {
	r := rand.New(rand.NewSource(cfg.Seed))
	values := make([]float64, cfg.Length)
	for i := range values {
		values[i] = cfg.Start + cfg.Slope*float64(i) + (r.Float64()*2-1)*cfg.Noise
	}
	return signal.Series{ID: cfg.ID, Values: values}
}

// GenerateStableSeries builds a series whose coefficient of variation stays
// below the given cap, for confidence-scoring fixtures.
func GenerateStableSeries(id string, length int, level, maxCV float64, seed int64) signal.Series {
	r := rand.New(rand.NewSource(seed))
	amplitude := level * maxCV / 2
	values := make([]float64, length)
	for i := range values {
		values[i] = level + (r.Float64()*2-1)*amplitude
	}
	return signal.Series{ID: id, Values: values}
}

// CV computes the population coefficient of variation of a series, matching
// the evaluator's volatility measure.
func CV(values []float64) float64 {
	mean, _ := stats.Mean(values)
	if mean == 0 {
		return 1
	}
	stdDev, _ := stats.StandardDeviationPopulation(values)
	if mean < 0 {
		mean = -mean
	}
	return stdDev / mean
}

// Lines is a shorthand constructor for cast fixtures.
func Lines(values ...int) []cast.Line {
	out := make([]cast.Line, len(values))
	for i, v := range values {
		out[i] = cast.Line(v)
	}
	return out
}

// AllStaticCasts enumerates the 64 casts built only from static lines, one
// per hexagram value, for bijection sweeps.
func AllStaticCasts() [][]cast.Line {
	casts := make([][]cast.Line, 64)
	for value := 0; value < 64; value++ {
		lines := make([]cast.Line, 6)
		for i := 0; i < 6; i++ {
			if value&(1<<i) != 0 {
				lines[i] = cast.YoungYang
			} else {
				lines[i] = cast.YoungYin
			}
		}
		casts[value] = lines
	}
	return casts
}
