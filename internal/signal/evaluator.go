// Package signal evaluates labeled time series against configurable
// threshold definitions, producing directional signals with a data-quality
// confidence. Pure computation: the definitions table is read-only after
// construction and every evaluation is a function of its inputs.
package signal

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// relativeSlopeFactor scales |last value| into the slope threshold used for
// warning and undefined zones.
const relativeSlopeFactor = 0.05

// Evaluator classifies series against an injected definitions table.
type Evaluator struct {
	defs map[string]Definition
}

// NewEvaluator wraps a definitions table. A nil map is treated as empty:
// every series then evaluates to the neutral zero-confidence result.
func NewEvaluator(defs map[string]Definition) *Evaluator {
	if defs == nil {
		defs = map[string]Definition{}
	}
	return &Evaluator{defs: defs}
}

// Definition looks up the definition for a series identifier.
func (e *Evaluator) Definition(id string) (Definition, bool) {
	def, ok := e.defs[id]
	return def, ok
}

// Evaluate classifies a series. An unknown identifier is an expected
// configuration gap: it short-circuits to signal neutral with confidence
// exactly 0, bypassing all other computation.
func (e *Evaluator) Evaluate(series Series) Result {
	def, ok := e.defs[series.ID]
	if !ok {
		return Result{ID: series.ID, Signal: SignalNeutral, Confidence: 0}
	}

	slope := windowSlope(series.Values, def.Window)
	last := 0.0
	if len(series.Values) > 0 {
		last = series.Values[len(series.Values)-1]
	}
	zone := classifyZone(last, def)

	return Result{
		ID:         series.ID,
		Signal:     classifySignal(zone, slope, last, def.Direction),
		Slope:      slope,
		LastValue:  last,
		Zone:       zone,
		Confidence: dataConfidence(series.Values),
	}
}

// DetectCrossing compares the zone of the second-to-last value against the
// zone of the last value. Reported only when they differ.
func (e *Evaluator) DetectCrossing(series Series) (Crossing, bool) {
	def, ok := e.defs[series.ID]
	if !ok || len(series.Values) < 2 {
		return Crossing{}, false
	}
	n := len(series.Values)
	before := classifyZone(series.Values[n-2], def)
	after := classifyZone(series.Values[n-1], def)
	if before == after {
		return Crossing{}, false
	}
	return Crossing{ID: series.ID, From: before, To: after}, true
}

// DetectReversal compares the trailing-window slope against the slope of the
// preceding equal-sized window and reports a strict sign flip. Zero is not a
// sign: a flat window never counts as a reversal. When the definition has no
// window, half the series is used.
func (e *Evaluator) DetectReversal(series Series) (Reversal, bool) {
	def, ok := e.defs[series.ID]
	if !ok {
		return Reversal{}, false
	}
	window := def.Window
	if window <= 0 {
		window = len(series.Values) / 2
	}
	if window < 2 || len(series.Values) < 2*window {
		return Reversal{}, false
	}

	n := len(series.Values)
	current := slopeOf(series.Values[n-window:])
	previous := slopeOf(series.Values[n-2*window : n-window])

	flipped := (previous > 0 && current < 0) || (previous < 0 && current > 0)
	if !flipped {
		return Reversal{}, false
	}
	return Reversal{ID: series.ID, PreviousSlope: previous, CurrentSlope: current}, true
}

// windowSlope restricts the series to the trailing window, if any, before
// computing the trend slope.
func windowSlope(values []float64, window int) float64 {
	if window > 0 && len(values) > window {
		values = values[len(values)-window:]
	}
	return slopeOf(values)
}

// slopeOf is the OLS regression slope of value against 0-based index. Fewer
// than 2 points, or a single-point window, is defined as slope 0.
func slopeOf(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	xs := make([]float64, len(values))
	for i := range xs {
		xs[i] = float64(i)
	}
	_, beta := stat.LinearRegression(xs, values, nil, false)
	if math.IsNaN(beta) || math.IsInf(beta, 0) {
		return 0
	}
	return beta
}

// classifyZone buckets a value by the direction-dependent thresholds.
func classifyZone(value float64, def Definition) Zone {
	t := def.Thresholds
	if def.Direction == LowerIsBetter {
		switch {
		case value <= t.Good:
			return ZoneGood
		case value <= t.Warning:
			return ZoneWarning
		case value > t.Bad:
			return ZoneBad
		}
		return ZoneUndefined
	}
	switch {
	case value >= t.Good:
		return ZoneGood
	case value >= t.Warning:
		return ZoneWarning
	case value < t.Bad:
		return ZoneBad
	}
	return ZoneUndefined
}

// classifySignal turns a zone and slope into the directional signal. In the
// warning and undefined zones the slope is compared against a relative
// threshold of |value| * 0.05, mirrored for lower-is-better metrics where a
// falling slope is an improvement.
func classifySignal(zone Zone, slope, value float64, dir Direction) Signal {
	switch zone {
	case ZoneGood:
		if slope >= 0 {
			return SignalPositive
		}
		return SignalNeutral
	case ZoneBad:
		if slope <= 0 {
			return SignalNegative
		}
		return SignalNeutral
	}

	threshold := math.Abs(value) * relativeSlopeFactor
	if dir == LowerIsBetter {
		slope = -slope
	}
	switch {
	case slope > threshold:
		return SignalPositive
	case slope < -threshold:
		return SignalNegative
	}
	return SignalNeutral
}

// dataConfidence scores how much the series can be trusted: longer series
// score higher, volatile series lower. Coefficient of variation uses the
// population standard deviation, with a zero mean treated as CV 1.
func dataConfidence(values []float64) float64 {
	c := 0.5
	if len(values) >= 10 {
		c += 0.2
	}
	if len(values) >= 30 {
		c += 0.1
	}

	cv := 1.0
	if len(values) > 0 {
		mean, _ := stats.Mean(values)
		stdDev, _ := stats.StandardDeviationPopulation(values)
		if mean != 0 {
			cv = stdDev / math.Abs(mean)
		}
	}
	if cv < 0.1 {
		c += 0.1
	} else if cv > 0.5 {
		c -= 0.2
	}

	if c > 1.0 {
		c = 1.0
	}
	if c < 0.1 {
		c = 0.1
	}
	return c
}
