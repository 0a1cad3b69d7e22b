package fusion

import (
	"sort"

	"hexcast/domain/core"
)

// Focus names the hexagram a fused weight vector is dominated by.
type Focus string

const (
	FocusPrimary  Focus = "primary"
	FocusRelating Focus = "relating"
	FocusMutual   Focus = "mutual"
	FocusBalanced Focus = "balanced"
)

// Result is the output of one fusion computation. Created fresh per call and
// immutable once returned.
type Result struct {
	Weights    WeightVector
	Focus      Focus
	Confidence float64
	KeyLines   []int
}

// Engine fuses a base policy vector with context features. Safe for
// concurrent use: the policy table is read-only after construction.
type Engine struct {
	policy PolicyTable
}

// NewEngine validates and wraps an injected policy table.
func NewEngine(policy PolicyTable) (*Engine, error) {
	if policy == nil {
		policy = DefaultPolicy()
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	return &Engine{policy: policy}, nil
}

// baseConfidence keys the starting confidence by changing-line count. A
// single changing line is the clearest signal; mid-range counts are least
// clear.
var baseConfidence = [7]float64{0.70, 0.90, 0.80, 0.60, 0.50, 0.55, 0.55}

// Fuse selects the base vector for (profile, changing-line count), applies
// the feature adjustments in fixed order, renormalizes once, and scores
// confidence. An unknown profile is an expected configuration gap and
// degrades to a uniform base vector; an out-of-range count is a caller bug.
func (e *Engine) Fuse(profile string, changingLines []int, feats FeatureBundle) (Result, error) {
	count := len(changingLines)
	if count > 6 {
		return Result{}, core.ErrInvalidCount
	}

	base := e.baseVector(profile, count)
	adjusted := applyAdjustments(base, feats)
	weights := normalize(adjusted)

	return Result{
		Weights:    weights,
		Focus:      dominantFocus(weights),
		Confidence: confidence(count, feats),
		KeyLines:   selectKeyLines(changingLines),
	}, nil
}

func (e *Engine) baseVector(profile string, count int) WeightVector {
	vectors, ok := e.policy[profile]
	if !ok {
		// Partial configuration: degrade to an even split rather than fail.
		third := 1.0 / 3.0
		return WeightVector{Primary: third, Relating: third, Mutual: third}
	}
	return vectors[count]
}

// applyAdjustments multiplies the base vector by the feature rules. Order is
// load-bearing: the multiplier chain does not commute with the dominance and
// confidence thresholds downstream.
func applyAdjustments(w WeightVector, f FeatureBundle) WeightVector {
	if f.Intent == IntentTiming && f.TrendPositive != nil && *f.TrendPositive {
		w.Mutual *= 1.2
		w.Relating *= 1.1
		w.Primary *= 0.9
	}
	if f.Intent == IntentRisk {
		w.Primary *= 1.15
		w.Relating *= 0.95
	}

	lowRisk := f.RiskScore != nil && *f.RiskScore < 0.3
	highRisk := f.RiskScore != nil && *f.RiskScore > 0.7
	if lowRisk || f.RiskPreference == RiskConservative {
		w.Primary *= 1.1
		w.Relating *= 0.9
	} else if highRisk || f.RiskPreference == RiskAggressive {
		w.Relating *= 1.15
		w.Primary *= 0.95
	}

	if f.Agency != nil && *f.Agency > 0.7 {
		w.Primary *= 1.05
		w.Relating *= 1.05
		w.Mutual *= 0.9
	} else if f.Agency != nil && *f.Agency < 0.3 {
		w.Mutual *= 1.15
		w.Primary *= 0.95
	}

	if f.Urgency != nil && *f.Urgency > 0.7 {
		w.Relating *= 1.1
	}
	return w
}

// normalize divides by the component sum. Runs exactly once, after all
// adjustments.
func normalize(w WeightVector) WeightVector {
	sum := w.Sum()
	if sum == 0 {
		third := 1.0 / 3.0
		return WeightVector{Primary: third, Relating: third, Mutual: third}
	}
	return WeightVector{
		Primary:  w.Primary / sum,
		Relating: w.Relating / sum,
		Mutual:   w.Mutual / sum,
	}
}

// dominantFocus applies the asymmetric dominance thresholds: primary and
// relating must exceed 0.5, mutual only 0.4 since it dominates as a
// secondary signal. Ties resolve in priority order primary, relating, mutual.
func dominantFocus(w WeightVector) Focus {
	top := w.Primary
	if w.Relating > top {
		top = w.Relating
	}
	if w.Mutual > top {
		top = w.Mutual
	}
	switch {
	case w.Primary == top && w.Primary > 0.5:
		return FocusPrimary
	case w.Relating == top && w.Relating > 0.5:
		return FocusRelating
	case w.Mutual == top && w.Mutual > 0.4:
		return FocusMutual
	}
	return FocusBalanced
}

// confidence starts from the count-keyed base and applies independent
// additive bonuses and penalties, clamped at 1.0. The bases are all >= 0.5
// and the penalties small, so no lower clamp is needed.
func confidence(count int, f FeatureBundle) float64 {
	c := baseConfidence[count]
	if f.Goal != "" && f.Context != "" {
		c += 0.05
	}
	if len(f.Options) > 0 {
		c += 0.05
	}
	if f.IntentConfidence != nil && *f.IntentConfidence > 0.7 {
		c += 0.03
	}
	if f.ParseConfidence != nil && *f.ParseConfidence > 0.7 {
		c += 0.02
	}
	if f.Urgency != nil && *f.Urgency > 0.7 {
		c -= 0.02
	}
	if f.Agency != nil && *f.Agency > 0.7 {
		c += 0.02
	}
	if c > 1.0 {
		c = 1.0
	}
	return c
}

// selectKeyLines picks the lines downstream rendering should emphasize.
// Up to two changing lines are taken as-is; with three or more, positions 2
// and 5 are preferred when changing, else the single highest changing line.
func selectKeyLines(changing []int) []int {
	switch {
	case len(changing) == 0:
		return nil
	case len(changing) <= 2:
		return dedupeSorted(changing)
	}

	var picked []int
	for _, pos := range changing {
		if pos == 2 || pos == 5 {
			picked = append(picked, pos)
		}
	}
	if len(picked) == 0 {
		highest := changing[0]
		for _, pos := range changing[1:] {
			if pos > highest {
				highest = pos
			}
		}
		picked = []int{highest}
	}
	return dedupeSorted(picked)
}

func dedupeSorted(positions []int) []int {
	out := make([]int, 0, len(positions))
	seen := make(map[int]bool, len(positions))
	for _, pos := range positions {
		if !seen[pos] {
			seen[pos] = true
			out = append(out, pos)
		}
	}
	sort.Ints(out)
	return out
}
