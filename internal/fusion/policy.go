package fusion

import (
	"fmt"
	"math"

	"hexcast/domain/core"
)

// Supported profile names.
const (
	ProfileClassic  = "classic"
	ProfileBalanced = "balanced"
	ProfileDynamic  = "dynamic"
)

// WeightVector holds the three hexagram weights. Normalized vectors sum to
// 1.0; a vector returned by the engine is owned by that result and never
// mutated afterwards.
type WeightVector struct {
	Primary  float64 `yaml:"primary" json:"primary"`
	Relating float64 `yaml:"relating" json:"relating"`
	Mutual   float64 `yaml:"mutual" json:"mutual"`
}

// Sum returns the component total.
func (w WeightVector) Sum() float64 {
	return w.Primary + w.Relating + w.Mutual
}

// PolicyTable maps a profile name to its seven base vectors, indexed 0..6 by
// changing-line count. Static configuration: constructed once, read-only
// thereafter.
type PolicyTable map[string][7]WeightVector

// DefaultPolicy returns the authored base tables for the three supported
// profiles. For every profile and count >= 1, the relating weight is
// non-decreasing and the primary weight non-increasing in the count.
func DefaultPolicy() PolicyTable {
	return PolicyTable{
		ProfileClassic: {
			{0.70, 0.10, 0.20},
			{0.65, 0.15, 0.20},
			{0.60, 0.20, 0.20},
			{0.50, 0.30, 0.20},
			{0.45, 0.35, 0.20},
			{0.40, 0.40, 0.20},
			{0.35, 0.45, 0.20},
		},
		ProfileBalanced: {
			{0.55, 0.15, 0.30},
			{0.55, 0.20, 0.25},
			{0.50, 0.25, 0.25},
			{0.45, 0.30, 0.25},
			{0.40, 0.35, 0.25},
			{0.35, 0.40, 0.25},
			{0.30, 0.45, 0.25},
		},
		ProfileDynamic: {
			{0.50, 0.20, 0.30},
			{0.45, 0.25, 0.30},
			{0.40, 0.30, 0.30},
			{0.35, 0.35, 0.30},
			{0.30, 0.40, 0.30},
			{0.25, 0.45, 0.30},
			{0.20, 0.50, 0.30},
		},
	}
}

// Validate checks every entry for non-negative components and a sum of 1.0
// within tolerance. A violating table is a configuration defect, not a
// runtime condition.
func (p PolicyTable) Validate() error {
	const tolerance = 1e-6
	for profile, vectors := range p {
		for count, w := range vectors {
			if w.Primary < 0 || w.Relating < 0 || w.Mutual < 0 {
				return fmt.Errorf("%w: %s", core.ErrInvalidWeights,
					describeEntry(profile, count))
			}
			if math.Abs(w.Sum()-1.0) > tolerance {
				return core.NewPolicyError(profile,
					fmt.Sprintf("count %d sums to %.6f, want 1.0", count, w.Sum()))
			}
		}
	}
	return nil
}

func describeEntry(profile string, count int) string {
	return fmt.Sprintf("profile %q count %d", profile, count)
}
