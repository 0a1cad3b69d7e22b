package fusion

// Intent categories recognized by the adjustment rules. Any other value is
// treated as absent.
const (
	IntentTiming = "timing"
	IntentRisk   = "risk"
)

// Risk preferences recognized by the adjustment rules.
const (
	RiskConservative = "conservative"
	RiskAggressive   = "aggressive"
)

// FeatureBundle carries the optional context features that perturb the base
// weight vector and feed confidence scoring. Nil pointer fields and empty
// strings mean "absent"; every rule checks presence before applying its
// multiplier.
type FeatureBundle struct {
	Goal    string
	Context string
	Options []string

	RiskScore      *float64 // [0,1]
	Urgency        *float64 // [0,1]
	Agency         *float64 // [0,1]
	TrendPositive  *bool
	Intent         string
	RiskPreference string

	IntentConfidence *float64 // [0,1]
	ParseConfidence  *float64 // [0,1]
}

// Float64 is a literal-pointer helper for optional scalar features.
func Float64(v float64) *float64 { return &v }

// Bool is a literal-pointer helper for optional boolean features.
func Bool(v bool) *bool { return &v }
