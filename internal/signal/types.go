package signal

// Direction tells which way a metric improves.
type Direction string

const (
	HigherIsBetter Direction = "higher"
	LowerIsBetter  Direction = "lower"
)

// Zone is the threshold bucket a value falls into. A genuine gap between the
// warning and bad thresholds yields ZoneUndefined, not an error.
type Zone string

const (
	ZoneGood      Zone = "good"
	ZoneWarning   Zone = "warning"
	ZoneBad       Zone = "bad"
	ZoneUndefined Zone = "undefined"
)

// Signal is the directional classification of a series.
type Signal string

const (
	SignalPositive Signal = "positive"
	SignalNegative Signal = "negative"
	SignalNeutral  Signal = "neutral"
)

// Thresholds holds the three boundary scalars. Their ordering depends on the
// definition's direction.
type Thresholds struct {
	Good    float64 `yaml:"good" json:"good"`
	Warning float64 `yaml:"warning" json:"warning"`
	Bad     float64 `yaml:"bad" json:"bad"`
}

// Definition describes how one series identifier is evaluated. Window, when
// positive, restricts trend computation to that many trailing points.
type Definition struct {
	Direction  Direction  `yaml:"direction" json:"direction"`
	Thresholds Thresholds `yaml:"thresholds" json:"thresholds"`
	Window     int        `yaml:"window,omitempty" json:"window,omitempty"`
}

// Series is a labeled numeric sequence in time order.
type Series struct {
	ID     string
	Values []float64
}

// Result is the evaluation outcome for one series. Created fresh per call
// and never mutated after construction. Zone is empty when the series
// identifier has no definition.
type Result struct {
	ID         string
	Signal     Signal
	Slope      float64
	LastValue  float64
	Zone       Zone
	Confidence float64
}

// Crossing reports a zone change between the two latest values.
type Crossing struct {
	ID   string
	From Zone
	To   Zone
}

// Reversal reports a strict slope sign flip between two adjacent windows.
type Reversal struct {
	ID            string
	PreviousSlope float64
	CurrentSlope  float64
}
