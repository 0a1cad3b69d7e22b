package app

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"hexcast/domain/cast"
	"hexcast/domain/core"
	"hexcast/internal/casting"
	"hexcast/internal/fusion"
	"hexcast/internal/hexagram"
	"hexcast/pkg/logger"
)

// ReadingService orchestrates one full reading: cast, derive, fuse.
type ReadingService struct {
	engine         *fusion.Engine
	defaultProfile string
	defaultMethod  casting.Method
	log            *logrus.Entry
}

// ReadingRequest defines the inputs for a reading. Seed precedence: explicit
// integer seed, then text seed, then a non-deterministic one. The resolved
// seed is always surfaced on the Reading for exact replay.
type ReadingRequest struct {
	Seed     *uint32
	SeedText string
	Method   string // empty uses the service default
	Profile  string // empty uses the service default
	Features fusion.FeatureBundle
}

// Reading is the complete artifact of one invocation.
type Reading struct {
	ID            core.ReadingID      `json:"id"`
	Seed          uint32              `json:"seed"`
	Method        string              `json:"method"`
	Profile       string              `json:"profile"`
	Lines         []cast.Line         `json:"lines"`
	Primary       cast.Hexagram       `json:"primary"`
	Relating      cast.Hexagram       `json:"relating"`
	Mutual        cast.Hexagram       `json:"mutual"`
	ChangingLines []int               `json:"changing_lines"`
	Weights       fusion.WeightVector `json:"weights"`
	Focus         fusion.Focus        `json:"focus"`
	Confidence    float64             `json:"confidence"`
	KeyLines      []int               `json:"key_lines"`
	Fingerprint   core.Fingerprint    `json:"fingerprint"`
	CreatedAt     time.Time           `json:"created_at"`
}

// fingerprint canonicalizes the deterministic inputs of a reading. Two
// readings with the same fingerprint are replays of each other.
func fingerprint(seed uint32, method string, lines []cast.Line) core.Fingerprint {
	return core.NewFingerprint(fmt.Appendf(nil, "%d|%s|%v", seed, method, lines))
}

// NewReadingService creates a reading service around a validated fusion
// engine.
func NewReadingService(engine *fusion.Engine, defaultProfile string, defaultMethod casting.Method) *ReadingService {
	return &ReadingService{
		engine:         engine,
		defaultProfile: defaultProfile,
		defaultMethod:  defaultMethod,
		log:            logger.WithComponent("reading"),
	}
}

// NewReading executes one reading end to end.
func (s *ReadingService) NewReading(req ReadingRequest) (*Reading, error) {
	method := s.defaultMethod
	if req.Method != "" {
		parsed, err := casting.ParseMethod(req.Method)
		if err != nil {
			return nil, err
		}
		method = parsed
	}
	profile := req.Profile
	if profile == "" {
		profile = s.defaultProfile
	}

	caster := s.newCaster(method, req)
	lines := caster.Cast()

	derivation, err := hexagram.Derive(lines)
	if err != nil {
		return nil, err
	}

	fused, err := s.engine.Fuse(profile, derivation.ChangingLines, req.Features)
	if err != nil {
		return nil, err
	}

	reading := &Reading{
		ID:            core.NewReadingID(),
		Seed:          caster.Seed(),
		Method:        method.String(),
		Profile:       profile,
		Lines:         lines,
		Primary:       derivation.Primary,
		Relating:      derivation.Relating,
		Mutual:        derivation.Mutual,
		ChangingLines: derivation.ChangingLines,
		Weights:       fused.Weights,
		Focus:         fused.Focus,
		Confidence:    fused.Confidence,
		KeyLines:      fused.KeyLines,
		Fingerprint:   fingerprint(caster.Seed(), method.String(), lines),
		CreatedAt:     time.Now(),
	}

	s.log.WithFields(logrus.Fields{
		"reading_id": reading.ID,
		"seed":       reading.Seed,
		"method":     reading.Method,
		"primary":    reading.Primary.Number,
		"relating":   reading.Relating.Number,
		"changing":   len(reading.ChangingLines),
		"focus":      reading.Focus,
	}).Info("reading complete")

	return reading, nil
}

func (s *ReadingService) newCaster(method casting.Method, req ReadingRequest) *casting.Caster {
	switch {
	case req.Seed != nil:
		return casting.NewCaster(method, *req.Seed)
	case req.SeedText != "":
		return casting.NewCasterFromString(method, req.SeedText)
	}
	return casting.NewCaster(method, casting.RandomSeed())
}
