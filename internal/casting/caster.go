package casting

import (
	"hexcast/domain/cast"
	"hexcast/domain/core"
)

// Method selects one of the three casting probability models. The set is
// closed and exhaustive.
type Method int

const (
	// MethodCoin draws three binary sub-draws per line; the heads count
	// maps 0→6, 1→8, 2→7, 3→9 (P(6)=P(9)=1/8, P(7)=P(8)=3/8).
	MethodCoin Method = iota
	// MethodYarrow draws uniformly in [0,16) and partitions into buckets
	// of width 1,3,5,7 mapped to 9,6,7,8 in that order.
	MethodYarrow
	// MethodUniform draws uniformly in [0,4) and indexes 6,7,8,9 directly.
	MethodUniform
)

// String returns the method's configuration name.
func (m Method) String() string {
	switch m {
	case MethodCoin:
		return "coin"
	case MethodYarrow:
		return "yarrow"
	case MethodUniform:
		return "uniform"
	}
	return "unknown"
}

// ParseMethod maps a configuration name to a Method.
func ParseMethod(name string) (Method, error) {
	switch name {
	case "coin":
		return MethodCoin, nil
	case "yarrow":
		return MethodYarrow, nil
	case "uniform":
		return MethodUniform, nil
	}
	return 0, core.ErrUnknownMethod
}

// Caster produces line values from a seeded generator. Identical seed and
// method always yield an identical roll sequence.
type Caster struct {
	method Method
	seed   uint32
	rng    *rng
}

// NewCaster creates a caster from an already-resolved integer seed.
func NewCaster(method Method, seed uint32) *Caster {
	if seed == 0 {
		seed = zeroSeedSentinel
	}
	return &Caster{method: method, seed: seed, rng: newRNG(seed)}
}

// NewCasterFromString creates a caster with a string seed, hashed via FNV-1a.
func NewCasterFromString(method Method, seed string) *Caster {
	return NewCaster(method, SeedFromString(seed))
}

// Seed returns the resolved integer seed for reproducibility and audit.
func (c *Caster) Seed() uint32 {
	return c.seed
}

// Method returns the caster's probability model.
func (c *Caster) Method() Method {
	return c.method
}

// Roll samples the line for the given 1-based position. The position does
// not influence the draw; it is accepted for audit symmetry with the cast.
func (c *Caster) Roll(position int) cast.Line {
	_ = position
	switch c.method {
	case MethodYarrow:
		return c.rollYarrow()
	case MethodUniform:
		return c.rollUniform()
	default:
		return c.rollCoin()
	}
}

// Cast rolls all six lines bottom-up.
func (c *Caster) Cast() []cast.Line {
	lines := make([]cast.Line, 6)
	for i := range lines {
		lines[i] = c.Roll(i + 1)
	}
	return lines
}

func (c *Caster) rollCoin() cast.Line {
	heads := 0
	for i := 0; i < 3; i++ {
		heads += int(c.rng.next() & 1)
	}
	switch heads {
	case 0:
		return cast.OldYin
	case 1:
		return cast.YoungYin
	case 2:
		return cast.YoungYang
	default:
		return cast.OldYang
	}
}

func (c *Caster) rollYarrow() cast.Line {
	draw := c.rng.next() % 16
	switch {
	case draw < 1:
		return cast.OldYang
	case draw < 4:
		return cast.OldYin
	case draw < 9:
		return cast.YoungYang
	default:
		return cast.YoungYin
	}
}

func (c *Caster) rollUniform() cast.Line {
	return cast.Line(6 + c.rng.next()%4)
}
