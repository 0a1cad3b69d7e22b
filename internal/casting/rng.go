package casting

import (
	"hash/fnv"
	"time"
)

// zeroSeedSentinel replaces a resolved seed of zero, where xorshift is
// undefined (state zero is a fixed point).
const zeroSeedSentinel uint32 = 2463534242

// rng is a 32-bit xorshift generator. The triple (13, 17, 5) is fixed;
// changing it breaks every recorded seed.
type rng struct {
	state uint32
}

func newRNG(seed uint32) *rng {
	if seed == 0 {
		seed = zeroSeedSentinel
	}
	return &rng{state: seed}
}

func (r *rng) next() uint32 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// SeedFromString deterministically hashes a string seed to a 32-bit integer
// using FNV-1a.
func SeedFromString(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}

// RandomSeed resolves a seed from a non-deterministic source. The resolved
// value is surfaced on the caster so a run can be replayed exactly.
func RandomSeed() uint32 {
	return uint32(time.Now().UnixNano())
}
