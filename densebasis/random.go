package densebasis

import "math/rand"

// DeterministicRandom implements simplexmodel.RandomSource on top of
// math/rand: none of the example repos in this module's lineage ship a
// dedicated RNG library, so this one concern falls back to the standard
// library (see DESIGN.md). Each variable gets its own seeded generator
// so repeated shifts of the same v within one solve are reproducible,
// independent of call order.
type DeterministicRandom struct {
	seed int64
}

// NewDeterministicRandom builds a RandomSource seeded from seed.
func NewDeterministicRandom(seed int64) *DeterministicRandom {
	return &DeterministicRandom{seed: seed}
}

// Float64 returns a value in [0, 1) that is a pure function of v.
func (d *DeterministicRandom) Float64(v int) float64 {
	src := rand.New(rand.NewSource(d.seed + int64(v)))
	return src.Float64()
}
