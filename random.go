package morphodrill

import "math/rand/v2"

// Rand is the random source used by the mutator and the sampler.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

type ambientRand struct{}

func (ambientRand) IntN(n int) int                     { return rand.IntN(n) }
func (ambientRand) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// DefaultRand returns the process-wide source. It has no seeding contract.
func DefaultRand() Rand { return ambientRand{} }

// NewSeededRand returns a deterministic PCG source. A *rand.Rand is not safe
// for concurrent use.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
