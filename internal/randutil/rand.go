// Package randutil derives reproducible rand/v2 generators from int64 seeds.
package randutil

import rand "math/rand/v2"

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// NewPCG returns the PCG source behind New. Callers that need to persist the
// generator position keep the source and use its MarshalBinary/UnmarshalBinary.
func NewPCG(seed int64) *rand.PCG {
	u := uint64(seed)
	return rand.NewPCG(mix(u), mix(u+goldenRatio64))
}

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Every component that shuffles or samples goes through here so that a single
// seed reproduces the same sequence on every platform.
func New(seed int64) *rand.Rand {
	return rand.New(NewPCG(seed))
}

// Restore rebuilds a PCG source from state captured with MarshalBinary.
func Restore(state []byte) (*rand.PCG, error) {
	src := &rand.PCG{}
	if err := src.UnmarshalBinary(state); err != nil {
		return nil, err
	}
	return src, nil
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
