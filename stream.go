package links

import "math/rand/v2"

// Stream is the source of randomness threaded through generation. A
// *rand.Rand from math/rand/v2 satisfies it; tests can substitute a fixed
// sequence.
type Stream interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// NormFloat64 returns a standard normal value.
	NormFloat64() float64
	// IntN returns a uniform value in [0, n).
	IntN(n int) int
}

// streamSalt is the second PCG word. Changing it changes every course.
const streamSalt = 0x6c696e6b73 // "links"

// NewStream returns the stream used for a course with the given seed. The
// PCG source is a fixed algorithm, but math/rand/v2 does not promise that
// the Float64, NormFloat64 and IntN values derived from it stay the same
// across Go releases. A seed reproduces a course on one toolchain;
// testdata/seed67.golden.json records one course to catch drift.
func NewStream(seed int64) Stream {
	return rand.New(rand.NewPCG(uint64(seed), streamSalt))
}
