package sim

// Rand is the random source threaded through Advance.
// *math/rand.Rand satisfies it.
type Rand interface {
	// Float32 returns a uniform value in [0, 1).
	Float32() float32
	// Intn returns a uniform value in [0, n). n must be positive.
	Intn(n int) int
}

// uniform returns a value in [lo, hi).
func uniform(r Rand, lo, hi float32) float32 {
	return lo + (hi-lo)*r.Float32()
}
