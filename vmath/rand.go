package vmath

// FastRand is a xorshift64 generator (shifts 13, 17, 5). Not cryptographic;
// its only contract is that the same seed always yields the same sequence,
// which the samplers rely on for replayable shots.
type FastRand struct {
	state uint64
}

// NewFastRand seeds a fresh generator. The seed is run through a splitmix64
// finalizer first: catalog seeds are 32-bit, and feeding them to xorshift
// raw would leave the high word empty for the first draws. Zero is remapped
// because the all-zero state is a fixed point of xorshift.
func NewFastRand(seed uint64) *FastRand {
	seed += 0x9E3779B97F4A7C15
	seed = (seed ^ (seed >> 30)) * 0xBF58476D1CE4E5B9
	seed = (seed ^ (seed >> 27)) * 0x94D049BB133111EB
	seed ^= seed >> 31
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Float64 returns a uniform draw in [0, 1) from the top 53 bits of Next.
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a uniform draw in [lo, hi).
func (r *FastRand) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}
