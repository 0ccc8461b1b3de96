package rng

// FastRand is a xorshift64 Source for hot paths where reproducibility matters more
// than statistical quality (sandbox previews, benchmarks)
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
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

// Float64 uses the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

func (r *FastRand) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}
