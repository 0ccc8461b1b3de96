package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is a float64 gauge with the method set of atomic.Int64
// Used for timers and angles published to the HUD; the zero value reads 0
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Load() float64 {
	return math.Float64frombits(f.bits.Load())
}

func (f *AtomicFloat) Store(v float64) {
	f.bits.Store(math.Float64bits(v))
}

// Add returns the sum after it is stored; retries while another writer races
func (f *AtomicFloat) Add(delta float64) float64 {
	for {
		cur := f.bits.Load()
		sum := math.Float64frombits(cur) + delta
		if f.bits.CompareAndSwap(cur, math.Float64bits(sum)) {
			return sum
		}
	}
}
