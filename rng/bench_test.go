package rng

import "testing"

// Benchmarks compare the two Source implementations on the calls the drop path makes

func BenchmarkPCGIntN(b *testing.B) {
	src := NewPCG(1)
	for b.Loop() {
		src.IntN(1000)
	}
}

func BenchmarkFastRandIntN(b *testing.B) {
	src := NewFastRand(1)
	for b.Loop() {
		src.IntN(1000)
	}
}

func BenchmarkPCGFloat64(b *testing.B) {
	src := NewPCG(1)
	for b.Loop() {
		src.Float64()
	}
}

func BenchmarkFastRandFloat64(b *testing.B) {
	src := NewFastRand(1)
	for b.Loop() {
		src.Float64()
	}
}
