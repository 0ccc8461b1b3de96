package vmath

import (
	"math"
	"testing"

	"github.com/lixenwraith/vi-loot/rng"
)

const eps = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) < eps }

func TestV3Lerp(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{2, 4, -6}
	tests := []struct {
		t    float64
		want Vec3
	}{
		{0, a},
		{1, b},
		{0.5, Vec3{1, 2, -3}},
	}
	for _, tt := range tests {
		got := V3Lerp(a, b, tt.t)
		if !got.ApproxEqualThreshold(tt.want, eps) {
			t.Errorf("V3Lerp(t=%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestV3WithMagnitude(t *testing.T) {
	got := V3WithMagnitude(Vec3{3, 0, 4}, 10)
	if !approx(got.Len(), 10) {
		t.Errorf("magnitude = %v, want 10", got.Len())
	}
	if !got.ApproxEqualThreshold(Vec3{6, 0, 8}, eps) {
		t.Errorf("direction changed: %v", got)
	}
	if z := V3WithMagnitude(Vec3{}, 5); !V3IsZero(z) {
		t.Errorf("zero vector rescaled to %v", z)
	}
}

func TestLookRotationAlignsForward(t *testing.T) {
	dirs := []Vec3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, -1},
		{3, -2, 5},
		{0, 0, 1},
	}
	for _, d := range dirs {
		q := LookRotation(d)
		got := q.Rotate(Forward)
		want := d.Normalize()
		if !got.ApproxEqualThreshold(want, 1e-6) {
			t.Errorf("LookRotation(%v) maps forward to %v, want %v", d, got, want)
		}
	}
}

func TestLookRotationZero(t *testing.T) {
	q := LookRotation(Vec3{})
	if got := q.Rotate(Vec3{1, 2, 3}); !got.ApproxEqualThreshold(Vec3{1, 2, 3}, eps) {
		t.Errorf("zero direction should be identity, got %v", got)
	}
}

func TestRandomInDisk(t *testing.T) {
	src := rng.NewPCG(11)
	for i := 0; i < 5000; i++ {
		x, y := RandomInDisk(src, 2)
		if math.Hypot(x, y) > 2+eps {
			t.Fatalf("point (%v,%v) outside radius 2", x, y)
		}
	}
	if x, y := RandomInDisk(src, 0); x != 0 || y != 0 {
		t.Errorf("zero radius produced (%v,%v)", x, y)
	}
}

func TestRandomInBox(t *testing.T) {
	src := rng.NewPCG(5)
	ext := Vec3{1, 2, 0}
	for i := 0; i < 5000; i++ {
		p := RandomInBox(src, ext)
		if math.Abs(p[0]) > 1 || math.Abs(p[1]) > 2 || p[2] != 0 {
			t.Fatalf("point %v outside extents %v", p, ext)
		}
	}
}

func TestV3Finite(t *testing.T) {
	if !V3Finite(Vec3{1, 2, 3}) {
		t.Error("finite vector reported non-finite")
	}
	if V3Finite(Vec3{math.NaN(), 0, 0}) || V3Finite(Vec3{0, math.Inf(1), 0}) {
		t.Error("non-finite vector reported finite")
	}
}
