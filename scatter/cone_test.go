package scatter

import (
	"math"
	"testing"

	"github.com/lixenwraith/vi-loot/rng"
	"github.com/lixenwraith/vi-loot/vmath"
)

func TestZeroAngleReturnsBaseExactly(t *testing.T) {
	src := rng.NewPCG(1)
	bases := []vmath.Vec3{
		{0, 5, 0},
		{1.25, -3.5, 7.125},
		{0, 0, 0},
		{1e-9, 0, 1e9},
	}
	for _, b := range bases {
		for _, angle := range []float64{0, -10} {
			if got := Sample(src, b, angle); got != b {
				t.Errorf("Sample(%v, %v) = %v, want exact base", b, angle, got)
			}
		}
	}
}

func TestZeroBase(t *testing.T) {
	got := Sample(rng.NewPCG(2), vmath.Vec3{}, 45)
	if !vmath.V3IsZero(got) {
		t.Errorf("zero base produced %v", got)
	}
}

func TestMagnitudePreservedAndInsideCone(t *testing.T) {
	src := rng.NewPCG(3)
	tests := []struct {
		base  vmath.Vec3
		angle float64
	}{
		{vmath.Vec3{0, 10, 0}, 30},
		{vmath.Vec3{0, 0, -4}, 15},
		{vmath.Vec3{3, 4, 0}, 60},
		{vmath.Vec3{0, 0, 2}, 5},
	}
	for _, tt := range tests {
		mag := tt.base.Len()
		for i := 0; i < 2000; i++ {
			v := Sample(src, tt.base, tt.angle)
			if math.Abs(v.Len()-mag) > 1e-9*math.Max(1, mag) {
				t.Fatalf("base %v: magnitude %v, want %v", tt.base, v.Len(), mag)
			}
			if d := Deviation(tt.base, v); d > tt.angle+1e-6 {
				t.Fatalf("base %v: deviation %.4f exceeds %v", tt.base, d, tt.angle)
			}
		}
	}
}

func TestRimTargetWithinHalfAngle(t *testing.T) {
	src := rng.NewPCG(4)
	base := vmath.Vec3{1, 1, 1}
	for i := 0; i < 2000; i++ {
		rim := RimTarget(src, base, 40)
		if d := Deviation(base, rim); d > 40+1e-6 {
			t.Fatalf("rim deviation %.4f exceeds 40", d)
		}
	}
}

func TestClustersTowardBase(t *testing.T) {
	src := rng.NewPCG(5)
	base := vmath.Vec3{0, 8, 0}
	const n = 20000
	inner := 0
	for i := 0; i < n; i++ {
		if Deviation(base, Sample(src, base, 30)) < 15 {
			inner++
		}
	}
	// Uniform over the cap would put about a quarter inside half the angle
	if share := float64(inner) / n; share < 0.4 {
		t.Errorf("inner share %.3f, expected clustering toward base", share)
	}
}

func TestSpreadCoversAllSides(t *testing.T) {
	src := rng.NewPCG(6)
	base := vmath.Vec3{0, 0, 10}
	var posX, negX, posY, negY bool
	for i := 0; i < 5000; i++ {
		v := Sample(src, base, 45)
		posX = posX || v[0] > 0.5
		negX = negX || v[0] < -0.5
		posY = posY || v[1] > 0.5
		negY = negY || v[1] < -0.5
	}
	if !(posX && negX && posY && negY) {
		t.Errorf("scatter is one-sided: +x=%v -x=%v +y=%v -y=%v", posX, negX, posY, negY)
	}
}

func TestConeSample(t *testing.T) {
	c := Cone{Base: vmath.Vec3{0, 3, 0}}
	if got := c.Sample(rng.NewPCG(7)); got != c.Base {
		t.Errorf("zero-angle cone changed base: %v", got)
	}
}

func TestDeviation(t *testing.T) {
	if d := Deviation(vmath.Vec3{1, 0, 0}, vmath.Vec3{0, 1, 0}); math.Abs(d-90) > 1e-9 {
		t.Errorf("deviation = %v, want 90", d)
	}
	if d := Deviation(vmath.Vec3{}, vmath.Vec3{0, 1, 0}); d != 0 {
		t.Errorf("zero vector deviation = %v", d)
	}
}
