package scatter

import (
	"testing"

	"github.com/lixenwraith/vi-loot/rng"
	"github.com/lixenwraith/vi-loot/vmath"
)

func BenchmarkSample(b *testing.B) {
	src := rng.NewFastRand(1)
	base := vmath.Vec3{1, 6, 2}
	for b.Loop() {
		Sample(src, base, 30)
	}
}
