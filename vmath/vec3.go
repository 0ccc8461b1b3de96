// Package vmath provides float64 vector helpers and random sampling over mgl64
package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-loot/rng"
)

// Vec3 is the float64 3D vector used for positions, offsets and throw vectors
type Vec3 = mgl64.Vec3

// Forward is the local axis an orientation aligns to its target direction
var Forward = Vec3{0, 0, 1}

func V3IsZero(v Vec3) bool {
	return v[0] == 0 && v[1] == 0 && v[2] == 0
}

// V3Lerp interpolates linearly from a to b, t unclamped
func V3Lerp(a, b Vec3, t float64) Vec3 {
	return Vec3{
		a[0] + (b[0]-a[0])*t,
		a[1] + (b[1]-a[1])*t,
		a[2] + (b[2]-a[2])*t,
	}
}

// V3WithMagnitude returns v rescaled to length mag
// Zero vector stays zero
func V3WithMagnitude(v Vec3, mag float64) Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Mul(mag / l)
}

// V3Finite reports whether every component is a finite number
func V3Finite(v Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// LookRotation returns the rotation taking Forward onto dir
// Zero dir yields identity
func LookRotation(dir Vec3) mgl64.Quat {
	if V3IsZero(dir) {
		return mgl64.QuatIdent()
	}
	return mgl64.QuatBetweenVectors(Forward, dir.Normalize())
}

// RandomInDisk returns a point uniformly distributed inside a disk of radius r
// sqrt on the radial draw keeps area density uniform
func RandomInDisk(src rng.Source, r float64) (x, y float64) {
	rad := r * math.Sqrt(src.Float64())
	theta := 2 * math.Pi * src.Float64()
	return rad * math.Cos(theta), rad * math.Sin(theta)
}

// RandomInBox draws each axis independently from [-extents, extents]
func RandomInBox(src rng.Source, extents Vec3) Vec3 {
	return Vec3{
		rng.Range(src, -extents[0], extents[0]),
		rng.Range(src, -extents[1], extents[1]),
		rng.Range(src, -extents[2], extents[2]),
	}
}
