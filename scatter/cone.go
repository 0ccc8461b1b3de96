// Package scatter randomizes throw vectors inside a cone around a base vector
package scatter

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-loot/rng"
	"github.com/lixenwraith/vi-loot/vmath"
)

// Cone is a throw configuration: base vector plus cone half-angle in degrees
type Cone struct {
	Base      vmath.Vec3
	HalfAngle float64
}

// Sample draws one scatter vector for the cone
func (c Cone) Sample(src rng.Source) vmath.Vec3 {
	return Sample(src, c.Base, c.HalfAngle)
}

// Sample returns a vector with the magnitude of base, deviating from it by at most
// halfAngle degrees
//
// A disk point at the cone's rim distance is oriented around base to form a rim
// target, then base is blended linearly toward it by a uniform t. Results cluster
// toward base; the distribution is not uniform over the spherical cap.
func Sample(src rng.Source, base vmath.Vec3, halfAngle float64) vmath.Vec3 {
	if halfAngle <= 0 {
		return base
	}
	mag := base.Len()
	if mag == 0 {
		return vmath.Vec3{}
	}

	rim := RimTarget(src, base, halfAngle)
	t := src.Float64()
	return vmath.V3WithMagnitude(vmath.V3Lerp(base, rim, t), mag)
}

// RimTarget returns base displaced by a uniform disk point perpendicular to it,
// rescaled to the magnitude of base
func RimTarget(src rng.Source, base vmath.Vec3, halfAngle float64) vmath.Vec3 {
	mag := base.Len()
	radius := math.Tan(mgl64.DegToRad(halfAngle)) * mag
	x, y := vmath.RandomInDisk(src, radius)

	offset := vmath.LookRotation(base).Rotate(vmath.Vec3{x, y, 0})
	return vmath.V3WithMagnitude(base.Add(offset), mag)
}

// Deviation returns the angle in degrees between two vectors
// Zero vectors report 0
func Deviation(a, b vmath.Vec3) float64 {
	la, lb := a.Len(), b.Len()
	if la == 0 || lb == 0 {
		return 0
	}
	cos := a.Dot(b) / (la * lb)
	cos = math.Max(-1, math.Min(1, cos))
	return mgl64.RadToDeg(math.Acos(cos))
}
