// Package placement computes spawn positions from a dispatcher's anchor configuration
package placement

import (
	"github.com/lixenwraith/vi-loot/rng"
	"github.com/lixenwraith/vi-loot/vmath"
)

// Point is anything with a current world position (a transform, an entity, a marker)
type Point interface {
	Position() vmath.Vec3
}

// Volume is anything with an axis-aligned bounding box
type Volume interface {
	Bounds() (center, extents vmath.Vec3)
}

// Fixed is a static Point
type Fixed vmath.Vec3

func (f Fixed) Position() vmath.Vec3 { return vmath.Vec3(f) }

// Box is a static Volume described by its center and half-extents
type Box struct {
	Center  vmath.Vec3
	Extents vmath.Vec3
}

func (b Box) Bounds() (center, extents vmath.Vec3) { return b.Center, b.Extents }

// Source names which rule produced a position
type Source uint8

const (
	SourceSelf Source = iota
	SourceAnchor
	SourceArea
)

func (s Source) String() string {
	switch s {
	case SourceAnchor:
		return "anchor"
	case SourceArea:
		return "area"
	default:
		return "self"
	}
}

// Resolver picks a spawn position; first applicable rule wins:
//  1. Anchor: anchor position + Offset
//  2. Area: random point in the area's bounding box (true shape ignored)
//  3. Self position, or the origin when Self is nil
type Resolver struct {
	Anchor Point
	Area   Volume
	Offset vmath.Vec3
	Self   Point
}

// Mode reports which rule Resolve will apply
func (r *Resolver) Mode() Source {
	switch {
	case r.Anchor != nil:
		return SourceAnchor
	case r.Area != nil:
		return SourceArea
	default:
		return SourceSelf
	}
}

// Resolve returns the next spawn position
func (r *Resolver) Resolve(src rng.Source) vmath.Vec3 {
	switch r.Mode() {
	case SourceAnchor:
		return r.Anchor.Position().Add(r.Offset)
	case SourceArea:
		center, extents := r.Area.Bounds()
		return center.Add(vmath.RandomInBox(src, extents))
	default:
		if r.Self == nil {
			return vmath.Vec3{}
		}
		return r.Self.Position()
	}
}

// Preview returns the deterministic reference position for the configuration:
// the area center stands in for the random area draw
func (r *Resolver) Preview() vmath.Vec3 {
	if r.Mode() == SourceArea {
		center, _ := r.Area.Bounds()
		return center
	}
	return r.Resolve(nil)
}
