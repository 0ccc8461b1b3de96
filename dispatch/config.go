package dispatch

import (
	"time"

	"github.com/lixenwraith/vi-loot/droptable"
	"github.com/lixenwraith/vi-loot/placement"
	"github.com/lixenwraith/vi-loot/vmath"
)

// MaxConeHalfAngle bounds the authored cone half-angle in degrees
const MaxConeHalfAngle = 360.0

// Config is the per-dispatcher authoring surface
type Config struct {
	Name string

	// Dispatcher-level cap, independent of per-entry caps
	Repetitions droptable.RepetitionCap

	// Time between consecutive releases
	Delay time.Duration

	// Placement: Anchor wins over Area; Self is the fallback position
	Anchor placement.Point
	Area   placement.Volume
	Offset vmath.Vec3
	Self   placement.Point

	// Throw: base velocity and cone half-angle in degrees
	Throw         vmath.Vec3
	ConeHalfAngle float64
}

// DefaultConfig allows a single repetition released immediately
func DefaultConfig(name string) Config {
	return Config{
		Name:        name,
		Repetitions: droptable.Limit(1),
	}
}

// Normalize clamps Delay to >= 0, the cone to [0, MaxConeHalfAngle] and the cap to >= 0
func (c Config) Normalize() Config {
	if c.Delay < 0 {
		c.Delay = 0
	}
	if c.ConeHalfAngle < 0 {
		c.ConeHalfAngle = 0
	}
	if c.ConeHalfAngle > MaxConeHalfAngle {
		c.ConeHalfAngle = MaxConeHalfAngle
	}
	if c.Repetitions.Count < 0 {
		c.Repetitions.Count = 0
	}
	if c.Name == "" {
		c.Name = "dispatcher"
	}
	return c
}
