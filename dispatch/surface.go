package dispatch

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-loot/droptable"
	"github.com/lixenwraith/vi-loot/vmath"
)

// Handle identifies an instance created by a Surface
// The empty handle means instantiation did not happen
type Handle string

// Surface is the host engine's object service
type Surface interface {
	// Instantiate creates an instance of template at pos with rotation rot
	Instantiate(template droptable.TemplateID, pos vmath.Vec3, rot mgl64.Quat) Handle

	// SetInitialVelocity launches the instance; no-op for instances without a physics body
	SetInitialVelocity(h Handle, v vmath.Vec3)

	// Destroy removes the instance; unknown handles are ignored
	Destroy(h Handle)
}

// Tracker is implemented by surfaces that can report whether an instance still exists
// Dispatchers use it to forget handles destroyed behind their back
type Tracker interface {
	Alive(h Handle) bool
}

// nullSurface drops every request; used when no surface was supplied
type nullSurface struct{}

func (nullSurface) Instantiate(droptable.TemplateID, vmath.Vec3, mgl64.Quat) Handle { return "" }
func (nullSurface) SetInitialVelocity(Handle, vmath.Vec3)                          {}
func (nullSurface) Destroy(Handle)                                                 {}
