// Package spawn is an in-memory dispatch.Surface with toy ballistic motion
package spawn

import (
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/lixenwraith/vi-loot/dispatch"
	"github.com/lixenwraith/vi-loot/droptable"
	"github.com/lixenwraith/vi-loot/vmath"
)

// Default motion parameters, world units per second
const (
	DefaultGravity     = -9.81
	DefaultRestitution = 0.45
	DefaultFriction    = 0.8
	DefaultSettleSpeed = 0.25
)

// Instance is one live spawned object
type Instance struct {
	Handle   dispatch.Handle
	Template droptable.TemplateID
	Position vmath.Vec3
	Rotation mgl64.Quat
	Velocity vmath.Vec3
	Physics  bool // Has a body; velocity applies
	Grounded bool // Settled on the ground plane
	Age      float64
}

// World holds instances keyed by uuid handle in spawn order
type World struct {
	Gravity     float64
	Restitution float64 // Vertical speed kept per bounce
	Friction    float64 // Horizontal speed kept per bounce
	SettleSpeed float64 // Bounce below this vertical speed settles
	GroundY     float64

	// Static lists templates spawned without a body; SetInitialVelocity ignores them
	Static map[droptable.TemplateID]bool

	byHandle map[dispatch.Handle]*Instance
	order    []dispatch.Handle
	spawned  int
}

var _ dispatch.Surface = (*World)(nil)

func NewWorld() *World {
	return &World{
		Gravity:     DefaultGravity,
		Restitution: DefaultRestitution,
		Friction:    DefaultFriction,
		SettleSpeed: DefaultSettleSpeed,
		Static:      make(map[droptable.TemplateID]bool),
		byHandle:    make(map[dispatch.Handle]*Instance),
	}
}

// Instantiate creates an instance and returns its handle
func (w *World) Instantiate(template droptable.TemplateID, pos vmath.Vec3, rot mgl64.Quat) dispatch.Handle {
	h := dispatch.Handle(uuid.NewString())
	inst := &Instance{
		Handle:   h,
		Template: template,
		Position: pos,
		Rotation: rot,
		Physics:  !w.Static[template],
	}
	w.byHandle[h] = inst
	w.order = append(w.order, h)
	w.spawned++
	return h
}

// SetInitialVelocity launches a physics instance
// Static or unknown handles and non-finite velocities are ignored
func (w *World) SetInitialVelocity(h dispatch.Handle, v vmath.Vec3) {
	inst, ok := w.byHandle[h]
	if !ok || !inst.Physics || !vmath.V3Finite(v) {
		return
	}
	inst.Velocity = v
	inst.Grounded = false
}

func (w *World) Destroy(h dispatch.Handle) {
	if _, ok := w.byHandle[h]; !ok {
		return
	}
	delete(w.byHandle, h)
	if i := slices.Index(w.order, h); i >= 0 {
		w.order = slices.Delete(w.order, i, i+1)
	}
}

// Get returns the live instance for a handle
func (w *World) Get(h dispatch.Handle) (*Instance, bool) {
	inst, ok := w.byHandle[h]
	return inst, ok
}

// Alive reports whether h names a live instance
func (w *World) Alive(h dispatch.Handle) bool {
	_, ok := w.byHandle[h]
	return ok
}

// Len returns the live instance count
func (w *World) Len() int {
	return len(w.order)
}

// Spawned returns the lifetime instantiate count
func (w *World) Spawned() int {
	return w.spawned
}

// Each visits live instances in spawn order
func (w *World) Each(fn func(*Instance)) {
	for _, h := range w.order {
		fn(w.byHandle[h])
	}
}

// Clear destroys every instance
func (w *World) Clear() {
	clear(w.byHandle)
	w.order = w.order[:0]
}

// Step advances every physics instance by dt seconds
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}
	for _, h := range w.order {
		inst := w.byHandle[h]
		inst.Age += dt
		if !inst.Physics || inst.Grounded {
			continue
		}
		w.integrate(inst, dt)
	}
}

// integrate applies semi-implicit Euler with a ground-plane bounce
func (w *World) integrate(inst *Instance, dt float64) {
	inst.Velocity[1] += w.Gravity * dt
	inst.Position = inst.Position.Add(inst.Velocity.Mul(dt))

	if inst.Position[1] > w.GroundY {
		return
	}
	inst.Position[1] = w.GroundY

	vy := -inst.Velocity[1] * w.Restitution
	if vy < w.SettleSpeed {
		inst.Velocity = vmath.Vec3{}
		inst.Grounded = true
		return
	}
	inst.Velocity[0] *= w.Friction
	inst.Velocity[1] = vy
	inst.Velocity[2] *= w.Friction
}

// Oldest returns the earliest live instance handle
func (w *World) Oldest() (dispatch.Handle, bool) {
	if len(w.order) == 0 {
		return "", false
	}
	return w.order[0], true
}
