// Package dispatch queues resolved drop repetitions and releases them over time
// through a host-provided Surface
package dispatch

import (
	"log"
	"slices"
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-loot/droptable"
	"github.com/lixenwraith/vi-loot/event"
	"github.com/lixenwraith/vi-loot/placement"
	"github.com/lixenwraith/vi-loot/rng"
	"github.com/lixenwraith/vi-loot/scatter"
	"github.com/lixenwraith/vi-loot/status"
	"github.com/lixenwraith/vi-loot/vmath"
)

// State is the scheduler state
type State uint8

const (
	StateIdle     State = iota // Queue empty
	StateDraining              // Queue non-empty, timer running
)

func (s State) String() string {
	if s == StateDraining {
		return "draining"
	}
	return "idle"
}

// Deps are the collaborators a dispatcher calls into
// Nil Surface discards releases; nil Source gets a crypto-seeded PCG; nil Status gets a
// private registry
type Deps struct {
	Surface Surface
	Source  rng.Source
	Status  *status.Registry
}

// Dispatcher owns a private drop table, a FIFO of pending templates and the release
// scheduler
// Single-threaded: QueueRepetition and Advance must be called from the same goroutine
type Dispatcher struct {
	cfg     Config
	table   *droptable.Table
	surface Surface
	src     rng.Source
	hooks   *event.Router

	placer placement.Resolver
	cone   scatter.Cone

	pending   []droptable.TemplateID
	timer     time.Duration
	totalReps int
	dropped   []Handle

	statQueued   *atomic.Int64
	statFailed   *atomic.Int64
	statReleased *atomic.Int64
	statPending  *atomic.Int64
	statReps     *atomic.Int64
	statLast     *status.AtomicString
	statNext     *status.AtomicFloat
	statSpread   *status.AtomicFloat
}

// New creates a dispatcher with its own table over catalog
// A nil catalog is accepted; every queue request then fails
func New(catalog *droptable.Catalog, cfg Config, deps Deps) *Dispatcher {
	cfg = cfg.Normalize()

	d := &Dispatcher{
		cfg:     cfg,
		surface: deps.Surface,
		src:     deps.Source,
		hooks:   event.NewRouter(),
	}
	if catalog != nil {
		d.table = catalog.NewTable()
	}
	if d.surface == nil {
		d.surface = nullSurface{}
	}
	if d.src == nil {
		seed, err := rng.NewSeed()
		if err != nil {
			log.Printf("dispatch %s: %v, falling back to fixed seed", cfg.Name, err)
			seed = 1
		}
		d.src = rng.NewPCG(seed)
	}
	d.applyConfig()

	reg := deps.Status
	if reg == nil {
		reg = status.NewRegistry()
	}
	prefix := "drop." + cfg.Name + "."
	d.statQueued = reg.Ints.Get(prefix + "queued")
	d.statFailed = reg.Ints.Get(prefix + "failed")
	d.statReleased = reg.Ints.Get(prefix + "released")
	d.statPending = reg.Ints.Get(prefix + "pending")
	d.statReps = reg.Ints.Get(prefix + "reps")
	d.statLast = reg.Strings.Get(prefix + "last")
	d.statNext = reg.Floats.Get(prefix + "next")
	d.statSpread = reg.Floats.Get(prefix + "spread")

	return d
}

func (d *Dispatcher) applyConfig() {
	d.placer = placement.Resolver{
		Anchor: d.cfg.Anchor,
		Area:   d.cfg.Area,
		Offset: d.cfg.Offset,
		Self:   d.cfg.Self,
	}
	d.cone = scatter.Cone{Base: d.cfg.Throw, HalfAngle: d.cfg.ConeHalfAngle}
}

func (d *Dispatcher) Name() string {
	return d.cfg.Name
}

func (d *Dispatcher) Config() Config {
	return d.cfg
}

// Reconfigure replaces placement, throw, delay and cap settings
// Queue, timer and rep counters are kept
func (d *Dispatcher) Reconfigure(cfg Config) {
	cfg.Name = d.cfg.Name
	d.cfg = cfg.Normalize()
	d.applyConfig()
	d.storeNext()
}

// Table exposes the private table for inspection
func (d *Dispatcher) Table() *droptable.Table {
	return d.table
}

// On registers a listener for a hook
func (d *Dispatcher) On(et event.EventType, fn event.Listener) {
	d.hooks.On(et, fn)
}

// Handle registers a multi-hook handler
func (d *Dispatcher) Handle(h event.Handler) {
	d.hooks.Register(h)
}

// Hooks returns the dispatcher's router
func (d *Dispatcher) Hooks() *event.Router {
	return d.hooks
}

func (d *Dispatcher) State() State {
	if len(d.pending) == 0 {
		return StateIdle
	}
	return StateDraining
}

func (d *Dispatcher) TotalReps() int {
	return d.totalReps
}

// Timer returns time accumulated toward the next release
func (d *Dispatcher) Timer() time.Duration {
	return d.timer
}

// Pending returns a copy of the queue, head first
func (d *Dispatcher) Pending() []droptable.TemplateID {
	out := make([]droptable.TemplateID, len(d.pending))
	copy(out, d.pending)
	return out
}

// Dropped returns handles of released instances not yet destroyed
func (d *Dispatcher) Dropped() []Handle {
	out := make([]Handle, len(d.dropped))
	copy(out, d.dropped)
	return out
}

// CanQueue reports whether the queue preconditions hold
// Resolution itself may still fail when every entry is exhausted
func (d *Dispatcher) CanQueue() bool {
	return d.table != nil && d.table.Len() > 0 && d.cfg.Repetitions.Allows(d.totalReps)
}

// QueueRepetition resolves one repetition and appends it to the queue
// Returns false, after EventFailedDropQueued, when nothing was queued
func (d *Dispatcher) QueueRepetition() bool {
	if !d.CanQueue() {
		d.fail("preconditions not met")
		return false
	}

	drops, ok := d.table.ResolveRepetition(d.src)
	if !ok {
		d.fail("table resolved no entries")
		return false
	}

	queued := 0
	for _, id := range drops {
		if id == "" {
			continue
		}
		d.pending = append(d.pending, id)
		queued++
	}
	if queued == 0 {
		// Entry usage already advanced; the dispatcher cap does not
		d.fail("repetition drew no items")
		return false
	}
	d.totalReps++
	d.statQueued.Add(int64(queued))
	d.statReps.Store(int64(d.totalReps))
	d.statPending.Store(int64(len(d.pending)))
	d.storeNext()

	d.hooks.Emit(event.EventSuccessfulDropQueued)
	if d.totalReps == 1 {
		d.hooks.Emit(event.EventFirstDropQueued)
	}
	if d.cfg.Repetitions.Reached(d.totalReps) {
		d.hooks.Emit(event.EventLastDropQueued)
	}
	return true
}

func (d *Dispatcher) fail(reason string) {
	d.statFailed.Add(1)
	log.Printf("dispatch %s: drop not queued: %s (reps %d)", d.cfg.Name, reason, d.totalReps)
	d.hooks.Emit(event.EventFailedDropQueued)
}

// Advance runs one scheduler tick
// At most one item is released per call, however many delay intervals dt spans
func (d *Dispatcher) Advance(dt time.Duration) {
	if len(d.pending) == 0 {
		return
	}

	d.timer += dt
	if d.timer < d.cfg.Delay {
		d.storeNext()
		return
	}
	d.timer = 0

	head := d.pending[0]
	d.pending[0] = ""
	d.pending = d.pending[1:]
	d.statPending.Store(int64(len(d.pending)))
	d.storeNext()

	d.release(head)
}

// storeNext publishes seconds until the next release; 0 while idle
func (d *Dispatcher) storeNext() {
	if len(d.pending) == 0 {
		d.statNext.Store(0)
		return
	}
	d.statNext.Store(max(d.cfg.Delay-d.timer, 0).Seconds())
}

// release places, instantiates and launches one template
func (d *Dispatcher) release(id droptable.TemplateID) {
	pos := d.placer.Resolve(d.src)
	h := d.surface.Instantiate(id, pos, mgl64.QuatIdent())
	throw := d.cone.Sample(d.src)
	if h != "" {
		d.surface.SetInitialVelocity(h, throw)
		if len(d.dropped) == cap(d.dropped) {
			d.PruneDropped()
		}
		d.dropped = append(d.dropped, h)
	}

	d.statReleased.Add(1)
	d.statLast.Store(string(id))
	d.statSpread.Store(scatter.Deviation(d.cfg.Throw, throw))
	d.hooks.Emit(event.EventPrefabDropped)
}

// ClearPending cancels every queued item and resets the delay timer
// Rep counters are not refunded
func (d *Dispatcher) ClearPending() {
	clear(d.pending)
	d.pending = d.pending[:0]
	d.timer = 0
	d.statPending.Store(0)
	d.statNext.Store(0)
}

// ResetAllReps zeroes the dispatcher counter and every entry's usage
func (d *Dispatcher) ResetAllReps() {
	d.totalReps = 0
	d.statReps.Store(0)
	if d.table != nil {
		d.table.Reset()
	}
}

// DestroyDropped destroys every released instance through the surface
func (d *Dispatcher) DestroyDropped() {
	for _, h := range d.dropped {
		d.surface.Destroy(h)
	}
	d.dropped = d.dropped[:0]
}

// PruneDropped forgets handles the surface no longer holds and returns how many
// were removed
// Only surfaces implementing Tracker can be pruned; others report 0
func (d *Dispatcher) PruneDropped() int {
	tr, ok := d.surface.(Tracker)
	if !ok {
		return 0
	}
	n := len(d.dropped)
	d.dropped = slices.DeleteFunc(d.dropped, func(h Handle) bool { return !tr.Alive(h) })
	return n - len(d.dropped)
}

// PreviewThrow returns the deterministic spawn origin and base throw vector, for tools
// that draw the configured cone
func (d *Dispatcher) PreviewThrow() (origin, throw vmath.Vec3) {
	return d.placer.Preview(), d.cfg.Throw
}
