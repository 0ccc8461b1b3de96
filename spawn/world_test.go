package spawn

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/lixenwraith/vi-loot/dispatch"
	"github.com/lixenwraith/vi-loot/droptable"
	"github.com/lixenwraith/vi-loot/rng"
	"github.com/lixenwraith/vi-loot/vmath"
)

func TestInstantiateHandles(t *testing.T) {
	w := NewWorld()
	a := w.Instantiate("coin", vmath.Vec3{1, 2, 3}, mgl64.QuatIdent())
	b := w.Instantiate("coin", vmath.Vec3{}, mgl64.QuatIdent())

	if a == b {
		t.Fatal("duplicate handles")
	}
	if _, err := uuid.Parse(string(a)); err != nil {
		t.Errorf("handle %q not a uuid: %v", a, err)
	}
	inst, ok := w.Get(a)
	if !ok || inst.Template != "coin" || inst.Position != (vmath.Vec3{1, 2, 3}) {
		t.Errorf("instance = %+v", inst)
	}
	if w.Len() != 2 || w.Spawned() != 2 {
		t.Errorf("len=%d spawned=%d", w.Len(), w.Spawned())
	}
}

func TestStaticTemplateIgnoresVelocity(t *testing.T) {
	w := NewWorld()
	w.Static["banner"] = true
	h := w.Instantiate("banner", vmath.Vec3{0, 5, 0}, mgl64.QuatIdent())
	w.SetInitialVelocity(h, vmath.Vec3{3, 3, 3})
	w.Step(1)

	inst, _ := w.Get(h)
	if inst.Velocity != (vmath.Vec3{}) || inst.Position != (vmath.Vec3{0, 5, 0}) {
		t.Errorf("static instance moved: %+v", inst)
	}

	w.SetInitialVelocity("missing", vmath.Vec3{1, 0, 0})
}

func TestStepFallsAndSettles(t *testing.T) {
	w := NewWorld()
	h := w.Instantiate("coin", vmath.Vec3{0, 2, 0}, mgl64.QuatIdent())
	w.SetInitialVelocity(h, vmath.Vec3{1, 4, 0})

	inst, _ := w.Get(h)
	bounced := false
	for i := 0; i < 2000 && !inst.Grounded; i++ {
		prevVY := inst.Velocity[1]
		w.Step(1.0 / 60)
		if inst.Position[1] < 0 {
			t.Fatalf("fell through ground: %v", inst.Position)
		}
		if prevVY < 0 && inst.Velocity[1] > 0 {
			bounced = true
		}
	}
	if !inst.Grounded {
		t.Fatal("never settled")
	}
	if !bounced {
		t.Error("expected at least one bounce")
	}
	if inst.Position[0] <= 0 {
		t.Errorf("horizontal velocity not integrated: %v", inst.Position)
	}

	rest := inst.Position
	w.Step(1)
	if inst.Position != rest {
		t.Error("grounded instance moved")
	}
}

func TestStepNonPositiveDt(t *testing.T) {
	w := NewWorld()
	h := w.Instantiate("coin", vmath.Vec3{0, 1, 0}, mgl64.QuatIdent())
	w.SetInitialVelocity(h, vmath.Vec3{0, 1, 0})
	w.Step(0)
	w.Step(-1)
	if inst, _ := w.Get(h); inst.Position != (vmath.Vec3{0, 1, 0}) || inst.Age != 0 {
		t.Errorf("moved on non-positive dt: %+v", inst)
	}
}

func TestDestroyKeepsOrder(t *testing.T) {
	w := NewWorld()
	var hs []dispatch.Handle
	for _, id := range []droptable.TemplateID{"a", "b", "c"} {
		hs = append(hs, w.Instantiate(id, vmath.Vec3{}, mgl64.QuatIdent()))
	}
	w.Destroy(hs[1])
	w.Destroy(hs[1])

	var got []droptable.TemplateID
	w.Each(func(inst *Instance) { got = append(got, inst.Template) })
	if len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Errorf("order after destroy = %v", got)
	}

	w.Clear()
	if w.Len() != 0 || w.Spawned() != 3 {
		t.Errorf("len=%d spawned=%d after clear", w.Len(), w.Spawned())
	}
}

func TestDispatcherDrivesWorld(t *testing.T) {
	cat := droptable.NewCatalog("chest",
		droptable.Entry{Template: "gold", Forced: true, Amount: droptable.AmountRange{Min: 3, Max: 3}, Cap: droptable.Unlimited},
	)
	cfg := dispatch.DefaultConfig("chest")
	cfg.Throw = vmath.Vec3{0, 6, 0}
	cfg.ConeHalfAngle = 30

	w := NewWorld()
	d := dispatch.New(cat, cfg, dispatch.Deps{Surface: w, Source: rng.NewPCG(11)})
	d.QueueRepetition()
	for i := 0; i < 3; i++ {
		d.Advance(0)
	}
	if w.Len() != 3 {
		t.Fatalf("world holds %d instances", w.Len())
	}
	w.Each(func(inst *Instance) {
		if inst.Velocity[1] <= 0 {
			t.Errorf("instance not launched upward: %v", inst.Velocity)
		}
	})

	d.DestroyDropped()
	if w.Len() != 0 {
		t.Errorf("destroy left %d instances", w.Len())
	}
}

func TestNonFiniteVelocityIgnored(t *testing.T) {
	w := NewWorld()
	h := w.Instantiate("coin", vmath.Vec3{}, mgl64.QuatIdent())
	w.SetInitialVelocity(h, vmath.Vec3{0, math.Inf(1), 0})
	w.SetInitialVelocity(h, vmath.Vec3{math.NaN(), 1, 0})
	if inst, _ := w.Get(h); inst.Velocity != (vmath.Vec3{}) {
		t.Errorf("velocity = %v, want zero", inst.Velocity)
	}
}

func TestPruneAfterExternalDestroy(t *testing.T) {
	cat := droptable.NewCatalog("fountain",
		droptable.Entry{Template: "gem", Forced: true, Amount: droptable.AmountRange{Min: 4, Max: 4}, Cap: droptable.Unlimited},
	)
	w := NewWorld()
	d := dispatch.New(cat, dispatch.DefaultConfig("fountain"), dispatch.Deps{Surface: w, Source: rng.NewPCG(2)})
	d.QueueRepetition()
	for i := 0; i < 4; i++ {
		d.Advance(0)
	}

	for i := 0; i < 3; i++ {
		h, _ := w.Oldest()
		w.Destroy(h)
	}
	if !w.Alive(d.Dropped()[3]) || w.Alive(d.Dropped()[0]) {
		t.Fatal("Alive disagrees with destroy")
	}
	if n := d.PruneDropped(); n != 3 {
		t.Errorf("pruned %d, want 3", n)
	}
	if got := d.Dropped(); len(got) != 1 || !w.Alive(got[0]) {
		t.Errorf("dropped after prune = %v", got)
	}
}

func TestOldest(t *testing.T) {
	w := NewWorld()
	if _, ok := w.Oldest(); ok {
		t.Fatal("empty world has an oldest instance")
	}
	first := w.Instantiate("a", vmath.Vec3{}, mgl64.QuatIdent())
	w.Instantiate("b", vmath.Vec3{}, mgl64.QuatIdent())
	if h, ok := w.Oldest(); !ok || h != first {
		t.Errorf("oldest = %v %v", h, ok)
	}
}
