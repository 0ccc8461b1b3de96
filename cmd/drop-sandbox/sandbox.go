package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-loot/audio"
	"github.com/lixenwraith/vi-loot/config"
	"github.com/lixenwraith/vi-loot/dispatch"
	"github.com/lixenwraith/vi-loot/droptable"
	"github.com/lixenwraith/vi-loot/event"
	"github.com/lixenwraith/vi-loot/parameter"
	"github.com/lixenwraith/vi-loot/rng"
	"github.com/lixenwraith/vi-loot/scene"
	"github.com/lixenwraith/vi-loot/spawn"
	"github.com/lixenwraith/vi-loot/status"
	"github.com/lixenwraith/vi-loot/vmath"
)

// marker is a movable world point
type marker struct {
	pos vmath.Vec3
}

func (m *marker) Position() vmath.Vec3 { return m.pos }

// source is one scene source wired to its dispatcher
type source struct {
	name      string
	disp      *dispatch.Dispatcher
	proximity *dispatch.Proximity
}

type message struct {
	text string
	at   time.Time
}

// Sandbox drives every dispatcher of a scene against an in-memory world
type Sandbox struct {
	screen        tcell.Screen
	width, height int

	scene    *scene.Scene
	settings config.Settings
	world    *spawn.World
	status   *status.Registry
	elapsed  *status.AtomicFloat
	player   *marker
	sound    *audio.Player

	sources  []*source
	selected int
	rarity   map[droptable.TemplateID]droptable.Rarity

	messages []message
	now      func() time.Time
}

// newSandbox wires one dispatcher per scene source
// sound may be nil to run silent
func newSandbox(screen tcell.Screen, sc *scene.Scene, settings config.Settings, sound *audio.Player) (*Sandbox, error) {
	seed := settings.Seed
	if seed == 0 {
		var err error
		if seed, err = rng.NewSeed(); err != nil {
			return nil, fmt.Errorf("seed: %w", err)
		}
	}
	log.Printf("sandbox: scene %q seed %d", sc.Name, seed)

	s := &Sandbox{
		screen:   screen,
		scene:    sc,
		settings: settings,
		world:    spawn.NewWorld(),
		status:   status.NewRegistry(),
		player:   &marker{pos: sc.Player.Vec3()},
		sound:    sound,
		rarity:   make(map[droptable.TemplateID]droptable.Rarity),
		now:      time.Now,
	}
	s.width, s.height = screen.Size()
	s.elapsed = s.status.Floats.Get("sandbox.elapsed")

	for i := range sc.Sources {
		src := &sc.Sources[i]
		s.addSource(src, rng.NewPCG(seed+uint64(i)))
	}
	return s, nil
}

func (s *Sandbox) addSource(src *scene.Source, rs rng.Source) {
	cfg := src.DispatchConfig()
	if d, ok := s.settings.DelayOverride(); ok {
		cfg.Delay = d
	}
	if c, ok := s.settings.ConeOverride(); ok {
		cfg.ConeHalfAngle = c
	}

	catalog := src.Catalog()
	for _, e := range catalog.Entries() {
		s.rarity[e.Template] = e.Rarity
	}
	for _, t := range src.StaticTemplates() {
		s.world.Static[t] = true
	}

	d := dispatch.New(catalog, cfg, dispatch.Deps{
		Surface: s.world,
		Source:  rs,
		Status:  s.status,
	})
	if s.sound != nil {
		d.Handle(s.sound)
	}
	for et, actions := range src.HookActions() {
		for _, a := range actions {
			d.On(et, s.action(d, et, a))
		}
	}

	entry := &source{name: cfg.Name, disp: d}
	if src.Proximity > 0 {
		entry.proximity = &dispatch.Proximity{
			Dispatcher: d,
			Source:     cfg.Self,
			Target:     s.player,
			Distance:   src.Proximity,
		}
	}
	s.sources = append(s.sources, entry)
}

// action binds a scene hook action to a dispatcher operation
func (s *Sandbox) action(d *dispatch.Dispatcher, et event.EventType, name string) event.Listener {
	switch name {
	case scene.ActionClear:
		return d.ClearPending
	case scene.ActionReset:
		return d.ResetAllReps
	case scene.ActionDestroy:
		return d.DestroyDropped
	default:
		return func() {
			s.notef("%s %s (reps %d)", d.Name(), et, d.TotalReps())
		}
	}
}

func (s *Sandbox) notef(format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	log.Printf("sandbox: %s", text)
	s.messages = append(s.messages, message{text: text, at: s.now()})
	if over := len(s.messages) - parameter.MessageLines; over > 0 {
		s.messages = s.messages[over:]
	}
}

// Selected returns the source keyboard actions apply to
func (s *Sandbox) Selected() *source {
	if len(s.sources) == 0 {
		return nil
	}
	return s.sources[s.selected]
}

// step runs one simulation tick
func (s *Sandbox) step(dt time.Duration) {
	dt = min(dt, parameter.MaxFrameDelta)

	for _, src := range s.sources {
		if src.proximity != nil {
			src.proximity.Update()
		}
		src.disp.Advance(dt)
	}
	s.world.Step(dt.Seconds())
	s.elapsed.Add(dt.Seconds())

	evicted := false
	for s.world.Len() > s.settings.MaxInstance {
		h, _ := s.world.Oldest()
		s.world.Destroy(h)
		evicted = true
	}
	if evicted {
		for _, src := range s.sources {
			src.disp.PruneDropped()
		}
	}

	cutoff := s.now().Add(-parameter.MessageTimeout)
	for len(s.messages) > 0 && s.messages[0].at.Before(cutoff) {
		s.messages = s.messages[1:]
	}
}

// handleKey applies one key; returns false to quit
func (s *Sandbox) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyTab:
		if len(s.sources) > 0 {
			s.selected = (s.selected + 1) % len(s.sources)
		}
	case tcell.KeyUp:
		s.player.pos[2] += parameter.PlayerStep
	case tcell.KeyDown:
		s.player.pos[2] -= parameter.PlayerStep
	case tcell.KeyLeft:
		s.player.pos[0] -= parameter.PlayerStep
	case tcell.KeyRight:
		s.player.pos[0] += parameter.PlayerStep
	case tcell.KeyRune:
		return s.handleRune(ev.Rune())
	}
	return true
}

func (s *Sandbox) handleRune(r rune) bool {
	src := s.Selected()
	switch r {
	case 'q':
		return false
	case ' ':
		if src != nil && !src.disp.QueueRepetition() {
			s.notef("%s refused", src.name)
		}
	case 'c':
		if src != nil {
			src.disp.ClearPending()
		}
	case 'r':
		if src != nil {
			src.disp.ResetAllReps()
		}
	case 'd':
		if src != nil {
			src.disp.DestroyDropped()
		}
	case '[', ']':
		if src != nil {
			s.adjustCone(src, r)
		}
	}
	return true
}

// adjustCone widens or narrows the selected cone; queue and reps are kept
func (s *Sandbox) adjustCone(src *source, r rune) {
	cfg := src.disp.Config()
	if r == '[' {
		cfg.ConeHalfAngle -= parameter.ConeStep
	} else {
		cfg.ConeHalfAngle += parameter.ConeStep
	}
	src.disp.Reconfigure(cfg)
	s.notef("%s cone %.0f°", src.name, src.disp.Config().ConeHalfAngle)
}

func (s *Sandbox) handleResize() {
	s.width, s.height = s.screen.Size()
}

// run blocks until quit, ticking at the configured interval
func (s *Sandbox) run() {
	ticker := time.NewTicker(s.settings.Tick)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, parameter.EventQueueSize)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	last := s.now()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !s.handleKey(ev) {
					return
				}
			case *tcell.EventResize:
				s.handleResize()
				s.screen.Sync()
			}

		case <-ticker.C:
			now := s.now()
			s.step(now.Sub(last))
			last = now
			s.draw()
		}
	}
}
