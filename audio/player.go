package audio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-loot/event"
)

// Player mixes cues into a single speaker stream
// Every method is safe before Initialize and after a failed Initialize
type Player struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	initialized bool

	played  atomic.Int64
	dropped atomic.Int64
}

var _ event.Handler = (*Player)(nil)

func NewPlayer(cfg Config) *Player {
	return &Player{
		cfg:   cfg.Normalize(),
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker; no-op when disabled or already open
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Ready reports whether cues reach the speaker
func (p *Player) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Play queues one cue; returns false when audio is not running
func (p *Player) Play(c Cue) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		p.dropped.Add(1)
		return false
	}
	s := Synthesize(c, p.cfg)
	if s == nil {
		p.dropped.Add(1)
		return false
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	p.played.Add(1)
	return true
}

// Played returns cues sent to the speaker
func (p *Player) Played() int64 { return p.played.Load() }

// Dropped returns cues discarded while audio was unavailable
func (p *Player) Dropped() int64 { return p.dropped.Load() }

// HandleEvent maps dispatcher hooks to cues
func (p *Player) HandleEvent(et event.EventType) {
	if c, ok := CueFor(et); ok {
		p.Play(c)
	}
}

func (p *Player) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPrefabDropped,
		event.EventFirstDropQueued,
		event.EventLastDropQueued,
		event.EventFailedDropQueued,
	}
}

// CueFor returns the cue bound to a hook
func CueFor(et event.EventType) (Cue, bool) {
	switch et {
	case event.EventPrefabDropped:
		return CueRelease, true
	case event.EventFirstDropQueued:
		return CueFirst, true
	case event.EventLastDropQueued:
		return CueLast, true
	case event.EventFailedDropQueued:
		return CueFailed, true
	default:
		return 0, false
	}
}

// Close silences the mixer and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.mixer.Clear()
	p.initialized = false
}
