package dispatch

import (
	"github.com/lixenwraith/vi-loot/placement"
)

// Proximity queues a repetition every update while Target is strictly closer than
// Distance to Source; dispatcher caps bound how often that succeeds
type Proximity struct {
	Dispatcher *Dispatcher
	Source     placement.Point
	Target     placement.Point
	Distance   float64
}

// Update returns true when a repetition was queued this call
func (p *Proximity) Update() bool {
	if p.Dispatcher == nil || p.Source == nil || p.Target == nil {
		return false
	}
	if !p.InRange() {
		return false
	}
	return p.Dispatcher.QueueRepetition()
}

func (p *Proximity) InRange() bool {
	if p.Source == nil || p.Target == nil {
		return false
	}
	return p.Source.Position().Sub(p.Target.Position()).Len() < p.Distance
}
