// Package audio synthesizes short cues for dispatcher hooks and plays them through
// the system speaker
package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Cue identifies a synthesized sound
type Cue int

const (
	CueRelease Cue = iota // Item left the queue
	CueFirst              // First repetition queued
	CueLast               // Dispatcher cap reached
	CueFailed             // Queue request refused
	cueCount
)

var cueNames = [cueCount]string{"release", "first", "last", "failed"}

func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}

// Cue timings
const (
	releaseDuration = 90 * time.Millisecond
	releaseAttack   = 4 * time.Millisecond
	releaseRelease  = 60 * time.Millisecond

	chimeNoteDuration = 80 * time.Millisecond
	chimeAttack       = 5 * time.Millisecond
	chimeRelease      = 50 * time.Millisecond

	failDuration = 140 * time.Millisecond
	failAttack   = 5 * time.Millisecond
	failRelease  = 40 * time.Millisecond
)

// Config holds playback settings
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0..1
	SampleRate   int
	Volumes      [cueCount]float64
}

func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		Volumes:      [cueCount]float64{0.6, 0.5, 0.7, 0.4},
	}
}

// Normalize clamps volumes to 0..1 and fixes a non-positive sample rate
func (c Config) Normalize() Config {
	c.MasterVolume = clamp01(c.MasterVolume)
	for i := range c.Volumes {
		c.Volumes[i] = clamp01(c.Volumes[i])
	}
	if c.SampleRate <= 0 {
		c.SampleRate = DefaultConfig().SampleRate
	}
	return c
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}

// Duration returns the length of a cue
func Duration(c Cue) time.Duration {
	switch c {
	case CueRelease:
		return releaseDuration
	case CueFirst, CueLast:
		return 2 * chimeNoteDuration
	case CueFailed:
		return failDuration
	default:
		return 0
	}
}

// Synthesize builds a fresh streamer for one playback of c, nil for unknown cues
func Synthesize(c Cue, cfg Config) beep.Streamer {
	if c < 0 || c >= cueCount {
		return nil
	}
	rate := beep.SampleRate(cfg.SampleRate)

	var s beep.Streamer
	switch c {
	case CueRelease:
		// Upward pop plus a breath of noise
		pop := NewEnvelope(NewSweep(420, 980, releaseDuration, rate), releaseDuration, releaseAttack, releaseRelease, rate)
		air := NewEnvelope(NewOscillator(0, releaseDuration, WaveNoise, rate), releaseDuration, releaseAttack, releaseRelease, rate)
		s = beep.Mix(newVolume(pop, 0.8), newVolume(air, 0.15))
	case CueFirst:
		s = chime(rate, 659.25, 987.77) // E5 then B5
	case CueLast:
		s = chime(rate, 987.77, 1318.51) // B5 then E6
	case CueFailed:
		osc := NewOscillator(110, failDuration, WaveSaw, rate)
		s = NewEnvelope(osc, failDuration, failAttack, failRelease, rate)
	}

	return newVolume(s, cfg.Volumes[c]*cfg.MasterVolume)
}

// chime is a two-note square sequence
func chime(rate beep.SampleRate, f1, f2 float64) beep.Streamer {
	n1 := NewEnvelope(NewOscillator(f1, chimeNoteDuration, WaveSquare, rate), chimeNoteDuration, chimeAttack, chimeRelease, rate)
	n2 := NewEnvelope(NewOscillator(f2, chimeNoteDuration, WaveSquare, rate), chimeNoteDuration, chimeAttack, chimeRelease, rate)
	return beep.Seq(n1, n2)
}
