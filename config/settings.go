package config

import (
	"fmt"
	"time"
)

// Settings drives cmd/drop-sandbox
// Zero Seed means a crypto-random seed per run
type Settings struct {
	Seed        uint64        `env:"DROP_SEED" envDefault:"0"`
	Tick        time.Duration `env:"DROP_TICK" envDefault:"16ms"`
	Delay       time.Duration `env:"DROP_DELAY" envDefault:"-1ns"`
	Cone        float64       `env:"DROP_CONE" envDefault:"-1"`
	Audio       bool          `env:"DROP_AUDIO" envDefault:"false"`
	Volume      float64       `env:"DROP_VOLUME" envDefault:"0.5"`
	Scene       string        `env:"DROP_SCENE"`
	Debug       bool          `env:"DROP_DEBUG" envDefault:"false"`
	MaxInstance int           `env:"DROP_MAX_INSTANCES" envDefault:"512"`
}

// Tick bounds
const (
	MinTick = time.Millisecond
	MaxTick = time.Second
)

// Load parses Settings from the environment and validates them
func Load() (Settings, error) {
	var s Settings
	if err := ParseEnv(&s); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate rejects settings the sandbox cannot run with
func (s Settings) Validate() error {
	if s.Tick < MinTick || s.Tick > MaxTick {
		return fmt.Errorf("tick %v outside [%v, %v]", s.Tick, MinTick, MaxTick)
	}
	if s.Volume < 0 || s.Volume > 1 {
		return fmt.Errorf("volume %v outside [0, 1]", s.Volume)
	}
	if s.MaxInstance <= 0 {
		return fmt.Errorf("max instances must be positive, got %d", s.MaxInstance)
	}
	return nil
}

// DelayOverride returns the delay to force on every scene source, if set
func (s Settings) DelayOverride() (time.Duration, bool) {
	return s.Delay, s.Delay >= 0
}

// ConeOverride returns the cone half-angle to force on every scene source, if set
func (s Settings) ConeOverride() (float64, bool) {
	return s.Cone, s.Cone >= 0
}
