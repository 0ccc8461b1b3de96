// Package scene loads sandbox drop sources from YAML
package scene

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/vi-loot/dispatch"
	"github.com/lixenwraith/vi-loot/droptable"
	"github.com/lixenwraith/vi-loot/event"
	"github.com/lixenwraith/vi-loot/placement"
	"github.com/lixenwraith/vi-loot/vmath"
)

//go:embed default.yaml
var defaultScene []byte

// Action names bindable to hooks
const (
	ActionLog     = "log"
	ActionClear   = "clear"
	ActionReset   = "reset"
	ActionDestroy = "destroy"
)

var knownActions = map[string]bool{
	ActionLog:     true,
	ActionClear:   true,
	ActionReset:   true,
	ActionDestroy: true,
}

// Scene is a named set of drop sources
type Scene struct {
	Name    string   `yaml:"name"`
	Player  Vec      `yaml:"player"`
	Sources []Source `yaml:"sources"`
}

// Source describes one dispatcher and its catalog
type Source struct {
	Name        string        `yaml:"name"`
	Repetitions Cap           `yaml:"repetitions"`
	Delay       time.Duration `yaml:"delay"`
	Throw       Vec           `yaml:"throw"`
	Cone        float64       `yaml:"cone"`
	Position    Vec           `yaml:"position"`
	Anchor      *Vec          `yaml:"anchor"`
	Offset      Vec           `yaml:"offset"`
	Area        *Area         `yaml:"area"`
	Proximity   float64       `yaml:"proximity"`
	Static      []string      `yaml:"static"`

	// Hook name to actions, e.g. onLastDropQueued: [log, destroy]
	Hooks map[string][]string `yaml:"hooks"`

	Entries []Entry `yaml:"entries"`
}

// Area is an axis-aligned spawn box
type Area struct {
	Center  Vec `yaml:"center"`
	Extents Vec `yaml:"extents"`
}

// Entry is the YAML form of droptable.Entry
type Entry struct {
	Template string `yaml:"template"`
	Rarity   string `yaml:"rarity"`
	Forced   bool   `yaml:"forced"`
	Weight   int    `yaml:"weight"`
	Amount   Amount `yaml:"amount"`
	Cap      Cap    `yaml:"cap"`
}

// Amount accepts a fixed count or a [min, max] pair
// An omitted amount decodes as exactly one
type Amount struct {
	droptable.AmountRange
	set bool
}

func (a *Amount) UnmarshalYAML(node *yaml.Node) error {
	a.set = true
	switch node.Kind {
	case yaml.ScalarNode:
		var n int
		if err := node.Decode(&n); err != nil {
			return fmt.Errorf("line %d: amount %q: want integer", node.Line, node.Value)
		}
		a.AmountRange = droptable.AmountRange{Min: n, Max: n}
	case yaml.SequenceNode:
		var pair []int
		if err := node.Decode(&pair); err != nil || len(pair) != 2 {
			return fmt.Errorf("line %d: amount range must be [min, max]", node.Line)
		}
		a.AmountRange = droptable.AmountRange{Min: pair[0], Max: pair[1]}
	default:
		return fmt.Errorf("line %d: amount must be an integer or [min, max]", node.Line)
	}
	return nil
}

// Value returns the decoded range, exactly one when omitted
func (a Amount) Value() droptable.AmountRange {
	if !a.set {
		return droptable.AmountRange{Min: 1, Max: 1}
	}
	return a.AmountRange
}

// Vec is a three-component YAML sequence
type Vec [3]float64

func (v Vec) Vec3() vmath.Vec3 { return vmath.Vec3(v) }

// Cap accepts an integer count or the string "unlimited"
// An omitted cap decodes as unlimited
type Cap struct {
	droptable.RepetitionCap
	set bool
}

func (c *Cap) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: cap must be a scalar", node.Line)
	}
	c.set = true
	if strings.EqualFold(node.Value, "unlimited") {
		c.RepetitionCap = droptable.Unlimited
		return nil
	}
	var n int
	if err := node.Decode(&n); err != nil {
		return fmt.Errorf("line %d: cap %q: want integer or unlimited", node.Line, node.Value)
	}
	if n < 0 {
		return fmt.Errorf("line %d: cap %d is negative", node.Line, n)
	}
	c.RepetitionCap = droptable.Limit(n)
	return nil
}

// Value returns the decoded cap, unlimited when omitted
func (c Cap) Value() droptable.RepetitionCap {
	if !c.set {
		return droptable.Unlimited
	}
	return c.RepetitionCap
}

// Load reads and parses a scene file
func Load(path string) (*Scene, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	return Parse(raw)
}

// Default returns the embedded demo scene
func Default() (*Scene, error) {
	return Parse(defaultScene)
}

// Parse decodes and validates a scene document
func Parse(raw []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene %q: %w", s.Name, err)
	}
	return &s, nil
}

// Validate reports every authoring problem in the scene
func (s *Scene) Validate() error {
	if len(s.Sources) == 0 {
		return errors.New("no sources")
	}
	var errs []error
	seen := make(map[string]bool, len(s.Sources))
	for i, src := range s.Sources {
		label := src.Name
		if label == "" {
			errs = append(errs, fmt.Errorf("source %d: missing name", i))
			label = fmt.Sprintf("#%d", i)
		}
		if seen[src.Name] {
			errs = append(errs, fmt.Errorf("source %s: duplicate name", label))
		}
		seen[src.Name] = true

		if err := src.validate(); err != nil {
			errs = append(errs, fmt.Errorf("source %s: %w", label, err))
		}
	}
	return errors.Join(errs...)
}

func (src *Source) validate() error {
	var errs []error
	if src.Delay < 0 {
		errs = append(errs, fmt.Errorf("negative delay %v", src.Delay))
	}
	if src.Cone < 0 || src.Cone > dispatch.MaxConeHalfAngle {
		errs = append(errs, fmt.Errorf("cone %v outside [0, %v]", src.Cone, dispatch.MaxConeHalfAngle))
	}
	if src.Proximity < 0 {
		errs = append(errs, fmt.Errorf("negative proximity %v", src.Proximity))
	}
	for name, actions := range src.Hooks {
		if _, ok := event.GetEventType(name); !ok {
			errs = append(errs, fmt.Errorf("unknown hook %q", name))
		}
		for _, a := range actions {
			if !knownActions[a] {
				errs = append(errs, fmt.Errorf("hook %s: unknown action %q", name, a))
			}
		}
	}
	for i, e := range src.Entries {
		if _, ok := droptable.ParseRarity(e.Rarity); e.Rarity != "" && !ok {
			errs = append(errs, fmt.Errorf("entry %d: unknown rarity %q", i, e.Rarity))
		}
	}
	if err := droptable.Validate(src.entries()); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (src *Source) entries() []droptable.Entry {
	out := make([]droptable.Entry, 0, len(src.Entries))
	for _, e := range src.Entries {
		rarity, _ := droptable.ParseRarity(e.Rarity)
		out = append(out, droptable.Entry{
			Template: droptable.TemplateID(e.Template),
			Rarity:   rarity,
			Forced:   e.Forced,
			Weight:   e.Weight,
			Amount:   e.Amount.Value(),
			Cap:      e.Cap.Value(),
		})
	}
	return out
}

// Catalog builds the source's immutable catalog
func (src *Source) Catalog() *droptable.Catalog {
	return droptable.NewCatalog(src.Name, src.entries()...)
}

// DispatchConfig builds the dispatcher configuration
// An omitted dispatcher cap decodes as unlimited
func (src *Source) DispatchConfig() dispatch.Config {
	cfg := dispatch.Config{
		Name:          src.Name,
		Repetitions:   src.Repetitions.Value(),
		Delay:         src.Delay,
		Offset:        src.Offset.Vec3(),
		Self:          placement.Fixed(src.Position.Vec3()),
		Throw:         src.Throw.Vec3(),
		ConeHalfAngle: src.Cone,
	}
	if src.Anchor != nil {
		cfg.Anchor = placement.Fixed(src.Anchor.Vec3())
	}
	if src.Area != nil {
		cfg.Area = placement.Box{Center: src.Area.Center.Vec3(), Extents: src.Area.Extents.Vec3()}
	}
	return cfg.Normalize()
}

// HookActions returns the actions bound to each hook
func (src *Source) HookActions() map[event.EventType][]string {
	out := make(map[event.EventType][]string, len(src.Hooks))
	for name, actions := range src.Hooks {
		if et, ok := event.GetEventType(name); ok {
			out[et] = append(out[et], actions...)
		}
	}
	return out
}

// StaticTemplates lists templates spawned without a physics body
func (src *Source) StaticTemplates() []droptable.TemplateID {
	out := make([]droptable.TemplateID, len(src.Static))
	for i, s := range src.Static {
		out[i] = droptable.TemplateID(s)
	}
	return out
}
