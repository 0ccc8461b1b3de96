// Package droptable resolves weighted drop catalogs into spawn lists, one repetition
// at a time
//
// A Catalog is immutable template data shared by every consumer. A Table pairs a
// catalog with private usage counters; each dispatcher owns exactly one Table.
package droptable

import (
	"fmt"

	"github.com/lixenwraith/vi-loot/rng"
)

// TemplateID is an opaque handle to a spawnable object definition
// The empty id marks an entry as permanently invalid
type TemplateID string

// Rarity is a display-only tag; selection ignores it
type Rarity uint8

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityEpic
	RarityLegendary
	RarityCount // Sentinel
)

var rarityNames = [RarityCount]string{
	RarityCommon:    "common",
	RarityUncommon:  "uncommon",
	RarityRare:      "rare",
	RarityEpic:      "epic",
	RarityLegendary: "legendary",
}

func (r Rarity) String() string {
	if r < RarityCount {
		return rarityNames[r]
	}
	return fmt.Sprintf("rarity(%d)", uint8(r))
}

// ParseRarity maps a rarity name back to its tag
func ParseRarity(s string) (Rarity, bool) {
	for i, name := range rarityNames {
		if name == s {
			return Rarity(i), true
		}
	}
	return RarityCommon, false
}

// AmountRange is the inclusive number of copies produced when an entry is selected
type AmountRange struct {
	Min, Max int
}

// Normalize clamps both bounds to >= 0 and raises Max to Min when inverted
func (a AmountRange) Normalize() AmountRange {
	if a.Min < 0 {
		a.Min = 0
	}
	if a.Max < a.Min {
		a.Max = a.Min
	}
	return a
}

// Draw returns a uniform amount in [Min, Max]
func (a AmountRange) Draw(src rng.Source) int {
	return rng.IntRange(src, a.Min, a.Max)
}

// RepetitionCap limits how many repetitions may select an entry (or use a dispatcher)
type RepetitionCap struct {
	Count     int
	Unlimited bool
}

// Unlimited is the cap that never exhausts
var Unlimited = RepetitionCap{Unlimited: true}

// Limit returns a finite cap of n repetitions
func Limit(n int) RepetitionCap {
	return RepetitionCap{Count: n}
}

// Allows reports whether another repetition fits under the cap after done repetitions
func (c RepetitionCap) Allows(done int) bool {
	return c.Unlimited || done < c.Count
}

// Reached reports whether done lands exactly on a finite cap
func (c RepetitionCap) Reached(done int) bool {
	return !c.Unlimited && done == c.Count
}

// Entry is a single catalog line
type Entry struct {
	Template TemplateID
	Rarity   Rarity
	Forced   bool
	Weight   int
	Amount   AmountRange
	Cap      RepetitionCap
}

// Normalize clamps authoring mistakes into the invariants the selector relies on
func (e Entry) Normalize() Entry {
	if e.Weight < 0 {
		e.Weight = 0
	}
	if e.Cap.Count < 0 {
		e.Cap.Count = 0
	}
	e.Amount = e.Amount.Normalize()
	return e
}

// HasTemplate reports whether the entry references a spawnable definition
func (e Entry) HasTemplate() bool {
	return e.Template != ""
}
