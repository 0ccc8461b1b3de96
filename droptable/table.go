package droptable

import (
	"log"
	"math"

	"github.com/lixenwraith/vi-loot/rng"
)

// Table is a catalog plus usage counters owned by a single consumer
// Not safe for concurrent use
type Table struct {
	catalog *Catalog
	reps    []int // Repetitions each entry was selected in, indexed like catalog entries
}

func (t *Table) Catalog() *Catalog {
	return t.catalog
}

func (t *Table) Len() int {
	return t.catalog.Len()
}

// Reps returns how many repetitions have selected entry i
func (t *Table) Reps(i int) int {
	return t.reps[i]
}

// Usable reports whether entry i can take part in the next repetition
func (t *Table) Usable(i int) bool {
	e := t.catalog.entries[i]
	return e.HasTemplate() && e.Cap.Allows(t.reps[i])
}

// Exhausted reports whether no entry can take part in any further repetition
func (t *Table) Exhausted() bool {
	for i := range t.catalog.entries {
		if t.Usable(i) {
			return false
		}
	}
	return true
}

// Reset zeroes every usage counter
func (t *Table) Reset() {
	clear(t.reps)
}

// Clone returns a table sharing the catalog with an independent copy of usage
func (t *Table) Clone() *Table {
	reps := make([]int, len(t.reps))
	copy(reps, t.reps)
	return &Table{catalog: t.catalog, reps: reps}
}

// ResolveRepetition selects forced entries plus at most one weighted pick and expands
// them into a flat spawn list
//
// ok is false when nothing was selected; usage is untouched in that case. An empty
// list with ok true means entries were selected but every amount drew zero.
func (t *Table) ResolveRepetition(src rng.Source) (drops []TemplateID, ok bool) {
	selected := t.selectEntries(src)
	if len(selected) == 0 {
		return nil, false
	}

	drops = make([]TemplateID, 0, len(selected))
	for _, i := range selected {
		e := t.catalog.entries[i]
		n := e.Amount.Draw(src)
		for k := 0; k < n; k++ {
			drops = append(drops, e.Template)
		}
		t.reps[i]++
	}
	return drops, true
}

// selectEntries returns catalog indices for this repetition: forced first in catalog
// order, then the weighted pick
func (t *Table) selectEntries(src rng.Source) []int {
	var selected []int
	for i, e := range t.catalog.entries {
		if e.Forced && t.Usable(i) {
			selected = append(selected, i)
		}
	}
	if i, ok := t.pickWeighted(src); ok {
		selected = append(selected, i)
	}
	return selected
}

// pickWeighted runs a cumulative-weight roulette over usable non-forced entries
func (t *Table) pickWeighted(src rng.Source) (int, bool) {
	total := 0
	candidates := 0
	for i, e := range t.catalog.entries {
		if e.Forced || !t.Usable(i) {
			continue
		}
		candidates++
		total = addWeight(total, e.Weight)
	}
	if total <= 0 {
		if candidates > 0 {
			log.Printf("droptable %q: %d weighted candidates share zero total weight, no pick", t.catalog.name, candidates)
		}
		return 0, false
	}

	r := src.IntN(total)
	cumulative := 0
	for i, e := range t.catalog.entries {
		if e.Forced || !t.Usable(i) {
			continue
		}
		cumulative = addWeight(cumulative, e.Weight)
		if cumulative > r {
			return i, true
		}
	}
	// Unreachable while IntN honors [0, total)
	return 0, false
}

// addWeight saturates at math.MaxInt
// Past saturation, later entries lose their share; Validate reports such tables
func addWeight(sum, w int) int {
	if w > math.MaxInt-sum {
		return math.MaxInt
	}
	return sum + w
}
