package droptable

import (
	"errors"
	"fmt"
	"math"
)

// Catalog is an ordered, immutable set of normalized entries
// Order only affects forced-entry output order and tie-breaking of the weighted walk
type Catalog struct {
	name    string
	entries []Entry
}

// NewCatalog copies and normalizes entries
func NewCatalog(name string, entries ...Entry) *Catalog {
	c := &Catalog{
		name:    name,
		entries: make([]Entry, len(entries)),
	}
	for i, e := range entries {
		c.entries[i] = e.Normalize()
	}
	return c
}

func (c *Catalog) Name() string {
	return c.name
}

func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entry returns entry i by value; callers cannot mutate catalog data
func (c *Catalog) Entry(i int) Entry {
	return c.entries[i]
}

// Entries returns a copy of all entries
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// NewTable creates a table with fresh usage counters over this catalog
func (c *Catalog) NewTable() *Table {
	return &Table{
		catalog: c,
		reps:    make([]int, len(c.entries)),
	}
}

// Validate reports authoring problems in raw entries before normalization
// Runtime resolution never requires it; invalid entries are simply skipped
func Validate(entries []Entry) error {
	var errs []error
	total, overflowed := 0, false
	for i, e := range entries {
		if !e.Forced && e.Weight > 0 && !overflowed {
			if e.Weight > math.MaxInt-total {
				errs = append(errs, fmt.Errorf("entry[%d] %q: total weight overflows int", i, e.Template))
				overflowed = true
			} else {
				total += e.Weight
			}
		}
		if !e.HasTemplate() {
			errs = append(errs, fmt.Errorf("entry[%d]: missing template", i))
		}
		if e.Weight < 0 {
			errs = append(errs, fmt.Errorf("entry[%d] %q: negative weight %d", i, e.Template, e.Weight))
		}
		if e.Amount.Min < 0 || e.Amount.Max < 0 {
			errs = append(errs, fmt.Errorf("entry[%d] %q: negative amount %d..%d", i, e.Template, e.Amount.Min, e.Amount.Max))
		}
		if e.Amount.Min > e.Amount.Max {
			errs = append(errs, fmt.Errorf("entry[%d] %q: amount min %d > max %d", i, e.Template, e.Amount.Min, e.Amount.Max))
		}
		if !e.Cap.Unlimited && e.Cap.Count < 0 {
			errs = append(errs, fmt.Errorf("entry[%d] %q: negative cap %d", i, e.Template, e.Cap.Count))
		}
	}
	return errors.Join(errs...)
}
