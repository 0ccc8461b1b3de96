package droptable

import (
	"fmt"
	"testing"

	"github.com/lixenwraith/vi-loot/rng"
)

func benchCatalog(n int) *Catalog {
	entries := make([]Entry, n)
	for i := range entries {
		entries[i] = Entry{
			Template: TemplateID(fmt.Sprintf("item-%d", i)),
			Forced:   i%10 == 0,
			Weight:   i + 1,
			Amount:   AmountRange{Min: 1, Max: 3},
			Cap:      Unlimited,
		}
	}
	return NewCatalog("bench", entries...)
}

func BenchmarkResolveRepetition(b *testing.B) {
	for _, n := range []int{4, 32, 256} {
		b.Run(fmt.Sprint(n), func(b *testing.B) {
			table := benchCatalog(n).NewTable()
			src := rng.NewPCG(1)
			for b.Loop() {
				table.ResolveRepetition(src)
			}
		})
	}
}
