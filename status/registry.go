package status

import (
	"fmt"
	"sync/atomic"
)

// Registry groups counters, gauges and labels under dotted keys like "drop.chest.released"
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Lines renders every metric as "key=value", ints first, each group key-sorted
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s=%.2f", k, v.Load()))
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		lines = append(lines, fmt.Sprintf("%s=%s", k, v.Load()))
	})
	return lines
}
