package status

import (
	"fmt"
	"sync/atomic"
)

// Registry is the central metrics facade
// Callers cache pointers once; the tick path writes directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Strings.Count()
}

// Snapshot renders every metric as "key=value", strings first, then ints, then bools
// Each group is in sorted key order
func (r *Registry) Snapshot() []string {
	out := make([]string, 0, r.TotalCount())
	r.Strings.Range(func(key string, ptr *AtomicString) {
		out = append(out, fmt.Sprintf("%s=%s", key, ptr.Load()))
	})
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		out = append(out, fmt.Sprintf("%s=%d", key, ptr.Load()))
	})
	r.Bools.Range(func(key string, ptr *atomic.Bool) {
		out = append(out, fmt.Sprintf("%s=%t", key, ptr.Load()))
	})
	return out
}
