package status

import (
	"slices"
	"sync"
	"sync/atomic"
)

// MetricMap holds named metrics of type T
// Pointers are stable for the life of the map, so callers look a key up once and keep the pointer
type MetricMap[T any] struct {
	items sync.Map // string -> *T
	count atomic.Int32
}

// NewMetricMap creates an empty MetricMap
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{}
}

// Get returns the metric for key, creating it on first use
func (m *MetricMap[T]) Get(key string) *T {
	if v, ok := m.items.Load(key); ok {
		return v.(*T)
	}
	v, loaded := m.items.LoadOrStore(key, new(T))
	if !loaded {
		m.count.Add(1)
	}
	return v.(*T)
}

// Has reports whether key was ever requested
func (m *MetricMap[T]) Has(key string) bool {
	_, ok := m.items.Load(key)
	return ok
}

// Range visits metrics in sorted key order
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	var keys []string
	m.items.Range(func(k, _ any) bool {
		keys = append(keys, k.(string))
		return true
	})
	slices.Sort(keys)

	for _, k := range keys {
		v, _ := m.items.Load(k)
		fn(k, v.(*T))
	}
}

// Count returns the number of registered metrics
func (m *MetricMap[T]) Count() int {
	return int(m.count.Load())
}
