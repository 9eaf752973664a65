package metric

import (
	"slices"

	"github.com/matzehuels/datanate/pkg/errors"
)

// Registry stores metrics in declaration order.
//
// The zero value is not usable - use NewRegistry.
// Registry is not safe for concurrent mutation; it is filled once and then
// only read.
type Registry struct {
	metrics    map[string]*Metric
	order      []string
	categories []Category
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{metrics: make(map[string]*Metric)}
}

// Add validates and appends a metric. Definition defaults are applied first
// (see [ApplyDefaults]). It returns an INVALID_METRIC error for a bad key, a
// duplicate key, or a definition that fails validation.
func (r *Registry) Add(m Metric) error {
	if err := errors.ValidateMetricKey(m.Key); err != nil {
		return err
	}
	if _, exists := r.metrics[m.Key]; exists {
		return errors.New(errors.ErrCodeInvalidMetric, "metric %q is defined more than once", m.Key)
	}
	ApplyDefaults(m.Key, &m.Definition)
	if err := Validate(m.Key, m.Definition); err != nil {
		return err
	}
	r.metrics[m.Key] = &m
	r.order = append(r.order, m.Key)
	return nil
}

// Get returns the metric with the given key.
func (r *Registry) Get(key string) (*Metric, bool) {
	m, ok := r.metrics[key]
	return m, ok
}

// Has reports whether key names a registered metric.
func (r *Registry) Has(key string) bool {
	_, ok := r.metrics[key]
	return ok
}

// Keys returns metric keys in declaration order.
func (r *Registry) Keys() []string { return slices.Clone(r.order) }

// Metrics returns all metrics in declaration order.
func (r *Registry) Metrics() []*Metric {
	out := make([]*Metric, len(r.order))
	for i, k := range r.order {
		out[i] = r.metrics[k]
	}
	return out
}

// Len returns the number of metrics.
func (r *Registry) Len() int { return len(r.order) }

// SetCategories records the declared category sections.
func (r *Registry) SetCategories(cats []Category) { r.categories = slices.Clone(cats) }

// Categories returns the declared category sections in declaration order.
func (r *Registry) Categories() []Category { return slices.Clone(r.categories) }
