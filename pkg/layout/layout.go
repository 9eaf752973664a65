// Package layout groups tiered metrics into dashboard sections and builds
// the JSON payloads consumed by the client-side charts.
//
// A [Layout] is a two-level grouping: category, then tier. Within a tier,
// metrics keep the order in which they were declared.
package layout

import (
	"slices"

	"github.com/matzehuels/datanate/pkg/metric"
)

// Summary is the per-metric data the renderer needs to lay out a card.
type Summary struct {
	ID     string            `json:"id"`
	Config metric.Definition `json:"config"`
	// LatestValue is nil when the series is empty. A nil value is never
	// shown as zero.
	LatestValue *float64 `json:"latest_value"`
	DataPoints  int      `json:"data_points"`
	Tier        int      `json:"tier"`
}

// HasData reports whether the metric has at least one data point.
func (s Summary) HasData() bool { return s.LatestValue != nil }

// TierGroup holds the metrics of one tier within a category.
type TierGroup struct {
	Tier    int       `json:"tier"`
	Metrics []Summary `json:"metrics"`
}

// Section is one dashboard category with its tiers in ascending order.
type Section struct {
	Key         string      `json:"key"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Tiers       []TierGroup `json:"tiers"`
}

// Layout is the grouped view of all metrics.
type Layout struct {
	Sections []Section `json:"sections"`
}

// Section returns the section with the given category key.
func (l Layout) Section(key string) (Section, bool) {
	for _, s := range l.Sections {
		if s.Key == key {
			return s, true
		}
	}
	return Section{}, false
}

// MetricCount returns the number of metrics across all sections.
func (l Layout) MetricCount() int {
	n := 0
	for _, s := range l.Sections {
		for _, t := range s.Tiers {
			n += len(t.Metrics)
		}
	}
	return n
}

// Group arranges the metrics of reg by category and tier. Metrics missing
// from tiers are placed in tier 0.
//
// Declared categories come first in declaration order; categories used by
// metrics but not declared follow in order of first use, named by their
// key. Declared categories without metrics are left out.
func Group(reg *metric.Registry, tiers map[string]int) Layout {
	byCategory := make(map[string]map[int][]Summary)
	var used []string

	for _, m := range reg.Metrics() {
		cat := m.Definition.Category
		if _, ok := byCategory[cat]; !ok {
			byCategory[cat] = make(map[int][]Summary)
			used = append(used, cat)
		}
		s := summarize(m, tiers[m.Key])
		byCategory[cat][s.Tier] = append(byCategory[cat][s.Tier], s)
	}

	var l Layout
	declared := make(map[string]bool)
	for _, c := range reg.Categories() {
		declared[c.Key] = true
		group, ok := byCategory[c.Key]
		if !ok {
			continue
		}
		name := c.Name
		if name == "" {
			name = c.Key
		}
		l.Sections = append(l.Sections, Section{
			Key:         c.Key,
			Name:        name,
			Description: c.Description,
			Tiers:       tierGroups(group),
		})
	}
	for _, cat := range used {
		if declared[cat] {
			continue
		}
		l.Sections = append(l.Sections, Section{Key: cat, Name: cat, Tiers: tierGroups(byCategory[cat])})
	}
	return l
}

func summarize(m *metric.Metric, tier int) Summary {
	s := Summary{
		ID:         m.Key,
		Config:     m.Definition,
		DataPoints: len(m.Series),
		Tier:       tier,
	}
	if p, ok := m.Latest(); ok {
		v := p.Value
		s.LatestValue = &v
	}
	return s
}

func tierGroups(byTier map[int][]Summary) []TierGroup {
	keys := make([]int, 0, len(byTier))
	for t := range byTier {
		keys = append(keys, t)
	}
	slices.Sort(keys)

	groups := make([]TierGroup, len(keys))
	for i, t := range keys {
		groups[i] = TierGroup{Tier: t, Metrics: byTier[t]}
	}
	return groups
}
