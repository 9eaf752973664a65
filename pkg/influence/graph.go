// Package influence builds the influence graph of a metric registry.
//
// An edge From -> To means From influences To; it is derived from To's
// influenced_by list. Nodes are added in declaration order so that every
// traversal of the graph is deterministic.
//
// References to metrics that are not in the registry are tolerated: they
// are dropped from the graph and reported as UNKNOWN_DEPENDENCY warnings so
// a typo shows up in the build output instead of silently changing tiers.
package influence

import (
	"slices"

	"github.com/matzehuels/datanate/pkg/dag"
	"github.com/matzehuels/datanate/pkg/errors"
	"github.com/matzehuels/datanate/pkg/metric"
)

// Node metadata keys.
const (
	MetaCategory    = "category"
	MetaDisplayName = "display_name"
)

// Build returns the influence graph of reg with one node per metric.
func Build(reg *metric.Registry) (*dag.DAG, errors.Warnings) {
	var warnings errors.Warnings
	g := dag.New(nil)

	for _, m := range reg.Metrics() {
		_ = g.AddNode(dag.Node{ID: m.Key, Meta: dag.Metadata{
			MetaCategory:    m.Definition.Category,
			MetaDisplayName: m.Definition.DisplayName,
		}})
	}

	for _, m := range reg.Metrics() {
		for _, dep := range m.Definition.InfluencedBy() {
			if !reg.Has(dep) {
				warnings.Add(errors.ErrCodeUnknownDependency, m.Key,
					"unknown dependency %q referenced by metric %q", dep, m.Key)
				continue
			}
			_ = g.AddEdge(dag.Edge{From: dep, To: m.Key})
		}
	}
	return g, warnings
}

// Relationship lists a metric's neighbours in the influence graph.
type Relationship struct {
	Influences   []string `json:"influences"`
	InfluencedBy []string `json:"influenced_by"`
}

// Relationships returns, for every metric, the metrics it influences and
// the known metrics it is influenced by. Both lists are in declaration
// order, free of duplicates and never nil.
func Relationships(reg *metric.Registry) map[string]Relationship {
	out := make(map[string]Relationship, reg.Len())
	for _, key := range reg.Keys() {
		out[key] = Relationship{Influences: []string{}, InfluencedBy: []string{}}
	}

	for _, m := range reg.Metrics() {
		for _, dep := range m.Definition.InfluencedBy() {
			if !reg.Has(dep) {
				continue
			}
			r := out[m.Key]
			if !slices.Contains(r.InfluencedBy, dep) {
				r.InfluencedBy = append(r.InfluencedBy, dep)
				out[m.Key] = r
			}
			d := out[dep]
			if !slices.Contains(d.Influences, m.Key) {
				d.Influences = append(d.Influences, m.Key)
				out[dep] = d
			}
		}
	}
	return out
}
