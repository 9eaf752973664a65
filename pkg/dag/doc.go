// Package dag provides a small directed graph used to model influence
// relationships between metrics.
//
// # Overview
//
// Every metric is a [Node]. An [Edge] From -> To means "From influences To";
// equivalently, To lists From in its influenced_by set. Nodes are kept in
// insertion order, which is the order metrics are declared in the definition
// file, so every traversal of the graph is deterministic.
//
// Nodes carry a Row. After tier assignment (see package transform) the row
// of a node is its tier: 0 for metrics without dependencies, otherwise one
// more than the deepest dependency.
//
// # Basic Usage
//
//	g := dag.New(nil)
//	g.AddNode(dag.Node{ID: "revenue"})
//	g.AddNode(dag.Node{ID: "signups"})
//	g.AddEdge(dag.Edge{From: "revenue", To: "signups"})
//
// The graph does not reject cycles on insertion. [transform.AssignTiers]
// detects them and reports the offending path.
//
// [transform.AssignTiers]: https://pkg.go.dev/github.com/matzehuels/datanate/pkg/dag/transform#AssignTiers
package dag
