// Package transform provides graph algorithms over [dag.DAG].
//
// # Tiers
//
// [AssignTiers] computes each node's depth in the influence DAG: 0 for nodes
// nothing influences, otherwise one more than the deepest influencing node.
// It detects cycles instead of looping and reports them as
// [errors.CycleError].
//
// [AssignLayers] stores the computed tiers as node rows so the graph can be
// walked tier by tier with [dag.DAG.NodesInRow].
//
// [dag.DAG]: https://pkg.go.dev/github.com/matzehuels/datanate/pkg/dag#DAG
// [dag.DAG.NodesInRow]: https://pkg.go.dev/github.com/matzehuels/datanate/pkg/dag#DAG.NodesInRow
// [errors.CycleError]: https://pkg.go.dev/github.com/matzehuels/datanate/pkg/errors#CycleError
package transform
