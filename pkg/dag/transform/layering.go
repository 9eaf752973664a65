package transform

import "github.com/matzehuels/datanate/pkg/dag"

// AssignLayers assigns nodes to rows (layers) equal to their tier.
//
// Each node is placed at one plus the maximum row of any of its parents, so
// that:
//   - Source nodes (no incoming edges) are at row 0
//   - All parents are strictly above their children
//   - Each node is pushed as deep as necessary to avoid parent conflicts
//
// Existing row assignments in the DAG are overwritten. If the graph contains
// a cycle, the error from [AssignTiers] is returned and g is left unchanged.
func AssignLayers(g *dag.DAG) error {
	tiers, err := AssignTiers(g)
	if err != nil {
		return err
	}
	g.SetRows(tiers)
	return nil
}
