package transform

import (
	"slices"

	"github.com/matzehuels/datanate/pkg/dag"
	"github.com/matzehuels/datanate/pkg/errors"
)

// visit states for tier assignment.
const (
	unvisited = iota
	inProgress
	done
)

// frame is one level of the explicit DFS stack: a node and the index of the
// next parent to examine.
type frame struct {
	id   string
	next int
}

// AssignTiers computes the tier of every node in g.
//
// A node without parents (nothing influences it) has tier 0. Any other node
// has tier 1 + max(tier(p)) over its parents. For every edge A -> B this
// guarantees tier(B) > tier(A).
//
// # Algorithm
//
// Memoized depth-first search with an explicit stack and a tri-state marker
// per node (unvisited, in progress, done). Revisiting an in-progress node
// means the dependency chain loops back on itself; AssignTiers then returns
// an [errors.CycleError] whose Path lists the cycle in influence direction,
// starting and ending at the same node. The search never recurses, so graph
// depth is bounded by memory, not by the goroutine stack.
//
// Roots are visited in node insertion order, so the reported cycle is the
// same on every run. The resulting tiers do not depend on visiting order.
//
// AssignTiers does not modify g. Use [AssignLayers] to store the tiers as
// row assignments.
//
// Time complexity is O(V + E).
func AssignTiers(g *dag.DAG) (map[string]int, error) {
	nodes := g.Nodes()
	tiers := make(map[string]int, len(nodes))
	state := make(map[string]int, len(nodes))

	for _, root := range nodes {
		if state[root.ID] == done {
			continue
		}

		stack := []frame{{id: root.ID}}
		state[root.ID] = inProgress

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			parents := g.Parents(top.id)

			if top.next < len(parents) {
				p := parents[top.next]
				top.next++

				switch state[p] {
				case unvisited:
					state[p] = inProgress
					stack = append(stack, frame{id: p})
				case inProgress:
					return nil, &errors.CycleError{Path: cyclePath(stack, p)}
				}
				continue
			}

			tier := 0
			for _, p := range parents {
				if t := tiers[p] + 1; t > tier {
					tier = t
				}
			}
			tiers[top.id] = tier
			state[top.id] = done
			stack = stack[:len(stack)-1]
		}
	}

	return tiers, nil
}

// cyclePath extracts the cycle closed by revisiting id. The stack holds the
// current influenced_by chain (each frame is influenced by the next one), so
// the segment is reversed to read in influence direction.
func cyclePath(stack []frame, id string) []string {
	start := slices.IndexFunc(stack, func(f frame) bool { return f.id == id })
	chain := make([]string, 0, len(stack)-start)
	for _, f := range stack[start+1:] {
		chain = append(chain, f.id)
	}
	slices.Reverse(chain)

	path := make([]string, 0, len(chain)+2)
	path = append(path, id)
	path = append(path, chain...)
	return append(path, id)
}
