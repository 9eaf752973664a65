package dag_test

import (
	"fmt"

	"github.com/matzehuels/datanate/pkg/dag"
)

func ExampleDAG_basic() {
	// revenue influences signups, signups influences churn
	g := dag.New(nil)
	_ = g.AddNode(dag.Node{ID: "revenue"})
	_ = g.AddNode(dag.Node{ID: "signups"})
	_ = g.AddNode(dag.Node{ID: "churn"})
	_ = g.AddEdge(dag.Edge{From: "revenue", To: "signups"})
	_ = g.AddEdge(dag.Edge{From: "signups", To: "churn"})

	fmt.Println("Nodes:", g.NodeCount())
	fmt.Println("Edges:", g.EdgeCount())
	fmt.Println("Order:", dag.NodeIDs(g.Nodes()))
	// Output:
	// Nodes: 3
	// Edges: 2
	// Order: [revenue signups churn]
}

func ExampleDAG_traversal() {
	g := dag.New(nil)
	_ = g.AddNode(dag.Node{ID: "traffic"})
	_ = g.AddNode(dag.Node{ID: "signups"})
	_ = g.AddNode(dag.Node{ID: "trials"})
	_ = g.AddEdge(dag.Edge{From: "traffic", To: "signups"})
	_ = g.AddEdge(dag.Edge{From: "traffic", To: "trials"})

	fmt.Println("Influences of traffic:", g.Children("traffic"))
	fmt.Println("Influenced by of signups:", g.Parents("signups"))
	fmt.Println("Out-degree of traffic:", g.OutDegree("traffic"))
	// Output:
	// Influences of traffic: [signups trials]
	// Influenced by of signups: [traffic]
	// Out-degree of traffic: 2
}

func ExampleDAG_metadata() {
	g := dag.New(dag.Metadata{"title": "Company metrics"})
	_ = g.AddNode(dag.Node{
		ID: "revenue",
		Meta: dag.Metadata{
			"category":     "growth",
			"display_name": "Revenue",
		},
	})

	node, _ := g.Node("revenue")
	fmt.Println("Metric:", node.ID)
	fmt.Println("Category:", node.Meta["category"])
	// Output:
	// Metric: revenue
	// Category: growth
}
