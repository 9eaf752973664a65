package dag

import (
	"errors"
	"slices"
	"testing"
)

func TestAddNode(t *testing.T) {
	g := New(nil)

	if err := g.AddNode(Node{ID: "revenue"}); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if err := g.AddNode(Node{ID: ""}); !errors.Is(err, ErrInvalidNodeID) {
		t.Errorf("AddNode(empty) = %v, want ErrInvalidNodeID", err)
	}
	if err := g.AddNode(Node{ID: "revenue"}); !errors.Is(err, ErrDuplicateNodeID) {
		t.Errorf("AddNode(dup) = %v, want ErrDuplicateNodeID", err)
	}

	n, ok := g.Node("revenue")
	if !ok {
		t.Fatal("Node(revenue) not found")
	}
	if n.Meta == nil {
		t.Error("Meta should be initialized")
	}
}

func TestAddEdge(t *testing.T) {
	g := New(nil)
	_ = g.AddNode(Node{ID: "a"})
	_ = g.AddNode(Node{ID: "b"})

	if err := g.AddEdge(Edge{From: "x", To: "b"}); !errors.Is(err, ErrUnknownSourceNode) {
		t.Errorf("AddEdge(unknown from) = %v, want ErrUnknownSourceNode", err)
	}
	if err := g.AddEdge(Edge{From: "a", To: "x"}); !errors.Is(err, ErrUnknownTargetNode) {
		t.Errorf("AddEdge(unknown to) = %v, want ErrUnknownTargetNode", err)
	}

	if err := g.AddEdge(Edge{From: "a", To: "b"}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if err := g.AddEdge(Edge{From: "a", To: "b"}); err != nil {
		t.Fatalf("AddEdge (repeat): %v", err)
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1 (duplicate edges collapse)", g.EdgeCount())
	}
	if got := g.Children("a"); !slices.Equal(got, []string{"b"}) {
		t.Errorf("Children(a) = %v", got)
	}
	if got := g.Parents("b"); !slices.Equal(got, []string{"a"}) {
		t.Errorf("Parents(b) = %v", got)
	}
	if g.InDegree("b") != 1 || g.OutDegree("a") != 1 {
		t.Errorf("degrees: in(b)=%d out(a)=%d", g.InDegree("b"), g.OutDegree("a"))
	}
}

func TestNodesKeepInsertionOrder(t *testing.T) {
	g := New(nil)
	for _, id := range []string{"c", "a", "b", "e", "d"} {
		_ = g.AddNode(Node{ID: id})
	}
	_ = g.AddEdge(Edge{From: "c", To: "d"})

	if got := NodeIDs(g.Nodes()); !slices.Equal(got, []string{"c", "a", "b", "e", "d"}) {
		t.Errorf("Nodes() = %v", got)
	}
	if got := NodeIDs(g.Sources()); !slices.Equal(got, []string{"c", "a", "b", "e"}) {
		t.Errorf("Sources() = %v", got)
	}
	if got := NodeIDs(g.Sinks()); !slices.Equal(got, []string{"a", "b", "e", "d"}) {
		t.Errorf("Sinks() = %v", got)
	}
}

func TestSetRows(t *testing.T) {
	g := New(nil)
	for _, id := range []string{"c", "a", "b"} {
		_ = g.AddNode(Node{ID: id})
	}

	g.SetRows(map[string]int{"a": 1, "b": 2})

	if got := NodeIDs(g.NodesInRow(0)); !slices.Equal(got, []string{"c"}) {
		t.Errorf("row 0 = %v", got)
	}
	if got := NodeIDs(g.NodesInRow(1)); !slices.Equal(got, []string{"a"}) {
		t.Errorf("row 1 = %v", got)
	}
	if g.RowCount() != 3 || g.MaxRow() != 2 {
		t.Errorf("RowCount=%d MaxRow=%d", g.RowCount(), g.MaxRow())
	}
	if got := g.RowIDs(); !slices.Equal(got, []int{0, 1, 2}) {
		t.Errorf("RowIDs() = %v", got)
	}
}

func TestEmptyGraph(t *testing.T) {
	g := New(nil)
	if g.NodeCount() != 0 || g.EdgeCount() != 0 || g.MaxRow() != 0 {
		t.Error("empty graph should have no nodes, edges or rows")
	}
	if g.Sources() != nil {
		t.Error("Sources() of empty graph should be nil")
	}
}
