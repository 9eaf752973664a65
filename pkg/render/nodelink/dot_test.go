package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/datanate/pkg/dag"
)

func tieredGraph(t *testing.T) *dag.DAG {
	t.Helper()
	g := dag.New(nil)
	nodes := []dag.Node{
		{ID: "revenue", Row: 0, Meta: dag.Metadata{"display_name": "Revenue", "category": "growth"}},
		{ID: "signups", Row: 1, Meta: dag.Metadata{"display_name": "Signups"}},
		{ID: "churn", Row: 2},
	}
	for _, n := range nodes {
		if err := g.AddNode(n); err != nil {
			t.Fatal(err)
		}
	}
	_ = g.AddEdge(dag.Edge{From: "revenue", To: "signups"})
	_ = g.AddEdge(dag.Edge{From: "signups", To: "churn"})
	return g
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(tieredGraph(t), Options{})

	for _, want := range []string{
		"digraph G {",
		"subgraph tier_0 {",
		"subgraph tier_2 {",
		`"revenue" [label="Revenue", fillcolor="#FF6B6B"`,
		`"signups" [label="Signups", fillcolor="#FFD93D"`,
		`"churn" [label="churn", fillcolor="#6BCF7F"`,
		`"revenue" -> "signups";`,
		`"signups" -> "churn";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if strings.Index(dot, "tier_0") > strings.Index(dot, "tier_1") {
		t.Error("tiers not in ascending order")
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(tieredGraph(t), Options{Detailed: true})
	if !strings.Contains(dot, `label="Revenue\ntier: 0\ncategory: growth"`) {
		t.Errorf("detailed label missing:\n%s", dot)
	}
}

func TestToDOTDeterministic(t *testing.T) {
	a := ToDOT(tieredGraph(t), Options{Detailed: true})
	b := ToDOT(tieredGraph(t), Options{Detailed: true})
	if a != b {
		t.Error("identical graphs produced different DOT")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	svg := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	got := string(normalizeViewBox(svg))
	if !strings.Contains(got, `viewBox="0 0 100.00 50.00"`) || !strings.Contains(got, `max-width:100px`) {
		t.Errorf("normalized = %s", got)
	}
	if !strings.HasSuffix(got, "<g/></svg>") {
		t.Errorf("body changed: %s", got)
	}

	plain := []byte(`<svg><g/></svg>`)
	if string(normalizeViewBox(plain)) != string(plain) {
		t.Error("svg without viewBox should be unchanged")
	}
}
