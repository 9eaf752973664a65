package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/datanate/pkg/dag"
	"github.com/matzehuels/datanate/pkg/render"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes the tier and metadata in node labels.
	// When false, only the display name is shown.
	Detailed bool
}

// ToDOT converts an influence graph to Graphviz DOT format. Node rows are
// taken as tiers: nodes of one tier share a rank and are filled with the
// tier colour. The resulting DOT string can be rendered using [RenderSVG].
//
// Output depends only on the graph, so it is stable across runs.
func ToDOT(g *dag.DAG, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"Helvetica\", fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [color=\"#666666\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")

	for _, row := range g.RowIDs() {
		nodes := g.NodesInRow(row)
		fmt.Fprintf(&buf, "\n  subgraph tier_%d {\n    rank=same;\n", row)
		for _, n := range nodes {
			label := fmtLabel(*n, opts.Detailed)
			attrs := fmtAttrs(*n, label)
			fmt.Fprintf(&buf, "    %q [%s];\n", n.ID, strings.Join(attrs, ", "))
		}
		buf.WriteString("  }\n")
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n dag.Node, detailed bool) string {
	name := n.ID
	if dn, ok := n.Meta["display_name"].(string); ok && dn != "" {
		name = dn
	}
	if !detailed {
		return name
	}

	parts := []string{fmt.Sprintf("tier: %d", n.Row)}
	for _, k := range slices.Sorted(maps.Keys(n.Meta)) {
		if k == "display_name" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %v", k, n.Meta[k]))
	}

	return name + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(n dag.Node, label string) []string {
	return []string{
		fmt.Sprintf("label=%q", label),
		fmt.Sprintf("fillcolor=%q", render.TierColor(n.Row)),
		fmt.Sprintf("tooltip=%q", n.ID),
	}
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the root element so the diagram scales with
// its container on the dashboard.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="100%%" style="max-width:%.0fpx">`,
		w, h, w)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
