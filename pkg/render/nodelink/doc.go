// Package nodelink renders the influence graph as a node-link diagram.
//
// # Overview
//
// Metrics appear as rounded boxes connected by arrows from the influencing
// metric to the influenced one. Each tier is one rank of the diagram, and
// nodes are filled with the tier colour from package render.
//
// # Usage
//
// Assign tiers as rows first, then convert and render:
//
//	_ = transform.AssignLayers(g)
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// The build passes the SVG through the asset pipeline as influence.svg, so
// the diagram is content-hashed like every other asset. The tiers command
// prints the DOT source directly for use with external Graphviz tools.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; no Graphviz installation is needed.
package nodelink
