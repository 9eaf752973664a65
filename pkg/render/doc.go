// Package render holds what the dashboard renderers share.
//
// # Overview
//
// Rendering is split into two subpackages:
//
//   - [dashboard]: the HTML page embedding the chart payloads, manifest and
//     import map
//   - [nodelink]: a Graphviz diagram of the influence graph, ranked by tier
//
// Both colour metrics by tier using [TierColor], so the badges on the page
// and the nodes of the diagram agree.
//
// [dashboard]: github.com/matzehuels/datanate/pkg/render/dashboard
// [nodelink]: github.com/matzehuels/datanate/pkg/render/nodelink
package render
