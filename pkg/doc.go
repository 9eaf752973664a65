// Package pkg provides the core libraries for Datanate, a static metrics
// dashboard builder.
//
// # Overview
//
// Datanate reads metric definitions and CSV series, orders metrics into
// tiers by the relationships that influence them, and publishes a single
// dashboard page together with content-hashed assets and vendored ES
// modules. The pkg directory is organized into four main areas:
//
//  1. Domain model: [metric], [dag], [influence], [layout]
//  2. Input and output: [io], [assets], [render]
//  3. Orchestration: [pipeline], [config]
//  4. Support: [errors], [observability], [buildinfo]
//
// # Architecture
//
// The data flow of a build:
//
//	metrics.yaml + data/*.csv
//	         ↓
//	    [io] package (definitions, series → metric.Registry)
//	         ↓
//	    [influence] package (registry → influence DAG)
//	         ↓
//	    [dag/transform] package (tiers, cycle detection)
//	         ↓
//	    [layout] package (category → tier → metric summaries)
//	         ↓
//	    [assets] package (hashed files, vendored modules, import map)
//	         ↓
//	    [render/dashboard] package (index.html)
//
// # Quick Start
//
// Load metrics and compute tiers:
//
//	import (
//	    "github.com/matzehuels/datanate/pkg/dag/transform"
//	    "github.com/matzehuels/datanate/pkg/influence"
//	    "github.com/matzehuels/datanate/pkg/io"
//	    "github.com/matzehuels/datanate/pkg/layout"
//	)
//
//	// 1. Load definitions and series
//	reg, warnings, err := io.LoadRegistry("data/metrics.yaml", "data")
//
//	// 2. Build the influence graph
//	g, more := influence.Build(reg)
//
//	// 3. Assign tiers (fails on a cycle)
//	tiers, err := transform.AssignTiers(g)
//
//	// 4. Group for the page
//	l := layout.Group(reg, tiers)
//
// Or run the whole build:
//
//	result, err := pipeline.NewRunner(logger).Execute(ctx, opts)
//
// # Main Packages
//
// [metric] - Metric definitions, series and the declaration-ordered registry.
//
// [dag] - Directed acyclic graph with insertion-ordered nodes and row
// (tier) assignments. [dag/transform] assigns tiers and reports cycles.
//
// [influence] - Builds the influence graph and relationship lists from a
// registry. Unknown dependencies are dropped with a warning.
//
// [layout] - Groups metrics by category and tier and shapes the JSON
// payloads the page scripts read.
//
// [assets] - Content hashing, stale artifact cleanup, vendored module trees
// and the import map.
//
// [render/dashboard] - The HTML page. [render/nodelink] renders the influence
// diagram with Graphviz.
//
// [pipeline] - The complete build (load → tiers → assets → render) used by
// the CLI.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/dag/...                # Specific package
//	go test -run Example ./pkg/...       # Examples only
//
// [metric]: https://pkg.go.dev/github.com/matzehuels/datanate/pkg/metric
// [dag]: https://pkg.go.dev/github.com/matzehuels/datanate/pkg/dag
// [dag/transform]: https://pkg.go.dev/github.com/matzehuels/datanate/pkg/dag/transform
// [influence]: https://pkg.go.dev/github.com/matzehuels/datanate/pkg/influence
// [layout]: https://pkg.go.dev/github.com/matzehuels/datanate/pkg/layout
// [io]: https://pkg.go.dev/github.com/matzehuels/datanate/pkg/io
// [assets]: https://pkg.go.dev/github.com/matzehuels/datanate/pkg/assets
// [render]: https://pkg.go.dev/github.com/matzehuels/datanate/pkg/render
// [render/dashboard]: https://pkg.go.dev/github.com/matzehuels/datanate/pkg/render/dashboard
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/datanate/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/datanate/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/matzehuels/datanate/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/datanate/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/datanate/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/datanate/pkg/buildinfo
package pkg
