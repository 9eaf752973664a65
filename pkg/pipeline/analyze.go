package pipeline

import (
	"github.com/matzehuels/datanate/pkg/dag/transform"
	"github.com/matzehuels/datanate/pkg/influence"
	pkgio "github.com/matzehuels/datanate/pkg/io"
	"github.com/matzehuels/datanate/pkg/layout"
)

// loadRegistry reads definitions and series into a.
func loadRegistry(opts Options, a *Analysis) error {
	reg, warnings, err := pkgio.LoadRegistry(opts.MetricsFile, opts.DataDir)
	if err != nil {
		return err
	}
	a.Registry = reg
	a.Warnings.Extend(warnings)
	return nil
}

// assignTiers builds the influence graph of a.Registry, stores tiers as
// graph rows and groups the metrics for the page. A cycle leaves a
// without a layout.
func assignTiers(a *Analysis) error {
	g, warnings := influence.Build(a.Registry)
	a.Warnings.Extend(warnings)

	tiers, err := transform.AssignTiers(g)
	if err != nil {
		return err
	}
	g.SetRows(tiers)

	a.Graph = g
	a.Tiers = tiers
	a.Layout = layout.Group(a.Registry, tiers)
	return nil
}
