package pipeline

import (
	"bytes"
	"context"
	"path/filepath"
	"slices"

	"github.com/matzehuels/datanate/pkg/assets"
	"github.com/matzehuels/datanate/pkg/errors"
	pkgio "github.com/matzehuels/datanate/pkg/io"
	"github.com/matzehuels/datanate/pkg/layout"
	"github.com/matzehuels/datanate/pkg/render/dashboard"
	"github.com/matzehuels/datanate/pkg/render/nodelink"
)

// AssetInputs maps options to asset pipeline inputs. Stylesheets come
// first, then scripts, then local modules not already listed as scripts.
// diagram, when non-nil, is published as DiagramAsset.
func AssetInputs(opts Options, diagram []byte) assets.Inputs {
	in := assets.Inputs{
		OutputDir:    opts.OutputDir,
		VendorDir:    opts.VendorDir,
		LocalModules: slices.Clone(opts.LocalModules),
		Reserved:     []string{IndexFile, ManifestFile},
	}

	seen := make(map[string]bool)
	addAsset := func(name string) {
		if seen[name] {
			return
		}
		seen[name] = true
		in.Assets = append(in.Assets, assets.Source{Name: name, Path: filepath.Join(opts.AssetsDir, name)})
	}
	for _, list := range [][]string{opts.Stylesheets, opts.Scripts, opts.LocalModules} {
		for _, name := range list {
			addAsset(name)
		}
	}
	if diagram != nil {
		in.Assets = append(in.Assets, assets.Source{Name: DiagramAsset, Content: diagram})
	}

	for _, name := range opts.VendorModules {
		in.Modules = append(in.Modules, assets.Module{
			Name: name,
			Dir:  filepath.Join(opts.NodeModulesDir, filepath.FromSlash(name), opts.ModuleSourceSubdir),
		})
	}
	for _, name := range opts.StaticFiles {
		in.StaticFiles = append(in.StaticFiles, assets.Source{Name: name, Path: filepath.Join(opts.AssetsDir, name)})
	}
	return in
}

// renderDiagram returns the influence diagram as SVG. A rendering failure
// is recorded as a warning and yields nil so the build goes on without it.
func renderDiagram(ctx context.Context, opts Options, a *Analysis) []byte {
	if !opts.Diagram || a.Graph.NodeCount() == 0 {
		return nil
	}
	dot := nodelink.ToDOT(a.Graph, nodelink.Options{})
	svg, err := nodelink.RenderSVG(ctx, dot)
	if err != nil {
		a.Warnings.Add(errors.ErrCodeInternal, DiagramAsset, "influence diagram not rendered: %v", err)
		return nil
	}
	return svg
}

func publishAssets(ctx context.Context, opts Options, a *Analysis) (*assets.Output, error) {
	diagram := renderDiagram(ctx, opts, a)
	return assets.NewPipeline(opts.Logger).Run(ctx, AssetInputs(opts, diagram))
}

// renderSite writes index.html and manifest.json for a finished asset run.
func renderSite(opts Options, a *Analysis, result *Result) error {
	out := result.Assets
	page := dashboard.Page{
		Title:         opts.Title,
		Layout:        a.Layout,
		Metrics:       layout.MetricsPayload(a.Registry, a.Tiers),
		Relationships: layout.RelationshipsPayload(a.Registry),
		Manifest:      out.Manifest,
		ImportMap:     out.ImportMap,
		Stylesheets:   opts.Stylesheets,
		Scripts:       opts.Scripts,
	}
	if _, ok := out.Manifest[DiagramAsset]; ok {
		page.Diagram = DiagramAsset
	}
	if slices.Contains(out.Static, FaviconFile) {
		page.Favicon = FaviconFile
	}

	var buf bytes.Buffer
	if err := dashboard.Render(&buf, page); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "render dashboard")
	}

	result.IndexPath = filepath.Join(opts.OutputDir, IndexFile)
	if err := pkgio.WriteFile(result.IndexPath, buf.Bytes()); err != nil {
		return err
	}

	result.ManifestPath = filepath.Join(opts.OutputDir, ManifestFile)
	return pkgio.ExportJSON(out.BuildManifest(), result.ManifestPath)
}
