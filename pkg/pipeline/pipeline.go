// Package pipeline provides the dashboard build pipeline for Datanate.
//
// This package implements the complete load → tiers → assets → render
// pipeline used by the CLI. By centralizing this logic, every command
// sees the same loading rules, warnings and output layout.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Load: Read metric definitions and CSV series into a registry
//  2. Tiers: Build the influence graph, assign tiers, group for layout
//  3. Assets: Publish content-hashed assets, vendored modules and the import map
//  4. Render: Write index.html and manifest.json
//
// Configuration errors (malformed definitions, a cyclic influence graph)
// are detected in the first two stages, before anything is written.
// Problems with individual assets are collected as warnings.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.OptionsFromConfig(cfg)
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, w := range result.Warnings {
//	    fmt.Println(w)
//	}
//
// Run only the analysis stages:
//
//	analysis, err := runner.Analyze(ctx, opts)
//	fmt.Println(analysis.Tiers)
package pipeline

import (
	"io"
	"path/filepath"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/datanate/pkg/assets"
	"github.com/matzehuels/datanate/pkg/config"
	"github.com/matzehuels/datanate/pkg/dag"
	"github.com/matzehuels/datanate/pkg/errors"
	"github.com/matzehuels/datanate/pkg/layout"
	"github.com/matzehuels/datanate/pkg/metric"
)

// =============================================================================
// Output Names
// =============================================================================

const (
	// IndexFile is the dashboard page at the output root.
	IndexFile = "index.html"

	// ManifestFile holds the asset manifest, module manifest and import map.
	ManifestFile = "manifest.json"

	// DiagramAsset is the logical name of the influence diagram.
	DiagramAsset = "influence.svg"

	// FaviconFile is linked from the page when it is among the static files.
	FaviconFile = "favicon.svg"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a build.
type Options struct {
	MetricsFile        string   `json:"metrics_file"`
	DataDir            string   `json:"data_dir"`
	OutputDir          string   `json:"output_dir"`
	AssetsDir          string   `json:"assets_dir"`
	NodeModulesDir     string   `json:"node_modules_dir"`
	VendorDir          string   `json:"vendor_dir"`
	ModuleSourceSubdir string   `json:"module_source_subdir"`
	Stylesheets        []string `json:"stylesheets"`
	Scripts            []string `json:"scripts"`
	LocalModules       []string `json:"local_modules"`
	VendorModules      []string `json:"vendor_modules"`
	StaticFiles        []string `json:"static_files"`
	Title              string   `json:"title"`
	Diagram            bool     `json:"diagram"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// OptionsFromConfig copies a loaded configuration into pipeline options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		MetricsFile:        cfg.MetricsFile,
		DataDir:            cfg.DataDir,
		OutputDir:          cfg.OutputDir,
		AssetsDir:          cfg.AssetsDir,
		NodeModulesDir:     cfg.NodeModulesDir,
		VendorDir:          cfg.VendorDir,
		ModuleSourceSubdir: cfg.ModuleSourceSubdir,
		Stylesheets:        slices.Clone(cfg.Stylesheets),
		Scripts:            slices.Clone(cfg.Scripts),
		LocalModules:       slices.Clone(cfg.LocalModules),
		VendorModules:      slices.Clone(cfg.VendorModules),
		StaticFiles:        slices.Clone(cfg.StaticFiles),
		Title:              cfg.Title,
		Diagram:            cfg.Diagram,
	}
}

// SetDefaults fills empty fields from the built-in configuration. Lists
// left nil take their defaults; an empty non-nil list stays empty.
func (o *Options) SetDefaults() {
	d := config.Defaults()
	setString(&o.MetricsFile, d.MetricsFile)
	setString(&o.DataDir, d.DataDir)
	setString(&o.OutputDir, d.OutputDir)
	setString(&o.AssetsDir, d.AssetsDir)
	setString(&o.NodeModulesDir, d.NodeModulesDir)
	setString(&o.VendorDir, d.VendorDir)
	setString(&o.Title, d.Title)
	setList(&o.Stylesheets, d.Stylesheets)
	setList(&o.Scripts, d.Scripts)
	setList(&o.LocalModules, d.LocalModules)
	setList(&o.VendorModules, d.VendorModules)
	setList(&o.StaticFiles, d.StaticFiles)
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks the options, returning INVALID_CONFIG errors.
func (o *Options) Validate() error {
	cfg := config.Config{
		MetricsFile:        o.MetricsFile,
		DataDir:            o.DataDir,
		OutputDir:          o.OutputDir,
		AssetsDir:          o.AssetsDir,
		VendorDir:          o.VendorDir,
		ModuleSourceSubdir: o.ModuleSourceSubdir,
		Stylesheets:        o.Stylesheets,
		Scripts:            o.Scripts,
		LocalModules:       o.LocalModules,
		VendorModules:      o.VendorModules,
		StaticFiles:        o.StaticFiles,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if filepath.Clean(o.OutputDir) == filepath.Clean(o.AssetsDir) {
		return errors.New(errors.ErrCodeInvalidConfig, "output_dir and assets_dir must differ (both %s)", o.OutputDir)
	}
	for _, name := range o.StaticFiles {
		if name == IndexFile || name == ManifestFile {
			return errors.New(errors.ErrCodeInvalidConfig, "static file %q would be overwritten by the generated %s", name, name)
		}
	}
	return nil
}

// ValidateAndSetDefaults applies defaults and validates.
func (o *Options) ValidateAndSetDefaults() error {
	o.SetDefaults()
	return o.Validate()
}

func setString(dst *string, def string) {
	if *dst == "" {
		*dst = def
	}
}

func setList(dst *[]string, def []string) {
	if *dst == nil {
		*dst = slices.Clone(def)
	}
}

// =============================================================================
// Results
// =============================================================================

// Analysis is the outcome of the load and tier stages.
type Analysis struct {
	// Registry holds the loaded metrics in declaration order.
	Registry *metric.Registry

	// Graph is the influence graph; node rows are tiers.
	Graph *dag.DAG

	// Tiers maps metric keys to tiers.
	Tiers map[string]int

	// Layout is the category/tier grouping.
	Layout layout.Layout

	// Warnings collected while loading and building the graph.
	Warnings errors.Warnings
}

// TierCount returns the number of distinct tiers.
func (a *Analysis) TierCount() int {
	if a.Graph == nil {
		return 0
	}
	return a.Graph.RowCount()
}

// Result contains the outputs of a build.
type Result struct {
	// RunID identifies the run in logs. It is not written to any output.
	RunID string

	// Analysis is the load and tier outcome.
	Analysis *Analysis

	// Assets is the asset pipeline outcome.
	Assets *assets.Output

	// IndexPath and ManifestPath are the files written by the render stage.
	IndexPath    string
	ManifestPath string

	// Warnings from all stages, in the order they were raised.
	Warnings errors.Warnings

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains build statistics.
type Stats struct {
	MetricCount int
	EdgeCount   int
	TierCount   int
	AssetCount  int
	ModuleCount int
	Removed     int
	LoadTime    time.Duration
	TierTime    time.Duration
	AssetTime   time.Duration
	RenderTime  time.Duration
}

// Total returns the summed stage durations.
func (s Stats) Total() time.Duration {
	return s.LoadTime + s.TierTime + s.AssetTime + s.RenderTime
}
