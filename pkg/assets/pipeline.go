package assets

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/datanate/pkg/errors"
	pkgio "github.com/matzehuels/datanate/pkg/io"
	"github.com/matzehuels/datanate/pkg/observability"
)

// DefaultEntryPoint is the file a vendored module tree must contain to get
// an import map entry.
const DefaultEntryPoint = "index.js"

// Source is a first-party file to publish. Content, when non-nil, is used
// instead of reading Path.
type Source struct {
	Name    string // logical name, e.g. "style.css"
	Path    string // file on disk
	Content []byte // generated content
}

// Module is a third-party module whose source tree is vendored.
type Module struct {
	Name string // npm module name, e.g. "d3-array"
	Dir  string // source tree on disk
}

// Inputs describes one asset pipeline run.
type Inputs struct {
	// OutputDir is the build output root. It is created if missing.
	OutputDir string

	// VendorDir is the output subdirectory for vendored modules.
	// Defaults to DefaultVendorDir.
	VendorDir string

	// Assets are hashed into <OutputDir>/assets.
	Assets []Source

	// LocalModules names the assets exposed through the import map.
	LocalModules []string

	// Modules are vendored into <OutputDir>/<VendorDir>/<name>-<hash>.
	Modules []Module

	// EntryPoint is the module entry file. Defaults to DefaultEntryPoint.
	EntryPoint string

	// StaticFiles are copied to the output root under their own name,
	// without hashing.
	StaticFiles []Source

	// Reserved names files the caller writes to the output root later.
	// Static files may not use them.
	Reserved []string
}

// Stats summarizes a pipeline run.
type Stats struct {
	Assets      int
	Modules     int
	ModuleFiles int
	StaticFiles int
	Removed     int
	Bytes       int64
	Duration    time.Duration
}

// Output is the result of a pipeline run.
type Output struct {
	Manifest  Manifest
	Modules   ModuleManifest
	Vendored  []VendoredModule
	ImportMap ImportMap
	Static    []string
	Removed   []string
	Warnings  errors.Warnings
	Stats     Stats
}

// BuildManifest returns the manifest.json content of the run.
func (o *Output) BuildManifest() BuildManifest {
	return BuildManifest{
		Assets:  o.Manifest,
		Modules: o.Modules,
		Imports: o.ImportMap.Imports,
	}
}

// Pipeline publishes content-addressed assets into an output directory.
//
// A run first removes hashed artifacts of earlier runs, then writes each
// asset under its hashed name, vendors module trees and copies static
// files. Missing sources are skipped with a warning; failures to write the
// output abort the run with an OUTPUT_WRITE error.
type Pipeline struct {
	Logger *log.Logger
}

// NewPipeline creates a pipeline. A nil logger discards output.
func NewPipeline(logger *log.Logger) *Pipeline {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Pipeline{Logger: logger}
}

// Run executes the pipeline.
func (p *Pipeline) Run(ctx context.Context, in Inputs) (*Output, error) {
	start := time.Now()
	if err := in.validate(); err != nil {
		return nil, err
	}
	if in.VendorDir == "" {
		in.VendorDir = DefaultVendorDir
	}
	if in.EntryPoint == "" {
		in.EntryPoint = DefaultEntryPoint
	}
	hooks := observability.Assets()

	if err := os.MkdirAll(in.OutputDir, 0755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeOutputWrite, err, "create output directory %s", in.OutputDir)
	}

	out := &Output{
		Manifest: make(Manifest),
		Modules:  make(ModuleManifest),
	}

	removed, err := Clean(in.OutputDir, in.VendorDir)
	for _, r := range removed {
		hooks.OnStaleRemoved(ctx, r)
	}
	out.Removed = removed
	out.Stats.Removed = len(removed)
	if err != nil {
		return nil, err
	}
	if len(removed) > 0 {
		p.Logger.Debug("removed stale artifacts", "count", len(removed))
	}

	for _, src := range in.Assets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := p.publishAsset(ctx, in, src, out); err != nil {
			return nil, err
		}
	}

	for _, m := range in.Modules {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := p.vendorModule(ctx, in, m, out); err != nil {
			return nil, err
		}
	}

	for _, src := range in.StaticFiles {
		if err := p.copyStatic(ctx, in, src, out); err != nil {
			return nil, err
		}
	}

	out.ImportMap = BuildImportMap(out.Manifest, in.LocalModules, out.Vendored)
	out.Stats.Duration = time.Since(start)
	return out, nil
}

func (p *Pipeline) publishAsset(ctx context.Context, in Inputs, src Source, out *Output) error {
	data, ok := p.readSource(ctx, src, out)
	if !ok {
		return nil
	}

	hashed := HashedName(src.Name, data)
	rel := path.Join(AssetsDir, hashed)
	if err := pkgio.WriteFile(filepath.Join(in.OutputDir, filepath.FromSlash(rel)), data); err != nil {
		return err
	}

	out.Manifest[src.Name] = rel
	out.Stats.Assets++
	out.Stats.Bytes += int64(len(data))
	observability.Assets().OnAssetWritten(ctx, src.Name, rel, len(data))
	p.Logger.Debug("wrote asset", "name", src.Name, "path", rel, "bytes", len(data))
	return nil
}

func (p *Pipeline) vendorModule(ctx context.Context, in Inputs, m Module, out *Output) error {
	hooks := observability.Assets()
	if info, err := os.Stat(m.Dir); err != nil || !info.IsDir() {
		out.Warnings.Add(errors.ErrCodeMissingVendoredModule, m.Name,
			"vendored module %s not found at %s", m.Name, m.Dir)
		hooks.OnAssetSkipped(ctx, m.Name, errors.ErrCodeMissingVendoredModule)
		p.Logger.Warn("vendored module not found", "module", m.Name, "dir", m.Dir)
		return nil
	}

	prefix, files, err := HashTree(m.Dir)
	if err != nil {
		out.Warnings.Add(errors.ErrCodeMissingVendoredModule, m.Name,
			"vendored module %s could not be read: %v", m.Name, err)
		hooks.OnAssetSkipped(ctx, m.Name, errors.ErrCodeMissingVendoredModule)
		p.Logger.Warn("vendored module unreadable", "module", m.Name, "err", err)
		return nil
	}

	rel := path.Join(in.VendorDir, ModuleDirName(m.Name, prefix))
	if err := CopyTree(m.Dir, filepath.Join(in.OutputDir, filepath.FromSlash(rel)), files); err != nil {
		return err
	}

	v := VendoredModule{Name: m.Name, Dir: rel, Hash: prefix, Files: len(files)}
	if _, err := os.Stat(filepath.Join(m.Dir, filepath.FromSlash(in.EntryPoint))); err == nil {
		v.Entry = in.EntryPoint
	} else {
		out.Warnings.Add(errors.ErrCodeMissingEntryPoint, m.Name,
			"vendored module %s has no %s; it is not in the import map", m.Name, in.EntryPoint)
		p.Logger.Warn("vendored module has no entry point", "module", m.Name, "entry", in.EntryPoint)
	}

	out.Vendored = append(out.Vendored, v)
	out.Modules[m.Name] = rel
	out.Stats.Modules++
	out.Stats.ModuleFiles += len(files)
	hooks.OnModuleVendored(ctx, m.Name, rel, len(files))
	p.Logger.Debug("vendored module", "module", m.Name, "dir", rel, "files", len(files))
	return nil
}

func (p *Pipeline) copyStatic(ctx context.Context, in Inputs, src Source, out *Output) error {
	data, ok := p.readSource(ctx, src, out)
	if !ok {
		return nil
	}
	if err := pkgio.WriteFile(filepath.Join(in.OutputDir, src.Name), data); err != nil {
		return err
	}
	out.Static = append(out.Static, src.Name)
	out.Stats.StaticFiles++
	out.Stats.Bytes += int64(len(data))
	return nil
}

// readSource returns the content of src. A source that cannot be read is
// recorded as a MISSING_SOURCE_ASSET warning and reported as not ok.
func (p *Pipeline) readSource(ctx context.Context, src Source, out *Output) ([]byte, bool) {
	if src.Content != nil {
		return src.Content, true
	}
	data, err := os.ReadFile(src.Path)
	if err == nil {
		return data, true
	}

	if os.IsNotExist(err) {
		out.Warnings.Add(errors.ErrCodeMissingSourceAsset, src.Name, "source asset %s not found", src.Path)
	} else {
		out.Warnings.Add(errors.ErrCodeMissingSourceAsset, src.Name, "source asset %s could not be read: %v", src.Path, err)
	}
	observability.Assets().OnAssetSkipped(ctx, src.Name, errors.ErrCodeMissingSourceAsset)
	p.Logger.Warn("skipping missing source asset", "name", src.Name, "file", src.Path)
	return nil, false
}

func (in Inputs) validate() error {
	if in.OutputDir == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "output directory is required")
	}
	if in.VendorDir != "" {
		if err := errors.ValidatePath(in.VendorDir); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "vendor directory")
		}
		if in.VendorDir == AssetsDir {
			return errors.New(errors.ErrCodeInvalidConfig, "vendor directory must differ from %q", AssetsDir)
		}
	}

	seen := make(map[string]bool)
	for _, group := range [][]Source{in.Assets, in.StaticFiles} {
		for _, s := range group {
			if err := errors.ValidateManifestFilename(s.Name); err != nil {
				return err
			}
			if seen[s.Name] {
				return errors.New(errors.ErrCodeInvalidManifest, "asset %q is declared more than once", s.Name)
			}
			seen[s.Name] = true
		}
	}

	vendorDir := in.VendorDir
	if vendorDir == "" {
		vendorDir = DefaultVendorDir
	}
	for _, f := range in.StaticFiles {
		if f.Name == AssetsDir || f.Name == vendorDir || slices.Contains(in.Reserved, f.Name) {
			return errors.New(errors.ErrCodeInvalidManifest, "static file %q collides with a build output of the same name", f.Name)
		}
	}

	mods := make(map[string]bool)
	for _, m := range in.Modules {
		if err := errors.ValidateModuleName(m.Name); err != nil {
			return err
		}
		if mods[m.Name] {
			return errors.New(errors.ErrCodeInvalidModule, "module %q is declared more than once", m.Name)
		}
		mods[m.Name] = true
	}
	return nil
}
