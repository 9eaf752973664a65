package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/datanate/pkg/errors"
	"github.com/matzehuels/datanate/pkg/observability"
)

// Runner executes builds.
//
// The Runner is stateless except for the logger - it doesn't store
// results. Multiple goroutines can use the same Runner with options that
// write to different output directories.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log output is discarded.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → tiers → assets → render pipeline.
//
// Configuration errors abort the run before the output directory is
// touched. Recoverable problems are returned in Result.Warnings.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	logger := opts.Logger.With("run", runID[:8])
	opts.Logger = logger

	result := &Result{RunID: runID}

	analysis, err := r.analyze(ctx, opts, &result.Stats)
	if err != nil {
		return nil, err
	}
	result.Analysis = analysis
	result.Warnings.Extend(analysis.Warnings)

	// Stage 3: Assets
	assetsDur, err := runStage(ctx, observability.StageAssets, func() error {
		out, err := publishAssets(ctx, opts, analysis)
		if err != nil {
			return err
		}
		result.Assets = out
		return nil
	})
	result.Stats.AssetTime = assetsDur
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	result.Warnings.Extend(result.Assets.Warnings)
	result.Stats.AssetCount = result.Assets.Stats.Assets
	result.Stats.ModuleCount = result.Assets.Stats.Modules
	result.Stats.Removed = result.Assets.Stats.Removed

	logger.Info("published assets",
		"assets", result.Stats.AssetCount,
		"modules", result.Stats.ModuleCount,
		"removed", result.Stats.Removed,
		"duration", assetsDur)

	// Stage 4: Render
	renderDur, err := runStage(ctx, observability.StageRender, func() error {
		return renderSite(opts, analysis, result)
	})
	result.Stats.RenderTime = renderDur
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	logger.Info("rendered dashboard",
		"index", result.IndexPath,
		"manifest", result.ManifestPath,
		"duration", renderDur)

	r.reportWarnings(ctx, logger, result.Warnings)
	return result, nil
}

// Analyze runs the load and tier stages only. Nothing is written.
func (r *Runner) Analyze(ctx context.Context, opts Options) (*Analysis, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	var stats Stats
	analysis, err := r.analyze(ctx, opts, &stats)
	if err != nil {
		return nil, err
	}
	r.reportWarnings(ctx, opts.Logger, analysis.Warnings)
	return analysis, nil
}

func (r *Runner) analyze(ctx context.Context, opts Options, stats *Stats) (*Analysis, error) {
	analysis := &Analysis{}

	// Stage 1: Load
	loadDur, err := runStage(ctx, observability.StageLoad, func() error {
		return loadRegistry(opts, analysis)
	})
	stats.LoadTime = loadDur
	if err != nil {
		return nil, err
	}
	stats.MetricCount = analysis.Registry.Len()

	opts.Logger.Info("loaded metrics",
		"metrics", stats.MetricCount,
		"categories", len(analysis.Registry.Categories()),
		"duration", loadDur)

	// Stage 2: Tiers
	tierDur, err := runStage(ctx, observability.StageTiers, func() error {
		return assignTiers(analysis)
	})
	stats.TierTime = tierDur
	if err != nil {
		return nil, err
	}
	stats.EdgeCount = analysis.Graph.EdgeCount()
	stats.TierCount = analysis.TierCount()

	opts.Logger.Info("assigned tiers",
		"edges", stats.EdgeCount,
		"tiers", stats.TierCount,
		"duration", tierDur)

	return analysis, nil
}

// runStage runs fn between the stage hooks and returns its duration.
func runStage(ctx context.Context, stage observability.Stage, fn func() error) (time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	hooks := observability.Build()
	hooks.OnStageStart(ctx, stage)
	start := time.Now()
	err := fn()
	d := time.Since(start)
	hooks.OnStageComplete(ctx, stage, d, err)
	return d, err
}

func (r *Runner) reportWarnings(ctx context.Context, logger *log.Logger, ws errors.Warnings) {
	hooks := observability.Build()
	for _, w := range ws {
		hooks.OnWarning(ctx, w)
		logger.Warn(w.Message, "code", w.Code, "subject", w.Subject)
	}
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
