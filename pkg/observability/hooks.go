// Package observability provides hooks for build metrics and tracing.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about build stages and asset processing.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so there are no import
// cycles and the core packages stay free of backend dependencies.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetBuildHooks(&myBuildHooks{})
//	    observability.SetAssetHooks(&myAssetHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Build().OnStageStart(ctx, observability.StageLoad)
//	// ... load definitions ...
//	observability.Build().OnStageComplete(ctx, observability.StageLoad, duration, err)
package observability

import (
	"context"
	"sync"
	"time"

	"github.com/matzehuels/datanate/pkg/errors"
)

// Stage names a step of a build run.
type Stage string

// Build stages in execution order.
const (
	StageLoad   Stage = "load"
	StageTiers  Stage = "tiers"
	StageAssets Stage = "assets"
	StageRender Stage = "render"
)

// =============================================================================
// Build Hooks
// =============================================================================

// BuildHooks receives events from the build pipeline.
type BuildHooks interface {
	OnStageStart(ctx context.Context, stage Stage)
	OnStageComplete(ctx context.Context, stage Stage, duration time.Duration, err error)

	// OnWarning records a non-fatal problem collected during the run.
	OnWarning(ctx context.Context, w errors.Warning)
}

// =============================================================================
// Asset Hooks
// =============================================================================

// AssetHooks receives events from the asset pipeline.
type AssetHooks interface {
	// OnAssetWritten records a content-hashed file written to the output.
	OnAssetWritten(ctx context.Context, name, path string, size int)

	// OnAssetSkipped records a declared asset that was not written.
	OnAssetSkipped(ctx context.Context, name string, code errors.Code)

	// OnModuleVendored records a vendored module tree copied to the output.
	OnModuleVendored(ctx context.Context, name, dir string, files int)

	// OnStaleRemoved records a hashed artifact from a previous run being deleted.
	OnStaleRemoved(ctx context.Context, path string)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopBuildHooks is a no-op implementation of BuildHooks.
type NoopBuildHooks struct{}

func (NoopBuildHooks) OnStageStart(context.Context, Stage)                          {}
func (NoopBuildHooks) OnStageComplete(context.Context, Stage, time.Duration, error) {}
func (NoopBuildHooks) OnWarning(context.Context, errors.Warning)                    {}

// NoopAssetHooks is a no-op implementation of AssetHooks.
type NoopAssetHooks struct{}

func (NoopAssetHooks) OnAssetWritten(context.Context, string, string, int)   {}
func (NoopAssetHooks) OnAssetSkipped(context.Context, string, errors.Code)   {}
func (NoopAssetHooks) OnModuleVendored(context.Context, string, string, int) {}
func (NoopAssetHooks) OnStaleRemoved(context.Context, string)                {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	buildHooks BuildHooks = NoopBuildHooks{}
	assetHooks AssetHooks = NoopAssetHooks{}
	hooksMu    sync.RWMutex
)

// SetBuildHooks registers custom build hooks.
// This should be called once at application startup before any build runs.
func SetBuildHooks(h BuildHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		buildHooks = h
	}
}

// SetAssetHooks registers custom asset hooks.
// This should be called once at application startup before any build runs.
func SetAssetHooks(h AssetHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		assetHooks = h
	}
}

// Build returns the registered build hooks.
func Build() BuildHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return buildHooks
}

// Assets returns the registered asset hooks.
func Assets() AssetHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return assetHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	buildHooks = NoopBuildHooks{}
	assetHooks = NoopAssetHooks{}
}
