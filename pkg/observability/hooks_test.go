package observability

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/datanate/pkg/errors"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Build hooks
	b := NoopBuildHooks{}
	b.OnStageStart(ctx, StageLoad)
	b.OnStageComplete(ctx, StageLoad, time.Second, nil)
	b.OnWarning(ctx, errors.Warning{Code: errors.ErrCodeMissingSeries, Subject: "revenue"})

	// Asset hooks
	a := NoopAssetHooks{}
	a.OnAssetWritten(ctx, "style.css", "assets/style-0a1b2c3d.css", 1024)
	a.OnAssetSkipped(ctx, "app.js", errors.ErrCodeMissingSourceAsset)
	a.OnModuleVendored(ctx, "d3-array", "d3/d3-array-0a1b2c3d", 12)
	a.OnStaleRemoved(ctx, "assets/style-ffffffff.css")
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Build().(NoopBuildHooks); !ok {
		t.Error("Build() should return NoopBuildHooks by default")
	}
	if _, ok := Assets().(NoopAssetHooks); !ok {
		t.Error("Assets() should return NoopAssetHooks by default")
	}

	// Set custom hooks
	customBuild := &testBuildHooks{}
	SetBuildHooks(customBuild)
	if Build() != customBuild {
		t.Error("SetBuildHooks should set custom hooks")
	}

	customAssets := &testAssetHooks{}
	SetAssetHooks(customAssets)
	if Assets() != customAssets {
		t.Error("SetAssetHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Build().(NoopBuildHooks); !ok {
		t.Error("Reset() should restore NoopBuildHooks")
	}
	if _, ok := Assets().(NoopAssetHooks); !ok {
		t.Error("Reset() should restore NoopAssetHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testBuildHooks{}
	SetBuildHooks(custom)

	// Setting nil should be ignored
	SetBuildHooks(nil)

	if Build() != custom {
		t.Error("SetBuildHooks(nil) should be ignored")
	}

	Reset()
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	h := NewLogHooks(logger)
	ctx := context.Background()

	h.OnStageComplete(ctx, StageAssets, time.Millisecond, nil)
	h.OnAssetWritten(ctx, "style.css", "assets/style-0a1b2c3d.css", 6)
	h.OnModuleVendored(ctx, "d3-array", "d3/d3-array-0a1b2c3d", 3)

	out := buf.String()
	for _, want := range []string{"stage complete", "assets/style-0a1b2c3d.css", "d3-array"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

// Test implementations
type testBuildHooks struct{ NoopBuildHooks }
type testAssetHooks struct{ NoopAssetHooks }
