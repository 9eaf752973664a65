package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/datanate/pkg/errors"
)

// LogHooks implements BuildHooks and AssetHooks by writing debug entries
// to a logger. The CLI registers it when running verbosely.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns hooks that log to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{Logger: logger}
}

func (h *LogHooks) OnStageStart(_ context.Context, stage Stage) {
	h.Logger.Debug("stage started", "stage", stage)
}

func (h *LogHooks) OnStageComplete(_ context.Context, stage Stage, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("stage failed", "stage", stage, "duration", d, "err", err)
		return
	}
	h.Logger.Debug("stage complete", "stage", stage, "duration", d)
}

func (h *LogHooks) OnWarning(_ context.Context, w errors.Warning) {
	h.Logger.Debug("warning recorded", "code", w.Code, "subject", w.Subject)
}

func (h *LogHooks) OnAssetWritten(_ context.Context, name, path string, size int) {
	h.Logger.Debug("asset written", "name", name, "path", path, "bytes", size)
}

func (h *LogHooks) OnAssetSkipped(_ context.Context, name string, code errors.Code) {
	h.Logger.Debug("asset skipped", "name", name, "code", code)
}

func (h *LogHooks) OnModuleVendored(_ context.Context, name, dir string, files int) {
	h.Logger.Debug("module vendored", "module", name, "dir", dir, "files", files)
}

func (h *LogHooks) OnStaleRemoved(_ context.Context, path string) {
	h.Logger.Debug("stale artifact removed", "path", path)
}

var (
	_ BuildHooks = (*LogHooks)(nil)
	_ AssetHooks = (*LogHooks)(nil)
)
