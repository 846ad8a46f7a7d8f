package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every event to a logger at debug level. Failures are
// logged at warn level.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks logging to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{logger: logger}
}

func (h *LogHooks) OnBuildStart(_ context.Context, kind, robot string) {
	h.logger.Debug("build started", "kind", kind, "robot", robot)
}

func (h *LogHooks) OnBuildComplete(_ context.Context, kind, robot string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("build failed", "kind", kind, "robot", robot, "error", err)
		return
	}
	h.logger.Debug("build complete", "kind", kind, "robot", robot, "bytes", size, "duration", d)
}

func (h *LogHooks) OnGraphRenderStart(_ context.Context, format string, nodeCount int) {
	h.logger.Debug("graph render started", "format", format, "nodes", nodeCount)
}

func (h *LogHooks) OnGraphRenderComplete(_ context.Context, format string, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("graph render failed", "format", format, "error", err)
		return
	}
	h.logger.Debug("graph render complete", "format", format, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, route string) {
	h.logger.Debug("request", "method", method, "route", route)
}

func (h *LogHooks) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	h.logger.Debug("response", "method", method, "route", route, "status", status, "duration", d)
}

var (
	_ ReportHooks = (*LogHooks)(nil)
	_ CacheHooks  = (*LogHooks)(nil)
	_ ServerHooks = (*LogHooks)(nil)
)
