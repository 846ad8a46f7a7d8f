// Package observability provides hooks for metrics, tracing, and logging.
//
// Libraries emit events through the registered hooks; binaries decide what
// to do with them. The defaults are no-ops, so nothing is recorded unless a
// hook is registered at startup:
//
//	func main() {
//	    observability.SetReportHooks(observability.NewLogHooks(logger))
//	    // ... run application
//	}
//
// Libraries call hooks around their work:
//
//	observability.Report().OnBuildStart(ctx, "solution", robot)
//	// ... build ...
//	observability.Report().OnBuildComplete(ctx, "solution", robot, size, time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// ReportHooks receives events from report generation.
type ReportHooks interface {
	OnBuildStart(ctx context.Context, kind, robot string)
	OnBuildComplete(ctx context.Context, kind, robot string, size int, duration time.Duration, err error)

	OnGraphRenderStart(ctx context.Context, format string, nodeCount int)
	OnGraphRenderComplete(ctx context.Context, format string, duration time.Duration, err error)
}

// CacheHooks receives events from cache lookups.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// ServerHooks receives events from the HTTP API.
type ServerHooks interface {
	OnRequest(ctx context.Context, method, route string)
	OnResponse(ctx context.Context, method, route string, status int, duration time.Duration)
}

// NoopReportHooks ignores all events.
type NoopReportHooks struct{}

func (NoopReportHooks) OnBuildStart(context.Context, string, string) {}
func (NoopReportHooks) OnBuildComplete(context.Context, string, string, int, time.Duration, error) {
}
func (NoopReportHooks) OnGraphRenderStart(context.Context, string, int)                   {}
func (NoopReportHooks) OnGraphRenderComplete(context.Context, string, time.Duration, error) {}

// NoopCacheHooks ignores all events.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopServerHooks ignores all events.
type NoopServerHooks struct{}

func (NoopServerHooks) OnRequest(context.Context, string, string)                         {}
func (NoopServerHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

var (
	reportHooks ReportHooks = NoopReportHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	serverHooks ServerHooks = NoopServerHooks{}
	hooksMu     sync.RWMutex
)

// SetReportHooks registers report hooks. Nil is ignored.
func SetReportHooks(h ReportHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		reportHooks = h
	}
}

// SetCacheHooks registers cache hooks. Nil is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetServerHooks registers server hooks. Nil is ignored.
func SetServerHooks(h ServerHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		serverHooks = h
	}
}

// Report returns the registered report hooks.
func Report() ReportHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return reportHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Server returns the registered server hooks.
func Server() ServerHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return serverHooks
}

// Reset restores the no-op defaults.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	reportHooks = NoopReportHooks{}
	cacheHooks = NoopCacheHooks{}
	serverHooks = NoopServerHooks{}
}
