package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/ikreport/pkg/cache"
	"github.com/matzehuels/ikreport/pkg/errors"
	"github.com/matzehuels/ikreport/pkg/kin"
	"github.com/matzehuels/ikreport/pkg/observability"
	"github.com/matzehuels/ikreport/pkg/render/nodelink"
	"github.com/matzehuels/ikreport/pkg/solgraph"
)

// GraphOptions configures graph rendering.
type GraphOptions struct {
	Format   nodelink.Format
	Detailed bool
	Title    string
	Refresh  bool
}

// RenderGraph renders a solution graph without caching.
func RenderGraph(ctx context.Context, edges []kin.Edge, opts GraphOptions) ([]byte, error) {
	dot, _, err := graphDOT(edges, opts)
	if err != nil {
		return nil, err
	}
	return nodelink.Render(ctx, dot, opts.Format)
}

func graphDOT(edges []kin.Edge, opts GraphOptions) (string, int, error) {
	g, err := solgraph.FromEdges(edges)
	if err != nil {
		return "", 0, errors.Wrap(errors.ErrCodeInvalidGraph, err, "solution graph")
	}
	if err := g.Validate(); err != nil {
		return "", 0, errors.Wrap(errors.ErrCodeInvalidGraph, err, "solution graph")
	}
	dot := nodelink.ToDOT(g, nodelink.Options{Detailed: opts.Detailed, Title: opts.Title})
	return dot, g.NodeCount(), nil
}

// RenderGraphWithCacheInfo renders a solution graph, using the cache unless
// opts.Refresh is set. It returns the image, the graph hash and whether
// the image came from the cache.
func (r *Runner) RenderGraphWithCacheInfo(ctx context.Context, edges []kin.Edge, opts GraphOptions) ([]byte, string, bool, error) {
	if opts.Format == "" {
		opts.Format = nodelink.FormatPNG
	}
	if _, err := nodelink.ParseFormat(string(opts.Format)); err != nil {
		return nil, "", false, err
	}
	dot, nodes, err := graphDOT(edges, opts)
	if err != nil {
		return nil, "", false, err
	}

	hash := cache.Hash([]byte(dot))
	key := r.Keyer.GraphKey(hash, cache.GraphKeyOpts{Format: string(opts.Format), Detailed: opts.Detailed})

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "graph")
			return data, hash, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "graph")
	}

	hooks := observability.Report()
	hooks.OnGraphRenderStart(ctx, string(opts.Format), nodes)
	start := time.Now()
	data, err := nodelink.Render(ctx, dot, opts.Format)
	hooks.OnGraphRenderComplete(ctx, string(opts.Format), time.Since(start), err)
	if err != nil {
		return nil, "", false, err
	}

	if err := r.Cache.Set(ctx, key, data, cache.GraphTTL); err != nil {
		r.Logger.Warn("failed to cache graph", "error", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "graph", len(data))
	}
	return data, hash, false, nil
}
