package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ikreport/pkg/cache"
	"github.com/matzehuels/ikreport/pkg/kin"
	"github.com/matzehuels/ikreport/pkg/latex"
	"github.com/matzehuels/ikreport/pkg/observability"
	"github.com/matzehuels/ikreport/pkg/render/nodelink"
	"github.com/matzehuels/ikreport/pkg/report"
)

// Runner executes the pipeline with caching. It keeps no per-run state and
// is safe for concurrent use.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// uses [cache.DefaultKeyer] and a nil logger uses the default logger.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// GraphFileName is the name of the graph image written next to a report.
func GraphFileName(robotName string) string {
	return "graph_" + robotName + "." + string(nodelink.FormatPNG)
}

// Execute builds the report for b and writes it to opts.OutputDir.
func (r *Runner) Execute(ctx context.Context, b *kin.Bundle, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	// The robot name becomes part of every output path.
	if err := report.Validate(opts.Kind, b); err != nil {
		return nil, err
	}
	logger := r.logger(opts)
	ropts := *opts.Report
	name := b.Robot.DisplayName()
	result := &Result{}

	if opts.Graph {
		start := time.Now()
		img, hash, hit, err := r.RenderGraphWithCacheInfo(ctx, b.Robot.NotationGraph, GraphOptions{
			Format:   nodelink.FormatPNG,
			Detailed: opts.GraphDetailed,
			Refresh:  opts.Refresh,
		})
		if err != nil {
			return nil, fmt.Errorf("graph: %w", err)
		}
		result.GraphPath = filepath.Join(opts.OutputDir, GraphFileName(name))
		if err := latex.WriteFile(result.GraphPath, img); err != nil {
			return nil, err
		}
		ropts.GraphImage = GraphFileName(name)
		result.GraphHash = hash
		result.CacheInfo.GraphHit = hit
		result.Stats.GraphTime = time.Since(start)
		logger.Info("rendered solution graph", "path", result.GraphPath, "cached", hit, "duration", result.Stats.GraphTime)
	}

	start := time.Now()
	doc, data, err := r.build(ctx, opts.Kind, b, opts.OutputDir, ropts)
	if err != nil {
		return nil, err
	}
	result.Stats.BuildTime = time.Since(start)
	result.Stats.Sections = doc.SectionCount()
	result.Stats.Bytes = len(data)
	for _, n := range kin.UsedNodes(b.Robot.SolutionNodes) {
		result.Stats.NodeCount += len(n.Solutions)
	}
	result.Stats.EdgeCount = len(b.Robot.NotationGraph)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start = time.Now()
	result.TexPath = doc.Filename
	if err := latex.WriteFile(result.TexPath, data); err != nil {
		return nil, err
	}
	if opts.Kind == report.KindSolution {
		result.DefaultPath = filepath.Join(opts.OutputDir, opts.DefaultName)
		if err := latex.CopyFile(result.TexPath, result.DefaultPath); err != nil {
			return nil, err
		}
	}
	result.Stats.WriteTime = time.Since(start)

	logger.Info("wrote report",
		"kind", opts.Kind,
		"path", result.TexPath,
		"sections", result.Stats.Sections,
		"bytes", result.Stats.Bytes)
	if result.DefaultPath != "" {
		logger.Debug("copied report", "path", result.DefaultPath)
	}
	return result, nil
}

func (r *Runner) build(ctx context.Context, kind report.Kind, b *kin.Bundle, dir string, ropts report.Options) (*latex.Document, []byte, error) {
	hooks := observability.Report()
	robot := b.Robot.DisplayName()
	hooks.OnBuildStart(ctx, string(kind), robot)
	start := time.Now()

	doc, err := report.Build(kind, b, dir, ropts)
	var data []byte
	if err == nil {
		data = doc.Bytes()
	}
	hooks.OnBuildComplete(ctx, string(kind), robot, len(data), time.Since(start), err)
	return doc, data, err
}

// RenderReport returns the LaTeX of a report without writing files. Results
// are cached by bundle content and formatting options.
func (r *Runner) RenderReport(ctx context.Context, b *kin.Bundle, kind report.Kind, ropts report.Options) ([]byte, bool, error) {
	bundleData, err := json.Marshal(b)
	if err != nil {
		return nil, false, fmt.Errorf("serialize bundle for cache key: %w", err)
	}
	key := r.Keyer.ReportKey(cache.Hash(bundleData), cache.ReportKeyOpts{
		Kind:    string(kind),
		Columns: ropts.Columns,
		Align:   ropts.Align,
		Fracify: ropts.Fracify,
		Graph:   ropts.GraphImage != "",
		Style:   styleHash(ropts),
	})

	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		observability.Cache().OnCacheHit(ctx, "report")
		return data, true, nil
	}
	observability.Cache().OnCacheMiss(ctx, "report")

	_, data, err := r.build(ctx, kind, b, "", ropts)
	if err != nil {
		return nil, false, err
	}
	if err := r.Cache.Set(ctx, key, data, cache.ReportTTL); err != nil {
		r.Logger.Warn("failed to cache report", "error", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "report", len(data))
	}
	return data, false, nil
}

// styleHash hashes the options that ReportKeyOpts does not name.
func styleHash(o report.Options) string {
	data, _ := json.Marshal(struct {
		Title, Date, Preamble, Close, GraphImage string
		Credits                                  report.Credits
	}{o.Title, o.Date, o.Preamble, o.Close, o.GraphImage, o.Credits})
	return cache.Hash(data)
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}
