// Package pipeline turns a report bundle into files on disk.
//
// # Stages
//
//  1. Validate: check options and the bundle
//  2. Graph: render the solution graph to PNG (full report only, optional)
//  3. Build: assemble the LaTeX document with [report.Build]
//  4. Write: save the document, then copy the full report to the default name
//
// Graph images and rendered reports are cached by content hash, so repeated
// runs over the same solution skip Graphviz.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, bundle, pipeline.Options{
//	    Kind:  report.KindSolution,
//	    Graph: true,
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.TexPath, result.DefaultPath)
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ikreport/pkg/errors"
	"github.com/matzehuels/ikreport/pkg/report"
)

// DefaultOutputDir is the directory reports are written to.
const DefaultOutputDir = "LaTex"

// Options configures a pipeline run.
type Options struct {
	// Kind is the report to build. Defaults to [report.KindSolution].
	Kind report.Kind

	// OutputDir receives the report and graph image.
	OutputDir string

	// DefaultName is the copy of the latest full report. Defaults to
	// [report.DefaultName].
	DefaultName string

	// Graph renders the solution graph and includes it as a figure.
	Graph bool

	// GraphDetailed adds levels to graph node labels.
	GraphDetailed bool

	// Refresh ignores cached graph images.
	Refresh bool

	// Report holds the formatting options. The zero value is replaced by
	// [report.DefaultOptions].
	Report *report.Options

	Logger *log.Logger
}

// ValidateAndSetDefaults checks the options and fills in defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Kind == "" {
		o.Kind = report.KindSolution
	}
	if _, err := report.ParseKind(string(o.Kind)); err != nil {
		return err
	}
	if o.OutputDir == "" {
		o.OutputDir = DefaultOutputDir
	}
	if o.DefaultName == "" {
		o.DefaultName = report.DefaultName
	}
	if err := errors.ValidateFilename(o.DefaultName); err != nil {
		return err
	}
	if o.Report == nil {
		ro := report.DefaultOptions()
		o.Report = &ro
	}
	if o.Graph && o.Kind != report.KindSolution {
		return errors.New(errors.ErrCodeInvalidInput, "the solution graph is only part of the %s report", report.KindSolution)
	}
	return nil
}

// Result describes the files a run produced.
type Result struct {
	// TexPath is the report named after the robot.
	TexPath string

	// DefaultPath is the copy under the default name. Empty for reports
	// that are not copied.
	DefaultPath string

	// GraphPath is the rendered graph image, if any.
	GraphPath string

	// GraphHash identifies the solution graph for caching.
	GraphHash string

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats holds sizes and timings of a run.
type Stats struct {
	Sections  int
	Bytes     int
	NodeCount int
	EdgeCount int

	GraphTime time.Duration
	BuildTime time.Duration
	WriteTime time.Duration
}

// CacheInfo reports which stages were served from cache.
type CacheInfo struct {
	GraphHit bool
}
