package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/ikreport/pkg/io"
	"github.com/matzehuels/ikreport/pkg/pipeline"
	"github.com/matzehuels/ikreport/pkg/report"
)

// reportOpts holds the flags shared by the report and fk commands.
type reportOpts struct {
	outputDir     string
	defaultName   string
	title         string
	preamble      string
	close         string
	columns       bool
	align         bool
	fracify       bool
	graph         bool
	graphDetailed bool
	noCache       bool
	refresh       bool
}

func (c *CLI) reportCommand() *cobra.Command {
	var opts reportOpts
	cmd := &cobra.Command{
		Use:   "report [bundle]",
		Short: "Write the full inverse kinematics report",
		Long: `Write the full inverse kinematics report for a solved robot.

The report is written to OUTPUT_DIR/ik_solution_NAME.tex and copied to
OUTPUT_DIR/IK_solution.tex. The bundle is a .json or .toml file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runReport(cmd.Context(), cmd, args[0], report.KindSolution, opts)
		},
	}
	addReportFlags(cmd, &opts)
	cmd.Flags().StringVar(&opts.defaultName, "default-name", "", "name of the copy of the latest report (default IK_solution.tex)")
	cmd.Flags().BoolVar(&opts.graph, "graph", false, "include a rendered solution graph figure")
	cmd.Flags().BoolVar(&opts.graphDetailed, "graph-detailed", false, "label graph nodes with their level")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render the graph even when cached")
	cmd.Flags().BoolVar(&opts.align, "align", true, "typeset the solutions of a variable in one align environment")
	cmd.Flags().BoolVar(&opts.fracify, "fracify", true, `rewrite single divisions as \frac`)
	return cmd
}

func (c *CLI) fkCommand() *cobra.Command {
	var opts reportOpts
	cmd := &cobra.Command{
		Use:   "fk [bundle]",
		Short: "Write the forward kinematics report",
		Long: `Write the forward kinematics report (parameters, forward kinematic
equations and Jacobian) to OUTPUT_DIR/fk_equations_NAME.tex.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runReport(cmd.Context(), cmd, args[0], report.KindFK, opts)
		},
	}
	addReportFlags(cmd, &opts)
	return cmd
}

func addReportFlags(cmd *cobra.Command, opts *reportOpts) {
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "output directory (default LaTex)")
	cmd.Flags().StringVar(&opts.title, "title", "", "document title added to the preamble")
	cmd.Flags().StringVar(&opts.preamble, "preamble", "", "LaTeX preamble template file")
	cmd.Flags().StringVar(&opts.close, "close", "", "LaTeX closing template file")
	cmd.Flags().BoolVar(&opts.columns, "columns", true, "print matrices column by column")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
}

// pipelineOptions merges the config with the flags the user set.
func (c *CLI) pipelineOptions(cmd *cobra.Command, kind report.Kind, opts reportOpts) pipeline.Options {
	cfg := c.config()
	ro := cfg.reportOptions()
	po := pipeline.Options{
		Kind:        kind,
		OutputDir:   cfg.OutputDir,
		DefaultName: cfg.DefaultName,
		Graph:       cfg.Graph && kind == report.KindSolution,
		Report:      &ro,
		Logger:      c.Logger,
	}

	flags := cmd.Flags()
	setString := func(name string, dst *string, v string) {
		if flags.Changed(name) {
			*dst = v
		}
	}
	setBool := func(name string, dst *bool, v bool) {
		if flags.Changed(name) {
			*dst = v
		}
	}
	setString("output-dir", &po.OutputDir, opts.outputDir)
	setString("default-name", &po.DefaultName, opts.defaultName)
	setString("title", &ro.Title, opts.title)
	setString("preamble", &ro.Preamble, opts.preamble)
	setString("close", &ro.Close, opts.close)
	setBool("columns", &ro.Columns, opts.columns)
	setBool("align", &ro.Align, opts.align)
	setBool("fracify", &ro.Fracify, opts.fracify)
	setBool("graph", &po.Graph, opts.graph)
	po.GraphDetailed = opts.graphDetailed
	po.Refresh = opts.refresh
	return po
}

func (c *CLI) runReport(ctx context.Context, cmd *cobra.Command, path string, kind report.Kind, opts reportOpts) error {
	logger := loggerFromContext(ctx)
	timer := newStageTimer(logger)

	endImport := timer.begin("import")
	b, err := pkgio.Import(path)
	if err != nil {
		return err
	}
	endImport()
	logger.Debug("loaded bundle", "path", path, "robot", b.Robot.Name, "nodes", len(b.Robot.SolutionNodes))

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer runner.Close()

	po := c.pipelineOptions(cmd, kind, opts)
	var spinner *Spinner
	if po.Graph {
		spinner = newSpinner(ctx, "Rendering solution graph...")
		spinner.Start()
	}
	result, err := runner.Execute(ctx, b, po)
	if spinner != nil {
		if err != nil {
			spinner.StopWithError("Report failed")
		} else {
			spinner.Stop()
		}
	}
	if err != nil {
		return err
	}
	timer.record("graph", result.Stats.GraphTime)
	timer.record("build", result.Stats.BuildTime)
	timer.record("write", result.Stats.WriteTime)
	timer.done("Report complete", "kind", kind, "robot", b.Robot.DisplayName())

	printSuccess("Wrote %s report for %s", kind, StyleHighlight.Render(b.Robot.DisplayName()))
	printFile(result.TexPath)
	if result.DefaultPath != "" {
		printFile(result.DefaultPath)
	}
	if result.GraphPath != "" {
		printFile(result.GraphPath)
	}
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.CacheInfo.GraphHit)
	printNextStep("Compile with", "pdflatex "+result.TexPath)
	return nil
}
