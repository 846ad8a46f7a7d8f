package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/ikreport/pkg/io"
	"github.com/matzehuels/ikreport/pkg/latex"
	"github.com/matzehuels/ikreport/pkg/pipeline"
	"github.com/matzehuels/ikreport/pkg/render/nodelink"
)

type graphOpts struct {
	output   string
	format   string
	detailed bool
	noCache  bool
	refresh  bool
}

func (c *CLI) graphCommand() *cobra.Command {
	opts := graphOpts{format: string(nodelink.FormatSVG)}
	cmd := &cobra.Command{
		Use:   "graph [bundle]",
		Short: "Render the solution graph",
		Long: `Render the solution graph of a bundle as a node-link diagram.

Roots (solutions with parent -1) are shaded and each level of the graph is
drawn on its own rank. Without --output the diagram is written next to the
bundle as graph_NAME.FORMAT; "-" writes to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := nodelink.ParseFormat(opts.format)
			if err != nil {
				return err
			}
			b, err := pkgio.Import(args[0])
			if err != nil {
				return err
			}

			runner, err := c.newRunner(opts.noCache)
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}
			defer runner.Close()

			data, _, hit, err := runner.RenderGraphWithCacheInfo(cmd.Context(), b.Robot.NotationGraph, pipeline.GraphOptions{
				Format:   format,
				Detailed: opts.detailed,
				Title:    b.Robot.DisplayName(),
				Refresh:  opts.refresh,
			})
			if err != nil {
				return err
			}

			if opts.output == "-" {
				_, err := os.Stdout.Write(data)
				return err
			}
			out := opts.output
			if out == "" {
				name := strings.TrimSuffix(pipeline.GraphFileName(b.Robot.DisplayName()), "."+string(nodelink.FormatPNG))
				out = filepath.Join(filepath.Dir(args[0]), name+"."+string(format))
			}
			if err := latex.WriteFile(out, data); err != nil {
				return err
			}
			printSuccess("Rendered solution graph")
			printFile(out)
			printStats(0, len(b.Robot.NotationGraph), hit)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", `output file ("-" for stdout)`)
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), png, dot")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "label nodes with their level")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when cached")
	return cmd
}
