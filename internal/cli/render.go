package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ahuangsnail/quire/pkg/pages"
	"github.com/ahuangsnail/quire/pkg/pipeline"
)

// renderCommand creates the render command for rendering from a page set.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}
	opts.SetRenderDefaults()

	cmd := &cobra.Command{
		Use:   "render [pages.json]",
		Short: "Render a page set to output formats",
		Long: `Render a page set to output formats.

The render command takes a pages.json file (produced by 'layout') and
renders it to SVG, PNG, PDF, or JSON. The page set contains all positioning
information, so this step is purely about drawing.

Results are cached locally for faster subsequent runs.

Use 'typeset' as a shortcut to go directly from a manifest to visual output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	// Render flags
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().Float64Var(&opts.Scale, "scale", opts.Scale, "raster scale factor for PNG output")
	cmd.Flags().Float64Var(&opts.PageGap, "gap", opts.PageGap, "gap between pages in multi-page SVG output (points)")
	cmd.Flags().BoolVar(&opts.Labels, "labels", opts.Labels, "draw page numbers next to pages")
	cmd.Flags().BoolVar(&opts.Outlines, "outlines", opts.Outlines, "draw outlines around text runs")

	return cmd
}

// runRender loads the page set and renders it.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	ps, err := pages.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load pages %s: %w", input, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Rendering...")
	spinner.Start()

	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, ps, nil, opts)
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	paths, err := writeArtifacts(artifactWriteParams{
		artifacts: artifacts,
		formats:   opts.Formats,
		input:     input,
		output:    output,
	})
	if err != nil {
		return err
	}

	printSuccess("Render complete")
	for _, path := range paths {
		printFile(path)
	}
	printStats(len(ps.Pages), ps.ItemCount(), cacheHit)

	return nil
}
