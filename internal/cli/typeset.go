package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ahuangsnail/quire/pkg/pipeline"
)

// typesetCommand creates the typeset command for running the full pipeline.
func (c *CLI) typesetCommand() *cobra.Command {
	var (
		output     string
		formatsStr string
		noCache    bool
	)
	opts := pipeline.Options{}
	setCLIDefaults(&opts)

	cmd := &cobra.Command{
		Use:   "typeset [manifest.toml]",
		Short: "Typeset a manifest and render the result",
		Long: `Typeset a manifest and render the result.

The typeset command runs the full pipeline: it parses the manifest, breaks
the document into pages, and renders the requested output formats. The
manifest may be a local file or an http(s) URL.

Results are cached locally for faster subsequent runs.

Use 'layout' and 'render' to run the stages separately.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			if err := pipeline.ValidateView(opts.View); err != nil {
				return err
			}
			return c.runTypeset(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", opts.Refresh, "bypass the cache and reparse the manifest")

	// Typeset flags
	cmd.Flags().StringVar(&opts.Title, "title", opts.Title, "override the manifest title")
	cmd.Flags().IntVar(&opts.MaxPages, "pages", opts.MaxPages, "maximum pages to produce")

	// Render flags
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json, dot (comma-separated)")
	cmd.Flags().StringVar(&opts.View, "view", opts.View, "render view: pages (default), tree")
	cmd.Flags().Float64Var(&opts.Scale, "scale", opts.Scale, "raster scale factor for PNG output")
	cmd.Flags().Float64Var(&opts.PageGap, "gap", opts.PageGap, "gap between pages in multi-page SVG output (points)")
	cmd.Flags().BoolVar(&opts.Labels, "labels", opts.Labels, "draw page numbers next to pages")
	cmd.Flags().BoolVar(&opts.Outlines, "outlines", opts.Outlines, "draw outlines around text runs")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", opts.Detailed, "include block summaries (tree view)")

	return cmd
}

// runTypeset runs the full pipeline and writes the rendered artifacts.
func (c *CLI) runTypeset(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.SourcePath = input
	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Typesetting %s...", input))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Typesetting failed")
		return fmt.Errorf("typeset %s: %w", input, err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	paths, err := writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		input:     input,
		output:    output,
	})
	if err != nil {
		return err
	}

	printSuccess("Typeset complete")
	for _, path := range paths {
		printFile(path)
	}
	printStats(result.Stats.PageCount, result.Stats.ItemCount, result.CacheInfo.RenderHit)
	printNewline()
	printNextStep("Preview", "quire preview "+input)

	return nil
}
