package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ahuangsnail/quire/pkg/pages"
	"github.com/ahuangsnail/quire/pkg/pipeline"
)

// layoutCommand creates the layout command for typesetting without rendering.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := pipeline.Options{}
	opts.SetTypesetDefaults()

	cmd := &cobra.Command{
		Use:   "layout [manifest.toml]",
		Short: "Typeset a manifest into a page set",
		Long: `Typeset a manifest into a page set.

The layout command parses the manifest and breaks the document into pages.
The output is a pages.json file holding every positioned item, which can be
rendered to SVG/PNG/PDF using the 'render' command. The manifest may be a
local file or an http(s) URL.

Results are cached locally for faster subsequent runs.

Use 'typeset' as a shortcut to go directly from a manifest to visual output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.pages.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", opts.Refresh, "bypass the cache and reparse the manifest")

	// Typeset flags
	cmd.Flags().StringVar(&opts.Title, "title", opts.Title, "override the manifest title")
	cmd.Flags().IntVar(&opts.MaxPages, "pages", opts.MaxPages, "maximum pages to produce")

	return cmd
}

// runLayout parses and typesets the manifest, then writes the page set.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.SourcePath = input
	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Typesetting %s...", input))
	spinner.Start()

	prog := newProgress(c.Logger)
	d, _, err := runner.ParseWithCacheInfo(ctx, opts)
	if err != nil {
		spinner.StopWithError("Parse failed")
		return fmt.Errorf("parse %s: %w", input, err)
	}
	ps, cacheHit, err := runner.TypesetWithCacheInfo(ctx, d, opts)
	if err != nil {
		spinner.StopWithError("Typesetting failed")
		return fmt.Errorf("typeset: %w", err)
	}
	spinner.Stop()
	prog.donef("Typeset %d pages with %d items", len(ps.Pages), ps.ItemCount())

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := localInput(input)
		outputPath = strings.TrimSuffix(base, filepath.Ext(base)) + ".pages.json"
	}

	if err := pages.WriteFile(ps, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(ps.Pages), ps.ItemCount(), cacheHit)
	printNewline()
	printNextStep("Render", "quire render "+outputPath)

	return nil
}
