package cli

import (
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/ahuangsnail/quire/pkg/httputil"
	"github.com/ahuangsnail/quire/pkg/pipeline"
)

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input, plus a trailing
// ".pages" so that "doc.pages.json" yields "doc" rather than "doc.pages".
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
// This is used when generating multiple files (e.g., doc.svg, doc.png).
func basePath(output, input string) string {
	if output == "" {
		base := localInput(input)
		base = strings.TrimSuffix(base, filepath.Ext(base))
		return strings.TrimSuffix(base, ".pages")
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// localInput maps a manifest source to a local filesystem equivalent.
// Remote URLs reduce to their last path segment so derived output files
// land in the working directory.
func localInput(input string) string {
	if !httputil.IsRemote(input) {
		return input
	}
	u, err := url.Parse(input)
	if err != nil {
		return "manifest"
	}
	base := path.Base(u.Path)
	if base == "." || base == "/" || base == "" {
		return "manifest"
	}
	return base
}

// artifactWriteParams bundles the inputs for writeArtifacts.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string
	output    string
}

// writeArtifacts writes rendered artifacts to disk, one file per format.
// With a single format the output path is used verbatim when set; with
// multiple formats it is treated as a base path and each file gets its
// format as extension. It returns the written paths in format order.
func writeArtifacts(p artifactWriteParams) ([]string, error) {
	paths := make([]string, 0, len(p.formats))
	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			return nil, fmt.Errorf("missing artifact for format %s", format)
		}

		path := p.output
		if path == "" || len(p.formats) > 1 {
			path = basePath(p.output, p.input) + "." + format
		}

		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
