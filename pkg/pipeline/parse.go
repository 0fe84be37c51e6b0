package pipeline

import (
	"context"
	"os"

	"github.com/ahuangsnail/quire/pkg/doc"
	qerrors "github.com/ahuangsnail/quire/pkg/errors"
	"github.com/ahuangsnail/quire/pkg/httputil"
)

// Parse reads a document from inline manifest content or a manifest file.
// Inline content takes priority when both are set. Remote sources are
// only supported through [Runner.Parse], which carries the fetcher.
func Parse(opts Options) (*doc.Document, error) {
	source, err := readSource(opts)
	if err != nil {
		return nil, err
	}

	d, err := doc.Parse(source)
	if err != nil {
		return nil, err
	}

	applyTitle(d, opts)
	return d, nil
}

// readSource returns the raw manifest bytes for the given options.
func readSource(opts Options) ([]byte, error) {
	if opts.Source != "" {
		return []byte(opts.Source), nil
	}
	if opts.SourcePath == "" {
		return nil, qerrors.New(qerrors.ErrCodeInvalidInput, "source or source_path is required")
	}
	if httputil.IsRemote(opts.SourcePath) {
		return nil, qerrors.New(qerrors.ErrCodeInvalidPath, "remote manifest %s requires a pipeline runner", opts.SourcePath)
	}

	data, err := os.ReadFile(opts.SourcePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, qerrors.Wrap(qerrors.ErrCodeFileNotFound, err, "read manifest %s", opts.SourcePath)
		}
		return nil, qerrors.Wrap(qerrors.ErrCodeInvalidManifest, err, "read manifest %s", opts.SourcePath)
	}
	return data, nil
}

// readSource on the runner resolves remote sources through the fetcher.
// Inline content still takes priority over any source path.
func (r *Runner) readSource(ctx context.Context, opts Options) ([]byte, error) {
	if opts.Source == "" && httputil.IsRemote(opts.SourcePath) {
		data, _, err := r.Fetcher.Fetch(ctx, opts.SourcePath, opts.Refresh)
		return data, err
	}
	return readSource(opts)
}

// applyTitle overrides the manifest title when opts.Title is set.
// This allows callers (CLI, API) to name documents built from inline content.
func applyTitle(d *doc.Document, opts Options) {
	if opts.Title != "" {
		d.Title = opts.Title
	}
}
