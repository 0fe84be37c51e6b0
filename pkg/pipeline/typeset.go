package pipeline

import (
	qerrors "github.com/ahuangsnail/quire/pkg/errors"

	"github.com/ahuangsnail/quire/pkg/doc"
	"github.com/ahuangsnail/quire/pkg/pages"
)

// =============================================================================
// Typesetting
// =============================================================================

// Typeset lays a document out into its page set.
//
// The document's page geometry decides how many regions the flow may fill:
// a fixed page count bounds the output exactly, while an unbounded manifest
// repeats the page region until the content runs out. opts.MaxPages caps the
// latter case so a runaway manifest cannot produce arbitrarily large output.
func Typeset(d *doc.Document, opts Options) (pages.PageSet, error) {
	flow, err := d.Flow()
	if err != nil {
		return pages.PageSet{}, err
	}
	regions, err := d.Regions()
	if err != nil {
		return pages.PageSet{}, err
	}

	frames, err := flow.Layout(regions, d.Styles())
	if err != nil {
		return pages.PageSet{}, err
	}
	if opts.MaxPages > 0 && len(frames) > opts.MaxPages {
		return pages.PageSet{}, qerrors.New(qerrors.ErrCodeInvalidPage,
			"document produced %d pages (limit %d)", len(frames), opts.MaxPages)
	}

	g, err := d.Geometry()
	if err != nil {
		return pages.PageSet{}, err
	}
	return pages.FromFrames(d.Title, g, frames), nil
}
