package render

import (
	"encoding/json"

	"github.com/ahuangsnail/quire/pkg/pages"
)

type jsonOutput struct {
	Title     string       `json:"title,omitempty"`
	Unit      string       `json:"unit"`
	PageCount int          `json:"page_count"`
	ItemCount int          `json:"item_count"`
	Pages     []pages.Page `json:"pages"`
}

// RenderJSON exports the page set as a pretty-printed JSON document with
// summary counts. This is the primary data interchange format, enabling:
//
//   - Integration with external rendering tools
//   - Caching typeset output for fast re-rendering
//   - Round-trip rendering via [pages.Unmarshal]
//
// RenderJSON returns an error only if JSON marshaling fails (should not
// happen with well-formed page sets). It does not modify ps and is safe
// to call concurrently.
func RenderJSON(ps pages.PageSet) ([]byte, error) {
	out := jsonOutput{
		Title:     ps.Title,
		Unit:      ps.Unit,
		PageCount: len(ps.Pages),
		ItemCount: ps.ItemCount(),
		Pages:     ps.Pages,
	}
	if out.Unit == "" {
		out.Unit = pages.Unit
	}
	if out.Pages == nil {
		out.Pages = []pages.Page{}
	}
	return json.MarshalIndent(out, "", "  ")
}
