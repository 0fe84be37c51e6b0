// Package pages provides serialization types for typeset documents.
//
// This package defines the canonical wire format for quire's typeset
// output, used for JSON files, API responses, caching, and storage.
//
// # Architecture
//
// The package sits at the serialization boundary between the layout
// engine's internal representation and external formats:
//
//   - [PageSet], [Page]: Serialization types (this package)
//   - pkg/frame.Frame: Internal layout output (nested, relative positions)
//
// [FromFrames] flattens the nested frame trees into pages with absolute
// coordinates and drops the nesting: renderers and storage never see
// frame structure, only flat draw lists.
//
// # Core Types
//
//   - [PageSet]: A typeset document, one entry per page
//   - [Page]: One page's dimensions and draw lists
//   - [Text], [Rect], [Line]: Positioned drawable items
//
// All coordinates and sizes are in typographic points ([Unit]), with the
// origin at the page's top-left corner and y growing downward.
//
// # Serialization
//
// Page sets use a flat JSON format:
//
//	{
//	  "title": "Report",
//	  "unit": "pt",
//	  "pages": [
//	    {
//	      "width": 595.28,
//	      "height": 841.89,
//	      "texts": [{"x": 72, "y": 72, "size": 11, "text": "Hello"}]
//	    }
//	  ]
//	}
//
// Common operations:
//
//	ps, _ := pages.ReadFile("out.json")    // File → PageSet
//	pages.WriteFile(ps, "out.json")        // PageSet → File
//	data, _ := pages.Marshal(ps)           // PageSet → []byte
//	parsed, _ := pages.Unmarshal(data)     // []byte → PageSet
//
// # Concurrency
//
// All functions are safe for concurrent reads but not concurrent writes.
package pages
