// Package doc parses TOML document manifests into typesettable documents.
//
// # Manifest Format
//
// A quire manifest describes a document as page configuration, a base
// style, and an ordered list of content blocks:
//
//	title = "Quarterly Report"
//
//	[page]
//	width = "595.28pt"
//	height = "841.89pt"
//	margin = "72pt"
//	count = 0            # 0 = as many pages as the content needs
//
//	[style]
//	size = "11pt"
//	leading = "0.65em"
//	align = "start"
//	fill = "#000000"
//
//	[[block]]
//	kind = "paragraph"
//	text = "Hello, world."
//
//	[[block]]
//	kind = "vspace"
//	amount = "1fr"
//
//	[[block]]
//	kind = "box"
//	width = "50%"
//	height = "40pt"
//	fill = "#eeeeee"
//
// # Block Kinds
//
// Six kinds are supported:
//
//   - paragraph: a text block (field: text)
//   - vspace: vertical spacing (field: amount, a length, percentage, or
//     fraction such as "1fr")
//   - box: a sized rectangle with optional fill and optional nested body
//     (fields: width, height, fill, body)
//   - rule: a horizontal line (fields: thickness, stroke)
//   - colbreak: forces the next block onto the next page
//   - place: out-of-flow placement of a nested body at the page origin
//     (fields: body, in-flow)
//
// Any block accepts style overrides (size, leading, align, fill) and an
// explicit vertical alignment (valign) that positions it against the
// other content of its page.
//
// # Page Sizing
//
// Page width and height accept absolute lengths or "auto". An auto axis
// is unbounded: the page grows to fit the content on that axis, and an
// auto height implies a single page. Omitted dimensions default to A4
// ([DefaultPageWidth] x [DefaultPageHeight]) with a one inch margin.
//
// # Usage
//
//	d, err := doc.ParseFile("quire.toml")
//	if err != nil {
//	    return err
//	}
//	flow, _ := d.Flow()
//	regions, _ := d.Regions()
//	frames, err := flow.Layout(regions, d.Styles())
package doc
