// Package frame provides the finished-layout tree that layout produces
// and renderers consume.
//
// # Overview
//
// Quire turns abstract document content into pages through layout. The
// result of laying out any piece of content is a [Frame]: a sized
// rectangle holding positioned items. Items are either leaf content
// ([Text], [Rect], [Line]) or nested frames, so a fully laid-out page is
// a tree of frames with absolute positions at every level.
//
// Positions are in points with the origin at the top-left corner of the
// enclosing frame, x growing rightward and y growing downward.
//
// # Basic Usage
//
// Create a frame with [New], then place items into it with [Frame.Push]
// and nested frames with [Frame.PushFrame]:
//
//	f := frame.New(geom.Size{W: geom.Pt(100), H: geom.Pt(20)})
//	f.Push(geom.Point{}, frame.Text{Content: "hello", Size: geom.Pt(11)})
//
// Renderers walk [Frame.Elements] recursively to emit SVG, JSON or any
// other target format.
//
// # Roles
//
// A frame can carry a [Role] describing its function in the document
// structure, such as [RoleBlock] for a block-level chunk produced by
// region-splitting layout. Roles are hints for consumers (accessibility
// tagging, debug views); they never affect geometry.
//
// # Concurrency
//
// Frames are not safe for concurrent mutation. Once fully built they are
// effectively immutable and can be read from multiple goroutines.
package frame
