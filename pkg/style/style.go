package style

import "github.com/ahuangsnail/quire/pkg/geom"

// Defaults applied when no scope in a chain sets the property.
var (
	DefaultTextSize = geom.Pt(11)
	DefaultLeading  = geom.Length{Em: 0.65}
	DefaultParAlign = geom.AlignStart
	DefaultFill     = "#000000"
)

// Map holds the properties one scope sets explicitly. Unset properties
// inherit from outer scopes. Build maps with [NewMap].
type Map struct {
	textSize *geom.Abs
	leading  *geom.Length
	parAlign *geom.Align
	fill     *string
}

// Option sets one property on a Map.
type Option func(*Map)

// TextSize sets the font size.
func TextSize(s geom.Abs) Option {
	return func(m *Map) { m.textSize = &s }
}

// Leading sets the spacing between paragraph lines. Em values resolve
// against the effective text size of the scope using them.
func Leading(l geom.Length) Option {
	return func(m *Map) { m.leading = &l }
}

// ParAlign sets the horizontal alignment of paragraph content.
func ParAlign(a geom.Align) Option {
	return func(m *Map) { m.parAlign = &a }
}

// Fill sets the text color as a CSS color string.
func Fill(c string) Option {
	return func(m *Map) { m.fill = &c }
}

// NewMap creates a scope from the given property options. A map with
// no options overrides nothing.
func NewMap(opts ...Option) *Map {
	m := &Map{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Chain is an immutable view into a stack of style scopes, innermost
// first. The zero Chain has no scopes and resolves every property to
// its default. Chains are cheap to copy and safe for concurrent reads.
type Chain struct {
	local *Map
	outer *Chain
}

// With pushes a scope onto the chain and returns the child chain.
// A nil map returns the chain unchanged.
func (c Chain) With(m *Map) Chain {
	if m == nil {
		return c
	}
	outer := c
	return Chain{local: m, outer: &outer}
}

// TextSize resolves the effective font size.
func (c Chain) TextSize() geom.Abs {
	for s := &c; s != nil; s = s.outer {
		if s.local != nil && s.local.textSize != nil {
			return *s.local.textSize
		}
	}
	return DefaultTextSize
}

// Leading resolves the spacing between paragraph lines to an absolute
// length, resolving em components against the effective text size.
func (c Chain) Leading() geom.Abs {
	l := DefaultLeading
	for s := &c; s != nil; s = s.outer {
		if s.local != nil && s.local.leading != nil {
			l = *s.local.leading
			break
		}
	}
	return l.Resolve(c.TextSize())
}

// ParAlign resolves the horizontal alignment of paragraph content.
func (c Chain) ParAlign() geom.Align {
	for s := &c; s != nil; s = s.outer {
		if s.local != nil && s.local.parAlign != nil {
			return *s.local.parAlign
		}
	}
	return DefaultParAlign
}

// Fill resolves the text color.
func (c Chain) Fill() string {
	for s := &c; s != nil; s = s.outer {
		if s.local != nil && s.local.fill != nil {
			return *s.local.fill
		}
	}
	return DefaultFill
}
