// Package style carries resolved styling context through layout.
//
// Styles are organized as a chain of scopes: each nested piece of
// content may override a handful of properties while inheriting the
// rest from its surroundings. A [Chain] is an immutable view into that
// scope stack; [Chain.With] pushes a new scope and returns a child
// chain without mutating the parent.
//
// Properties a scope does not set fall through to the next outer scope,
// and ultimately to the package defaults ([DefaultTextSize],
// [DefaultLeading], [DefaultParAlign], [DefaultFill]). The zero Chain
// is valid and resolves everything to the defaults.
package style
