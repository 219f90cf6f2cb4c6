// Package repr renders arbitrary values as text without ever failing.
//
// # SafeText
//
// SafeText tries the developer form of a value, then its display form, and
// falls back to a descriptor when both fail:
//
//	<NotPrintable Conn object id=0xc000012345 repr_error="..." str_error="...">
//
// Panics raised by Repr, GoString, String or Error methods are recovered and
// treated as failures of that stage. SafeTextStrict returns the descriptor
// as a *NotPrintableError instead.
//
// # Describe
//
// Describe renders a structured value from its attributes:
//
//	type Point struct{ X, Y int }
//
//	repr.Describe(Point{1, 2})                                   // <Point X=1, Y=2>
//	repr.Describe(Point{1, 2}, repr.WithConstructorStyle(true))  // Point(X=1, Y=2)
//	repr.Describe(Point{1, 2}, repr.WithExclude("Y"))            // <Point X=1>
//
// Attributes come from a function installed with Register, then from the
// Describable interface, then from exported struct fields in declaration
// order. A type usually implements Reprer on top of Describe:
//
//	func (p Point) Repr() (string, error) { return repr.Describe(p) }
//
// Nesting is bounded; values deeper than the bound render as "...". A value
// that comes back while its own rendering is still in progress, such as a
// self-referencing pointer whose Repr calls Describe, also renders as "...".
// Panics raised while listing attributes or naming a value are absorbed.
package repr
