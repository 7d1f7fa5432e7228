package svgstmt

import "fmt"

// All errors raised while compiling are fatal and immediate: the
// compilation halts at the point of detection, and the statements
// already handed to the emitter must not be used.

// StructuralError reports a document whose shape the compiler cannot
// handle: a root which is not an svg element, or an element tag which
// has no handler and is not on the ignore list.
type StructuralError struct {
	Tag    string
	Reason string
}

func (e StructuralError) Error() string {
	return fmt.Sprintf("svgstmt: %s element: %s", e.Tag, e.Reason)
}

// PathSyntaxError reports invalid path data: an unknown command letter,
// parameters given to a zero arity command, a parameter count which is
// not a multiple of the command arity, or a parameter which is not a
// number.
type PathSyntaxError struct {
	Command  byte
	Expected int // arity of the command, 0 for Z
	Got      int // actual parameter count
	Reason   string
}

func (e PathSyntaxError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("svgstmt: path command %q: %s", e.Command, e.Reason)
	}
	return fmt.Sprintf("svgstmt: path command %q expects a multiple of %d parameters, got %d",
		e.Command, e.Expected, e.Got)
}

// MissingDimensionError reports a root element from which no canvas
// size could be derived: neither parseable width/height attributes nor
// a four token viewBox.
type MissingDimensionError struct {
	Reason string
}

func (e MissingDimensionError) Error() string {
	return "svgstmt: missing canvas dimensions: " + e.Reason
}
