// Package svgstmt compiles an SVG element tree into an ordered sequence of drawing
// call statements for an imperative rendering backend.
// The tree walking, attribute cascading and style resolution live here;
// turning the statements into pixels or text is delegated to an Emitter
// (see for example svgcompiler/svgraster).
package svgstmt

// Emitter receives the ordered statement stream produced by one
// compilation. Calls are strictly sequenced and side-effecting: the
// compiler never inspects what the emitter does with them, and no
// return value influences the compilation.
//
// Every element is bracketed by a BeginElement/EndElement pair, so the
// nested document structure is recoverable from the flat stream.
// Relative versus absolute path commands (lowercase versus uppercase
// letters) are an emitter concern and are forwarded unresolved.
type Emitter interface {
	BeginElement(tag string)
	EndElement(tag string)

	Rect(x, y, width, height float64)
	Circle(cx, cy, r float64)
	Ellipse(cx, cy, rx, ry float64)
	Line(x1, y1, x2, y2 float64)
	Polygon(points []float64)
	Polyline(points []float64)

	BeginPathCommands()
	PathCommand(letter byte, params []float64)
	EndPathCommands()

	Fill(color string, opacity float64)
	Stroke(attrs StrokeAttrs)

	// Transform forwards the raw transform attribute value.
	Transform(matrix string)

	// SetDefinition stores a definition descriptor under its id.
	// Later definitions with the same id overwrite earlier ones.
	// Definitions are consulted by the emitter only, typically when a
	// paint statement references them with url(#id).
	SetDefinition(id string, def Definition)
}

// StrokeAttrs is the resolved stroke of one element.
// Color is passed through verbatim, including the literal values
// "none" and "transparent" (unlike the fill, which is simply absent in
// that case); emitters decide what to do with unpaintable colors.
// The optional sub attributes are empty strings when unset.
type StrokeAttrs struct {
	Color      string
	Opacity    float64
	LineCap    string
	LineJoin   string
	MiterLimit string
	Width      string // first numeric run of the resolved value, e.g. "1.2" from "1.2px"
}
