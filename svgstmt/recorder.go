package svgstmt

import (
	"fmt"
	"strings"
)

// Recorder is an Emitter keeping the statement stream as formatted
// strings, in emission order. It is handy for inspecting what a
// document compiles to, and as a golden reference in tests.
type Recorder struct {
	Statements []string
	Defs       map[string]Definition
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{Defs: make(map[string]Definition)}
}

func (r *Recorder) add(format string, args ...interface{}) {
	r.Statements = append(r.Statements, fmt.Sprintf(format, args...))
}

func formatFloats(values []float64) string {
	chunks := make([]string, len(values))
	for i, v := range values {
		chunks[i] = fmt.Sprintf("%g", v)
	}
	return strings.Join(chunks, ", ")
}

func (r *Recorder) BeginElement(tag string) { r.add("BeginElement(%s)", tag) }
func (r *Recorder) EndElement(tag string)   { r.add("EndElement(%s)", tag) }

func (r *Recorder) Rect(x, y, width, height float64) {
	r.add("Rect(%s)", formatFloats([]float64{x, y, width, height}))
}

func (r *Recorder) Circle(cx, cy, radius float64) {
	r.add("Circle(%s)", formatFloats([]float64{cx, cy, radius}))
}

func (r *Recorder) Ellipse(cx, cy, rx, ry float64) {
	r.add("Ellipse(%s)", formatFloats([]float64{cx, cy, rx, ry}))
}

func (r *Recorder) Line(x1, y1, x2, y2 float64) {
	r.add("Line(%s)", formatFloats([]float64{x1, y1, x2, y2}))
}

func (r *Recorder) Polygon(points []float64)  { r.add("Polygon(%s)", formatFloats(points)) }
func (r *Recorder) Polyline(points []float64) { r.add("Polyline(%s)", formatFloats(points)) }

func (r *Recorder) BeginPathCommands() { r.add("BeginPathCommands()") }
func (r *Recorder) EndPathCommands()   { r.add("EndPathCommands()") }

func (r *Recorder) PathCommand(letter byte, params []float64) {
	if len(params) == 0 {
		r.add("PathCommand(%c)", letter)
		return
	}
	r.add("PathCommand(%c, %s)", letter, formatFloats(params))
}

func (r *Recorder) Fill(color string, opacity float64) {
	r.add("Fill(%s, %g)", color, opacity)
}

func (r *Recorder) Stroke(attrs StrokeAttrs) {
	chunks := []string{attrs.Color, fmt.Sprintf("%g", attrs.Opacity)}
	for _, opt := range []struct{ name, value string }{
		{"linecap", attrs.LineCap},
		{"linejoin", attrs.LineJoin},
		{"miterlimit", attrs.MiterLimit},
		{"width", attrs.Width},
	} {
		if opt.value != "" {
			chunks = append(chunks, opt.name+"="+opt.value)
		}
	}
	r.add("Stroke(%s)", strings.Join(chunks, ", "))
}

func (r *Recorder) Transform(matrix string) { r.add("Transform(%s)", matrix) }

func (r *Recorder) SetDefinition(id string, def Definition) {
	if r.Defs == nil {
		r.Defs = make(map[string]Definition)
	}
	r.Defs[id] = def
	r.add("SetDefinition(%s)", id)
}

var _ Emitter = (*Recorder)(nil)
