// Package svgraster implements a raster backend for the statement
// compiler, by wrapping rasterx.
package svgraster

import (
	"image"
	"image/color"
	"io"
	"log"
	"math"
	"regexp"
	"strconv"

	mt "github.com/rustyoz/Mtransform"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/colornames"

	"github.com/benoitkugler/svgcompiler/svgdom"
	"github.com/benoitkugler/svgcompiler/svgstmt"
)

var _ svgstmt.Emitter = (*Renderer)(nil) // assert interface conformance

// Renderer rasterizes the statement stream onto an RGBA image.
// Fills and strokes use separated rasterx instances to avoid
// shared state.
type Renderer struct {
	img    *image.RGBA
	filler *rasterx.Filler
	dasher *rasterx.Dasher

	defs map[string]svgstmt.Definition
	// one transform per open element, innermost last
	transforms []mt.Transform
	path       pathBuffer
}

// NewRenderer returns a renderer drawing on a fresh image of the
// given size.
func NewRenderer(width, height int) *Renderer {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	return &Renderer{
		img:    img,
		filler: rasterx.NewFiller(width, height, scanner),
		dasher: rasterx.NewDasher(width, height, scanner),
		defs:   map[string]svgstmt.Definition{},
	}
}

// Image returns the rendering surface.
func (rd *Renderer) Image() *image.RGBA { return rd.img }

// Render compiles the document and rasterizes it, on a canvas
// matching the document size.
func Render(root *svgdom.Element) (*image.RGBA, error) {
	size, err := svgstmt.ResolveCanvasSize(root)
	if err != nil {
		return nil, err
	}
	rd := NewRenderer(int(math.Ceil(size.Width)), int(math.Ceil(size.Height)))
	if _, err := svgstmt.Compile(root, rd); err != nil {
		return nil, err
	}
	return rd.img, nil
}

// RenderStream parses an SVG byte stream and rasterizes it.
func RenderStream(svg io.Reader) (*image.RGBA, error) {
	root, err := svgdom.Parse(svg)
	if err != nil {
		return nil, err
	}
	return Render(root)
}

func (rd *Renderer) currentTransform() *mt.Transform {
	if len(rd.transforms) == 0 {
		return nil
	}
	return &rd.transforms[len(rd.transforms)-1]
}

func (rd *Renderer) BeginElement(tag string) {
	top := mt.Identity()
	if t := rd.currentTransform(); t != nil {
		top = *t
	}
	rd.transforms = append(rd.transforms, top)
	rd.path.reset()
}

func (rd *Renderer) EndElement(tag string) {
	rd.transforms = rd.transforms[:len(rd.transforms)-1]
}

func (rd *Renderer) Transform(matrix string) {
	t, ok := parseMatrixTransform(matrix)
	if !ok {
		return
	}
	top := rd.currentTransform()
	*top = mt.MultiplyTransforms(*top, t)
}

func (rd *Renderer) SetDefinition(id string, def svgstmt.Definition) {
	rd.defs[id] = def
}

// shapes are buffered as path operations, rasterized when their
// paint statements arrive

func (rd *Renderer) Rect(x, y, width, height float64) {
	rd.path.moveTo(x, y)
	rd.path.lineTo(x+width, y)
	rd.path.lineTo(x+width, y+height)
	rd.path.lineTo(x, y+height)
	rd.path.closePath()
}

// kappa scales a radius to the control point distance of the cubic
// approximation of a quarter circle.
const kappa = 0.5522847498

func (rd *Renderer) Ellipse(cx, cy, rx, ry float64) {
	dx, dy := rx*kappa, ry*kappa
	rd.path.moveTo(cx-rx, cy)
	rd.path.cubicTo(cx-rx, cy-dy, cx-dx, cy-ry, cx, cy-ry)
	rd.path.cubicTo(cx+dx, cy-ry, cx+rx, cy-dy, cx+rx, cy)
	rd.path.cubicTo(cx+rx, cy+dy, cx+dx, cy+ry, cx, cy+ry)
	rd.path.cubicTo(cx-dx, cy+ry, cx-rx, cy+dy, cx-rx, cy)
	rd.path.closePath()
}

func (rd *Renderer) Circle(cx, cy, r float64) { rd.Ellipse(cx, cy, r, r) }

func (rd *Renderer) Line(x1, y1, x2, y2 float64) {
	rd.path.moveTo(x1, y1)
	rd.path.lineTo(x2, y2)
}

func (rd *Renderer) polyShape(points []float64, closed bool) {
	if len(points) < 4 {
		return
	}
	rd.path.moveTo(points[0], points[1])
	for i := 2; i+1 < len(points); i += 2 {
		rd.path.lineTo(points[i], points[i+1])
	}
	if closed {
		rd.path.closePath()
	}
}

func (rd *Renderer) Polygon(points []float64)  { rd.polyShape(points, true) }
func (rd *Renderer) Polyline(points []float64) { rd.polyShape(points, false) }

func (rd *Renderer) BeginPathCommands() { rd.path.reset() }
func (rd *Renderer) EndPathCommands()   {}

func (rd *Renderer) PathCommand(letter byte, params []float64) {
	rd.path.command(letter, params)
}

var urlRefRe = regexp.MustCompile(`^url\(#(.*)\)$`)

// resolveColor interprets a paint value: a hex color, a named color or
// a url(#id) gradient reference. It returns the rasterx color to set
// on a scanner, or nil when the value does not name a visible paint.
func (rd *Renderer) resolveColor(value string, opacity float64) interface{} {
	if m := urlRefRe.FindStringSubmatch(value); m != nil {
		def, ok := rd.defs[m[1]]
		if !ok {
			log.Printf("svgraster: reference to unknown definition %q", m[1])
			return nil
		}
		gradient, ok := def.(svgstmt.LinearGradient)
		if !ok {
			return nil
		}
		return rd.gradientColor(gradient, opacity)
	}
	c, ok := parsePlainColor(value)
	if !ok {
		return nil
	}
	return rasterx.ApplyOpacity(c, opacity)
}

func parsePlainColor(value string) (color.Color, bool) {
	if len(value) != 0 && value[0] == '#' {
		hex := value[1:]
		if len(hex) == 3 { // #abc form
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) != 6 {
			return nil, false
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return nil, false
		}
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, true
	}
	c, ok := colornames.Map[value]
	return c, ok
}

// gradientColor builds the rasterx color function of a linear gradient
// descriptor. Coordinates are interpreted in user space.
func (rd *Renderer) gradientColor(gradient svgstmt.LinearGradient, opacity float64) interface{} {
	stops := make([]rasterx.GradStop, 0, len(gradient.Stops))
	for _, stop := range gradient.Stops {
		c, ok := parsePlainColor(stop.Color)
		if !ok {
			continue
		}
		stops = append(stops, rasterx.GradStop{StopColor: c, Offset: stop.Offset, Opacity: stop.Opacity})
	}
	matrix := rasterx.Matrix2D{A: 1, D: 1}
	if t, ok := parseMatrixTransform(gradient.Transform); ok {
		matrix = rasterx.Matrix2D{A: t[0][0], B: t[1][0], C: t[0][1], D: t[1][1], E: t[0][2], F: t[1][2]}
	}
	out := rasterx.Gradient{
		Points:   [5]float64{gradient.X1, gradient.Y1, gradient.X2, gradient.Y2, 0},
		Stops:    stops,
		Matrix:   matrix,
		Spread:   rasterx.PadSpread,
		Units:    rasterx.UserSpaceOnUse,
		IsRadial: false,
	}
	return out.GetColorFunction(opacity)
}

func (rd *Renderer) Fill(colorValue string, opacity float64) {
	paint := rd.resolveColor(colorValue, opacity)
	if paint == nil {
		log.Printf("svgraster: unsupported fill color %q", colorValue)
		return
	}
	rd.filler.Clear()
	rd.filler.Scanner.SetColor(paint)
	rd.path.drawTo(rd.filler, rd.currentTransform())
	rd.filler.Draw()
}

var (
	capFuncs = map[string]rasterx.CapFunc{
		"":       rasterx.ButtCap,
		"butt":   rasterx.ButtCap,
		"round":  rasterx.RoundCap,
		"square": rasterx.SquareCap,
	}
	joinModes = map[string]rasterx.JoinMode{
		"":      rasterx.Miter,
		"miter": rasterx.Miter,
		"round": rasterx.Round,
		"bevel": rasterx.Bevel,
	}
)

func (rd *Renderer) Stroke(attrs svgstmt.StrokeAttrs) {
	if attrs.Color == "none" || attrs.Color == "transparent" {
		return
	}
	paint := rd.resolveColor(attrs.Color, attrs.Opacity)
	if paint == nil {
		log.Printf("svgraster: unsupported stroke color %q", attrs.Color)
		return
	}

	width := 1.0
	if attrs.Width != "" {
		// validated upstream
		width, _ = strconv.ParseFloat(attrs.Width, 64)
	}
	miterLimit := 4.0
	if attrs.MiterLimit != "" {
		if v, err := strconv.ParseFloat(attrs.MiterLimit, 64); err == nil {
			miterLimit = v
		}
	}
	capFunc, ok := capFuncs[attrs.LineCap]
	if !ok {
		capFunc = rasterx.ButtCap
	}
	joinMode, ok := joinModes[attrs.LineJoin]
	if !ok {
		joinMode = rasterx.Miter
	}

	rd.dasher.Clear()
	rd.dasher.SetStroke(
		fixedFrom(width), fixedFrom(miterLimit), capFunc, capFunc,
		rasterx.FlatGap, joinMode, nil, 0,
	)
	rd.dasher.Scanner.SetColor(paint)
	rd.path.drawTo(rd.dasher, rd.currentTransform())
	rd.dasher.Draw()
}
