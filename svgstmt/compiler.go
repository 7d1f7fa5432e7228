package svgstmt

import (
	"strconv"

	"github.com/benoitkugler/svgcompiler/svgdom"
)

// CanvasSize is the drawing surface required by a document.
type CanvasSize struct {
	Width, Height float64
}

// ResolveCanvasSize computes the canvas size of a document: the width
// and height attributes when both are present (unit suffixes stripped),
// and otherwise the last two viewBox values. A document carrying
// neither form is a MissingDimensionError.
func ResolveCanvasSize(root *svgdom.Element) (CanvasSize, error) {
	w, okW := root.Attr("width")
	h, okH := root.Attr("height")
	if okW && okH {
		width, err := dimension(w)
		if err != nil {
			return CanvasSize{}, MissingDimensionError{Reason: "invalid width: " + err.Error()}
		}
		height, err := dimension(h)
		if err != nil {
			return CanvasSize{}, MissingDimensionError{Reason: "invalid height: " + err.Error()}
		}
		return CanvasSize{Width: width, Height: height}, nil
	}
	if viewBox, ok := root.Attr("viewBox"); ok {
		values, err := ParseNumberList(viewBox)
		if err != nil || len(values) < 4 {
			return CanvasSize{}, MissingDimensionError{Reason: "invalid viewBox: " + viewBox}
		}
		return CanvasSize{Width: values[2], Height: values[3]}, nil
	}
	return CanvasSize{}, MissingDimensionError{Reason: "no width/height nor viewBox on the svg element"}
}

// dimension parses a length attribute, stripping a unit suffix
// such as "pt" or "px".
func dimension(v string) (float64, error) {
	if m := numberRe.FindString(v); m != "" {
		v = m
	}
	return strconv.ParseFloat(v, 64)
}

type handlerFunc func(c *compiler, el *svgdom.Element) error

// handlers maps the supported tags to their compilation logic. A tag
// found in neither this table nor ignoredTags aborts the compilation.
// Filled in init to break the cycle with the group handler, which
// walks back into the table.
var handlers map[string]handlerFunc

func init() {
	handlers = map[string]handlerFunc{
		"g":              (*compiler).group,
		"rect":           (*compiler).rect,
		"circle":         (*compiler).circle,
		"ellipse":        (*compiler).ellipse,
		"line":           (*compiler).line,
		"polygon":        (*compiler).polygon,
		"polyline":       (*compiler).polyline,
		"path":           (*compiler).path,
		"linearGradient": (*compiler).linearGradient,
	}
}

// ignoredTags are skipped without error and without any statement,
// subtree included.
var ignoredTags = map[string]bool{
	"comment":   true,
	"desc":      true,
	"title":     true,
	"namedview": true,
}

type compiler struct {
	em      Emitter
	cascade attributeCascade
}

// Compile walks the document and drives the emitter with one ordered
// statement stream. The root must be an svg element; its canvas size is
// returned so callers can allocate a surface. Any structural or syntax
// problem aborts the compilation (the emitter may have received a
// partial stream).
func Compile(root *svgdom.Element, em Emitter) (CanvasSize, error) {
	if root.Tag != "svg" {
		return CanvasSize{}, StructuralError{Tag: root.Tag, Reason: "document root is not an svg element"}
	}
	size, err := ResolveCanvasSize(root)
	if err != nil {
		return CanvasSize{}, err
	}
	c := &compiler{em: em}
	err = c.element(root, func() error {
		for _, child := range root.Children {
			if err := c.walk(child); err != nil {
				return err
			}
		}
		return nil
	})
	return size, err
}

// element brackets the statements of body between paired
// BeginElement/EndElement calls; the closing call is issued
// even when body fails.
func (c *compiler) element(el *svgdom.Element, body func() error) error {
	c.em.BeginElement(el.Tag)
	defer c.em.EndElement(el.Tag)
	return body()
}

func (c *compiler) walk(el *svgdom.Element) error {
	if ignoredTags[el.Tag] {
		return nil
	}
	handler, ok := handlers[el.Tag]
	if !ok {
		return StructuralError{Tag: el.Tag, Reason: "unsupported element"}
	}
	return c.element(el, func() error { return handler(c, el) })
}

func (c *compiler) group(el *svgdom.Element) error {
	c.cascade.push(el.Attrs())
	defer c.cascade.pop()
	for _, child := range el.Children {
		c.cascade.apply(child)
		if err := c.walk(child); err != nil {
			return err
		}
	}
	return nil
}

// paint emits the resolved fill and stroke of a shape, in that order.
func (c *compiler) paint(el *svgdom.Element) error {
	fill, ok, err := ResolveFill(el)
	if err != nil {
		return err
	}
	if ok {
		c.em.Fill(fill.Color, fill.Opacity)
	}
	stroke, ok, err := ResolveStroke(el)
	if err != nil {
		return err
	}
	if ok {
		c.em.Stroke(stroke)
	}
	return nil
}

// floats resolves a list of numeric attributes, absent ones
// defaulting to zero.
func (c *compiler) floats(el *svgdom.Element, names ...string) ([]float64, error) {
	out := make([]float64, len(names))
	for i, name := range names {
		v, err := el.Float(name, 0)
		if err != nil {
			return nil, StructuralError{Tag: el.Tag, Reason: "attribute " + name + " is not a number: " + err.Error()}
		}
		out[i] = v
	}
	return out, nil
}

func (c *compiler) rect(el *svgdom.Element) error {
	if transform, ok := el.Attr("transform"); ok {
		c.em.Transform(transform)
	}
	v, err := c.floats(el, "x", "y", "width", "height")
	if err != nil {
		return err
	}
	c.em.Rect(v[0], v[1], v[2], v[3])
	return c.paint(el)
}

func (c *compiler) circle(el *svgdom.Element) error {
	v, err := c.floats(el, "cx", "cy", "r")
	if err != nil {
		return err
	}
	c.em.Circle(v[0], v[1], v[2])
	return c.paint(el)
}

func (c *compiler) ellipse(el *svgdom.Element) error {
	v, err := c.floats(el, "cx", "cy", "rx", "ry")
	if err != nil {
		return err
	}
	c.em.Ellipse(v[0], v[1], v[2], v[3])
	return c.paint(el)
}

func (c *compiler) line(el *svgdom.Element) error {
	v, err := c.floats(el, "x1", "y1", "x2", "y2")
	if err != nil {
		return err
	}
	c.em.Line(v[0], v[1], v[2], v[3])
	return c.paint(el)
}

func (c *compiler) polygon(el *svgdom.Element) error {
	points, err := ParseNumberList(el.AttrDefault("points", ""))
	if err != nil {
		return StructuralError{Tag: el.Tag, Reason: err.Error()}
	}
	c.em.Polygon(points)
	return c.paint(el)
}

func (c *compiler) polyline(el *svgdom.Element) error {
	points, err := ParseNumberList(el.AttrDefault("points", ""))
	if err != nil {
		return StructuralError{Tag: el.Tag, Reason: err.Error()}
	}
	c.em.Polyline(points)
	return c.paint(el)
}

func (c *compiler) path(el *svgdom.Element) error {
	tokens, err := TokenizePath(el.AttrDefault("d", ""))
	if err != nil {
		return err
	}
	c.em.BeginPathCommands()
	for _, tok := range tokens {
		params := make([]float64, len(tok.Params))
		for i, p := range tok.Params {
			// already validated by the tokenizer
			params[i], _ = strconv.ParseFloat(p, 64)
		}
		c.em.PathCommand(tok.Command, params)
	}
	c.em.EndPathCommands()
	return c.paint(el)
}

func (c *compiler) linearGradient(el *svgdom.Element) error {
	id, ok := el.Attr("id")
	if !ok {
		return StructuralError{Tag: el.Tag, Reason: "gradient without an id"}
	}
	gradient, err := parseLinearGradient(el)
	if err != nil {
		return err
	}
	c.em.SetDefinition(id, gradient)
	return nil
}
