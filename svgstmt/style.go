package svgstmt

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/benoitkugler/svgcompiler/svgdom"
)

// Resolution of the paint properties (fill and stroke) of an element.

var numberRe = regexp.MustCompile(`[-+]?\d*\.\d+|\d+`)

// styleProperty extracts a property value from the inline `style`
// attribute, or returns "" if the property is not declared.
// The declaration must be terminated by a semicolon.
func styleProperty(el *svgdom.Element, name string) string {
	style, ok := el.Attr("style")
	if !ok {
		return ""
	}
	i := strings.Index(style, name+":")
	if i == -1 {
		return ""
	}
	value := style[i+len(name)+1:]
	end := strings.Index(value, ";")
	if end == -1 {
		return ""
	}
	return value[:end]
}

// resolveProperty looks a presentation property up with the attribute
// form winning over the inline style declaration; a property found in
// neither resolves to "none".
func resolveProperty(el *svgdom.Element, name string) string {
	if v, ok := el.Attr(name); ok {
		return v
	}
	if v := styleProperty(el, name); v != "" {
		return v
	}
	return "none"
}

// expandHexShorthand turns the 3 digit hex color form into the 6 digit
// one (#abc becomes #aabbcc). Other values pass through unchanged.
func expandHexShorthand(color string) string {
	if len(color) == 4 && color[0] == '#' {
		out := make([]byte, 0, 7)
		out = append(out, '#')
		for _, c := range color[1:] {
			out = append(out, byte(c), byte(c))
		}
		return string(out)
	}
	return color
}

// attrFloat parses a numeric attribute, using `def` when absent.
func attrFloat(el *svgdom.Element, name string, def float64) (float64, error) {
	v, ok := el.Attr(name)
	if !ok {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, StructuralError{Tag: el.Tag, Reason: "attribute " + name + " is not a number: " + err.Error()}
	}
	return f, nil
}

// FillAttrs is the resolved fill of an element.
type FillAttrs struct {
	Color   string  // 6 digit hex form when given as hex, otherwise verbatim
	Opacity float64 // product of the opacity and fill-opacity properties
}

// ResolveFill computes the effective fill of an element.
// It returns ok == false when the element has no visible fill
// (the fill resolves to "none" or "transparent").
func ResolveFill(el *svgdom.Element) (FillAttrs, bool, error) {
	color := resolveProperty(el, "fill")
	if color == "none" || color == "transparent" {
		return FillAttrs{}, false, nil
	}
	op, err := attrFloat(el, "opacity", 1)
	if err != nil {
		return FillAttrs{}, false, err
	}
	fillOp, err := attrFloat(el, "fill-opacity", 1)
	if err != nil {
		return FillAttrs{}, false, err
	}
	return FillAttrs{Color: expandHexShorthand(color), Opacity: op * fillOp}, true, nil
}

// ResolveStroke computes the effective stroke of an element.
// It returns ok == false only when the stroke width is under one
// pixel. Unlike fills, a stroke color of "none" or "transparent" is
// not dropped here; it is kept verbatim for the emitter to interpret.
func ResolveStroke(el *svgdom.Element) (StrokeAttrs, bool, error) {
	color := resolveProperty(el, "stroke")

	op, err := attrFloat(el, "opacity", 1)
	if err != nil {
		return StrokeAttrs{}, false, err
	}
	strokeOp, err := attrFloat(el, "stroke-opacity", 1)
	if err != nil {
		return StrokeAttrs{}, false, err
	}
	out := StrokeAttrs{Color: color, Opacity: op * strokeOp}

	assign := func(property string, dst *string) {
		if v, ok := el.Attr(property); ok {
			*dst = v
		} else if v := styleProperty(el, property); v != "" && v != "none" {
			*dst = v
		}
	}
	assign("stroke-linecap", &out.LineCap)
	assign("stroke-linejoin", &out.LineJoin)
	assign("stroke-miterlimit", &out.MiterLimit)
	assign("stroke-width", &out.Width)

	if out.Width != "" {
		// strip any unit suffix, keeping the leading numeric run
		if m := numberRe.FindString(out.Width); m != "" {
			out.Width = m
		}
		w, err := strconv.ParseFloat(out.Width, 64)
		if err != nil {
			return StrokeAttrs{}, false, StructuralError{Tag: el.Tag,
				Reason: "stroke-width is not a number: " + err.Error()}
		}
		if w < 1 {
			// sub pixel strokes are not rendered
			return StrokeAttrs{}, false, nil
		}
	}
	return out, true, nil
}
