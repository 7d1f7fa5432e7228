package svgstmt

import (
	"sort"
	"strconv"

	"github.com/benoitkugler/svgcompiler/svgdom"
)

// Definition is a reusable paint resource declared by the document and
// referenced elsewhere through url(#id) values.
type Definition interface {
	isDefinition()
}

// GradientStop is one color stop of a gradient ramp.
type GradientStop struct {
	Offset  float64
	Color   string // 6 digit hex form when given as hex
	Opacity float64
}

// LinearGradient is the descriptor of a <linearGradient> element.
type LinearGradient struct {
	X1, Y1, X2, Y2 float64
	Transform      string // raw gradientTransform attribute, possibly empty
	Stops          []GradientStop
}

func (LinearGradient) isDefinition() {}

// parseLinearGradient builds the gradient descriptor from its element.
// Stops without a usable color are skipped; the kept stops are sorted
// by offset.
func parseLinearGradient(el *svgdom.Element) (LinearGradient, error) {
	var (
		out LinearGradient
		err error
	)
	if out.X1, err = el.Float("x1", 0); err != nil {
		return out, StructuralError{Tag: el.Tag, Reason: err.Error()}
	}
	if out.Y1, err = el.Float("y1", 0); err != nil {
		return out, StructuralError{Tag: el.Tag, Reason: err.Error()}
	}
	if out.X2, err = el.Float("x2", 0); err != nil {
		return out, StructuralError{Tag: el.Tag, Reason: err.Error()}
	}
	if out.Y2, err = el.Float("y2", 0); err != nil {
		return out, StructuralError{Tag: el.Tag, Reason: err.Error()}
	}
	out.Transform = el.AttrDefault("gradientTransform", "")

	for _, child := range el.Children {
		if child.Tag != "stop" {
			continue
		}
		color := resolveProperty(child, "stop-color")
		if color == "none" || color == "" {
			continue
		}
		offset, err := child.Float("offset", 0)
		if err != nil {
			return out, StructuralError{Tag: child.Tag, Reason: err.Error()}
		}
		opacity := 1.0
		if v := resolveProperty(child, "stop-opacity"); v != "none" {
			opacity, err = strconv.ParseFloat(v, 64)
			if err != nil {
				return out, StructuralError{Tag: child.Tag,
					Reason: "stop-opacity is not a number: " + err.Error()}
			}
		}
		out.Stops = append(out.Stops, GradientStop{
			Offset:  offset,
			Color:   expandHexShorthand(color),
			Opacity: opacity,
		})
	}
	sort.SliceStable(out.Stops, func(i, j int) bool { return out.Stops[i].Offset < out.Stops[j].Offset })
	return out, nil
}
