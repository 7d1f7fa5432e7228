package svgstmt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benoitkugler/svgcompiler/svgdom"
)

func element(t *testing.T, attrs map[string]string) *svgdom.Element {
	t.Helper()
	el := svgdom.NewElement("rect")
	for name, value := range attrs {
		el.SetAttr(name, value)
	}
	return el
}

func TestFillHexShorthand(t *testing.T) {
	el := element(t, map[string]string{"fill": "#abc", "opacity": "0.5"})
	fill, ok, err := ResolveFill(el)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "#aabbcc", fill.Color)
	require.Equal(t, 0.5, fill.Opacity)
}

func TestFillOpacityProduct(t *testing.T) {
	el := element(t, map[string]string{"fill": "red", "opacity": "0.5", "fill-opacity": "0.5"})
	fill, ok, err := ResolveFill(el)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "red", fill.Color)
	require.Equal(t, 0.25, fill.Opacity)
}

func TestFillNoneIsAbsent(t *testing.T) {
	for _, attrs := range []map[string]string{
		{"fill": "none"},
		{"fill": "transparent"},
		{}, // no fill property at all
		{"style": "fill:none;"},
	} {
		_, ok, err := ResolveFill(element(t, attrs))
		require.NoError(t, err)
		require.False(t, ok, "attrs %v", attrs)
	}
}

func TestFillStylePrecedence(t *testing.T) {
	// an explicit attribute wins over the style declaration
	el := element(t, map[string]string{"fill": "red", "style": "fill:blue;"})
	fill, ok, err := ResolveFill(el)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "red", fill.Color)

	el = element(t, map[string]string{"style": "stroke:none;fill:blue;"})
	fill, ok, err = ResolveFill(el)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "blue", fill.Color)
}

func TestStyleDeclarationNeedsSemicolon(t *testing.T) {
	// an unterminated declaration is not a match
	_, ok, err := ResolveFill(element(t, map[string]string{"style": "fill:blue"}))
	require.NoError(t, err)
	require.False(t, ok)

	fill, ok, err := ResolveFill(element(t, map[string]string{"style": "fill:blue;"}))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "blue", fill.Color)
}

func TestStylePropertyNames(t *testing.T) {
	// fill-opacity must not satisfy a fill lookup
	_, ok, err := ResolveFill(element(t, map[string]string{"style": "fill-opacity:0.5;"}))
	require.NoError(t, err)
	require.False(t, ok)

	el := element(t, map[string]string{"stroke": "red", "style": "stroke-width:3;"})
	stroke, ok, err := ResolveStroke(el)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "3", stroke.Width)
}

func TestStrokeNonePassthrough(t *testing.T) {
	// unlike the fill, a stroke of none reaches the emitter untouched
	stroke, ok, err := ResolveStroke(element(t, map[string]string{"stroke": "none"}))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "none", stroke.Color)

	stroke, ok, err = ResolveStroke(element(t, map[string]string{"stroke": "transparent"}))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "transparent", stroke.Color)
}

func TestStrokeWidthUnits(t *testing.T) {
	el := element(t, map[string]string{"stroke": "#fff", "stroke-width": "1.2px"})
	stroke, ok, err := ResolveStroke(el)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "1.2", stroke.Width)
}

func TestSubPixelStrokeDropped(t *testing.T) {
	el := element(t, map[string]string{
		"stroke": "#fff", "stroke-width": "0.5px", "stroke-linecap": "round",
	})
	_, ok, err := ResolveStroke(el)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestStrokeSubAttributes(t *testing.T) {
	el := element(t, map[string]string{
		"stroke":         "#fff",
		"stroke-linecap": "round",
		"style":          "stroke-linejoin:bevel;stroke-miterlimit:3;",
		"stroke-opacity": "0.8",
		"opacity":        "0.5",
	})
	stroke, ok, err := ResolveStroke(el)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "round", stroke.LineCap)
	require.Equal(t, "bevel", stroke.LineJoin)
	require.Equal(t, "3", stroke.MiterLimit)
	require.Equal(t, "", stroke.Width)
	require.InDelta(t, 0.4, stroke.Opacity, 1e-9)
}

func TestResolveIsIdempotent(t *testing.T) {
	el := element(t, map[string]string{
		"fill": "#abc", "stroke": "red", "stroke-width": "2px", "opacity": "0.5",
	})
	fill1, ok1, err := ResolveFill(el)
	require.NoError(t, err)
	fill2, ok2, err := ResolveFill(el)
	require.NoError(t, err)
	require.Equal(t, ok1, ok2)
	require.Equal(t, fill1, fill2)

	stroke1, okS1, err := ResolveStroke(el)
	require.NoError(t, err)
	stroke2, okS2, err := ResolveStroke(el)
	require.NoError(t, err)
	require.Equal(t, okS1, okS2)
	require.Equal(t, stroke1, stroke2)
}
