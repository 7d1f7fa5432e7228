package svgdom

import (
	"strings"
	"testing"

	"github.com/cheekybits/is"
)

const testSvg = `<?xml version="1.0" encoding="utf-8"?>
<!-- Generator: Adobe Illustrator 15.0.2, SVG Export Plug-In . SVG Version: 6.00 Build 0)  -->
<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">
<svg version="1.1" id="Layer_1" xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" x="0px" y="0px"
	 width="595.201px" height="841.922px" viewBox="0 0 595.201 841.922" enable-background="new 0 0 595.201 841.922"
	 xml:space="preserve">
<g fill="#009FE3">
	<rect x="207" y="53" width="181.667" height="85.333"/>
</g>
</svg>`

func TestParse(t *testing.T) {
	is := is.New(t)

	root, err := ParseString(testSvg)
	is.NoErr(err)
	is.NotNil(root)

	root, err = Parse(strings.NewReader(testSvg))
	is.NoErr(err)
	is.NotNil(root)

	// namespaced tag and attribute names are stored by local name
	is.Equal(root.Tag, "svg")
	is.Equal(root.AttrDefault("space", ""), "preserve")

	is.Equal(root.AttrDefault("width", ""), "595.201px")
	is.Equal(len(root.Children), 1)

	group := root.Children[0]
	is.Equal(group.Tag, "g")
	is.Equal(group.Parent, root)
	is.Equal(len(group.Children), 1)

	rect := group.Children[0]
	is.Equal(rect.Tag, "rect")
	is.Equal(rect.Parent, group)
	is.Equal(rect.AttrDefault("x", ""), "207")

	x, err := rect.Float("x", 0)
	is.NoErr(err)
	is.Equal(x, 207.0)
}

func TestParseErrors(t *testing.T) {
	is := is.New(t)

	_, err := ParseString("")
	is.Err(err)

	_, err = ParseString("<svg><rect></svg>")
	is.Err(err)

	_, err = ParseString("<svg></svg><svg></svg>")
	is.Err(err)
}

func TestAttrs(t *testing.T) {
	is := is.New(t)

	el := NewElement("rect")
	_, ok := el.Attr("fill")
	is.Equal(ok, false)
	is.Equal(el.AttrDefault("fill", "none"), "none")

	el.SetAttr("fill", "red")
	v, ok := el.Attr("fill")
	is.Equal(ok, true)
	is.Equal(v, "red")

	attrs := el.Attrs()
	attrs["fill"] = "blue" // the copy must not alias the element
	is.Equal(el.AttrDefault("fill", ""), "red")

	_, err := el.Float("fill", 0)
	is.Err(err)
}
