// Package svgdom provides the element tree consumed by the statement compiler.
// The tree is built once from an SVG byte stream and is treated as
// read-only input by the compiler (the attribute cascade only ever
// writes keys that are missing).
package svgdom

import "strconv"

// Element is one node of a parsed SVG document: a tag name without its
// namespace prefix, an unordered attribute mapping, the ordered children
// and a non-owning back reference to the parent.
type Element struct {
	Tag      string
	Parent   *Element
	Children []*Element

	attrs map[string]string
}

// NewElement returns an element with an empty attribute set.
func NewElement(tag string) *Element {
	return &Element{Tag: tag, attrs: make(map[string]string)}
}

// Attr returns the value of the named attribute, and whether
// the element defines it.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// AttrDefault returns the value of the named attribute,
// or `def` if the element does not define it.
func (e *Element) AttrDefault(name, def string) string {
	if v, ok := e.attrs[name]; ok {
		return v
	}
	return def
}

// Attrs returns a copy of the element's own attribute mapping.
func (e *Element) Attrs() map[string]string {
	out := make(map[string]string, len(e.attrs))
	for name, value := range e.attrs {
		out[name] = value
	}
	return out
}

// SetAttr sets the named attribute on the element's own mapping.
func (e *Element) SetAttr(name, value string) {
	e.attrs[name] = value
}

// Float parses the named attribute as a float, returning `def` when the
// attribute is absent. An attribute that is present but not numeric is
// an error.
func (e *Element) Float(name string, def float64) (float64, error) {
	v, ok := e.attrs[name]
	if !ok {
		return def, nil
	}
	return strconv.ParseFloat(v, 64)
}

// AppendChild adds `child` at the end of the children list and
// sets its parent reference.
func (e *Element) AppendChild(child *Element) {
	child.Parent = e
	e.Children = append(e.Children, child)
}
