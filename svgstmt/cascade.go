package svgstmt

import "github.com/benoitkugler/svgcompiler/svgdom"

// attributeCascade tracks the presentation attributes of the enclosing
// group elements, so that they may be propagated to descendants.
type attributeCascade struct {
	stack []map[string]string
}

func (c *attributeCascade) push(attrs map[string]string) {
	c.stack = append(c.stack, attrs)
}

func (c *attributeCascade) pop() {
	c.stack = c.stack[:len(c.stack)-1]
}

// merged flattens the stack, inner groups winning over outer ones.
func (c *attributeCascade) merged() map[string]string {
	out := map[string]string{}
	for _, attrs := range c.stack {
		for name, value := range attrs {
			out[name] = value
		}
	}
	return out
}

// apply copies the cascaded attributes onto el, filling gaps only:
// an attribute the element already carries is never overwritten.
func (c *attributeCascade) apply(el *svgdom.Element) {
	for name, value := range c.merged() {
		if _, ok := el.Attr(name); !ok {
			el.SetAttr(name, value)
		}
	}
}
