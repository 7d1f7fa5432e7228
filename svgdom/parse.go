package svgdom

import (
	"encoding/xml"
	"errors"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html/charset"
)

// Parse builds the element tree from the given SVG stream.
// Tag names are stored without their namespace prefix, and attributes
// are keyed by their local name. XML comments, directives and character
// data are discarded: only the element structure survives.
func Parse(stream io.Reader) (*Element, error) {
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	var root, current *Element
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		switch se := t.(type) {
		case xml.StartElement:
			el := NewElement(se.Name.Local)
			for _, attr := range se.Attr {
				el.attrs[attr.Name.Local] = attr.Value
			}
			if current == nil {
				if root != nil {
					return nil, errors.New("svgdom: multiple root elements")
				}
				root = el
			} else {
				current.AppendChild(el)
			}
			current = el
		case xml.EndElement:
			if current != nil {
				current = current.Parent
			}
		}
	}
	if root == nil {
		return nil, errors.New("svgdom: invalid svg xml document")
	}
	return root, nil
}

// ParseString builds the element tree from an in-memory document.
func ParseString(doc string) (*Element, error) {
	return Parse(strings.NewReader(doc))
}

// ParseFile builds the element tree from the named file.
func ParseFile(filename string) (*Element, error) {
	fin, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fin.Close()
	return Parse(fin)
}
