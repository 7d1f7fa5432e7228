package svgstmt

import (
	"fmt"
	"strconv"

	gl "github.com/rustyoz/genericlexer"
)

// ParseNumberList extracts the numbers of a whitespace or comma
// separated list, such as a viewBox or a points attribute.
func ParseNumberList(s string) ([]float64, error) {
	lexer, _ := gl.Lex("numbers", s)
	var out []float64
	for {
		item := lexer.NextItem()
		switch item.Type {
		case gl.ItemEOS:
			return out, nil
		case gl.ItemError:
			return nil, fmt.Errorf("invalid number list %q: %s", s, item.Value)
		case gl.ItemNumber:
			f, err := strconv.ParseFloat(item.Value, 64)
			if err != nil {
				return nil, err
			}
			out = append(out, f)
		}
	}
}
