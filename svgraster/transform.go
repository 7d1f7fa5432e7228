package svgraster

import (
	"log"
	"regexp"

	mt "github.com/rustyoz/Mtransform"

	"github.com/benoitkugler/svgcompiler/svgstmt"
)

var matrixRe = regexp.MustCompile(`^\s*matrix\((.*)\)\s*$`)

// parseMatrixTransform interprets the matrix(a b c d e f) form of a
// transform attribute. Other forms (and the empty string) are reported
// as not parsed; unsupported forms are logged and skipped rather than
// aborting the rendering.
func parseMatrixTransform(value string) (mt.Transform, bool) {
	if value == "" {
		return mt.Identity(), false
	}
	m := matrixRe.FindStringSubmatch(value)
	if m == nil {
		log.Printf("svgraster: unsupported transform %q", value)
		return mt.Identity(), false
	}
	params, err := svgstmt.ParseNumberList(m[1])
	if err != nil || len(params) != 6 {
		log.Printf("svgraster: malformed transform %q", value)
		return mt.Identity(), false
	}
	t := mt.Identity()
	t[0][0], t[0][1], t[0][2] = params[0], params[2], params[4]
	t[1][0], t[1][1], t[1][2] = params[1], params[3], params[5]
	return t, true
}
