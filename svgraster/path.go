package svgraster

import (
	"math"

	mt "github.com/rustyoz/Mtransform"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Buffering and playback of path geometry. Statements describe the
// geometry in user space float coordinates; the transform of the
// enclosing element is applied at playback time, when converting to
// the fixed point format of rasterx.

func fixedFrom(v float64) fixed.Int26_6 { return fixed.Int26_6(v * 64) }

func toFixedP(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixedFrom(x), Y: fixedFrom(y)}
}

type pathOp struct {
	verb byte // 'M', 'L', 'Q', 'C' or 'Z'
	args [6]float64
}

// pathBuffer accumulates the resolved (absolute) operations of one
// shape, and tracks the state needed to interpret relative and
// shorthand path commands.
type pathBuffer struct {
	ops []pathOp

	x, y           float64 // current point
	startX, startY float64 // start of the open subpath
	ctrlX, ctrlY   float64 // last control point, for S and T reflection
	lastVerb       byte    // last command letter, upper case
}

func (p *pathBuffer) reset() { *p = pathBuffer{ops: p.ops[:0]} }

func (p *pathBuffer) moveTo(x, y float64) {
	p.ops = append(p.ops, pathOp{verb: 'M', args: [6]float64{x, y}})
	p.x, p.y = x, y
	p.startX, p.startY = x, y
}

func (p *pathBuffer) lineTo(x, y float64) {
	p.ops = append(p.ops, pathOp{verb: 'L', args: [6]float64{x, y}})
	p.x, p.y = x, y
}

func (p *pathBuffer) quadTo(cx, cy, x, y float64) {
	p.ops = append(p.ops, pathOp{verb: 'Q', args: [6]float64{cx, cy, x, y}})
	p.ctrlX, p.ctrlY = cx, cy
	p.x, p.y = x, y
}

func (p *pathBuffer) cubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.ops = append(p.ops, pathOp{verb: 'C', args: [6]float64{c1x, c1y, c2x, c2y, x, y}})
	p.ctrlX, p.ctrlY = c2x, c2y
	p.x, p.y = x, y
}

func (p *pathBuffer) closePath() {
	p.ops = append(p.ops, pathOp{verb: 'Z'})
	p.x, p.y = p.startX, p.startY
}

// command interprets one path command: a lowercase letter makes the
// parameters relative to the current point, and the shorthand forms
// (H V S T) are rewritten to their general equivalent.
func (p *pathBuffer) command(letter byte, params []float64) {
	relative := 'a' <= letter && letter <= 'z'
	verb := letter
	if relative {
		verb = letter - 'a' + 'A'
	}
	if relative {
		// every x coordinate is followed by its y coordinate, except
		// in the single coordinate forms handled below
		switch verb {
		case 'C', 'L', 'M', 'Q', 'S', 'T':
			for i := 0; i+1 < len(params); i += 2 {
				params[i] += p.x
				params[i+1] += p.y
			}
		case 'H':
			params[0] += p.x
		case 'V':
			params[0] += p.y
		case 'A':
			params[5] += p.x
			params[6] += p.y
		}
	}

	switch verb {
	case 'M':
		p.moveTo(params[0], params[1])
	case 'L':
		p.lineTo(params[0], params[1])
	case 'H':
		p.lineTo(params[0], p.y)
		verb = 'L'
	case 'V':
		p.lineTo(p.x, params[0])
		verb = 'L'
	case 'C':
		p.cubicTo(params[0], params[1], params[2], params[3], params[4], params[5])
	case 'S':
		c1x, c1y := p.reflectedControl('C')
		p.cubicTo(c1x, c1y, params[0], params[1], params[2], params[3])
		verb = 'C'
	case 'Q':
		p.quadTo(params[0], params[1], params[2], params[3])
	case 'T':
		cx, cy := p.reflectedControl('Q')
		p.quadTo(cx, cy, params[0], params[1])
		verb = 'Q'
	case 'A':
		p.arcTo(params)
	case 'Z':
		p.closePath()
	}
	p.lastVerb = verb
}

// reflectedControl mirrors the previous control point about the
// current point, falling back on the current point when the previous
// command was not of the continued kind.
func (p *pathBuffer) reflectedControl(kind byte) (float64, float64) {
	if p.lastVerb != kind {
		return p.x, p.y
	}
	return 2*p.x - p.ctrlX, 2*p.y - p.ctrlY
}

// maxDx is the maximum radians a cubic spline is allowed to span when
// approximating an elliptical arc.
const maxDx float64 = math.Pi / 8

// arcTo appends the cubic spline approximation of an elliptical arc,
// given the seven parameters of the A command (rx ry x-rotation
// large-arc sweep x y), already made absolute. Degenerate radii reduce
// the arc to a line, per the SVG drawing rules.
func (p *pathBuffer) arcTo(params []float64) {
	rx, ry := math.Abs(params[0]), math.Abs(params[1])
	endX, endY := params[5], params[6]
	if rx == 0 || ry == 0 {
		p.lineTo(endX, endY)
		return
	}
	rotX := params[2] * math.Pi / 180
	largeArc := params[3] != 0
	sweep := params[4] != 0
	startX, startY := p.x, p.y

	cx, cy := findEllipseCenter(&rx, &ry, rotX, startX, startY, endX, endY, sweep, largeArc)

	startAngle := math.Atan2(startY-cy, startX-cx) - rotX
	endAngle := math.Atan2(endY-cy, endX-cx) - rotX
	deltaTheta := endAngle - startAngle
	arcBig := math.Abs(deltaTheta) > math.Pi

	// parameterize by the ellipse angle eta
	etaStart := math.Atan2(math.Sin(startAngle)/ry, math.Cos(startAngle)/rx)
	etaEnd := math.Atan2(math.Sin(endAngle)/ry, math.Cos(endAngle)/rx)
	deltaEta := etaEnd - etaStart
	if arcBig != largeArc {
		if deltaEta < 0 {
			deltaEta += math.Pi * 2
		} else {
			deltaEta -= math.Pi * 2
		}
	}
	if deltaEta < 0 && sweep {
		deltaEta += math.Pi * 2
	} else if deltaEta >= 0 && !sweep {
		deltaEta -= math.Pi * 2
	}

	// cubic spline approximation after L. Maisonobe, "Drawing an
	// elliptical arc using polylines, quadratic or cubic Bezier
	// curves", 2003
	segs := int(math.Abs(deltaEta)/maxDx) + 1
	dEta := deltaEta / float64(segs)
	tde := math.Tan(dEta / 2)
	alpha := math.Sin(dEta) * (math.Sqrt(4+3*tde*tde) - 1) / 3
	lx, ly := startX, startY
	sinTheta, cosTheta := math.Sin(rotX), math.Cos(rotX)
	ldx, ldy := ellipsePrime(rx, ry, sinTheta, cosTheta, etaStart)
	for i := 1; i <= segs; i++ {
		eta := etaStart + dEta*float64(i)
		var x, y float64
		if i == segs {
			x, y = endX, endY // exact endpoint, no roundoff error
		} else {
			x, y = ellipsePointAt(rx, ry, sinTheta, cosTheta, eta, cx, cy)
		}
		dx, dy := ellipsePrime(rx, ry, sinTheta, cosTheta, eta)
		p.cubicTo(lx+alpha*ldx, ly+alpha*ldy, x-alpha*dx, y-alpha*dy, x, y)
		lx, ly, ldx, ldy = x, y, dx, dy
	}
}

// ellipsePrime gives the tangent vector of the parameterized ellipse
// of radii a, b at parameter eta.
func ellipsePrime(a, b, sinTheta, cosTheta, eta float64) (px, py float64) {
	bCosEta := b * math.Cos(eta)
	aSinEta := a * math.Sin(eta)
	px = -aSinEta*cosTheta - bCosEta*sinTheta
	py = -aSinEta*sinTheta + bCosEta*cosTheta
	return
}

// ellipsePointAt gives the point of the parameterized ellipse of radii
// a, b and center cx, cy at parameter eta.
func ellipsePointAt(a, b, sinTheta, cosTheta, eta, cx, cy float64) (px, py float64) {
	aCosEta := a * math.Cos(eta)
	bSinEta := b * math.Sin(eta)
	px = cx + aCosEta*cosTheta - bSinEta*sinTheta
	py = cy + aCosEta*sinTheta + bSinEta*cosTheta
	return
}

// findEllipseCenter locates the center of the ellipse through the two
// given points, increasing the radii minimally (preserving their
// ratio) when no such ellipse exists. It reduces the problem to
// finding the center of a circle through the origin and an arbitrary
// point, then maps the center back to the original coordinates.
func findEllipseCenter(ra, rb *float64, rotX, startX, startY, endX, endY float64, sweep, largeArc bool) (cx, cy float64) {
	cos, sin := math.Cos(rotX), math.Sin(rotX)

	// move the origin to the start point, align the ellipse x axis
	// with the coordinate x axis, and scale x so that ra == rb
	nx, ny := endX-startX, endY-startY
	nx, ny = nx*cos+ny*sin, -nx*sin+ny*cos
	nx *= *rb / *ra

	midX, midY := nx/2, ny/2
	midlenSq := midX*midX + midY*midY

	var hr float64
	if *rb**rb < midlenSq {
		// the requested ellipse does not exist, scale the radii up
		nrb := math.Sqrt(midlenSq)
		if *ra == *rb {
			*ra = nrb // prevents roundoff
		} else {
			*ra = *ra * nrb / *rb
		}
		*rb = nrb
	} else {
		hr = math.Sqrt(*rb**rb-midlenSq) / math.Sqrt(midlenSq)
	}
	if sweep == largeArc {
		cx = midX + midY*hr
		cy = midY - midX*hr
	} else {
		cx = midX - midY*hr
		cy = midY + midX*hr
	}

	cx *= *ra / *rb
	return cx*cos - cy*sin + startX, cx*sin + cy*cos + startY
}

// drawTo plays the buffered operations into a rasterx adder, applying
// the transform to every coordinate pair.
func (p *pathBuffer) drawTo(adder rasterx.Adder, t *mt.Transform) {
	point := func(x, y float64) fixed.Point26_6 {
		if t != nil {
			x, y = t.Apply(x, y)
		}
		return toFixedP(x, y)
	}
	open := false
	for _, op := range p.ops {
		switch op.verb {
		case 'M':
			if open {
				adder.Stop(false)
			}
			adder.Start(point(op.args[0], op.args[1]))
			open = true
		case 'L':
			adder.Line(point(op.args[0], op.args[1]))
		case 'Q':
			adder.QuadBezier(point(op.args[0], op.args[1]), point(op.args[2], op.args[3]))
		case 'C':
			adder.CubeBezier(point(op.args[0], op.args[1]),
				point(op.args[2], op.args[3]), point(op.args[4], op.args[5]))
		case 'Z':
			adder.Stop(true)
			open = false
		}
	}
	if open {
		adder.Stop(false)
	}
}
