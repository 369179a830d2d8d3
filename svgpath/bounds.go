package svgpath

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// compute the bouding box of a path, used to size a canvas
// fitting a whole document

type line [2]fixed.Point26_6

func (l line) criticalPoints() (tX, tY []float64) {
	return nil, nil
}

func (l line) evaluateCurve(t float64) (x, y float64) {
	p0x, p0y := FromFixed(l[0])
	p1x, p1y := FromFixed(l[1])
	return bezierLine(p0x, p1x, t), bezierLine(p0y, p1y, t)
}

func bezierLine(p0, p1, t float64) float64 {
	return (p1-p0)*t + p0
}

type cubicBezier [4]fixed.Point26_6

func (cu cubicBezier) criticalPoints() (tX, tY []float64) {
	p1x, p1y := FromFixed(cu[0])
	c1x, c1y := FromFixed(cu[1])
	c2x, c2y := FromFixed(cu[2])
	p2x, p2y := FromFixed(cu[3])

	aX, bX, cX := cubicDerivative(p1x, c1x, c2x, p2x)
	aY, bY, cY := cubicDerivative(p1y, c1y, c2y, p2y)

	return quadraticRoots(aX, bX, cX), quadraticRoots(aY, bY, cY)
}

func (cu cubicBezier) evaluateCurve(t float64) (x, y float64) {
	p0x, p0y := FromFixed(cu[0])
	p1x, p1y := FromFixed(cu[1])
	p2x, p2y := FromFixed(cu[2])
	p3x, p3y := FromFixed(cu[3])
	return bezierSpline(p0x, p1x, p2x, p3x, t), bezierSpline(p0y, p1y, p2y, p3y, t)
}

// cubic polinomial
// x = At^3 + Bt^2 + Ct + D
// where A,B,C,D:
// A = p3 -3 * p2 + 3 * p1 - p0
// B = 3 * p2 - 6 * p1 +3 * p0
// C = 3 * p1 - 3 * p0
// D = p0
func bezierSpline(p0, p1, p2, p3, t float64) float64 {
	return (p3-3*p2+3*p1-p0)*t*t*t +
		(3*p2-6*p1+3*p0)*t*t +
		(3*p1-3*p0)*t +
		(p0)
}

// derivative of the cubic polinomial, as aX^2 + bX + c
func cubicDerivative(p0, p1, p2, p3 float64) (a, b, c float64) {
	return 3*p3 - 9*p2 + 9*p1 - 3*p0, 6*p2 - 12*p1 + 6*p0, 3*p1 - 3*p0
}

// b^2 - 4ac
func determinant(a, b, c float64) float64 { return b*b - 4*a*c }

func solve(a, b, d float64, positive bool) float64 {
	sign := 1.
	if !positive {
		sign = -1.
	}
	return (-b + math.Sqrt(d)*sign) / (2 * a)
}

func quadraticRoots(a, b, c float64) []float64 {
	if a == 0 {
		if b == 0 {
			return nil
		}
		// simple line
		return []float64{-c / b}
	}

	d := determinant(a, b, c)
	if d < 0 {
		return nil
	}
	if d == 0 {
		return []float64{solve(a, b, d, true)}
	}
	return []float64{solve(a, b, d, true), solve(a, b, d, false)}
}

type bezier interface {
	// compute the t zeroing the derivative
	criticalPoints() (tX, tY []float64)
	// compute the point a time t
	evaluateCurve(t float64) (x, y float64)
}

func computeBoundingBox(curve bezier) fixed.Rectangle26_6 {
	resX, resY := curve.criticalPoints()

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	// add begin and end point
	for _, t := range append(append(resX, 0, 1), resY...) {
		// filter invalid value
		if !(0 <= t && t <= 1) {
			continue
		}
		x, y := curve.evaluateCurve(t)
		minX, minY = math.Min(x, minX), math.Min(y, minY)
		maxX, maxY = math.Max(x, maxX), math.Max(y, maxY)
	}
	return fixed.Rectangle26_6{Min: ToFixed(minX, minY), Max: ToFixed(maxX, maxY)}
}

// Bounds returns the smallest rectangle containing the path.
// It returns false for an empty path.
func (p Path) Bounds() (fixed.Rectangle26_6, bool) {
	var (
		box        fixed.Rectangle26_6
		start, cur fixed.Point26_6
		seen       bool
	)
	// fixed.Rectangle26_6.Union drops empty rectangles, which
	// horizontal and vertical segments are
	extend := func(r fixed.Rectangle26_6) {
		if !seen {
			box, seen = r, true
			return
		}
		box = unionPoint(unionPoint(box, r.Min), r.Max)
	}
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			cur = fixed.Point26_6(op)
			start = cur
			extend(fixed.Rectangle26_6{Min: cur, Max: cur})
		case LineTo:
			end := fixed.Point26_6(op)
			extend(computeBoundingBox(line{cur, end}))
			cur = end
		case CubicTo:
			extend(computeBoundingBox(cubicBezier{cur, op[0], op[1], op[2]}))
			cur = op[2]
		case Close:
			cur = start
		}
	}
	return box, seen
}

func unionPoint(r fixed.Rectangle26_6, p fixed.Point26_6) fixed.Rectangle26_6 {
	if p.X < r.Min.X {
		r.Min.X = p.X
	}
	if p.Y < r.Min.Y {
		r.Min.Y = p.Y
	}
	if p.X > r.Max.X {
		r.Max.X = p.X
	}
	if p.Y > r.Max.Y {
		r.Max.Y = p.Y
	}
	return r
}
