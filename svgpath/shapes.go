package svgpath

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// This file implements the transformation from
// high level shapes to their path equivalent

// ellipseSegments is the number of cubic splices approximating a full
// ellipse, so that each one spans pi/8 radians.
const ellipseSegments = 16

// Circle returns the closed outline of a circle.
// A non positive radius yields an empty path.
func Circle(cx, cy, r float64) Path {
	var p Path
	if r <= 0 {
		return p
	}
	p.addEllipse(cx, cy, r, r)
	return p
}

// Polyline returns the open path joining the given vertices.
// Less than two vertices yield an empty path.
func Polyline(points ...fixed.Point26_6) Path {
	var p Path
	if len(points) < 2 {
		return p
	}
	p.Start(points[0])
	for _, pt := range points[1:] {
		p.Line(pt)
	}
	p.Stop(false)
	return p
}

// addEllipse adds an axis aligned ellipse, starting at its rightmost point.
func (p *Path) addEllipse(cx, cy, rx, ry float64) {
	segs := ellipseSegments
	dEta := 2 * math.Pi / float64(segs) // span of each segment
	// Approximate the ellipse using a set of cubic bezier curves by the method of
	// L. Maisonobe, "Drawing an elliptical arc using polylines, quadratic
	// or cubic Bezier curves", 2003
	// https://www.spaceroots.org/documents/elllipse/elliptical-arc.pdf
	tde := math.Tan(dEta / 2)
	alpha := math.Sin(dEta) * (math.Sqrt(4+3*tde*tde) - 1) / 3
	lx, ly := cx+rx, cy
	ldx, ldy := ellipsePrime(rx, ry, 0, 1, 0, cx, cy)
	p.Start(ToFixed(lx, ly))
	for i := 1; i <= segs; i++ {
		eta := dEta * float64(i)
		var px, py float64
		if i == segs {
			px, py = cx+rx, cy // Just makes the end point exact; no roundoff error
		} else {
			px, py = ellipsePointAt(rx, ry, 0, 1, eta, cx, cy)
		}
		dx, dy := ellipsePrime(rx, ry, 0, 1, eta, cx, cy)
		p.CubeBezier(ToFixed(lx+alpha*ldx, ly+alpha*ldy),
			ToFixed(px-alpha*dx, py-alpha*dy), ToFixed(px, py))
		lx, ly, ldx, ldy = px, py, dx, dy
	}
	p.Stop(true)
}

// ellipsePrime gives tangent vectors for parameterized elipse; a, b, radii, eta parameter, center cx, cy
func ellipsePrime(a, b, sinTheta, cosTheta, eta, cx, cy float64) (px, py float64) {
	bCosEta := b * math.Cos(eta)
	aSinEta := a * math.Sin(eta)
	px = -aSinEta*cosTheta - bCosEta*sinTheta
	py = -aSinEta*sinTheta + bCosEta*cosTheta
	return
}

// ellipsePointAt gives points for parameterized elipse; a, b, radii, eta parameter, center cx, cy
func ellipsePointAt(a, b, sinTheta, cosTheta, eta, cx, cy float64) (px, py float64) {
	aCosEta := a * math.Cos(eta)
	bSinEta := b * math.Sin(eta)
	px = cx + aCosEta*cosTheta - bSinEta*sinTheta
	py = cy + aCosEta*sinTheta + bSinEta*cosTheta
	return
}
