// Package shapes provides composite drawings built from
// svgdoc primitives.
package shapes

import (
	"math"

	"github.com/benoitkugler/svgwriter/svgdoc"
)

var (
	_ svgdoc.Drawable = Triangle{}
	_ svgdoc.Drawable = Star{}
	_ svgdoc.Drawable = Snowman{}
	_ svgdoc.Drawable = Label{}
)

// DrawPicture asks each drawable, in order, to draw itself into target.
func DrawPicture(target svgdoc.ObjectContainer, drawables ...svgdoc.Drawable) {
	for _, d := range drawables {
		d.Draw(target)
	}
}

// Triangle is drawn as an unstyled closed polyline.
type Triangle struct {
	P1, P2, P3 svgdoc.Point
}

func (t Triangle) Draw(c svgdoc.ObjectContainer) {
	c.Add(svgdoc.NewPolyline().AddPoint(t.P1).AddPoint(t.P2).AddPoint(t.P3).AddPoint(t.P1))
}

// Star is a red polygon with black outline, alternating between
// the outer and inner radius. Its first ray points up.
type Star struct {
	Center                   svgdoc.Point
	OuterRadius, InnerRadius float64
	Rays                     int
}

// Polyline returns the outline of the star, with 2*Rays+1 points.
// A star without rays has no points.
func (s Star) Polyline() svgdoc.Polyline {
	p := svgdoc.NewPolyline().SetFillColor(svgdoc.NamedColor("red")).SetStrokeColor(svgdoc.NamedColor("black"))
	if s.Rays <= 0 {
		return p
	}
	n := float64(s.Rays)
	for i := 0; i <= s.Rays; i++ {
		angle := 2 * math.Pi * float64(i%s.Rays) / n
		p = p.AddPoint(s.pointAt(s.OuterRadius, angle))
		if i == s.Rays {
			break
		}
		angle += math.Pi / n
		p = p.AddPoint(s.pointAt(s.InnerRadius, angle))
	}
	return p
}

func (s Star) pointAt(radius, angle float64) svgdoc.Point {
	return svgdoc.Point{X: s.Center.X + radius*math.Sin(angle), Y: s.Center.Y - radius*math.Cos(angle)}
}

func (s Star) Draw(c svgdoc.ObjectContainer) { c.Add(s.Polyline()) }

const (
	torsoRadiusRatio = 1.5
	legsRadiusRatio  = 2.0
	torsoDelta       = 2.0 // head center to torso center, in head radii
	legsDelta        = 3.0 // torso center to legs center, in head radii
)

var snowColor = svgdoc.NewRGB(240, 240, 240)

// Snowman is three stacked circles; Head is the center of the top one.
type Snowman struct {
	Head       svgdoc.Point
	HeadRadius float64
}

// Draw adds the legs, then the torso, then the head, so that
// upper parts cover the lower ones.
func (s Snowman) Draw(c svgdoc.ObjectContainer) {
	r := s.HeadRadius
	torsoY := s.Head.Y + r*torsoDelta
	c.Add(s.ball(svgdoc.Point{X: s.Head.X, Y: torsoY + r*legsDelta}, r*legsRadiusRatio))
	c.Add(s.ball(svgdoc.Point{X: s.Head.X, Y: torsoY}, r*torsoRadiusRatio))
	c.Add(s.ball(s.Head, r))
}

func (Snowman) ball(center svgdoc.Point, radius float64) svgdoc.Circle {
	return svgdoc.NewCircle().SetCenter(center).SetRadius(radius).
		SetFillColor(snowColor).SetStrokeColor(svgdoc.NamedColor("black"))
}

// underlayWidth is the stroke width of the halo drawn below labels.
const underlayWidth = 3

// Label draws Text, preceded by a halo copy painted with Underlay
// when it is not nil.
type Label struct {
	Text     svgdoc.Text
	Underlay svgdoc.Color
}

func (l Label) Draw(c svgdoc.ObjectContainer) {
	if l.Underlay != nil {
		c.Add(l.Text.
			SetStrokeColor(l.Underlay).
			SetFillColor(l.Underlay).
			SetStrokeLineJoin(svgdoc.RoundJoin).
			SetStrokeLineCap(svgdoc.RoundCap).
			SetStrokeWidth(underlayWidth))
	}
	c.Add(l.Text)
}
