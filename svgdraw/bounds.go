package svgdraw

import (
	"math"
	"unicode/utf8"

	"github.com/benoitkugler/svgwriter/svgdoc"
	"github.com/benoitkugler/svgwriter/svgpath"
)

// Bounds defines a bounding box, such as a viewport
// or a document extent.
type Bounds struct{ X, Y, W, H float64 }

// rough metrics of a proportional font, relative to the font size
const (
	textAdvance = 0.6
	textDescent = 0.25
)

// DocumentBounds returns the extent of everything doc paints,
// including half the stroke width. Text extents are estimated from
// the font size and the number of characters.
// It returns false for a document with nothing to paint.
func DocumentBounds(doc *svgdoc.Document) (Bounds, bool) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	seen := false
	add := func(x0, y0, x1, y1 float64) {
		minX, minY = math.Min(minX, x0), math.Min(minY, y0)
		maxX, maxY = math.Max(maxX, x1), math.Max(maxY, y1)
		seen = true
	}
	addPath := func(p svgpath.Path, style svgdoc.Style) {
		r, ok := p.Bounds()
		if !ok {
			return
		}
		x0, y0 := svgpath.FromFixed(r.Min)
		x1, y1 := svgpath.FromFixed(r.Max)
		half := halfStrokeWidth(style)
		add(x0-half, y0-half, x1+half, y1+half)
	}

	doc.Range(func(obj svgdoc.Object) {
		switch obj := obj.(type) {
		case svgdoc.Circle:
			c := obj.Center()
			addPath(svgpath.Circle(c.X, c.Y, obj.Radius()), obj.Style())
		case svgdoc.Polyline:
			addPath(polylinePath(obj), obj.Style())
		case svgdoc.Text:
			n := utf8.RuneCountInString(obj.Data())
			if n == 0 {
				return
			}
			size := float64(obj.FontSize())
			pos, off := obj.Position(), obj.Offset()
			x, y := pos.X+off.X, pos.Y+off.Y
			add(x, y-size, x+float64(n)*size*textAdvance, y+size*textDescent)
		}
	})
	if !seen {
		return Bounds{}, false
	}
	return Bounds{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}, true
}

// halfStrokeWidth returns the distance the stroke extends past the
// outline, zero when the object is not stroked. Invalid colors are
// not painted, so they don't count either.
func halfStrokeWidth(style svgdoc.Style) float64 {
	if _, painted, err := ResolveColor(style.StrokeColor()); err != nil || !painted {
		return 0
	}
	w, ok := style.StrokeWidth()
	if !ok {
		w = 1
	}
	return math.Max(w, 0) / 2
}
