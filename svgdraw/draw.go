// Given a built svgdoc.Document, implements how to
// draw it on screen.
// This requires a driver implementing the actual draw operations,
// such as a rasterizer to output .png images or a pdf writer.
package svgdraw

import (
	"image/color"

	"github.com/benoitkugler/svgwriter/svgdoc"
	"github.com/benoitkugler/svgwriter/svgpath"
	"golang.org/x/image/math/fixed"
)

// Drawer knows how to do the actual draw operations
// but doesn't need any SVG kwowledge.
type Drawer interface {
	// Clear must reset the internal state (used before starting a new path painting)
	Clear()

	// Start starts a new path at the given point.
	Start(a fixed.Point26_6)

	// Line Adds a line for the current point to `b`
	Line(b fixed.Point26_6)

	// CubeBezier adds a cubic bezier curve to the path
	CubeBezier(b, c, d fixed.Point26_6)

	// Closes the path to the start point if `closeLoop` is true
	Stop(closeLoop bool)

	// SetColor set the color for the current path
	SetColor(c color.NRGBA)

	// Draw fills or strokes the accumulated path using the current settings
	Draw()
}

type Stroker interface {
	Drawer

	// Parametrize the stroking style for the current path
	SetStrokeOptions(options StrokeOptions)
}

type Driver interface {
	// SetupDrawers returns the backend painters, and
	// will be called at the begining of every path.
	// If the `willXXX` boolean is false, the returned drawer should be nil
	// to avoid useless operations.
	// When both booleans are true, one can assume that the exact same draw operations
	// will be performed on the filler first and then on the Stroker.
	SetupDrawers(willFill, willStroke bool) (filler Drawer, stroker Stroker)

	// DrawText paints a text label.
	DrawText(text TextOptions)
}

// JoinMode type to specify how segments join.
type JoinMode uint8

const (
	Arc JoinMode = iota
	Round
	Bevel
	Miter
	MiterClip
)

func (s JoinMode) String() string {
	switch s {
	case Round:
		return "Round"
	case Bevel:
		return "Bevel"
	case Miter:
		return "Miter"
	case MiterClip:
		return "MiterClip"
	case Arc:
		return "Arc"
	default:
		return "<unknown JoinMode>"
	}
}

// CapMode defines how to draw caps on the ends of lines
type CapMode uint8

const (
	ButtCap CapMode = iota
	SquareCap
	RoundCap
)

func (c CapMode) String() string {
	switch c {
	case ButtCap:
		return "ButtCap"
	case SquareCap:
		return "SquareCap"
	case RoundCap:
		return "RoundCap"
	default:
		return "<unknown CapMode>"
	}
}

var (
	joinModes = [...]JoinMode{
		svgdoc.ArcsJoin:      Arc,
		svgdoc.BevelJoin:     Bevel,
		svgdoc.MiterJoin:     Miter,
		svgdoc.MiterClipJoin: MiterClip,
		svgdoc.RoundJoin:     Round,
	}

	capModes = [...]CapMode{
		svgdoc.ButtCap:   ButtCap,
		svgdoc.RoundCap:  RoundCap,
		svgdoc.SquareCap: SquareCap,
	}
)

type StrokeOptions struct {
	LineWidth  fixed.Int26_6 // width of the line
	MiterLimit fixed.Int26_6 // the miter cutoff value for miter, arc and miterclip join modes
	LineCap    CapMode
	LineJoin   JoinMode
}

// TextOptions describes a text label, with its offset already
// applied to the anchor.
type TextOptions struct {
	X, Y   float64 // baseline start
	Size   float64
	Family string
	Weight string
	Data   string // raw, not escaped
	Color  color.NRGBA
}

// DefaultStroke holds the SVG initial values for the stroking
// properties: width 1, butt caps, miter joins, miter limit 4.
var DefaultStroke = StrokeOptions{
	LineWidth:  fixed.I(1),
	MiterLimit: fixed.I(4),
	LineCap:    ButtCap,
	LineJoin:   Miter,
}

// defaultFill is the SVG initial value of the fill property.
// Stroke is initially none.
const defaultFill = svgdoc.NamedColor("black")

// Draw paints every object of doc into `d`, in insertion order.
// It stops on the first color which can't be resolved.
func Draw(doc *svgdoc.Document, d Driver) error {
	var err error
	doc.Range(func(obj svgdoc.Object) {
		if err != nil {
			return
		}
		err = drawObject(d, obj)
	})
	return err
}

func drawObject(d Driver, obj svgdoc.Object) error {
	switch obj := obj.(type) {
	case svgdoc.Circle:
		c := obj.Center()
		return drawPath(d, svgpath.Circle(c.X, c.Y, obj.Radius()), obj.Style())
	case svgdoc.Polyline:
		return drawPath(d, polylinePath(obj), obj.Style())
	case svgdoc.Text:
		return drawText(d, obj)
	}
	return nil
}

func polylinePath(p svgdoc.Polyline) svgpath.Path {
	points := p.Points()
	fixedPoints := make([]fixed.Point26_6, len(points))
	for i, pt := range points {
		fixedPoints[i] = svgpath.ToFixed(pt.X, pt.Y)
	}
	return svgpath.Polyline(fixedPoints...)
}

// paint resolves c, falling back on def when c is unset.
func paint(c, def svgdoc.Color) (color.NRGBA, bool, error) {
	if c == nil {
		c = def
	}
	if c == nil {
		return color.NRGBA{}, false, nil
	}
	return ResolveColor(c)
}

// strokeOptions applies the style on top of DefaultStroke.
func strokeOptions(style svgdoc.Style) StrokeOptions {
	opts := DefaultStroke
	if w, ok := style.StrokeWidth(); ok {
		opts.LineWidth = fixed.Int26_6(w * 64)
	}
	if lc, ok := style.StrokeLineCap(); ok && int(lc) < len(capModes) {
		opts.LineCap = capModes[lc]
	}
	if lj, ok := style.StrokeLineJoin(); ok && int(lj) < len(joinModes) {
		opts.LineJoin = joinModes[lj]
	}
	return opts
}

func drawPath(d Driver, path svgpath.Path, style svgdoc.Style) error {
	fill, willFill, err := paint(style.FillColor(), defaultFill)
	if err != nil {
		return err
	}
	stroke, willStroke, err := paint(style.StrokeColor(), nil)
	if err != nil {
		return err
	}
	if len(path) == 0 {
		return nil
	}
	opts := strokeOptions(style)
	if opts.LineWidth <= 0 {
		willStroke = false
	}

	filler, stroker := d.SetupDrawers(willFill, willStroke)
	if willFill && filler != nil { // nil color disable filling
		filler.Clear()
		replay(filler, path)
		filler.SetColor(fill)
		filler.Draw()
	}

	if willStroke && stroker != nil { // nil color disable lining
		stroker.Clear()
		stroker.SetStrokeOptions(opts)
		replay(stroker, path)
		stroker.SetColor(stroke)
		stroker.Draw()
	}
	return nil
}

// replay sends the operations of p to dr.
func replay(dr Drawer, p svgpath.Path) {
	for _, op := range p {
		switch op := op.(type) {
		case svgpath.MoveTo:
			dr.Start(fixed.Point26_6(op))
		case svgpath.LineTo:
			dr.Line(fixed.Point26_6(op))
		case svgpath.CubicTo:
			dr.CubeBezier(op[0], op[1], op[2])
		case svgpath.Close:
			dr.Stop(true)
		}
	}
	dr.Stop(false)
}

func drawText(d Driver, t svgdoc.Text) error {
	fill, willFill, err := paint(t.Style().FillColor(), defaultFill)
	if err != nil || !willFill || t.Data() == "" {
		return err
	}
	pos, off := t.Position(), t.Offset()
	d.DrawText(TextOptions{
		X:      pos.X + off.X,
		Y:      pos.Y + off.Y,
		Size:   float64(t.FontSize()),
		Family: t.FontFamily(),
		Weight: t.FontWeight(),
		Data:   t.Data(),
		Color:  fill,
	})
	return nil
}
