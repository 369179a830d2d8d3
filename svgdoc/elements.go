package svgdoc

import "strconv"

// Point is a position in user space.
type Point struct {
	X, Y float64
}

// Object is one of Circle, Polyline or Text.
type Object interface {
	// renderObject writes the tag, without indentation or line break.
	renderObject(ctx RenderContext)
}

var (
	_ Object = Circle{}
	_ Object = Polyline{}
	_ Object = Text{}
)

// Circle models the <circle> element.
type Circle struct {
	center Point
	radius float64
	style  Style
}

// NewCircle returns a circle of radius 1 centered on the origin.
func NewCircle() Circle { return Circle{radius: 1} }

func (c Circle) SetCenter(center Point) Circle {
	c.center = center
	return c
}

func (c Circle) SetRadius(radius float64) Circle {
	c.radius = radius
	return c
}

func (c Circle) SetFillColor(col Color) Circle {
	c.style = c.style.SetFillColor(col)
	return c
}

func (c Circle) SetStrokeColor(col Color) Circle {
	c.style = c.style.SetStrokeColor(col)
	return c
}

func (c Circle) SetStrokeWidth(width float64) Circle {
	c.style = c.style.SetStrokeWidth(width)
	return c
}

func (c Circle) SetStrokeLineCap(lineCap StrokeLineCap) Circle {
	c.style = c.style.SetStrokeLineCap(lineCap)
	return c
}

func (c Circle) SetStrokeLineJoin(lineJoin StrokeLineJoin) Circle {
	c.style = c.style.SetStrokeLineJoin(lineJoin)
	return c
}

// SetStyle replaces all the painting attributes at once.
func (c Circle) SetStyle(s Style) Circle {
	c.style = s
	return c
}

func (c Circle) Center() Point   { return c.center }
func (c Circle) Radius() float64 { return c.radius }
func (c Circle) Style() Style    { return c.style }

func (c Circle) renderObject(ctx RenderContext) {
	out := ctx.Out
	out.WriteString(`<circle cx="`)
	out.WriteString(formatNumber(c.center.X))
	out.WriteString(`" cy="`)
	out.WriteString(formatNumber(c.center.Y))
	out.WriteString(`" r="`)
	out.WriteString(formatNumber(c.radius))
	out.WriteString(`" `)
	c.style.RenderAttrs(out)
	out.WriteString("/>")
}

// Polyline models the <polyline> element.
type Polyline struct {
	points []Point
	style  Style
}

// NewPolyline returns a polyline without points.
func NewPolyline() Polyline { return Polyline{} }

// AddPoint appends a vertex. The returned value never shares
// its point storage with the receiver, so a partially built polyline
// may be extended in several directions.
func (p Polyline) AddPoint(pt Point) Polyline {
	n := len(p.points)
	p.points = append(p.points[:n:n], pt)
	return p
}

func (p Polyline) SetFillColor(col Color) Polyline {
	p.style = p.style.SetFillColor(col)
	return p
}

func (p Polyline) SetStrokeColor(col Color) Polyline {
	p.style = p.style.SetStrokeColor(col)
	return p
}

func (p Polyline) SetStrokeWidth(width float64) Polyline {
	p.style = p.style.SetStrokeWidth(width)
	return p
}

func (p Polyline) SetStrokeLineCap(lineCap StrokeLineCap) Polyline {
	p.style = p.style.SetStrokeLineCap(lineCap)
	return p
}

func (p Polyline) SetStrokeLineJoin(lineJoin StrokeLineJoin) Polyline {
	p.style = p.style.SetStrokeLineJoin(lineJoin)
	return p
}

func (p Polyline) SetStyle(s Style) Polyline {
	p.style = s
	return p
}

// Points returns a copy of the vertices, in insertion order.
func (p Polyline) Points() []Point { return append([]Point(nil), p.points...) }

func (p Polyline) Style() Style { return p.style }

func (p Polyline) renderObject(ctx RenderContext) {
	out := ctx.Out
	out.WriteString(`<polyline points="`)
	for i, pt := range p.points {
		if i > 0 {
			out.WriteByte(' ')
		}
		out.WriteString(formatNumber(pt.X))
		out.WriteByte(',')
		out.WriteString(formatNumber(pt.Y))
	}
	out.WriteString(`" `)
	p.style.RenderAttrs(out)
	out.WriteString("/>")
}

// Text models the <text> element.
type Text struct {
	position, offset Point
	fontSize         uint32
	fontFamily       string
	fontWeight       string
	data             string
	style            Style
}

// NewText returns an empty text with font size 1.
func NewText() Text { return Text{fontSize: 1} }

// SetPosition sets the anchor point (x and y attributes).
func (t Text) SetPosition(pos Point) Text {
	t.position = pos
	return t
}

// SetOffset sets the shift from the anchor point (dx and dy attributes).
func (t Text) SetOffset(offset Point) Text {
	t.offset = offset
	return t
}

func (t Text) SetFontSize(size uint32) Text {
	t.fontSize = size
	return t
}

// SetFontFamily sets the font-family attribute; empty omits it.
func (t Text) SetFontFamily(family string) Text {
	t.fontFamily = family
	return t
}

// SetFontWeight sets the font-weight attribute; empty omits it.
func (t Text) SetFontWeight(weight string) Text {
	t.fontWeight = weight
	return t
}

// SetData sets the raw content. It is escaped on output.
func (t Text) SetData(data string) Text {
	t.data = data
	return t
}

func (t Text) SetFillColor(col Color) Text {
	t.style = t.style.SetFillColor(col)
	return t
}

func (t Text) SetStrokeColor(col Color) Text {
	t.style = t.style.SetStrokeColor(col)
	return t
}

func (t Text) SetStrokeWidth(width float64) Text {
	t.style = t.style.SetStrokeWidth(width)
	return t
}

func (t Text) SetStrokeLineCap(lineCap StrokeLineCap) Text {
	t.style = t.style.SetStrokeLineCap(lineCap)
	return t
}

func (t Text) SetStrokeLineJoin(lineJoin StrokeLineJoin) Text {
	t.style = t.style.SetStrokeLineJoin(lineJoin)
	return t
}

func (t Text) SetStyle(s Style) Text {
	t.style = s
	return t
}

func (t Text) Position() Point    { return t.position }
func (t Text) Offset() Point      { return t.offset }
func (t Text) FontSize() uint32   { return t.fontSize }
func (t Text) FontFamily() string { return t.fontFamily }
func (t Text) FontWeight() string { return t.fontWeight }
func (t Text) Data() string       { return t.data }
func (t Text) Style() Style       { return t.style }

func (t Text) renderObject(ctx RenderContext) {
	out := ctx.Out
	out.WriteString(`<text x="`)
	out.WriteString(formatNumber(t.position.X))
	out.WriteString(`" y="`)
	out.WriteString(formatNumber(t.position.Y))
	out.WriteString(`" dx="`)
	out.WriteString(formatNumber(t.offset.X))
	out.WriteString(`" dy="`)
	out.WriteString(formatNumber(t.offset.Y))
	out.WriteString(`" font-size="`)
	out.WriteString(strconv.FormatUint(uint64(t.fontSize), 10))
	out.WriteString(`" `)
	if t.fontFamily != "" {
		writeAttr(out, "font-family", t.fontFamily)
	}
	if t.fontWeight != "" {
		writeAttr(out, "font-weight", t.fontWeight)
	}
	t.style.RenderAttrs(out)
	out.WriteByte('>')
	out.WriteString(EscapeText(t.data))
	out.WriteString("</text>")
}
