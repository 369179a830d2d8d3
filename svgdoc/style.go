package svgdoc

import "io"

// StrokeLineCap is the shape used at the end of open subpaths.
type StrokeLineCap uint8

const (
	ButtCap StrokeLineCap = iota
	RoundCap
	SquareCap
)

var lineCapTokens = [...]string{
	ButtCap:   "butt",
	RoundCap:  "round",
	SquareCap: "square",
}

func (c StrokeLineCap) String() string {
	if int(c) < len(lineCapTokens) {
		return lineCapTokens[c]
	}
	return "<unknown StrokeLineCap>"
}

// StrokeLineJoin is the shape used at the corners of stroked paths.
type StrokeLineJoin uint8

const (
	ArcsJoin StrokeLineJoin = iota
	BevelJoin
	MiterJoin
	MiterClipJoin
	RoundJoin
)

var lineJoinTokens = [...]string{
	ArcsJoin:      "arcs",
	BevelJoin:     "bevel",
	MiterJoin:     "miter",
	MiterClipJoin: "miter-clip",
	RoundJoin:     "round",
}

func (j StrokeLineJoin) String() string {
	if int(j) < len(lineJoinTokens) {
		return lineJoinTokens[j]
	}
	return "<unknown StrokeLineJoin>"
}

// Style holds the painting attributes shared by every primitive.
// Each attribute is optional; the zero value has none set.
type Style struct {
	fill, stroke Color

	strokeWidth    *float64
	strokeLineCap  *StrokeLineCap
	strokeLineJoin *StrokeLineJoin
}

// SetFillColor sets the fill attribute. A nil color removes it.
func (s Style) SetFillColor(c Color) Style {
	s.fill = c
	return s
}

// SetStrokeColor sets the stroke attribute. A nil color removes it.
func (s Style) SetStrokeColor(c Color) Style {
	s.stroke = c
	return s
}

func (s Style) SetStrokeWidth(width float64) Style {
	s.strokeWidth = &width
	return s
}

func (s Style) SetStrokeLineCap(lineCap StrokeLineCap) Style {
	s.strokeLineCap = &lineCap
	return s
}

func (s Style) SetStrokeLineJoin(lineJoin StrokeLineJoin) Style {
	s.strokeLineJoin = &lineJoin
	return s
}

// FillColor returns the fill color, nil if unset.
func (s Style) FillColor() Color { return s.fill }

// StrokeColor returns the stroke color, nil if unset.
func (s Style) StrokeColor() Color { return s.stroke }

func (s Style) StrokeWidth() (float64, bool) {
	if s.strokeWidth == nil {
		return 0, false
	}
	return *s.strokeWidth, true
}

func (s Style) StrokeLineCap() (StrokeLineCap, bool) {
	if s.strokeLineCap == nil {
		return 0, false
	}
	return *s.strokeLineCap, true
}

func (s Style) StrokeLineJoin() (StrokeLineJoin, bool) {
	if s.strokeLineJoin == nil {
		return 0, false
	}
	return *s.strokeLineJoin, true
}

// RenderAttrs writes the attributes which are set, in the order
// fill, stroke, stroke-width, stroke-linecap, stroke-linejoin.
// Each one is followed by a space.
func (s Style) RenderAttrs(w io.StringWriter) {
	if s.fill != nil {
		writeAttr(w, "fill", s.fill.String())
	}
	if s.stroke != nil {
		writeAttr(w, "stroke", s.stroke.String())
	}
	if s.strokeWidth != nil {
		writeAttr(w, "stroke-width", formatNumber(*s.strokeWidth))
	}
	if s.strokeLineCap != nil {
		writeAttr(w, "stroke-linecap", s.strokeLineCap.String())
	}
	if s.strokeLineJoin != nil {
		writeAttr(w, "stroke-linejoin", s.strokeLineJoin.String())
	}
}

// writeAttr writes name="value" followed by a space. value is not escaped.
func writeAttr(w io.StringWriter, name, value string) {
	w.WriteString(name)
	w.WriteString(`="`)
	w.WriteString(value)
	w.WriteString(`" `)
}
