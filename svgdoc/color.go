package svgdoc

import (
	"math"
	"strconv"
	"strings"
)

// Color is one of NamedColor, RGB or RGBA.
// A nil Color is unset: style attributes holding it are not written.
type Color interface {
	isColor()
	String() string
}

// NamedColor is a raw color keyword, written as is.
type NamedColor string

// RGB is an opaque color with 8-bit channels.
type RGB struct {
	Red, Green, Blue uint8
}

// RGBA is a color with 8-bit channels and an opacity in [0,1].
type RGBA struct {
	Red, Green, Blue uint8
	Opacity          float64
}

// NoneColor disables painting.
const NoneColor = NamedColor("none")

func (NamedColor) isColor() {}
func (RGB) isColor()        {}
func (RGBA) isColor()       {}

// NewRGB returns the given color.
func NewRGB(red, green, blue uint8) RGB { return RGB{Red: red, Green: green, Blue: blue} }

// NewRGBA returns a fully opaque color; change Opacity to blend it.
func NewRGBA(red, green, blue uint8) RGBA {
	return RGBA{Red: red, Green: green, Blue: blue, Opacity: 1}
}

func (c NamedColor) String() string { return string(c) }

func (c RGB) String() string {
	var sb strings.Builder
	sb.WriteString("rgb(")
	writeChannels(&sb, c.Red, c.Green, c.Blue)
	sb.WriteByte(')')
	return sb.String()
}

func (c RGBA) String() string {
	var sb strings.Builder
	sb.WriteString("rgba(")
	writeChannels(&sb, c.Red, c.Green, c.Blue)
	sb.WriteByte(',')
	sb.WriteString(formatNumber(c.Opacity))
	sb.WriteByte(')')
	return sb.String()
}

func writeChannels(sb *strings.Builder, r, g, b uint8) {
	sb.WriteString(strconv.Itoa(int(r)))
	sb.WriteByte(',')
	sb.WriteString(strconv.Itoa(int(g)))
	sb.WriteByte(',')
	sb.WriteString(strconv.Itoa(int(b)))
}

// FormatColor returns the attribute value for c.
// An unset color has no textual form and yields the empty string.
func FormatColor(c Color) string {
	if c == nil {
		return ""
	}
	return c.String()
}

// formatNumber prints f with at most 6 significant digits and
// no trailing zeros, so that 10 is written "10" and 0.5 "0.5".
// Non finite values are written nan, inf and -inf.
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'g', 6, 64)
}
