package svgdraw

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/benoitkugler/svgwriter/svgdoc"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned for named colors which are neither
// a CSS color keyword nor a #hex, rgb() or rgba() notation.
var ErrInvalidColor = errors.New("invalid color")

// ResolveColor returns the paint described by c.
// The boolean is false when nothing should be painted,
// that is for a nil color, "none" and "transparent".
func ResolveColor(c svgdoc.Color) (color.NRGBA, bool, error) {
	switch c := c.(type) {
	case nil:
		return color.NRGBA{}, false, nil
	case svgdoc.RGB:
		return color.NRGBA{R: c.Red, G: c.Green, B: c.Blue, A: 0xff}, true, nil
	case svgdoc.RGBA:
		return color.NRGBA{R: c.Red, G: c.Green, B: c.Blue, A: opacityToAlpha(c.Opacity)}, true, nil
	case svgdoc.NamedColor:
		return parseNamedColor(string(c))
	default:
		return color.NRGBA{}, false, fmt.Errorf("%w: unsupported color type %T", ErrInvalidColor, c)
	}
}

// opacityToAlpha maps NaN to transparent.
func opacityToAlpha(opacity float64) uint8 {
	if math.IsNaN(opacity) {
		return 0
	}
	return uint8(clamp(opacity, 0, 1)*255 + 0.5)
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func parseNamedColor(token string) (color.NRGBA, bool, error) {
	v := strings.ToLower(strings.TrimSpace(token))
	switch {
	case v == "none", v == "transparent":
		return color.NRGBA{}, false, nil
	case strings.HasPrefix(v, "#"):
		return parseHexColor(token, v[1:])
	case strings.HasPrefix(v, "rgba(") && strings.HasSuffix(v, ")"):
		return parseFunctionalColor(token, v[len("rgba("):len(v)-1], true)
	case strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")"):
		return parseFunctionalColor(token, v[len("rgb("):len(v)-1], false)
	}
	if named, ok := colornames.Map[v]; ok {
		return color.NRGBA{R: named.R, G: named.G, B: named.B, A: named.A}, true, nil
	}
	return color.NRGBA{}, false, fmt.Errorf("%w: %q", ErrInvalidColor, token)
}

func parseHexColor(token, hex string) (color.NRGBA, bool, error) {
	switch len(hex) {
	case 3:
		// #rgb is a shorthand for #rrggbb
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return color.NRGBA{}, false, fmt.Errorf("%w: %q", ErrInvalidColor, token)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, false, fmt.Errorf("%w: %q", ErrInvalidColor, token)
	}
	return color.NRGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 0xff}, true, nil
}

// parseFunctionalColor parses the arguments of rgb() and rgba().
// Channels are integers in [0,255] or percentages.
func parseFunctionalColor(token, args string, withAlpha bool) (color.NRGBA, bool, error) {
	fields := strings.Split(args, ",")
	want := 3
	if withAlpha {
		want = 4
	}
	if len(fields) != want {
		return color.NRGBA{}, false, fmt.Errorf("%w: %q", ErrInvalidColor, token)
	}
	var channels [3]uint8
	for i := range channels {
		f := strings.TrimSpace(fields[i])
		var (
			v   float64
			err error
		)
		if strings.HasSuffix(f, "%") {
			v, err = strconv.ParseFloat(strings.TrimSuffix(f, "%"), 64)
			v = v * 255 / 100
		} else {
			v, err = strconv.ParseFloat(f, 64)
		}
		if err != nil || !isFinite(v) {
			return color.NRGBA{}, false, fmt.Errorf("%w: %q", ErrInvalidColor, token)
		}
		channels[i] = uint8(clamp(math.Round(v), 0, 255))
	}
	out := color.NRGBA{R: channels[0], G: channels[1], B: channels[2], A: 0xff}
	if withAlpha {
		a, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64)
		if err != nil || !isFinite(a) {
			return color.NRGBA{}, false, fmt.Errorf("%w: %q", ErrInvalidColor, token)
		}
		out.A = opacityToAlpha(a)
	}
	return out, true, nil
}
