// Implements a raster backend to render svgdoc documents,
// by wrapping rasterx.
package svgraster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/benoitkugler/svgwriter/svgdoc"
	"github.com/benoitkugler/svgwriter/svgdraw"
	"github.com/benoitkugler/svgwriter/svgpath"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var _ svgdraw.Driver = (*Renderer)(nil) // assert interface conformance

type Renderer struct {
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance
	dst    draw.Image      // target of text painting
}

// NewRenderer returns a renderer painting into dst.
// In addition to rasterizing lines like a Scanner,
// it can also rasterize cubic bezier curves.
// If scanner is nil, a rasterx.ScannerGV targeting dst is used.
func NewRenderer(width, height int, dst draw.Image, scanner rasterx.Scanner) *Renderer {
	if scanner == nil {
		scanner = rasterx.NewScannerGV(width, height, dst, dst.Bounds())
	}
	return &Renderer{
		dasher: rasterx.NewDasher(width, height, scanner),
		filler: rasterx.NewFiller(width, height, scanner),
		dst:    dst,
	}
}

// RasterDocument paints doc on a new width x height image.
// A nil background leaves the image transparent.
func RasterDocument(doc *svgdoc.Document, width, height int, background color.Color) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	}
	renderer := NewRenderer(width, height, img, nil)
	if err := svgdraw.Draw(doc, renderer); err != nil {
		return nil, fmt.Errorf("rasterizing document: %w", err)
	}
	return img, nil
}

// WritePNG rasterizes doc and encodes it as PNG.
func WritePNG(doc *svgdoc.Document, width, height int, background color.Color, out io.Writer) error {
	img, err := RasterDocument(doc, width, height, background)
	if err != nil {
		return err
	}
	return png.Encode(out, img)
}

type filler struct{ *rasterx.Filler }

func (f filler) SetColor(c color.NRGBA) { f.Filler.SetColor(c) }

type stroker struct{ *rasterx.Dasher }

func (s stroker) SetColor(c color.NRGBA) { s.Dasher.SetColor(c) }

var (
	joinToJoin = [...]rasterx.JoinMode{
		svgdraw.Round:     rasterx.Round,
		svgdraw.Bevel:     rasterx.Bevel,
		svgdraw.Miter:     rasterx.Miter,
		svgdraw.MiterClip: rasterx.MiterClip,
		svgdraw.Arc:       rasterx.Arc,
	}

	capToFunc = [...]rasterx.CapFunc{
		svgdraw.ButtCap:   rasterx.ButtCap,
		svgdraw.SquareCap: rasterx.SquareCap,
		svgdraw.RoundCap:  rasterx.RoundCap,
	}
)

func (s stroker) SetStrokeOptions(options svgdraw.StrokeOptions) {
	lineCap := capToFunc[options.LineCap]
	s.Dasher.SetStroke(
		options.LineWidth, options.MiterLimit, lineCap, lineCap,
		rasterx.FlatGap, joinToJoin[options.LineJoin], nil, 0,
	)
}

func (rd *Renderer) SetupDrawers(willFill, willStroke bool) (f svgdraw.Drawer, s svgdraw.Stroker) {
	if willFill {
		f = filler{rd.filler}
	}
	if willStroke {
		s = stroker{rd.dasher}
	}
	return f, s
}

// DrawText paints the label with a fixed 7x13 bitmap face:
// the font size, family and weight are not honored.
func (rd *Renderer) DrawText(text svgdraw.TextOptions) {
	d := font.Drawer{
		Dst:  rd.dst,
		Src:  image.NewUniform(text.Color),
		Face: basicfont.Face7x13,
		Dot:  svgpath.ToFixed(text.X, text.Y),
	}
	d.DrawString(text.Data)
}
