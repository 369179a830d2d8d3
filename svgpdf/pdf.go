// Implements a PDF backend to render svgdoc documents,
// by wrapping gofpdf.
package svgpdf

import (
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/benoitkugler/svgwriter/svgdoc"
	"github.com/benoitkugler/svgwriter/svgdraw"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/math/fixed"
)

var _ svgdraw.Driver = Renderer{} // assert interface conformance

// Renderer paints on the current page of a gofpdf document.
// User space units are mapped to the document unit.
type Renderer struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func NewRenderer(pdf *gofpdf.Fpdf) Renderer {
	return Renderer{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

// RenderDocument writes a one page PDF of size width x height points
// showing doc.
func RenderDocument(doc *svgdoc.Document, width, height float64, out io.Writer) error {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	if err := svgdraw.Draw(doc, NewRenderer(pdf)); err != nil {
		return fmt.Errorf("painting document: %w", err)
	}
	return pdf.Output(out)
}

func fl(x fixed.Int26_6) float64 { return float64(x) / 64 }

type pather struct {
	pdf *gofpdf.Fpdf
}

func (pather) Clear() {}

func (f pather) Start(a fixed.Point26_6) { f.pdf.MoveTo(fl(a.X), fl(a.Y)) }

func (f pather) Line(b fixed.Point26_6) { f.pdf.LineTo(fl(b.X), fl(b.Y)) }

func (f pather) CubeBezier(b, c, d fixed.Point26_6) {
	f.pdf.CurveBezierCubicTo(fl(b.X), fl(b.Y), fl(c.X), fl(c.Y), fl(d.X), fl(d.Y))
}

func (f pather) Stop(closeLoop bool) {
	if closeLoop {
		f.pdf.ClosePath()
	}
}

type filler struct {
	pather
}

func (f filler) SetColor(c color.NRGBA) {
	f.pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
	f.pdf.SetAlpha(float64(c.A)/255, "Normal")
}

func (f filler) Draw() { f.pdf.DrawPath("f") }

type stroker struct {
	pather
}

var (
	capStyles = [...]string{
		svgdraw.ButtCap:   "butt",
		svgdraw.SquareCap: "square",
		svgdraw.RoundCap:  "round",
	}

	// PDF has no arc or clipped miter joins
	joinStyles = [...]string{
		svgdraw.Arc:       "miter",
		svgdraw.Round:     "round",
		svgdraw.Bevel:     "bevel",
		svgdraw.Miter:     "miter",
		svgdraw.MiterClip: "miter",
	}
)

func (s stroker) SetStrokeOptions(options svgdraw.StrokeOptions) {
	s.pdf.SetLineWidth(fl(options.LineWidth))
	s.pdf.SetLineCapStyle(capStyles[options.LineCap])
	s.pdf.SetLineJoinStyle(joinStyles[options.LineJoin])
}

func (s stroker) SetColor(c color.NRGBA) {
	s.pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
	s.pdf.SetAlpha(float64(c.A)/255, "Normal")
}

func (s stroker) Draw() { s.pdf.DrawPath("D") }

func (rd Renderer) SetupDrawers(willFill, willStroke bool) (f svgdraw.Drawer, s svgdraw.Stroker) {
	if willFill {
		f = filler{pather{rd.pdf}}
	}
	if willStroke {
		s = stroker{pather{rd.pdf}}
	}
	return f, s
}

// DrawText uses the standard PDF fonts, chosen by FontFamily
// and FontWeight.
func (rd Renderer) DrawText(text svgdraw.TextOptions) {
	family, style := FontFor(text.Family, text.Weight)
	rd.pdf.SetFont(family, style, text.Size)
	rd.pdf.SetTextColor(int(text.Color.R), int(text.Color.G), int(text.Color.B))
	rd.pdf.SetAlpha(float64(text.Color.A)/255, "Normal")
	rd.pdf.Text(text.X, text.Y, rd.tr(text.Data))
}

// FontFor maps a CSS font family list and weight to one of the
// core PDF fonts (Helvetica, Times or Courier) and a gofpdf style string.
func FontFor(family, weight string) (name, style string) {
	name = "Helvetica"
	for _, f := range strings.Split(family, ",") {
		if core, ok := coreFamily(f); ok {
			name = core
			break
		}
	}

	switch w := strings.ToLower(strings.TrimSpace(weight)); w {
	case "bold", "bolder":
		style = "B"
	default:
		if n, err := strconv.Atoi(w); err == nil && n >= 700 {
			style = "B"
		}
	}
	return name, style
}

// coreFamily returns the core font matching one family of a CSS list.
func coreFamily(family string) (string, bool) {
	f := strings.ToLower(strings.Trim(strings.TrimSpace(family), `"'`))
	switch {
	case strings.Contains(f, "courier"), strings.Contains(f, "mono"):
		return "Courier", true
	case strings.Contains(f, "times"), f == "serif":
		return "Times", true
	case strings.Contains(f, "helvetica"), strings.Contains(f, "arial"), f == "sans-serif", f == "verdana":
		return "Helvetica", true
	}
	return "", false
}
