// Alternative implementation of PDF rendering (experimental),
// writing content streams directly with benoitkugler/pdf.
package alt

import (
	"fmt"
	"image/color"
	"io"

	"github.com/benoitkugler/pdf/contentstream"
	"github.com/benoitkugler/pdf/model"
	"github.com/benoitkugler/svgwriter/svgdoc"
	"github.com/benoitkugler/svgwriter/svgdraw"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// assert interface conformance
var (
	_ svgdraw.Driver  = Renderer{}
	_ svgdraw.Drawer  = (*filler)(nil)
	_ svgdraw.Stroker = (*patherStroker)(nil)
)

type Renderer struct {
	pdf                 *contentstream.Appearance
	fillOpacityStates   map[float64]*model.GraphicState
	strokeOpacityStates map[float64]*model.GraphicState
}

// implements the common path commands,
// shared by the filler and the stroker
type pather struct {
	pdf *contentstream.Appearance
}

// implements the filling operation
type filler struct {
	pather
	fillOpacityStates map[float64]*model.GraphicState
}

// implements the stroking operation, while
// also writing the path: the fill operator ends the path
// written by the filler
type patherStroker struct {
	pather
	strokeOpacityStates map[float64]*model.GraphicState
}

// RenderDocument writes a one page PDF of size width x height points
// showing doc.
func RenderDocument(doc *svgdoc.Document, width, height float64, out io.Writer) error {
	page := contentstream.NewAppearance(width, height)
	renderer := NewRenderer(&page)
	// user space has y pointing down
	page.Ops(
		contentstream.OpSave{},
		contentstream.OpConcat{Matrix: model.Matrix{1, 0, 0, -1, 0, height}},
	)
	if err := svgdraw.Draw(doc, renderer); err != nil {
		return fmt.Errorf("painting document: %w", err)
	}
	page.Ops(contentstream.OpRestore{})

	var pdfDoc model.Document
	var pg model.PageObject
	page.ApplyToPageObject(&pg, true)
	pdfDoc.Catalog.Pages.Kids = append(pdfDoc.Catalog.Pages.Kids, &pg)
	return pdfDoc.Write(out, nil)
}

// NewRenderer return a renderer which will
// write to the given `cs`.
func NewRenderer(cs *contentstream.Appearance) Renderer {
	return Renderer{
		pdf:                 cs,
		fillOpacityStates:   make(map[float64]*model.GraphicState),
		strokeOpacityStates: make(map[float64]*model.GraphicState),
	}
}

func (r Renderer) SetupDrawers(willFill, willStroke bool) (f svgdraw.Drawer, s svgdraw.Stroker) {
	if willFill {
		f = &filler{pather: pather{pdf: r.pdf}, fillOpacityStates: r.fillOpacityStates}
	}
	if willStroke {
		s = &patherStroker{pather: pather{pdf: r.pdf}, strokeOpacityStates: r.strokeOpacityStates}
	}
	return f, s
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

func (p *pather) Clear() {}

func (p *pather) Start(a fixed.Point26_6) {
	x, y := fixedTof(a)
	p.pdf.Ops(contentstream.OpMoveTo{X: x, Y: y})
}

func (p *pather) Line(b fixed.Point26_6) {
	x, y := fixedTof(b)
	p.pdf.Ops(contentstream.OpLineTo{X: x, Y: y})
}

func (p *pather) CubeBezier(b, c, d fixed.Point26_6) {
	cx0, cy0 := fixedTof(b)
	cx1, cy1 := fixedTof(c)
	x, y := fixedTof(d)
	p.pdf.Ops(contentstream.OpCubicTo{X1: cx0, Y1: cy0, X2: cx1, Y2: cy1, X3: x, Y3: y})
}

func (p *pather) Stop(closeLoop bool) {
	if closeLoop {
		p.pdf.Ops(contentstream.OpClosePath{})
	}
}

// opacityState returns the cached graphic state for opacity,
// creating it with newState when needed.
func opacityState(cache map[float64]*model.GraphicState, opacity float64,
	newState func(model.ObjFloat) *model.GraphicState) *model.GraphicState {
	gs, ok := cache[opacity]
	if !ok {
		gs = newState(model.ObjFloat(opacity))
		cache[opacity] = gs
	}
	return gs
}

func opaque(c color.NRGBA) color.NRGBA {
	c.A = 0xff
	return c
}

func (f *filler) SetColor(c color.NRGBA) {
	f.pdf.SetColorFill(opaque(c))
	gs := opacityState(f.fillOpacityStates, float64(c.A)/255, func(o model.ObjFloat) *model.GraphicState {
		return &model.GraphicState{Ca: o, BM: []model.Name{"Normal"}}
	})
	name := f.pdf.AddExtGState(gs)
	f.pdf.Ops(contentstream.OpSetExtGState{Dict: name})
}

// SVG fill-rule defaults to nonzero.
func (f *filler) Draw() { f.pdf.Ops(contentstream.OpFill{}) }

var (
	capStyles = [...]uint8{
		svgdraw.ButtCap:   0,
		svgdraw.RoundCap:  1,
		svgdraw.SquareCap: 2,
	}
	// no arc joins in PDF
	joinStyles = [...]uint8{
		svgdraw.Miter:     0,
		svgdraw.MiterClip: 0,
		svgdraw.Arc:       0,
		svgdraw.Round:     1,
		svgdraw.Bevel:     2,
	}
)

func (f *patherStroker) SetStrokeOptions(options svgdraw.StrokeOptions) {
	f.pdf.Ops(
		contentstream.OpSetLineWidth{W: float64(options.LineWidth) / 64},
		contentstream.OpSetLineCap{Style: capStyles[options.LineCap]},
		contentstream.OpSetLineJoin{Style: joinStyles[options.LineJoin]},
		contentstream.OpSetMiterLimit{Limit: float64(options.MiterLimit) / 64},
	)
}

func (f *patherStroker) SetColor(c color.NRGBA) {
	f.pdf.SetColorStroke(opaque(c))
	gs := opacityState(f.strokeOpacityStates, float64(c.A)/255, func(o model.ObjFloat) *model.GraphicState {
		return &model.GraphicState{CA: o, BM: []model.Name{"Normal"}}
	})
	name := f.pdf.AddExtGState(gs)
	f.pdf.Ops(contentstream.OpSetExtGState{Dict: name})
}

func (f *patherStroker) Draw() { f.pdf.Ops(contentstream.OpStroke{}) }

// DrawText fills the glyphs of the 7x13 bitmap face, scaled to the
// font size, so that no font resource is embedded.
// Family and weight are not honored.
func (r Renderer) DrawText(text svgdraw.TextOptions) {
	runs := glyphRuns(text)
	if len(runs) == 0 {
		return
	}
	f := filler{pather: pather{pdf: r.pdf}, fillOpacityStates: r.fillOpacityStates}
	for _, run := range runs {
		f.Start(run.Min)
		f.Line(fixed.Point26_6{X: run.Max.X, Y: run.Min.Y})
		f.Line(run.Max)
		f.Line(fixed.Point26_6{X: run.Min.X, Y: run.Max.Y})
		f.Stop(true)
	}
	f.SetColor(text.Color)
	f.Draw()
}

// glyphRuns returns the horizontal runs of inked pixels of the text,
// in user space.
func glyphRuns(text svgdraw.TextOptions) []fixed.Rectangle26_6 {
	face := basicfont.Face7x13
	scale := text.Size / float64(face.Height)
	toUser := func(x, y int) fixed.Point26_6 {
		return fixed.Point26_6{
			X: fixed.Int26_6((text.X + float64(x)*scale) * 64),
			Y: fixed.Int26_6((text.Y + float64(y)*scale) * 64),
		}
	}

	var (
		runs []fixed.Rectangle26_6
		dot  fixed.Point26_6 // in face pixels, relative to the baseline start
	)
	for _, r := range text.Data {
		dr, mask, maskp, advance, ok := face.Glyph(dot, r)
		if !ok {
			dr, mask, maskp, advance, _ = face.Glyph(dot, '?')
		}
		for y := dr.Min.Y; y < dr.Max.Y; y++ {
			start := -1
			for x := dr.Min.X; x <= dr.Max.X; x++ {
				inked := false
				if x < dr.Max.X {
					_, _, _, a := mask.At(maskp.X+x-dr.Min.X, maskp.Y+y-dr.Min.Y).RGBA()
					inked = a != 0
				}
				switch {
				case inked && start < 0:
					start = x
				case !inked && start >= 0:
					runs = append(runs, fixed.Rectangle26_6{Min: toUser(start, y), Max: toUser(x, y+1)})
					start = -1
				}
			}
		}
		dot.X += advance
	}
	return runs
}
