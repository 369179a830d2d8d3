package alt

import (
	"bytes"
	"errors"
	"image/color"
	"testing"

	"github.com/benoitkugler/svgwriter/svgdoc"
	"github.com/benoitkugler/svgwriter/svgdraw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"
)

func TestRenderDocument(t *testing.T) {
	var doc svgdoc.Document
	doc.Add(svgdoc.NewCircle().SetCenter(svgdoc.Point{X: 20, Y: 20}).SetRadius(10).
		SetFillColor(svgdoc.NamedColor("red")).SetStrokeColor(svgdoc.RGBA{Opacity: 0.5}).SetStrokeWidth(2))
	doc.Add(svgdoc.NewPolyline().AddPoint(svgdoc.Point{X: 5, Y: 5}).AddPoint(svgdoc.Point{X: 50, Y: 40}).
		SetFillColor(svgdoc.NoneColor).SetStrokeColor(svgdoc.NewRGB(0, 128, 0)).SetStrokeLineCap(svgdoc.RoundCap))
	doc.Add(svgdoc.NewText().SetPosition(svgdoc.Point{X: 10, Y: 50}).SetFontSize(13).SetData("Hi"))

	var buf bytes.Buffer
	require.NoError(t, RenderDocument(&doc, 60, 60, &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestRenderDocumentInvalidColor(t *testing.T) {
	var doc svgdoc.Document
	doc.Add(svgdoc.NewCircle().SetFillColor(svgdoc.NamedColor("rgb(1,2)")))

	var buf bytes.Buffer
	err := RenderDocument(&doc, 10, 10, &buf)
	assert.True(t, errors.Is(err, svgdraw.ErrInvalidColor))
	assert.Zero(t, buf.Len())
}

func TestGlyphRuns(t *testing.T) {
	assert.Empty(t, glyphRuns(svgdraw.TextOptions{Data: " ", Size: 13}))

	runs := glyphRuns(svgdraw.TextOptions{X: 10, Y: 50, Size: 13, Data: "I", Color: color.NRGBA{A: 255}})
	require.NotEmpty(t, runs)
	for _, r := range runs {
		// 7x13 face: 7 pixels wide, ascent 11, descent 2
		assert.True(t, r.Min.X < r.Max.X && r.Min.Y < r.Max.Y)
		assert.GreaterOrEqual(t, r.Min.X, fixed.I(10))
		assert.LessOrEqual(t, r.Max.X, fixed.I(17))
		assert.GreaterOrEqual(t, r.Min.Y, fixed.I(50-11))
		assert.LessOrEqual(t, r.Max.Y, fixed.I(50+2))
	}

	// doubling the size doubles the extent
	big := glyphRuns(svgdraw.TextOptions{Size: 26, Data: "I"})
	small := glyphRuns(svgdraw.TextOptions{Size: 13, Data: "I"})
	require.Len(t, big, len(small))
	for i := range big {
		assert.Equal(t, 2*small[i].Max.X, big[i].Max.X)
		assert.Equal(t, 2*small[i].Min.Y, big[i].Min.Y)
	}
}

func TestSetupDrawers(t *testing.T) {
	r := Renderer{}
	f, s := r.SetupDrawers(true, false)
	assert.NotNil(t, f)
	assert.Nil(t, s)
	f, s = r.SetupDrawers(false, true)
	assert.Nil(t, f)
	assert.NotNil(t, s)
}
