package svgraster

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/benoitkugler/svgwriter/svgdoc"
	"github.com/benoitkugler/svgwriter/svgdraw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRasterCircle(t *testing.T) {
	var doc svgdoc.Document
	doc.Add(svgdoc.NewCircle().SetCenter(svgdoc.Point{X: 10, Y: 10}).SetRadius(5).SetFillColor(svgdoc.NamedColor("red")))

	img, err := RasterDocument(&doc, 20, 20, nil)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 20, 20), img.Bounds())
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(10, 10))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(19, 19))
}

func TestRasterStroke(t *testing.T) {
	var doc svgdoc.Document
	doc.Add(svgdoc.NewPolyline().AddPoint(svgdoc.Point{X: 0, Y: 10}).AddPoint(svgdoc.Point{X: 20, Y: 10}).
		SetFillColor(svgdoc.NoneColor).SetStrokeColor(svgdoc.NewRGB(0, 0, 255)).SetStrokeWidth(4))

	img, err := RasterDocument(&doc, 20, 20, color.White)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{B: 255, A: 255}, img.RGBAAt(10, 9))
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, img.RGBAAt(10, 2))
}

func TestRasterText(t *testing.T) {
	var doc svgdoc.Document
	doc.Add(svgdoc.NewText().SetPosition(svgdoc.Point{X: 2, Y: 15}).SetData("XX").SetFillColor(svgdoc.NamedColor("black")))

	img, err := RasterDocument(&doc, 20, 20, nil)
	require.NoError(t, err)
	painted := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if img.RGBAAt(x, y).A != 0 {
				painted++
			}
		}
	}
	assert.NotZero(t, painted)
}

func TestRasterInvalidColor(t *testing.T) {
	var doc svgdoc.Document
	doc.Add(svgdoc.NewCircle().SetStrokeColor(svgdoc.NamedColor("blurple")))

	_, err := RasterDocument(&doc, 4, 4, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, svgdraw.ErrInvalidColor))
}

func TestWritePNG(t *testing.T) {
	var doc svgdoc.Document
	doc.Add(svgdoc.NewCircle().SetCenter(svgdoc.Point{X: 8, Y: 8}).SetRadius(4))

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&doc, 16, 12, nil, &buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 16, 12), img.Bounds())
	_, _, _, a := img.At(8, 8).RGBA()
	assert.Equal(t, uint32(0xffff), a)
}
