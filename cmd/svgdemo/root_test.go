package main

import (
	"bytes"
	"errors"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/benoitkugler/svgwriter/scene"
	"github.com/benoitkugler/svgwriter/svgdraw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "svgdemo version dev\n", out)
}

func TestRenderDemoSVG(t *testing.T) {
	out, _, err := execute(t, "render")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8" ?>`))
	assert.True(t, strings.HasSuffix(out, "</svg>"))
	assert.Contains(t, out, ">Happy New Year!</text>")
	assert.Equal(t, 9, strings.Count(out, "\n"))
}

func TestRenderVerbose(t *testing.T) {
	_, logs, err := execute(t, "render", "-vv")
	require.NoError(t, err)
	assert.Contains(t, logs, "Rendering")
}

func TestRenderPNGFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.png")
	out, _, err := execute(t, "render", "--out", path, "--background", "white")
	require.NoError(t, err)
	assert.Empty(t, out)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestRenderPDF(t *testing.T) {
	out, _, err := execute(t, "render", "--format", "pdf")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "%PDF-"))
}

func TestRenderConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
shapes:
  - kind: snowman
    center: {x: 30, y: 20}
    radius: 10
`), 0o644))

	out, _, err := execute(t, "render", "-c", path)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "<circle"))

	path = filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("shapes: [{kind: cube}]"), 0o644))
	_, _, err = execute(t, "render", "-c", path)
	assert.True(t, errors.Is(err, scene.ErrUnknownShape))
}

func TestRenderErrors(t *testing.T) {
	_, _, err := execute(t, "render", "--format", "gif")
	assert.True(t, errors.Is(err, errUnknownFormat))

	_, _, err = execute(t, "render", "--format", "png", "--background", "nope")
	assert.True(t, errors.Is(err, svgdraw.ErrInvalidColor))

	_, _, err = execute(t, "render", "extra")
	assert.Error(t, err)
}

func TestResolveFormat(t *testing.T) {
	for _, test := range []struct {
		opts renderOptions
		want string
	}{
		{renderOptions{}, "svg"},
		{renderOptions{outPath: "a/b.PDF"}, "pdf"},
		{renderOptions{outPath: "a/b.svg", format: "png"}, "png"},
	} {
		got, err := test.opts.resolveFormat()
		require.NoError(t, err)
		assert.Equal(t, test.want, got)
	}
}

func TestCanvasSize(t *testing.T) {
	cfg := scene.Config{Shapes: []scene.ShapeConfig{{Kind: scene.KindSnowman, Center: scene.Point{X: 30, Y: 20}, Radius: 10}}}
	doc, err := cfg.Build()
	require.NoError(t, err)

	// legs reach y 90, plus half the default stroke width
	w, h := canvasSize(doc, cfg)
	assert.Equal(t, 51.0, w)
	assert.Equal(t, 91.0, h)

	cfg.Width = 300
	w, h = canvasSize(doc, cfg)
	assert.Equal(t, 300.0, w)
	assert.Equal(t, 91.0, h)
}

func TestRenderNativePDF(t *testing.T) {
	out, _, err := execute(t, "render", "--format", "pdf", "--pdf-engine", "native")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "%PDF-"))

	_, _, err = execute(t, "render", "--format", "pdf", "--pdf-engine", "latex")
	assert.True(t, errors.Is(err, errUnknownFormat))
}

func TestRenderFailureRemovesOutput(t *testing.T) {
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(scenePath, []byte(`
shapes:
  - kind: label
    text: oops
    fill: "rgb(1,2)"
`), 0o644))

	for _, format := range []string{"png", "pdf"} {
		outPath := filepath.Join(dir, "out."+format)
		_, _, err := execute(t, "render", "-c", scenePath, "-o", outPath)
		assert.True(t, errors.Is(err, svgdraw.ErrInvalidColor), format)
		_, statErr := os.Stat(outPath)
		assert.True(t, os.IsNotExist(statErr), format)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "ok.txt")
	require.NoError(t, writeFile(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "content")
		return err
	}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))

	path = filepath.Join(dir, "partial.txt")
	failure := errors.New("disk full")
	err = writeFile(path, func(w io.Writer) error {
		io.WriteString(w, "half")
		return failure
	})
	assert.True(t, errors.Is(err, failure))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	err = writeFile(filepath.Join(dir, "missing", "x.svg"), func(io.Writer) error { return nil })
	assert.Error(t, err)
}
