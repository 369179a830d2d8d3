// Package svgdoc builds SVG documents from circles, polylines
// and texts, and writes them as markup.
//
// Primitives are configured with chained setters, each returning
// the updated value, then handed to a Document which keeps its own copy:
//
//	var doc svgdoc.Document
//	doc.Add(svgdoc.NewCircle().SetCenter(svgdoc.Point{X: 10, Y: 10}).SetRadius(5).SetFillColor(svgdoc.NamedColor("red")))
//	err := doc.Render(os.Stdout)
package svgdoc

import (
	"bufio"
	"io"
)

const (
	xmlHeader = `<?xml version="1.0" encoding="UTF-8" ?>`
	svgOpen   = `<svg xmlns="http://www.w3.org/2000/svg" version="1.1">`
	svgClose  = `</svg>`

	baseIndent = 2
	indentStep = 2
)

// ObjectContainer accumulates objects.
type ObjectContainer interface {
	// Add stores obj. The container owns its copy.
	Add(obj Object)
}

// Drawable is implemented by shapes built out of primitives.
type Drawable interface {
	// Draw adds the primitives of the shape to c.
	Draw(c ObjectContainer)
}

// Document is an SVG document: an ordered list of objects.
// It is not safe for concurrent use.
type Document struct {
	objects []Object
}

var _ ObjectContainer = (*Document)(nil)

// Add appends obj; objects are rendered in insertion order.
func (d *Document) Add(obj Object) {
	d.objects = append(d.objects, obj)
}

// Len returns the number of objects added so far.
func (d *Document) Len() int { return len(d.objects) }

// Range calls fn on each object, in insertion order.
func (d *Document) Range(fn func(obj Object)) {
	for _, obj := range d.objects {
		fn(obj)
	}
}

// Render writes the complete document to out. The closing tag
// is not followed by a line break.
// The only error returned is the one of out.
func (d *Document) Render(out io.Writer) error {
	w := bufio.NewWriter(out)
	w.WriteString(xmlHeader)
	w.WriteByte('\n')
	w.WriteString(svgOpen)
	w.WriteByte('\n')

	ctx := NewRenderContext(w, indentStep, baseIndent)
	for _, obj := range d.objects {
		Render(ctx, obj)
	}

	w.WriteString(svgClose)
	return w.Flush()
}
