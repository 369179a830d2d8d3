package svgdoc

import "bufio"

// RenderContext carries the output and the indentation
// for one rendering pass.
type RenderContext struct {
	Out        *bufio.Writer
	IndentStep int
	Indent     int
}

// NewRenderContext returns a context writing to out.
func NewRenderContext(out *bufio.Writer, indentStep, indent int) RenderContext {
	return RenderContext{Out: out, IndentStep: indentStep, Indent: indent}
}

// Indented returns a context one level deeper.
func (ctx RenderContext) Indented() RenderContext {
	return RenderContext{Out: ctx.Out, IndentStep: ctx.IndentStep, Indent: ctx.Indent + ctx.IndentStep}
}

// RenderIndent writes the current indentation.
func (ctx RenderContext) RenderIndent() {
	for i := 0; i < ctx.Indent; i++ {
		ctx.Out.WriteByte(' ')
	}
}

// Render writes obj on its own line: indentation, tag, line break.
// The sequence is the same for every kind of object.
func Render(ctx RenderContext, obj Object) {
	ctx.RenderIndent()
	obj.renderObject(ctx)
	ctx.Out.WriteByte('\n')
}
