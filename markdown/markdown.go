// Package markdown renders documentation-comment trees as Markdown text.
//
// The emitter walks the tree depth-first and writes through an
// indent.Writer, escaping Markdown metacharacters in plain text so literal
// source text is never misread as formatting. Code spans, fenced code, and
// HTML tags pass through unescaped. Links that target declarations are
// delegated to a CodeLinker supplied by the consumer; the emitter cannot
// resolve declaration references itself.
package markdown

import (
	"github.com/fwojciec/docmd"
	"github.com/fwojciec/docmd/indent"
)

// Options is an open configuration record carried on the emission context.
// The base emitter recognizes no keys; derived emitters read their own keys
// from Context.Options.
type Options map[string]any

// Context carries the mutable state for one Emit call. It is created fresh
// per call, threaded by pointer through the traversal, and discarded after
// the call returns.
type Context struct {
	Writer *indent.Writer

	// InsideTable marks that output is being written into a table cell,
	// which the writer model treats as a single line.
	InsideTable bool

	// BoldRequested and ItalicRequested ask the plain-text writer to wrap
	// the next text it writes in <b>/<i> tags, bold outside italic. The
	// base emitter never sets them; they are hooks for derived emitters.
	BoldRequested   bool
	ItalicRequested bool

	// WritingBold and WritingItalic report tags currently open. Reserved
	// for derived emitters; the base emitter neither sets nor reads them.
	WritingBold   bool
	WritingItalic bool

	Options Options
}

// CodeLinker renders LinkTag nodes that carry a code destination. The base
// emitter fails on such links when no CodeLinker is configured rather than
// guess a URL.
type CodeLinker interface {
	WriteCodeLink(ctx *Context, tag docmd.LinkTag) error
}

// NodeWriter extends or overrides per-kind rendering. It runs before the
// built-in dispatch; returning handled == false falls through to it.
type NodeWriter interface {
	WriteNode(ctx *Context, node docmd.Node) (handled bool, err error)
}

// Emitter renders documentation trees as Markdown. The zero value is usable
// for trees without code-destination links.
type Emitter struct {
	CodeLinker CodeLinker
	Extension  NodeWriter
}

// Emit walks node depth-first and returns initial plus the rendered
// Markdown. The result always ends with a newline.
func (e *Emitter) Emit(initial string, node docmd.Node, opts Options) (string, error) {
	ctx := &Context{
		Writer:  indent.NewWriter(initial),
		Options: opts,
	}
	if err := e.WriteNode(ctx, node); err != nil {
		return "", err
	}
	ctx.Writer.EnsureNewLine()
	return ctx.Writer.String(), nil
}
