package markdown

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/fwojciec/docmd"
)

// plainTextRE splits text into leading whitespace, trimmed middle, and
// trailing whitespace in a single capture.
var plainTextRE = regexp.MustCompile(`(?s)^(\s*)(.*?)(\s*)$`)

// wsRunRE matches whitespace runs in link display text.
var wsRunRE = regexp.MustCompile(`\s+`)

// WriteNode dispatches one node by kind. The Extension hook, when present,
// runs first and may claim the node. Derived emitters call this to render
// child nodes.
func (e *Emitter) WriteNode(ctx *Context, node docmd.Node) error {
	if e.Extension != nil {
		handled, err := e.Extension.WriteNode(ctx, node)
		if err != nil {
			return err
		}
		if handled {
			return nil
		}
	}

	switch n := node.(type) {
	case docmd.PlainText:
		e.writePlainText(ctx, n.Text)
	case docmd.EscapedText:
		e.writePlainText(ctx, n.Text)
	case docmd.ErrorText:
		// Rendered like ordinary text; surfacing parse errors is a caller
		// concern.
		e.writePlainText(ctx, n.Text)
	case docmd.HTMLStartTag:
		ctx.Writer.Write(n.HTML())
	case docmd.HTMLEndTag:
		ctx.Writer.Write(n.HTML())
	case docmd.CodeSpan:
		e.writeCodeSpan(ctx, n)
	case docmd.LinkTag:
		return e.writeLinkTag(ctx, n)
	case docmd.Paragraph:
		return e.writeParagraph(ctx, n)
	case docmd.FencedCode:
		e.writeFencedCode(ctx, n)
	case docmd.Section:
		return e.writeNodes(ctx, n.Children)
	case docmd.SoftBreak:
		e.writeSoftBreak(ctx)
	default:
		return fmt.Errorf("%T: %w", node, docmd.ErrUnknownNode)
	}
	return nil
}

func (e *Emitter) writeNodes(ctx *Context, nodes []docmd.Node) error {
	for _, n := range nodes {
		if err := e.WriteNode(ctx, n); err != nil {
			return err
		}
	}
	return nil
}

func (e *Emitter) writeCodeSpan(ctx *Context, n docmd.CodeSpan) {
	w := ctx.Writer
	w.Write("`")
	if ctx.InsideTable {
		// Raw newlines are illegal inside a table cell: close the span,
		// emit an HTML paragraph break, and reopen it.
		w.Write(strings.ReplaceAll(n.Code, "\n", "`<p/>`"))
	} else {
		w.Write(n.Code)
	}
	w.Write("`")
}

func (e *Emitter) writeLinkTag(ctx *Context, n docmd.LinkTag) error {
	switch {
	case n.CodeDestination != nil:
		if e.CodeLinker == nil {
			return fmt.Errorf("link to %s: %w", n.CodeDestination, docmd.ErrNoCodeLinker)
		}
		return e.CodeLinker.WriteCodeLink(ctx, n)
	case n.URLDestination != "":
		text := n.LinkText
		if text == "" {
			text = n.URLDestination
		}
		writeInlineLink(ctx, text, n.URLDestination)
	case n.LinkText != "":
		e.writePlainText(ctx, n.LinkText)
	}
	return nil
}

// writeInlineLink renders [text](url), collapsing whitespace runs in the
// display text and escaping it like plain text.
func writeInlineLink(ctx *Context, text, url string) {
	encoded := escapeText(wsRunRE.ReplaceAllString(text, " "))
	ctx.Writer.Write("[" + encoded + "](" + url + ")")
}

func (e *Emitter) writeParagraph(ctx *Context, n docmd.Paragraph) error {
	children := trimParagraph(n.Children)
	if ctx.InsideTable {
		// A table cell is a single line; paragraph breaks become HTML tags.
		ctx.Writer.Write("<p>")
		if err := e.writeNodes(ctx, children); err != nil {
			return err
		}
		ctx.Writer.Write("</p>")
		return nil
	}
	if err := e.writeNodes(ctx, children); err != nil {
		return err
	}
	ctx.Writer.EnsureNewLine()
	ctx.Writer.WriteLine("")
	return nil
}

func (e *Emitter) writeFencedCode(ctx *Context, n docmd.FencedCode) {
	w := ctx.Writer
	w.EnsureNewLine()
	w.Write("```" + n.Language)
	w.WriteLine("")
	w.Write(n.Code)
	w.WriteLine("")
	w.WriteLine("```")
}

func (e *Emitter) writeSoftBreak(ctx *Context) {
	last := ctx.Writer.LastChar()
	if last == 0 || unicode.IsSpace(last) {
		return
	}
	ctx.Writer.Write(" ")
}

// writePlainText splits text into leading whitespace, middle, and trailing
// whitespace. The whitespace passes through unescaped. Before a non-empty
// middle, the last character already written decides whether a formatting
// symbol is safe there; if not, an empty HTML comment separates the runs so
// adjacent inline styles cannot merge into a single Markdown token.
func (e *Emitter) writePlainText(ctx *Context, text string) {
	parts := plainTextRE.FindStringSubmatch(text)
	leading, middle, trailing := parts[1], parts[2], parts[3]

	w := ctx.Writer
	w.Write(leading)
	if middle != "" {
		switch w.LastChar() {
		case 0, '\n', ' ', '[', '>':
			// Safe to start a formatting symbol here.
		default:
			w.Write("<!-- -->")
		}
		if ctx.BoldRequested {
			w.Write("<b>")
		}
		if ctx.ItalicRequested {
			w.Write("<i>")
		}
		w.Write(escapeText(middle))
		if ctx.ItalicRequested {
			w.Write("</i>")
		}
		if ctx.BoldRequested {
			w.Write("</b>")
		}
	}
	w.Write(trailing)
}

// trimParagraph trims whitespace-only runs from both ends of a paragraph's
// child sequence: whitespace-only text nodes and soft breaks at the edges
// are dropped, and the outer edge of the first and last text child is
// trimmed. Interior nodes are never altered, and the input slice is never
// mutated.
func trimParagraph(children []docmd.Node) []docmd.Node {
	start, end := 0, len(children)
	for start < end && isBlank(children[start]) {
		start++
	}
	for end > start && isBlank(children[end-1]) {
		end--
	}
	if start == end {
		return nil
	}

	out := make([]docmd.Node, end-start)
	copy(out, children[start:end])
	if t, ok := out[0].(docmd.PlainText); ok {
		out[0] = docmd.PlainText{Text: strings.TrimLeft(t.Text, " \t\r\n")}
	}
	if t, ok := out[len(out)-1].(docmd.PlainText); ok {
		out[len(out)-1] = docmd.PlainText{Text: strings.TrimRight(t.Text, " \t\r\n")}
	}
	return out
}

func isBlank(node docmd.Node) bool {
	switch n := node.(type) {
	case docmd.SoftBreak:
		return true
	case docmd.PlainText:
		return strings.TrimSpace(n.Text) == ""
	default:
		return false
	}
}
