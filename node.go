// Package docmd models documentation comments as a tree of typed nodes and
// declares the contracts for rendering them.
//
// The tree is produced by a documentation-comment parser and is read-only to
// renderers such as markdown.Emitter and term.Render. Composite nodes own
// their children; the tree is acyclic by construction.
package docmd

import "strings"

// Node is a sealed interface representing one documentation-comment node.
// The unexported marker method prevents external implementations, so
// renderers can match node types exhaustively. Downstream packages that need
// custom kinds can embed an existing node type and handle the new kind in a
// renderer extension hook.
type Node interface {
	node()
}

// PlainText contains raw text exactly as written in the source comment.
type PlainText struct {
	Text string
}

func (PlainText) node() {}

// EscapedText contains text whose escape sequences were already decoded by
// the parser.
type EscapedText struct {
	Text string
}

func (EscapedText) node() {}

// ErrorText contains raw text the parser recovered from malformed input.
// Renderers treat it exactly like PlainText; surfacing parse errors is the
// caller's concern.
type ErrorText struct {
	Text string
}

func (ErrorText) node() {}

// HTMLAttribute is a name/value pair on an HTMLStartTag.
type HTMLAttribute struct {
	Name  string
	Value string
}

// HTMLStartTag represents an opening or self-closing HTML tag.
type HTMLStartTag struct {
	Name        string
	Attributes  []HTMLAttribute
	SelfClosing bool
}

func (HTMLStartTag) node() {}

// HTML returns the tag rendered as literal HTML.
func (t HTMLStartTag) HTML() string {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(t.Name)
	for _, a := range t.Attributes {
		sb.WriteByte(' ')
		sb.WriteString(a.Name)
		sb.WriteString(`="`)
		sb.WriteString(a.Value)
		sb.WriteByte('"')
	}
	if t.SelfClosing {
		sb.WriteString("/>")
	} else {
		sb.WriteByte('>')
	}
	return sb.String()
}

// HTMLEndTag represents a closing HTML tag.
type HTMLEndTag struct {
	Name string
}

func (HTMLEndTag) node() {}

// HTML returns the tag rendered as literal HTML.
func (t HTMLEndTag) HTML() string {
	return "</" + t.Name + ">"
}

// CodeSpan contains inline code. Renderers never escape its content.
type CodeSpan struct {
	Code string
}

func (CodeSpan) node() {}

// LinkTag is a link with one of three targets, checked by presence in this
// order: a declaration reference (CodeDestination), a raw URL
// (URLDestination), or plain fallback text (LinkText). LinkText also serves
// as the optional display text for the first two forms.
type LinkTag struct {
	CodeDestination *CodeDestination
	URLDestination  string
	LinkText        string
}

func (LinkTag) node() {}

// Paragraph groups inline children that render as one paragraph.
type Paragraph struct {
	Children []Node
}

func (Paragraph) node() {}

// FencedCode is a code block with an optional language tag. Renderers never
// escape its content.
type FencedCode struct {
	Language string
	Code     string
}

func (FencedCode) node() {}

// Section groups children structurally without adding formatting of its own.
type Section struct {
	Children []Node
}

func (Section) node() {}

// SoftBreak marks a line-wrap point in the source comment that collapses to
// a single space in the output.
type SoftBreak struct{}

func (SoftBreak) node() {}

// Interface compliance checks.
var (
	_ Node = PlainText{}
	_ Node = EscapedText{}
	_ Node = ErrorText{}
	_ Node = HTMLStartTag{}
	_ Node = HTMLEndTag{}
	_ Node = CodeSpan{}
	_ Node = LinkTag{}
	_ Node = Paragraph{}
	_ Node = FencedCode{}
	_ Node = Section{}
	_ Node = SoftBreak{}
)
