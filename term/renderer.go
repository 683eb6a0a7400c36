package term

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/docmd"
	"github.com/mattn/go-runewidth"
)

type ansiRenderer struct {
	code     lipgloss.Style
	link     lipgloss.Style
	muted    lipgloss.Style
	resolver docmd.CodeResolver
}

func newRenderer(theme docmd.Theme, resolver docmd.CodeResolver) *ansiRenderer {
	return &ansiRenderer{
		code:     lipgloss.NewStyle().Bold(true),
		link:     lipgloss.NewStyle().Foreground(ansiColor(theme.Accent)).Underline(true),
		muted:    lipgloss.NewStyle().Foreground(ansiColor(theme.Muted)).Faint(true),
		resolver: resolver,
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}

func (r *ansiRenderer) render(node docmd.Node, width int) (string, error) {
	var buf bytes.Buffer
	if err := r.renderBlock(node, width, &buf); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

func (r *ansiRenderer) renderBlock(node docmd.Node, width int, buf *bytes.Buffer) error {
	switch n := node.(type) {
	case docmd.Section:
		for _, c := range n.Children {
			if err := r.renderBlock(c, width, buf); err != nil {
				return err
			}
		}

	case docmd.Paragraph:
		inline, err := r.collectInline(n.Children)
		if err != nil {
			return err
		}
		buf.WriteString(lipgloss.NewStyle().Width(width).Render(inline))
		buf.WriteString("\n\n")

	case docmd.FencedCode:
		if n.Language != "" {
			buf.WriteString(r.muted.Render(n.Language))
			buf.WriteString("\n")
		}
		gutter := r.muted.Render("│") + " "
		avail := width - runewidth.StringWidth("│ ")
		if avail < 10 {
			avail = 10
		}
		code := strings.TrimRight(n.Code, "\n")
		for _, line := range strings.Split(code, "\n") {
			buf.WriteString(gutter + runewidth.Truncate(line, avail, "…"))
			buf.WriteString("\n")
		}
		buf.WriteString("\n")

	default:
		// Inline node at the top level: render it as a one-line block.
		var inline bytes.Buffer
		if err := r.renderInline(node, &inline); err != nil {
			return err
		}
		buf.WriteString(lipgloss.NewStyle().Width(width).Render(inline.String()))
		buf.WriteString("\n")
	}
	return nil
}

// collectInline recursively collects styled inline text from nodes.
func (r *ansiRenderer) collectInline(nodes []docmd.Node) (string, error) {
	var buf bytes.Buffer
	for _, n := range nodes {
		if err := r.renderInline(n, &buf); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

func (r *ansiRenderer) renderInline(node docmd.Node, buf *bytes.Buffer) error {
	switch n := node.(type) {
	case docmd.PlainText:
		buf.WriteString(n.Text)

	case docmd.EscapedText:
		buf.WriteString(n.Text)

	case docmd.ErrorText:
		buf.WriteString(n.Text)

	case docmd.SoftBreak:
		if b := buf.Bytes(); len(b) > 0 && b[len(b)-1] != ' ' && b[len(b)-1] != '\n' {
			buf.WriteByte(' ')
		}

	case docmd.CodeSpan:
		buf.WriteString(r.code.Render(n.Code))

	case docmd.HTMLStartTag:
		buf.WriteString(n.HTML())

	case docmd.HTMLEndTag:
		buf.WriteString(n.HTML())

	case docmd.LinkTag:
		return r.renderLink(n, buf)

	case docmd.Section:
		inline, err := r.collectInline(n.Children)
		if err != nil {
			return err
		}
		buf.WriteString(inline)

	case docmd.Paragraph:
		inline, err := r.collectInline(n.Children)
		if err != nil {
			return err
		}
		buf.WriteString(inline)

	default:
		return fmt.Errorf("%T: %w", node, docmd.ErrUnknownNode)
	}
	return nil
}

func (r *ansiRenderer) renderLink(n docmd.LinkTag, buf *bytes.Buffer) error {
	switch {
	case n.CodeDestination != nil:
		text := n.LinkText
		url := ""
		if r.resolver != nil {
			link, err := r.resolver.ResolveCodeDestination(n.CodeDestination)
			if err != nil {
				return fmt.Errorf("resolve %s: %w", n.CodeDestination, err)
			}
			if text == "" {
				text = link.Text
			}
			url = link.URL
		}
		if text == "" {
			text = n.CodeDestination.String()
		}
		buf.WriteString(r.link.Render(text))
		if url != "" {
			buf.WriteString(" ")
			buf.WriteString(r.muted.Render("(" + url + ")"))
		}

	case n.URLDestination != "":
		if n.LinkText == "" {
			buf.WriteString(r.link.Render(n.URLDestination))
			return nil
		}
		buf.WriteString(r.link.Render(n.LinkText))
		buf.WriteString(" ")
		buf.WriteString(r.muted.Render("(" + n.URLDestination + ")"))

	default:
		buf.WriteString(n.LinkText)
	}
	return nil
}
