// Package term renders documentation-comment trees as ANSI-styled terminal
// output using lipgloss for styling.
package term

import "github.com/fwojciec/docmd"

// Render walks node and returns ANSI-styled terminal output. Paragraphs are
// word-wrapped to width. Code block lines are clipped to width without
// reflow. Declaration links render as their display text; use RenderWith to
// resolve them to targets.
func Render(node docmd.Node, width int, theme docmd.Theme) (string, error) {
	return RenderWith(node, width, theme, nil)
}

// RenderWith is Render with a resolver for declaration links. A nil
// resolver falls back to the link's display text.
func RenderWith(node docmd.Node, width int, theme docmd.Theme, resolver docmd.CodeResolver) (string, error) {
	if node == nil {
		return "", nil
	}
	if width <= 0 {
		width = 80
	}
	r := newRenderer(theme, resolver)
	return r.render(node, width)
}
