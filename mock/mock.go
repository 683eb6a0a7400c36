// Package mock provides test doubles for docmd interfaces using function
// fields.
package mock

import (
	"github.com/fwojciec/docmd"
	"github.com/fwojciec/docmd/markdown"
)

// Interface compliance checks.
var (
	_ docmd.CodeResolver  = (*CodeResolver)(nil)
	_ markdown.CodeLinker = (*CodeLinker)(nil)
	_ markdown.NodeWriter = (*NodeWriter)(nil)
)

// CodeResolver is a test double for docmd.CodeResolver.
// Set ResolveFn before calling ResolveCodeDestination.
type CodeResolver struct {
	ResolveFn func(dest *docmd.CodeDestination) (docmd.CodeLink, error)
}

// ResolveCodeDestination delegates to ResolveFn.
func (r *CodeResolver) ResolveCodeDestination(dest *docmd.CodeDestination) (docmd.CodeLink, error) {
	return r.ResolveFn(dest)
}

// CodeLinker is a test double for markdown.CodeLinker.
// Set WriteCodeLinkFn before calling WriteCodeLink.
type CodeLinker struct {
	WriteCodeLinkFn func(ctx *markdown.Context, tag docmd.LinkTag) error
}

// WriteCodeLink delegates to WriteCodeLinkFn.
func (l *CodeLinker) WriteCodeLink(ctx *markdown.Context, tag docmd.LinkTag) error {
	return l.WriteCodeLinkFn(ctx, tag)
}

// NodeWriter is a test double for markdown.NodeWriter.
// Set WriteNodeFn before calling WriteNode.
type NodeWriter struct {
	WriteNodeFn func(ctx *markdown.Context, node docmd.Node) (bool, error)
}

// WriteNode delegates to WriteNodeFn.
func (w *NodeWriter) WriteNode(ctx *markdown.Context, node docmd.Node) (bool, error) {
	return w.WriteNodeFn(ctx, node)
}
