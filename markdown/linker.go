package markdown

import (
	"fmt"

	"github.com/fwojciec/docmd"
)

// ResolverLinker adapts a docmd.CodeResolver into a CodeLinker that renders
// resolved declaration references as inline links. Display text precedence:
// the tag's explicit link text, then the resolved text, then the resolved
// URL. A reference that resolves without a URL renders as escaped text only.
func ResolverLinker(r docmd.CodeResolver) CodeLinker {
	return resolverLinker{r: r}
}

type resolverLinker struct {
	r docmd.CodeResolver
}

func (l resolverLinker) WriteCodeLink(ctx *Context, tag docmd.LinkTag) error {
	link, err := l.r.ResolveCodeDestination(tag.CodeDestination)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", tag.CodeDestination, err)
	}

	text := tag.LinkText
	if text == "" {
		text = link.Text
	}
	if text == "" {
		text = link.URL
	}
	if link.URL == "" {
		ctx.Writer.Write(escapeText(wsRunRE.ReplaceAllString(text, " ")))
		return nil
	}
	writeInlineLink(ctx, text, link.URL)
	return nil
}
