package docmd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fwojciec/docmd"
)

func TestHTMLStartTag_HTML(t *testing.T) {
	t.Parallel()

	t.Run("bare tag", func(t *testing.T) {
		t.Parallel()
		tag := docmd.HTMLStartTag{Name: "b"}
		assert.Equal(t, "<b>", tag.HTML())
	})

	t.Run("attributes", func(t *testing.T) {
		t.Parallel()
		tag := docmd.HTMLStartTag{
			Name: "a",
			Attributes: []docmd.HTMLAttribute{
				{Name: "href", Value: "x"},
				{Name: "class", Value: "link"},
			},
		}
		assert.Equal(t, `<a href="x" class="link">`, tag.HTML())
	})

	t.Run("self-closing", func(t *testing.T) {
		t.Parallel()
		tag := docmd.HTMLStartTag{Name: "br", SelfClosing: true}
		assert.Equal(t, "<br/>", tag.HTML())
	})
}

func TestHTMLEndTag_HTML(t *testing.T) {
	t.Parallel()
	tag := docmd.HTMLEndTag{Name: "span"}
	assert.Equal(t, "</span>", tag.HTML())
}

func TestCodeDestination_String(t *testing.T) {
	t.Parallel()

	t.Run("import path and members", func(t *testing.T) {
		t.Parallel()
		d := &docmd.CodeDestination{ImportPath: "ui", MemberPath: []string{"Button", "Render"}}
		assert.Equal(t, "ui.Button.Render", d.String())
	})

	t.Run("members only", func(t *testing.T) {
		t.Parallel()
		d := &docmd.CodeDestination{MemberPath: []string{"Button"}}
		assert.Equal(t, "Button", d.String())
	})
}
