package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepdeck/prepdeck/internal/markdown"
)

func TestRender_BasicMarkdown(t *testing.T) {
	r := markdown.New()

	out, err := r.Render("# Heading\n\nSome *emphasis* and `code`.")
	require.NoError(t, err)

	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "<em>emphasis</em>")
	assert.Contains(t, out, "<code>code</code>")
}

func TestRender_GFMTables(t *testing.T) {
	r := markdown.New()

	out, err := r.Render("| a | b |\n|---|---|\n| 1 | 2 |")
	require.NoError(t, err)

	assert.Contains(t, out, "<table>")
}

func TestRender_RawHTMLEscaped(t *testing.T) {
	r := markdown.New()

	out, err := r.Render(`before <script>alert(1)</script> after`)
	require.NoError(t, err)

	assert.NotContains(t, out, "<script>")
}

func TestRender_EmptyInput(t *testing.T) {
	r := markdown.New()

	out, err := r.Render("")
	require.NoError(t, err)
	assert.Empty(t, out)
}
