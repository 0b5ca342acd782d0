package render

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrientation(t *testing.T) {
	assert.Equal(t, Portrait, ParseOrientation("portrait"))
	assert.Equal(t, Portrait, ParseOrientation("PORTRAIT"))
	assert.Equal(t, Landscape, ParseOrientation("landscape"))
	assert.Equal(t, Landscape, ParseOrientation(""))
	assert.Equal(t, Landscape, ParseOrientation("paisagem"))
}

func TestRenderBatch_LengthContract(t *testing.T) {
	r := &ChromeRenderer{}

	_, err := r.RenderBatch(context.Background(),
		[]string{"<p>a</p>", "<p>b</p>"},
		[]string{"a.pdf"},
		Landscape)

	require.ErrorIs(t, err, ErrBatchMismatch)
}

func TestWrapPage_InjectionTargets(t *testing.T) {
	t.Run("antes de </head>", func(t *testing.T) {
		out := wrapPage("<html><head><title>t</title></head><body></body></html>", Portrait)

		assert.Less(t, strings.Index(out, "@page"), strings.Index(out, "</head>"))
		assert.Contains(t, out, "size: A4 portrait")
	})

	t.Run("antes de <body> sem head", func(t *testing.T) {
		out := wrapPage("<body><p>x</p></body>", Landscape)

		assert.Less(t, strings.Index(out, "@page"), strings.Index(out, "<body"))
		assert.Contains(t, out, "size: A4 landscape")
	})

	t.Run("prefixo sem head nem body", func(t *testing.T) {
		out := wrapPage("<p>x</p>", Landscape)

		assert.True(t, strings.HasPrefix(out, "<style>"))
		assert.True(t, strings.HasSuffix(out, "<p>x</p>"))
	})
}

func TestWrapPage_QRContainerRules(t *testing.T) {
	out := wrapPage("<body></body>", Landscape)

	assert.Contains(t, out, ".qr-placeholder img")
	assert.Contains(t, out, "object-fit: contain")
}
