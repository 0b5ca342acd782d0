package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nepem-ufsc/nepemcert/internal/model"
	"github.com/nepem-ufsc/nepemcert/internal/repository"
)

func newTestThemeService(t *testing.T) ThemeService {
	t.Helper()

	repo, err := repository.NewThemeRepository(t.TempDir(), model.PredefinedThemes())
	require.NoError(t, err)
	return NewThemeService(repo)
}

func TestApply_EmptyThemeIsNoOp(t *testing.T) {
	svc := newTestThemeService(t)

	markup := "<html><head></head><body><p>{{nome}}</p></body></html>"
	assert.Equal(t, markup, svc.Apply(markup, model.Theme{}))
}

func TestApply_InjectsBeforeHead(t *testing.T) {
	svc := newTestThemeService(t)

	markup := "<html><head><title>t</title></head><body></body></html>"
	out := svc.Apply(markup, model.Theme{TextColor: "#333333"})

	headEnd := strings.Index(out, "</head>")
	styleStart := strings.Index(out, "<style>")
	require.Greater(t, styleStart, 0)
	assert.Less(t, styleStart, headEnd)
	assert.Contains(t, out, "color: #333333 !important")
}

func TestApply_FallsBackToBodyThenPrepend(t *testing.T) {
	svc := newTestThemeService(t)
	theme := model.Theme{BackgroundColor: "#ffffff"}

	out := svc.Apply("<body><p>x</p></body>", theme)
	assert.Less(t, strings.Index(out, "<style>"), strings.Index(out, "<body"))

	out = svc.Apply("<p>x</p>", theme)
	assert.True(t, strings.HasPrefix(out, "<style>"))
}

func TestApply_SingleStylesheetBlock(t *testing.T) {
	svc := newTestThemeService(t)

	theme := model.Theme{
		FontFamily:      "Times, 'Times New Roman', serif",
		TextColor:       "#333333",
		BackgroundColor: "#fffff8",
		BorderColor:     "#8c7853",
		TitleColor:      "#003366",
	}
	out := svc.Apply("<html><head></head><body></body></html>", theme)

	assert.Equal(t, 1, strings.Count(out, "<style>"))
	assert.Contains(t, out, "border: 1px solid #8c7853")
	assert.Contains(t, out, ".title { color: #003366 !important; }")
}

func TestApply_PreservesPlaceholders(t *testing.T) {
	svc := newTestThemeService(t)

	out := svc.Apply("<body><p>{{ nome }} - {{evento}}</p></body>", model.Theme{TextColor: "#000000"})

	assert.Contains(t, out, "{{ nome }}")
	assert.Contains(t, out, "{{evento}}")
}

func TestSafeFontFamily(t *testing.T) {
	cases := map[string]string{
		"'Crimson Text', 'Garamond', 'Times New Roman', serif": "Times, 'Times New Roman', serif",
		"'Montserrat', 'Helvetica Neue', Arial, sans-serif":     defaultFontStack,
		"Comic Sans MS":                       defaultFontStack,
		"Palatino Linotype":                   "Palatino, 'Times New Roman', serif",
		"JetBrains Mono":                      "Courier, 'Courier New', monospace",
		"Times, 'Times New Roman', serif":     "Times, 'Times New Roman', serif",
	}
	for requested, want := range cases {
		assert.Equal(t, want, safeFontFamily(requested), "fonte solicitada: %s", requested)
	}
}

func TestApply_BackgroundImageDataURI(t *testing.T) {
	svc := newTestThemeService(t)

	out := svc.Apply("<body></body>", model.Theme{BackgroundImage: "aGVsbG8="})

	assert.Contains(t, out, "url('data:image/png;base64,aGVsbG8=')")
	assert.Contains(t, out, "background-size: cover")
}

func TestLoad_PredefinedAndMissing(t *testing.T) {
	svc := newTestThemeService(t)

	theme, err := svc.Load("Acadêmico Clássico")
	require.NoError(t, err)
	assert.Equal(t, "#003366", theme.HeadingColor)

	_, err = svc.Load("inexistente")
	assert.ErrorIs(t, err, ErrThemeNotFound)
}

func TestDelete_PredefinedRejected(t *testing.T) {
	svc := newTestThemeService(t)

	deleted, err := svc.Delete("Minimalista Moderno")
	require.NoError(t, err)
	assert.False(t, deleted)

	// O tema pré-definido continua disponível
	_, err = svc.Load("Minimalista Moderno")
	assert.NoError(t, err)
}

func TestCreateCustom_FromBase(t *testing.T) {
	svc := newTestThemeService(t)

	err := svc.CreateCustom("Meu Tema", "Executivo Premium", model.Theme{TextColor: "#111111"})
	require.NoError(t, err)

	theme, err := svc.Load("Meu Tema")
	require.NoError(t, err)
	assert.Equal(t, "#111111", theme.TextColor)
	// Campos não sobrescritos vêm do tema base
	assert.Equal(t, "#c9a84b", theme.BorderColor)

	names, err := svc.List()
	require.NoError(t, err)
	assert.Contains(t, names, "Meu Tema")

	deleted, err := svc.Delete("Meu Tema")
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestCreateCustom_UnknownBase(t *testing.T) {
	svc := newTestThemeService(t)

	err := svc.CreateCustom("Novo", "base-que-nao-existe", model.Theme{})
	assert.ErrorIs(t, err, ErrThemeNotFound)
}
