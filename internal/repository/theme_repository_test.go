package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nepem-ufsc/nepemcert/internal/model"
)

func newTestThemeRepository(t *testing.T) ThemeRepository {
	t.Helper()

	repo, err := NewThemeRepository(t.TempDir(), model.PredefinedThemes())
	require.NoError(t, err)
	return repo
}

func TestThemeRepository_CustomOverridesPredefined(t *testing.T) {
	repo := newTestThemeRepository(t)

	require.NoError(t, repo.Save("Minimalista Moderno", model.Theme{TextColor: "#123456"}))

	theme, err := repo.Load("Minimalista Moderno")
	require.NoError(t, err)
	require.NotNil(t, theme)
	assert.Equal(t, "#123456", theme.TextColor)
}

func TestThemeRepository_ListMergesCustomAndPredefined(t *testing.T) {
	repo := newTestThemeRepository(t)

	require.NoError(t, repo.Save("Tema do Evento", model.Theme{TextColor: "#000000"}))

	names, err := repo.List()
	require.NoError(t, err)
	assert.Contains(t, names, "Acadêmico Clássico")
	assert.Contains(t, names, "Tema Do Evento")
	// Pré-definido salvo por cima não entra duplicado
	assert.Len(t, names, len(model.PredefinedThemes())+1)
}

func TestThemeRepository_LoadMissingReturnsNilNil(t *testing.T) {
	repo := newTestThemeRepository(t)

	theme, err := repo.Load("nao-existe")
	require.NoError(t, err)
	assert.Nil(t, theme)
}

func TestThemeRepository_DeleteRules(t *testing.T) {
	repo := newTestThemeRepository(t)

	deleted, err := repo.Delete("Acadêmico Clássico")
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = repo.Delete("nunca-existiu")
	require.NoError(t, err)
	assert.False(t, deleted)

	require.NoError(t, repo.Save("Descartável", model.Theme{TextColor: "#fff"}))
	deleted, err = repo.Delete("Descartável")
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestPlaceholderRepository_CreatesFileOnFirstLoad(t *testing.T) {
	paramsFile := filepath.Join(t.TempDir(), "nested", "parameters.json")
	repo := NewPlaceholderRepository(paramsFile)

	params, err := repo.Load()
	require.NoError(t, err)
	assert.NotNil(t, params.Defaults)
	assert.NotNil(t, params.Institutional)
	assert.NotNil(t, params.Themes)

	_, err = os.Stat(paramsFile)
	assert.NoError(t, err)
}
