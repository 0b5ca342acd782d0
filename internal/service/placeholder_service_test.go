package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nepem-ufsc/nepemcert/internal/model"
	"github.com/nepem-ufsc/nepemcert/internal/repository"
)

func newTestPlaceholderService(t *testing.T, params *model.PlaceholderParameters) PlaceholderService {
	t.Helper()

	paramsFile := filepath.Join(t.TempDir(), "parameters.json")
	repo := repository.NewPlaceholderRepository(paramsFile)
	if params != nil {
		require.NoError(t, repo.Save(params))
	}

	themeRepo, err := repository.NewThemeRepository(t.TempDir(), model.PredefinedThemes())
	require.NoError(t, err)

	svc, err := NewPlaceholderService(repo, themeRepo)
	require.NoError(t, err)
	return svc
}

func TestMerge_PriorityOrder(t *testing.T) {
	svc := newTestPlaceholderService(t, &model.PlaceholderParameters{
		Defaults:      map[string]string{"a": "1", "somente_default": "d"},
		Institutional: map[string]string{"a": "2", "instituicao": "UFSC"},
		Themes: map[string]map[string]string{
			"Executivo Premium": {"a": "3", "rodape": "tema"},
		},
	})

	merged := svc.Merge(model.ParticipantRecord{"a": "4", "nome": "Alice"}, "Executivo Premium")

	// Registro > tema > institucional > default
	assert.Equal(t, "4", merged["a"])
	assert.Equal(t, "d", merged["somente_default"])
	assert.Equal(t, "UFSC", merged["instituicao"])
	assert.Equal(t, "tema", merged["rodape"])
	assert.Equal(t, "Alice", merged["nome"])
}

func TestMerge_UnknownThemeIsEmptyOverlay(t *testing.T) {
	svc := newTestPlaceholderService(t, &model.PlaceholderParameters{
		Defaults: map[string]string{"a": "1"},
	})

	merged := svc.Merge(model.ParticipantRecord{"nome": "Bob"}, "tema-que-nao-existe")

	assert.Equal(t, "1", merged["a"])
	assert.Equal(t, "Bob", merged["nome"])
}

func TestMerge_NilRecordIsNoOp(t *testing.T) {
	svc := newTestPlaceholderService(t, &model.PlaceholderParameters{
		Defaults: map[string]string{"a": "1"},
	})

	merged := svc.Merge(nil, "")

	assert.Equal(t, map[string]string{"a": "1"}, merged)
}

func TestMerge_LiftsThemeTextsWithoutOverriding(t *testing.T) {
	svc := newTestPlaceholderService(t, &model.PlaceholderParameters{
		Institutional: map[string]string{"title_text": "Título Institucional"},
	})

	// "Executivo Premium" define title_text e intro_text no registro do tema
	merged := svc.Merge(model.ParticipantRecord{"nome": "Alice"}, "Executivo Premium")

	// Camada institucional já definiu title_text; o tema não sobrepõe
	assert.Equal(t, "Título Institucional", merged["title_text"])
	// intro_text ainda livre: promovido do registro do tema
	assert.Equal(t, "Este documento certifica que", merged["intro_text"])
}

func TestUpdateLayers_Persist(t *testing.T) {
	paramsFile := filepath.Join(t.TempDir(), "parameters.json")
	repo := repository.NewPlaceholderRepository(paramsFile)

	svc, err := NewPlaceholderService(repo, nil)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateDefault(map[string]string{"a": "1"}))
	require.NoError(t, svc.UpdateInstitutional(map[string]string{"instituicao": "NEPEM"}))
	require.NoError(t, svc.UpdateTheme("Meu Tema", map[string]string{"rodape": "x"}))

	// Reabre a partir do arquivo para confirmar a persistência
	reloaded, err := NewPlaceholderService(repo, nil)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"a": "1"}, reloaded.Default())
	assert.Equal(t, map[string]string{"instituicao": "NEPEM"}, reloaded.Institutional())
	assert.Equal(t, map[string]string{"rodape": "x"}, reloaded.Theme("Meu Tema"))
	assert.Empty(t, reloaded.Theme("Outro Tema"))
}
