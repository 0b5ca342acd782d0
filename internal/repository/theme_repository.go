package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gosimple/slug"
	"github.com/nepem-ufsc/nepemcert/internal/model"
)

type ThemeRepository interface {
	Save(name string, theme model.Theme) error
	// Load devolve (nil, nil) quando o tema não existe.
	Load(name string) (*model.Theme, error)
	List() ([]string, error)
	// Delete recusa temas pré-definidos e devolve false em vez de erro.
	Delete(name string) (bool, error)
	IsPredefined(name string) bool
}

type themeRepository struct {
	themesDir  string
	predefined map[string]model.Theme
}

// NewThemeRepository cria o repositório de temas. O conjunto pré-definido é
// injetado para que não exista estado global mutável; temas personalizados
// vivem como um arquivo JSON por nome slugificado em themesDir.
func NewThemeRepository(themesDir string, predefined map[string]model.Theme) (ThemeRepository, error) {
	if err := os.MkdirAll(themesDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create themes directory: %w", err)
	}
	if predefined == nil {
		predefined = map[string]model.Theme{}
	}
	return &themeRepository{themesDir: themesDir, predefined: predefined}, nil
}

func (r *themeRepository) themePath(name string) string {
	return filepath.Join(r.themesDir, slug.Make(name)+".json")
}

func (r *themeRepository) IsPredefined(name string) bool {
	_, ok := r.predefined[name]
	return ok
}

func (r *themeRepository) Save(name string, theme model.Theme) error {
	data, err := json.MarshalIndent(theme, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.themePath(name), data, 0o644)
}

func (r *themeRepository) Load(name string) (*model.Theme, error) {
	// Arquivo personalizado tem precedência sobre a definição embutida
	data, err := os.ReadFile(r.themePath(name))
	if err == nil {
		var theme model.Theme
		if err := json.Unmarshal(data, &theme); err != nil {
			return nil, fmt.Errorf("invalid theme file %q: %w", name, err)
		}
		return &theme, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}

	if theme, ok := r.predefined[name]; ok {
		return &theme, nil
	}
	return nil, nil
}

func (r *themeRepository) List() ([]string, error) {
	names := make(map[string]struct{}, len(r.predefined))
	for name := range r.predefined {
		names[name] = struct{}{}
	}

	entries, err := os.ReadDir(r.themesDir)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		base := strings.TrimSuffix(entry.Name(), ".json")
		// Arquivos de temas pré-definidos salvos por cima não entram de novo
		if r.matchesPredefined(base) {
			continue
		}
		names[readableName(base)] = struct{}{}
	}

	out := make([]string, 0, len(names))
	for name := range names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}

func (r *themeRepository) Delete(name string) (bool, error) {
	if r.IsPredefined(name) {
		return false, nil
	}
	err := os.Remove(r.themePath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *themeRepository) matchesPredefined(fileBase string) bool {
	for name := range r.predefined {
		if slug.Make(name) == fileBase {
			return true
		}
	}
	return false
}

// readableName transforma um slug de arquivo em um nome apresentável
// ("meu-tema-novo" -> "Meu Tema Novo").
func readableName(fileBase string) string {
	parts := strings.Split(strings.ReplaceAll(fileBase, "_", "-"), "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
