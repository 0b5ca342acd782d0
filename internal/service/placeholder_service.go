package service

import (
	"github.com/nepem-ufsc/nepemcert/internal/model"
	"github.com/nepem-ufsc/nepemcert/internal/repository"
)

// Campos textuais de um tema que podem ser usados diretamente como
// placeholders do template. Só entram na mesclagem quando nenhuma camada de
// prioridade igual ou superior já definiu a chave.
var themeLiftKeys = []string{"title_text", "intro_text", "participation_text"}

type PlaceholderService interface {
	Default() map[string]string
	Institutional() map[string]string
	Theme(name string) map[string]string
	Merge(record model.ParticipantRecord, themeName string) map[string]string
	UpdateDefault(values map[string]string) error
	UpdateInstitutional(values map[string]string) error
	UpdateTheme(themeName string, values map[string]string) error
}

type placeholderService struct {
	repo      repository.PlaceholderRepository
	themeRepo repository.ThemeRepository
	params    *model.PlaceholderParameters
}

func NewPlaceholderService(repo repository.PlaceholderRepository, themeRepo repository.ThemeRepository) (PlaceholderService, error) {
	params, err := repo.Load()
	if err != nil {
		return nil, err
	}
	return &placeholderService{repo: repo, themeRepo: themeRepo, params: params}, nil
}

func (s *placeholderService) Default() map[string]string {
	return copyMap(s.params.Defaults)
}

func (s *placeholderService) Institutional() map[string]string {
	return copyMap(s.params.Institutional)
}

// Theme devolve a camada de placeholders do tema; mapa vazio quando o tema
// não tem camada própria.
func (s *placeholderService) Theme(name string) map[string]string {
	return copyMap(s.params.Themes[name])
}

// Merge mescla as camadas na ordem de prioridade crescente:
// default < institucional < camada do tema < campos textuais do tema < registro.
// Função pura sobre o estado em memória; tema desconhecido equivale a camada
// vazia, nunca falha.
func (s *placeholderService) Merge(record model.ParticipantRecord, themeName string) map[string]string {
	result := copyMap(s.params.Defaults)
	for k, v := range s.params.Institutional {
		result[k] = v
	}

	if themeName != "" {
		for k, v := range s.params.Themes[themeName] {
			result[k] = v
		}
		s.liftThemeTexts(result, themeName)
	}

	for k, v := range record {
		result[k] = v
	}
	return result
}

// liftThemeTexts promove os textos do registro completo do tema para a
// mesclagem, sem sobrescrever chaves já definidas até aqui.
func (s *placeholderService) liftThemeTexts(result map[string]string, themeName string) {
	if s.themeRepo == nil {
		return
	}
	theme, err := s.themeRepo.Load(themeName)
	if err != nil || theme == nil {
		return
	}
	values := map[string]string{
		"title_text":         theme.TitleText,
		"intro_text":         theme.IntroText,
		"participation_text": theme.ParticipationText,
	}
	for _, key := range themeLiftKeys {
		if values[key] == "" {
			continue
		}
		if _, taken := result[key]; !taken {
			result[key] = values[key]
		}
	}
}

func (s *placeholderService) UpdateDefault(values map[string]string) error {
	for k, v := range values {
		s.params.Defaults[k] = v
	}
	return s.repo.Save(s.params)
}

func (s *placeholderService) UpdateInstitutional(values map[string]string) error {
	for k, v := range values {
		s.params.Institutional[k] = v
	}
	return s.repo.Save(s.params)
}

func (s *placeholderService) UpdateTheme(themeName string, values map[string]string) error {
	if s.params.Themes[themeName] == nil {
		s.params.Themes[themeName] = map[string]string{}
	}
	for k, v := range values {
		s.params.Themes[themeName][k] = v
	}
	return s.repo.Save(s.params)
}

func copyMap(src map[string]string) map[string]string {
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
