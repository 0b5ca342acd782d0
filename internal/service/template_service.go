package service

import (
	"errors"
	"fmt"
	"regexp"
	"sort"

	"github.com/nepem-ufsc/nepemcert/internal/repository"
)

var ErrTemplateNotFound = errors.New("template não encontrado")

var placeholderPattern = regexp.MustCompile(`\{\{\s*(\w+)\s*\}\}`)

// Construções que o renderizador de documentos paginados não suporta (ou
// suporta mal). Cada ocorrência vira um aviso; nunca bloqueia a renderização.
var rendererWarnings = []struct {
	pattern *regexp.Regexp
	message string
}{
	{regexp.MustCompile(`(?i)<iframe`), "Tags <iframe> não são suportadas"},
	{regexp.MustCompile(`(?i)<canvas`), "Tags <canvas> não são suportadas"},
	{regexp.MustCompile(`(?i)<svg`), "Tags <svg> podem ter suporte limitado"},
	{regexp.MustCompile(`(?i)position\s*:\s*fixed`), "position:fixed não é bem suportado"},
	{regexp.MustCompile(`(?i)float\s*:\s*(left|right)`), "float pode não posicionar como esperado"},
	{regexp.MustCompile(`(?i)display\s*:\s*flex`), "display:flex pode não funcionar como esperado"},
	{regexp.MustCompile(`(?i)@media`), "Media queries não são suportadas"},
	{regexp.MustCompile(`(?i)animation`), "Animações CSS não são suportadas"},
	{regexp.MustCompile(`(?i)transition`), "Transições CSS não são suportadas"},
	{regexp.MustCompile(`(?i)transform`), "Transformações CSS podem ter suporte limitado"},
}

type TemplateService interface {
	ExtractPlaceholders(content string) []string
	ValidateForRenderer(content string) []string
	ValidateAgainstFields(placeholders []string, available map[string]string) []string
	Render(name string, data map[string]string) (string, error)
	RenderContent(content string, data map[string]string) (string, error)
	Save(name, content string) error
	Load(name string) (string, error)
	Delete(name string) (bool, error)
	List() ([]string, error)
}

type templateService struct {
	repo   repository.TemplateRepository
	engine Engine
}

func NewTemplateService(repo repository.TemplateRepository, engine Engine) TemplateService {
	if engine == nil {
		engine = NewReplaceEngine()
	}
	return &templateService{repo: repo, engine: engine}
}

// ExtractPlaceholders varre marcadores {{ nome }} no conteúdo, ignorando
// espaços ao redor do identificador, e devolve os nomes sem duplicatas.
func (s *templateService) ExtractPlaceholders(content string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(content, -1)
	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		seen[m[1]] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *templateService) ValidateForRenderer(content string) []string {
	warnings := []string{}
	for _, w := range rendererWarnings {
		if w.pattern.MatchString(content) {
			warnings = append(warnings, w.message)
		}
	}
	return warnings
}

// ValidateAgainstFields devolve os placeholders sem campo correspondente nos
// dados disponíveis; esses campos renderizarão vazios.
func (s *templateService) ValidateAgainstFields(placeholders []string, available map[string]string) []string {
	missing := []string{}
	for _, p := range placeholders {
		if _, ok := available[p]; !ok {
			missing = append(missing, p)
		}
	}
	return missing
}

func (s *templateService) Render(name string, data map[string]string) (string, error) {
	content, err := s.repo.Load(name)
	if err != nil {
		if repository.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
		}
		return "", err
	}
	return s.engine.Render(content, data)
}

func (s *templateService) RenderContent(content string, data map[string]string) (string, error) {
	return s.engine.Render(content, data)
}

func (s *templateService) Save(name, content string) error {
	return s.repo.Save(name, content)
}

func (s *templateService) Load(name string) (string, error) {
	content, err := s.repo.Load(name)
	if err != nil {
		if repository.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
		}
		return "", err
	}
	return content, nil
}

func (s *templateService) Delete(name string) (bool, error) {
	return s.repo.Delete(name)
}

func (s *templateService) List() ([]string, error) {
	return s.repo.List()
}
