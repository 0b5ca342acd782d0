package repository

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

type TemplateRepository interface {
	Save(name, content string) error
	// Load devolve fs.ErrNotExist (encapsulado) quando o template não existe.
	Load(name string) (string, error)
	Delete(name string) (bool, error)
	List() ([]string, error)
}

type templateRepository struct {
	templatesDir string
}

// NewTemplateRepository cria o repositório de templates: arquivos .html
// simples em um diretório, carregados somente-leitura pelo pipeline.
func NewTemplateRepository(templatesDir string) (TemplateRepository, error) {
	if err := os.MkdirAll(templatesDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create templates directory: %w", err)
	}
	return &templateRepository{templatesDir: templatesDir}, nil
}

func (r *templateRepository) templatePath(name string) string {
	if !strings.HasSuffix(name, ".html") {
		name += ".html"
	}
	// filepath.Base impede escape do diretório via nome
	return filepath.Join(r.templatesDir, filepath.Base(name))
}

func (r *templateRepository) Save(name, content string) error {
	return os.WriteFile(r.templatePath(name), []byte(content), 0o644)
}

func (r *templateRepository) Load(name string) (string, error) {
	data, err := os.ReadFile(r.templatePath(name))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (r *templateRepository) Delete(name string) (bool, error) {
	err := os.Remove(r.templatePath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *templateRepository) List() ([]string, error) {
	entries, err := os.ReadDir(r.templatesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// IsNotExist informa se o erro de Load significa "template inexistente".
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
