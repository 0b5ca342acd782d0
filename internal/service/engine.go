package service

import (
	"fmt"

	"github.com/flosch/pongo2/v6"
)

// Engine é a estratégia de substituição de placeholders. Duas implementações:
// troca literal de {{chave}} e a engine pongo2 (sintaxe Jinja2 completa).
// A escolha vem da configuração (TEMPLATE_ENGINE).
type Engine interface {
	Render(content string, data map[string]string) (string, error)
}

// NewEngine seleciona a estratégia pelo nome configurado.
func NewEngine(name string) Engine {
	if name == "pongo2" {
		return NewPongo2Engine()
	}
	return NewReplaceEngine()
}

// replaceEngine substitui cada {{ chave }} pelo valor correspondente.
// Marcadores sem valor permanecem literais na saída.
type replaceEngine struct{}

func NewReplaceEngine() Engine {
	return replaceEngine{}
}

func (replaceEngine) Render(content string, data map[string]string) (string, error) {
	return placeholderPattern.ReplaceAllStringFunc(content, func(marker string) string {
		name := placeholderPattern.FindStringSubmatch(marker)[1]
		if value, ok := data[name]; ok {
			return value
		}
		return marker
	}), nil
}

// pongo2Engine renderiza com a engine pongo2. Placeholders sem valor saem
// vazios (comportamento padrão da engine, dependente do renderizador).
type pongo2Engine struct {
	set *pongo2.TemplateSet
}

func NewPongo2Engine() Engine {
	return &pongo2Engine{
		set: pongo2.NewSet("nepemcert", pongo2.DefaultLoader),
	}
}

func (e *pongo2Engine) Render(content string, data map[string]string) (string, error) {
	tpl, err := e.set.FromString(content)
	if err != nil {
		return "", fmt.Errorf("template inválido: %w", err)
	}

	ctx := make(pongo2.Context, len(data))
	for k, v := range data {
		ctx[k] = v
	}

	out, err := tpl.Execute(ctx)
	if err != nil {
		return "", fmt.Errorf("falha ao renderizar template: %w", err)
	}
	return out, nil
}
