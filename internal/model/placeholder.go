package model

// Camadas nomeadas de placeholders, da menor para a maior prioridade.
// A ordem de mesclagem é uma propriedade do tipo, não do call-site.
const (
	LayerDefault       = "default"
	LayerInstitutional = "institutional"
	LayerTheme         = "theme"
)

// PlaceholderParameters é o conteúdo do arquivo de parâmetros persistido.
type PlaceholderParameters struct {
	Defaults      map[string]string            `json:"default_placeholders"`
	Institutional map[string]string            `json:"institutional_placeholders"`
	Themes        map[string]map[string]string `json:"theme_placeholders"`
}

// NewPlaceholderParameters devolve a estrutura padrão vazia usada quando o
// arquivo de parâmetros ainda não existe.
func NewPlaceholderParameters() *PlaceholderParameters {
	return &PlaceholderParameters{
		Defaults:      map[string]string{},
		Institutional: map[string]string{},
		Themes:        map[string]map[string]string{},
	}
}
