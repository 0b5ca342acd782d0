package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nepem-ufsc/nepemcert/internal/model"
	"github.com/nepem-ufsc/nepemcert/internal/repository"
)

var ErrThemeNotFound = errors.New("tema não encontrado")

const defaultFontStack = "Helvetica, Arial, sans-serif"

// Fontes solicitadas são mapeadas para pilhas seguras do renderizador;
// nunca emitimos um font-family arbitrário no CSS gerado.
var safeFontStacks = map[string]string{
	"'Crimson Text', 'Garamond', 'Times New Roman', serif":               "Times, 'Times New Roman', serif",
	"'Cormorant Garamond', 'Palatino Linotype', 'Book Antiqua', serif":   "Palatino, 'Times New Roman', serif",
	"'Montserrat', 'Helvetica Neue', Arial, sans-serif":                  defaultFontStack,
	"'Raleway', 'Roboto', 'Segoe UI', sans-serif":                        defaultFontStack,
	"'Poppins', 'Open Sans', Helvetica, sans-serif":                      defaultFontStack,
}

var knownFontStacks = []string{
	"Times, 'Times New Roman', serif",
	"Palatino, 'Times New Roman', serif",
	"Courier, 'Courier New', monospace",
	defaultFontStack,
}

type ThemeService interface {
	// Apply injeta um único bloco de stylesheet no markup; nunca reescreve
	// atributos existentes nem toca marcadores {{ }}.
	Apply(markup string, theme model.Theme) string
	Save(name string, theme model.Theme) error
	Load(name string) (*model.Theme, error)
	List() ([]string, error)
	Delete(name string) (bool, error)
	CreateCustom(name, baseName string, overrides model.Theme) error
}

type themeService struct {
	repo repository.ThemeRepository
}

func NewThemeService(repo repository.ThemeRepository) ThemeService {
	return &themeService{repo: repo}
}

func (s *themeService) Apply(markup string, theme model.Theme) string {
	rules := compileRules(theme)
	if len(rules) == 0 {
		return markup
	}

	block := "<style>\n" + strings.Join(rules, "\n") + "\n</style>\n"
	return injectStylesheet(markup, block)
}

// compileRules monta as declarações CSS do tema; cada campo é opcional e
// independente dos demais.
func compileRules(theme model.Theme) []string {
	var rules []string

	if theme.FontFamily != "" {
		rules = append(rules, fmt.Sprintf("body, .certificate { font-family: %s; }", safeFontFamily(theme.FontFamily)))
	}
	if theme.TextColor != "" {
		// !important para sobrepor estilos inline do autor do template
		rules = append(rules, fmt.Sprintf("body, .certificate, .content, p { color: %s !important; }", theme.TextColor))
	}
	if theme.BackgroundColor != "" {
		rules = append(rules, fmt.Sprintf("body, .certificate { background-color: %s; }", theme.BackgroundColor))
	}
	if theme.BorderColor != "" || theme.BorderWidth != "" || theme.BorderStyle != "" {
		width := orDefault(theme.BorderWidth, "1px")
		style := orDefault(theme.BorderStyle, "solid")
		color := orDefault(theme.BorderColor, "#dddddd")
		rules = append(rules, fmt.Sprintf(".certificate { border: %s %s %s; }", width, style, color))
	}

	roleRules := []struct {
		selector string
		color    string
	}{
		{".title", theme.TitleColor},
		{".name", theme.NameColor},
		{".event-name", theme.EventNameColor},
		{".signature, .signature-name", theme.SignatureColor},
		{"a", theme.LinkColor},
	}
	for _, rr := range roleRules {
		if rr.color != "" {
			rules = append(rules, fmt.Sprintf("%s { color: %s !important; }", rr.selector, rr.color))
		}
	}

	sizeRules := []struct {
		selector string
		size     string
	}{
		{".title", theme.TitleFontSize},
		{".content", theme.ContentFontSize},
		{".name", theme.NameFontSize},
		{".signature-name", theme.SignatureTextSize},
	}
	for _, sr := range sizeRules {
		if sr.size != "" {
			rules = append(rules, fmt.Sprintf("%s { font-size: %s; }", sr.selector, sr.size))
		}
	}

	if theme.BackgroundImage != "" {
		rules = append(rules, fmt.Sprintf(
			".certificate { background-image: url('data:image/png;base64,%s'); background-size: cover; background-position: center; background-repeat: no-repeat; }",
			theme.BackgroundImage))
	}

	return rules
}

// injectStylesheet insere o bloco imediatamente antes de </head>; na falta
// dele, imediatamente antes de <body>; na falta de ambos, no início.
func injectStylesheet(markup, block string) string {
	if idx := strings.Index(markup, "</head>"); idx >= 0 {
		return markup[:idx] + block + markup[idx:]
	}
	if idx := strings.Index(markup, "<body"); idx >= 0 {
		return markup[:idx] + block + markup[idx:]
	}
	return block + markup
}

func safeFontFamily(requested string) string {
	if mapped, ok := safeFontStacks[requested]; ok {
		return mapped
	}
	for _, stack := range knownFontStacks {
		if requested == stack {
			return stack
		}
	}

	lower := strings.ToLower(requested)
	switch {
	case containsAny(lower, "times", "garamond", "georgia", "book antiqua", "crimson"):
		return "Times, 'Times New Roman', serif"
	case containsAny(lower, "palatino", "cormorant"):
		return "Palatino, 'Times New Roman', serif"
	case containsAny(lower, "courier", "mono"):
		return "Courier, 'Courier New', monospace"
	default:
		return defaultFontStack
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func (s *themeService) Save(name string, theme model.Theme) error {
	return s.repo.Save(name, theme)
}

func (s *themeService) Load(name string) (*model.Theme, error) {
	theme, err := s.repo.Load(name)
	if err != nil {
		return nil, err
	}
	if theme == nil {
		return nil, fmt.Errorf("%w: %s", ErrThemeNotFound, name)
	}
	return theme, nil
}

func (s *themeService) List() ([]string, error) {
	return s.repo.List()
}

func (s *themeService) Delete(name string) (bool, error) {
	return s.repo.Delete(name)
}

// CreateCustom cria um tema novo a partir de um tema base opcional,
// aplicando por cima os campos não vazios de overrides.
func (s *themeService) CreateCustom(name, baseName string, overrides model.Theme) error {
	base := model.Theme{}
	if baseName != "" {
		loaded, err := s.Load(baseName)
		if err != nil {
			return err
		}
		base = *loaded
	}
	merged := mergeThemes(base, overrides)
	return s.repo.Save(name, merged)
}

func mergeThemes(base, overrides model.Theme) model.Theme {
	pick := func(over, b string) string {
		if over != "" {
			return over
		}
		return b
	}
	return model.Theme{
		FontFamily:        pick(overrides.FontFamily, base.FontFamily),
		HeadingColor:      pick(overrides.HeadingColor, base.HeadingColor),
		TextColor:         pick(overrides.TextColor, base.TextColor),
		BackgroundColor:   pick(overrides.BackgroundColor, base.BackgroundColor),
		BorderColor:       pick(overrides.BorderColor, base.BorderColor),
		BorderWidth:       pick(overrides.BorderWidth, base.BorderWidth),
		BorderStyle:       pick(overrides.BorderStyle, base.BorderStyle),
		TitleColor:        pick(overrides.TitleColor, base.TitleColor),
		NameColor:         pick(overrides.NameColor, base.NameColor),
		EventNameColor:    pick(overrides.EventNameColor, base.EventNameColor),
		SignatureColor:    pick(overrides.SignatureColor, base.SignatureColor),
		LinkColor:         pick(overrides.LinkColor, base.LinkColor),
		TitleFontSize:     pick(overrides.TitleFontSize, base.TitleFontSize),
		ContentFontSize:   pick(overrides.ContentFontSize, base.ContentFontSize),
		NameFontSize:      pick(overrides.NameFontSize, base.NameFontSize),
		SignatureTextSize: pick(overrides.SignatureTextSize, base.SignatureTextSize),
		TitleText:         pick(overrides.TitleText, base.TitleText),
		IntroText:         pick(overrides.IntroText, base.IntroText),
		ParticipationText: pick(overrides.ParticipationText, base.ParticipationText),
		FooterStyle:       pick(overrides.FooterStyle, base.FooterStyle),
		BackgroundImage:   pick(overrides.BackgroundImage, base.BackgroundImage),
	}
}
