package model

// Theme é um conjunto nomeado de atributos visuais compilado para CSS
// no momento da aplicação. Não tem vínculo com nenhum template específico.
type Theme struct {
	FontFamily        string `json:"font_family,omitempty"`
	HeadingColor      string `json:"heading_color,omitempty"`
	TextColor         string `json:"text_color,omitempty"`
	BackgroundColor   string `json:"background_color,omitempty"`
	BorderColor       string `json:"border_color,omitempty"`
	BorderWidth       string `json:"border_width,omitempty"`
	BorderStyle       string `json:"border_style,omitempty"`
	TitleColor        string `json:"title_color,omitempty"`
	NameColor         string `json:"name_color,omitempty"`
	EventNameColor    string `json:"event_name_color,omitempty"`
	SignatureColor    string `json:"signature_color,omitempty"`
	LinkColor         string `json:"link_color,omitempty"`
	TitleFontSize     string `json:"title_font_size,omitempty"`
	ContentFontSize   string `json:"content_font_size,omitempty"`
	NameFontSize      string `json:"name_font_size,omitempty"`
	SignatureTextSize string `json:"signature_text_size,omitempty"`
	TitleText         string `json:"title_text,omitempty"`
	IntroText         string `json:"intro_text,omitempty"`
	ParticipationText string `json:"participation_text,omitempty"`
	FooterStyle       string `json:"footer_style,omitempty"`
	// BackgroundImage é a imagem de fundo em base64 (PNG), sem prefixo data URI.
	BackgroundImage string `json:"background_image,omitempty"`
}

// IsZero informa se o tema não define nenhum atributo visual.
// Um tema vazio aplicado a um markup é um no-op.
func (t Theme) IsZero() bool {
	return t == Theme{}
}

// PredefinedThemes constrói o conjunto de temas imutáveis distribuídos com o
// sistema. É um construtor (e não um singleton de pacote) para que chamadores
// e testes possam injetar seu próprio conjunto.
func PredefinedThemes() map[string]Theme {
	return map[string]Theme{
		"Acadêmico Clássico": {
			FontFamily:        "Times, 'Times New Roman', serif",
			HeadingColor:      "#003366",
			TextColor:         "#333333",
			BackgroundColor:   "#fffff8",
			BorderColor:       "#8c7853",
			BorderWidth:       "4px",
			BorderStyle:       "double",
			NameColor:         "#003366",
			TitleColor:        "#003366",
			EventNameColor:    "#003366",
			LinkColor:         "#003366",
			SignatureColor:    "#000033",
			TitleText:         "Certificado de Excelência",
			IntroText:         "Certifica-se que",
			ParticipationText: "participou com distinção do evento",
			FooterStyle:       "classic",
		},
		"Executivo Premium": {
			FontFamily:        "Helvetica, Arial, sans-serif",
			HeadingColor:      "#1c2a48",
			TextColor:         "#2c3e50",
			BackgroundColor:   "#ffffff",
			BorderColor:       "#c9a84b",
			BorderWidth:       "4px",
			BorderStyle:       "solid",
			NameColor:         "#1c2a48",
			TitleColor:        "#1c2a48",
			EventNameColor:    "#1c2a48",
			LinkColor:         "#c9a84b",
			SignatureColor:    "#333333",
			TitleText:         "Certificado Profissional",
			IntroText:         "Este documento certifica que",
			ParticipationText: "participou e concluiu com sucesso",
			FooterStyle:       "modern",
		},
		"Contemporâneo Elegante": {
			FontFamily:        "Helvetica, Arial, sans-serif",
			HeadingColor:      "#2e3c50",
			TextColor:         "#34495e",
			BackgroundColor:   "#f9f9f9",
			BorderColor:       "#cbd5e0",
			BorderWidth:       "4px",
			BorderStyle:       "solid",
			NameColor:         "#5260c9",
			TitleColor:        "#2e3c50",
			EventNameColor:    "#2e3c50",
			LinkColor:         "#5260c9",
			SignatureColor:    "#2e3c50",
			TitleText:         "Certificado",
			IntroText:         "Conferimos este certificado a",
			ParticipationText: "pela participação no evento",
			FooterStyle:       "minimalist",
		},
		"Diplomático Oficial": {
			FontFamily:        "Palatino, 'Times New Roman', serif",
			HeadingColor:      "#1a3a5f",
			TextColor:         "#333333",
			BackgroundColor:   "#f8f8f0",
			BorderColor:       "#8d734a",
			BorderWidth:       "4px",
			BorderStyle:       "double",
			NameColor:         "#1a3a5f",
			TitleColor:        "#1a3a5f",
			EventNameColor:    "#1a3a5f",
			LinkColor:         "#1a3a5f",
			SignatureColor:    "#333333",
			TitleText:         "Certificado Oficial",
			IntroText:         "A instituição certifica que",
			ParticipationText: "participou oficialmente do evento",
			FooterStyle:       "formal",
		},
		"Minimalista Moderno": {
			FontFamily:        "Helvetica, Arial, sans-serif",
			HeadingColor:      "#202020",
			TextColor:         "#404040",
			BackgroundColor:   "#ffffff",
			BorderColor:       "#e0e0e0",
			BorderWidth:       "4px",
			BorderStyle:       "solid",
			NameColor:         "#202020",
			TitleColor:        "#202020",
			EventNameColor:    "#202020",
			LinkColor:         "#404040",
			SignatureColor:    "#404040",
			TitleText:         "Certificado de Conclusão",
			IntroText:         "Este documento certifica que",
			ParticipationText: "participou e concluiu",
			FooterStyle:       "clean",
		},
	}
}
