package utils

import (
	"encoding/json"
	"net/http"
	"strings"
	"unicode"
)

// DecodeJSON decodifica o corpo da request para a struct destino.
func DecodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

// ValidationErrors mapeia campo -> mensagem de erro.
type ValidationErrors map[string]string

func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

func SanitizeString(s string) string {
	return strings.TrimSpace(s)
}

// SanitizeFilename troca qualquer caractere não alfanumérico por "_",
// produzindo um nome de arquivo seguro a partir do nome do participante.
func SanitizeFilename(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}
