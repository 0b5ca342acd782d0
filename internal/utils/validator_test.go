package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"Alice Silva":       "Alice_Silva",
		"José da Costa":     "José_da_Costa",
		"a/b\\c:d":          "a_b_c_d",
		"Maria-João (2026)": "Maria_João__2026_",
		"":                  "",
	}
	for in, want := range cases {
		assert.Equal(t, want, SanitizeFilename(in))
	}
}

func TestValidationErrors(t *testing.T) {
	ve := ValidationErrors{}
	assert.False(t, ve.HasErrors())

	ve["nome"] = "campo obrigatório"
	assert.True(t, ve.HasErrors())
}
