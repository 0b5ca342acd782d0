package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nepem-ufsc/nepemcert/internal/response"
	"github.com/nepem-ufsc/nepemcert/internal/service"
)

type VerificationHandler struct {
	codes service.CodeService
}

func NewVerificationHandler(codes service.CodeService) *VerificationHandler {
	return &VerificationHandler{codes: codes}
}

// Verify é o endpoint público de verificação de autenticidade: consulta o
// registro persistido pelo código embutido no QR do certificado.
func (h *VerificationHandler) Verify(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	record, err := h.codes.Lookup(r.Context(), code)
	if err != nil {
		if errors.Is(err, service.ErrCodeNotFound) {
			response.NotFound(w, "Certificado não encontrado. Este documento pode não ser autêntico.")
			return
		}
		response.InternalError(w, "Falha ao consultar o código de verificação")
		return
	}

	response.Success(w, "Certificado válido e emitido por esta instituição", record)
}
