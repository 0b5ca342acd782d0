package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nepem-ufsc/nepemcert/internal/response"
	"github.com/nepem-ufsc/nepemcert/internal/service"
	"github.com/nepem-ufsc/nepemcert/internal/utils"
)

type TemplateHandler struct {
	svc service.TemplateService
}

func NewTemplateHandler(svc service.TemplateService) *TemplateHandler {
	return &TemplateHandler{svc: svc}
}

type saveTemplateRequest struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

func (h *TemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	names, err := h.svc.List()
	if err != nil {
		response.InternalError(w, "Falha ao listar templates")
		return
	}
	response.Success(w, "Templates disponíveis", names)
}

func (h *TemplateHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveTemplateRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Formato de request inválido", err.Error())
		return
	}

	errs := utils.ValidationErrors{}
	if utils.SanitizeString(req.Name) == "" {
		errs["name"] = "Nome do template é obrigatório"
	}
	if req.Content == "" {
		errs["content"] = "Conteúdo do template é obrigatório"
	}
	if errs.HasErrors() {
		response.BadRequest(w, "Validação falhou", errs)
		return
	}

	if err := h.svc.Save(req.Name, req.Content); err != nil {
		response.InternalError(w, "Falha ao salvar template")
		return
	}
	response.Created(w, "Template salvo", map[string]string{"name": req.Name})
}

// Placeholders devolve os marcadores referenciados pelo template junto com
// os avisos de compatibilidade com o renderizador.
func (h *TemplateHandler) Placeholders(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	content, err := h.svc.Load(name)
	if err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Falha ao carregar template")
		return
	}

	response.Success(w, "Placeholders do template", map[string]interface{}{
		"placeholders": h.svc.ExtractPlaceholders(content),
		"warnings":     h.svc.ValidateForRenderer(content),
	})
}

// Validate confronta os placeholders do template com os campos que o
// chamador pretende fornecer, apontando os que renderizarão vazios.
func (h *TemplateHandler) Validate(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req struct {
		AvailableFields map[string]string `json:"available_fields"`
	}
	if err := utils.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Formato de request inválido", err.Error())
		return
	}

	content, err := h.svc.Load(name)
	if err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Falha ao carregar template")
		return
	}

	placeholders := h.svc.ExtractPlaceholders(content)
	response.Success(w, "Validação do template", map[string]interface{}{
		"placeholders":     placeholders,
		"unmatched_fields": h.svc.ValidateAgainstFields(placeholders, req.AvailableFields),
		"warnings":         h.svc.ValidateForRenderer(content),
	})
}

func (h *TemplateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	deleted, err := h.svc.Delete(name)
	if err != nil {
		response.InternalError(w, "Falha ao excluir template")
		return
	}
	if !deleted {
		response.NotFound(w, "Template não encontrado")
		return
	}
	response.Success(w, "Template excluído", nil)
}
