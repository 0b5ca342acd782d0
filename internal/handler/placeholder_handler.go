package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nepem-ufsc/nepemcert/internal/model"
	"github.com/nepem-ufsc/nepemcert/internal/response"
	"github.com/nepem-ufsc/nepemcert/internal/service"
	"github.com/nepem-ufsc/nepemcert/internal/utils"
)

type PlaceholderHandler struct {
	svc service.PlaceholderService
}

func NewPlaceholderHandler(svc service.PlaceholderService) *PlaceholderHandler {
	return &PlaceholderHandler{svc: svc}
}

func (h *PlaceholderHandler) Get(w http.ResponseWriter, r *http.Request) {
	response.Success(w, "Camadas de placeholders", map[string]interface{}{
		model.LayerDefault:       h.svc.Default(),
		model.LayerInstitutional: h.svc.Institutional(),
	})
}

// UpdateLayer atualiza a camada default ou institucional.
func (h *PlaceholderHandler) UpdateLayer(w http.ResponseWriter, r *http.Request) {
	layer := chi.URLParam(r, "layer")

	var values map[string]string
	if err := utils.DecodeJSON(r, &values); err != nil {
		response.BadRequest(w, "Formato de request inválido", err.Error())
		return
	}

	var err error
	switch layer {
	case model.LayerDefault:
		err = h.svc.UpdateDefault(values)
	case model.LayerInstitutional:
		err = h.svc.UpdateInstitutional(values)
	default:
		response.BadRequest(w, "Camada de placeholders desconhecida", utils.ValidationErrors{"layer": layer})
		return
	}
	if err != nil {
		response.InternalError(w, "Falha ao atualizar placeholders")
		return
	}
	response.Success(w, "Placeholders atualizados", nil)
}

// UpdateTheme atualiza a camada de placeholders de um tema específico.
func (h *PlaceholderHandler) UpdateTheme(w http.ResponseWriter, r *http.Request) {
	themeName := chi.URLParam(r, "name")

	var values map[string]string
	if err := utils.DecodeJSON(r, &values); err != nil {
		response.BadRequest(w, "Formato de request inválido", err.Error())
		return
	}

	if err := h.svc.UpdateTheme(themeName, values); err != nil {
		response.InternalError(w, "Falha ao atualizar placeholders do tema")
		return
	}
	response.Success(w, "Placeholders do tema atualizados", nil)
}
