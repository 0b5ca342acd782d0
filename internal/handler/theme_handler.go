package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nepem-ufsc/nepemcert/internal/model"
	"github.com/nepem-ufsc/nepemcert/internal/response"
	"github.com/nepem-ufsc/nepemcert/internal/service"
	"github.com/nepem-ufsc/nepemcert/internal/utils"
)

type ThemeHandler struct {
	svc service.ThemeService
}

func NewThemeHandler(svc service.ThemeService) *ThemeHandler {
	return &ThemeHandler{svc: svc}
}

type saveThemeRequest struct {
	Name      string      `json:"name"`
	BaseTheme string      `json:"base_theme"`
	Theme     model.Theme `json:"theme"`
}

func (h *ThemeHandler) List(w http.ResponseWriter, r *http.Request) {
	names, err := h.svc.List()
	if err != nil {
		response.InternalError(w, "Falha ao listar temas")
		return
	}
	response.Success(w, "Temas disponíveis", names)
}

func (h *ThemeHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	theme, err := h.svc.Load(name)
	if err != nil {
		if errors.Is(err, service.ErrThemeNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Falha ao carregar tema")
		return
	}
	response.Success(w, "Tema carregado", theme)
}

// Save cria ou atualiza um tema personalizado, opcionalmente derivado de um
// tema base existente.
func (h *ThemeHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveThemeRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Formato de request inválido", err.Error())
		return
	}
	if utils.SanitizeString(req.Name) == "" {
		response.BadRequest(w, "Validação falhou", utils.ValidationErrors{"name": "Nome do tema é obrigatório"})
		return
	}

	var err error
	if req.BaseTheme != "" {
		err = h.svc.CreateCustom(req.Name, req.BaseTheme, req.Theme)
	} else {
		err = h.svc.Save(req.Name, req.Theme)
	}
	if err != nil {
		if errors.Is(err, service.ErrThemeNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Falha ao salvar tema")
		return
	}
	response.Created(w, "Tema salvo", map[string]string{"name": req.Name})
}

func (h *ThemeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	deleted, err := h.svc.Delete(name)
	if err != nil {
		response.InternalError(w, "Falha ao excluir tema")
		return
	}
	if !deleted {
		// Temas pré-definidos não podem ser excluídos
		response.BadRequest(w, "Tema não pode ser excluído", nil)
		return
	}
	response.Success(w, "Tema excluído", nil)
}
