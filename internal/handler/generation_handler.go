package handler

import (
	"net/http"

	"github.com/nepem-ufsc/nepemcert/internal/model"
	"github.com/nepem-ufsc/nepemcert/internal/render"
	"github.com/nepem-ufsc/nepemcert/internal/response"
	"github.com/nepem-ufsc/nepemcert/internal/service"
	"github.com/nepem-ufsc/nepemcert/internal/utils"
)

type GenerationHandler struct {
	svc service.GenerationService
}

func NewGenerationHandler(svc service.GenerationService) *GenerationHandler {
	return &GenerationHandler{svc: svc}
}

// GenerateBatch dispara o pipeline de geração sobre a sequência de registros.
// O GenerationResult é devolvido mesmo com falhas parciais; apenas erros de
// validação da request viram 400.
func (h *GenerationHandler) GenerateBatch(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateBatchRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Formato de request inválido", err.Error())
		return
	}

	errs := utils.ValidationErrors{}
	if req.TemplateName == "" {
		errs["template"] = "Nome do template é obrigatório"
	}
	if len(req.Records) == 0 {
		errs["records"] = "Ao menos um registro de participante é obrigatório"
	}
	if errs.HasErrors() {
		response.BadRequest(w, "Validação falhou", errs)
		return
	}

	result := h.svc.GenerateBatch(r.Context(), req.Records, req.EventDetails,
		req.TemplateName, req.ThemeName, render.ParseOrientation(req.Orientation))

	response.Success(w, "Lote processado", result)
}
