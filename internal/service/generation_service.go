package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/nepem-ufsc/nepemcert/internal/model"
	"github.com/nepem-ufsc/nepemcert/internal/render"
	"github.com/nepem-ufsc/nepemcert/internal/utils"
)

type GenerationService interface {
	GenerateBatch(ctx context.Context, records []model.ParticipantRecord, event model.EventDetails,
		templateName, themeName string, orientation render.Orientation) *model.GenerationResult
}

type generationService struct {
	placeholders PlaceholderService
	templates    TemplateService
	themes       ThemeService
	codes        CodeService
	renderer     render.Renderer
	outputDir    string
	log          *zap.Logger
}

func NewGenerationService(
	placeholders PlaceholderService,
	templates TemplateService,
	themes ThemeService,
	codes CodeService,
	renderer render.Renderer,
	outputDir string,
	log *zap.Logger,
) GenerationService {
	if log == nil {
		log = zap.NewNop()
	}
	return &generationService{
		placeholders: placeholders, templates: templates, themes: themes,
		codes: codes, renderer: renderer, outputDir: outputDir, log: log,
	}
}

// GenerateBatch percorre os registros de participantes e produz um
// certificado por registro. Falhas de carga (registros vazios, template
// ausente) abortam o lote com FailedCount = -1; falhas por registro são
// isoladas e nunca derrubam os demais.
func (s *generationService) GenerateBatch(ctx context.Context, records []model.ParticipantRecord,
	event model.EventDetails, templateName, themeName string, orientation render.Orientation) *model.GenerationResult {

	result := &model.GenerationResult{
		GeneratedFiles: []string{},
		Errors:         []string{},
		Warnings:       []string{},
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "Nenhum registro de participante para processar")
		result.FailedCount = -1
		return result
	}

	content, err := s.templates.Load(templateName)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Erro ao carregar template %q: %v", templateName, err))
		result.FailedCount = -1
		return result
	}

	// Tema é compilado uma única vez e compartilhado por todos os registros;
	// falha na carga vira aviso e o lote segue sem tematização.
	appliedTheme := ""
	if themeName != "" && !strings.EqualFold(themeName, "nenhum") {
		theme, err := s.themes.Load(themeName)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Erro ao aplicar tema %q: %v", themeName, err))
		} else {
			content = s.themes.Apply(content, *theme)
			appliedTheme = themeName
		}
	}

	var (
		markups      []string
		outputPaths  []string
		skippedBlank int
	)

	for idx, record := range records {
		name := record.Name()
		if name == "" {
			skippedBlank++
			continue
		}

		markup, outputPath, err := s.prepareRecord(ctx, record, name, idx, event, content, appliedTheme, result)
		if err != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Erro ao processar participante %s (registro %d): %v", name, idx+1, err))
			result.FailedCount++
			continue
		}

		markups = append(markups, markup)
		outputPaths = append(outputPaths, outputPath)
	}

	if skippedBlank > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%d registro(s) ignorado(s) por nome de participante em branco", skippedBlank))
	}

	if len(markups) == 0 {
		if len(result.Errors) == 0 {
			result.Errors = append(result.Errors, "Nenhum certificado pôde ser preparado para geração")
		}
		return result
	}

	produced, err := s.renderer.RenderBatch(ctx, markups, outputPaths, orientation)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Erro na geração em lote dos documentos: %v", err))
		result.FailedCount += len(markups)
		return result
	}

	result.GeneratedFiles = append(result.GeneratedFiles, produced...)
	result.SuccessCount = len(produced)
	result.FailedCount += len(markups) - len(produced)

	s.log.Info("lote de certificados concluído",
		zap.Int("success", result.SuccessCount),
		zap.Int("failed", result.FailedCount),
		zap.Int("skipped_blank", skippedBlank))

	return result
}

// prepareRecord executa as etapas por registro: mesclagem de placeholders,
// emissão e persistência do código, renderização e embutimento do QR.
// Qualquer erro aqui é isolado pelo chamador como falha de um único registro.
func (s *generationService) prepareRecord(ctx context.Context, record model.ParticipantRecord,
	name string, idx int, event model.EventDetails, themedContent, themeName string,
	result *model.GenerationResult) (string, string, error) {

	code, err := s.codes.Issue(ctx, name, event.Name, event.Date)
	if err != nil {
		return "", "", err
	}

	// Persistência do código é best-effort: o documento ainda é gerado
	if !s.codes.Persist(ctx, code, name, event) {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Código de verificação de %s não foi persistido (registro %d)", name, idx+1))
	}

	verificationURL := s.codes.VerificationURL(code)
	qrDataURI, err := s.codes.QRBase64(code)
	if err != nil {
		return "", "", err
	}

	// Camada de maior prioridade: dados do evento + registro + campos derivados
	data := model.ParticipantRecord{
		"evento":        event.Name,
		"data":          event.Date,
		"local":         event.Place,
		"carga_horaria": event.Workload,
	}
	for k, v := range record {
		data[k] = v
	}
	data["nome"] = name
	data["codigo_autenticacao"] = code
	data["codigo_verificacao"] = code
	data["url_verificacao"] = verificationURL
	data["url_qrcode"] = verificationURL
	data["qrcode_base64"] = qrDataURI
	data["data_emissao"] = time.Now().Format("02/01/2006")

	merged := s.placeholders.Merge(data, themeName)

	markup, err := s.templates.RenderContent(themedContent, merged)
	if err != nil {
		return "", "", err
	}
	markup = s.codes.EmbedQR(markup, qrDataURI)

	fileName := fmt.Sprintf("certificado_%s_%d.pdf", utils.SanitizeFilename(name), idx+1)
	return markup, filepath.Join(s.outputDir, fileName), nil
}
