package model

import (
	"strings"
	"time"
)

// ParticipantRecord é uma linha de dados de participante já validada:
// chaves são nomes de campos do template (ex: "nome", "curso").
type ParticipantRecord map[string]string

// Name retorna o campo "nome" sem espaços nas pontas.
func (r ParticipantRecord) Name() string {
	if r == nil {
		return ""
	}
	return strings.TrimSpace(r["nome"])
}

// EventDetails agrupa os dados do evento usados em todos os certificados de um lote.
type EventDetails struct {
	Name     string `json:"evento"`
	Date     string `json:"data"`
	Place    string `json:"local"`
	Workload string `json:"carga_horaria"`
}

// VerificationCode é o registro persistido de um código de autenticação.
// Imutável após a emissão; consultado pelo endpoint público de verificação.
type VerificationCode struct {
	Code            string    `db:"code"             json:"codigo"`
	ParticipantName string    `db:"participant_name" json:"nome_participante"`
	EventName       string    `db:"event_name"       json:"evento"`
	EventDate       string    `db:"event_date"       json:"data_evento"`
	EventPlace      string    `db:"event_place"      json:"local_evento"`
	Workload        string    `db:"workload"         json:"carga_horaria"`
	VerificationURL string    `db:"verification_url" json:"url_verificacao"`
	QRBase64        string    `db:"qr_base64"        json:"qrcode_base64,omitempty"`
	IssuedAt        time.Time `db:"issued_at"        json:"data_geracao"`
}

// GenerationResult é o agregado por lote devolvido ao chamador.
// FailedCount == -1 sinaliza falha fatal antes de processar qualquer registro.
type GenerationResult struct {
	SuccessCount   int      `json:"success_count"`
	FailedCount    int      `json:"failed_count"`
	GeneratedFiles []string `json:"generated_files"`
	Errors         []string `json:"errors"`
	Warnings       []string `json:"warnings"`
}

// GenerateBatchRequest é o corpo do endpoint de geração em lote.
type GenerateBatchRequest struct {
	Records      []ParticipantRecord `json:"records"`
	EventDetails EventDetails        `json:"event_details"`
	TemplateName string              `json:"template"`
	ThemeName    string              `json:"theme"`
	Orientation  string              `json:"orientation"` // portrait | landscape
}
