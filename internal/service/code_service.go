package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"github.com/nepem-ufsc/nepemcert/internal/model"
	"github.com/nepem-ufsc/nepemcert/internal/repository"
)

var ErrCodeNotFound = errors.New("código de verificação não encontrado")

// Identificador fixo do contêiner onde o QR code é embutido no markup.
const qrContainerID = "qr-placeholder"

// Tentativas de reemissão quando o código sorteado já existe no
// armazenamento. Com 128 bits de entropia a colisão é desprezível, mas a
// checagem custa uma consulta por chave primária.
const maxIssueAttempts = 5

type CodeService interface {
	Issue(ctx context.Context, participantName, eventName, eventDate string) (string, error)
	VerificationURL(code string) string
	QRBase64(code string) (string, error)
	Persist(ctx context.Context, code, participantName string, event model.EventDetails) bool
	Lookup(ctx context.Context, code string) (*model.VerificationCode, error)
	EmbedQR(markup, qrDataURI string) string
}

type codeService struct {
	repo    repository.CodeRepository
	baseURL string
	salt    string
	qrSize  int
	log     *zap.Logger
}

func NewCodeService(repo repository.CodeRepository, baseURL, salt string, qrSize int, log *zap.Logger) CodeService {
	if qrSize <= 0 {
		qrSize = 256
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &codeService{repo: repo, baseURL: baseURL, salt: salt, qrSize: qrSize, log: log}
}

// Issue gera um código de autenticação único de 32 caracteres hexadecimais.
// A unicidade vem da largura de entropia; ainda assim o armazenamento é
// consultado e o sorteio é refeito num eventual conflito.
func (s *codeService) Issue(ctx context.Context, participantName, eventName, eventDate string) (string, error) {
	if eventDate == "" {
		eventDate = time.Now().Format("02/01/2006")
	}

	for attempt := 0; attempt < maxIssueAttempts; attempt++ {
		code := s.generate(participantName, eventName, eventDate)

		if s.repo == nil {
			return code, nil
		}
		exists, err := s.repo.Exists(ctx, code)
		if err != nil {
			// Falha de armazenamento não bloqueia a emissão
			s.log.Warn("falha ao checar colisão de código", zap.Error(err))
			return code, nil
		}
		if !exists {
			return code, nil
		}
		s.log.Warn("colisão de código de verificação, reemitindo",
			zap.String("code", code), zap.Int("attempt", attempt+1))
	}
	return "", fmt.Errorf("não foi possível emitir um código único após %d tentativas", maxIssueAttempts)
}

func (s *codeService) generate(participantName, eventName, eventDate string) string {
	timestamp := time.Now().UnixMicro()
	uuidPart := uuid.New().String()[:8]
	secureToken := randomHex(4)
	randomSeed := randomHex(4)

	payload := fmt.Sprintf("%s:%s:%s:%s:%d:%s:%s:%s",
		s.salt, participantName, eventName, eventDate,
		timestamp, randomSeed, uuidPart, secureToken)

	digest := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(digest[:])[:32]
}

// VerificationURL monta a URL pública de verificação com o código como
// query parameter.
func (s *codeService) VerificationURL(code string) string {
	return fmt.Sprintf("%s?codigo=%s", s.baseURL, code)
}

// QRBase64 codifica a URL de verificação em um QR code PNG e devolve o
// data URI pronto para embutir em HTML.
func (s *codeService) QRBase64(code string) (string, error) {
	png, err := qrcode.Encode(s.VerificationURL(code), qrcode.Medium, s.qrSize)
	if err != nil {
		return "", fmt.Errorf("falha ao gerar QR code: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// Persist grava o registro do certificado. Devolve false (sem lançar) em
// falha de armazenamento; a causa fica no log para o chamador decidir.
func (s *codeService) Persist(ctx context.Context, code, participantName string, event model.EventDetails) bool {
	qrDataURI, err := s.QRBase64(code)
	if err != nil {
		s.log.Warn("falha ao gerar QR para persistência", zap.String("code", code), zap.Error(err))
		qrDataURI = ""
	}

	record := &model.VerificationCode{
		Code:            code,
		ParticipantName: participantName,
		EventName:       event.Name,
		EventDate:       event.Date,
		EventPlace:      event.Place,
		Workload:        event.Workload,
		VerificationURL: s.VerificationURL(code),
		QRBase64:        qrDataURI,
		IssuedAt:        time.Now(),
	}

	if err := s.repo.Insert(ctx, record); err != nil {
		s.log.Error("falha ao persistir código de verificação",
			zap.String("code", code), zap.Error(err))
		return false
	}
	return true
}

// Lookup distingue ausência de falha de armazenamento: ErrCodeNotFound
// quando o código não existe, erro encapsulado quando o storage falhou.
func (s *codeService) Lookup(ctx context.Context, code string) (*model.VerificationCode, error) {
	record, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("falha ao consultar código: %w", err)
	}
	if record == nil {
		return nil, fmt.Errorf("%w: %s", ErrCodeNotFound, code)
	}
	return record, nil
}

// EmbedQR injeta a <img> do QR dentro do contêiner qr-placeholder.
// Contêiner ausente é um no-op, não um erro.
func (s *codeService) EmbedQR(markup, qrDataURI string) string {
	idx := strings.Index(markup, qrContainerID)
	if idx < 0 {
		return markup
	}
	end := strings.Index(markup[idx:], ">")
	if end < 0 {
		return markup
	}
	insertAt := idx + end + 1
	img := fmt.Sprintf(`<img src="%s" alt="QR code de verificação" />`, qrDataURI)
	return markup[:insertAt] + img + markup[insertAt:]
}

func randomHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand indisponível derruba a garantia de unicidade
		panic(err)
	}
	return hex.EncodeToString(b)
}
