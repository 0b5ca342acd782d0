package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nepem-ufsc/nepemcert/internal/model"
	"github.com/nepem-ufsc/nepemcert/internal/response"
	"github.com/nepem-ufsc/nepemcert/internal/service"
)

// fakeCodeService responde Lookup a partir de um mapa em memória; storageErr
// simula falha de armazenamento.
type fakeCodeService struct {
	records    map[string]*model.VerificationCode
	storageErr error
}

func (f *fakeCodeService) Issue(context.Context, string, string, string) (string, error) {
	return "0123456789abcdef0123456789abcdef", nil
}

func (f *fakeCodeService) VerificationURL(code string) string {
	return "https://nepemufsc.com/verificar-certificados?codigo=" + code
}

func (f *fakeCodeService) QRBase64(string) (string, error) {
	return "data:image/png;base64,AAAA", nil
}

func (f *fakeCodeService) Persist(context.Context, string, string, model.EventDetails) bool {
	return true
}

func (f *fakeCodeService) Lookup(_ context.Context, code string) (*model.VerificationCode, error) {
	if f.storageErr != nil {
		return nil, f.storageErr
	}
	record, ok := f.records[code]
	if !ok {
		return nil, service.ErrCodeNotFound
	}
	return record, nil
}

func (f *fakeCodeService) EmbedQR(markup, _ string) string {
	return markup
}

func verifyRequest(t *testing.T, codes service.CodeService, code string) *httptest.ResponseRecorder {
	t.Helper()

	router := chi.NewRouter()
	router.Get("/api/v1/verify/{code}", NewVerificationHandler(codes).Verify)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/verify/"+code, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestVerify_KnownCode(t *testing.T) {
	codes := &fakeCodeService{records: map[string]*model.VerificationCode{
		"abc123": {Code: "abc123", ParticipantName: "Alice Silva", EventName: "Workshop de Go"},
	}}

	rec := verifyRequest(t, codes, "abc123")

	require.Equal(t, http.StatusOK, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)

	data, ok := body.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Alice Silva", data["nome_participante"])
	assert.Equal(t, "Workshop de Go", data["evento"])
}

func TestVerify_UnknownCode(t *testing.T) {
	codes := &fakeCodeService{records: map[string]*model.VerificationCode{}}

	rec := verifyRequest(t, codes, "nao-existe")

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Contains(t, body.Message, "não encontrado")
}

func TestVerify_StorageFailure(t *testing.T) {
	codes := &fakeCodeService{storageErr: errors.New("banco indisponível")}

	rec := verifyRequest(t, codes, "abc123")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
