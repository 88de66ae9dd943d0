package registrants

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) (*gin.Engine, *MemoryRepository) {
	t.Helper()
	repo := NewMemoryRepository()
	return newTestEngineWithRepo(t, repo), repo
}

func newTestEngineWithRepo(t *testing.T, repo Repository) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	service := NewService(repo, nil, 0, nil)
	controller := NewController(service)

	engine := gin.New()
	NewRouter(controller).SetupRoutes(engine)
	return engine
}

func postCadastro(t *testing.T, engine *gin.Engine, payload map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/cadastro", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Message
}

func alicePayload() map[string]string {
	return map[string]string{
		"first_name": "Alice",
		"last_name":  "Johnson",
		"email":      "alice@teste.com",
		"phone":      "1122334455",
		"password":   "Password@123",
	}
}

func TestRegisterThenDuplicateThenLookup(t *testing.T) {
	engine, _ := newTestEngine(t)

	rec := postCadastro(t, engine, alicePayload())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Cadastro realizado com sucesso!", decodeMessage(t, rec))

	// Same email, different password: rejected without a new row.
	dup := alicePayload()
	dup["password"] = "Outra#Senha9"
	rec = postCadastro(t, engine, dup)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Este email já está cadastrado.", decodeMessage(t, rec))

	req := httptest.NewRequest(http.MethodGet, "/usuario/email/alice@teste.com", nil)
	lookupRec := httptest.NewRecorder()
	engine.ServeHTTP(lookupRec, req)
	require.Equal(t, http.StatusOK, lookupRec.Code)

	var resp RegistrantResponse
	require.NoError(t, json.NewDecoder(lookupRec.Body).Decode(&resp))
	assert.Equal(t, RegistrantResponse{ID: 1, FirstName: "Alice", Email: "alice@teste.com"}, resp)
}

func TestRegisterInsertRaceLoserGetsDuplicateError(t *testing.T) {
	// The existence check passes but the unique index rejects the insert;
	// the client still sees the duplicate-email 400.
	engine := newTestEngineWithRepo(t, &raceLoserRepository{Repository: NewMemoryRepository()})

	rec := postCadastro(t, engine, alicePayload())
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Este email já está cadastrado.", decodeMessage(t, rec))
}

func TestRegisterWeakPasswordCreatesNoRow(t *testing.T) {
	engine, repo := newTestEngine(t)

	payload := alicePayload()
	payload["password"] = "weak"

	rec := postCadastro(t, engine, payload)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, msgPassword, decodeMessage(t, rec))
	assert.Zero(t, repo.Count())
}

func TestRegisterMissingFields(t *testing.T) {
	engine, repo := newTestEngine(t)

	payload := alicePayload()
	delete(payload, "email")

	rec := postCadastro(t, engine, payload)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, msgRequired, decodeMessage(t, rec))
	assert.Zero(t, repo.Count())
}

func TestRegisterMalformedBody(t *testing.T) {
	engine, repo := newTestEngine(t)

	req := httptest.NewRequest(http.MethodPost, "/cadastro", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, repo.Count())
}

func TestGetByIDNotFound(t *testing.T) {
	engine, _ := newTestEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/usuario/id/999", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Usuário não encontrado.", decodeMessage(t, rec))
}

func TestGetByIDRejectsNonInteger(t *testing.T) {
	engine, _ := newTestEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/usuario/id/abc", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetByEmailNotFound(t *testing.T) {
	engine, _ := newTestEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/usuario/email/ghost@teste.com", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Usuário não encontrado.", decodeMessage(t, rec))
}

func TestGetByIDAfterRegistration(t *testing.T) {
	engine, _ := newTestEngine(t)

	rec := postCadastro(t, engine, alicePayload())
	require.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/usuario/id/1", nil)
	lookupRec := httptest.NewRecorder()
	engine.ServeHTTP(lookupRec, req)
	require.Equal(t, http.StatusOK, lookupRec.Code)

	var resp RegistrantResponse
	require.NoError(t, json.NewDecoder(lookupRec.Body).Decode(&resp))
	assert.Equal(t, uint(1), resp.ID)
	assert.Equal(t, "Alice", resp.FirstName)
}
