package router

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"persona-registry/internal/adapter/gin/handler"
	"persona-registry/internal/adapter/repository/memory"
	usecase "persona-registry/internal/usecase/persona"
	"persona-registry/pkg/logger"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

func setupRouter(t *testing.T) http.Handler {
	log := zaptest.NewLogger(t)
	uc := usecase.New(memory.NewPersonaRepo(log), log)
	return SetupRouter(handler.NewPersonaHandler(uc, log), "persona-registry", log)
}

func TestSetupRouter_Health(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"persona-registry"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(logger.RequestIDHeader))
}

func TestSetupRouter_PersonaRoutes(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/personas", bytes.NewBufferString(`{"name":"Ana","surname":"Lopez","age":"30"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/personas", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"personas":[{"name":"Ana","surname":"Lopez","age":30}]}`, w.Body.String())
}
