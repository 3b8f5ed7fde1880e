package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	glossary "github.com/hihighsh/glossary-app"
	"github.com/hihighsh/glossary-app/internal/config"
	"github.com/hihighsh/glossary-app/internal/service"
)

func testConfig() *config.Config {
	return &config.Config{
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"https://example.org"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", "X-App-Password"},
		},
		Auth: config.AuthConfig{Password: "pw"},
		Glossary: config.GlossaryConfig{
			MinMarkedTokens:     2,
			Decompose:           true,
			UseUploadedGlossary: true,
			PreferUploaded:      true,
			MaxTextBytes:        1 << 20,
		},
	}
}

func testRouter() http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.New(glossary.New(), 4, logger)
	return newRouter(testConfig(), svc, logger)
}

func TestRouter_HealthOpen(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestRouter_APIRequiresPassword(t *testing.T) {
	t.Parallel()

	h := testRouter()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/sample", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/glossary",
		strings.NewReader(`{"text":"go-PAST see-IMP"}`))
	req.Header.Set("X-App-Password", "pw")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"abbreviation":"IMP"`)
}

func TestRouter_CORSPreflight(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodOptions, "/api/glossary", nil)
	req.Header.Set("Origin", "https://example.org")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, req)

	assert.Equal(t, "https://example.org", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_CSVWarningExposed(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/api/glossary/csv",
		strings.NewReader(`{"text":"just prose"}`))
	req.Header.Set("Origin", "https://example.org")
	req.Header.Set("X-App-Password", "pw")
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Glossary-Warning"))
	assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), "X-Glossary-Warning")
}
