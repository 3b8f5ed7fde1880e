package rest

import (
	"net/http"
	"time"

	glossary "github.com/hihighsh/glossary-app"
)

// baseLister is the minimal interface for the base glossary health check.
type baseLister interface {
	BaseEntries() []glossary.Entry
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	base    baseLister
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(base baseLister, version string) *HealthHandler {
	return &HealthHandler{base: base, version: version}
}

// HealthResponse is the JSON response for /health and /live.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Entries int    `json:"entries,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health reports the version and the size of the base glossary.
// An empty base glossary reports "degraded" with 200: generation still
// works, but every meaning comes from uploads.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	n := len(h.base.BaseEntries())
	comp := CompStatus{Status: "ok", Entries: n}
	overall := "ok"
	if n == 0 {
		comp.Status = "empty"
		overall = "degraded"
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: map[string]CompStatus{"base_glossary": comp},
		Timestamp:  time.Now(),
	})
}
