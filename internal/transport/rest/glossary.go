package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	glossary "github.com/hihighsh/glossary-app"
	"github.com/hihighsh/glossary-app/internal/service"
)

// WarningHeader carries each warning of a CSV response, one value per
// warning.
const WarningHeader = "X-Glossary-Warning"

// glossaryService is the part of service.Service the handlers use.
type glossaryService interface {
	Generate(ctx context.Context, in service.Input) (*glossary.Result, error)
	BaseEntries() []glossary.Entry
}

// GlossaryHandler serves the /api endpoints.
type GlossaryHandler struct {
	svc      glossaryService
	defaults glossary.Options
	maxBytes int64
	log      *slog.Logger
}

// NewGlossaryHandler creates a GlossaryHandler. defaults fill in options a
// request leaves out; request bodies larger than maxBytes are rejected.
func NewGlossaryHandler(svc glossaryService, defaults glossary.Options, maxBytes int64, logger *slog.Logger) *GlossaryHandler {
	return &GlossaryHandler{svc: svc, defaults: defaults, maxBytes: maxBytes, log: logger}
}

// Register mounts the handler's routes on mux.
func (h *GlossaryHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/glossary", h.Generate)
	mux.HandleFunc("POST /api/glossary/csv", h.GenerateCSV)
	mux.HandleFunc("POST /api/export", h.Export)
	mux.HandleFunc("GET /api/base", h.Base)
	mux.HandleFunc("GET /api/sample", h.Sample)
}

// ---- JSON types -----------------------------------------------------------

type optionsJSON struct {
	MinMarkedTokens     *int  `json:"min_marked_tokens,omitempty"`
	Decompose           *bool `json:"decompose,omitempty"`
	UseUploadedGlossary *bool `json:"use_uploaded_glossary,omitempty"`
	PreferUploaded      *bool `json:"prefer_uploaded,omitempty"`
	NormalizeWidth      *bool `json:"normalize_width,omitempty"`
}

type generateRequest struct {
	Text           string       `json:"text"`
	GlossaryCSV    string       `json:"glossary_csv,omitempty"`
	Options        *optionsJSON `json:"options,omitempty"`
	ShowGlossLines bool         `json:"show_gloss_lines,omitempty"`
}

type sourceJSON struct {
	Meanings   int `json:"meanings"`
	Categories int `json:"categories"`
}

type generateResponse struct {
	Rows       []glossary.Row   `json:"rows"`
	GlossLines []string         `json:"gloss_lines,omitempty"`
	Summary    glossary.Summary `json:"summary"`
	Source     *sourceJSON      `json:"source,omitempty"`
	Warnings   []string         `json:"warnings"`
}

type exportRequest struct {
	Rows []glossary.Row `json:"rows"`
}

type baseResponse struct {
	Entries []glossary.Entry `json:"entries"`
}

type sampleResponse struct {
	Text string `json:"text"`
}

// options overlays the fields set in o on defaults.
func (o *optionsJSON) options(defaults glossary.Options) glossary.Options {
	out := defaults
	if o == nil {
		return out
	}
	if o.MinMarkedTokens != nil {
		out.MinMarkedTokens = *o.MinMarkedTokens
	}
	if o.Decompose != nil {
		out.Decompose = *o.Decompose
	}
	if o.UseUploadedGlossary != nil {
		out.UseUploadedGlossary = *o.UseUploadedGlossary
	}
	if o.PreferUploaded != nil {
		out.PreferUploaded = *o.PreferUploaded
	}
	if o.NormalizeWidth != nil {
		out.NormalizeWidth = *o.NormalizeWidth
	}
	return out
}

// ---- handlers -------------------------------------------------------------

// Generate runs the pipeline and returns the table as JSON. Recoverable
// conditions (no gloss lines, no abbreviations, unreadable upload) still
// answer 200 and are reported in warnings.
func (h *GlossaryHandler) Generate(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	res, warnings, ok := h.run(w, r, req)
	if !ok {
		return
	}

	resp := generateResponse{
		Rows:     res.Rows,
		Summary:  res.Summary,
		Warnings: warnings,
	}
	if resp.Rows == nil {
		resp.Rows = []glossary.Row{}
	}
	if req.ShowGlossLines {
		resp.GlossLines = res.GlossLines
	}
	if res.SourceStats != (glossary.SourceStats{}) {
		resp.Source = &sourceJSON{
			Meanings:   res.SourceStats.Meanings,
			Categories: res.SourceStats.Categories,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// GenerateCSV runs the pipeline and returns the table as a CSV download.
// Warnings travel in WarningHeader since the body is the table itself.
func (h *GlossaryHandler) GenerateCSV(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	res, warnings, ok := h.run(w, r, req)
	if !ok {
		return
	}
	for _, msg := range warnings {
		w.Header().Add(WarningHeader, headerValue.Replace(msg))
	}
	h.writeCSV(w, r, res.Rows)
}

// Export converts an edited table back into a CSV download. Rows are
// written in the order given.
func (h *GlossaryHandler) Export(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if !h.decodeInto(w, r, &req) {
		return
	}
	h.writeCSV(w, r, req.Rows)
}

// Base lists the base glossary with categories.
func (h *GlossaryHandler) Base(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, baseResponse{Entries: h.svc.BaseEntries()})
}

// Sample returns a short interlinear example.
func (h *GlossaryHandler) Sample(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sampleResponse{Text: glossary.SampleText})
}

// ---- helpers --------------------------------------------------------------

// headerValue strips line breaks that would be invalid in a header field.
var headerValue = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

func (h *GlossaryHandler) decode(w http.ResponseWriter, r *http.Request) (generateRequest, bool) {
	var req generateRequest
	return req, h.decodeInto(w, r, &req)
}

func (h *GlossaryHandler) decodeInto(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
			return false
		}
		writeError(w, http.StatusBadRequest, "body must be valid JSON")
		return false
	}
	return true
}

// run executes req and collects user-facing warnings. It writes an error
// response and returns false when the request cannot be served.
func (h *GlossaryHandler) run(w http.ResponseWriter, r *http.Request, req generateRequest) (*glossary.Result, []string, bool) {
	in := service.Input{
		Text:        req.Text,
		GlossaryCSV: []byte(req.GlossaryCSV),
		Options:     req.Options.options(h.defaults),
	}
	res, err := h.svc.Generate(r.Context(), in)

	switch {
	case err == nil:
	case errors.Is(err, glossary.ErrInvalidOptions):
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, nil, false
	case errors.Is(err, glossary.ErrNoGlossLines), errors.Is(err, glossary.ErrNoAbbreviations):
	default:
		h.log.ErrorContext(r.Context(), "generate glossary", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal error")
		return nil, nil, false
	}

	warnings := []string{}
	if res.SourceErr != nil {
		warnings = append(warnings, glossary.Hint(res.SourceErr)+": "+res.SourceErr.Error())
	}
	if hint := glossary.Hint(err); hint != "" {
		warnings = append(warnings, hint)
	}
	return res, warnings, true
}

func (h *GlossaryHandler) writeCSV(w http.ResponseWriter, r *http.Request, rows []glossary.Row) {
	var buf bytes.Buffer
	if err := glossary.WriteCSV(&buf, rows); err != nil {
		h.log.ErrorContext(r.Context(), "write csv", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", glossary.ExportFileName))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes()) //nolint:errcheck
}
