package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ahuangsnail/quire/pkg/buildinfo"
	"github.com/ahuangsnail/quire/pkg/cache"
	qerrors "github.com/ahuangsnail/quire/pkg/errors"
	"github.com/ahuangsnail/quire/pkg/observability"
	"github.com/ahuangsnail/quire/pkg/pages"
	"github.com/ahuangsnail/quire/pkg/pipeline"
	"github.com/ahuangsnail/quire/pkg/store"
)

// maxManifestBytes bounds uploaded manifest sizes.
const maxManifestBytes = 4 << 20

// contentTypes maps output formats to response content types.
var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
	pipeline.FormatDOT:  "text/vnd.graphviz",
}

// =============================================================================
// Health
// =============================================================================

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Version: buildinfo.Version,
		Commit:  buildinfo.Commit,
	})
}

// =============================================================================
// One-Shot Typesetting
// =============================================================================

// handleTypeset runs the full pipeline on a posted manifest and responds
// with a single artifact. The body is the raw TOML manifest; the output
// format and render options come from query parameters.
func (s *Server) handleTypeset(w http.ResponseWriter, r *http.Request) {
	opts, format, err := renderOptions(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxManifestBytes))
	if err != nil {
		s.writeError(w, r, qerrors.Wrap(qerrors.ErrCodeInvalidInput, err, "read request body"))
		return
	}
	if len(body) == 0 {
		s.writeError(w, r, qerrors.New(qerrors.ErrCodeInvalidInput, "request body must contain a manifest"))
		return
	}
	opts.Source = string(body)

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	serveArtifact(w, format, result.Artifacts[format])
}

// =============================================================================
// Documents
// =============================================================================

type createDocumentRequest struct {
	Name   string `json:"name"`
	Source string `json:"source"`
}

type documentSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	PageCount int       `json:"page_count,omitempty"`
}

func (s *Server) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	var req createDocumentRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxManifestBytes)).Decode(&req); err != nil {
		s.writeError(w, r, qerrors.Wrap(qerrors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}
	if req.Source == "" {
		s.writeError(w, r, qerrors.New(qerrors.ErrCodeInvalidInput, "source is required"))
		return
	}
	if req.Name != "" {
		if err := qerrors.ValidateDocumentName(req.Name); err != nil {
			s.writeError(w, r, err)
			return
		}
	}

	opts := pipeline.Options{Source: req.Source}
	d, err := s.runner.Parse(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	ps, err := s.runner.Typeset(r.Context(), d, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	name := req.Name
	if name == "" {
		name = d.Title
	}
	rec := store.New(name, req.Source)
	rec.Pages = &ps
	if err := s.store.Save(r.Context(), rec); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Location", "/documents/"+rec.ID)
	writeJSON(w, http.StatusCreated, documentSummary{
		ID:        rec.ID,
		Name:      rec.Name,
		CreatedAt: rec.CreatedAt,
		PageCount: len(ps.Pages),
	})
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	recs, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	summaries := make([]documentSummary, len(recs))
	for i, rec := range recs {
		summaries[i] = documentSummary{
			ID:        rec.ID,
			Name:      rec.Name,
			CreatedAt: rec.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rec, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, r, id, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.Delete(r.Context(), id); err != nil {
		s.writeStoreError(w, r, id, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleRenderDocument renders a stored document's pages. Responses are
// cached under a readable HTTP key so repeated renders of the same
// document and options skip the pipeline entirely.
func (s *Server) handleRenderDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	opts, format, err := renderOptions(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	httpKey := s.runner.Keyer.HTTPKey("render", fmt.Sprintf("%s?%s", id, r.URL.RawQuery))
	if data, hit, err := s.runner.Cache.Get(r.Context(), httpKey); err == nil && hit {
		serveArtifact(w, format, data)
		return
	}

	rec, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, r, id, err)
		return
	}

	opts.Source = rec.Source
	d, err := s.runner.Parse(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var ps pages.PageSet
	if rec.Pages != nil {
		ps = *rec.Pages
	} else {
		if ps, err = s.runner.Typeset(r.Context(), d, opts); err != nil {
			s.writeError(w, r, err)
			return
		}
	}

	artifacts, err := s.runner.Render(r.Context(), ps, d, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	data := artifacts[format]
	_ = s.runner.Cache.Set(r.Context(), httpKey, data, cache.TTLHTTP)
	serveArtifact(w, format, data)
}

// =============================================================================
// Request Parsing
// =============================================================================

// renderOptions builds pipeline options from render query parameters.
// The returned format is the single output format for the response.
func renderOptions(r *http.Request) (pipeline.Options, string, error) {
	q := r.URL.Query()

	format := q.Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		return pipeline.Options{}, "", qerrors.Wrap(qerrors.ErrCodeInvalidFormat, err, "query parameter %q", "format")
	}

	opts := pipeline.Options{
		Formats:  []string{format},
		View:     q.Get("view"),
		Title:    q.Get("title"),
		Labels:   boolParam(q, "labels"),
		Outlines: boolParam(q, "outlines"),
		Detailed: boolParam(q, "detailed"),
		Refresh:  boolParam(q, "refresh"),
	}
	if opts.View != "" {
		if err := pipeline.ValidateView(opts.View); err != nil {
			return pipeline.Options{}, "", qerrors.Wrap(qerrors.ErrCodeInvalidInput, err, "query parameter %q", "view")
		}
	}

	var err error
	if opts.MaxPages, err = intParam(q, "pages"); err != nil {
		return pipeline.Options{}, "", err
	}
	if opts.Scale, err = floatParam(q, "scale"); err != nil {
		return pipeline.Options{}, "", err
	}
	if opts.PageGap, err = floatParam(q, "gap"); err != nil {
		return pipeline.Options{}, "", err
	}

	return opts, format, nil
}

func boolParam(q url.Values, name string) bool {
	switch q.Get(name) {
	case "1", "true", "yes":
		return true
	}
	return false
}

func intParam(q url.Values, name string) (int, error) {
	raw := q.Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, qerrors.New(qerrors.ErrCodeInvalidInput, "query parameter %q: invalid integer %q", name, raw)
	}
	return v, nil
}

func floatParam(q url.Values, name string) (float64, error) {
	raw := q.Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, qerrors.New(qerrors.ErrCodeInvalidInput, "query parameter %q: invalid number %q", name, raw)
	}
	return v, nil
}

// =============================================================================
// Responses
// =============================================================================

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func serveArtifact(w http.ResponseWriter, format string, data []byte) {
	ct := contentTypes[format]
	if ct == "" {
		ct = "application/octet-stream"
	}
	w.Header().Set("Content-Type", ct)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	_, _ = w.Write(data)
}

// writeError renders the JSON error envelope for err.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := qerrors.GetCode(err)
	if code == "" {
		code = qerrors.ErrCodeInternal
	}
	status := statusForCode(code)

	observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err)
	}

	writeJSON(w, status, errorResponse{Error: errorBody{
		Code:    string(code),
		Message: errorMessage(err),
	}})
}

// writeStoreError maps store lookup failures onto the document error codes.
func (s *Server) writeStoreError(w http.ResponseWriter, r *http.Request, id string, err error) {
	if errors.Is(err, store.ErrNotFound) {
		err = qerrors.Wrap(qerrors.ErrCodeDocumentNotFound, err, "document %s", id)
	}
	s.writeError(w, r, err)
}

// statusForCode maps error codes to HTTP status codes.
func statusForCode(code qerrors.Code) int {
	switch code {
	case qerrors.ErrCodeInvalidInput, qerrors.ErrCodeInvalidManifest, qerrors.ErrCodeInvalidLength,
		qerrors.ErrCodeInvalidBlock, qerrors.ErrCodeInvalidPage, qerrors.ErrCodeInvalidFormat,
		qerrors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case qerrors.ErrCodeNotFound, qerrors.ErrCodeDocumentNotFound, qerrors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case qerrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case qerrors.ErrCodeNetwork:
		return http.StatusBadGateway
	case qerrors.ErrCodeUnsupported:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage builds the user-facing envelope message, keeping the
// cause chain that [errors.UserMessage] strips.
func errorMessage(err error) string {
	var e *qerrors.Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}
