package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

const testManifest = `
title = "Test"

[page]
width = "200pt"
height = "100pt"
margin = "10pt"

[[block]]
kind = "paragraph"
text = "hello world"
`

func newTestServer() *Server {
	return NewServer(Config{
		Logger: log.NewWithOptions(io.Discard, log.Options{}),
	})
}

func doRequest(s *Server, method, target string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	rr := httptest.NewRecorder()
	s.ServeHTTP(rr, req)
	return rr
}

func decodeErrorBody(t *testing.T, rr *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var resp errorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error envelope: %v (body: %s)", err, rr.Body.String())
	}
	return resp.Error
}

func TestHealth(t *testing.T) {
	s := newTestServer()
	rr := doRequest(s, http.MethodGet, "/healthz", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var resp healthResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("Status = %q, want %q", resp.Status, "ok")
	}
	if resp.Version == "" {
		t.Error("Version is empty")
	}
}

func TestTypesetSVG(t *testing.T) {
	s := newTestServer()
	rr := doRequest(s, http.MethodPost, "/typeset?format=svg", strings.NewReader(testManifest))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q, want image/svg+xml", ct)
	}
	if !bytes.Contains(rr.Body.Bytes(), []byte("<svg")) {
		t.Error("response missing <svg tag")
	}
}

func TestTypesetJSON(t *testing.T) {
	s := newTestServer()
	rr := doRequest(s, http.MethodPost, "/typeset?format=json", strings.NewReader(testManifest))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	if !bytes.Contains(rr.Body.Bytes(), []byte(`"page_count": 1`)) {
		t.Errorf("response missing page count: %s", rr.Body.String())
	}
}

func TestTypesetInvalidManifest(t *testing.T) {
	s := newTestServer()
	rr := doRequest(s, http.MethodPost, "/typeset", strings.NewReader("not = [valid"))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if got := decodeErrorBody(t, rr).Code; got != "INVALID_MANIFEST" {
		t.Errorf("error code = %q, want INVALID_MANIFEST", got)
	}
}

func TestTypesetEmptyBody(t *testing.T) {
	s := newTestServer()
	rr := doRequest(s, http.MethodPost, "/typeset", nil)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if got := decodeErrorBody(t, rr).Code; got != "INVALID_INPUT" {
		t.Errorf("error code = %q, want INVALID_INPUT", got)
	}
}

func TestTypesetInvalidFormat(t *testing.T) {
	s := newTestServer()
	rr := doRequest(s, http.MethodPost, "/typeset?format=webp", strings.NewReader(testManifest))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if got := decodeErrorBody(t, rr).Code; got != "INVALID_FORMAT" {
		t.Errorf("error code = %q, want INVALID_FORMAT", got)
	}
}

func TestTypesetTreeView(t *testing.T) {
	s := newTestServer()
	rr := doRequest(s, http.MethodPost, "/typeset?view=tree&format=dot", strings.NewReader(testManifest))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rr.Code, rr.Body.String())
	}
	if !bytes.Contains(rr.Body.Bytes(), []byte("digraph")) {
		t.Error("response missing digraph header")
	}
}

func TestDocumentLifecycle(t *testing.T) {
	s := newTestServer()

	// Create
	body, _ := json.Marshal(createDocumentRequest{Name: "report", Source: testManifest})
	rr := doRequest(s, http.MethodPost, "/documents", bytes.NewReader(body))
	if rr.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201 (body: %s)", rr.Code, rr.Body.String())
	}
	var created documentSummary
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.ID == "" {
		t.Fatal("create response missing id")
	}
	if created.PageCount != 1 {
		t.Errorf("PageCount = %d, want 1", created.PageCount)
	}
	if loc := rr.Header().Get("Location"); loc != "/documents/"+created.ID {
		t.Errorf("Location = %q, want /documents/%s", loc, created.ID)
	}

	// Get
	rr = doRequest(s, http.MethodGet, "/documents/"+created.ID, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("get status = %d, want 200", rr.Code)
	}
	if !bytes.Contains(rr.Body.Bytes(), []byte(`"source"`)) {
		t.Error("get response missing source")
	}

	// List
	rr = doRequest(s, http.MethodGet, "/documents", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("list status = %d, want 200", rr.Code)
	}
	var listed []documentSummary
	if err := json.Unmarshal(rr.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != created.ID {
		t.Errorf("list = %+v, want single entry %s", listed, created.ID)
	}

	// Render
	rr = doRequest(s, http.MethodGet, "/documents/"+created.ID+"/render?format=json", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("render status = %d, want 200 (body: %s)", rr.Code, rr.Body.String())
	}
	if !bytes.Contains(rr.Body.Bytes(), []byte(`"page_count": 1`)) {
		t.Errorf("render response missing page count: %s", rr.Body.String())
	}

	// Delete
	rr = doRequest(s, http.MethodDelete, "/documents/"+created.ID, nil)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", rr.Code)
	}

	// Get after delete
	rr = doRequest(s, http.MethodGet, "/documents/"+created.ID, nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("get after delete status = %d, want 404", rr.Code)
	}
	if got := decodeErrorBody(t, rr).Code; got != "DOCUMENT_NOT_FOUND" {
		t.Errorf("error code = %q, want DOCUMENT_NOT_FOUND", got)
	}
}

func TestCreateDocumentMissingSource(t *testing.T) {
	s := newTestServer()
	rr := doRequest(s, http.MethodPost, "/documents", strings.NewReader(`{"name": "x"}`))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if got := decodeErrorBody(t, rr).Code; got != "INVALID_INPUT" {
		t.Errorf("error code = %q, want INVALID_INPUT", got)
	}
}

func TestRenderDocumentMissing(t *testing.T) {
	s := newTestServer()
	rr := doRequest(s, http.MethodGet, "/documents/nope/render", nil)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
	if got := decodeErrorBody(t, rr).Code; got != "DOCUMENT_NOT_FOUND" {
		t.Errorf("error code = %q, want DOCUMENT_NOT_FOUND", got)
	}
}
