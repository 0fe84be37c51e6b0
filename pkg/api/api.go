// Package api provides the HTTP interface to the typesetting pipeline.
//
// The server wraps a [pipeline.Runner] and a [store.Store]: one-shot
// typesetting posts a manifest and gets an artifact back, while the
// documents endpoints persist manifests with their typeset pages for
// later retrieval and re-rendering.
//
// # Endpoints
//
//	GET    /healthz                - liveness and version info
//	POST   /typeset                - typeset a manifest, respond with one artifact
//	POST   /documents              - typeset and persist a document
//	GET    /documents              - list stored documents
//	GET    /documents/{id}         - fetch a stored document
//	GET    /documents/{id}/render  - render a stored document
//	DELETE /documents/{id}         - delete a stored document
//
// # Errors
//
// Handlers respond with a JSON envelope carrying an error code from
// [errors.Code] and a user-facing message:
//
//	{"error": {"code": "INVALID_MANIFEST", "message": "decode manifest: ..."}}
//
// # Usage
//
//	srv := api.NewServer(api.Config{
//	    Runner: runner,
//	    Store:  st,
//	    Logger: logger,
//	})
//	http.ListenAndServe(":8080", srv)
package api

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ahuangsnail/quire/pkg/pipeline"
	"github.com/ahuangsnail/quire/pkg/store"
)

// Config configures an API server.
type Config struct {
	// Runner executes the typesetting pipeline. A caching runner is
	// created when nil.
	Runner *pipeline.Runner

	// Store persists documents. Defaults to an in-memory store.
	Store store.Store

	// Logger receives request and error logs. Defaults to log.Default().
	Logger *log.Logger
}

// Server is the HTTP handler for the typesetting API.
type Server struct {
	runner *pipeline.Runner
	store  store.Store
	logger *log.Logger
	router chi.Router
}

var _ http.Handler = (*Server)(nil)

// NewServer creates an API server with its routes mounted.
func NewServer(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.Runner == nil {
		cfg.Runner = pipeline.NewRunner(nil, nil, cfg.Logger)
	}
	if cfg.Store == nil {
		cfg.Store = store.NewMemoryStore()
	}

	s := &Server{
		runner: cfg.Runner,
		store:  cfg.Store,
		logger: cfg.Logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Post("/typeset", s.handleTypeset)
	r.Route("/documents", func(r chi.Router) {
		r.Post("/", s.handleCreateDocument)
		r.Get("/", s.handleListDocuments)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetDocument)
			r.Get("/render", s.handleRenderDocument)
			r.Delete("/", s.handleDeleteDocument)
		})
	})

	s.router = r
	return s
}

// ServeHTTP dispatches requests to the mounted routes.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
