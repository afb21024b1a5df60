// Package preview serves a site definition over HTTP and re-renders it when
// the file changes on disk.
package preview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/goliatone/go-sitegen/pkg/render"
	"github.com/goliatone/go-sitegen/pkg/site"
	"github.com/goliatone/go-sitegen/pkg/sitefile"
)

// Option configures a Server.
type Option func(*Server)

// WithRenderer overrides the default renderer.
func WithRenderer(r *render.Renderer) Option {
	return func(s *Server) {
		if r != nil {
			s.renderer = r
		}
	}
}

// WithLogger sets the logger used for reloads and watcher errors.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithNormalizeOptions forwards options to site.Normalize.
func WithNormalizeOptions(opts ...site.NormalizeOption) Option {
	return func(s *Server) {
		s.normalize = append(s.normalize, opts...)
	}
}

// Server renders the current definition on each request. The definition is
// swapped atomically on reload; requests never see a partial update.
type Server struct {
	mu  sync.RWMutex
	def sitefile.Definition

	path      string
	renderer  *render.Renderer
	logger    *zap.Logger
	normalize []site.NormalizeOption
	router    *mux.Router
}

// New loads the definition at path and builds the routes.
func New(ctx context.Context, path string, options ...Option) (*Server, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("preview: resolve %s: %w", path, err)
	}
	s := &Server{
		path:   abs,
		logger: zap.NewNop(),
		router: mux.NewRouter(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	if s.renderer == nil {
		s.renderer, err = render.Default()
		if err != nil {
			return nil, err
		}
	}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}

	s.router.HandleFunc("/", s.handleSite).Methods(http.MethodGet)
	s.router.HandleFunc("/templates", s.handleTemplates).Methods(http.MethodGet)
	s.router.HandleFunc("/templates/{name}", s.handleTemplate).Methods(http.MethodGet)
	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Path is the absolute path of the served definition.
func (s *Server) Path() string {
	return s.path
}

// Definition returns the definition currently served.
func (s *Server) Definition() sitefile.Definition {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.def
}

// Reload re-reads the definition. On failure the previous definition stays
// in place.
func (s *Server) Reload(ctx context.Context) error {
	def, err := sitefile.Load(ctx, sitefile.SourceFromFile(s.path))
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.def = def
	s.mu.Unlock()
	return nil
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleSite(w http.ResponseWriter, r *http.Request) {
	def := s.Definition()
	t, err := def.TemplateKind()
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	s.renderPage(w, t, def)
}

func (s *Server) handleTemplate(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	t, err := render.ParseTemplate(name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	s.renderPage(w, t, s.Definition())
}

func (s *Server) handleTemplates(w http.ResponseWriter, _ *http.Request) {
	noCache(w)
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(render.Catalog()); err != nil {
		s.logger.Warn("encode template catalog", zap.Error(err))
	}
}

func (s *Server) renderPage(w http.ResponseWriter, t render.Template, def sitefile.Definition) {
	record := def.Record(s.normalize...)
	if err := site.Validate(record); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	html, err := s.renderer.Render(t, record)
	if err != nil {
		s.logger.Error("render page", zap.String("template", t.Slug()), zap.Error(err))
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	noCache(w)
	w.Header().Set("Content-Type", render.ContentType)
	_, _ = w.Write([]byte(html))
}

func noCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")
}
