package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"slices"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"testview/internal/config"
	"testview/internal/report"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// PageSource produces a page for each "execute tests" action
type PageSource interface {
	Execute(ctx context.Context, extraArgs ...string) *report.Page
}

// Server is the browser UI: one button that runs the tests and a results table
type Server struct {
	config *config.Config
	source PageSource
	tmpl   *template.Template
	log    *logrus.Entry

	mu   sync.RWMutex
	last *report.Page

	server *http.Server
}

// New creates a new Server
func New(cfg *config.Config, source PageSource) (*Server, error) {
	tmpl, err := template.New("index.html.tmpl").Funcs(template.FuncMap{
		"colorStyle": colorStyle,
	}).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &Server{
		config: cfg,
		source: source,
		tmpl:   tmpl,
		log:    logrus.WithField("component", "server"),
		last:   report.NewPage(report.Locale(cfg.Locale)),
	}, nil
}

// Handler returns the HTTP handler with every route registered
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.logRequests)
	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/run", s.handleRun).Methods(http.MethodPost)
	r.HandleFunc("/api/results", s.handleResults).Methods(http.MethodGet)
	r.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// an empty origin list means "*" to rs/cors
	if len(s.config.AllowedOrigins) == 0 {
		return r
	}
	c := cors.New(cors.Options{
		AllowedOrigins: s.config.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})
	return c.Handler(r)
}

// Start serves on the configured address until ctx is cancelled
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:              s.config.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.WithField("addr", s.config.Addr).Info("Serving browser UI")
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, s.lastPage())
}

// handleRun executes the tests synchronously. A run in flight answers 409
// and leaves the last page untouched.
func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	if !s.originAllowed(r) {
		s.log.WithField("origin", r.Header.Get("Origin")).Warn("Rejected cross-origin run request")
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}

	// navigating away must not kill the test tool mid-run
	page := s.source.Execute(context.WithoutCancel(r.Context()))

	if page.State == report.StateBusy {
		s.render(w, http.StatusConflict, page)
		return
	}

	s.mu.Lock()
	s.last = page
	s.mu.Unlock()

	s.render(w, http.StatusOK, page)
}

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.lastPage()); err != nil {
		s.log.WithError(err).Warn("Failed to encode results")
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("OK")) //nolint:errcheck
}

// originAllowed accepts requests without an Origin header, same-origin
// requests and configured origins. A cross-site form post carries the
// foreign Origin and is rejected, CORS or not.
func (s *Server) originAllowed(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	if u, err := url.Parse(origin); err == nil && u.Host == r.Host {
		return true
	}
	return slices.Contains(s.config.AllowedOrigins, origin)
}

func (s *Server) lastPage() *report.Page {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

type templateData struct {
	Page *report.Page
	Msg  report.Messages
}

func (s *Server) render(w http.ResponseWriter, status int, page *report.Page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tmpl.Execute(w, templateData{Page: page, Msg: page.Messages()}); err != nil {
		s.log.WithError(err).Error("Failed to render page")
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).Round(time.Millisecond).String(),
		}).Debug("Handled request")
	})
}

// colorStyle changes only the text colour of a result cell
func colorStyle(c report.Color) template.CSS {
	if c == report.ColorDefault {
		return ""
	}
	return template.CSS("color: " + string(c) + ";")
}
