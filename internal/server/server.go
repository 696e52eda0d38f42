// Package server exposes the semantic checker over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yaklabco/semlint/internal/logging"
	"github.com/yaklabco/semlint/pkg/config"
	"github.com/yaklabco/semlint/pkg/lint"
	"github.com/yaklabco/semlint/pkg/reporter"
	"github.com/yaklabco/semlint/pkg/runner"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second

	// defaultDocumentName is reported when the request names no document.
	defaultDocumentName = "request"
)

// Server serves check requests using a fixed configuration.
type Server struct {
	cfg      *config.Config
	registry *lint.Registry
	runner   *runner.Runner
	metrics  *Metrics
	gatherer prometheus.Gatherer
	logger   *log.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// New creates a Server. A nil registry means lint.DefaultRegistry; a nil
// cfg means defaults. Each Server owns its own metrics registry.
func New(cfg *config.Config, registry *lint.Registry, opts ...Option) *Server {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if registry == nil {
		registry = lint.DefaultRegistry
	}

	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	s := &Server{
		cfg:      cfg,
		registry: registry,
		runner:   runner.New(registry),
		metrics:  NewMetrics(promRegistry),
		gatherer: promRegistry,
		logger:   logging.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	r.Route("/v1", func(r chi.Router) {
		r.Post("/check", s.handleCheck)
		r.Get("/rules", s.handleRules)
	})

	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully. An empty addr uses the configured server address.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if addr == "" {
		addr = s.cfg.Server.Addr
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve accepts connections on listener until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return logging.WithLogger(context.Background(), s.logger)
		},
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("serving", logging.FieldAddr, listener.Addr().String())
		errCh <- srv.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}

// errorResponse is the body of a failed request.
type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, s.maxBodyBytes())
	name := documentName(r)

	start := time.Now()
	result, err := s.runner.CheckReader(r.Context(), name, body, s.cfg)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	outcome := result.Files[0]
	s.metrics.observe(outcome, time.Since(start).Seconds())

	if outcome.Error != nil {
		writeError(w, http.StatusUnprocessableEntity, outcome.Error.Error())
		return
	}

	if name == "" {
		name = defaultDocumentName
	}
	resp := reporter.JSONFileResult{
		Path:     name,
		Format:   string(outcome.Format),
		Blocking: reporter.NewJSONDiagnostics(outcome.Report.Blocking),
		Advisory: reporter.NewJSONDiagnostics(outcome.Report.Advisory),
	}
	if len(outcome.Report.RuleErrors) > 0 {
		resp.RuleErrors = make(map[string]string, len(outcome.Report.RuleErrors))
		for id, ruleErr := range outcome.Report.RuleErrors {
			resp.RuleErrors[id] = ruleErr.Error()
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// ruleResponse describes one rule as resolved by the server configuration.
type ruleResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	Enabled     bool   `json:"enabled"`
}

func (s *Server) handleRules(w http.ResponseWriter, _ *http.Request) {
	active := make(map[string]lint.ResolvedRule)
	for _, rr := range lint.ResolveRules(s.registry, s.cfg) {
		active[rr.Rule.ID()] = rr
	}

	rules := s.registry.Rules()
	out := make([]ruleResponse, 0, len(rules))
	for _, rule := range rules {
		resp := ruleResponse{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Description: rule.Description(),
			Severity:    string(rule.DefaultSeverity()),
		}
		if rr, ok := active[rule.ID()]; ok {
			resp.Enabled = true
			resp.Severity = string(rr.Severity)
		}
		out = append(out, resp)
	}

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// logRequests logs each request at debug level with its status and latency.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.Debug("request",
			"method", r.Method,
			logging.FieldPath, r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func (s *Server) maxBodyBytes() int64 {
	if s.cfg.Server.MaxBodyBytes > 0 {
		return s.cfg.Server.MaxBodyBytes
	}
	return config.DefaultMaxBodyBytes
}

// documentName picks the name used for format detection. The "name" query
// parameter wins; otherwise a Markdown or HTML content type selects a
// matching extension, and anything else is left to content detection.
func documentName(r *http.Request) string {
	if name := r.URL.Query().Get("name"); name != "" {
		return name
	}

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return ""
	}
	switch mediaType {
	case "text/markdown", "text/x-markdown":
		return "request.md"
	case "text/html", "application/xhtml+xml":
		return "request.html"
	default:
		return ""
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v) //nolint:errcheck // The status line is already written.
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
