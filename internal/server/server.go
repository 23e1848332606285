// Package server implements the story proxy: an HTTP endpoint that relays
// story prompts to the configured LLM provider so clients never hold an
// API key.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/abhisek/etymquest/internal/llm"
)

// DefaultRequestTimeout bounds a single proxied generation.
const DefaultRequestTimeout = 60 * time.Second

// Options configures a Server.
type Options struct {
	Provider llm.Provider
	// LLM supplies the request defaults applied to every prompt.
	LLM llm.Config

	// AllowedOrigins lists the CORS origins. Empty allows any origin.
	AllowedOrigins []string
	RequestTimeout time.Duration

	Logger *slog.Logger
}

// Server is the story proxy.
type Server struct {
	provider  llm.Provider
	llmConfig llm.Config
	logger    *slog.Logger
	handler   http.Handler
}

// New builds the proxy's router.
func New(opts Options) (*Server, error) {
	if opts.Provider == nil {
		return nil, errors.New("server: provider is required")
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = DefaultRequestTimeout
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &Server{
		provider:  opts.Provider,
		llmConfig: opts.LLM,
		logger:    opts.Logger,
	}

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	})

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(structuredLogger(s.logger))
	r.Use(c.Handler)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(opts.RequestTimeout))

	r.Post("/api/generate-story", s.generateStory)
	r.Get("/healthz", s.healthz)

	s.handler = r
	return s, nil
}

// Handler returns the proxy's HTTP handler.
func (s *Server) Handler() http.Handler { return s.handler }

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully, giving in-flight requests five seconds to finish.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("story proxy listening", slog.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down story proxy")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// ListenAndServe listens on addr and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}
