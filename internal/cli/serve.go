package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/triagemap/pkg/diagram"
	apperrors "github.com/matzehuels/triagemap/pkg/errors"
	"github.com/matzehuels/triagemap/pkg/flow"
	"github.com/matzehuels/triagemap/pkg/pipeline"
)

// serveCommand creates the serve command for the HTTP surface.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr       string
		configPath string
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the diagram over HTTP",
		Long: `Serve the pipeline diagram over HTTP.

Endpoints:
  GET /             HTML page embedding the diagram with hover highlighting
  GET /diagram.svg  the diagram (query: style, legend, hover)
  GET /diagram.png  rasterized diagram (query: style, legend, scale)
  GET /diagram.json the scene description
  GET /healthz      liveness probe

Artifacts are cached with the same keys as the render command, so a
warmed CLI cache also serves HTTP traffic.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Serve.Addr = addr
			}

			runner, err := c.newRunner(cmd, cfg, noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			srv := &server{runner: runner, cfg: cfg, logger: c.Logger, scene: flow.Compose()}
			return srv.listen(cmd.Context(), cfg.Serve.Addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", DefaultServeAddr, "listen address")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default ~/.config/triagemap/config.toml)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// server bundles the render pipeline behind an HTTP handler.
type server struct {
	runner *pipeline.Runner
	cfg    *Config
	logger *log.Logger
	scene  *diagram.Scene
}

// listen serves until the context is cancelled, then shuts down with a
// short drain window.
func (s *server) listen(ctx context.Context, addr string) error {
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("serving diagram", "addr", addr)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/", s.handleIndex)
	r.Get("/diagram.svg", s.handleDiagram(pipeline.FormatSVG, "image/svg+xml"))
	r.Get("/diagram.png", s.handleDiagram(pipeline.FormatPNG, "image/png"))
	r.Get("/diagram.json", s.handleDiagram(pipeline.FormatJSON, "application/json"))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return r
}

// requestID tags each request with a UUID, echoed in the response header
// and attached to log lines.
func (s *server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

type ctxKey int

const requestIDKey ctxKey = 0

func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		id, _ := r.Context().Value(requestIDKey).(string)
		s.logger.Info("request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).Round(time.Millisecond))
	})
}

// handleIndex serves a minimal page embedding the interactive SVG.
func (s *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	opts := s.queryOptions(r)
	opts.Formats = []string{pipeline.FormatSVG}
	opts.Hover = true

	artifacts, _, err := s.runner.Render(r.Context(), s.scene, opts)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, indexTemplate, s.scene.Title, artifacts[pipeline.FormatSVG])
}

// handleDiagram serves one artifact format with render options taken from
// the query string.
func (s *server) handleDiagram(format, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := s.queryOptions(r)
		opts.Formats = []string{format}

		artifacts, info, err := s.runner.Render(r.Context(), s.scene, opts)
		if err != nil {
			s.renderError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", contentType)
		if info.Hit {
			w.Header().Set("X-Cache", "hit")
		} else {
			w.Header().Set("X-Cache", "miss")
		}
		_, _ = w.Write(artifacts[format])
	}
}

// queryOptions layers query parameters over the configured defaults.
func (s *server) queryOptions(r *http.Request) pipeline.Options {
	opts := s.cfg.Options()
	q := r.URL.Query()

	if v := q.Get("style"); v != "" {
		opts.Style = v
	}
	if v := q.Get("legend"); v != "" {
		opts.Legend = v == "true" || v == "1"
	}
	if v := q.Get("hover"); v != "" {
		opts.Hover = v == "true" || v == "1"
	}
	if v := q.Get("scale"); v != "" {
		if scale, err := strconv.ParseFloat(v, 64); err == nil {
			opts.Scale = scale
		}
	}
	return opts
}

func (s *server) renderError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	id, _ := r.Context().Value(requestIDKey).(string)
	s.logger.Error("render failed", "id", id, "err", err)

	status := http.StatusInternalServerError
	if apperrors.Is(err, apperrors.ErrCodeInvalidFormat) || apperrors.Is(err, apperrors.ErrCodeInvalidStyle) {
		status = http.StatusBadRequest
	}
	http.Error(w, apperrors.UserMessage(err), status)
}

const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
  body { margin: 0; background: #F8FAFC; display: flex; justify-content: center; }
  main { max-width: 1100px; width: 100%%; padding: 24px; }
</style>
</head>
<body>
<main>
%s
</main>
</body>
</html>
`
