// Package server hosts a rendered grid over HTTP: a page with the canvas
// element, the PNG it displays, the stroke log as CSV and a static file tree.
package server

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"image/color"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gogpu/gridcanvas"
	"github.com/gogpu/gridcanvas/internal/config"
	"github.com/gogpu/gridcanvas/internal/export"
)

//go:embed index.html
var indexHTML string

var pageTemplate = template.Must(template.New("index").Parse(indexHTML))

// maxScale bounds the scale query parameter of /grid.png.
const maxScale = 4

type pageData struct {
	ID     string
	Width  int
	Height int
	Border template.CSS
}

// Server serves one grid. The grid surface is not safe for concurrent use,
// so every handler that reads it holds mu.
type Server struct {
	cfg        config.ServerConfig
	background color.Color

	mu   sync.Mutex
	grid *gridcanvas.Grid
}

// New returns a server for g. bg is the page colour used for framed PNGs;
// nil means transparent.
func New(cfg config.ServerConfig, g *gridcanvas.Grid, bg color.Color) *Server {
	return &Server{cfg: cfg, grid: g, background: bg}
}

// Handler returns the HTTP routes of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /grid.png", s.handlePNG)
	mux.HandleFunc("GET /segments.csv", s.handleCSV)
	mux.HandleFunc("GET /healthz", handleHealth)

	if dir := s.cfg.StaticDir; dir != "" {
		if fi, err := os.Stat(dir); err == nil && fi.IsDir() {
			mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(dir))))
		} else {
			gridcanvas.Logger().Warn("static directory unavailable", "dir", dir)
		}
	}
	return logRequests(mux)
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	surf := s.grid.Surface()
	border := surf.Border().String()
	if border == "" {
		border = "none"
	}
	data := pageData{
		ID:     surf.ID(),
		Width:  surf.Width(),
		Height: surf.Height(),
		Border: template.CSS(border),
	}
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		gridcanvas.Logger().Error("render page", "err", err)
	}
}

func (s *Server) handlePNG(w http.ResponseWriter, r *http.Request) {
	opts := export.PNGOptions{Background: s.background}
	q := r.URL.Query()
	if v := q.Get("framed"); v != "" {
		framed, err := strconv.ParseBool(v)
		if err != nil {
			http.Error(w, "framed: "+err.Error(), http.StatusBadRequest)
			return
		}
		opts.Framed = framed
	}
	if v := q.Get("scale"); v != "" {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil || scale <= 0 || scale > maxScale {
			http.Error(w, fmt.Sprintf("scale must be in (0, %d]", maxScale), http.StatusBadRequest)
			return
		}
		opts.Scale = scale
	}

	s.mu.Lock()
	img := export.Image(s.grid.Surface(), opts)
	s.mu.Unlock()

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	if err := export.EncodeImage(w, img); err != nil {
		gridcanvas.Logger().Error("write png", "err", err)
	}
}

func (s *Server) handleCSV(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	records := export.SegmentRecords(s.grid.Surface().Strokes())
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	if err := export.WriteRecordsCSV(w, records); err != nil {
		gridcanvas.Logger().Error("write csv", "err", err)
	}
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		gridcanvas.Logger().Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully
// within the configured timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener. The listener is closed
// when Serve returns.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout,
		ErrorLog:          slog.NewLogLogger(gridcanvas.Logger().Handler(), slog.LevelWarn),
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(ln)
	}()
	gridcanvas.Logger().Info("serving", "addr", ln.Addr().String())

	select {
	case err := <-errc:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	sctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}
	gridcanvas.Logger().Info("server stopped")
	return nil
}
