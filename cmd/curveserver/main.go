// Command curveserver serves the curve editor to a browser. The scene of
// each connection lives on the server; the page only forwards pointer
// events and replays the drawing commands it receives onto a canvas.
package main

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/gogpu/curvekit"
	"github.com/gogpu/curvekit/integration/ggsurface"
	"github.com/gogpu/curvekit/internal/config"
	"github.com/gogpu/curvekit/internal/session"
)

//go:embed static
var static embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	curvekit.SetLogger(logger)

	hub := session.NewHub(session.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Background: cfg.Background,
	}, cfg.Seed, logger)

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      newRouter(hub, cfg.Origins),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server", "sessions", hub.Len())
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown", "error", err)
		}
	}()

	slog.Info("server starting", "addr", cfg.Addr, "width", cfg.Width, "height", cfg.Height)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func newRouter(hub *session.Hub, origins []string) *mux.Router {
	r := mux.NewRouter()

	page, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	r.Handle("/", http.FileServer(http.FS(page))).Methods("GET")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	r.HandleFunc("/ws", session.Handler(hub, origins))

	r.HandleFunc("/sessions/{id}/snapshot.png", func(w http.ResponseWriter, r *http.Request) {
		snapshot(w, r, hub)
	}).Methods("GET")

	return r
}

// snapshot renders the last frame of a session with gg.
func snapshot(w http.ResponseWriter, r *http.Request, hub *session.Hub) {
	id := mux.Vars(r)["id"]
	s, ok := hub.Get(id)
	if !ok {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	surface, err := ggsurface.Render(s.Snapshot())
	if err != nil {
		slog.Error("render snapshot", "session", id, "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	defer surface.Close()

	w.Header().Set("Content-Type", "image/png")
	if err := surface.EncodePNG(w); err != nil {
		slog.Debug("write snapshot", "session", id, "error", err)
	}
}
