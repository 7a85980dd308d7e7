package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/shapesapp/shapes/internal/auth"
	"github.com/shapesapp/shapes/internal/config"
	"github.com/shapesapp/shapes/internal/db"
	"github.com/shapesapp/shapes/internal/discovery"
	"github.com/shapesapp/shapes/internal/export"
	mw "github.com/shapesapp/shapes/internal/middleware"
	"github.com/shapesapp/shapes/internal/scenes"
	"github.com/shapesapp/shapes/internal/session"
	"github.com/shapesapp/shapes/internal/store"
)

const (
	reapInterval   = time.Minute
	sessionMaxIdle = 30 * time.Minute
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sceneStore, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		slog.Error("open scene store", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	authService := auth.NewService(cfg.SessionSecret)
	authHandler := auth.NewHandler(authService)

	sceneService := scenes.NewService(sceneStore)
	sceneHandler := scenes.NewHandler(sceneService)

	hub := session.NewHub(sceneStore, logger)
	stopReaper := make(chan struct{})
	go hub.Run(reapInterval, sessionMaxIdle, stopReaper)

	sessionHandler := session.NewHandler(hub, authService, originPatterns(cfg.Origins()))
	exportHandler := export.NewHandler(hub, sceneService, cfg.CanvasWidth, cfg.CanvasHeight)

	r := mux.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.Logger)
	r.Use(mw.CORS(cfg.Origins()))

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Sessions
	r.HandleFunc("/sessions", sessionHandler.Create).Methods("POST", "OPTIONS")
	inSession := func(h http.HandlerFunc) http.Handler {
		return authService.AuthMiddleware(auth.RequireSession(h))
	}
	r.Handle("/sessions/{sessionId}", inSession(sessionHandler.Delete)).Methods("DELETE", "OPTIONS")
	r.Handle("/sessions/{sessionId}/token", inSession(authHandler.Refresh)).Methods("POST", "OPTIONS")
	r.Handle("/sessions/{sessionId}/export.{format:png|pdf}", inSession(exportHandler.ExportSession)).Methods("GET", "OPTIONS")

	// WebSocket endpoint
	r.Handle("/ws/session/{sessionId}", inSession(sessionHandler.ServeWS))

	// Scene library
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/scenes", sceneHandler.List).Methods("GET")
	api.HandleFunc("/scenes/sample", sceneHandler.Sample).Methods("GET")
	api.HandleFunc("/scenes/{name}", sceneHandler.Get).Methods("GET")
	api.HandleFunc("/scenes/{name}", sceneHandler.Put).Methods("PUT", "OPTIONS")
	api.HandleFunc("/scenes/{name}", sceneHandler.Delete).Methods("DELETE", "OPTIONS")
	api.HandleFunc("/scenes/{name}/export.{format:png|pdf}", exportHandler.ExportScene).Methods("GET")

	var advertiser *discovery.Advertiser
	if cfg.MDNSEnabled {
		advertiser, err = discovery.Advertise(cfg.MDNSInstance, cfg.Port)
		if err != nil {
			slog.Warn("mdns advertisement disabled", "error", err)
		} else {
			slog.Info("advertising on mdns", "service", discovery.ServiceType, "instance", cfg.MDNSInstance)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server")

		if advertiser != nil {
			if err := advertiser.Shutdown(); err != nil {
				slog.Warn("mdns shutdown", "error", err)
			}
		}

		close(stopReaper)
		hub.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		srv.Shutdown(shutdownCtx)
	}()

	slog.Info("server starting", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

// openStore uses Postgres when DATABASE_URL is set and the scene directory
// otherwise.
func openStore(ctx context.Context, cfg *config.Config) (store.Store, func(), error) {
	if cfg.DatabaseURL == "" {
		fs, err := store.NewFileStore(cfg.SceneDir)
		if err != nil {
			return nil, nil, err
		}
		slog.Info("using file scene store", "dir", cfg.SceneDir)
		return fs, func() {}, nil
	}

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}
	pg := store.NewPostgresStore(pool)
	if err := pg.Migrate(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}
	slog.Info("using postgres scene store")
	return pg, pool.Close, nil
}

// originPatterns strips the scheme from each origin; the WebSocket origin
// check matches host patterns.
func originPatterns(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		if i := strings.Index(o, "://"); i >= 0 {
			o = o[i+3:]
		}
		out = append(out, o)
	}
	return out
}
