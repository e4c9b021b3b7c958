package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-identifier/internal/adapters/ai"
	"pet-identifier/internal/adapters/auth/session"
	pg "pet-identifier/internal/adapters/storage/postgres"
	"pet-identifier/internal/config"
	"pet-identifier/internal/platform/logger"
	"pet-identifier/internal/router"
)

// @title Pet Identifier API
// @version 1.0
// @description Identificación de mascotas por foto, usuarios, mascotas guardadas y catálogo de razas.
// @BasePath /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lg := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})
	if sl, ok := lg.(*logger.SlogLogger); ok {
		slog.SetDefault(sl.Slog())
	}

	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		lg.Error("failed to listen", map[string]any{"addr": cfg.Addr(), "error": err.Error()})
		os.Exit(1)
	}

	if err := run(ctx, cfg, lg, ln); err != nil {
		lg.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

// run sirve en ln hasta que ctx termina; después apaga el server, cierra
// el pool y espera SHUTDOWN_GRACE.
func run(ctx context.Context, cfg *config.Config, lg logger.Logger, ln net.Listener) error {
	db, err := openDatabase(ctx, cfg, lg)
	if err != nil {
		_ = ln.Close()
		return err
	}

	classifier, err := ai.New(cfg.AI)
	if err != nil {
		// El server arranca igual; /analyze-photo responde "config".
		lg.Warn("ai provider not configured", map[string]any{"provider": cfg.AI.Provider, "error": err.Error()})
		classifier = ai.Unavailable(err)
	}

	opts := router.Options{
		Logger:         lg,
		DB:             db,
		Classifier:     classifier,
		MinImageBytes:  cfg.MinImageBytes,
		PepperSecret:   cfg.Auth.PepperSecret,
		BcryptRounds:   cfg.Auth.BcryptRounds,
		AllowedOrigins: cfg.FrontendURL,
	}
	if cfg.Auth.PepperSecret == "" {
		lg.Warn("PEPPER_SECRET is empty, passwords are hashed without pepper", nil)
	}
	if cfg.Auth.JWTSecret != "" {
		mgr, err := session.NewManager(cfg.Auth.JWTSecret, cfg.Auth.JWTTTL)
		if err != nil {
			closeDB(db, lg)
			_ = ln.Close()
			return fmt.Errorf("init session manager: %w", err)
		}
		opts.AuthVerifier = mgr
		opts.TokenIssuer = mgr
	} else {
		lg.Warn("JWT_SECRET is empty, running in dev mode (user_id is trusted)", nil)
	}

	srv := &http.Server{
		Handler:           router.NewRouter(opts),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		// Cubre la espera del proveedor de IA.
		WriteTimeout: cfg.AI.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		lg.Info("starting server", map[string]any{"addr": ln.Addr().String(), "db": db != nil, "ai_provider": cfg.AI.Provider})
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		lg.Info("shutting down", nil)
	case runErr = <-serveErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Error("error during shutdown", map[string]any{"error": err.Error()})
	}

	closeDB(db, lg)

	time.Sleep(cfg.ShutdownGrace)
	lg.Info("shutdown complete", nil)
	return runErr
}

func closeDB(db *sql.DB, lg logger.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		lg.Warn("error closing database", map[string]any{"error": err.Error()})
	}
}

// openDatabase devuelve nil si no hay DATABASE_URL (repos in-memory).
func openDatabase(ctx context.Context, cfg *config.Config, lg logger.Logger) (*sql.DB, error) {
	if cfg.Database.URL == "" {
		lg.Warn("DATABASE_URL is empty, using in-memory storage", nil)
		return nil, nil
	}

	if cfg.Database.Bootstrap {
		if err := pg.EnsureDatabase(ctx, cfg.Database.URL, lg); err != nil {
			lg.Warn("could not ensure database", map[string]any{"error": err.Error()})
		}
	}

	db, err := pg.Open(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if cfg.Database.Bootstrap {
		// Un fallo de bootstrap no impide arrancar; /health lo reflejará.
		if err := pg.Bootstrap(ctx, db, lg); err != nil {
			lg.Warn("database bootstrap failed", map[string]any{"error": err.Error()})
		}
	}
	return db, nil
}
