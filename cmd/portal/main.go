package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/Sabharishraja/Multilinguistic-chatbot/internal/backend"
	"github.com/Sabharishraja/Multilinguistic-chatbot/internal/config"
	"github.com/Sabharishraja/Multilinguistic-chatbot/internal/logging"
	"github.com/Sabharishraja/Multilinguistic-chatbot/internal/mockdata"
	"github.com/Sabharishraja/Multilinguistic-chatbot/internal/portal"
	"github.com/Sabharishraja/Multilinguistic-chatbot/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load configuration: %v\n", err)
		os.Exit(1)
	}

	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "Listen address")
	flag.StringVar(&cfg.BackendURL, "backend", cfg.BackendURL, "Chatbot backend URL")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flag.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json)")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Session database path (default ~/.chatportal/portal.db)")
	flag.StringVar(&cfg.StaticDir, "static", cfg.StaticDir, "Directory with the built frontend (empty to disable)")
	debug := flag.Bool("debug", false, "Shorthand for --log-level=debug")
	configFile := flag.String("config", "", "Path to YAML settings file")
	flag.Parse()

	if *configFile != "" {
		if err := cfg.ApplyFile(*configFile); err != nil {
			fmt.Fprintf(os.Stderr, "apply config file: %v\n", err)
			os.Exit(1)
		}
	}
	if *debug {
		cfg.LogLevel = "debug"
	}

	logger := logging.New(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)

	// Resolve session database path.
	dbPath := cfg.DBPath
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot determine home directory: %v\n", err)
			os.Exit(1)
		}
		dir := filepath.Join(home, ".chatportal")
		if err := os.MkdirAll(dir, 0o700); err != nil {
			fmt.Fprintf(os.Stderr, "cannot create %s: %v\n", dir, err)
			os.Exit(1)
		}
		dbPath = filepath.Join(dir, "portal.db")
	}

	// Open session store and run migrations.
	st, err := store.NewSQLiteStore(dbPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open database: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	if err := st.Migrate(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "migrate database: %v\n", err)
		os.Exit(1)
	}
	logger.Info("session database ready", "path", dbPath)

	// Backend client, with the synthetic fallback for analytics when enabled.
	clientOpts := []backend.Option{backend.WithCacheTTL(cfg.CacheTTL)}

	var gen *mockdata.Generator
	if cfg.MockFallback {
		gen = mockdata.New(logger)
		gen.Start(mockdata.DefaultInterval)
		clientOpts = append(clientOpts, backend.WithFallback(gen))
		logger.Info("synthetic analytics fallback enabled")
	}

	bc := backend.New(cfg.BackendURL, logger, clientOpts...)
	defer bc.Close()

	srv := portal.New(cfg, st, bc, logger)

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv.StartSessionCleanup(ctx)

	go func() {
		logger.Info("portal starting", "addr", cfg.Addr, "backend", cfg.BackendURL)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("portal failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	if gen != nil {
		gen.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintf(os.Stderr, "shutdown error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("portal stopped")
}
