package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lumiere-jewelry/storefront/internal/config"
	"github.com/lumiere-jewelry/storefront/internal/storage"
	"github.com/lumiere-jewelry/storefront/internal/store"
	"github.com/lumiere-jewelry/storefront/internal/transport"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	level, err := zerolog.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		log.Warn().Str("level", cfg.App.LogLevel).Msg("Unknown log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	log.Info().Msg("Starting storefront...")

	backend, err := storage.NewBolt(cfg.Storage.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open storage")
	}

	st, err := store.New(store.Config{
		AdminPassword:     cfg.Admin.Password,
		AdminPasswordHash: cfg.Admin.PasswordHash,
	}, backend)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hydrate store")
	}

	router := transport.NewRouter(st)

	server := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.App.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)
	<-stopCh

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server shutdown failed")
	}

	if err := backend.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close storage")
	}

	log.Info().Msg("Storefront stopped gracefully")
}
