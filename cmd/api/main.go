package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vidshare/internal/config"
	"vidshare/internal/database"
	"vidshare/internal/logging"
	"vidshare/internal/wire"
)

func main() {
	cfg := config.LoadConfig()
	logging.Init(cfg.Logging.Level, cfg.Logging.Format, "vidshare-api")

	if err := cfg.Validate(); err != nil {
		logging.Logger.Fatal().Err(err).Msg("invalid configuration")
	}

	logging.Logger.Info().Str("env", cfg.Server.Environment).Msg("initializing application")
	app, cleanup, err := wire.InitializeApplication(cfg)
	if err != nil {
		logging.Logger.Fatal().Err(err).Msg("failed to initialize application")
	}
	defer cleanup()

	if err := database.Migrate(app.DB); err != nil {
		logging.Logger.Error().Err(err).Msg("migration failed")
		return
	}

	server := &http.Server{
		Addr:           cfg.Addr(),
		Handler:        app.Handler,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		logging.Logger.Info().Str("addr", server.Addr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logging.Logger.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logging.Logger.Error().Err(err).Msg("server forced to shutdown")
	}

	logging.Logger.Info().Msg("server gracefully stopped")
}
