// Package main is the entry point for the skillshare API server.
//
// Startup order:
//
//  1. Configuration from environment variables (go-envconfig); a missing
//     JWT_SECRET is fatal.
//  2. Structured logging (zerolog singleton).
//  3. MongoDB connection, verified with a ping, then index creation.
//  4. Redis connection for notification deduplication.
//  5. HTTP server (Echo) with graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/skillshare/skillshare-api/internal/api"
	"github.com/skillshare/skillshare-api/internal/core/service"
	"github.com/skillshare/skillshare-api/internal/infrastructure/config"
	mongoinfra "github.com/skillshare/skillshare-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/skillshare/skillshare-api/internal/infrastructure/db/redis"
	"github.com/skillshare/skillshare-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title                       Skillshare API
// @version                     1.0
// @description                 Identity, social graph and content API for the skillshare platform.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not configured yet; write to stderr and exit.
		os.Stderr.WriteString("fatal: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Str("mongo_db", cfg.Mongo.Database).
		Msg("starting skillshare api")

	client, db, err := mongoinfra.Connect(ctx, mongoinfra.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect")
		}
	}()

	if err := mongoinfra.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	rdb, err := redisinfra.Connect(ctx, redisinfra.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close")
		}
	}()

	tokens, err := service.NewTokenService(cfg.JWTSecret, cfg.JWTTTL, log)
	if err != nil {
		log.Fatal().Err(err).Msg("token service init failed")
	}

	e := api.NewRouter(api.Deps{
		DB:     db,
		Redis:  rdb,
		Tokens: tokens,
		Log:    log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
