package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/expense-tracker/backend/internal/config"
	"github.com/expense-tracker/backend/internal/database"
	"github.com/expense-tracker/backend/internal/router"
	"github.com/expense-tracker/backend/internal/service"
	"github.com/expense-tracker/backend/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/peterbourgon/ff/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// shutdownTimeout is how long running requests get to finish on shutdown.
const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, ff.ErrHelp) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(0)
	} else if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(ginMode)
	}

	output := io.Writer(os.Stdout)
	if cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(cfg.LogLevel)
	log.Logger = log.Output(output).With().Timestamp().Logger()

	provider := database.NewProvider(cfg.DatabaseDriver(), cfg.Database, nil)
	svc := service.New(store.New(provider), provider)

	// The database might come up after the backend, so an unreachable
	// database is reported but not fatal
	health := svc.CheckConnection(context.Background())
	if health.OK {
		log.Info().Str("target", health.Target).Int64("latency-ms", health.LatencyMS).Msg("Database")
	} else {
		log.Warn().Str("target", health.Target).Msg(health.Message)
	}

	r, teardown, err := router.Config(cfg.APIURL, cfg.CORSAllowOrigins)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer teardown()

	router.AttachRoutes(r.Group("/"), svc, cfg.EnablePprof)

	server := &http.Server{
		Addr:              cfg.Listen,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("address", cfg.Listen).Msg("Server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msg(err.Error())
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Msgf("%T: %v", err, err.Error())
	}
}
