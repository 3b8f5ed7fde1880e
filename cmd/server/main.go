// Command server exposes the gloss-abbreviation glossary generator as a
// JSON REST API.
//
// Endpoints:
//
//	POST /api/glossary       body: {"text":"...","glossary_csv":"...","options":{...}}
//	POST /api/glossary/csv   same body, answers a CSV download
//	POST /api/export         body: {"rows":[...]}
//	GET  /api/base
//	GET  /api/sample
//	GET  /health
//	GET  /live
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/cors"

	"github.com/hihighsh/glossary-app/internal/app"
	"github.com/hihighsh/glossary-app/internal/config"
	"github.com/hihighsh/glossary-app/internal/service"
	"github.com/hihighsh/glossary-app/internal/transport/middleware"
	"github.com/hihighsh/glossary-app/internal/transport/rest"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := app.NewLogger(cfg.Log)
	logger.Info("starting glossary server", slog.String("version", app.BuildVersion()))

	gen, err := app.NewGenerator(cfg.Glossary, logger)
	if err != nil {
		return err
	}
	svc := service.New(gen, cfg.Glossary.CacheSize, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := app.NewHTTPServer(cfg.Server, newRouter(cfg, svc, logger))
	return app.Serve(ctx, srv, cfg.Server, logger)
}

// newRouter wires handlers, middleware and CORS.
func newRouter(cfg *config.Config, svc *service.Service, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	health := rest.NewHealthHandler(svc, app.Version)
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /health", health.Health)

	rest.NewGlossaryHandler(svc, cfg.Glossary.Options(), cfg.Glossary.MaxTextBytes, logger).Register(mux)

	if cfg.Auth.Enabled() {
		logger.Info("password gate enabled")
	}

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.PasswordGate(cfg.Auth, "/api/"),
	)(mux)

	return cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   []string{middleware.RequestIDHeader, rest.WarningHeader, "Content-Disposition"},
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}).Handler(handler)
}
