package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	handlers "github.com/clientlens/reportgen/pkg/handlers/report"
	reportgenmiddleware "github.com/clientlens/reportgen/pkg/server/middleware"
	reportsvc "github.com/clientlens/reportgen/pkg/services/report"
	"github.com/clientlens/reportgen/pkg/services/registry"
)

type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server
}

type Dependencies struct {
	Reports reportsvc.Service
	Catalog registry.Registry
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	reportHandler := handlers.NewHandler(config.Dependencies.Reports, config.Dependencies.Catalog)

	router := chi.NewRouter()

	router.Use(reportgenmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/reports", reportHandler.GenerateReport)
		r.Get("/metrics", reportHandler.ListMetrics)
	})

	shutdownTimeout := config.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:         config.Addr,
			Handler:      router,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 2 * shutdownTimeout,
		},
	}
}

// Router exposes the configured handler, mainly for tests
func (w *WebAPI) Router() http.Handler {
	return w.router
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
