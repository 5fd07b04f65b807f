package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"swiftaid/internal/api/handlers/http/dashboard"
	"swiftaid/internal/api/handlers/http/system"
	"swiftaid/internal/config"
	"swiftaid/internal/console"
	"swiftaid/internal/middleware"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *console.Service) *Server {
	dashHandler := dashboard.NewHandler(logger, svc.Fleet, svc.Cases, svc.Profile, svc.Resolved)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(cfg, dashHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(cfg *config.Config, dashHandler *dashboard.Handler, systemHandler *system.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/console/v1", func(cr chi.Router) {
		cr.Use(middleware.ConsoleSession(cfg.Session.CookieName))

		cr.Get("/sections/{id}", dashHandler.Section)
		cr.Get("/ambulances", dashHandler.AmbulanceList)
		cr.Get("/resolved", dashHandler.ResolvedList)
		cr.Get("/resolved/{id}/document", dashHandler.ResolvedDocument)
		cr.Post("/map/markers", dashHandler.MapMarkers)

		// one gesture, one request: mutating routes are rate limited
		cr.Group(func(mr chi.Router) {
			mr.Use(middleware.Limit(5, 10, 10*time.Minute, logger))

			mr.Post("/profile", dashHandler.ProfileSave)
			mr.Post("/ambulances", dashHandler.AmbulanceAdd)
			mr.Post("/ambulances/{id}/status", dashHandler.AmbulanceToggle)

			mr.Route("/cases/{id}", func(ir chi.Router) {
				ir.Post("/decision", dashHandler.CaseDecide)
				ir.Post("/assign", dashHandler.CaseAssign)
				ir.Post("/assign/close", dashHandler.CaseAssignClose)
				ir.Delete("/", dashHandler.CaseDelete)
				ir.Delete("/decision", dashHandler.CaseDecisionDelete)
			})

			mr.Delete("/resolved/{id}", dashHandler.ResolvedDelete)
		})
	})

	r.Get("/health", systemHandler.SystemHealth)

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("🚀 Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("🛑 Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
