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

	"github.com/ryobiguy/timesheet/internal/api/handlers/http/admin"
	"github.com/ryobiguy/timesheet/internal/api/handlers/http/device"
	"github.com/ryobiguy/timesheet/internal/api/handlers/http/system"
	"github.com/ryobiguy/timesheet/internal/config"
	"github.com/ryobiguy/timesheet/internal/middleware"
	"github.com/ryobiguy/timesheet/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service) *Server {
	adminHandler := admin.NewHandler(logger, svc.Jobsites, svc.Assignments, svc.Ingestion, svc.Entries, svc.Disputes, svc.Summaries)
	deviceHandler := device.NewHandler(logger, svc.Ingestion)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(cfg, adminHandler, deviceHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(cfg *config.Config, adminHandler *admin.Handler, deviceHandler *device.Handler, systemHandler *system.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		// ADMIN
		api.Route("/admin", func(ar chi.Router) {
			ar.Use(middleware.APIKey(cfg.APIKey, logger))
			ar.Use(middleware.Limit(5, 10, 10*time.Minute, logger))

			ar.Route("/jobsites", func(jr chi.Router) {
				jr.Post("/", adminHandler.AdminJobsiteCreate)
				jr.Get("/", adminHandler.AdminJobsiteList)
				jr.Get("/{id}", adminHandler.AdminJobsiteGet)
			})

			ar.Route("/assignments", func(sr chi.Router) {
				sr.Post("/", adminHandler.AdminAssignmentCreate)
				sr.Get("/", adminHandler.AdminAssignmentList)
			})

			ar.Get("/events", adminHandler.AdminEventList)

			ar.Route("/entries", func(er chi.Router) {
				er.Get("/", adminHandler.AdminEntryList)

				er.Route("/{id}", func(rr chi.Router) {
					rr.Get("/", adminHandler.AdminEntryGet)
					rr.Put("/", adminHandler.AdminEntryUpdate)
					rr.Delete("/", adminHandler.AdminEntryDelete)
					rr.Post("/approve", adminHandler.AdminEntryApprove)
				})
			})

			ar.Route("/disputes", func(dr chi.Router) {
				dr.Post("/", adminHandler.AdminDisputeCreate)
				dr.Get("/", adminHandler.AdminDisputeList)

				dr.Route("/{id}", func(rr chi.Router) {
					rr.Get("/", adminHandler.AdminDisputeGet)
					rr.Put("/resolve", adminHandler.AdminDisputeResolve)
				})
			})

			ar.Route("/summaries", func(mr chi.Router) {
				mr.Post("/calculate", adminHandler.AdminSummaryCalculate)
				mr.Get("/", adminHandler.AdminSummaryList)
				mr.Post("/{id}/approve", adminHandler.AdminSummaryApprove)
			})
		})

		// DEVICE
		api.Route("/events", func(dr chi.Router) {
			dr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))
			dr.Post("/", deviceHandler.DeviceEventReport)
		})
		api.Route("/geofence", func(gr chi.Router) {
			gr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))
			gr.Post("/check", deviceHandler.DeviceGeofenceCheck)
		})

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
	})

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
		s.logger.Info("Starting HTTP server",
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
		s.logger.Info("Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

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
