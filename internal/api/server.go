// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/ignite/internal/identity"
	"github.com/taibuivan/ignite/internal/platform/config"
	"github.com/taibuivan/ignite/internal/platform/constants"
	"github.com/taibuivan/ignite/internal/platform/metrics"
	"github.com/taibuivan/ignite/internal/platform/middleware"
	"github.com/taibuivan/ignite/internal/portal/attendance"
	"github.com/taibuivan/ignite/internal/portal/counsellor"
	"github.com/taibuivan/ignite/internal/portal/marks"
	"github.com/taibuivan/ignite/internal/portal/program"
	"github.com/taibuivan/ignite/internal/portal/reports"
	"github.com/taibuivan/ignite/internal/portal/settings"
	"github.com/taibuivan/ignite/internal/portal/student"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all four backing
	// stores are healthy.
	Readiness http.HandlerFunc

	// Identity handles login, token refresh, and the account surface.
	Identity *identity.Handler

	// Program manages the programme catalogue.
	Program *program.Handler

	// Student manages admission applications.
	Student *student.Handler

	// Counsellor manages counsellor KYC records.
	Counsellor *counsellor.Handler

	// Attendance manages attendance records.
	Attendance *attendance.Handler

	// Marks manages assignment mark records.
	Marks *marks.Handler

	// Reports serves the management dashboards.
	Reports *reports.Handler

	// Settings manages the admission windows.
	Settings *settings.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
//
// Route authorization is tiered: /api/v1/auth is public, the portal domains
// require a valid token, and reports plus settings writes require an admin
// principal.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, registry *metrics.Registry, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(registry.Instrument)
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated probes for container orchestration and scraping.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)
	r.Method(http.MethodGet, "/metrics", registry.Handler())

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", h.Identity.Routes())

		api.Group(func(authed chi.Router) {
			authed.Use(middleware.RequireAuth())

			authed.Mount("/account", h.Identity.ProtectedRoutes())
			authed.Mount("/programs", h.Program.Routes())
			authed.Mount("/students", h.Student.Routes())
			authed.Mount("/counsellors", h.Counsellor.Routes())
			authed.Mount("/attendance", h.Attendance.Routes())
			authed.Mount("/marks", h.Marks.Routes())
			authed.Mount("/settings", h.Settings.Routes(middleware.RequireAdmin()))

			authed.Group(func(admin chi.Router) {
				admin.Use(middleware.RequireAdmin())
				admin.Mount("/reports", h.Reports.Routes())
			})
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
