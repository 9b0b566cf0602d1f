// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Ignite admissions API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to the legacy admin database (MySQL).
//  4. Connect to the user and portal databases (pgxpool).
//  5. Connect to Redis.
//  6. Run migrations for the two PostgreSQL databases (idempotent). The
//     admin database is provisioned externally and is never migrated.
//  7. Wire HTTP handlers.
//  8. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taibuivan/ignite/internal/api"
	"github.com/taibuivan/ignite/internal/identity"
	"github.com/taibuivan/ignite/internal/platform/config"
	"github.com/taibuivan/ignite/internal/platform/constants"
	"github.com/taibuivan/ignite/internal/platform/dbrouter"
	"github.com/taibuivan/ignite/internal/platform/metrics"
	"github.com/taibuivan/ignite/internal/platform/migration"
	mysqlstore "github.com/taibuivan/ignite/internal/platform/mysql"
	pgstore "github.com/taibuivan/ignite/internal/platform/postgres"
	redisstore "github.com/taibuivan/ignite/internal/platform/redis"
	"github.com/taibuivan/ignite/internal/platform/sec"
	"github.com/taibuivan/ignite/internal/portal/attendance"
	"github.com/taibuivan/ignite/internal/portal/counsellor"
	"github.com/taibuivan/ignite/internal/portal/marks"
	"github.com/taibuivan/ignite/internal/portal/program"
	"github.com/taibuivan/ignite/internal/portal/reports"
	"github.com/taibuivan/ignite/internal/portal/settings"
	"github.com/taibuivan/ignite/internal/portal/student"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("[Ignite] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// Application context. It outlives startup and stops the middleware
	// housekeeping goroutines on shutdown.
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	// ── 3. Legacy Admin Database (MySQL) ──────────────────────────────────
	adminDB, err := mysqlstore.Open(startupCtx, cfg.AdminDatabaseDSN, log)
	must(log, err, "connect to admin database")
	defer func() {
		log.Info("closing admin database")
		if cerr := adminDB.Close(); cerr != nil {
			log.Error("admin database close error", slog.Any("error", cerr))
		}
	}()

	// ── 4. User & Portal Databases (PostgreSQL) ───────────────────────────
	userPool, err := pgstore.NewPool(startupCtx, cfg.UserDatabaseURL, string(dbrouter.DatabaseUser), log)
	must(log, err, "connect to user database")
	defer func() {
		log.Info("closing user database pool")
		userPool.Close()
	}()

	portalPool, err := pgstore.NewPool(startupCtx, cfg.PortalDatabaseURL, string(dbrouter.DatabasePortal), log)
	must(log, err, "connect to portal database")
	defer func() {
		log.Info("closing portal database pool")
		portalPool.Close()
	}()

	// ── 5. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 6. Routing Table & Migrations ─────────────────────────────────────
	// The admin database is deliberately absent here: its schema belongs to
	// the ERP and the routing table refuses to migrate it.
	router := dbrouter.Default()

	must(log, migration.RunUp(router, dbrouter.KindUserPrincipal, dbrouter.DatabaseUser,
		cfg.UserDatabaseURL, cfg.UserMigrationPath, log), "run user migrations")
	must(log, migration.RunUp(router, dbrouter.KindPortalRecord, dbrouter.DatabasePortal,
		cfg.PortalDatabaseURL, cfg.PortalMigrationPath, log), "run portal migrations")

	// ── 7. Token Service & Metrics ────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	registry := metrics.NewRegistry()

	// ── 8. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckAdminDatabase: func() error {
			return mysqlstore.Ping(context.Background(), adminDB)
		},
		CheckUserDatabase: func() error {
			return pgstore.Ping(context.Background(), userPool)
		},
		CheckPortalDatabase: func() error {
			return pgstore.Ping(context.Background(), portalPool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 9. Identity Wiring ────────────────────────────────────────────────
	adminStore := identity.NewMySQLAdminStore(adminDB)
	userStore := identity.NewPostgresUserStore(userPool)
	authenticator := identity.NewAuthenticator(adminStore, userStore, registry, log)
	issuer := identity.NewTokenIssuer(jwtSvc)
	identityHandler := identity.NewHandler(authenticator, issuer, jwtSvc)

	// ── 10. Portal Wiring ─────────────────────────────────────────────────
	programService := program.NewService(program.NewRepository(portalPool), log)
	studentRepository := student.NewRepository(portalPool)
	studentService := student.NewService(studentRepository, log)
	counsellorService := counsellor.NewService(counsellor.NewRepository(portalPool), log)
	attendanceService := attendance.NewService(attendance.NewRepository(portalPool), log)
	marksService := marks.NewService(marks.NewRepository(portalPool), log)
	reportsService := reports.NewService(reports.NewRepository(portalPool), studentRepository)
	settingsService := settings.NewService(settings.NewRepository(portalPool), settings.NewCache(rdb), log)

	// ── 11. HTTP Server ───────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Identity:   identityHandler,
		Program:    program.NewHandler(programService),
		Student:    student.NewHandler(studentService),
		Counsellor: counsellor.NewHandler(counsellorService),
		Attendance: attendance.NewHandler(attendanceService),
		Marks:      marks.NewHandler(marksService),
		Reports:    reports.NewHandler(reportsService),
		Settings:   settings.NewHandler(settingsService),
	}

	server := api.NewServer(appCtx, cfg, log, registry, jwtSvc, handlers)

	// ── 12. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
