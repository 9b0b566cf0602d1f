// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package mysql provides a managed MySQL connection for the legacy admin
database (online_edu).

The admin principal table predates this service and lives in an operations
MySQL instance that other systems still write to. This service connects to
it read-mostly through database/sql; schema migrations are never applied
here (the routing table refuses them), so there is no migrate driver.
*/
package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	// go-sql-driver registers the "mysql" scheme for database/sql.
	_ "github.com/go-sql-driver/mysql"
)

// Opinionated pool settings for the legacy admin database.
const (
	maxOpenConns    = 15
	maxIdleConns    = 5
	connMaxLifetime = 30 * time.Minute
	connMaxIdleTime = 10 * time.Minute
	pingTimeout     = 2 * time.Second
)

// Open creates and validates a connection to the legacy MySQL database.
//
// # Parameters
//   - ctx: Context for the initial ping.
//   - dsn: A go-sql-driver DSN (user:pass@tcp(host:port)/online_edu?parseTime=true).
//   - logger: Structured logger for connection events.
func Open(ctx context.Context, dsn string, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("mysql: invalid DSN: %w", err)
	}

	// Pool configuration tuning
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)
	db.SetConnMaxIdleTime(connMaxIdleTime)

	// Validate connectivity immediately at startup.
	if err := Ping(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info("mysql connected",
		slog.String("database", "online_edu"),
		slog.Int("max_open_conns", maxOpenConns),
	)

	return db, nil
}

// Ping verifies that the MySQL connection is healthy.
func Ping(ctx context.Context, db *sql.DB) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("mysql: ping failed: %w", err)
	}

	return nil
}
