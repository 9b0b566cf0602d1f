// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. A local .env file is
loaded first (via godotenv) so development machines do not need to export
variables manually.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB pools, Redis) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// # Configuration Schema

// Config holds all runtime configuration for the Ignite API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Legacy admin database (MySQL). Owns the lsc_admins table; schema is
	// provisioned by external ERP tooling, never migrated from here.
	AdminDatabaseDSN string `env:"ADMIN_DATABASE_DSN,required"`

	// User database (PostgreSQL). Owns the LSC user accounts and the
	// framework bookkeeping tables.
	UserDatabaseURL string `env:"USER_DATABASE_URL,required"`

	// Portal database (PostgreSQL). Owns programs, students, counsellors
	// and every other admissions record.
	PortalDatabaseURL string `env:"PORTAL_DATABASE_URL,required"`

	// UserMigrationPath is the filesystem path to the user database migrations.
	UserMigrationPath string `env:"USER_MIGRATION_PATH" envDefault:"./migrations/user"`

	// PortalMigrationPath is the filesystem path to the portal database migrations.
	PortalMigrationPath string `env:"PORTAL_MIGRATION_PATH" envDefault:"./migrations/portal"`

	// Key-Value Cache (Redis)
	RedisURL string `env:"REDIS_URL,required"`

	// Cryptographic keys for session token signing
	JWTPrivKeyPath string `env:"JWT_PRIVATE_KEY_PATH,required"`
	JWTPubKeyPath  string `env:"JWT_PUBLIC_KEY_PATH,required"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Best-effort .env autoload. Missing files are fine; real deployments
	// inject environment variables directly.
	_ = godotenv.Load()

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
