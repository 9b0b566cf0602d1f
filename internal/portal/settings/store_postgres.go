// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/ignite/internal/platform/apperr"
)

// PostgresRepository implements [Repository] against the portal database.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates the PostgreSQL implementation of the settings [Repository].
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const settingsColumns = "id, application_type, is_open, opening_date, closing_date, max_applications, description, instructions, updated_at"

// scanSettings hydrates one row into an [ApplicationSettings].
func scanSettings(row pgx.Row) (*ApplicationSettings, error) {
	settings := &ApplicationSettings{}
	if err := row.Scan(
		&settings.ID,
		&settings.ApplicationType,
		&settings.IsOpen,
		&settings.OpeningDate,
		&settings.ClosingDate,
		&settings.MaxApplications,
		&settings.Description,
		&settings.Instructions,
		&settings.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("postgres_settings_scan_failed: %w", err)
	}
	return settings, nil
}

// List returns the settings rows for every application type.
func (repository *PostgresRepository) List(ctx context.Context) ([]*ApplicationSettings, error) {
	query := "SELECT " + settingsColumns + " FROM application_settings ORDER BY application_type"

	rows, err := repository.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres_settings_list_failed: %w", err)
	}
	defer rows.Close()

	var result []*ApplicationSettings
	for rows.Next() {
		settings, err := scanSettings(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, settings)
	}

	return result, rows.Err()
}

// FindByType retrieves the settings row for one application type.
func (repository *PostgresRepository) FindByType(ctx context.Context, applicationType ApplicationType) (*ApplicationSettings, error) {
	query := "SELECT " + settingsColumns + " FROM application_settings WHERE application_type = $1"

	settings, err := scanSettings(repository.pool.QueryRow(ctx, query, applicationType))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Application settings")
		}
		return nil, err
	}

	return settings, nil
}

// Update modifies the settings row for one application type.
func (repository *PostgresRepository) Update(ctx context.Context, settings *ApplicationSettings) error {
	const query = `
		UPDATE application_settings
		SET is_open = $2,
		    opening_date = $3,
		    closing_date = $4,
		    max_applications = $5,
		    description = $6,
		    instructions = $7,
		    updated_at = $8
		WHERE application_type = $1`

	settings.UpdatedAt = time.Now()

	tag, err := repository.pool.Exec(ctx, query,
		settings.ApplicationType,
		settings.IsOpen,
		settings.OpeningDate,
		settings.ClosingDate,
		settings.MaxApplications,
		settings.Description,
		settings.Instructions,
		settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres_settings_update_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Application settings")
	}

	return nil
}
