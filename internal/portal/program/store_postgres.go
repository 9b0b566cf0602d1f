// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package program

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/ignite/internal/platform/apperr"
)

// PostgresRepository implements [Repository] against the portal database.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates the PostgreSQL implementation of the program [Repository].
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// List returns every program ordered by code.
func (repository *PostgresRepository) List(ctx context.Context) ([]*Program, error) {
	const query = `
		SELECT id, code, name, description, created_at, updated_at
		FROM program
		ORDER BY code`

	rows, err := repository.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres_program_list_failed: %w", err)
	}
	defer rows.Close()

	var programs []*Program
	for rows.Next() {
		program := &Program{}
		if err := rows.Scan(
			&program.ID,
			&program.Code,
			&program.Name,
			&program.Description,
			&program.CreatedAt,
			&program.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("postgres_program_scan_failed: %w", err)
		}
		programs = append(programs, program)
	}

	return programs, rows.Err()
}

// FindByID retrieves a program by its UUID.
func (repository *PostgresRepository) FindByID(ctx context.Context, id string) (*Program, error) {
	const query = `
		SELECT id, code, name, description, created_at, updated_at
		FROM program
		WHERE id = $1`

	program := &Program{}
	err := repository.pool.QueryRow(ctx, query, id).Scan(
		&program.ID,
		&program.Code,
		&program.Name,
		&program.Description,
		&program.CreatedAt,
		&program.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Program")
		}
		return nil, fmt.Errorf("postgres_program_find_failed: %w", err)
	}

	return program, nil
}

// Create persists a new program record.
func (repository *PostgresRepository) Create(ctx context.Context, program *Program) error {
	const query = `
		INSERT INTO program (id, code, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	now := time.Now()
	program.CreatedAt = now
	program.UpdatedAt = now

	_, err := repository.pool.Exec(ctx, query,
		program.ID,
		program.Code,
		program.Name,
		program.Description,
		program.CreatedAt,
		program.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return apperr.Conflict("Program code is already registered")
		}
		return fmt.Errorf("postgres_program_create_failed: %w", err)
	}

	return nil
}

// Update modifies an existing program record.
func (repository *PostgresRepository) Update(ctx context.Context, program *Program) error {
	const query = `
		UPDATE program
		SET name = $2, description = $3, updated_at = $4
		WHERE id = $1`

	program.UpdatedAt = time.Now()
	tag, err := repository.pool.Exec(ctx, query,
		program.ID,
		program.Name,
		program.Description,
		program.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_program_update_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Program")
	}

	return nil
}

// Delete removes a program record.
func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	const query = "DELETE FROM program WHERE id = $1"

	tag, err := repository.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("postgres_program_delete_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Program")
	}

	return nil
}

// isUniqueViolation reports whether err is a PostgreSQL 23505 unique violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
