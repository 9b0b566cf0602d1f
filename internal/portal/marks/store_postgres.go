// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package marks

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

// NewRepository creates the PostgreSQL implementation of the marks [Repository].
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const markColumns = "id, reg_no, student_id, program_id, p_code, internal_marks, status, submitted_at"

// scanMark hydrates one row into an [AssignmentMark].
func scanMark(row pgx.Row) (*AssignmentMark, error) {
	mark := &AssignmentMark{}
	if err := row.Scan(
		&mark.ID,
		&mark.RegNo,
		&mark.StudentID,
		&mark.ProgramID,
		&mark.PaperCode,
		&mark.InternalMarks,
		&mark.Status,
		&mark.SubmittedAt,
	); err != nil {
		return nil, fmt.Errorf("postgres_marks_scan_failed: %w", err)
	}
	return mark, nil
}

// List returns a paginated slice of marks plus the total count.
func (repository *PostgresRepository) List(ctx context.Context, programID string, limit, offset int) ([]*AssignmentMark, int, error) {
	where := ""
	args := []any{}
	if programID != "" {
		where = " WHERE program_id = $1"
		args = append(args, programID)
	}

	var total int
	if err := repository.pool.QueryRow(ctx, "SELECT COUNT(*) FROM assignment_mark"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("postgres_marks_count_failed: %w", err)
	}

	query := "SELECT " + markColumns + " FROM assignment_mark" + where + " ORDER BY submitted_at DESC"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, limit, offset)
	}

	rows, err := repository.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_marks_list_failed: %w", err)
	}
	defer rows.Close()

	var result []*AssignmentMark
	for rows.Next() {
		mark, err := scanMark(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, mark)
	}

	return result, total, rows.Err()
}

// FindByID retrieves a mark record by its UUID.
func (repository *PostgresRepository) FindByID(ctx context.Context, id string) (*AssignmentMark, error) {
	query := "SELECT " + markColumns + " FROM assignment_mark WHERE id = $1"

	mark, err := scanMark(repository.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Assignment mark")
		}
		return nil, err
	}

	return mark, nil
}

// Create persists a new mark record.
func (repository *PostgresRepository) Create(ctx context.Context, mark *AssignmentMark) error {
	const query = `
		INSERT INTO assignment_mark (` + markColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	mark.SubmittedAt = time.Now()

	_, err := repository.pool.Exec(ctx, query,
		mark.ID,
		mark.RegNo,
		mark.StudentID,
		mark.ProgramID,
		mark.PaperCode,
		mark.InternalMarks,
		mark.Status,
		mark.SubmittedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return apperr.Conflict("Registration number is already recorded")
			case "23503":
				return apperr.ValidationError("Referenced student or program does not exist")
			}
		}
		return fmt.Errorf("postgres_marks_create_failed: %w", err)
	}

	return nil
}

// Update modifies an existing mark record.
func (repository *PostgresRepository) Update(ctx context.Context, mark *AssignmentMark) error {
	const query = `
		UPDATE assignment_mark
		SET internal_marks = $2, status = $3
		WHERE id = $1`

	tag, err := repository.pool.Exec(ctx, query, mark.ID, mark.InternalMarks, mark.Status)
	if err != nil {
		return fmt.Errorf("postgres_marks_update_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Assignment mark")
	}

	return nil
}

// Delete removes a mark record.
func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	const query = "DELETE FROM assignment_mark WHERE id = $1"

	tag, err := repository.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("postgres_marks_delete_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Assignment mark")
	}

	return nil
}
