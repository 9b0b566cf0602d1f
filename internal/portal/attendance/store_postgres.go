// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package attendance

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

// NewRepository creates the PostgreSQL implementation of the attendance [Repository].
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const attendanceColumns = "id, student_id, attendance_percentage, status, recorded_at"

// scanAttendance hydrates one row into an [Attendance].
func scanAttendance(row pgx.Row) (*Attendance, error) {
	record := &Attendance{}
	if err := row.Scan(
		&record.ID,
		&record.StudentID,
		&record.Percentage,
		&record.Status,
		&record.RecordedAt,
	); err != nil {
		return nil, fmt.Errorf("postgres_attendance_scan_failed: %w", err)
	}
	return record, nil
}

// List returns a paginated slice of attendance records plus the total count.
func (repository *PostgresRepository) List(ctx context.Context, studentID string, limit, offset int) ([]*Attendance, int, error) {
	where := ""
	args := []any{}
	if studentID != "" {
		where = " WHERE student_id = $1"
		args = append(args, studentID)
	}

	var total int
	if err := repository.pool.QueryRow(ctx, "SELECT COUNT(*) FROM attendance"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("postgres_attendance_count_failed: %w", err)
	}

	query := "SELECT " + attendanceColumns + " FROM attendance" + where + " ORDER BY recorded_at DESC"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, limit, offset)
	}

	rows, err := repository.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_attendance_list_failed: %w", err)
	}
	defer rows.Close()

	var records []*Attendance
	for rows.Next() {
		record, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, record)
	}

	return records, total, rows.Err()
}

// FindByID retrieves an attendance record by its UUID.
func (repository *PostgresRepository) FindByID(ctx context.Context, id string) (*Attendance, error) {
	query := "SELECT " + attendanceColumns + " FROM attendance WHERE id = $1"

	record, err := scanAttendance(repository.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Attendance record")
		}
		return nil, err
	}

	return record, nil
}

// Create persists a new attendance record.
func (repository *PostgresRepository) Create(ctx context.Context, record *Attendance) error {
	const query = `
		INSERT INTO attendance (` + attendanceColumns + `)
		VALUES ($1, $2, $3, $4, $5)`

	record.RecordedAt = time.Now()

	_, err := repository.pool.Exec(ctx, query,
		record.ID,
		record.StudentID,
		record.Percentage,
		record.Status,
		record.RecordedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperr.ValidationError("Referenced student does not exist")
		}
		return fmt.Errorf("postgres_attendance_create_failed: %w", err)
	}

	return nil
}

// Update modifies an existing attendance record.
func (repository *PostgresRepository) Update(ctx context.Context, record *Attendance) error {
	const query = `
		UPDATE attendance
		SET attendance_percentage = $2, status = $3
		WHERE id = $1`

	tag, err := repository.pool.Exec(ctx, query, record.ID, record.Percentage, record.Status)
	if err != nil {
		return fmt.Errorf("postgres_attendance_update_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Attendance record")
	}

	return nil
}

// Delete removes an attendance record.
func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	const query = "DELETE FROM attendance WHERE id = $1"

	tag, err := repository.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("postgres_attendance_delete_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Attendance record")
	}

	return nil
}
