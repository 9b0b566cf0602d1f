// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package student

import (
	"context"
	"errors"
	"fmt"
	"strings"
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

// NewRepository creates the PostgreSQL implementation of the student [Repository].
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const studentColumns = "id, application_no, name, program_id, community, payment_status, admission_status, counsellor_id, created_at, updated_at"

// List returns a filtered, paginated slice of applications plus the total count.
//
// A non-positive limit disables pagination (used by per-program listings
// and full report exports).
func (repository *PostgresRepository) List(ctx context.Context, filter Filter, limit, offset int) ([]*Student, int, error) {
	where, args := buildFilter(filter)

	countQuery := "SELECT COUNT(*) FROM student" + where
	var total int
	if err := repository.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("postgres_student_count_failed: %w", err)
	}

	listQuery := "SELECT " + studentColumns + " FROM student" + where + " ORDER BY created_at DESC"
	if limit > 0 {
		listQuery += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, limit, offset)
	}

	rows, err := repository.pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_student_list_failed: %w", err)
	}
	defer rows.Close()

	var students []*Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, 0, err
		}
		students = append(students, student)
	}

	return students, total, rows.Err()
}

// buildFilter assembles the WHERE clause and its positional arguments.
func buildFilter(filter Filter) (string, []any) {
	var conditions []string
	var args []any

	if filter.ProgramID != "" {
		args = append(args, filter.ProgramID)
		conditions = append(conditions, fmt.Sprintf("program_id = $%d", len(args)))
	}
	if filter.PaymentStatus != "" {
		args = append(args, filter.PaymentStatus)
		conditions = append(conditions, fmt.Sprintf("payment_status = $%d", len(args)))
	}
	if filter.AdmissionStatus != "" {
		args = append(args, filter.AdmissionStatus)
		conditions = append(conditions, fmt.Sprintf("admission_status = $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", nil
	}

	return " WHERE " + strings.Join(conditions, " AND "), args
}

// scanStudent hydrates one row into a [Student].
func scanStudent(row pgx.Row) (*Student, error) {
	student := &Student{}
	if err := row.Scan(
		&student.ID,
		&student.ApplicationNo,
		&student.Name,
		&student.ProgramID,
		&student.Community,
		&student.PaymentStatus,
		&student.AdmissionStatus,
		&student.CounsellorID,
		&student.CreatedAt,
		&student.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("postgres_student_scan_failed: %w", err)
	}
	return student, nil
}

// FindByID retrieves an application by its UUID.
func (repository *PostgresRepository) FindByID(ctx context.Context, id string) (*Student, error) {
	query := "SELECT " + studentColumns + " FROM student WHERE id = $1"

	student, err := scanStudent(repository.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Student")
		}
		return nil, err
	}

	return student, nil
}

// Create persists a new application record.
func (repository *PostgresRepository) Create(ctx context.Context, student *Student) error {
	const query = `
		INSERT INTO student (` + studentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	now := time.Now()
	student.CreatedAt = now
	student.UpdatedAt = now

	_, err := repository.pool.Exec(ctx, query,
		student.ID,
		student.ApplicationNo,
		student.Name,
		student.ProgramID,
		student.Community,
		student.PaymentStatus,
		student.AdmissionStatus,
		student.CounsellorID,
		student.CreatedAt,
		student.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return apperr.Conflict("Application number is already registered")
			case "23503":
				return apperr.ValidationError("Referenced program or counsellor does not exist")
			}
		}
		return fmt.Errorf("postgres_student_create_failed: %w", err)
	}

	return nil
}

// Update modifies an existing application record.
func (repository *PostgresRepository) Update(ctx context.Context, student *Student) error {
	const query = `
		UPDATE student
		SET name = $2, community = $3, payment_status = $4, admission_status = $5, counsellor_id = $6, updated_at = $7
		WHERE id = $1`

	student.UpdatedAt = time.Now()
	tag, err := repository.pool.Exec(ctx, query,
		student.ID,
		student.Name,
		student.Community,
		student.PaymentStatus,
		student.AdmissionStatus,
		student.CounsellorID,
		student.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_student_update_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Student")
	}

	return nil
}

// Delete removes an application record.
func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	const query = "DELETE FROM student WHERE id = $1"

	tag, err := repository.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("postgres_student_delete_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Student")
	}

	return nil
}
