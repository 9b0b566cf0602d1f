// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package counsellor

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

// NewRepository creates the PostgreSQL implementation of the counsellor [Repository].
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const counsellorColumns = `id, counsellor_name, father_name, mother_name, date_of_birth, gender,
		aadhaar_card, qualification, highest_qualification, program_id, mobile_number,
		alternate_number, email_id, current_designation, working_experience,
		address_line1, address_line2, address_line3, pincode, district, state,
		created_at, updated_at`

// scanCounsellor hydrates one row into a [Counsellor].
func scanCounsellor(row pgx.Row) (*Counsellor, error) {
	counsellor := &Counsellor{}
	if err := row.Scan(
		&counsellor.ID,
		&counsellor.Name,
		&counsellor.FatherName,
		&counsellor.MotherName,
		&counsellor.DateOfBirth,
		&counsellor.Gender,
		&counsellor.AadhaarCard,
		&counsellor.Qualification,
		&counsellor.HighestQualification,
		&counsellor.ProgramID,
		&counsellor.MobileNumber,
		&counsellor.AlternateNumber,
		&counsellor.Email,
		&counsellor.CurrentDesignation,
		&counsellor.WorkingExperience,
		&counsellor.AddressLine1,
		&counsellor.AddressLine2,
		&counsellor.AddressLine3,
		&counsellor.Pincode,
		&counsellor.District,
		&counsellor.State,
		&counsellor.CreatedAt,
		&counsellor.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("postgres_counsellor_scan_failed: %w", err)
	}
	return counsellor, nil
}

// List returns a paginated slice of counsellors plus the total count.
func (repository *PostgresRepository) List(ctx context.Context, limit, offset int) ([]*Counsellor, int, error) {
	var total int
	if err := repository.pool.QueryRow(ctx, "SELECT COUNT(*) FROM counsellor").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("postgres_counsellor_count_failed: %w", err)
	}

	query := "SELECT " + counsellorColumns + " FROM counsellor ORDER BY counsellor_name"
	args := []any{}
	if limit > 0 {
		query += " LIMIT $1 OFFSET $2"
		args = append(args, limit, offset)
	}

	rows, err := repository.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_counsellor_list_failed: %w", err)
	}
	defer rows.Close()

	var counsellors []*Counsellor
	for rows.Next() {
		counsellor, err := scanCounsellor(rows)
		if err != nil {
			return nil, 0, err
		}
		counsellors = append(counsellors, counsellor)
	}

	return counsellors, total, rows.Err()
}

// FindByID retrieves a counsellor by its UUID.
func (repository *PostgresRepository) FindByID(ctx context.Context, id string) (*Counsellor, error) {
	query := "SELECT " + counsellorColumns + " FROM counsellor WHERE id = $1"

	counsellor, err := scanCounsellor(repository.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Counsellor")
		}
		return nil, err
	}

	return counsellor, nil
}

// Create persists a new counsellor record.
func (repository *PostgresRepository) Create(ctx context.Context, counsellor *Counsellor) error {
	const query = `
		INSERT INTO counsellor (` + counsellorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`

	now := time.Now()
	counsellor.CreatedAt = now
	counsellor.UpdatedAt = now

	_, err := repository.pool.Exec(ctx, query,
		counsellor.ID,
		counsellor.Name,
		counsellor.FatherName,
		counsellor.MotherName,
		counsellor.DateOfBirth,
		counsellor.Gender,
		counsellor.AadhaarCard,
		counsellor.Qualification,
		counsellor.HighestQualification,
		counsellor.ProgramID,
		counsellor.MobileNumber,
		counsellor.AlternateNumber,
		counsellor.Email,
		counsellor.CurrentDesignation,
		counsellor.WorkingExperience,
		counsellor.AddressLine1,
		counsellor.AddressLine2,
		counsellor.AddressLine3,
		counsellor.Pincode,
		counsellor.District,
		counsellor.State,
		counsellor.CreatedAt,
		counsellor.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperr.Conflict("Aadhaar number or email is already registered")
		}
		return fmt.Errorf("postgres_counsellor_create_failed: %w", err)
	}

	return nil
}

// Update modifies an existing counsellor record.
func (repository *PostgresRepository) Update(ctx context.Context, counsellor *Counsellor) error {
	const query = `
		UPDATE counsellor
		SET counsellor_name = $2, father_name = $3, mother_name = $4, date_of_birth = $5,
			gender = $6, qualification = $7, highest_qualification = $8, program_id = $9,
			mobile_number = $10, alternate_number = $11, email_id = $12,
			current_designation = $13, working_experience = $14,
			address_line1 = $15, address_line2 = $16, address_line3 = $17,
			pincode = $18, district = $19, state = $20, updated_at = $21
		WHERE id = $1`

	counsellor.UpdatedAt = time.Now()
	tag, err := repository.pool.Exec(ctx, query,
		counsellor.ID,
		counsellor.Name,
		counsellor.FatherName,
		counsellor.MotherName,
		counsellor.DateOfBirth,
		counsellor.Gender,
		counsellor.Qualification,
		counsellor.HighestQualification,
		counsellor.ProgramID,
		counsellor.MobileNumber,
		counsellor.AlternateNumber,
		counsellor.Email,
		counsellor.CurrentDesignation,
		counsellor.WorkingExperience,
		counsellor.AddressLine1,
		counsellor.AddressLine2,
		counsellor.AddressLine3,
		counsellor.Pincode,
		counsellor.District,
		counsellor.State,
		counsellor.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_counsellor_update_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Counsellor")
	}

	return nil
}

// Delete removes a counsellor record.
func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	const query = "DELETE FROM counsellor WHERE id = $1"

	tag, err := repository.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("postgres_counsellor_delete_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Counsellor")
	}

	return nil
}
