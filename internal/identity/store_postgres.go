// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/ignite/internal/platform/apperr"
)

// PostgresUserStore implements [UserStore] against the portal's PostgreSQL
// database using pgx.
//
// # Error Mapping
//
// pgx.ErrNoRows maps to [ErrPrincipalNotFound]; every other failure maps to
// [apperr.Unavailable].
type PostgresUserStore struct {
	pool *pgxpool.Pool
}

// NewPostgresUserStore creates the PostgreSQL implementation of [UserStore].
func NewPostgresUserStore(pool *pgxpool.Pool) *PostgresUserStore {
	return &PostgresUserStore{pool: pool}
}

// FindByNumber retrieves a user record by its exact lsc_number.
//
// # Returns
//
// Returns [*UserAccount] if found, [ErrPrincipalNotFound] if absent, or
// [apperr.Unavailable] on infrastructure failure.
func (store *PostgresUserStore) FindByNumber(ctx context.Context, number string) (*UserAccount, error) {
	const query = `
		SELECT lsc_number, password, lsc_name, email, is_active, date_joined
		FROM lsc_user
		WHERE lsc_number = $1`

	account := &UserAccount{}
	err := store.pool.QueryRow(ctx, query, number).Scan(
		&account.Number,
		&account.PasswordHash,
		&account.Name,
		&account.Email,
		&account.IsActive,
		&account.DateJoined,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPrincipalNotFound
		}
		return nil, apperr.Unavailable("User store unreachable", fmt.Errorf("postgres_user_store_find_failed: %w", err))
	}

	return account, nil
}

// UpdatePassword replaces only the user's password hash.
func (store *PostgresUserStore) UpdatePassword(ctx context.Context, number, newHash string) error {
	const query = "UPDATE lsc_user SET password = $2 WHERE lsc_number = $1"

	tag, err := store.pool.Exec(ctx, query, number, newHash)
	if err != nil {
		return apperr.Unavailable("User store unreachable", fmt.Errorf("postgres_user_store_update_password_failed: %w", err))
	}

	if tag.RowsAffected() == 0 {
		return ErrPrincipalNotFound
	}

	return nil
}
