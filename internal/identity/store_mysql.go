// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package identity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/taibuivan/ignite/internal/platform/apperr"
)

// MySQLAdminStore implements [AdminStore] against the legacy online_edu
// database using database/sql.
//
// # Error Mapping
//
// sql.ErrNoRows maps to [ErrPrincipalNotFound]; every other failure maps to
// [apperr.Unavailable] so the caller can tell an unknown admin apart from an
// unreachable ERP database.
type MySQLAdminStore struct {
	db *sql.DB
}

// NewMySQLAdminStore creates the MySQL implementation of [AdminStore].
func NewMySQLAdminStore(db *sql.DB) *MySQLAdminStore {
	return &MySQLAdminStore{db: db}
}

// FindByCode retrieves an admin record by its exact lsc_code.
//
// # Returns
//
// Returns [*AdminAccount] if found, [ErrPrincipalNotFound] if absent, or
// [apperr.Unavailable] on infrastructure failure.
func (store *MySQLAdminStore) FindByCode(ctx context.Context, code string) (*AdminAccount, error) {
	// BINARY forces a byte-for-byte comparison: the legacy table uses a
	// case-insensitive collation, but lsc_code matching must be exact.
	const query = `
		SELECT lsc_code, password, lsc_name, email, is_active, is_admin, created_at, updated_at, last_login
		FROM lsc_admins
		WHERE BINARY lsc_code = ?`

	account := &AdminAccount{}
	err := store.db.QueryRowContext(ctx, query, code).Scan(
		&account.Code,
		&account.PasswordHash,
		&account.Name,
		&account.Email,
		&account.IsActive,
		&account.IsAdmin,
		&account.CreatedAt,
		&account.UpdatedAt,
		&account.LastLogin,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPrincipalNotFound
		}
		return nil, apperr.Unavailable("Admin store unreachable", fmt.Errorf("mysql_admin_store_find_failed: %w", err))
	}

	return account, nil
}

// TouchLastLogin stamps the admin's last_login column with the current time.
func (store *MySQLAdminStore) TouchLastLogin(ctx context.Context, code string) error {
	const query = "UPDATE lsc_admins SET last_login = ? WHERE BINARY lsc_code = ?"

	_, err := store.db.ExecContext(ctx, query, time.Now(), code)
	if err != nil {
		return fmt.Errorf("mysql_admin_store_touch_last_login_failed: %w", err)
	}

	return nil
}

// UpdatePassword replaces only the admin's password hash.
func (store *MySQLAdminStore) UpdatePassword(ctx context.Context, code, newHash string) error {
	const query = "UPDATE lsc_admins SET password = ?, updated_at = ? WHERE BINARY lsc_code = ?"

	result, err := store.db.ExecContext(ctx, query, newHash, time.Now(), code)
	if err != nil {
		return apperr.Unavailable("Admin store unreachable", fmt.Errorf("mysql_admin_store_update_password_failed: %w", err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("mysql_admin_store_update_password_rows_failed: %w", err)
	}
	if affected == 0 {
		return ErrPrincipalNotFound
	}

	return nil
}
