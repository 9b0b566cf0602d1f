// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package identity

import (
	"context"

	"github.com/taibuivan/ignite/internal/platform/apperr"
)

// ErrPrincipalNotFound is the sentinel every store returns when the natural
// key matches no row.
//
// # Contract
//
// Stores must distinguish "no such row" from "could not ask": a missing row
// returns this sentinel, while a connectivity or query failure returns an
// [apperr.Unavailable] error. The [Authenticator] falls through to the next
// store only on the sentinel — an outage must never be mistaken for an
// unknown identifier.
var ErrPrincipalNotFound = apperr.NotFound("Principal")

// AdminStore defines the data access contract for the legacy admin population.
//
// # Review Process
//
// This interface is placed in a separate file from principal.go so entity
// changes and storage-contract changes can be reviewed independently.
//
// # Implementations
//
// The canonical implementation reads online_edu.lsc_admins over MySQL
// (see store_mysql.go). The routing table pins this kind to that database;
// no other implementation may exist for another database.
type AdminStore interface {
	// FindByCode returns the admin with the given lsc_code.
	//
	// Matching is exact: case-sensitive, untrimmed, byte-for-byte against
	// the stored value. Returns [ErrPrincipalNotFound] if absent.
	FindByCode(ctx context.Context, code string) (*AdminAccount, error)

	// TouchLastLogin stamps the admin's last_login column with the current time.
	// Called after every successful admin authentication.
	TouchLastLogin(ctx context.Context, code string) error

	// UpdatePassword replaces only the admin's password hash.
	UpdatePassword(ctx context.Context, code, newHash string) error
}

// UserStore defines the data access contract for the centre-user population.
//
// # Implementations
//
// The canonical implementation reads the lsc_user table in the portal's
// PostgreSQL database (see store_postgres.go).
type UserStore interface {
	// FindByNumber returns the user with the given lsc_number.
	//
	// Matching is exact: case-sensitive, untrimmed, byte-for-byte against
	// the stored value. Returns [ErrPrincipalNotFound] if absent.
	FindByNumber(ctx context.Context, number string) (*UserAccount, error)

	// UpdatePassword replaces only the user's password hash.
	UpdatePassword(ctx context.Context, number, newHash string) error
}
