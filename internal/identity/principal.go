// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package identity implements the portal's split identity model.
//
// # Architecture
//
// The portal authenticates two unrelated populations that live in two
// unrelated databases: LSC admins in the legacy ERP MySQL database
// (online_edu.lsc_admins) and LSC centre users in the portal's own
// PostgreSQL database. Neither population knows about the other, their
// schemas differ, and their natural keys differ (lsc_code vs lsc_number).
//
// This package defines the two source-shaped account records, the
// normalized [Principal] that the rest of the system consumes, and the
// ordered-trial [Authenticator] that resolves a submitted identifier
// against both stores.
package identity

import (
	"time"

	"github.com/taibuivan/ignite/internal/platform/dbrouter"
)

// Kind distinguishes the two principal populations.
//
// # Usage
//
// The kind travels inside issued JWTs and is the ONLY claim consumers may
// branch on to pick the natural-key field; presence of "code" or "number"
// is an encoding detail, not a contract.
type Kind string

const (
	KindAdmin Kind = "admin" // Legacy LSC admin from online_edu.lsc_admins.
	KindUser  Kind = "user"  // LSC centre user from the portal database.
)

// AdminAccount mirrors one row of the legacy lsc_admins table.
//
// # Rules
//   - Code (lsc_code) is the unique natural key, e.g. "LC2101-CDOE".
//   - PasswordHash is a bcrypt hash; plain text never leaves the wire handler.
//   - IsActive gates login; an inactive admin fails exactly like a wrong password.
//   - IsAdmin marks elevated ERP privileges carried over from the legacy system.
type AdminAccount struct {
	Code         string     `json:"lsc_code"`
	PasswordHash string     `json:"-"` // Explicitly omitted from JSON for security.
	Name         string     `json:"lsc_name"`
	Email        string     `json:"email"`
	IsActive     bool       `json:"is_active"`
	IsAdmin      bool       `json:"is_admin"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

// UserAccount mirrors one row of the portal's lsc_user table.
//
// # Rules
//   - Number (lsc_number) is the unique natural key, e.g. "LC3001".
//   - PasswordHash is a bcrypt hash.
//   - IsActive gates login identically to the admin population.
type UserAccount struct {
	Number       string    `json:"lsc_number"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	Name         string    `json:"lsc_name"`
	Email        string    `json:"email"`
	IsActive     bool      `json:"is_active"`
	DateJoined   time.Time `json:"date_joined"`
}

// Principal is the normalized identity handed to the token issuer and
// every downstream consumer once authentication succeeds.
//
// It deliberately drops the password hash: past this point the system
// reasons about WHO the caller is, never about their secret.
type Principal struct {
	Kind        Kind                `json:"kind"`
	NaturalKey  string              `json:"natural_key"`
	DisplayName string              `json:"lsc_name"`
	Email       string              `json:"email"`
	Active      bool                `json:"active"`
	Privileged  bool                `json:"privileged"`
	SourceDB    dbrouter.DatabaseID `json:"source_db"`
}

// principalFromAdmin normalizes an admin row into a [Principal].
func principalFromAdmin(account *AdminAccount) *Principal {
	return &Principal{
		Kind:        KindAdmin,
		NaturalKey:  account.Code,
		DisplayName: account.Name,
		Email:       account.Email,
		Active:      account.IsActive,
		Privileged:  account.IsAdmin,
		SourceDB:    dbrouter.DatabaseAdmin,
	}
}

// principalFromUser normalizes a user row into a [Principal].
func principalFromUser(account *UserAccount) *Principal {
	return &Principal{
		Kind:        KindUser,
		NaturalKey:  account.Number,
		DisplayName: account.Name,
		Email:       account.Email,
		Active:      account.IsActive,
		Privileged:  false,
		SourceDB:    dbrouter.DatabaseUser,
	}
}
