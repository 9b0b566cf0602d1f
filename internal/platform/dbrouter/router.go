// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package dbrouter implements the static entity-to-database routing policy.

Every stored record class (EntityKind) is pinned to exactly one physical
database for reads, writes, and schema migrations alike. The table is built
once at process start and validated immediately; after that it is immutable
and safe for unsynchronized concurrent reads.

Architecture:

  - Router: an in-memory EntityKind → DatabaseID map, pure lookups only.
  - Validation: duplicate or missing bindings fail construction — a
    misrouted kind is a startup defect, never a per-request condition.
  - Fallback: unknown kinds yield "no opinion"; callers choose the default
    database explicitly via [Router.ResolveOrDefault].

The explicit fallback exists because silently defaulting is exactly how the
same logical table ends up created in two databases.
*/
package dbrouter

import "fmt"

// # Identifiers

// EntityKind tags a class of stored record. Kinds are defined at
// configuration time and never at request time.
type EntityKind string

const (
	// KindAdminPrincipal is the legacy LSC admin account (lsc_admins table).
	KindAdminPrincipal EntityKind = "AdminPrincipal"

	// KindUserPrincipal is the LSC centre user account.
	KindUserPrincipal EntityKind = "UserPrincipal"

	// KindPortalRecord covers all admissions records (programs, students,
	// counsellors, attendance, marks, settings).
	KindPortalRecord EntityKind = "PortalRecord"

	// KindCoreFrameworkRecord covers framework bookkeeping tables
	// (migration versions and similar infrastructure state).
	KindCoreFrameworkRecord EntityKind = "CoreFrameworkRecord"
)

// DatabaseID names one physical database from the fixed deployment set.
type DatabaseID string

const (
	// DatabaseAdmin is the legacy ERP MySQL database holding lsc_admins.
	DatabaseAdmin DatabaseID = "online_edu"

	// DatabaseUser is the PostgreSQL database holding LSC user accounts.
	DatabaseUser DatabaseID = "lsc_portal"

	// DatabasePortal is the PostgreSQL database holding admissions records.
	DatabasePortal DatabaseID = "lsc_admindb"
)

// Operation is the class of database access being routed.
type Operation string

const (
	OpRead    Operation = "read"
	OpWrite   Operation = "write"
	OpMigrate Operation = "migrate"
)

// # Router

// Router resolves entity kinds to their bound database.
//
// # Concurrency
//
// The binding table is immutable after [New] returns; all methods are safe
// to call concurrently without synchronization.
type Router struct {
	bindings map[EntityKind]DatabaseID
}

// New builds a Router from the given bindings and validates them.
//
// Validation enforces the core invariant: every kind maps to exactly one
// database. A kind bound twice or bound to an empty database identifier is
// a configuration defect and fails construction — callers are expected to
// treat that error as fatal at startup.
func New(bindings map[EntityKind]DatabaseID) (*Router, error) {
	if len(bindings) == 0 {
		return nil, fmt.Errorf("dbrouter: no entity bindings configured")
	}

	table := make(map[EntityKind]DatabaseID, len(bindings))
	for kind, database := range bindings {
		if kind == "" {
			return nil, fmt.Errorf("dbrouter: empty entity kind in bindings")
		}
		if database == "" {
			return nil, fmt.Errorf("dbrouter: entity kind %q is bound to no database", kind)
		}
		if existing, duplicated := table[kind]; duplicated {
			return nil, fmt.Errorf("dbrouter: entity kind %q bound to both %q and %q", kind, existing, database)
		}
		table[kind] = database
	}

	return &Router{bindings: table}, nil
}

// Default returns the canonical routing table used by the portal:
//
//   - AdminPrincipal      → online_edu (legacy MySQL)
//   - UserPrincipal       → lsc_portal
//   - PortalRecord        → lsc_admindb
//   - CoreFrameworkRecord → lsc_portal
func Default() *Router {
	router, err := New(map[EntityKind]DatabaseID{
		KindAdminPrincipal:      DatabaseAdmin,
		KindUserPrincipal:       DatabaseUser,
		KindPortalRecord:        DatabasePortal,
		KindCoreFrameworkRecord: DatabaseUser,
	})
	if err != nil {
		// The canonical table is compile-time constant; failure here is a
		// programming error, not a runtime condition.
		panic("dbrouter: canonical binding table is invalid: " + err.Error())
	}
	return router
}

// # Resolution

// Resolve returns the database bound to the given kind.
//
// The result is a pure function of the startup configuration and is
// identical for read and write operations on the same kind (read/write
// symmetry). The second return value is false when the router has no
// opinion about the kind; the caller must then apply its own explicit
// default rather than guessing.
func (r *Router) Resolve(kind EntityKind, op Operation) (DatabaseID, bool) {
	_ = op // every operation class routes identically; parameter kept for the contract
	database, bound := r.bindings[kind]
	return database, bound
}

// ResolveOrDefault resolves the kind, falling back to the caller-supplied
// default database when the router declines.
func (r *Router) ResolveOrDefault(kind EntityKind, op Operation, fallback DatabaseID) DatabaseID {
	if database, bound := r.Resolve(kind, op); bound {
		return database
	}
	return fallback
}

// AllowMigration reports whether schema changes for the kind may be applied
// to the target database. Exactly one database answers true per bound kind;
// unknown kinds are never migratable anywhere.
func (r *Router) AllowMigration(kind EntityKind, target DatabaseID) bool {
	database, bound := r.bindings[kind]
	return bound && database == target
}

// Kinds returns every entity kind the router has an opinion about.
func (r *Router) Kinds() []EntityKind {
	kinds := make([]EntityKind, 0, len(r.bindings))
	for kind := range r.bindings {
		kinds = append(kinds, kind)
	}
	return kinds
}
