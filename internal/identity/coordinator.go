// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taibuivan/ignite/internal/platform/apperr"
	"github.com/taibuivan/ignite/internal/platform/dbrouter"
	"github.com/taibuivan/ignite/internal/platform/sec"
)

// ErrInvalidCredentials is the single uniform rejection for every
// credential failure: unknown identifier, wrong secret, or inactive
// account. One shared value guarantees the three causes are
// indistinguishable to clients, closing the enumeration side channel.
var ErrInvalidCredentials = apperr.Unauthorized("Invalid login credentials")

// LoginMetrics is the instrumentation surface the coordinator emits to.
// A nil registry disables instrumentation (used by unit tests).
type LoginMetrics interface {
	CountLogin(outcome, kind string)
	CountStoreFailure(database string)
}

// Authenticator resolves submitted credentials against both principal
// populations in a fixed trial order.
//
// # Trial Order
//
// The admin store is consulted first and is authoritative on any hit: a
// matching lsc_code with a wrong password or inactive flag rejects the
// attempt WITHOUT consulting the user store, even if the same identifier
// also exists there. Only a clean "no such admin" falls through. The order
// is a documented contract, not an optimization.
//
// # Review Process
//
// This service is critical for security. Any change to the trial order,
// the uniform rejection, or the outage handling must be reviewed by the
// security team.
type Authenticator struct {
	adminStore AdminStore
	userStore  UserStore
	metrics    LoginMetrics
	logger     *slog.Logger
}

// NewAuthenticator constructs an [Authenticator] with its dependencies.
func NewAuthenticator(adminStore AdminStore, userStore UserStore, metrics LoginMetrics, logger *slog.Logger) *Authenticator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Authenticator{
		adminStore: adminStore,
		userStore:  userStore,
		metrics:    metrics,
		logger:     logger,
	}
}

// Authenticate validates an identifier/secret pair and returns the
// normalized principal.
//
// # Parameters
//   - ctx: Context for the store lookups.
//   - identifier: The submitted natural key, matched exactly (case-sensitive,
//     untrimmed) against lsc_code first, then lsc_number.
//   - secret: The plain-text password.
//
// # Returns
//   - [*Principal] on success.
//   - [ErrInvalidCredentials] for unknown identifier, wrong secret, or
//     inactive account — deliberately the same value for all three.
//   - [apperr.Unavailable] when a store that had to be consulted could not
//     answer. An outage is never reported as bad credentials.
func (a *Authenticator) Authenticate(ctx context.Context, identifier, secret string) (*Principal, error) {
	// ── 1. Admin Trial (authoritative on hit) ────────────────────────────

	admin, err := a.adminStore.FindByCode(ctx, identifier)
	switch {
	case err == nil:
		return a.finishAdmin(ctx, admin, secret)

	case errors.Is(err, ErrPrincipalNotFound):
		// Clean miss: the identifier is simply not an admin code.
		// Fall through to the user population.

	default:
		a.countStoreFailure(dbrouter.DatabaseAdmin)
		a.countLogin("unavailable", "")
		return nil, err
	}

	// ── 2. User Trial ─────────────────────────────────────────────────────

	user, err := a.userStore.FindByNumber(ctx, identifier)
	switch {
	case err == nil:
		return a.finishUser(user, secret)

	case errors.Is(err, ErrPrincipalNotFound):
		a.countLogin("invalid_credentials", "")
		return nil, ErrInvalidCredentials

	default:
		a.countStoreFailure(dbrouter.DatabaseUser)
		a.countLogin("unavailable", "")
		return nil, err
	}
}

// finishAdmin applies the secret and activity checks to an admin hit.
func (a *Authenticator) finishAdmin(ctx context.Context, admin *AdminAccount, secret string) (*Principal, error) {
	if !admin.IsActive || !sec.CheckPasswordHash(secret, admin.PasswordHash) {
		a.countLogin("invalid_credentials", "")
		return nil, ErrInvalidCredentials
	}

	// Best-effort bookkeeping: a failed stamp must not block a valid login.
	if err := a.adminStore.TouchLastLogin(ctx, admin.Code); err != nil {
		a.logger.WarnContext(ctx, "admin_last_login_stamp_failed", slog.Any("error", err))
	}

	a.countLogin("success", string(KindAdmin))
	return principalFromAdmin(admin), nil
}

// finishUser applies the secret and activity checks to a user hit.
func (a *Authenticator) finishUser(user *UserAccount, secret string) (*Principal, error) {
	if !user.IsActive || !sec.CheckPasswordHash(secret, user.PasswordHash) {
		a.countLogin("invalid_credentials", "")
		return nil, ErrInvalidCredentials
	}

	a.countLogin("success", string(KindUser))
	return principalFromUser(user), nil
}

// ResolvePrincipal re-fetches an already-authenticated principal by kind
// and natural key, re-checking that the account is still active.
//
// Used by the refresh flow so that a deactivated account cannot keep
// minting access tokens until its refresh token expires.
func (a *Authenticator) ResolvePrincipal(ctx context.Context, kind Kind, naturalKey string) (*Principal, error) {
	switch kind {
	case KindAdmin:
		admin, err := a.adminStore.FindByCode(ctx, naturalKey)
		if err != nil {
			if errors.Is(err, ErrPrincipalNotFound) {
				return nil, ErrInvalidCredentials
			}
			return nil, err
		}
		if !admin.IsActive {
			return nil, ErrInvalidCredentials
		}
		return principalFromAdmin(admin), nil

	case KindUser:
		user, err := a.userStore.FindByNumber(ctx, naturalKey)
		if err != nil {
			if errors.Is(err, ErrPrincipalNotFound) {
				return nil, ErrInvalidCredentials
			}
			return nil, err
		}
		if !user.IsActive {
			return nil, ErrInvalidCredentials
		}
		return principalFromUser(user), nil

	default:
		return nil, ErrInvalidCredentials
	}
}

// ChangePassword verifies the current secret and replaces it with a new
// bcrypt hash in the principal's home database.
//
// The current-secret check reuses the uniform rejection: a wrong current
// password reads exactly like a failed login.
func (a *Authenticator) ChangePassword(ctx context.Context, kind Kind, naturalKey, currentSecret, newSecret string) error {
	newHash, err := sec.HashPassword(newSecret)
	if err != nil {
		return fmt.Errorf("authenticator_hash_failed: %w", err)
	}

	switch kind {
	case KindAdmin:
		admin, err := a.adminStore.FindByCode(ctx, naturalKey)
		if err != nil {
			if errors.Is(err, ErrPrincipalNotFound) {
				return ErrInvalidCredentials
			}
			return err
		}
		if !admin.IsActive || !sec.CheckPasswordHash(currentSecret, admin.PasswordHash) {
			return ErrInvalidCredentials
		}
		return a.adminStore.UpdatePassword(ctx, naturalKey, newHash)

	case KindUser:
		user, err := a.userStore.FindByNumber(ctx, naturalKey)
		if err != nil {
			if errors.Is(err, ErrPrincipalNotFound) {
				return ErrInvalidCredentials
			}
			return err
		}
		if !user.IsActive || !sec.CheckPasswordHash(currentSecret, user.PasswordHash) {
			return ErrInvalidCredentials
		}
		return a.userStore.UpdatePassword(ctx, naturalKey, newHash)

	default:
		return ErrInvalidCredentials
	}
}

// NoteMalformedAttempt records a login attempt rejected at the boundary
// (bad JSON, missing fields) before the trial order ran. Kept on the
// authenticator so every outcome class flows through one counter.
func (a *Authenticator) NoteMalformedAttempt() {
	a.countLogin("malformed", "")
}

// countLogin guards against a nil metrics registry.
func (a *Authenticator) countLogin(outcome, kind string) {
	if a.metrics != nil {
		a.metrics.CountLogin(outcome, kind)
	}
}

// countStoreFailure guards against a nil metrics registry.
func (a *Authenticator) countStoreFailure(database dbrouter.DatabaseID) {
	if a.metrics != nil {
		a.metrics.CountStoreFailure(string(database))
	}
}
