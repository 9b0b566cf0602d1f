// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package identity_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/ignite/internal/identity"
	"github.com/taibuivan/ignite/internal/platform/apperr"
	"github.com/taibuivan/ignite/internal/platform/dbrouter"
	"github.com/taibuivan/ignite/internal/platform/sec"
)

// fakeAdminStore is an in-memory AdminStore for coordinator tests.
type fakeAdminStore struct {
	accounts map[string]*identity.AdminAccount
	failWith error
	touched  []string
	touchErr error
}

func (store *fakeAdminStore) FindByCode(_ context.Context, code string) (*identity.AdminAccount, error) {
	if store.failWith != nil {
		return nil, store.failWith
	}
	account, found := store.accounts[code]
	if !found {
		return nil, identity.ErrPrincipalNotFound
	}
	return account, nil
}

func (store *fakeAdminStore) TouchLastLogin(_ context.Context, code string) error {
	store.touched = append(store.touched, code)
	return store.touchErr
}

func (store *fakeAdminStore) UpdatePassword(_ context.Context, code, newHash string) error {
	account, found := store.accounts[code]
	if !found {
		return identity.ErrPrincipalNotFound
	}
	account.PasswordHash = newHash
	return nil
}

// fakeUserStore is an in-memory UserStore for coordinator tests.
type fakeUserStore struct {
	accounts map[string]*identity.UserAccount
	failWith error
	lookups  []string
}

func (store *fakeUserStore) FindByNumber(_ context.Context, number string) (*identity.UserAccount, error) {
	store.lookups = append(store.lookups, number)
	if store.failWith != nil {
		return nil, store.failWith
	}
	account, found := store.accounts[number]
	if !found {
		return nil, identity.ErrPrincipalNotFound
	}
	return account, nil
}

func (store *fakeUserStore) UpdatePassword(_ context.Context, number, newHash string) error {
	account, found := store.accounts[number]
	if !found {
		return identity.ErrPrincipalNotFound
	}
	account.PasswordHash = newHash
	return nil
}

// mustHash hashes a plain-text password or fails the test.
func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := sec.HashPassword(password)
	require.NoError(t, err)
	return hash
}

// fixtures builds the two standard test populations: the LC2101-CDOE admin
// and the LC3001 centre user.
func fixtures(t *testing.T) (*fakeAdminStore, *fakeUserStore) {
	t.Helper()

	adminStore := &fakeAdminStore{
		accounts: map[string]*identity.AdminAccount{
			"LC2101-CDOE": {
				Code:         "LC2101-CDOE",
				PasswordHash: mustHash(t, "admin123"),
				Name:         "Chennai Distance Education",
				Email:        "cdoe@ignite.portal",
				IsActive:     true,
				IsAdmin:      true,
			},
		},
	}

	userStore := &fakeUserStore{
		accounts: map[string]*identity.UserAccount{
			"LC3001": {
				Number:       "LC3001",
				PasswordHash: mustHash(t, "user123"),
				Name:         "Coimbatore Learning Centre",
				Email:        "lc3001@ignite.portal",
				IsActive:     true,
			},
		},
	}

	return adminStore, userStore
}

/*
TestAuthenticate_AdminSuccess verifies a valid admin login resolves against
the admin store and normalizes to an admin principal.
*/
func TestAuthenticate_AdminSuccess(t *testing.T) {
	adminStore, userStore := fixtures(t)
	authenticator := identity.NewAuthenticator(adminStore, userStore, nil, nil)

	principal, err := authenticator.Authenticate(context.Background(), "LC2101-CDOE", "admin123")

	require.NoError(t, err)
	assert.Equal(t, identity.KindAdmin, principal.Kind)
	assert.Equal(t, "LC2101-CDOE", principal.NaturalKey)
	assert.Equal(t, "Chennai Distance Education", principal.DisplayName)
	assert.True(t, principal.Active)
	assert.True(t, principal.Privileged)
	assert.Equal(t, dbrouter.DatabaseAdmin, principal.SourceDB)

	// Successful admin login stamps last_login
	assert.Equal(t, []string{"LC2101-CDOE"}, adminStore.touched)

	// The user store was never consulted
	assert.Empty(t, userStore.lookups)
}

/*
TestAuthenticate_UserSuccess verifies a valid user login falls through the
admin store and resolves against the user store.
*/
func TestAuthenticate_UserSuccess(t *testing.T) {
	adminStore, userStore := fixtures(t)
	authenticator := identity.NewAuthenticator(adminStore, userStore, nil, nil)

	principal, err := authenticator.Authenticate(context.Background(), "LC3001", "user123")

	require.NoError(t, err)
	assert.Equal(t, identity.KindUser, principal.Kind)
	assert.Equal(t, "LC3001", principal.NaturalKey)
	assert.True(t, principal.Active)
	assert.False(t, principal.Privileged)
	assert.Equal(t, dbrouter.DatabaseUser, principal.SourceDB)
	assert.Equal(t, []string{"LC3001"}, userStore.lookups)
}

/*
TestAuthenticate_UniformRejection verifies that unknown identifier, wrong
secret, and inactive account all return the exact same error value.
*/
func TestAuthenticate_UniformRejection(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		password   string
		deactivate bool
	}{
		{"unknown_identifier", "LC9999", "whatever", false},
		{"admin_wrong_password", "LC2101-CDOE", "wrong", false},
		{"user_wrong_password", "LC3001", "wrong", false},
		{"inactive_user", "LC3001", "user123", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adminStore, userStore := fixtures(t)
			if tt.deactivate {
				userStore.accounts["LC3001"].IsActive = false
			}
			authenticator := identity.NewAuthenticator(adminStore, userStore, nil, nil)

			principal, err := authenticator.Authenticate(context.Background(), tt.identifier, tt.password)

			assert.Nil(t, principal)
			// Same value, not merely same type: causes must be indistinguishable.
			assert.Same(t, identity.ErrInvalidCredentials, apperr.As(err))
		})
	}
}

/*
TestAuthenticate_AdminHitIsAuthoritative verifies that a matching admin code
with a wrong password never falls through to the user store, even when the
same identifier exists there too.
*/
func TestAuthenticate_AdminHitIsAuthoritative(t *testing.T) {
	adminStore, userStore := fixtures(t)

	// Plant the admin's code in the user store with the submitted password.
	userStore.accounts["LC2101-CDOE"] = &identity.UserAccount{
		Number:       "LC2101-CDOE",
		PasswordHash: mustHash(t, "sneaky"),
		Name:         "Impostor",
		IsActive:     true,
	}

	authenticator := identity.NewAuthenticator(adminStore, userStore, nil, nil)

	principal, err := authenticator.Authenticate(context.Background(), "LC2101-CDOE", "sneaky")

	assert.Nil(t, principal)
	assert.Same(t, identity.ErrInvalidCredentials, apperr.As(err))
	assert.Empty(t, userStore.lookups, "user store must not be consulted after an admin hit")
}

/*
TestAuthenticate_AdminStoreDown verifies that an admin store outage surfaces
as 503 Unavailable and never falls through to the user store.
*/
func TestAuthenticate_AdminStoreDown(t *testing.T) {
	adminStore, userStore := fixtures(t)
	adminStore.failWith = apperr.Unavailable("Admin store unreachable", nil)

	authenticator := identity.NewAuthenticator(adminStore, userStore, nil, nil)

	principal, err := authenticator.Authenticate(context.Background(), "LC2101-CDOE", "admin123")

	assert.Nil(t, principal)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "UNAVAILABLE", ae.Code)
	assert.Empty(t, userStore.lookups, "an outage is not a miss; no fall-through allowed")
}

/*
TestAuthenticate_UserStoreDown verifies that a user store outage after a
clean admin miss surfaces as 503 Unavailable, not as bad credentials.
*/
func TestAuthenticate_UserStoreDown(t *testing.T) {
	adminStore, userStore := fixtures(t)
	userStore.failWith = apperr.Unavailable("User store unreachable", nil)

	authenticator := identity.NewAuthenticator(adminStore, userStore, nil, nil)

	_, err := authenticator.Authenticate(context.Background(), "LC3001", "user123")

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "UNAVAILABLE", ae.Code)
}

/*
TestAuthenticate_LastLoginStampFailureIsNonFatal verifies that a failed
last_login bookkeeping write does not block an otherwise valid login.
*/
func TestAuthenticate_LastLoginStampFailureIsNonFatal(t *testing.T) {
	adminStore, userStore := fixtures(t)
	adminStore.touchErr = assert.AnError

	authenticator := identity.NewAuthenticator(adminStore, userStore, nil, nil)

	principal, err := authenticator.Authenticate(context.Background(), "LC2101-CDOE", "admin123")

	require.NoError(t, err)
	assert.Equal(t, identity.KindAdmin, principal.Kind)
}

/*
TestResolvePrincipal verifies the refresh-path lookup re-checks activity.
*/
func TestResolvePrincipal(t *testing.T) {
	adminStore, userStore := fixtures(t)
	authenticator := identity.NewAuthenticator(adminStore, userStore, nil, nil)

	// 1. Active admin resolves
	principal, err := authenticator.ResolvePrincipal(context.Background(), identity.KindAdmin, "LC2101-CDOE")
	require.NoError(t, err)
	assert.Equal(t, "LC2101-CDOE", principal.NaturalKey)

	// 2. Deactivated user is rejected
	userStore.accounts["LC3001"].IsActive = false
	_, err = authenticator.ResolvePrincipal(context.Background(), identity.KindUser, "LC3001")
	assert.Same(t, identity.ErrInvalidCredentials, apperr.As(err))

	// 3. Unknown kind is rejected
	_, err = authenticator.ResolvePrincipal(context.Background(), identity.Kind("service"), "whatever")
	assert.Same(t, identity.ErrInvalidCredentials, apperr.As(err))
}

/*
TestChangePassword verifies secret rotation for both populations.
*/
func TestChangePassword(t *testing.T) {
	adminStore, userStore := fixtures(t)
	authenticator := identity.NewAuthenticator(adminStore, userStore, nil, nil)

	// 1. Wrong current password is the uniform rejection
	err := authenticator.ChangePassword(context.Background(), identity.KindUser, "LC3001", "wrong", "Fresh2026pw")
	assert.Same(t, identity.ErrInvalidCredentials, apperr.As(err))

	// 2. Correct current password rotates the hash
	err = authenticator.ChangePassword(context.Background(), identity.KindUser, "LC3001", "user123", "Fresh2026pw")
	require.NoError(t, err)

	// 3. Old secret no longer works, new one does
	_, err = authenticator.Authenticate(context.Background(), "LC3001", "user123")
	assert.Error(t, err)

	principal, err := authenticator.Authenticate(context.Background(), "LC3001", "Fresh2026pw")
	require.NoError(t, err)
	assert.Equal(t, identity.KindUser, principal.Kind)

	// 4. Admin rotation goes to the admin store
	err = authenticator.ChangePassword(context.Background(), identity.KindAdmin, "LC2101-CDOE", "admin123", "Rotated2026pw")
	require.NoError(t, err)

	principal, err = authenticator.Authenticate(context.Background(), "LC2101-CDOE", "Rotated2026pw")
	require.NoError(t, err)
	assert.Equal(t, identity.KindAdmin, principal.Kind)
}
