// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package identity_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/ignite/internal/identity"
)

/*
TestMySQLAdminStore_UpdatePassword_RowCountFailureSurfaces verifies that a
driver failure while reading the affected-row count is reported as an
error, never mistaken for a successful rotation.
*/
func TestMySQLAdminStore_UpdatePassword_RowCountFailureSurfaces(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE lsc_admins SET password").
		WithArgs("new-hash", sqlmock.AnyArg(), "LC2101-CDOE").
		WillReturnResult(sqlmock.NewErrorResult(errors.New("rows affected unsupported")))

	store := identity.NewMySQLAdminStore(db)
	err = store.UpdatePassword(context.Background(), "LC2101-CDOE", "new-hash")

	require.Error(t, err)
	assert.ErrorContains(t, err, "rows affected unsupported")
	assert.NotErrorIs(t, err, identity.ErrPrincipalNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestMySQLAdminStore_UpdatePassword_UnknownCode verifies that rotating the
password of a code with no row reports the principal as missing.
*/
func TestMySQLAdminStore_UpdatePassword_UnknownCode(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE lsc_admins SET password").
		WithArgs("new-hash", sqlmock.AnyArg(), "LC9999").
		WillReturnResult(sqlmock.NewResult(0, 0))

	store := identity.NewMySQLAdminStore(db)
	err = store.UpdatePassword(context.Background(), "LC9999", "new-hash")

	assert.ErrorIs(t, err, identity.ErrPrincipalNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestMySQLAdminStore_UpdatePassword_Success verifies the happy path touches
exactly one row and returns nil.
*/
func TestMySQLAdminStore_UpdatePassword_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE lsc_admins SET password").
		WithArgs("new-hash", sqlmock.AnyArg(), "LC2101-CDOE").
		WillReturnResult(sqlmock.NewResult(0, 1))

	store := identity.NewMySQLAdminStore(db)

	require.NoError(t, store.UpdatePassword(context.Background(), "LC2101-CDOE", "new-hash"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
