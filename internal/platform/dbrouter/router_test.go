// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dbrouter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/ignite/internal/platform/dbrouter"
)

/*
TestRouter_ReadWriteSymmetry verifies that resolve returns the identical
database for reads and writes on every bound kind.
*/
func TestRouter_ReadWriteSymmetry(t *testing.T) {
	router := dbrouter.Default()

	for _, kind := range router.Kinds() {
		readDB, readOK := router.Resolve(kind, dbrouter.OpRead)
		writeDB, writeOK := router.Resolve(kind, dbrouter.OpWrite)
		migrateDB, migrateOK := router.Resolve(kind, dbrouter.OpMigrate)

		require.True(t, readOK, "kind %s must resolve for reads", kind)
		require.True(t, writeOK, "kind %s must resolve for writes", kind)
		require.True(t, migrateOK, "kind %s must resolve for migrations", kind)
		assert.Equal(t, readDB, writeDB, "kind %s diverges between read and write", kind)
		assert.Equal(t, readDB, migrateDB, "kind %s diverges between read and migrate", kind)
	}
}

/*
TestRouter_CanonicalBindings pins the deployment routing table.
*/
func TestRouter_CanonicalBindings(t *testing.T) {
	router := dbrouter.Default()

	tests := []struct {
		kind dbrouter.EntityKind
		want dbrouter.DatabaseID
	}{
		{dbrouter.KindAdminPrincipal, dbrouter.DatabaseAdmin},
		{dbrouter.KindUserPrincipal, dbrouter.DatabaseUser},
		{dbrouter.KindPortalRecord, dbrouter.DatabasePortal},
		{dbrouter.KindCoreFrameworkRecord, dbrouter.DatabaseUser},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			got, ok := router.Resolve(tt.kind, dbrouter.OpRead)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

/*
TestRouter_ExactlyOneMigrationTarget verifies that for every bound kind
exactly one database is authorized for schema changes.
*/
func TestRouter_ExactlyOneMigrationTarget(t *testing.T) {
	router := dbrouter.Default()

	databases := []dbrouter.DatabaseID{
		dbrouter.DatabaseAdmin,
		dbrouter.DatabaseUser,
		dbrouter.DatabasePortal,
	}

	for _, kind := range router.Kinds() {
		authorized := 0
		for _, database := range databases {
			if router.AllowMigration(kind, database) {
				authorized++
			}
		}
		assert.Equal(t, 1, authorized, "kind %s must have exactly one migration target", kind)
	}
}

/*
TestRouter_UnknownKind verifies the explicit no-opinion fallback policy.
*/
func TestRouter_UnknownKind(t *testing.T) {
	router := dbrouter.Default()

	_, ok := router.Resolve("SomethingElse", dbrouter.OpRead)
	assert.False(t, ok, "router must decline unknown kinds")

	got := router.ResolveOrDefault("SomethingElse", dbrouter.OpRead, dbrouter.DatabaseUser)
	assert.Equal(t, dbrouter.DatabaseUser, got)

	// Unknown kinds are not migratable anywhere.
	assert.False(t, router.AllowMigration("SomethingElse", dbrouter.DatabaseUser))
	assert.False(t, router.AllowMigration("SomethingElse", dbrouter.DatabaseAdmin))
	assert.False(t, router.AllowMigration("SomethingElse", dbrouter.DatabasePortal))
}

/*
TestRouter_InvalidBindings verifies that misrouted configurations fail at
construction time.
*/
func TestRouter_InvalidBindings(t *testing.T) {
	tests := []struct {
		name     string
		bindings map[dbrouter.EntityKind]dbrouter.DatabaseID
	}{
		{"empty_table", map[dbrouter.EntityKind]dbrouter.DatabaseID{}},
		{"unbound_kind", map[dbrouter.EntityKind]dbrouter.DatabaseID{
			dbrouter.KindUserPrincipal: "",
		}},
		{"empty_kind", map[dbrouter.EntityKind]dbrouter.DatabaseID{
			"": dbrouter.DatabaseUser,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, err := dbrouter.New(tt.bindings)
			require.Error(t, err)
			assert.Nil(t, router)
		})
	}
}
