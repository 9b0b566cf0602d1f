// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package settings_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/ignite/internal/platform/apperr"
	"github.com/taibuivan/ignite/internal/portal/settings"
)

// # Test Doubles

// fakeRepository is an in-memory settings store keyed by application type.
type fakeRepository struct {
	rows     map[settings.ApplicationType]*settings.ApplicationSettings
	failWith error
	finds    int
}

func (f *fakeRepository) List(_ context.Context) ([]*settings.ApplicationSettings, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var result []*settings.ApplicationSettings
	for _, row := range f.rows {
		result = append(result, row)
	}
	return result, nil
}

func (f *fakeRepository) FindByType(_ context.Context, applicationType settings.ApplicationType) (*settings.ApplicationSettings, error) {
	f.finds++
	if f.failWith != nil {
		return nil, f.failWith
	}
	row, ok := f.rows[applicationType]
	if !ok {
		return nil, apperr.NotFound("Application settings")
	}
	copied := *row
	return &copied, nil
}

func (f *fakeRepository) Update(_ context.Context, updated *settings.ApplicationSettings) error {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.rows[updated.ApplicationType]; !ok {
		return apperr.NotFound("Application settings")
	}
	copied := *updated
	f.rows[updated.ApplicationType] = &copied
	return nil
}

// fakeCache is an in-memory cache with call counters.
type fakeCache struct {
	entries       map[settings.ApplicationType]*settings.ApplicationSettings
	failWith      error
	sets          int
	invalidations int
}

func (f *fakeCache) Get(_ context.Context, applicationType settings.ApplicationType) (*settings.ApplicationSettings, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	entry, ok := f.entries[applicationType]
	if !ok {
		return nil, apperr.NotFound("Application settings")
	}
	copied := *entry
	return &copied, nil
}

func (f *fakeCache) Set(_ context.Context, entry *settings.ApplicationSettings) error {
	f.sets++
	if f.failWith != nil {
		return f.failWith
	}
	copied := *entry
	f.entries[entry.ApplicationType] = &copied
	return nil
}

func (f *fakeCache) Invalidate(_ context.Context, applicationType settings.ApplicationType) error {
	f.invalidations++
	if f.failWith != nil {
		return f.failWith
	}
	delete(f.entries, applicationType)
	return nil
}

// # Fixtures

func seededRow(applicationType settings.ApplicationType, open bool) *settings.ApplicationSettings {
	return &settings.ApplicationSettings{
		ID:              "0192d7a0-0000-7000-8000-00000000000" + string(applicationType[0]),
		ApplicationType: applicationType,
		IsOpen:          open,
		OpeningDate:     time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
		ClosingDate:     time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC),
		MaxApplications: 500,
		Description:     "Admission window",
	}
}

func newHarness() (*settings.Service, *fakeRepository, *fakeCache) {
	repo := &fakeRepository{rows: map[settings.ApplicationType]*settings.ApplicationSettings{
		settings.TypeCDE: seededRow(settings.TypeCDE, true),
		settings.TypeDEB: seededRow(settings.TypeDEB, false),
	}}
	cache := &fakeCache{entries: map[settings.ApplicationType]*settings.ApplicationSettings{}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return settings.NewService(repo, cache, logger), repo, cache
}

// # Tests

/*
TestGetSettings_CacheHitSkipsDatabase verifies that a warm cache serves the
row without touching the repository.
*/
func TestGetSettings_CacheHitSkipsDatabase(t *testing.T) {
	service, repo, cache := newHarness()
	cache.entries[settings.TypeCDE] = seededRow(settings.TypeCDE, true)

	// 1. Read a type that is present in the cache
	result, err := service.GetSettings(context.Background(), settings.TypeCDE)
	require.NoError(t, err)

	// 2. The row came back and the database was never consulted
	assert.Equal(t, settings.TypeCDE, result.ApplicationType)
	assert.Zero(t, repo.finds)
}

/*
TestGetSettings_MissFallsBackAndRepopulates verifies the read-through path:
a cache miss reads the database and writes the row back.
*/
func TestGetSettings_MissFallsBackAndRepopulates(t *testing.T) {
	service, repo, cache := newHarness()

	// 1. Read with a cold cache
	result, err := service.GetSettings(context.Background(), settings.TypeDEB)
	require.NoError(t, err)

	// 2. The database served the row
	assert.Equal(t, 1, repo.finds)
	assert.False(t, result.IsOpen)

	// 3. The row was written back to the cache
	assert.Equal(t, 1, cache.sets)
	assert.Contains(t, cache.entries, settings.TypeDEB)
}

/*
TestGetSettings_CacheOutageIsInvisible verifies that a broken cache degrades
to plain database reads instead of failing the request.
*/
func TestGetSettings_CacheOutageIsInvisible(t *testing.T) {
	service, repo, cache := newHarness()
	cache.failWith = errors.New("redis: connection refused")

	result, err := service.GetSettings(context.Background(), settings.TypeCDE)
	require.NoError(t, err)

	assert.True(t, result.IsOpen)
	assert.Equal(t, 1, repo.finds)
}

/*
TestGetSettings_RejectsUnknownType verifies that an unrecognized application
type is rejected before any store is consulted.
*/
func TestGetSettings_RejectsUnknownType(t *testing.T) {
	service, repo, _ := newHarness()

	_, err := service.GetSettings(context.Background(), "XYZ")
	require.Error(t, err)

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Zero(t, repo.finds)
}

/*
TestToggleOpen_FlipsAndInvalidates verifies that toggling flips the flag,
persists it, and eagerly drops the cached row.
*/
func TestToggleOpen_FlipsAndInvalidates(t *testing.T) {
	service, repo, cache := newHarness()
	cache.entries[settings.TypeCDE] = seededRow(settings.TypeCDE, true)

	// 1. Toggle an open window shut
	result, err := service.ToggleOpen(context.Background(), settings.TypeCDE)
	require.NoError(t, err)
	assert.False(t, result.IsOpen)

	// 2. The flip was persisted
	assert.False(t, repo.rows[settings.TypeCDE].IsOpen)

	// 3. The cached row was dropped
	assert.Equal(t, 1, cache.invalidations)
	assert.NotContains(t, cache.entries, settings.TypeCDE)

	// 4. Toggling again reopens the window
	result, err = service.ToggleOpen(context.Background(), settings.TypeCDE)
	require.NoError(t, err)
	assert.True(t, result.IsOpen)
}

/*
TestUpdateSettings_ValidatesWindow verifies the field rules on update: the
closing date must not precede the opening date and the cap must be positive.
*/
func TestUpdateSettings_ValidatesWindow(t *testing.T) {
	service, _, cache := newHarness()

	t.Run("closing before opening", func(t *testing.T) {
		row := seededRow(settings.TypeCDE, true)
		row.ClosingDate = row.OpeningDate.AddDate(0, 0, -1)

		err := service.UpdateSettings(context.Background(), row)
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})

	t.Run("non-positive cap", func(t *testing.T) {
		row := seededRow(settings.TypeCDE, true)
		row.MaxApplications = 0

		err := service.UpdateSettings(context.Background(), row)
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})

	t.Run("valid update invalidates the cache", func(t *testing.T) {
		cache.entries[settings.TypeCDE] = seededRow(settings.TypeCDE, true)

		row := seededRow(settings.TypeCDE, true)
		row.MaxApplications = 750

		require.NoError(t, service.UpdateSettings(context.Background(), row))
		assert.NotContains(t, cache.entries, settings.TypeCDE)
	})
}
