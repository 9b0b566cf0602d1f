// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package settings

import (
	"context"
	"log/slog"

	"github.com/taibuivan/ignite/internal/platform/validate"
)

// # Service Layer

// Service orchestrates settings reads and writes around the cache.
type Service struct {
	repo   Repository
	cache  Cache
	logger *slog.Logger
}

// NewService constructs a new settings [Service].
func NewService(repo Repository, cache Cache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

/*
ListSettings returns the settings rows for every application type.

Description: Always reads the database; the admin list view must never
show a stale row next to a fresh one.
*/
func (service *Service) ListSettings(context context.Context) ([]*ApplicationSettings, error) {
	return service.repo.List(context)
}

/*
GetSettings retrieves the settings for one application type, cache first.

Parameters:
  - context: context.Context
  - applicationType: ApplicationType

Returns:
  - *ApplicationSettings: Hydrated entity
  - error: Validation or retrieval failures

Business Rules:
  - The application type must be one of CDE, DEB, ABC.
  - Any cache error counts as a miss; the database stays authoritative.
  - A database hit is written back to the cache on a best-effort basis.
*/
func (service *Service) GetSettings(context context.Context, applicationType ApplicationType) (*ApplicationSettings, error) {
	if err := validateType(applicationType); err != nil {
		return nil, err
	}

	// ── 1. Try the cache ──
	if cached, err := service.cache.Get(context, applicationType); err == nil {
		return cached, nil
	}

	// ── 2. Fall back to the database ──
	settings, err := service.repo.FindByType(context, applicationType)
	if err != nil {
		return nil, err
	}

	// ── 3. Repopulate the cache, best effort ──
	if err := service.cache.Set(context, settings); err != nil {
		service.logger.Warn("settings_cache_set_failed",
			slog.String(FieldApplicationType, string(applicationType)),
			slog.String("error", err.Error()),
		)
	}

	return settings, nil
}

/*
UpdateSettings validates and persists changes to one settings row.

Parameters:
  - context: context.Context
  - settings: *ApplicationSettings

Returns:
  - error: Validation or persistence failures

Business Rules:
  - The closing date must not precede the opening date.
  - The application cap must be positive.
  - The cached row is invalidated eagerly after the write.
*/
func (service *Service) UpdateSettings(context context.Context, settings *ApplicationSettings) error {
	if err := validateType(settings.ApplicationType); err != nil {
		return err
	}

	validator := &validate.Validator{}
	validator.
		Custom(FieldClosingDate, settings.ClosingDate.Before(settings.OpeningDate), "Must not precede the opening date").
		Custom(FieldMaxApplications, settings.MaxApplications <= 0, "Must be positive")
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.Update(context, settings); err != nil {
		return err
	}

	service.invalidate(context, settings.ApplicationType)

	service.logger.Info("application_settings_updated",
		slog.String(FieldApplicationType, string(settings.ApplicationType)),
		slog.Bool("is_open", settings.IsOpen),
	)

	return nil
}

/*
ToggleOpen flips the admission window for one application type.

Parameters:
  - context: context.Context
  - applicationType: ApplicationType

Returns:
  - *ApplicationSettings: The row after the flip
  - error: Validation or persistence failures
*/
func (service *Service) ToggleOpen(context context.Context, applicationType ApplicationType) (*ApplicationSettings, error) {
	if err := validateType(applicationType); err != nil {
		return nil, err
	}

	// Read the database directly; flipping a stale cached row could undo a
	// concurrent toggle.
	settings, err := service.repo.FindByType(context, applicationType)
	if err != nil {
		return nil, err
	}

	settings.IsOpen = !settings.IsOpen

	if err := service.repo.Update(context, settings); err != nil {
		return nil, err
	}

	service.invalidate(context, applicationType)

	service.logger.Info("admission_window_toggled",
		slog.String(FieldApplicationType, string(applicationType)),
		slog.Bool("is_open", settings.IsOpen),
	)

	return settings, nil
}

// invalidate drops the cached row, logging instead of failing the request.
func (service *Service) invalidate(context context.Context, applicationType ApplicationType) {
	if err := service.cache.Invalidate(context, applicationType); err != nil {
		service.logger.Warn("settings_cache_invalidate_failed",
			slog.String(FieldApplicationType, string(applicationType)),
			slog.String("error", err.Error()),
		)
	}
}

// validateType applies the shared application-type rule.
func validateType(applicationType ApplicationType) error {
	validator := &validate.Validator{}

	validator.
		Required(FieldApplicationType, string(applicationType)).
		OneOf(FieldApplicationType, string(applicationType),
			string(TypeCDE), string(TypeDEB), string(TypeABC))

	return validator.Err()
}
