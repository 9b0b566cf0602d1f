// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package settings manages the admission window configuration.

One settings row exists per application type (CDE, DEB, ABC). The rows are
seeded by migration and only ever updated, never created or deleted through
the API. Reads are served through a Redis cache because the public portal
checks the window on every page load.
*/
package settings

import (
	"context"
	"time"
)

// # Application Types

// ApplicationType distinguishes the three admission streams.
type ApplicationType string

const (
	TypeCDE ApplicationType = "CDE" // Centre for Distance Education
	TypeDEB ApplicationType = "DEB" // Distance Education Bureau
	TypeABC ApplicationType = "ABC" // Academic Bank of Credits
)

// # Settings Entity

// ApplicationSettings holds the admission window for one application type.
type ApplicationSettings struct {
	ID              string          `json:"id"`
	ApplicationType ApplicationType `json:"application_type"`
	IsOpen          bool            `json:"is_open"`
	OpeningDate     time.Time       `json:"opening_date"`
	ClosingDate     time.Time       `json:"closing_date"`
	MaxApplications int             `json:"max_applications"`
	Description     string          `json:"description"`
	Instructions    string          `json:"instructions"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// # Field Identifiers

const (
	FieldApplicationType = "application_type"
	FieldOpeningDate     = "opening_date"
	FieldClosingDate     = "closing_date"
	FieldMaxApplications = "max_applications"
)

// # Settings Data Access

// Repository defines the data access contract for application settings.
type Repository interface {

	/*
		List returns the settings rows for every application type.

		Parameters:
		  - context: context.Context

		Returns:
		  - []*ApplicationSettings: All rows, ordered by application type
		  - error: Database retrieval failures
	*/
	List(context context.Context) ([]*ApplicationSettings, error)

	/*
		FindByType retrieves the settings row for one application type.

		Parameters:
		  - context: context.Context
		  - applicationType: ApplicationType

		Returns:
		  - *ApplicationSettings: Hydrated entity
		  - error: apperr.NotFound if the type has no row
	*/
	FindByType(context context.Context, applicationType ApplicationType) (*ApplicationSettings, error)

	/*
		Update modifies the settings row for one application type.

		Parameters:
		  - context: context.Context
		  - settings: *ApplicationSettings

		Returns:
		  - error: apperr.NotFound if the type has no row
	*/
	Update(context context.Context, settings *ApplicationSettings) error
}

// Cache defines the read-through cache in front of [Repository].
//
// Cache failures must never fail a request; callers treat every error from
// this interface as a miss and fall back to the database.
type Cache interface {

	/*
		Get retrieves a cached settings row.

		Parameters:
		  - context: context.Context
		  - applicationType: ApplicationType

		Returns:
		  - *ApplicationSettings: Cached entity
		  - error: apperr.NotFound on a miss, connectivity errors otherwise
	*/
	Get(context context.Context, applicationType ApplicationType) (*ApplicationSettings, error)

	/*
		Set stores a settings row with the standard TTL.

		Parameters:
		  - context: context.Context
		  - settings: *ApplicationSettings

		Returns:
		  - error: Storage failures
	*/
	Set(context context.Context, settings *ApplicationSettings) error

	/*
		Invalidate removes a cached settings row after a write.

		Parameters:
		  - context: context.Context
		  - applicationType: ApplicationType

		Returns:
		  - error: Deletion failures
	*/
	Invalidate(context context.Context, applicationType ApplicationType) error
}
