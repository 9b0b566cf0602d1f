// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package counsellor

import "context"

// # Counsellor Data Access

// Repository defines the data access contract for counsellors.
type Repository interface {

	/*
		List returns a paginated slice of counsellors and the total count.

		Parameters:
		  - context: context.Context
		  - limit: int
		  - offset: int

		Returns:
		  - []*Counsellor: Slice of counsellors
		  - int: Total record count
		  - error: Database retrieval failures
	*/
	List(context context.Context, limit, offset int) ([]*Counsellor, int, error)

	/*
		FindByID retrieves a counsellor by its UUID.

		Parameters:
		  - context: context.Context
		  - id: string (UUIDv7)

		Returns:
		  - *Counsellor: Hydrated entity
		  - error: apperr.NotFound if missing
	*/
	FindByID(context context.Context, id string) (*Counsellor, error)

	/*
		Create persists a new counsellor.

		Parameters:
		  - context: context.Context
		  - counsellor: *Counsellor

		Returns:
		  - error: apperr.Conflict on duplicate Aadhaar or email
	*/
	Create(context context.Context, counsellor *Counsellor) error

	/*
		Update modifies an existing counsellor profile.

		Parameters:
		  - context: context.Context
		  - counsellor: *Counsellor

		Returns:
		  - error: Persistence failures
	*/
	Update(context context.Context, counsellor *Counsellor) error

	/*
		Delete removes a counsellor.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: Persistence failures
	*/
	Delete(context context.Context, id string) error
}
