// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package student

import "context"

// # Student Data Access

// Repository defines the data access contract for admission applications.
type Repository interface {

	/*
		List returns a filtered, paginated slice of applications and the total count.

		Parameters:
		  - context: context.Context
		  - filter: Filter (program, payment state, admission state)
		  - limit: int
		  - offset: int

		Returns:
		  - []*Student: Slice of matching applications
		  - int: Total record count
		  - error: Database retrieval failures
	*/
	List(context context.Context, filter Filter, limit, offset int) ([]*Student, int, error)

	/*
		FindByID retrieves an application by its UUID.

		Parameters:
		  - context: context.Context
		  - id: string (UUIDv7)

		Returns:
		  - *Student: Hydrated entity
		  - error: apperr.NotFound if missing
	*/
	FindByID(context context.Context, id string) (*Student, error)

	/*
		Create persists a new application.

		Parameters:
		  - context: context.Context
		  - student: *Student

		Returns:
		  - error: apperr.Conflict on duplicate application number
	*/
	Create(context context.Context, student *Student) error

	/*
		Update modifies an existing application.

		Parameters:
		  - context: context.Context
		  - student: *Student

		Returns:
		  - error: Persistence failures
	*/
	Update(context context.Context, student *Student) error

	/*
		Delete removes an application.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: Persistence failures
	*/
	Delete(context context.Context, id string) error
}
