// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package marks

import "context"

// # Assignment Mark Data Access

// Repository defines the data access contract for assignment marks.
type Repository interface {

	/*
		List returns a paginated slice of marks and the total count.

		Parameters:
		  - context: context.Context
		  - programID: string (optional filter, empty for all)
		  - limit, offset: int

		Returns:
		  - []*AssignmentMark: Slice of marks
		  - int: Total record count
		  - error: Database retrieval failures
	*/
	List(context context.Context, programID string, limit, offset int) ([]*AssignmentMark, int, error)

	/*
		FindByID retrieves a mark record by its UUID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *AssignmentMark: Hydrated entity
		  - error: apperr.NotFound if missing
	*/
	FindByID(context context.Context, id string) (*AssignmentMark, error)

	/*
		Create persists a new mark record.

		Parameters:
		  - context: context.Context
		  - mark: *AssignmentMark

		Returns:
		  - error: apperr.Conflict on duplicate registration number
	*/
	Create(context context.Context, mark *AssignmentMark) error

	/*
		Update modifies an existing mark record.

		Parameters:
		  - context: context.Context
		  - mark: *AssignmentMark

		Returns:
		  - error: Persistence failures
	*/
	Update(context context.Context, mark *AssignmentMark) error

	/*
		Delete removes a mark record.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: Persistence failures
	*/
	Delete(context context.Context, id string) error
}
