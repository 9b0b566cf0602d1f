// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package attendance

import "context"

// # Attendance Data Access

// Repository defines the data access contract for attendance records.
type Repository interface {

	/*
		List returns a paginated slice of attendance records and the total count.

		Parameters:
		  - context: context.Context
		  - studentID: string (optional filter, empty for all)
		  - limit, offset: int

		Returns:
		  - []*Attendance: Slice of records
		  - int: Total record count
		  - error: Database retrieval failures
	*/
	List(context context.Context, studentID string, limit, offset int) ([]*Attendance, int, error)

	/*
		FindByID retrieves an attendance record by its UUID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Attendance: Hydrated entity
		  - error: apperr.NotFound if missing
	*/
	FindByID(context context.Context, id string) (*Attendance, error)

	/*
		Create persists a new attendance record.

		Parameters:
		  - context: context.Context
		  - record: *Attendance

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, record *Attendance) error

	/*
		Update modifies an existing attendance record.

		Parameters:
		  - context: context.Context
		  - record: *Attendance

		Returns:
		  - error: Persistence failures
	*/
	Update(context context.Context, record *Attendance) error

	/*
		Delete removes an attendance record.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: Persistence failures
	*/
	Delete(context context.Context, id string) error
}
