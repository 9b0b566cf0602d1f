// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package program

import "context"

// # Program Data Access

// Repository defines the data access contract for programs.
type Repository interface {

	/*
		List returns every program, ordered by code.

		Parameters:
		  - context: context.Context

		Returns:
		  - []*Program: All programs
		  - error: Database retrieval failures
	*/
	List(context context.Context) ([]*Program, error)

	/*
		FindByID retrieves a program by its UUID.

		Parameters:
		  - context: context.Context
		  - id: string (UUIDv7)

		Returns:
		  - *Program: Hydrated entity
		  - error: apperr.NotFound if missing
	*/
	FindByID(context context.Context, id string) (*Program, error)

	/*
		Create persists a new program.

		Parameters:
		  - context: context.Context
		  - program: *Program

		Returns:
		  - error: apperr.Conflict on duplicate code, persistence failures
	*/
	Create(context context.Context, program *Program) error

	/*
		Update modifies an existing program.

		Parameters:
		  - context: context.Context
		  - program: *Program

		Returns:
		  - error: Persistence failures
	*/
	Update(context context.Context, program *Program) error

	/*
		Delete removes a program.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: Persistence failures
	*/
	Delete(context context.Context, id string) error
}
