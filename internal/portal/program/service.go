// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package program

import (
	"context"
	"log/slog"

	"github.com/taibuivan/ignite/internal/platform/validate"
	"github.com/taibuivan/ignite/pkg/uuid"
)

// # Service Layer

// Service orchestrates business rules for the program catalogue.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new program [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

/*
ListPrograms returns the full program catalogue.

Parameters:
  - context: context.Context

Returns:
  - []*Program: All programs ordered by code
  - error: Retrieval errors
*/
func (service *Service) ListPrograms(context context.Context) ([]*Program, error) {
	return service.repo.List(context)
}

/*
GetProgram retrieves a program by its UUID.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Program: Hydrated entity
  - error: apperr.NotFound if missing
*/
func (service *Service) GetProgram(context context.Context, id string) (*Program, error) {
	return service.repo.FindByID(context, id)
}

/*
CreateProgram validates and persists a new program.

Parameters:
  - context: context.Context
  - program: *Program

Returns:
  - error: Validation or persistence failures

Business Rules:
  - Code is mandatory, unique, and at most 10 characters.
  - Name is mandatory.
*/
func (service *Service) CreateProgram(context context.Context, program *Program) error {
	validator := &validate.Validator{}
	if err := validator.
		Required(FieldCode, program.Code).
		MaxLen(FieldCode, program.Code, 10).
		Required(FieldName, program.Name).
		MaxLen(FieldName, program.Name, 100).
		Err(); err != nil {
		return err
	}

	program.ID = uuid.New()

	if err := service.repo.Create(context, program); err != nil {
		return err
	}

	service.logger.Info("program_created",
		slog.String("program_id", program.ID),
		slog.String("code", program.Code),
	)

	return nil
}

/*
UpdateProgram validates and persists changes to an existing program.

Parameters:
  - context: context.Context
  - program: *Program

Returns:
  - error: Validation or persistence failures
*/
func (service *Service) UpdateProgram(context context.Context, program *Program) error {
	validator := &validate.Validator{}
	if err := validator.
		Required(FieldName, program.Name).
		MaxLen(FieldName, program.Name, 100).
		Err(); err != nil {
		return err
	}

	if err := service.repo.Update(context, program); err != nil {
		return err
	}

	service.logger.Info("program_updated", slog.String("program_id", program.ID))

	return nil
}

/*
DeleteProgram removes a program from the catalogue.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: Persistence failures
*/
func (service *Service) DeleteProgram(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Info("program_deleted", slog.String("program_id", id))

	return nil
}
