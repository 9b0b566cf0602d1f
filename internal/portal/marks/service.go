// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package marks

import (
	"context"
	"log/slog"

	"github.com/taibuivan/ignite/internal/platform/validate"
	"github.com/taibuivan/ignite/pkg/uuid"
)

// # Service Layer

// Service orchestrates business rules for assignment marks.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new marks [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

/*
ListMarks retrieves a paginated list of assignment marks.

Parameters:
  - context: context.Context
  - programID: string (optional filter)
  - limit, offset: int

Returns:
  - []*AssignmentMark: List of marks
  - int: Total count
  - error: Retrieval errors
*/
func (service *Service) ListMarks(context context.Context, programID string, limit, offset int) ([]*AssignmentMark, int, error) {
	return service.repo.List(context, programID, limit, offset)
}

/*
ListByProgram retrieves every mark for one program.

Business Rules:
  - programID is mandatory; listing "all programs" goes through ListMarks.
*/
func (service *Service) ListByProgram(context context.Context, programID string) ([]*AssignmentMark, error) {
	if programID == "" {
		return nil, validate.RequiredError(FieldProgramID, "is required")
	}

	result, _, err := service.repo.List(context, programID, 0, 0)
	return result, err
}

/*
GetMark retrieves a mark record by its UUID.
*/
func (service *Service) GetMark(context context.Context, id string) (*AssignmentMark, error) {
	return service.repo.FindByID(context, id)
}

/*
CreateMark validates and persists a new assignment mark.

Parameters:
  - context: context.Context
  - mark: *AssignmentMark

Returns:
  - error: Validation or persistence failures

Business Rules:
  - Registration number is mandatory and unique.
  - Internal marks must be within [0, 100].
  - Status defaults to Pending.
*/
func (service *Service) CreateMark(context context.Context, mark *AssignmentMark) error {
	if err := validateMark(mark); err != nil {
		return err
	}

	mark.ID = uuid.New()
	if mark.Status == "" {
		mark.Status = StatusPending
	}

	if err := service.repo.Create(context, mark); err != nil {
		return err
	}

	service.logger.Info("assignment_mark_created",
		slog.String("mark_id", mark.ID),
		slog.String("reg_no", mark.RegNo),
		slog.String("p_code", mark.PaperCode),
	)

	return nil
}

/*
UpdateMark validates and persists changes to an assignment mark.
*/
func (service *Service) UpdateMark(context context.Context, mark *AssignmentMark) error {
	if err := validateMark(mark); err != nil {
		return err
	}

	if err := service.repo.Update(context, mark); err != nil {
		return err
	}

	service.logger.Info("assignment_mark_updated",
		slog.String("mark_id", mark.ID),
		slog.String("status", string(mark.Status)),
	)

	return nil
}

/*
DeleteMark removes an assignment mark.
*/
func (service *Service) DeleteMark(context context.Context, id string) error {
	return service.repo.Delete(context, id)
}

// validateMark applies the shared field rules.
func validateMark(mark *AssignmentMark) error {
	validator := &validate.Validator{}

	validator.
		Required(FieldRegNo, mark.RegNo).
		MaxLen(FieldRegNo, mark.RegNo, 20).
		Required(FieldStudentID, mark.StudentID).
		Required(FieldProgramID, mark.ProgramID).
		Required(FieldPaperCode, mark.PaperCode).
		MaxLen(FieldPaperCode, mark.PaperCode, 20).
		Custom(FieldInternalMarks, mark.InternalMarks < 0 || mark.InternalMarks > 100, "Must be between 0 and 100")

	if mark.Status != "" {
		validator.OneOf(FieldStatus, string(mark.Status),
			string(StatusSubmitted), string(StatusPending), string(StatusGraded))
	}

	return validator.Err()
}
