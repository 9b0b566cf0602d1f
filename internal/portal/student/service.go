// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package student

import (
	"context"
	"log/slog"

	"github.com/taibuivan/ignite/internal/platform/validate"
	"github.com/taibuivan/ignite/pkg/uuid"
)

// # Service Layer

// Service orchestrates business rules for admission applications.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new student [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

/*
ListStudents retrieves a paginated and filtered list of applications.

Parameters:
  - context: context.Context
  - filter: Filter
  - limit, offset: int

Returns:
  - []*Student: List of applications
  - int: Total matching count
  - error: Retrieval errors
*/
func (service *Service) ListStudents(context context.Context, filter Filter, limit, offset int) ([]*Student, int, error) {
	return service.repo.List(context, filter, limit, offset)
}

/*
ListByProgram retrieves every application for one program.

Parameters:
  - context: context.Context
  - programID: string

Returns:
  - []*Student: Applications for the program
  - error: Validation or retrieval errors

Business Rules:
  - programID is mandatory; listing "all programs" goes through ListStudents.
*/
func (service *Service) ListByProgram(context context.Context, programID string) ([]*Student, error) {
	if programID == "" {
		return nil, validate.RequiredError(FieldProgramID, "is required")
	}

	students, _, err := service.repo.List(context, Filter{ProgramID: programID}, 0, 0)
	return students, err
}

/*
GetStudent retrieves an application by its UUID.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Student: Hydrated entity
  - error: apperr.NotFound if missing
*/
func (service *Service) GetStudent(context context.Context, id string) (*Student, error) {
	return service.repo.FindByID(context, id)
}

/*
CreateStudent validates and persists a new application.

Parameters:
  - context: context.Context
  - student: *Student

Returns:
  - error: Validation or persistence failures

Business Rules:
  - Application number and name are mandatory.
  - Community must be one of the reservation categories.
  - New applications start as Pending payment / Applied admission.
*/
func (service *Service) CreateStudent(context context.Context, student *Student) error {
	if err := validateStudent(student, true); err != nil {
		return err
	}

	student.ID = uuid.New()
	if student.PaymentStatus == "" {
		student.PaymentStatus = PaymentPending
	}
	if student.AdmissionStatus == "" {
		student.AdmissionStatus = AdmissionApplied
	}

	if err := service.repo.Create(context, student); err != nil {
		return err
	}

	service.logger.Info("student_application_created",
		slog.String("student_id", student.ID),
		slog.String("application_no", student.ApplicationNo),
		slog.String("program_id", student.ProgramID),
	)

	return nil
}

/*
UpdateStudent validates and persists changes to an existing application.

Parameters:
  - context: context.Context
  - student: *Student

Returns:
  - error: Validation or persistence failures
*/
func (service *Service) UpdateStudent(context context.Context, student *Student) error {
	if err := validateStudent(student, false); err != nil {
		return err
	}

	if err := service.repo.Update(context, student); err != nil {
		return err
	}

	service.logger.Info("student_application_updated",
		slog.String("student_id", student.ID),
		slog.String("admission_status", string(student.AdmissionStatus)),
		slog.String("payment_status", string(student.PaymentStatus)),
	)

	return nil
}

/*
DeleteStudent removes an application.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: Persistence failures
*/
func (service *Service) DeleteStudent(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Info("student_application_deleted", slog.String("student_id", id))

	return nil
}

// validateStudent applies the shared field rules for create and update.
func validateStudent(student *Student, creating bool) error {
	validator := &validate.Validator{}

	if creating {
		validator.
			Required(FieldApplicationNo, student.ApplicationNo).
			MaxLen(FieldApplicationNo, student.ApplicationNo, 20).
			Required(FieldProgramID, student.ProgramID)
	}

	validator.
		Required(FieldName, student.Name).
		MaxLen(FieldName, student.Name, 100).
		OneOf(FieldCommunity, string(student.Community),
			string(CommunityGeneral), string(CommunityOBC), string(CommunitySC), string(CommunityST))

	if student.PaymentStatus != "" {
		validator.OneOf(FieldPaymentStatus, string(student.PaymentStatus),
			string(PaymentPaid), string(PaymentPending), string(PaymentFailed))
	}

	if student.AdmissionStatus != "" {
		validator.OneOf(FieldAdmissionStatus, string(student.AdmissionStatus),
			string(AdmissionApplied), string(AdmissionConfirmed), string(AdmissionRejected), string(AdmissionCancelled))
	}

	return validator.Err()
}
