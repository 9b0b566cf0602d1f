// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package attendance

import (
	"context"
	"log/slog"

	"github.com/taibuivan/ignite/internal/platform/validate"
	"github.com/taibuivan/ignite/pkg/uuid"
)

// # Service Layer

// Service orchestrates business rules for attendance records.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new attendance [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

/*
ListRecords retrieves a paginated list of attendance records.

Parameters:
  - context: context.Context
  - studentID: string (optional filter)
  - limit, offset: int

Returns:
  - []*Attendance: List of records
  - int: Total count
  - error: Retrieval errors
*/
func (service *Service) ListRecords(context context.Context, studentID string, limit, offset int) ([]*Attendance, int, error) {
	return service.repo.List(context, studentID, limit, offset)
}

/*
GetRecord retrieves an attendance record by its UUID.
*/
func (service *Service) GetRecord(context context.Context, id string) (*Attendance, error) {
	return service.repo.FindByID(context, id)
}

/*
CreateRecord validates and persists a new attendance snapshot.

Parameters:
  - context: context.Context
  - record: *Attendance

Returns:
  - error: Validation or persistence failures

Business Rules:
  - Percentage must be within [0, 100].
  - Status defaults to Active.
*/
func (service *Service) CreateRecord(context context.Context, record *Attendance) error {
	if err := validateRecord(record); err != nil {
		return err
	}

	record.ID = uuid.New()
	if record.Status == "" {
		record.Status = StatusActive
	}

	if err := service.repo.Create(context, record); err != nil {
		return err
	}

	service.logger.Info("attendance_recorded",
		slog.String("attendance_id", record.ID),
		slog.String("student_id", record.StudentID),
		slog.Float64("percentage", record.Percentage),
	)

	return nil
}

/*
UpdateRecord validates and persists changes to an attendance snapshot.
*/
func (service *Service) UpdateRecord(context context.Context, record *Attendance) error {
	if err := validateRecord(record); err != nil {
		return err
	}

	return service.repo.Update(context, record)
}

/*
DeleteRecord removes an attendance snapshot.
*/
func (service *Service) DeleteRecord(context context.Context, id string) error {
	return service.repo.Delete(context, id)
}

// validateRecord applies the shared field rules.
func validateRecord(record *Attendance) error {
	validator := &validate.Validator{}

	validator.
		Required(FieldStudentID, record.StudentID).
		Custom(FieldPercentage, record.Percentage < 0 || record.Percentage > 100, "Must be between 0 and 100")

	if record.Status != "" {
		validator.OneOf(FieldStatus, string(record.Status), string(StatusActive), string(StatusInactive))
	}

	return validator.Err()
}
