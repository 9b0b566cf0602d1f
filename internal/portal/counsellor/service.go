// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package counsellor

import (
	"context"
	"log/slog"
	"regexp"

	"github.com/taibuivan/ignite/internal/platform/validate"
	"github.com/taibuivan/ignite/pkg/uuid"
)

var (
	// aadhaarRegex matches a 12-digit Aadhaar number.
	aadhaarRegex = regexp.MustCompile(`^[0-9]{12}$`)
	// mobileRegex matches a 10-digit Indian mobile number.
	mobileRegex = regexp.MustCompile(`^[0-9]{10}$`)
	// pincodeRegex matches a 6-digit postal code.
	pincodeRegex = regexp.MustCompile(`^[0-9]{6}$`)
)

// # Service Layer

// Service orchestrates business rules for the counsellor registry.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new counsellor [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

/*
ListCounsellors retrieves a paginated list of counsellors.

Parameters:
  - context: context.Context
  - limit, offset: int

Returns:
  - []*Counsellor: List of counsellors
  - int: Total count
  - error: Retrieval errors
*/
func (service *Service) ListCounsellors(context context.Context, limit, offset int) ([]*Counsellor, int, error) {
	return service.repo.List(context, limit, offset)
}

/*
GetCounsellor retrieves a counsellor by its UUID.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Counsellor: Hydrated entity
  - error: apperr.NotFound if missing
*/
func (service *Service) GetCounsellor(context context.Context, id string) (*Counsellor, error) {
	return service.repo.FindByID(context, id)
}

/*
CreateCounsellor validates and persists a new counsellor profile.

Parameters:
  - context: context.Context
  - counsellor: *Counsellor

Returns:
  - error: Validation or persistence failures

Business Rules:
  - Aadhaar is exactly 12 digits and unique.
  - Mobile is exactly 10 digits; pincode exactly 6.
  - A program assignment is mandatory.
*/
func (service *Service) CreateCounsellor(context context.Context, counsellor *Counsellor) error {
	if err := validateCounsellor(counsellor); err != nil {
		return err
	}

	counsellor.ID = uuid.New()

	if err := service.repo.Create(context, counsellor); err != nil {
		return err
	}

	service.logger.Info("counsellor_created",
		slog.String("counsellor_id", counsellor.ID),
		slog.String("program_id", counsellor.ProgramID),
	)

	return nil
}

/*
UpdateCounsellor validates and persists changes to an existing profile.

Parameters:
  - context: context.Context
  - counsellor: *Counsellor

Returns:
  - error: Validation or persistence failures
*/
func (service *Service) UpdateCounsellor(context context.Context, counsellor *Counsellor) error {
	if err := validateCounsellor(counsellor); err != nil {
		return err
	}

	if err := service.repo.Update(context, counsellor); err != nil {
		return err
	}

	service.logger.Info("counsellor_updated", slog.String("counsellor_id", counsellor.ID))

	return nil
}

/*
DeleteCounsellor removes a counsellor from the registry.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: Persistence failures
*/
func (service *Service) DeleteCounsellor(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Info("counsellor_deleted", slog.String("counsellor_id", id))

	return nil
}

// validateCounsellor applies the registry field rules.
func validateCounsellor(counsellor *Counsellor) error {
	validator := &validate.Validator{}

	return validator.
		Required(FieldName, counsellor.Name).
		MaxLen(FieldName, counsellor.Name, 100).
		OneOf(FieldGender, string(counsellor.Gender),
			string(GenderMale), string(GenderFemale), string(GenderOther)).
		Custom(FieldAadhaarCard, !aadhaarRegex.MatchString(counsellor.AadhaarCard), "Must be a 12-digit Aadhaar number").
		Custom(FieldMobileNumber, !mobileRegex.MatchString(counsellor.MobileNumber), "Must be a 10-digit mobile number").
		Custom(FieldPincode, !pincodeRegex.MatchString(counsellor.Pincode), "Must be a 6-digit pincode").
		Required(FieldProgramID, counsellor.ProgramID).
		Email(FieldEmail, counsellor.Email).
		Err()
}
