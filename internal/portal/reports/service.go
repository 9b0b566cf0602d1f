// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reports

import (
	"context"

	"github.com/taibuivan/ignite/internal/portal/student"
)

// # Service Layer

// Service computes admissions reports on demand.
type Service struct {
	repo     Repository
	students student.Repository
}

// NewService constructs a new reports [Service].
func NewService(repo Repository, students student.Repository) *Service {
	return &Service{
		repo:     repo,
		students: students,
	}
}

/*
Summary computes the headline dashboard figures.

Parameters:
  - context: context.Context

Returns:
  - *Summary: Aggregate block with revenue at ₹1000 per paid application
  - error: Retrieval errors
*/
func (service *Service) Summary(context context.Context) (*Summary, error) {
	total, confirmed, pendingPayments, paid, err := service.repo.Counts(context)
	if err != nil {
		return nil, err
	}

	return &Summary{
		TotalApplications:   total,
		ConfirmedAdmissions: confirmed,
		PendingPayments:     pendingPayments,
		RevenueGenerated:    paid * AdmissionFeeRupees,
	}, nil
}

/*
ApplicationReport returns every application on record.
*/
func (service *Service) ApplicationReport(context context.Context) ([]*student.Student, error) {
	result, _, err := service.students.List(context, student.Filter{}, 0, 0)
	return result, err
}

/*
UnpaidReport returns every application with a pending payment.
*/
func (service *Service) UnpaidReport(context context.Context) ([]*student.Student, error) {
	result, _, err := service.students.List(context, student.Filter{PaymentStatus: student.PaymentPending}, 0, 0)
	return result, err
}

/*
ConfirmedReport returns every application with a confirmed admission.
*/
func (service *Service) ConfirmedReport(context context.Context) ([]*student.Student, error) {
	result, _, err := service.students.List(context, student.Filter{AdmissionStatus: student.AdmissionConfirmed}, 0, 0)
	return result, err
}
