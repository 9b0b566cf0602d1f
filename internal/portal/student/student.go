// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package student manages admission applications.

A [Student] row is one application: it carries the applicant's community
category, the payment state of the admission fee, and the admission decision
itself. The reports module derives every portal-level figure from this table.
*/
package student

import "time"

// # Student Enums

// Community is the applicant's reservation category.
type Community string

const (
	CommunityGeneral Community = "General"
	CommunityOBC     Community = "OBC"
	CommunitySC      Community = "SC"
	CommunityST      Community = "ST"
)

// PaymentStatus tracks the admission-fee payment state.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "Paid"
	PaymentPending PaymentStatus = "Pending"
	PaymentFailed  PaymentStatus = "Failed"
)

// AdmissionStatus tracks the application decision state.
type AdmissionStatus string

const (
	AdmissionApplied   AdmissionStatus = "Applied"
	AdmissionConfirmed AdmissionStatus = "Confirmed"
	AdmissionRejected  AdmissionStatus = "Rejected"
	AdmissionCancelled AdmissionStatus = "Cancelled"
)

// # Core Entities

// Student represents one admission application.
type Student struct {
	ID              string          `json:"id"` // UUIDv7
	ApplicationNo   string          `json:"application_no"`
	Name            string          `json:"name"`
	ProgramID       string          `json:"program_id"`
	Community       Community       `json:"community"`
	PaymentStatus   PaymentStatus   `json:"payment_status"`
	AdmissionStatus AdmissionStatus `json:"admission_status"`
	CounsellorID    *string         `json:"counsellor_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// # Search & Filtering

// Filter holds parameters for listing applications.
type Filter struct {
	ProgramID       string          `json:"program_id"`
	PaymentStatus   PaymentStatus   `json:"payment_status"`
	AdmissionStatus AdmissionStatus `json:"admission_status"`
}

// # Field Identifiers

const (
	FieldApplicationNo   = "application_no"
	FieldName            = "name"
	FieldProgramID       = "program_id"
	FieldCommunity       = "community"
	FieldPaymentStatus   = "payment_status"
	FieldAdmissionStatus = "admission_status"
)
