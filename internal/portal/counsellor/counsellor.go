// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package counsellor manages the admission counsellor registry.

Counsellors guide applicants through the admission process and are assigned
to one program. The registry carries the full KYC-style profile the
operations team collects during onboarding (identity, qualifications,
contact, and postal address).
*/
package counsellor

import "time"

// # Counsellor Enums

// Gender is the declared gender of the counsellor.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// # Core Entities

// Counsellor represents one registered admission counsellor.
type Counsellor struct {
	ID                   string    `json:"id"` // UUIDv7
	Name                 string    `json:"counsellor_name"`
	FatherName           string    `json:"father_name"`
	MotherName           string    `json:"mother_name"`
	DateOfBirth          time.Time `json:"date_of_birth"`
	Gender               Gender    `json:"gender"`
	AadhaarCard          string    `json:"aadhaar_card"`
	Qualification        string    `json:"qualification"`
	HighestQualification string    `json:"highest_qualification"`
	ProgramID            string    `json:"programme_assigned"`
	MobileNumber         string    `json:"mobile_number"`
	AlternateNumber      string    `json:"alternate_number,omitempty"`
	Email                string    `json:"email_id"`
	CurrentDesignation   string    `json:"current_designation"`
	WorkingExperience    string    `json:"working_experience"`
	AddressLine1         string    `json:"address_line1"`
	AddressLine2         string    `json:"address_line2,omitempty"`
	AddressLine3         string    `json:"address_line3,omitempty"`
	Pincode              string    `json:"pincode"`
	District             string    `json:"district"`
	State                string    `json:"state"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// # Field Identifiers

const (
	FieldName         = "counsellor_name"
	FieldGender       = "gender"
	FieldAadhaarCard  = "aadhaar_card"
	FieldProgramID    = "programme_assigned"
	FieldMobileNumber = "mobile_number"
	FieldEmail        = "email_id"
	FieldPincode      = "pincode"
)
