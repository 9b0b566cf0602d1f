// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package attendance records per-student attendance snapshots.

Each record is a percentage snapshot tied to one application, stamped when
the learning centre reports it.
*/
package attendance

import "time"

// # Attendance Enums

// Status marks whether the student is currently attending.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// # Core Entities

// Attendance represents one reported attendance snapshot.
type Attendance struct {
	ID         string    `json:"id"` // UUIDv7
	StudentID  string    `json:"student_id"`
	Percentage float64   `json:"attendance_percentage"`
	Status     Status    `json:"status"`
	RecordedAt time.Time `json:"recorded_at"`
}

// # Field Identifiers

const (
	FieldStudentID  = "student_id"
	FieldPercentage = "attendance_percentage"
	FieldStatus     = "status"
)
