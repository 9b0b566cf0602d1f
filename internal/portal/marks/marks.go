// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package marks manages internal assignment marks.

Each [AssignmentMark] ties a registration number to one paper of one
program and tracks the grading pipeline state.
*/
package marks

import "time"

// # Mark Enums

// Status tracks the grading pipeline state of a submission.
type Status string

const (
	StatusSubmitted Status = "Submitted"
	StatusPending   Status = "Pending"
	StatusGraded    Status = "Graded"
)

// # Core Entities

// AssignmentMark represents one paper's internal marks for one student.
type AssignmentMark struct {
	ID            string    `json:"id"` // UUIDv7
	RegNo         string    `json:"reg_no"`
	StudentID     string    `json:"student_id"`
	ProgramID     string    `json:"program_id"`
	PaperCode     string    `json:"p_code"`
	InternalMarks float64   `json:"internal_marks"`
	Status        Status    `json:"status"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

// # Field Identifiers

const (
	FieldRegNo         = "reg_no"
	FieldStudentID     = "student_id"
	FieldProgramID     = "program_id"
	FieldPaperCode     = "p_code"
	FieldInternalMarks = "internal_marks"
	FieldStatus        = "status"
)
