// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package program manages the catalogue of distance-education programs.

Programs are the anchor entity of the admissions domain: students apply to
a program, counsellors are assigned to one, and assignment marks reference
one. All rows live in the portal database per the routing table.
*/
package program

import "time"

// # Core Entities

// Program represents one offered course of study.
type Program struct {
	ID          string    `json:"id"` // UUIDv7
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// # Field Identifiers

const (
	FieldCode        = "code"
	FieldName        = "name"
	FieldDescription = "description"
)
