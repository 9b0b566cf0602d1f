// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package reports derives management figures from the admissions data.

Every number here is computed from the student table at request time; the
package stores nothing of its own.
*/
package reports

import "context"

// AdmissionFeeRupees is the flat admission fee used for revenue estimation.
// Carried over from the finance team's standing assumption of ₹1000 per
// paid application.
const AdmissionFeeRupees = 1000

// # Report Types

// Summary is the headline admissions dashboard block.
type Summary struct {
	TotalApplications   int `json:"total_applications"`
	ConfirmedAdmissions int `json:"confirmed_admissions"`
	PendingPayments     int `json:"pending_payments"`
	RevenueGenerated    int `json:"revenue_generated"` // paid count × AdmissionFeeRupees
}

// # Report Data Access

// Repository defines the aggregate queries backing the reports.
type Repository interface {

	/*
		Counts returns the raw aggregate figures from the student table.

		Parameters:
		  - context: context.Context

		Returns:
		  - total: All applications
		  - confirmed: Applications with Confirmed admission status
		  - pendingPayments: Applications with Pending payment status
		  - paid: Applications with Paid payment status
		  - error: Database retrieval failures
	*/
	Counts(context context.Context) (total, confirmed, pendingPayments, paid int, err error)
}
