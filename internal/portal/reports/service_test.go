// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reports_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/ignite/internal/portal/reports"
	"github.com/taibuivan/ignite/internal/portal/student"
)

// # Test Doubles

// fakeCounts returns canned aggregate figures.
type fakeCounts struct {
	total, confirmed, pendingPayments, paid int

	failWith error
}

func (f *fakeCounts) Counts(_ context.Context) (int, int, int, int, error) {
	if f.failWith != nil {
		return 0, 0, 0, 0, f.failWith
	}
	return f.total, f.confirmed, f.pendingPayments, f.paid, nil
}

// fakeStudents records the filter each List call received.
type fakeStudents struct {
	filters []student.Filter
}

func (f *fakeStudents) List(_ context.Context, filter student.Filter, limit, offset int) ([]*student.Student, int, error) {
	f.filters = append(f.filters, filter)
	return []*student.Student{{ID: "stub"}}, 1, nil
}

func (f *fakeStudents) FindByID(context.Context, string) (*student.Student, error) {
	return nil, errors.New("not used")
}
func (f *fakeStudents) Create(context.Context, *student.Student) error { return errors.New("not used") }
func (f *fakeStudents) Update(context.Context, *student.Student) error { return errors.New("not used") }
func (f *fakeStudents) Delete(context.Context, string) error           { return errors.New("not used") }

// # Tests

/*
TestSummary_ComputesRevenueFromPaidCount verifies the headline block: every
figure passes through untouched and revenue is the paid count times the flat
admission fee.
*/
func TestSummary_ComputesRevenueFromPaidCount(t *testing.T) {
	service := reports.NewService(&fakeCounts{
		total:           120,
		confirmed:       45,
		pendingPayments: 30,
		paid:            90,
	}, &fakeStudents{})

	summary, err := service.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 120, summary.TotalApplications)
	assert.Equal(t, 45, summary.ConfirmedAdmissions)
	assert.Equal(t, 30, summary.PendingPayments)
	assert.Equal(t, 90*reports.AdmissionFeeRupees, summary.RevenueGenerated)
}

/*
TestSummary_PropagatesStoreFailure verifies that aggregate query failures
surface to the caller instead of producing a zeroed dashboard.
*/
func TestSummary_PropagatesStoreFailure(t *testing.T) {
	outage := errors.New("postgres_reports_counts_failed: connection refused")
	service := reports.NewService(&fakeCounts{failWith: outage}, &fakeStudents{})

	_, err := service.Summary(context.Background())
	assert.ErrorIs(t, err, outage)
}

/*
TestReports_ApplyTheExpectedFilters verifies that each report queries the
student table with its defining filter and no pagination cap.
*/
func TestReports_ApplyTheExpectedFilters(t *testing.T) {
	students := &fakeStudents{}
	service := reports.NewService(&fakeCounts{}, students)

	// 1. Run all three reports
	_, err := service.ApplicationReport(context.Background())
	require.NoError(t, err)
	_, err = service.UnpaidReport(context.Background())
	require.NoError(t, err)
	_, err = service.ConfirmedReport(context.Background())
	require.NoError(t, err)

	// 2. Each saw exactly its defining filter
	require.Len(t, students.filters, 3)
	assert.Equal(t, student.Filter{}, students.filters[0])
	assert.Equal(t, student.Filter{PaymentStatus: student.PaymentPending}, students.filters[1])
	assert.Equal(t, student.Filter{AdmissionStatus: student.AdmissionConfirmed}, students.filters[2])
}
