// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reports

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository implements [Repository] against the portal database.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates the PostgreSQL implementation of the reports [Repository].
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Counts computes all four aggregate figures in a single table pass.
func (repository *PostgresRepository) Counts(ctx context.Context) (total, confirmed, pendingPayments, paid int, err error) {
	const query = `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE admission_status = 'Confirmed'),
			COUNT(*) FILTER (WHERE payment_status = 'Pending'),
			COUNT(*) FILTER (WHERE payment_status = 'Paid')
		FROM student`

	if err = repository.pool.QueryRow(ctx, query).Scan(&total, &confirmed, &pendingPayments, &paid); err != nil {
		return 0, 0, 0, 0, fmt.Errorf("postgres_reports_counts_failed: %w", err)
	}

	return total, confirmed, pendingPayments, paid, nil
}
