package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vedavayu/clinic-backend/internal/domain"
)

// StatisticsRepository persists the singleton statistics row.
type StatisticsRepository interface {
	// Get returns the singleton, or pgx.ErrNoRows when it was never written.
	Get(ctx context.Context) (*domain.Statistics, error)
	// Save inserts or updates the singleton in place.
	Save(ctx context.Context, stats *domain.Statistics) error
}

type statisticsRepository struct {
	pool *pgxpool.Pool
}

// NewStatisticsRepository constructs repository.
func NewStatisticsRepository(pool *pgxpool.Pool) StatisticsRepository {
	return &statisticsRepository{pool: pool}
}

func (r *statisticsRepository) Get(ctx context.Context) (*domain.Statistics, error) {
	const query = `
        SELECT id, patients_treated, test_reports, hours_support, recovery_rate, updated_at
        FROM statistics LIMIT 1`

	var stats domain.Statistics
	if err := r.pool.QueryRow(ctx, query).Scan(
		&stats.ID,
		&stats.PatientsTreated,
		&stats.TestReports,
		&stats.HoursSupport,
		&stats.RecoveryRate,
		&stats.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *statisticsRepository) Save(ctx context.Context, stats *domain.Statistics) error {
	if stats.ID == "" {
		const insert = `
            INSERT INTO statistics (patients_treated, test_reports, hours_support, recovery_rate)
            VALUES ($1, $2, $3, $4)
            RETURNING id, updated_at`
		return r.pool.QueryRow(ctx, insert,
			stats.PatientsTreated,
			stats.TestReports,
			stats.HoursSupport,
			stats.RecoveryRate,
		).Scan(&stats.ID, &stats.UpdatedAt)
	}

	const update = `
        UPDATE statistics SET patients_treated=$1, test_reports=$2, hours_support=$3, recovery_rate=$4, updated_at=NOW()
        WHERE id=$5
        RETURNING updated_at`
	return r.pool.QueryRow(ctx, update,
		stats.PatientsTreated,
		stats.TestReports,
		stats.HoursSupport,
		stats.RecoveryRate,
		stats.ID,
	).Scan(&stats.UpdatedAt)
}
