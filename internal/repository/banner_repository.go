package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vedavayu/clinic-backend/internal/domain"
)

// BannerRepository persists landing-page banners.
type BannerRepository interface {
	Create(ctx context.Context, banner *domain.Banner) error
	Update(ctx context.Context, banner *domain.Banner) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Banner, error)
	List(ctx context.Context) ([]domain.Banner, error)
}

type bannerRepository struct {
	pool *pgxpool.Pool
}

// NewBannerRepository constructs repository.
func NewBannerRepository(pool *pgxpool.Pool) BannerRepository {
	return &bannerRepository{pool: pool}
}

func (r *bannerRepository) Create(ctx context.Context, banner *domain.Banner) error {
	const query = `
        INSERT INTO banners (title, event_date, event_time, registration_link)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		banner.Title,
		banner.Date,
		banner.Time,
		banner.RegistrationLink,
	).Scan(&banner.ID, &banner.CreatedAt, &banner.UpdatedAt)
}

func (r *bannerRepository) Update(ctx context.Context, banner *domain.Banner) error {
	const query = `
        UPDATE banners SET title=$1, event_date=$2, event_time=$3, registration_link=$4, updated_at=NOW()
        WHERE id=$5`

	cmd, err := r.pool.Exec(ctx, query,
		banner.Title,
		banner.Date,
		banner.Time,
		banner.RegistrationLink,
		banner.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *bannerRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM banners WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *bannerRepository) GetByID(ctx context.Context, id string) (*domain.Banner, error) {
	const query = `
        SELECT id, title, event_date, event_time, registration_link, created_at, updated_at
        FROM banners WHERE id=$1`

	var banner domain.Banner
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&banner.ID,
		&banner.Title,
		&banner.Date,
		&banner.Time,
		&banner.RegistrationLink,
		&banner.CreatedAt,
		&banner.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &banner, nil
}

func (r *bannerRepository) List(ctx context.Context) ([]domain.Banner, error) {
	const query = `
        SELECT id, title, event_date, event_time, registration_link, created_at, updated_at
        FROM banners ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Banner
	for rows.Next() {
		var banner domain.Banner
		if err := rows.Scan(
			&banner.ID,
			&banner.Title,
			&banner.Date,
			&banner.Time,
			&banner.RegistrationLink,
			&banner.CreatedAt,
			&banner.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, banner)
	}
	return result, rows.Err()
}
